package treeops

import (
	"os"
)

// DebugEnabled controls whether or not debug logging is forced on. It is set
// automatically based on the TREEOPS_DEBUG environment variable.
var DebugEnabled bool

func init() {
	// Check whether or not debugging should be enabled.
	DebugEnabled = os.Getenv("TREEOPS_DEBUG") == "1"
}
