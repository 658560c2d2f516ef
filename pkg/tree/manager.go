// Package tree implements recursive operations on filesystem trees: listing,
// removal, merge copying, and permission changes. Traversals are driven by an
// explicit stack of frames rather than native recursion, so tree depth is
// bounded by memory rather than goroutine stack size.
package tree

import (
	"github.com/mutagen-io/treeops/pkg/filesystem"
	"github.com/mutagen-io/treeops/pkg/logging"
)

// DefaultDirectoryMode is the mode used by Copy for directories that it
// creates.
const DefaultDirectoryMode = filesystem.Mode(0755)

// Manager performs tree operations. It holds no mutable state, so a single
// manager may be reused across calls.
type Manager struct {
	// logger is the underlying logger.
	logger *logging.Logger
}

// NewManager creates a new tree operation manager. The logger may be nil, in
// which case no logging is performed.
func NewManager(logger *logging.Logger) *Manager {
	return &Manager{
		logger: logger,
	}
}
