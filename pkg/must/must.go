// Package must provides helpers for operations whose failures can't be
// meaningfully handled by the caller but still deserve a warning.
package must

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/mutagen-io/treeops/pkg/logging"
)

func Close(c io.Closer, logger *logging.Logger) {
	err := c.Close()
	if err != nil {
		logger.Warnf("Unable to close: %s", err.Error())
	}
}

func CommandHelp(c *cobra.Command, logger *logging.Logger) {
	err := c.Help()
	if err != nil {
		logger.Warnf("Unable to help: %s", err.Error())
	}
}
