package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/mutagen-io/treeops/pkg/configuration"
	"github.com/mutagen-io/treeops/pkg/filesystem"
	"github.com/mutagen-io/treeops/pkg/logging"
	"github.com/mutagen-io/treeops/pkg/tree"
	"github.com/mutagen-io/treeops/pkg/treeops"
)

var (
	// logger is the command line logger. It writes to standard error.
	logger *logging.Logger
	// manager is the tree operation manager used by commands.
	manager *tree.Manager
	// directoryMode is the default mode for directories created by copies.
	directoryMode filesystem.Mode
)

// loadEnvironment loads configuration and initializes the logger and manager
// before any command runs. The log level is taken from the --log-level flag,
// then the configuration file, and otherwise defaults to warnings. Setting
// TREEOPS_DEBUG=1 raises the level to at least debug.
func loadEnvironment(_ *cobra.Command, _ []string) error {
	// Determine the configuration path.
	path := rootConfiguration.configurationPath
	if path == "" {
		if p, err := configuration.ConfigurationPath(); err != nil {
			return errors.Wrap(err, "unable to compute configuration path")
		} else {
			path = p
		}
	}

	// Load the configuration.
	defaults, err := configuration.LoadConfiguration(path)
	if err != nil {
		return err
	}

	// Determine the log level.
	level := logging.LevelWarn
	if rootConfiguration.logLevel != "" {
		if l, ok := logging.NameToLevel(rootConfiguration.logLevel); !ok {
			return errors.Errorf("invalid log level: %s", rootConfiguration.logLevel)
		} else {
			level = l
		}
	} else if defaults.Logging.Level != nil {
		level = *defaults.Logging.Level
	}
	if treeops.DebugEnabled && level < logging.LevelDebug {
		level = logging.LevelDebug
	}

	// Create the logger and manager.
	logger = logging.NewLogger(level, os.Stderr)
	manager = tree.NewManager(logger.Sublogger("tree"))
	logger.Tracef("Loaded configuration from %s", path)

	// Determine the default directory mode.
	directoryMode = tree.DefaultDirectoryMode
	if defaults.Copy.DirectoryMode != 0 {
		directoryMode = defaults.Copy.DirectoryMode
	}

	// Success.
	return nil
}
