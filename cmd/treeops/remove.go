package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func removeMain(_ *cobra.Command, arguments []string) error {
	// Validate arguments.
	if len(arguments) == 0 {
		return errors.New("no paths specified")
	}

	// Remove each path.
	for _, path := range arguments {
		if err := manager.Remove(path); err != nil {
			return errors.Wrapf(err, "unable to remove %s", path)
		}
	}

	// Success.
	return nil
}

var removeCommand = &cobra.Command{
	Use:          "rm <path>...",
	Short:        "Remove paths recursively",
	RunE:         removeMain,
	SilenceUsage: true,
}

var removeConfiguration struct {
	// help indicates whether or not to show help information and exit.
	help bool
}

func init() {
	// Add the help flag.
	registerHelpFlag(removeCommand.Flags(), &removeConfiguration.help)
}
