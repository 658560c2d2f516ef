package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"

	"github.com/mutagen-io/treeops/cmd"
)

func copyMain(command *cobra.Command, arguments []string) error {
	// Validate arguments.
	if len(arguments) != 2 {
		return errors.New("a source and a target must be specified")
	}

	// Determine the directory mode.
	mode := directoryMode
	if copyConfiguration.mode.set {
		mode = copyConfiguration.mode.mode
	}

	// Perform the copy.
	result, err := manager.CopyWithMode(arguments[0], arguments[1], mode)
	if result == nil {
		return errors.Wrap(err, "unable to copy")
	}

	// Print a summary.
	fmt.Fprintf(command.OutOrStdout(), "Copied %d files (%s), created %d directories\n",
		result.FilesCopied, humanize.Bytes(result.BytesCopied), result.DirectoriesCreated,
	)

	// Report any failures.
	if err != nil {
		for _, failure := range multierr.Errors(err) {
			cmd.Warning(failure.Error())
		}
		return errors.Errorf("%d entries could not be copied", result.Failures)
	}

	// Success.
	return nil
}

var copyCommand = &cobra.Command{
	Use:          "cp <source> <target>",
	Short:        "Copy a path recursively, merging into an existing target",
	RunE:         copyMain,
	SilenceUsage: true,
}

var copyConfiguration struct {
	// help indicates whether or not to show help information and exit.
	help bool
	// mode is the mode for created directories, if specified.
	mode modeValue
}

func init() {
	// Grab a handle for the command line flags.
	flags := copyCommand.Flags()

	// Add the help flag.
	registerHelpFlag(flags, &copyConfiguration.help)

	// Wire up copy flags.
	flags.VarP(&copyConfiguration.mode, "mode", "m", "Specify the octal mode for created directories (defaults to 0755)")
}
