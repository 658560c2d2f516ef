package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mutagen-io/treeops/cmd"
	"github.com/mutagen-io/treeops/pkg/treeops"
)

func versionMain(command *cobra.Command, _ []string) error {
	// Print version information.
	fmt.Fprintln(command.OutOrStdout(), treeops.Version)

	// Success.
	return nil
}

var versionCommand = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run:   cmd.Mainify(versionMain),
}

var versionConfiguration struct {
	// help indicates whether or not help information should be shown for the
	// command.
	help bool
}

func init() {
	// Add the help flag.
	registerHelpFlag(versionCommand.Flags(), &versionConfiguration.help)
}
