package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// printPaths prints paths one per line to the command's output.
func printPaths(command *cobra.Command, paths []string) {
	output := command.OutOrStdout()
	for _, path := range paths {
		fmt.Fprintln(output, path)
	}
}

func filesMain(command *cobra.Command, arguments []string) error {
	// Validate arguments.
	if len(arguments) != 1 {
		return errors.New("a single directory must be specified")
	}

	// Perform the listing.
	files, err := manager.Files(arguments[0])
	if err != nil {
		return errors.Wrap(err, "unable to list files")
	}

	// Print the results.
	printPaths(command, files)

	// Success.
	return nil
}

var filesCommand = &cobra.Command{
	Use:          "files <directory>",
	Short:        "List all files beneath a directory in sorted order",
	RunE:         filesMain,
	SilenceUsage: true,
}

var filesConfiguration struct {
	// help indicates whether or not to show help information and exit.
	help bool
}

func dirsMain(command *cobra.Command, arguments []string) error {
	// Validate arguments.
	if len(arguments) != 1 {
		return errors.New("a single directory must be specified")
	}

	// Perform the listing.
	directories, err := manager.Directories(arguments[0])
	if err != nil {
		return errors.Wrap(err, "unable to list directories")
	}

	// Print the results.
	printPaths(command, directories)

	// Success.
	return nil
}

var dirsCommand = &cobra.Command{
	Use:          "dirs <directory>",
	Short:        "List all directories beneath a directory, deepest first",
	RunE:         dirsMain,
	SilenceUsage: true,
}

var dirsConfiguration struct {
	// help indicates whether or not to show help information and exit.
	help bool
}

func init() {
	// Wire up flags for both listing commands.
	for _, c := range []struct {
		command *cobra.Command
		help    *bool
	}{
		{filesCommand, &filesConfiguration.help},
		{dirsCommand, &dirsConfiguration.help},
	} {
		registerHelpFlag(c.command.Flags(), c.help)
	}
}
