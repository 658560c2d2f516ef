package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/mutagen-io/treeops/pkg/filesystem"
)

func chmodMain(_ *cobra.Command, arguments []string) error {
	// Validate arguments.
	if len(arguments) != 2 {
		return errors.New("a mode and a path must be specified")
	}
	mode, err := filesystem.ParseMode(arguments[0], filesystem.ModePermissionsSpecialMask)
	if err != nil {
		return errors.Wrap(err, "invalid mode")
	}

	// Perform the operation.
	if err := manager.Chmod(arguments[1], mode); err != nil {
		return errors.Wrap(err, "unable to change mode")
	}

	// Success.
	return nil
}

var chmodCommand = &cobra.Command{
	Use:          "chmod <mode> <path>",
	Short:        "Set the mode of a path recursively",
	RunE:         chmodMain,
	SilenceUsage: true,
}

var chmodConfiguration struct {
	// help indicates whether or not to show help information and exit.
	help bool
}

func chownMain(_ *cobra.Command, arguments []string) error {
	// Validate arguments.
	if len(arguments) != 2 {
		return errors.New("an owner and a path must be specified")
	}

	// Perform the operation.
	if err := manager.Chown(arguments[1], arguments[0]); err != nil {
		return errors.Wrap(err, "unable to change owner")
	}

	// Success.
	return nil
}

var chownCommand = &cobra.Command{
	Use:          "chown <owner> <path>",
	Short:        "Set the owning user of a path recursively",
	RunE:         chownMain,
	SilenceUsage: true,
}

var chownConfiguration struct {
	// help indicates whether or not to show help information and exit.
	help bool
}

func chgrpMain(_ *cobra.Command, arguments []string) error {
	// Validate arguments.
	if len(arguments) != 2 {
		return errors.New("a group and a path must be specified")
	}

	// Perform the operation.
	if err := manager.Chgrp(arguments[1], arguments[0]); err != nil {
		return errors.Wrap(err, "unable to change group")
	}

	// Success.
	return nil
}

var chgrpCommand = &cobra.Command{
	Use:          "chgrp <group> <path>",
	Short:        "Set the owning group of a path recursively",
	RunE:         chgrpMain,
	SilenceUsage: true,
}

var chgrpConfiguration struct {
	// help indicates whether or not to show help information and exit.
	help bool
}

func init() {
	// Wire up flags for the permission commands.
	for _, c := range []struct {
		command *cobra.Command
		help    *bool
	}{
		{chmodCommand, &chmodConfiguration.help},
		{chownCommand, &chownConfiguration.help},
		{chgrpCommand, &chgrpConfiguration.help},
	} {
		registerHelpFlag(c.command.Flags(), c.help)
	}
}
