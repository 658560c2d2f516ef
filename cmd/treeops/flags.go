package main

import (
	"github.com/spf13/pflag"

	"github.com/mutagen-io/treeops/pkg/filesystem"
)

// registerHelpFlag disables alphabetical flag sorting and manually adds a help
// flag to override the default message. Cobra will still implement its logic
// automatically.
func registerHelpFlag(flags *pflag.FlagSet, help *bool) {
	flags.SortFlags = false
	flags.BoolVarP(help, "help", "h", false, "Show help information")
}

// modeValue is a pflag.Value that parses octal modes, including the setuid,
// setgid, and sticky bits.
type modeValue struct {
	// mode is the parsed mode.
	mode filesystem.Mode
	// set indicates whether or not the flag was specified.
	set bool
}

// String implements pflag.Value.String.
func (v *modeValue) String() string {
	if !v.set {
		return ""
	}
	return v.mode.String()
}

// Set implements pflag.Value.Set.
func (v *modeValue) Set(value string) error {
	mode, err := filesystem.ParseMode(value, filesystem.ModePermissionsSpecialMask)
	if err != nil {
		return err
	}
	v.mode = mode
	v.set = true
	return nil
}

// Type implements pflag.Value.Type.
func (v *modeValue) Type() string {
	return "mode"
}
