package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mutagen-io/treeops/pkg/must"
	"github.com/mutagen-io/treeops/pkg/treeops"
)

// rootMain is the entry point for the root command.
func rootMain(command *cobra.Command, _ []string) error {
	// If no commands were given, then print help information and bail. We don't
	// have to worry about warning about arguments being present here (which
	// would be incorrect usage) because arguments can't even reach this point
	// (they will be mistaken for subcommands and a error will be displayed).
	must.CommandHelp(command, logger)

	// Success.
	return nil
}

// rootCommand is the root command.
var rootCommand = &cobra.Command{
	Use:               "treeops",
	Version:           treeops.Version,
	Short:             "Recursive filesystem tree operations",
	RunE:              rootMain,
	PersistentPreRunE: loadEnvironment,
	SilenceUsage:      true,
}

// rootConfiguration stores configuration for the root command.
var rootConfiguration struct {
	// help indicates whether or not to show help information and exit.
	help bool
	// logLevel is the log level specified on the command line, if any.
	logLevel string
	// configurationPath is the path of the configuration file, if overridden.
	configurationPath string
}

func init() {
	// Disable Cobra's command sorting behavior. By default, it sorts commands
	// alphabetically in the help output.
	cobra.EnableCommandSorting = false

	// Disable Cobra's use of mousetrap. The CLI is designed to be used from a
	// shell.
	cobra.MousetrapHelpText = ""

	// Set the template used by the version flag.
	rootCommand.SetVersionTemplate("treeops version {{ .Version }}\n")

	// Add the help flag.
	registerHelpFlag(rootCommand.Flags(), &rootConfiguration.help)

	// Wire up persistent flags, which are inherited by every command.
	persistentFlags := rootCommand.PersistentFlags()
	persistentFlags.SortFlags = false
	persistentFlags.StringVar(&rootConfiguration.logLevel, "log-level", "", "Set the log level (disabled|error|warn|info|debug|trace)")
	persistentFlags.StringVar(&rootConfiguration.configurationPath, "config", "", "Specify the configuration file path (defaults to ~/.treeops.yml)")

	// Disable Cobra's completion command.
	rootCommand.CompletionOptions.DisableDefaultCmd = true

	// Register commands. We do this here (rather than in individual init
	// functions) so that we can control the order.
	rootCommand.AddCommand(
		filesCommand,
		dirsCommand,
		removeCommand,
		copyCommand,
		chmodCommand,
		chownCommand,
		chgrpCommand,
		versionCommand,
	)
}

func main() {
	// Execute the root command. Cobra prints any error that occurs.
	if err := rootCommand.Execute(); err != nil {
		os.Exit(1)
	}
}
