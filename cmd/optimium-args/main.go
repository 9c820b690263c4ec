// Optimium-args builds the user_arguments.json file consumed by the Optimium
// optimizer.
//
// It walks the user through six steps (device, model, remote, target,
// runtime and optimization settings) in an interactive terminal wizard and
// writes the resulting document. The same steps can be run
// non-interactively with the export command.
//
// Usage:
//
//	optimium-args [command] [flags]
//
// Running without arguments launches the interactive wizard.
// See 'optimium-args --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/optimium-tools/optimium-args/internal/config"
	"github.com/optimium-tools/optimium-args/internal/logging"
	"github.com/optimium-tools/optimium-args/internal/version"
)

// Global flags
var (
	logLevel string
	logFile  string
)

// prefs is loaded before any command runs
var prefs *config.Registry

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "optimium-args",
	Short: "Optimium arguments wizard",
	Long: `Build the user_arguments.json file for an Optimium optimization run.

The wizard asks for device, model, remote, target, runtime and optimization
settings over six steps and saves the result as JSON (or YAML).

If no command is specified, the interactive wizard will launch automatically.`,
	Version:           version.Version,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.Sync()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: run wizard when no subcommand provided
		return runWizard(cmd, args)
	},
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); overrides "+logging.LogLevelEnvVar)
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write logs to this file instead of stderr")

	rootCmd.AddCommand(versionCmd)
}

// setup loads preferences and starts logging. The log level comes from
// --log-level, then the environment, then the preferences file.
func setup(cmd *cobra.Command, args []string) error {
	registry, prefsErr := config.LoadRegistry()
	if prefsErr != nil || registry == nil {
		registry = config.NewRegistry()
	}
	prefs = registry

	level := logLevel
	if level == "" && os.Getenv(logging.LogLevelEnvVar) == "" {
		level = prefs.LogLevel()
	}
	file := logFile
	if file == "" {
		file = prefs.LogFile()
	}

	if err := logging.Initialize(level, file); err != nil {
		return err
	}

	if prefsErr != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: ignoring preferences: %v\n", prefsErr)
		logging.Warn("Preferences not loaded, using defaults")
	}
	return nil
}

// preferences returns the loaded preferences, or defaults when setup did not run
func preferences() *config.Registry {
	if prefs == nil {
		prefs = config.NewRegistry()
	}
	return prefs
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "optimium-args %s\n", version.Full())
		if version.IsDev() {
			fmt.Fprintln(cmd.OutOrStdout(), "development build; set Version with -ldflags for releases")
		}
	},
}
