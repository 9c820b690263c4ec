package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/optimium-tools/optimium-args/internal/arguments"
	"github.com/optimium-tools/optimium-args/internal/config"
	"github.com/optimium-tools/optimium-args/internal/ui"
)

func init() {
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(newConfigSetCmd())
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage export and logging preferences",
	Long: `Manage the preferences file.

Preferences hold the default export destination and format, and a fallback
log level. Wizard answers are never stored.`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the preferences file location",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.GetConfigPath()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default preferences file if none exists",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.CreateDefaultConfig()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), ui.RenderSuccess("Preferences ready", ui.Param{Key: "File", Value: path}))
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective preferences",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := yaml.Marshal(preferences())
		if err != nil {
			return fmt.Errorf("failed to marshal preferences: %w", err)
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

func newConfigSetCmd() *cobra.Command {
	var (
		dir, file, format string
		level, logPath    string
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Update preferences",
		Example: `  # Export YAML into ./build by default
  optimium-args config set --export-dir build --format yaml

  # Log at debug level to a file
  optimium-args config set --default-log-level debug --default-log-file /tmp/optimium-args.log`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := preferences()
			flags := cmd.Flags()

			exp := *p.Export
			if flags.Changed("export-dir") {
				exp.Directory = dir
			}
			if flags.Changed("export-file") {
				exp.Filename = file
			}
			f := p.ExportFormat()
			if flags.Changed("format") {
				parsed, err := arguments.ParseFormat(format)
				if err != nil {
					return err
				}
				f = parsed
			}
			p.SetExportDefaults(exp.Directory, exp.Filename, f)

			lp := *p.Logging
			if flags.Changed("default-log-level") {
				lp.Level = level
			}
			if flags.Changed("default-log-file") {
				lp.File = logPath
			}
			p.SetLogging(lp.Level, lp.File)

			if err := p.Save(); err != nil {
				return err
			}

			path, _ := config.GetConfigPath()
			fmt.Fprintln(cmd.OutOrStdout(), ui.RenderSuccess("Preferences saved",
				ui.Param{Key: "File", Value: path},
				ui.Param{Key: "Export to", Value: p.ExportPath(f)},
			))
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "export-dir", "", "Default export directory")
	cmd.Flags().StringVar(&file, "export-file", "", "Default export filename")
	cmd.Flags().StringVar(&format, "format", "", "Default export format (json, yaml)")
	cmd.Flags().StringVar(&level, "default-log-level", "", "Fallback log level (debug, info, warn, error)")
	cmd.Flags().StringVar(&logPath, "default-log-file", "", "Fallback log file")
	return cmd
}
