package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/optimium-tools/optimium-args/internal/arguments"
	"github.com/optimium-tools/optimium-args/internal/export"
	"github.com/optimium-tools/optimium-args/internal/ui"
	"github.com/optimium-tools/optimium-args/internal/wizard"
	"github.com/optimium-tools/optimium-args/internal/wizard/tui"
)

func init() {
	rootCmd.AddCommand(wizardCmd)
	rootCmd.AddCommand(newExportCmd())
	rootCmd.AddCommand(newDefaultsCmd())
	rootCmd.AddCommand(newShowCmd())
}

// wizardCmd launches the interactive wizard
var wizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Launch the interactive arguments wizard",
	Long: `Launch the interactive wizard.

Walk through the six steps with ctrl+n / ctrl+p, fill in each field, and
download the document from the final step.`,
	RunE: runWizard,
}

func runWizard(cmd *cobra.Command, args []string) error {
	p := preferences()
	format := p.ExportFormat()

	session := wizard.NewSession()
	defer session.Close()

	return tui.Run(session, p.ExportPath(format), format)
}

// flagAnswers maps export flags to the fields they fill
var flagAnswers = []struct {
	flag  string
	field arguments.Field
}{
	{"device-name", arguments.FieldDeviceName},
	{"framework", arguments.FieldFramework},
	{"address", arguments.FieldAddress},
	{"port", arguments.FieldPort},
	{"arch", arguments.FieldArch},
	{"os", arguments.FieldOS},
	{"threads", arguments.FieldNumThreads},
	{"log-key", arguments.FieldOptLogKey},
	{"tuning", arguments.FieldEnableTuning},
}

type exportOptions struct {
	output string
	format string
	stdout bool
	force  bool
}

func newExportCmd() *cobra.Command {
	var opts exportOptions

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the arguments document without the interactive wizard",
		Long: `Run every wizard step non-interactively and write the document.

Each flag answers one field. Fields without a flag keep the value the wizard
would show: the framework becomes torch and the remote port 32264, while the
device name, address and log key keep their placeholders.`,
		Example: `  # The scenario used in the docs
  optimium-args export --device-name edge01 --framework tflite --address "" \
      --port 9999 --arch X86_64 --os LINUX --threads 4 --log-key run1 --tuning

  # YAML to stdout
  optimium-args export --device-name edge01 --format yaml --stdout

  # Into a directory, replacing an existing file
  optimium-args export --device-name edge01 -o ./out --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.String("device-name", "", "Device alias")
	f.String("framework", "", "Model framework ("+strings.Join(choices(arguments.Frameworks), ", ")+")")
	f.String("address", "", "Remote address (empty for localhost)")
	f.String("port", "", "Remote port (non-numeric input uses 32264)")
	f.String("arch", "", "Target architecture ("+strings.Join(choices(arguments.Arches), ", ")+")")
	f.String("os", "", "Target OS ("+strings.Join(choices(arguments.OperatingSystems), ", ")+")")
	f.Int("threads", arguments.DefaultNumThreads, "Number of runtime threads")
	f.String("log-key", "", "Optimization log key")
	f.Bool("tuning", false, "Enable hardware-specific auto-tuning")

	f.StringVarP(&opts.output, "output", "o", "", "Destination file or directory (default from preferences)")
	f.StringVar(&opts.format, "format", "", "Output format (json, yaml); default from preferences or the output extension")
	f.BoolVar(&opts.stdout, "stdout", false, "Write the document to stdout instead of a file")
	f.BoolVarP(&opts.force, "force", "f", false, "Overwrite an existing file without asking")

	return cmd
}

// exportAnswers collects the answers for flags set on the command line
func exportAnswers(flags *pflag.FlagSet) wizard.Answers {
	answers := wizard.Answers{}
	for _, fa := range flagAnswers {
		if !flags.Changed(fa.flag) {
			continue
		}
		answers[fa.field] = flags.Lookup(fa.flag).Value.String()
	}
	return answers
}

// exportFormat picks the format from --format, then the output extension,
// then the preferences.
func exportFormat(opts exportOptions) (arguments.Format, error) {
	if opts.format != "" {
		return arguments.ParseFormat(opts.format)
	}
	if ext := filepath.Ext(opts.output); ext != "" {
		return arguments.FormatForPath(opts.output), nil
	}
	return preferences().ExportFormat(), nil
}

func runExport(cmd *cobra.Command, opts exportOptions) error {
	format, err := exportFormat(opts)
	if err != nil {
		return err
	}

	session := wizard.NewSession()
	defer session.Close()

	if err := session.Complete(exportAnswers(cmd.Flags())); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}

	out, err := session.Export(format)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if opts.stdout {
		_, err := w.Write(out.Data)
		return err
	}

	dest := opts.output
	if dest == "" {
		dest = preferences().ExportPath(format)
	}
	dest = export.Resolve(dest, format)

	fmt.Fprintln(w, ui.NewHeader("Export Arguments", "optimium-args export",
		ui.Param{Key: "Destination", Value: dest},
		ui.Param{Key: "Format", Value: string(format)},
	).Render())

	if _, err := os.Stat(dest); err == nil && !opts.force {
		if !ui.ConfirmOverwrite(cmd.InOrStdin(), w, dest) {
			fmt.Fprintln(w, ui.RenderWarning("Nothing written",
				ui.Param{Key: "Reason", Value: "existing file kept"},
				ui.Param{Key: "Hint", Value: "pass --force to overwrite"},
			))
			return nil
		}
	}

	if err := export.Save(dest, out.Data, format); err != nil {
		fmt.Fprintln(w, ui.RenderFailure("Export failed", err, []string{
			"Check that the destination directory is writable",
			"Choose another destination with --output",
		}))
		return err
	}

	doc := session.Document()
	result := ui.NewSuccessResult("Arguments exported",
		ui.Param{Key: "File", Value: dest},
		ui.Param{Key: "Size", Value: strconv.Itoa(len(out.Data)) + " bytes"},
		ui.Param{Key: "Device", Value: doc.DeviceName},
	)
	if pending := doc.Placeholders(); len(pending) > 0 {
		result.AddDetail("Unset", joinFields(pending))
	}
	fmt.Fprintln(w, result.Render())
	return nil
}

func newDefaultsCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "defaults",
		Short: "Print the default arguments template",
		Long: `Print the document a new wizard session starts from, with every
placeholder in place.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := arguments.ParseFormat(format)
			if err != nil {
				return err
			}
			data, err := arguments.New().Encode(f)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().StringVar(&format, "format", "json", "Output format (json, yaml)")
	return cmd
}

func newShowCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show <file>",
		Short: "Show an exported arguments document",
		Long: `Parse an existing arguments document and print it.

The decoder is chosen from the file extension (.yaml/.yml for YAML, anything
else for JSON). Unknown keys are rejected.`,
		Example: `  # Grouped view
  optimium-args show user_arguments.json

  # One-line summary
  optimium-args show user_arguments.json --format summary

  # Convert to YAML
  optimium-args show user_arguments.json --format yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd.OutOrStdout(), args[0], format)
		},
	}

	cmd.Flags().StringVar(&format, "format", "detailed", "Output format (detailed, summary, json, yaml)")
	return cmd
}

func runShow(w io.Writer, path string, format string) error {
	doc, err := export.Load(path)
	if err != nil {
		return err
	}

	switch format {
	case "detailed":
		if !ui.IsTerminal() {
			// Plain text when piped
			fmt.Fprint(w, doc.FormatDetailed())
			return nil
		}
		fmt.Fprintln(w, ui.RenderPanel(filepath.Base(path), doc.FormatDetailed(), ui.GetTerminalWidth()))
	case "summary":
		fmt.Fprintln(w, doc.Summary())
	case "json", "yaml":
		f, _ := arguments.ParseFormat(format)
		data, err := doc.Encode(f)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	default:
		return errors.New("unknown format " + strconv.Quote(format) + " (expected detailed, summary, json or yaml)")
	}
	return nil
}

func choices[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

func joinFields(fields []arguments.Field) string {
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}
