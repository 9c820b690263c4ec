// Package config manages the optimium-args preferences file.
//
// The preferences file is a small YAML document holding export and logging
// defaults. It deliberately does not hold wizard answers: every wizard run
// starts from the default arguments template and nothing typed into the
// wizard survives the run except the exported document itself.
//
// # Configuration File Location
//
//   - Linux: $XDG_CONFIG_HOME/optimium-args/config.yaml or $HOME/.config/optimium-args/config.yaml
//   - macOS: $HOME/.config/optimium-args/config.yaml
//   - Windows: %LOCALAPPDATA%\optimium-args\config.yaml
//
// # Usage Example
//
//	registry, err := config.LoadRegistry()
//	if err != nil {
//	    return err
//	}
//	path := registry.ExportPath(registry.ExportFormat())
//
//	registry.SetExportDefaults("out", "", arguments.FormatYAML)
//	if err := registry.Save(); err != nil {
//	    return err
//	}
//
// # File Format
//
//	version: 1
//	export:
//	    directory: out
//	    format: yaml
//	logging:
//	    level: debug
//	    file: /tmp/optimium-args.log
//
// Saves are atomic (write to a temporary file, then rename) and the file is
// created with 0600 permissions.
package config
