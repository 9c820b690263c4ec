// Package ui provides terminal output components for the optimium-args CLI.
//
// These components follow a "run once and exit" pattern: the non-interactive
// commands (export, defaults, show) render a banner, do their work, and
// finish with a result box. The interactive wizard lives in
// internal/wizard/tui and shares the same color palette.
//
// The package provides:
//
//   - Header: command banner with ordered parameters
//   - Result: success, failure and warning boxes with ordered details
//   - RenderPanel: a titled box around preformatted text
//   - ConfirmOverwrite: a y/N prompt guarding existing export files
//
// Example:
//
//	fmt.Println(ui.NewHeader("Export Arguments", "optimium-args export",
//	    ui.Param{Key: "Destination", Value: path},
//	    ui.Param{Key: "Format", Value: "json"},
//	).Render())
//
// # Logging Integration
//
// Logging is controlled by OPTIMIUM_ARGS_LOG_LEVEL or --log-level. When
// unset, zap logging is silent so the curated output stays clean.
package ui
