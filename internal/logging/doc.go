// Package logging provides structured logging for optimium-args.
//
// This package wraps a zap logger with package-level convenience functions so
// the wizard core, the TUI and the CLI commands log the same way without
// passing a logger around.
//
// # Silent By Default
//
// Logging is disabled unless a level is given, either through the
// --log-level flag or the OPTIMIUM_ARGS_LOG_LEVEL environment variable:
//
//	OPTIMIUM_ARGS_LOG_LEVEL=debug optimium-args export --stdout
//
// Output goes to stderr (or --log-file) so it never mixes with a document
// exported to stdout or with the interactive wizard screen.
//
// # Domain Logging
//
//	logging.LogStepTransition("advance", 2, 3, true)
//	logging.LogFieldSet(3, "remote.port", "8080", nil)
//	logging.LogExport("user_arguments.json", "json", 312)
//
// Clamped navigation (retreat on the first step, advance on the last) is
// logged at debug level; rejected field writes at warn level.
package logging
