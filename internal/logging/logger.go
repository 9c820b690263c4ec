package logging

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger *zap.Logger

// LogLevelEnvVar is the environment variable that controls logging verbosity.
// When unset or empty, logging is silent (no zap output).
// Valid values: "debug", "info", "warn", "error"
const LogLevelEnvVar = "OPTIMIUM_ARGS_LOG_LEVEL"

// Initialize creates a new logger with the specified level writing to
// outputPath. If level is empty, it checks OPTIMIUM_ARGS_LOG_LEVEL.
// If neither is set, logging is disabled (silent mode). An empty outputPath
// writes to stderr, which keeps stdout free for exported documents.
func Initialize(level string, outputPath string) error {
	// If no level provided, check environment variable
	if level == "" {
		level = os.Getenv(LogLevelEnvVar)
	}

	// If still no level, use silent mode (nop logger)
	if level == "" {
		logger = zap.NewNop()
		return nil
	}

	if outputPath == "" {
		outputPath = "stderr"
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(ParseLevel(level)),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{outputPath},
		ErrorOutputPaths: []string{"stderr"},
	}

	// Customize encoder for better readability
	config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder
	if outputPath != "stderr" && outputPath != "stdout" {
		// No ANSI colors in log files
		config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	var err error
	logger, err = config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	return nil
}

// InitializeFromEnv initializes the logger from the OPTIMIUM_ARGS_LOG_LEVEL
// environment variable, logging to stderr.
func InitializeFromEnv() error {
	return Initialize("", "")
}

// ParseLevel maps a level name to a zap level.
// Unknown names fall back to info.
func ParseLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// SetLogger replaces the global logger. Tests use this with zaptest/observer.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}

// GetLogger returns the global logger instance
func GetLogger() *zap.Logger {
	if logger == nil {
		// Fallback to silent logger if not initialized
		logger = zap.NewNop()
	}
	return logger
}

// Info logs an info message
func Info(msg string, fields ...zap.Field) {
	GetLogger().Info(msg, fields...)
}

// Debug logs a debug message
func Debug(msg string, fields ...zap.Field) {
	GetLogger().Debug(msg, fields...)
}

// Warn logs a warning message
func Warn(msg string, fields ...zap.Field) {
	GetLogger().Warn(msg, fields...)
}

// Error logs an error message
func Error(msg string, fields ...zap.Field) {
	GetLogger().Error(msg, fields...)
}

// LogStepTransition logs a navigation request. moved is false when the
// request was clamped at the first or last step.
func LogStepTransition(action string, from, to int, moved bool) {
	if !moved {
		Debug("Navigation clamped",
			zap.String("action", action),
			zap.Int("step", from),
		)
		return
	}
	Info("Step changed",
		zap.String("action", action),
		zap.Int("from", from),
		zap.Int("to", to),
	)
}

// LogFieldSet logs a write to a document field
func LogFieldSet(step int, field string, raw string, err error) {
	if err != nil {
		Warn("Field rejected",
			zap.Int("step", step),
			zap.String("field", field),
			zap.String("raw", raw),
			zap.Error(err),
		)
		return
	}
	Debug("Field set",
		zap.Int("step", step),
		zap.String("field", field),
		zap.String("raw", raw),
	)
}

// LogExport logs a completed export
func LogExport(destination string, format string, size int) {
	Info("Arguments exported",
		zap.String("destination", destination),
		zap.String("format", format),
		zap.Int("bytes", size),
	)
}

// Sync flushes any buffered log entries
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}
