// Package logging provides structured logging configuration for scriptbox.
//
// Logging Strategy:
// - JSON output on stderr so script stdout/stderr streaming stays clean
// - Log levels configurable via config file or --log-level (debug..error)
// - Default logger set globally for convenience, also returned for explicit passing
//
// Usage:
//
//	logger := logging.SetupLogger("info")
//	logger.Info("script registered", "name", name, "type", scriptType)
package logging

import (
	"log/slog"
	"os"
	"strings"
)

// SetupLogger creates and configures a structured JSON logger writing to
// stderr. The level parameter accepts: "debug", "info", "warn", "error"
// (case-insensitive); invalid levels default to "info".
//
// The logger is also set as the default via slog.SetDefault, allowing use
// of the global slog.Info(), slog.Error(), etc. functions.
func SetupLogger(level string) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: parseLevel(level),
	}

	// stderr keeps JSON log lines out of streamed script output.
	handler := slog.NewJSONHandler(os.Stderr, opts)
	logger := slog.New(handler)

	slog.SetDefault(logger)

	return logger
}

// parseLevel converts a string log level to slog.Level.
// Returns slog.LevelInfo for unrecognized values.
func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// WithComponent returns a logger with a pre-set component attribute.
//
// Usage:
//
//	execLog := logging.WithComponent(logger, "executor")
//	execLog.Info("spawning interpreter") // includes "component": "executor"
func WithComponent(logger *slog.Logger, component string) *slog.Logger {
	return logger.With(slog.String("component", component))
}
