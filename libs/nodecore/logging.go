package nodecore

import (
	"log/slog"
	"os"
	"strings"
)

var Logger *slog.Logger

func init() {
	// Logs go to stderr as structured JSON so stdout stays clean for results.
	Logger = slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
}

// Setup reconfigures the package logger for one run. Verbose lowers the
// threshold to debug; the NODERUNNER_LOG environment variable, when set to
// one of debug, info, warn or error, overrides both.
func Setup(verbose bool) {
	Logger = slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel(verbose),
	}))
}

func logLevel(verbose bool) slog.Level {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	switch strings.ToLower(os.Getenv("NODERUNNER_LOG")) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	return level
}

// Info logs an informational message.
func Info(msg string, args ...any) {
	Logger.Info(msg, args...)
}

// LogError logs an error message.
func LogError(msg string, args ...any) {
	Logger.Error(msg, args...)
}

// Debug logs a debug message.
func Debug(msg string, args ...any) {
	Logger.Debug(msg, args...)
}
