package logger

import (
	"io"
	"log/slog"
	"os"
)

// Init initializes the structured logger to write to a file
// This avoids interfering with the TUI output
func Init(path string) error {
	logFile, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return err
	}

	handler := slog.NewJSONHandler(logFile, &slog.HandlerOptions{
		Level: getLogLevel(),
	})
	logger := slog.New(handler)
	slog.SetDefault(logger)

	return nil
}

// Silence discards all log output. Used when no log file is available, since
// the default stderr handler would write over the TUI.
func Silence() {
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// getLogLevel returns the log level from environment variable
// Defaults to INFO if not set
func getLogLevel() slog.Level {
	switch os.Getenv("KUBELS_LOG_LEVEL") {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
