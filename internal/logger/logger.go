package logger

import (
	"log/slog"
	"os"
)

// New creates the process-wide slog.Logger with a JSON handler.
func New() *slog.Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	return slog.New(handler)
}
