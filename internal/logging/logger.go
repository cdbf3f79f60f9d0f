package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// New builds the application logger: JSON to stdout at the given level.
// Unrecognized levels fall back to info rather than failing startup.
func New(level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn", "warning":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}

// Discard returns a logger whose output goes nowhere. Used in tests and as
// the fallback when a component receives a nil logger.
func Discard() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}
