// Package logging builds the application's slog.Logger: tinted console
// output for local development, JSON for production.
package logging

import (
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
)

// ToLevel maps a config string to a slog.Level, defaulting to Info.
func ToLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New creates a logger writing to stderr. handler selects the output
// format: "json" for structured logs, anything else for tinted text.
func New(level string, handler string) *slog.Logger {
	slogLevel := ToLevel(level)

	var h slog.Handler
	switch handler {
	case "json":
		h = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			AddSource: true,
			Level:     slogLevel,
		})
	default:
		h = tint.NewHandler(os.Stderr, &tint.Options{
			Level: slogLevel,
		})
	}

	return slog.New(h)
}
