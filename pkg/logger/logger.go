package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

const serviceName = "relief-button"

// InitLogger builds the JSON logger used by every lambda and installs it as
// the slog default. CloudWatch picks up stdout.
func InitLogger(level, format string) *slog.Logger {
	log := New(os.Stdout, level, format)
	slog.SetDefault(log)
	return log
}

// New builds a logger writing to w. Format "text" gives human readable
// output for local runs, anything else is JSON.
func New(w io.Writer, level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}

	var handler slog.Handler
	switch strings.ToLower(format) {
	case "text":
		handler = slog.NewTextHandler(w, opts)
	default:
		handler = slog.NewJSONHandler(w, opts)
	}

	return slog.New(handler).With("service", serviceName)
}

// ParseLevel maps debug, info, warn and error to slog levels, defaulting to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
