package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

const FormatText = "text"

// New builds the process logger on stdout and installs it as the slog default.
func New(format, level string) *slog.Logger {
	logger := slog.New(NewHandler(os.Stdout, format, level))

	slog.SetDefault(logger)

	return logger
}

// NewHandler returns a text handler for "text" and a JSON handler otherwise.
// Debug level also records the call site.
func NewHandler(w io.Writer, format, level string) slog.Handler {
	lvl := ParseLevel(level)
	opts := &slog.HandlerOptions{
		Level:     lvl,
		AddSource: lvl <= slog.LevelDebug,
	}

	if strings.EqualFold(format, FormatText) {
		return slog.NewTextHandler(w, opts)
	}

	return slog.NewJSONHandler(w, opts)
}

// ParseLevel accepts the slog level names with optional offsets ("warn", "debug-4").
// Anything else is info.
func ParseLevel(s string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}

	return lvl
}
