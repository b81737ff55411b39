package logger

import (
	"io"
	"log/slog"
	"os"
)

// New builds the application logger: human-readable text on stdout and
// JSON on stderr, both at the given slog level. It also becomes the
// slog default.
func New(level int) *slog.Logger {
	return NewWithWriters(level, os.Stdout, os.Stderr)
}

// NewWithWriters is New with explicit text and JSON destinations.
func NewWithWriters(level int, text, json io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.Level(level)}
	l := slog.New(slog.NewMultiHandler(
		slog.NewTextHandler(text, opts),
		slog.NewJSONHandler(json, opts),
	))
	slog.SetDefault(l)
	return l
}

// Fatal logs msg at error level and exits with status 1.
func Fatal(msg string, args ...any) {
	slog.Error(msg, args...)
	os.Exit(1)
}
