// Package logger configures the structured logger used by the print
// server, the daemon and the examples. The driver core itself never logs.
package logger

import (
	"io"
	"log/slog"
	"os"

	"github.com/phsym/console-slog"
)

// New returns a slog.Logger writing to stdout. With ENV=development it
// uses a human-readable console handler, otherwise JSON.
func New(level slog.Level) *slog.Logger {
	return NewWithOutput(level, os.Stdout)
}

// NewWithOutput is New with an explicit output, mainly for tests.
func NewWithOutput(level slog.Level, out io.Writer) *slog.Logger {
	var handler slog.Handler
	if os.Getenv("ENV") == "development" {
		handler = console.NewHandler(out, &console.HandlerOptions{
			AddSource: true,
			Level:     level,
		})
	} else {
		handler = slog.NewJSONHandler(out, &slog.HandlerOptions{
			Level: level,
		})
	}
	return slog.New(handler)
}
