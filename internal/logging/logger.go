package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Format selects the slog handler.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// Options configures NewWithOptions.
type Options struct {
	Level  slog.Level
	Format Format
	Output io.Writer
}

// New creates a text logger on Stderr (to keep Stdout for reports and JSON-RPC).
func New(level slog.Level) *slog.Logger {
	return NewWithOptions(Options{Level: level})
}

// NewWithOptions builds a logger. Output defaults to Stderr and Format to text.
// Both handlers standardize the "error" key to "err".
func NewWithOptions(opts Options) *slog.Logger {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	handlerOpts := &slog.HandlerOptions{
		Level: opts.Level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == "error" {
				a.Key = "err"
			}
			return a
		},
	}

	if opts.Format == FormatJSON {
		return slog.New(slog.NewJSONHandler(out, handlerOpts))
	}
	return slog.New(slog.NewTextHandler(out, handlerOpts))
}

// ParseFormat maps text and json (any case) to a Format. An empty string is text.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(FormatText):
		return FormatText, nil
	case string(FormatJSON):
		return FormatJSON, nil
	}
	return FormatText, fmt.Errorf("unknown log format %q", s)
}

// NewNop returns a logger that discards everything.
func NewNop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// ParseLevel maps debug, info, warn and error (any case) to a slog.Level.
// An empty string is info.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
}
