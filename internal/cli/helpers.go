package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/wasteland/internal/logging"
	"golang.org/x/term"
)

// newLogger configures the application logger on w (Stderr, to separate
// from Stdout reports). Debug mode overrides the configured level.
func newLogger(w io.Writer, debug bool, level, format string) (*slog.Logger, error) {
	lvl, err := logging.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	if debug {
		lvl = slog.LevelDebug
	}
	fmtName, err := logging.ParseFormat(format)
	if err != nil {
		return nil, err
	}
	return logging.NewWithOptions(logging.Options{Level: lvl, Format: fmtName, Output: w}), nil
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// printSystemMessage prints a standardized system message.
func printSystemMessage(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, ">>> %s\n", fmt.Sprintf(format, args...))
}
