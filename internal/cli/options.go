package cli

import (
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/wasteland/internal/config"
)

// Options carries the resolved configuration and IO for one command.
type Options struct {
	Config *config.Config
	Debug  bool
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewOptions wraps cfg with the process standard streams.
func NewOptions(cfg *config.Config, debug bool) Options {
	return Options{
		Config: cfg,
		Debug:  debug,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

func (o Options) logger() (*slog.Logger, error) {
	return newLogger(o.Stderr, o.Debug, o.Config.LogLevel, o.Config.LogFormat)
}
