package cli

import (
	"context"
	"fmt"

	"github.com/aretw0/wasteland"
	"github.com/aretw0/wasteland/internal/presentation/tui"
)

// Repl answers walk, sync and trace commands typed on Stdin.
// The banner and prompt are shown only on an interactive terminal.
func Repl(ctx context.Context, opts Options) error {
	if opts.Config.Map == StdinPath {
		return fmt.Errorf("the repl reads commands from stdin; pass the map as a file")
	}
	logger, err := opts.logger()
	if err != nil {
		return err
	}
	engine, closeStore, err := createEngine(opts.Config, opts.Stdin, logger, nil, opts.Debug)
	if err != nil {
		return err
	}
	defer closeStore()

	runner := wasteland.NewRunner(opts.Stdin, opts.Stdout)
	runner.Headless = !isTerminal(opts.Stdout)
	if !runner.Headless {
		tui.PrintBanner(opts.Stdout, wasteland.Version)
	}
	return runner.Run(ctx, engine)
}
