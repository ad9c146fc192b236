package cli

import (
	"context"
	"fmt"
)

// Solve answers the configured query and writes the report to Stdout.
func Solve(ctx context.Context, opts Options) error {
	cfg := opts.Config
	logger, err := opts.logger()
	if err != nil {
		return err
	}

	if !cfg.Query.WantsWalk() && !cfg.Query.WantsSync() {
		return fmt.Errorf("nothing to solve: set --start/--goal or --start-suffix/--goal-suffix")
	}

	engine, closeStore, err := createEngine(cfg, opts.Stdin, logger, nil, opts.Debug)
	if err != nil {
		return err
	}
	defer closeStore()

	report, err := engine.Solve(ctx, cfg.Query)
	if err != nil {
		return err
	}
	return writeReport(opts.Stdout, report, cfg.Format)
}
