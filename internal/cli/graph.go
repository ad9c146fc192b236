package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/aretw0/wasteland/internal/presentation/graph"
)

// Graph writes the map as a Mermaid flowchart. With trace set, the walk from
// the configured start to goal is highlighted.
func Graph(ctx context.Context, opts Options, trace bool) error {
	cfg := opts.Config

	logger, err := opts.logger()
	if err != nil {
		return err
	}
	engine, closeStore, err := createEngine(cfg, opts.Stdin, logger, nil, opts.Debug)
	if err != nil {
		return err
	}
	defer closeStore()

	var overlay *graph.GraphOverlay
	if trace {
		if !cfg.Query.WantsWalk() {
			return fmt.Errorf("--trace needs --start and --goal")
		}
		path, err := engine.Trace(ctx, cfg.Query.Start, cfg.Query.Goal)
		if err != nil {
			return fmt.Errorf("trace failed: %w", err)
		}
		overlay = graph.OverlayFromTrace(path)
	}

	_, err = io.WriteString(opts.Stdout, graph.GenerateMermaid(engine.Inspect(), cfg.Query, overlay))
	return err
}
