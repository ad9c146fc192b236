package runtime

import (
	"context"
	"fmt"

	"github.com/aretw0/wasteland/pkg/domain"
	"golang.org/x/sync/errgroup"
)

// WalkFunc runs one walk from start, consuming seq.
type WalkFunc func(ctx context.Context, start string, seq *Sequencer) (domain.WalkResult, error)

// Synchronize walks every start independently, each with its own cursor
// forked from seq, and combines the step counts by least common multiple.
//
// The combination is only meaningful when every walk re-enters a goal node
// exactly once per its own step count. That holds for the puzzle-shaped inputs
// this engine targets and is not checked here.
//
// Up to parallelism walks run at once; values below 1 run them sequentially.
// The first failing walk cancels the others and no partial result is returned.
func Synchronize(ctx context.Context, starts []string, seq Sequencer, walk WalkFunc, parallelism int) (*domain.SyncResult, error) {
	if len(starts) == 0 {
		return nil, domain.ErrNoStartNodes
	}

	walks := make([]domain.WalkResult, len(starts))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(parallelism, 1))
	for i, start := range starts {
		g.Go(func() error {
			cursor := seq.Fork()
			res, err := walk(gctx, start, &cursor)
			if err != nil {
				return fmt.Errorf("walk from %s: %w", start, err)
			}
			walks[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	counts := make([]uint64, len(walks))
	for i, w := range walks {
		counts[i] = w.Steps
	}
	steps, err := LCMAll(counts)
	if err != nil {
		return nil, err
	}

	return &domain.SyncResult{Walks: walks, Steps: steps}, nil
}
