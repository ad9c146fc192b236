package runtime

import (
	"context"
	"strings"

	"github.com/aretw0/wasteland/pkg/domain"
)

// cancelCheckInterval is how many steps a walk takes between context checks.
const cancelCheckInterval = 1 << 12

// Goal decides whether a node ends a walk.
type Goal func(node string) bool

// ExactGoal matches a single node identifier.
func ExactGoal(id string) Goal {
	return func(node string) bool {
		return node == id
	}
}

// SuffixGoal matches every node identifier ending in suffix.
func SuffixGoal(suffix string) Goal {
	return func(node string) bool {
		return strings.HasSuffix(node, suffix)
	}
}

// Walker follows instructions through a Table until a goal is reached.
type Walker struct {
	table *Table
	limit uint64
}

// NewWalker creates a walker over table. A limit of 0 means unbounded.
func NewWalker(table *Table, limit uint64) *Walker {
	return &Walker{table: table, limit: limit}
}

// Walk returns the number of steps from start until goal holds.
// The sequencer is advanced in place.
func (w *Walker) Walk(ctx context.Context, start string, goal Goal, seq *Sequencer) (uint64, error) {
	res, err := w.Run(ctx, start, goal, seq, nil)
	if err != nil {
		return 0, err
	}
	return res.Steps, nil
}

// Run is Walk with the final walk state and an optional visit callback,
// called for the start node and every node entered afterwards.
func (w *Walker) Run(ctx context.Context, start string, goal Goal, seq *Sequencer, visit func(string)) (domain.WalkResult, error) {
	walk := domain.NewWalk(start)
	if visit != nil {
		visit(walk.Current)
	}

	for !goal(walk.Current) {
		if w.limit > 0 && walk.Steps >= w.limit {
			return domain.WalkResult{}, &domain.NonTerminatingWalkError{
				Start: start,
				Last:  walk.Current,
				Limit: w.limit,
			}
		}
		if walk.Steps%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return domain.WalkResult{}, err
			}
		}

		next, err := w.table.Lookup(walk.Current, seq.Next())
		if err != nil {
			return domain.WalkResult{}, err
		}
		walk.Advance(next)
		if visit != nil {
			visit(next)
		}
	}

	return walk.Result(), nil
}
