package runtime

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/wasteland/pkg/domain"
	"github.com/google/uuid"
)

// defaultTraceLimit bounds Trace when no step limit is configured.
const defaultTraceLimit = 1 << 16

// Engine answers walk and synchronization queries over one loaded Map.
// It is immutable after construction and safe for concurrent use.
type Engine struct {
	table       *Table
	seq         Sequencer
	hooks       domain.LifecycleHooks
	logger      *slog.Logger
	stepLimit   uint64
	parallelism int
}

// EngineOption configures the runtime Engine.
type EngineOption func(*Engine)

// WithLifecycleHooks registers observability hooks.
// With parallelism above 1 the hooks are called from several goroutines.
func WithLifecycleHooks(hooks domain.LifecycleHooks) EngineOption {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger sets the structured logger. A nil logger is ignored.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithStepLimit caps every walk at n steps (0 = unbounded).
func WithStepLimit(n uint64) EngineOption {
	return func(e *Engine) {
		e.stepLimit = n
	}
}

// WithParallelism sets how many synchronization walks may run at once.
func WithParallelism(n int) EngineOption {
	return func(e *Engine) {
		e.parallelism = n
	}
}

// NewEngine builds the transition table and instruction sequencer for m.
func NewEngine(m *domain.Map, opts ...EngineOption) (*Engine, error) {
	seq, err := NewSequencer(m.Instructions)
	if err != nil {
		return nil, err
	}
	table, err := NewTable(m.Transitions)
	if err != nil {
		return nil, err
	}

	e := &Engine{
		table:       table,
		seq:         seq,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		parallelism: 1,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Table exposes the read-only transition table.
func (e *Engine) Table() *Table {
	return e.table
}

// Walk counts the steps from start to the node goal.
func (e *Engine) Walk(ctx context.Context, start, goal string) (domain.WalkResult, error) {
	cursor := e.seq.Fork()
	return e.walk(ctx, uuid.NewString(), start, ExactGoal(goal), &cursor)
}

// Synchronize walks every node ending in startSuffix until it reaches a node
// ending in goalSuffix, then combines the step counts by least common multiple.
func (e *Engine) Synchronize(ctx context.Context, startSuffix, goalSuffix string) (*domain.SyncResult, error) {
	starts := e.table.Match(SuffixGoal(startSuffix))
	if len(starts) == 0 {
		return nil, domain.ErrNoStartNodes
	}

	runID := uuid.NewString()
	goal := SuffixGoal(goalSuffix)
	began := time.Now()

	e.logger.Debug("synchronizing walks", "run_id", runID, "starts", starts, "parallelism", e.parallelism)

	res, err := Synchronize(ctx, starts, e.seq, func(ctx context.Context, start string, seq *Sequencer) (domain.WalkResult, error) {
		return e.walk(ctx, runID, start, goal, seq)
	}, e.parallelism)
	if err != nil {
		return nil, err
	}

	if e.hooks.OnSynchronize != nil {
		e.hooks.OnSynchronize(ctx, &domain.SyncEvent{
			EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventSynchronize, RunID: runID},
			Starts:    len(starts),
			Steps:     res.Steps,
			Duration:  time.Since(began),
		})
	}
	e.logger.Debug("walks synchronized", "run_id", runID, "steps", res.Steps)
	return res, nil
}

// Trace returns every node visited on the walk from start to goal, start included.
// Without a step limit the trace is capped at defaultTraceLimit steps.
func (e *Engine) Trace(ctx context.Context, start string, goal Goal) ([]string, error) {
	limit := e.stepLimit
	if limit == 0 {
		limit = defaultTraceLimit
	}
	var path []string
	cursor := e.seq.Fork()
	_, err := NewWalker(e.table, limit).Run(ctx, start, goal, &cursor, func(node string) {
		path = append(path, node)
	})
	if err != nil {
		return nil, err
	}
	return path, nil
}

func (e *Engine) walk(ctx context.Context, runID, start string, goal Goal, seq *Sequencer) (domain.WalkResult, error) {
	began := time.Now()
	if e.hooks.OnWalkStart != nil {
		e.hooks.OnWalkStart(ctx, &domain.WalkEvent{
			EventBase: domain.EventBase{Timestamp: began, Type: domain.EventWalkStart, RunID: runID},
			Start:     start,
		})
	}

	res, err := NewWalker(e.table, e.stepLimit).Run(ctx, start, goal, seq, nil)

	if e.hooks.OnWalkFinish != nil {
		e.hooks.OnWalkFinish(ctx, &domain.WalkEvent{
			EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventWalkFinish, RunID: runID},
			Start:     start,
			End:       res.End,
			Steps:     res.Steps,
			Duration:  time.Since(began),
			Err:       err,
		})
	}
	if err != nil {
		e.logger.Debug("walk failed", "run_id", runID, "start", start, "error", err)
		return domain.WalkResult{}, err
	}

	e.logger.Debug("walk finished", "run_id", runID, "start", start, "end", res.End, "steps", res.Steps)
	return res, nil
}
