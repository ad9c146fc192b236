package wasteland

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/aretw0/wasteland/internal/runtime"
	"github.com/aretw0/wasteland/pkg/adapters/file"
	"github.com/aretw0/wasteland/pkg/adapters/memory"
	"github.com/aretw0/wasteland/pkg/domain"
	"github.com/aretw0/wasteland/pkg/ports"
)

// Engine is the high-level entry point for the Wasteland library.
// It wraps the internal runtime and provides a simplified API for consumers.
type Engine struct {
	runtime     *runtime.Engine
	loader      ports.MapLoader
	store       ports.ReportStore
	m           *domain.Map
	digest      string
	hooks       domain.LifecycleHooks
	logger      *slog.Logger
	stepLimit   uint64
	parallelism int
	Name        string
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLoader injects a custom MapLoader, bypassing the default file loader.
func WithLoader(l ports.MapLoader) Option {
	return func(e *Engine) {
		e.loader = l
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithStepLimit fails any walk that takes more than n steps (0 = unbounded).
func WithStepLimit(n uint64) Option {
	return func(e *Engine) {
		e.stepLimit = n
	}
}

// WithParallelism lets up to n synchronization walks run concurrently.
func WithParallelism(n int) Option {
	return func(e *Engine) {
		e.parallelism = n
	}
}

// WithReportStore caches solved reports, keyed by map digest and query.
func WithReportStore(store ports.ReportStore) Option {
	return func(e *Engine) {
		e.store = store
	}
}

// New loads a map and prepares the engine.
// By default, it reads the map file at path (text, or YAML for .yaml/.yml).
// If WithLoader is provided, path is only used as a descriptive label.
func New(path string, opts ...Option) (*Engine, error) {
	eng := &Engine{parallelism: 1}

	for _, opt := range opts {
		opt(eng)
	}

	if eng.loader == nil {
		if path == "" {
			return nil, fmt.Errorf("path is required when no custom loader is provided")
		}
		eng.loader = file.NewLoader(path)
	}

	m, err := eng.loader.Load(context.Background())
	if err != nil {
		return nil, fmt.Errorf("failed to load map: %w", err)
	}
	eng.m = m
	eng.digest = m.Digest()

	switch {
	case path != "":
		eng.Name = filepath.Base(path)
	case m.Name != "":
		eng.Name = m.Name
	}

	if eng.logger == nil {
		eng.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	if eng.Name != "" {
		eng.logger = eng.logger.With("map", eng.Name)
	}

	eng.runtime, err = runtime.NewEngine(m,
		runtime.WithLifecycleHooks(eng.hooks),
		runtime.WithLogger(eng.logger),
		runtime.WithStepLimit(eng.stepLimit),
		runtime.WithParallelism(eng.parallelism),
	)
	if err != nil {
		return nil, fmt.Errorf("invalid map: %w", err)
	}

	eng.logger.Debug("map loaded",
		"nodes", eng.runtime.Table().Len(),
		"instructions", len(m.Instructions),
		"digest", eng.digest,
	)
	return eng, nil
}

// Walk returns the number of steps from start to goal.
func (e *Engine) Walk(ctx context.Context, start, goal string) (uint64, error) {
	res, err := e.runtime.Walk(ctx, start, goal)
	if err != nil {
		return 0, err
	}
	return res.Steps, nil
}

// Synchronize returns the first step at which every walk from a node ending in
// startSuffix stands on a node ending in goalSuffix.
func (e *Engine) Synchronize(ctx context.Context, startSuffix, goalSuffix string) (uint64, error) {
	res, err := e.runtime.Synchronize(ctx, startSuffix, goalSuffix)
	if err != nil {
		return 0, err
	}
	return res.Steps, nil
}

// Solve answers every part of q and returns a Report.
// With a ReportStore configured, a cached report is returned when present.
func (e *Engine) Solve(ctx context.Context, q domain.Query) (*domain.Report, error) {
	key := e.digest + ":" + q.Key()

	if e.store != nil {
		cached, err := e.store.Load(ctx, key)
		switch {
		case err == nil && e.withinStepLimit(cached):
			e.logger.Debug("report cache hit", "key", key)
			cached.Map = e.Name
			return cached, nil
		case err == nil:
			e.logger.Debug("cached report exceeds step limit", "key", key, "step_limit", e.stepLimit)
		case !errors.Is(err, domain.ErrReportNotFound):
			e.logger.Warn("report cache unavailable", "key", key, "error", err)
		}
	}

	report := &domain.Report{
		Map:    e.Name,
		Digest: e.digest,
		Query:  q,
	}

	if q.WantsWalk() {
		res, err := e.runtime.Walk(ctx, q.Start, q.Goal)
		if err != nil {
			return nil, fmt.Errorf("walk %s -> %s: %w", q.Start, q.Goal, err)
		}
		report.Walk = &res
	}

	if q.WantsSync() {
		res, err := e.runtime.Synchronize(ctx, q.StartSuffix, q.GoalSuffix)
		if err != nil {
			return nil, fmt.Errorf("synchronize *%s -> *%s: %w", q.StartSuffix, q.GoalSuffix, err)
		}
		report.Sync = res
	}

	if e.store != nil {
		if err := e.store.Save(ctx, key, report); err != nil {
			e.logger.Warn("failed to cache report", "key", key, "error", err)
		}
	}
	return report, nil
}

// withinStepLimit reports whether every walk in r fits the engine's step limit.
// Reports are cached regardless of the limit that produced them.
func (e *Engine) withinStepLimit(r *domain.Report) bool {
	if e.stepLimit == 0 {
		return true
	}
	if r.Walk != nil && r.Walk.Steps > e.stepLimit {
		return false
	}
	if r.Sync != nil {
		for _, w := range r.Sync.Walks {
			if w.Steps > e.stepLimit {
				return false
			}
		}
	}
	return true
}

// Trace returns the nodes visited walking from start to goal, start included.
func (e *Engine) Trace(ctx context.Context, start, goal string) ([]string, error) {
	return e.runtime.Trace(ctx, start, runtime.ExactGoal(goal))
}

// Inspect returns the loaded map for visualization or introspection tools.
func (e *Engine) Inspect() *domain.Map {
	return e.m
}

// Digest identifies the loaded map content.
func (e *Engine) Digest() string {
	return e.digest
}

// Loader returns the underlying MapLoader used by the engine.
func (e *Engine) Loader() ports.MapLoader {
	return e.loader
}

// DefaultServiceStepLimit caps every walk of a Service built without WithStepLimit.
const DefaultServiceStepLimit uint64 = 1 << 22

// Service solves maps supplied per call. It implements ports.MapSolver.
type Service struct {
	opts      []Option
	stepLimit uint64
}

// NewService creates a Service whose engines are built with opts.
// A step limit of 0 is replaced by DefaultServiceStepLimit.
func NewService(opts ...Option) *Service {
	cfg := &Engine{}
	for _, opt := range opts {
		opt(cfg)
	}
	limit := cfg.stepLimit
	if limit == 0 {
		limit = DefaultServiceStepLimit
	}
	return &Service{opts: opts, stepLimit: limit}
}

// StepLimit returns the ceiling applied to every walk.
func (s *Service) StepLimit() uint64 {
	return s.stepLimit
}

// SolveMap builds an engine for m and solves q.
func (s *Service) SolveMap(ctx context.Context, m *domain.Map, q domain.Query) (*domain.Report, error) {
	opts := append(append([]Option{}, s.opts...),
		WithStepLimit(s.stepLimit),
		WithLoader(memory.NewFromMap(m)),
	)
	eng, err := New("", opts...)
	if err != nil {
		return nil, err
	}
	return eng.Solve(ctx, q)
}

var _ ports.MapSolver = (*Service)(nil)
