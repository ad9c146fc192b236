package observability_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/aretw0/wasteland/pkg/domain"
	"github.com/aretw0/wasteland/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Hooks(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := observability.NewMetrics(reg)
	hooks := m.Hooks()
	ctx := context.Background()

	hooks.OnWalkFinish(ctx, &domain.WalkEvent{Start: "11A", Steps: 2})
	hooks.OnWalkFinish(ctx, &domain.WalkEvent{Start: "22A", Steps: 3})
	hooks.OnWalkFinish(ctx, &domain.WalkEvent{Start: "33A", Err: errors.New("boom")})
	hooks.OnSynchronize(ctx, &domain.SyncEvent{Starts: 2, Steps: 6})

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Walks.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Walks.WithLabelValues("error")))
	assert.Equal(t, 5.0, testutil.ToFloat64(m.Steps))
	assert.Equal(t, 6.0, testutil.ToFloat64(m.SyncSteps))
	assert.Equal(t, 1, testutil.CollectAndCount(m.SyncStarts))
}

func TestCombine(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	count := 0
	counting := domain.LifecycleHooks{
		OnWalkStart: func(context.Context, *domain.WalkEvent) { count++ },
	}

	hooks := observability.Combine(observability.LoggingHooks(logger), counting, domain.LifecycleHooks{})
	hooks.OnWalkStart(context.Background(), &domain.WalkEvent{Start: "AAA"})
	hooks.OnWalkFinish(context.Background(), &domain.WalkEvent{Start: "AAA", End: "ZZZ", Steps: 2})

	assert.Equal(t, 1, count)
	assert.Contains(t, buf.String(), "walk_start")
	assert.Contains(t, buf.String(), "steps=2")
}
