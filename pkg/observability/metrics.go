package observability

import (
	"context"
	"log/slog"

	"github.com/aretw0/wasteland/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors fed by the engine hooks.
type Metrics struct {
	Walks        *prometheus.CounterVec
	Steps        prometheus.Counter
	WalkDuration prometheus.Histogram
	SyncSteps    prometheus.Gauge
	SyncStarts   prometheus.Histogram
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Walks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wasteland_walks_total",
				Help: "Total number of finished walks by outcome",
			},
			[]string{"outcome"},
		),
		Steps: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "wasteland_walk_steps_total",
			Help: "Total number of steps taken by successful walks",
		}),
		WalkDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "wasteland_walk_duration_seconds",
			Help:    "Duration of single walks",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
		}),
		SyncSteps: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "wasteland_sync_steps",
			Help: "Combined step count of the last synchronization",
		}),
		SyncStarts: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "wasteland_sync_starts",
			Help:    "Number of start nodes per synchronization",
			Buckets: prometheus.LinearBuckets(1, 2, 8),
		}),
	}
	reg.MustRegister(m.Walks, m.Steps, m.WalkDuration, m.SyncSteps, m.SyncStarts)
	return m
}

// Hooks returns lifecycle hooks that record into the collectors.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnWalkFinish: func(_ context.Context, e *domain.WalkEvent) {
			outcome := "ok"
			if e.Err != nil {
				outcome = "error"
			} else {
				m.Steps.Add(float64(e.Steps))
			}
			m.Walks.WithLabelValues(outcome).Inc()
			m.WalkDuration.Observe(e.Duration.Seconds())
		},
		OnSynchronize: func(_ context.Context, e *domain.SyncEvent) {
			m.SyncSteps.Set(float64(e.Steps))
			m.SyncStarts.Observe(float64(e.Starts))
		},
	}
}

// LoggingHooks returns hooks that write every event to logger at debug level.
func LoggingHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnWalkStart: func(ctx context.Context, e *domain.WalkEvent) {
			logger.DebugContext(ctx, "walk_start", "run_id", e.RunID, "start", e.Start)
		},
		OnWalkFinish: func(ctx context.Context, e *domain.WalkEvent) {
			if e.Err != nil {
				logger.DebugContext(ctx, "walk_finish", "run_id", e.RunID, "start", e.Start, "error", e.Err)
				return
			}
			logger.DebugContext(ctx, "walk_finish",
				"run_id", e.RunID,
				"start", e.Start,
				"end", e.End,
				"steps", e.Steps,
				"duration", e.Duration,
			)
		},
		OnSynchronize: func(ctx context.Context, e *domain.SyncEvent) {
			logger.DebugContext(ctx, "synchronize", "run_id", e.RunID, "starts", e.Starts, "steps", e.Steps)
		},
	}
}

// Combine fans each event out to every non-nil hook in order.
func Combine(all ...domain.LifecycleHooks) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnWalkStart: func(ctx context.Context, e *domain.WalkEvent) {
			for _, h := range all {
				if h.OnWalkStart != nil {
					h.OnWalkStart(ctx, e)
				}
			}
		},
		OnWalkFinish: func(ctx context.Context, e *domain.WalkEvent) {
			for _, h := range all {
				if h.OnWalkFinish != nil {
					h.OnWalkFinish(ctx, e)
				}
			}
		},
		OnSynchronize: func(ctx context.Context, e *domain.SyncEvent) {
			for _, h := range all {
				if h.OnSynchronize != nil {
					h.OnSynchronize(ctx, e)
				}
			}
		},
	}
}
