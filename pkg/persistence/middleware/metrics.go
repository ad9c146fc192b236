package middleware

import (
	"context"
	"errors"

	"github.com/aretw0/wasteland/pkg/domain"
	"github.com/aretw0/wasteland/pkg/ports"
	"github.com/prometheus/client_golang/prometheus"
)

// StoreMetrics counts report cache lookups by result.
type StoreMetrics struct {
	Lookups *prometheus.CounterVec
	Saves   *prometheus.CounterVec
}

// NewStoreMetrics creates the collectors and registers them with reg.
func NewStoreMetrics(reg prometheus.Registerer) *StoreMetrics {
	m := &StoreMetrics{
		Lookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "wasteland_report_cache_lookups_total",
			Help: "Report cache lookups by result (hit, miss, error)",
		}, []string{"result"}),
		Saves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "wasteland_report_cache_saves_total",
			Help: "Report cache writes by outcome",
		}, []string{"outcome"}),
	}
	reg.MustRegister(m.Lookups, m.Saves)
	return m
}

// NewMetricsMiddleware records cache hits and misses into m.
func NewMetricsMiddleware(m *StoreMetrics) Middleware {
	return func(next ports.ReportStore) ports.ReportStore {
		return &metricsMiddleware{next: next, m: m}
	}
}

type metricsMiddleware struct {
	next ports.ReportStore
	m    *StoreMetrics
}

func (s *metricsMiddleware) Save(ctx context.Context, key string, report *domain.Report) error {
	err := s.next.Save(ctx, key, report)
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	s.m.Saves.WithLabelValues(outcome).Inc()
	return err
}

func (s *metricsMiddleware) Load(ctx context.Context, key string) (*domain.Report, error) {
	report, err := s.next.Load(ctx, key)
	switch {
	case err == nil:
		s.m.Lookups.WithLabelValues("hit").Inc()
	case errors.Is(err, domain.ErrReportNotFound):
		s.m.Lookups.WithLabelValues("miss").Inc()
	default:
		s.m.Lookups.WithLabelValues("error").Inc()
	}
	return report, err
}

func (s *metricsMiddleware) Delete(ctx context.Context, key string) error {
	return s.next.Delete(ctx, key)
}
