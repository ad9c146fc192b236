package middleware

import (
	"context"
	"errors"
	"log/slog"

	"github.com/aretw0/wasteland/pkg/domain"
	"github.com/aretw0/wasteland/pkg/ports"
)

// NewLoggingMiddleware logs every store call at debug level.
func NewLoggingMiddleware(logger *slog.Logger) Middleware {
	return func(next ports.ReportStore) ports.ReportStore {
		return &loggingMiddleware{next: next, logger: logger.With("component", "report_store")}
	}
}

type loggingMiddleware struct {
	next   ports.ReportStore
	logger *slog.Logger
}

func (s *loggingMiddleware) Save(ctx context.Context, key string, report *domain.Report) error {
	err := s.next.Save(ctx, key, report)
	s.logger.DebugContext(ctx, "save", "key", key, "error", err)
	return err
}

func (s *loggingMiddleware) Load(ctx context.Context, key string) (*domain.Report, error) {
	report, err := s.next.Load(ctx, key)
	switch {
	case err == nil:
		s.logger.DebugContext(ctx, "load", "key", key, "hit", true)
	case errors.Is(err, domain.ErrReportNotFound):
		s.logger.DebugContext(ctx, "load", "key", key, "hit", false)
	default:
		s.logger.DebugContext(ctx, "load", "key", key, "error", err)
	}
	return report, err
}

func (s *loggingMiddleware) Delete(ctx context.Context, key string) error {
	err := s.next.Delete(ctx, key)
	s.logger.DebugContext(ctx, "delete", "key", key, "error", err)
	return err
}
