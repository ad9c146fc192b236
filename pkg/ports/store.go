package ports

import (
	"context"

	"github.com/aretw0/wasteland/pkg/domain"
)

// ReportStore defines the interface for caching solved reports.
// Keys are derived from the map digest and the query, so a hit is always valid.
type ReportStore interface {
	// Save persists the report under key.
	Save(ctx context.Context, key string, report *domain.Report) error

	// Load retrieves the report for key.
	// Returns domain.ErrReportNotFound if there is none.
	Load(ctx context.Context, key string) (*domain.Report, error)

	// Delete removes the report for key.
	Delete(ctx context.Context, key string) error
}
