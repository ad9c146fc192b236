package memory

import (
	"context"
	"sync"

	"github.com/aretw0/wasteland/pkg/domain"
)

// Store implements ports.ReportStore in memory.
// Safe for concurrent use.
type Store struct {
	data map[string]*domain.Report
	mu   sync.RWMutex
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{
		data: make(map[string]*domain.Report),
	}
}

// Save persists a copy of the report in memory.
func (s *Store) Save(ctx context.Context, key string, report *domain.Report) error {
	copied := cloneReport(report)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = copied
	return nil
}

// Load retrieves a copy of the report so callers cannot mutate the store.
func (s *Store) Load(ctx context.Context, key string) (*domain.Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	report, ok := s.data[key]
	if !ok {
		return nil, domain.ErrReportNotFound
	}
	return cloneReport(report), nil
}

// Delete removes the report.
func (s *Store) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

// Len returns the number of cached reports.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}

func cloneReport(src *domain.Report) *domain.Report {
	next := *src
	if src.Walk != nil {
		w := *src.Walk
		next.Walk = &w
	}
	if src.Sync != nil {
		s := *src.Sync
		s.Walks = append([]domain.WalkResult(nil), src.Sync.Walks...)
		next.Sync = &s
	}
	return &next
}
