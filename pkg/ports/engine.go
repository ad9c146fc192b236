package ports

import (
	"context"

	"github.com/aretw0/wasteland/pkg/domain"
)

// MapSolver answers a query for a map supplied with each call.
// This is the primary interface used by adapters (e.g., HTTP, MCP) that receive
// the map as part of the request.
type MapSolver interface {
	SolveMap(ctx context.Context, m *domain.Map, q domain.Query) (*domain.Report, error)
}
