package ports

import (
	"context"

	"github.com/aretw0/wasteland/pkg/domain"
)

// MapLoader defines how the engine retrieves the map document.
// This allows the source (file, memory, network) to be decoupled.
type MapLoader interface {
	// Load reads and parses the map. It is called once per Engine.
	Load(ctx context.Context) (*domain.Map, error)
}
