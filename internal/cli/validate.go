package cli

import (
	"context"

	"github.com/aretw0/wasteland/internal/validator"
)

// Validate checks the map against the configured query.
// The map is loaded without building the engine so that duplicate records are
// reported alongside every other issue.
func Validate(ctx context.Context, opts Options) error {
	loader, err := createLoader(opts.Config.Map, opts.Stdin)
	if err != nil {
		return err
	}
	m, err := loader.Load(ctx)
	if err != nil {
		return err
	}
	if err := validator.ValidateMap(m, opts.Config.Query); err != nil {
		return err
	}

	printSystemMessage(opts.Stdout, "Map is valid! ✅ (%d nodes, %d instructions)", len(m.Transitions), len(m.Instructions))
	return nil
}
