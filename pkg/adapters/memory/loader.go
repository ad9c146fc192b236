package memory

import (
	"context"
	"fmt"

	"github.com/aretw0/wasteland/internal/compiler"
	"github.com/aretw0/wasteland/pkg/domain"
)

// Loader implements ports.MapLoader from an in-memory document or Map.
type Loader struct {
	text string
	m    *domain.Map
}

// NewLoader creates a Loader over a document in the text map format.
// Parsing happens on Load.
func NewLoader(text string) *Loader {
	return &Loader{text: text}
}

// NewFromMap creates a Loader that returns m as is.
func NewFromMap(m *domain.Map) *Loader {
	return &Loader{m: m}
}

// NewFromTransitions builds a Map from an instruction line and records.
// This improves DX for tests and embedded use.
func NewFromTransitions(instructions string, transitions ...domain.Transition) (*Loader, error) {
	seq, err := domain.ParseInstructions(instructions)
	if err != nil {
		return nil, fmt.Errorf("invalid instructions: %w", err)
	}
	return NewFromMap(&domain.Map{Instructions: seq, Transitions: transitions}), nil
}

// Load returns the map.
func (l *Loader) Load(ctx context.Context) (*domain.Map, error) {
	if l.m != nil {
		return l.m, nil
	}
	return compiler.NewParser().ParseString(l.text)
}
