package dsl

import (
	"fmt"

	"github.com/aretw0/wasteland/pkg/adapters/memory"
	"github.com/aretw0/wasteland/pkg/domain"
)

// Builder manages the map construction. Nodes keep their insertion order.
type Builder struct {
	name         string
	instructions string
	order        []string
	nodes        map[string]*NodeBuilder
}

// New creates a new map builder for an instruction line such as "LLR".
func New(instructions string) *Builder {
	return &Builder{
		instructions: instructions,
		nodes:        make(map[string]*NodeBuilder),
	}
}

// Named sets the map name reported by the engine.
func (b *Builder) Named(name string) *Builder {
	b.name = name
	return b
}

// Add creates a new node in the map.
// If the node already exists, it returns the existing builder.
func (b *Builder) Add(id string) *NodeBuilder {
	if nb, ok := b.nodes[id]; ok {
		return nb
	}
	nb := &NodeBuilder{t: domain.Transition{From: id}}
	b.nodes[id] = nb
	b.order = append(b.order, id)
	return nb
}

// Map compiles the builder into a domain.Map.
// Every node must have both edges set.
func (b *Builder) Map() (*domain.Map, error) {
	seq, err := domain.ParseInstructions(b.instructions)
	if err != nil {
		return nil, fmt.Errorf("invalid instructions: %w", err)
	}
	if len(seq) == 0 {
		return nil, domain.ErrEmptyInstructionSequence
	}

	transitions := make([]domain.Transition, 0, len(b.order))
	for _, id := range b.order {
		t := b.nodes[id].Build()
		if t.Left == "" || t.Right == "" {
			return nil, fmt.Errorf("node %q needs both a left and a right edge", id)
		}
		transitions = append(transitions, t)
	}

	return &domain.Map{Name: b.name, Instructions: seq, Transitions: transitions}, nil
}

// Build compiles the map into a memory Loader.
func (b *Builder) Build() (*memory.Loader, error) {
	m, err := b.Map()
	if err != nil {
		return nil, fmt.Errorf("failed to build map: %w", err)
	}
	return memory.NewFromMap(m), nil
}
