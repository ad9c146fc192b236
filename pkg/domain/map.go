package domain

import (
	"sort"
	"strings"

	"github.com/opencontainers/go-digest"
)

// Map is a parsed network document: the cyclic instruction sequence and
// the transition records, in the order they were read.
type Map struct {
	// Name is a descriptive label (usually the source file name).
	Name         string        `json:"name,omitempty" yaml:"name,omitempty"`
	Instructions []Instruction `json:"-" yaml:"-"`
	Transitions  []Transition  `json:"transitions" yaml:"transitions"`
}

// NodeIDs returns every From identifier, sorted.
func (m *Map) NodeIDs() []string {
	ids := make([]string, 0, len(m.Transitions))
	for _, t := range m.Transitions {
		ids = append(ids, t.From)
	}
	sort.Strings(ids)
	return ids
}

// Canonical renders the map in the text format, with records in input order.
func (m *Map) Canonical() string {
	var sb strings.Builder
	sb.WriteString(FormatInstructions(m.Instructions))
	sb.WriteString("\n\n")
	for _, t := range m.Transitions {
		sb.WriteString(t.From)
		sb.WriteString(" = (")
		sb.WriteString(t.Left)
		sb.WriteString(", ")
		sb.WriteString(t.Right)
		sb.WriteString(")\n")
	}
	return sb.String()
}

// Digest identifies the map content. Two maps with the same instructions and
// records share a digest regardless of Name.
func (m *Map) Digest() string {
	return digest.FromString(m.Canonical()).Encoded()
}
