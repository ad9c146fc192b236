package runtime

import (
	"sort"

	"github.com/aretw0/wasteland/pkg/domain"
)

// Table is the read-only transition table, indexed by node identifier.
// It is built once and shared by reference across all walks.
type Table struct {
	edges map[string]domain.Transition
}

// NewTable indexes the records by From.
// A From that appears twice is rejected with *domain.DuplicateNodeError.
func NewTable(records []domain.Transition) (*Table, error) {
	edges := make(map[string]domain.Transition, len(records))
	for _, r := range records {
		if _, exists := edges[r.From]; exists {
			return nil, &domain.DuplicateNodeError{NodeID: r.From}
		}
		edges[r.From] = r
	}
	return &Table{edges: edges}, nil
}

// Lookup returns the successor of node for the given instruction.
func (t *Table) Lookup(node string, in domain.Instruction) (string, error) {
	tr, ok := t.edges[node]
	if !ok {
		return "", &domain.MissingNodeError{NodeID: node}
	}
	return tr.Target(in), nil
}

// Has reports whether node has a record.
func (t *Table) Has(node string) bool {
	_, ok := t.edges[node]
	return ok
}

// Len returns the number of records.
func (t *Table) Len() int {
	return len(t.edges)
}

// Nodes returns all node identifiers, sorted.
func (t *Table) Nodes() []string {
	ids := make([]string, 0, len(t.edges))
	for id := range t.edges {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Match returns the sorted identifiers accepted by pred.
func (t *Table) Match(pred func(string) bool) []string {
	var ids []string
	for id := range t.edges {
		if pred(id) {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

// Transitions returns a copy of every record, sorted by From.
func (t *Table) Transitions() []domain.Transition {
	out := make([]domain.Transition, 0, len(t.edges))
	for _, id := range t.Nodes() {
		out = append(out, t.edges[id])
	}
	return out
}
