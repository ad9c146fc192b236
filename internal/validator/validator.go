package validator

import (
	"fmt"
	"sort"
	"strings"

	"github.com/aretw0/wasteland/pkg/domain"
)

// Issue is one problem found in a map.
type Issue struct {
	Node    string
	Message string
}

func (i Issue) String() string {
	if i.Node == "" {
		return i.Message
	}
	return fmt.Sprintf("%s: %s", i.Node, i.Message)
}

// ValidationError aggregates every Issue found by ValidateMap.
type ValidationError struct {
	Issues []Issue
}

func (e *ValidationError) Error() string {
	lines := make([]string, len(e.Issues))
	for i, issue := range e.Issues {
		lines[i] = issue.String()
	}
	return fmt.Sprintf("found %d errors:\n- %s", len(e.Issues), strings.Join(lines, "\n- "))
}

// ValidateMap checks a map against the walks q asks for.
// Reachability is explored over both edges, so a goal reported reachable may
// still be missed by the actual instruction sequence.
func ValidateMap(m *domain.Map, q domain.Query) error {
	var issues []Issue

	if len(m.Instructions) == 0 {
		issues = append(issues, Issue{Message: domain.ErrEmptyInstructionSequence.Error()})
	}

	edges := make(map[string]domain.Transition, len(m.Transitions))
	for _, t := range m.Transitions {
		if _, dup := edges[t.From]; dup {
			issues = append(issues, Issue{Node: t.From, Message: "defined more than once"})
			continue
		}
		edges[t.From] = t
	}

	dangling := make(map[string][]string)
	for _, t := range m.Transitions {
		for _, target := range []string{t.Left, t.Right} {
			if _, ok := edges[target]; !ok {
				dangling[target] = appendUnique(dangling[target], t.From)
			}
		}
	}
	for _, target := range sortedKeys(dangling) {
		issues = append(issues, Issue{
			Node:    target,
			Message: fmt.Sprintf("missing node (referenced by %s)", strings.Join(dangling[target], ", ")),
		})
	}

	if q.WantsWalk() {
		if _, ok := edges[q.Start]; !ok {
			issues = append(issues, Issue{Node: q.Start, Message: "start node not found"})
		} else if !reaches(edges, q.Start, func(id string) bool { return id == q.Goal }) {
			issues = append(issues, Issue{Node: q.Start, Message: fmt.Sprintf("goal %s is unreachable", q.Goal)})
		}
	}

	if q.WantsSync() {
		var starts []string
		for id := range edges {
			if strings.HasSuffix(id, q.StartSuffix) {
				starts = append(starts, id)
			}
		}
		sort.Strings(starts)
		if len(starts) == 0 {
			issues = append(issues, Issue{Message: fmt.Sprintf("%s (pattern *%s)", domain.ErrNoStartNodes, q.StartSuffix)})
		}
		for _, start := range starts {
			goal := func(id string) bool { return strings.HasSuffix(id, q.GoalSuffix) }
			if !reaches(edges, start, goal) {
				issues = append(issues, Issue{Node: start, Message: fmt.Sprintf("no *%s node is reachable", q.GoalSuffix)})
			}
		}
	}

	if len(issues) > 0 {
		return &ValidationError{Issues: issues}
	}
	return nil
}

// reaches runs a breadth-first search from start over both edges.
func reaches(edges map[string]domain.Transition, start string, goal func(string) bool) bool {
	visited := map[string]bool{start: true}
	queue := []string{start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if goal(current) {
			return true
		}
		t, ok := edges[current]
		if !ok {
			continue
		}
		for _, next := range []string{t.Left, t.Right} {
			if !visited[next] {
				visited[next] = true
				queue = append(queue, next)
			}
		}
	}
	return false
}

func appendUnique(list []string, s string) []string {
	for _, v := range list {
		if v == s {
			return list
		}
	}
	return append(list, s)
}

func sortedKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
