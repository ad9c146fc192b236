package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/wasteland/pkg/domain"
)

// GraphOverlay contains a walk to highlight on the graph.
type GraphOverlay struct {
	VisitedNodes []string
	CurrentNode  string
}

// GenerateMermaid produces a Mermaid flowchart for a map.
// Node shapes follow the query:
// - Start (q.Start or *q.StartSuffix): ((Circle))
// - Goal (q.Goal or *q.GoalSuffix): (((Double Circle)))
// - Sink (both edges loop back): {{Hexagon}}
// - Default: [Rectangle]
// Edges are labelled L and R; a record whose edges share a target gets one "L/R" edge.
// It also applies overlay styles (Visited/Current) if provided.
func GenerateMermaid(m *domain.Map, q domain.Query, overlay *GraphOverlay) string {
	var sb strings.Builder
	sb.WriteString("graph LR\n")

	for _, t := range m.Transitions {
		opener, closer := "[", "]"
		switch {
		case isGoal(t.From, q):
			opener, closer = "(((", ")))"
		case isStart(t.From, q):
			opener, closer = "((", "))"
		case t.Left == t.From && t.Right == t.From:
			opener, closer = "{{", "}}"
		}
		fmt.Fprintf(&sb, "    %s%s\"%s\"%s\n", t.From, opener, t.From, closer)

		if t.Left == t.Right {
			fmt.Fprintf(&sb, "    %s -- \"L/R\" --> %s\n", t.From, t.Left)
			continue
		}
		fmt.Fprintf(&sb, "    %s -- \"L\" --> %s\n", t.From, t.Left)
		fmt.Fprintf(&sb, "    %s -- \"R\" --> %s\n", t.From, t.Right)
	}

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for contrast regardless of theme.
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		seen := make(map[string]bool)
		for _, id := range overlay.VisitedNodes {
			if id == "" || seen[id] || id == overlay.CurrentNode {
				continue
			}
			seen[id] = true
			fmt.Fprintf(&sb, "    class %s visited;\n", id)
		}

		if overlay.CurrentNode != "" {
			fmt.Fprintf(&sb, "    class %s current;\n", overlay.CurrentNode)
		}
	}

	return sb.String()
}

// OverlayFromTrace marks every traced node visited and the last one current.
func OverlayFromTrace(path []string) *GraphOverlay {
	if len(path) == 0 {
		return nil
	}
	return &GraphOverlay{
		VisitedNodes: path,
		CurrentNode:  path[len(path)-1],
	}
}

func isStart(id string, q domain.Query) bool {
	return id == q.Start || (q.StartSuffix != "" && strings.HasSuffix(id, q.StartSuffix))
}

func isGoal(id string, q domain.Query) bool {
	return id == q.Goal || (q.GoalSuffix != "" && strings.HasSuffix(id, q.GoalSuffix))
}
