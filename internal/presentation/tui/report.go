package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/wasteland/pkg/domain"
)

// ReportMarkdown lays out a report as a markdown document.
func ReportMarkdown(r *domain.Report) string {
	var sb strings.Builder

	title := r.Map
	if title == "" {
		title = "map"
	}
	fmt.Fprintf(&sb, "# %s\n\n", title)
	fmt.Fprintf(&sb, "Digest: `%s`\n\n", r.Digest)

	if r.Walk != nil {
		sb.WriteString("## Walk\n\n")
		fmt.Fprintf(&sb, "**%s** reaches **%s** in **%d** steps.\n\n", r.Walk.Start, r.Walk.End, r.Walk.Steps)
	}

	if r.Sync != nil {
		sb.WriteString("## Synchronized walks\n\n")
		fmt.Fprintf(&sb, "Every `*%s` walk stands on a `*%s` node after **%d** steps.\n\n",
			r.Query.StartSuffix, r.Query.GoalSuffix, r.Sync.Steps)
		sb.WriteString("| Start | End | Steps |\n|---|---|---:|\n")
		for _, w := range r.Sync.Walks {
			fmt.Fprintf(&sb, "| %s | %s | %d |\n", w.Start, w.End, w.Steps)
		}
	}

	return sb.String()
}

// ReportText is the plain one-line-per-answer form of a report.
func ReportText(r *domain.Report) string {
	var sb strings.Builder
	if r.Walk != nil {
		fmt.Fprintf(&sb, "walk %s -> %s: %d\n", r.Walk.Start, r.Walk.End, r.Walk.Steps)
	}
	if r.Sync != nil {
		for _, w := range r.Sync.Walks {
			fmt.Fprintf(&sb, "  %s -> %s: %d\n", w.Start, w.End, w.Steps)
		}
		fmt.Fprintf(&sb, "sync *%s -> *%s: %d\n", r.Query.StartSuffix, r.Query.GoalSuffix, r.Sync.Steps)
	}
	return sb.String()
}
