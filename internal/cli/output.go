package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/aretw0/wasteland/internal/presentation/tui"
	"github.com/aretw0/wasteland/pkg/domain"
	"gopkg.in/yaml.v3"
)

// Output formats accepted by --format.
const (
	FormatText     = "text"
	FormatJSON     = "json"
	FormatYAML     = "yaml"
	FormatMarkdown = "markdown"
)

// writeReport encodes report on w. Markdown is rendered with glamour when w
// is a terminal and left as plain markdown otherwise.
func writeReport(w io.Writer, report *domain.Report, format string) error {
	switch format {
	case "", FormatText:
		_, err := io.WriteString(w, tui.ReportText(report))
		return err
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return err
		}
		return enc.Close()
	case FormatMarkdown:
		md := tui.ReportMarkdown(report)
		if isTerminal(w) {
			render, err := tui.NewRenderer(0)
			if err == nil {
				if out, err := render(md); err == nil {
					md = out
				}
			}
		}
		_, err := io.WriteString(w, md)
		return err
	}
	return fmt.Errorf("unknown format %q (want text, json, yaml or markdown)", format)
}
