package tui

import (
	"github.com/charmbracelet/glamour"
)

// NewRenderer returns a function that renders markdown using glamour.
// A wordWrap of 0 keeps glamour's default width.
func NewRenderer(wordWrap int) (func(string) (string, error), error) {
	opts := []glamour.TermRendererOption{
		glamour.WithAutoStyle(), // Automatically detect light/dark background
	}
	if wordWrap > 0 {
		opts = append(opts, glamour.WithWordWrap(wordWrap))
	}

	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return nil, err
	}

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}, nil
}
