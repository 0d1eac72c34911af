// Package markdown renders markdown documents for the terminal
package markdown

import (
	"github.com/charmbracelet/glamour"
)

// Renderer uses glamour for rich markdown rendering
type Renderer struct {
	Style string // Style name: "dark", "light", "notty", "auto", or path to custom style
	Width int    // Word wrap width (0 = glamour default)
}

// New creates a markdown renderer with automatic style detection
func New() *Renderer {
	return &Renderer{Style: "auto"}
}

// Render converts markdown to styled terminal output. On any glamour
// failure the source is returned unchanged.
func (r *Renderer) Render(content string) string {
	var options []glamour.TermRendererOption

	switch r.Style {
	case "", "auto":
		options = append(options, glamour.WithAutoStyle())
	default:
		options = append(options, glamour.WithStandardStyle(r.Style))
	}
	if r.Width > 0 {
		options = append(options, glamour.WithWordWrap(r.Width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return content
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
