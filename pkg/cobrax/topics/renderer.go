package topics

import (
	"github.com/charmbracelet/glamour"
)

// Renderer turns raw topic content into terminal output
type Renderer interface {
	Render(content string, format string) string
}

// PlainRenderer prints topics verbatim
type PlainRenderer struct{}

// Render returns the content unchanged
func (r *PlainRenderer) Render(content string, format string) string {
	return content
}

// GlamourRenderer renders markdown topics with glamour. Other formats pass
// through untouched.
type GlamourRenderer struct {
	// Style is a glamour standard style ("dark", "light", "notty") or
	// "auto" to follow the terminal background
	Style string
	// Width wraps the output; 0 keeps glamour's default
	Width int
}

// NewGlamourRenderer picks the "notty" style for plain output and follows the
// terminal otherwise
func NewGlamourRenderer(plain bool) *GlamourRenderer {
	if plain {
		return &GlamourRenderer{Style: "notty"}
	}
	return &GlamourRenderer{Style: "auto"}
}

// Render converts markdown for display. Rendering failures fall back to the
// raw content.
func (r *GlamourRenderer) Render(content string, format string) string {
	if format != ".md" {
		return content
	}

	options := []glamour.TermRendererOption{}
	if r.Style == "" || r.Style == "auto" {
		options = append(options, glamour.WithAutoStyle())
	} else {
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
