package lipgloss

import (
	"io"
	"strings"

	lipglosslib "github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/fwojciec/glyphgrad"
	"github.com/fwojciec/glyphgrad/colorful"
)

// Compile-time interface verification.
var _ glyphgrad.Previewer = (*Previewer)(nil)

// Previewer renders colored glyphs as ANSI-styled text.
type Previewer struct {
	renderer *lipglosslib.Renderer
}

// PreviewerOption configures a Previewer.
type PreviewerOption func(*Previewer)

// WithRenderer sets the renderer used to create styles. Tests use it to force
// a color profile without touching global state.
func WithRenderer(r *lipglosslib.Renderer) PreviewerOption {
	return func(p *Previewer) {
		p.renderer = r
	}
}

// WithColorProfile renders for the given profile regardless of the output.
func WithColorProfile(profile termenv.Profile) PreviewerOption {
	return func(p *Previewer) {
		r := lipglosslib.NewRenderer(io.Discard)
		r.SetColorProfile(profile)
		p.renderer = r
	}
}

// NewPreviewer creates a Previewer. Without options it uses the default
// lipgloss renderer, which detects the profile of stdout.
func NewPreviewer(opts ...PreviewerOption) *Previewer {
	p := &Previewer{}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Previewer) newStyle() lipglosslib.Style {
	if p.renderer != nil {
		return p.renderer.NewStyle()
	}
	return lipglosslib.NewStyle()
}

// Preview implements glyphgrad.Previewer. Consecutive glyphs of one color
// share a single styled span; uncolored glyphs are written unstyled.
func (p *Previewer) Preview(glyphs []glyphgrad.Glyph) string {
	var sb strings.Builder
	var span strings.Builder
	var color *glyphgrad.Color

	flush := func() {
		if span.Len() == 0 {
			return
		}
		if color == nil {
			sb.WriteString(span.String())
		} else {
			sb.WriteString(p.newStyle().Foreground(lipglosslib.Color(color.String())).Render(span.String()))
		}
		span.Reset()
	}

	for _, g := range glyphs {
		if g.IsBreak() {
			flush()
			sb.WriteString("\n")
			color = nil
			continue
		}
		if !sameColor(color, g.Color) {
			flush()
			color = g.Color
		}
		span.WriteString(g.Text)
	}
	flush()
	return sb.String()
}

// Swatch renders label on a background of c, with black or white text
// depending on the lightness of c.
func (p *Previewer) Swatch(c glyphgrad.Color, label string) string {
	return p.newStyle().
		Background(lipglosslib.Color(c.String())).
		Foreground(lipglosslib.Color(contrast(c))).
		Padding(0, 1).
		Render(label)
}

// contrast picks a readable text color for the background c using the CIE
// L*a*b* lightness.
func contrast(c glyphgrad.Color) string {
	l, _, _ := colorful.ToColorful(c).Lab()
	if l > 0.6 {
		return "#000000"
	}
	return "#ffffff"
}

func sameColor(a, b *glyphgrad.Color) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}
