package mock

import "github.com/fwojciec/glyphgrad"

// Compile-time interface verification.
var (
	_ glyphgrad.Layout      = (*Layout)(nil)
	_ glyphgrad.ColorParser = (*ColorParser)(nil)
)

// Layout is a mock implementation of glyphgrad.Layout.
type Layout struct {
	LayoutFn func(text string) []glyphgrad.Glyph
}

func (l *Layout) Layout(text string) []glyphgrad.Glyph {
	return l.LayoutFn(text)
}

// ColorParser is a mock implementation of glyphgrad.ColorParser.
type ColorParser struct {
	ParseFn func(s string) (glyphgrad.Color, error)
}

func (p *ColorParser) Parse(s string) (glyphgrad.Color, error) {
	return p.ParseFn(s)
}
