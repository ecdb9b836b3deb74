package mock

import "github.com/fwojciec/glyphgrad"

// Compile-time interface verification.
var _ glyphgrad.Previewer = (*Previewer)(nil)

// Previewer is a mock implementation of glyphgrad.Previewer.
type Previewer struct {
	PreviewFn func(glyphs []glyphgrad.Glyph) string
}

func (p *Previewer) Preview(glyphs []glyphgrad.Glyph) string {
	return p.PreviewFn(glyphs)
}
