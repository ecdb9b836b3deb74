package glyphgrad

// LineBreak is the text of a glyph that ends a line.
const LineBreak = "\n"

// Glyph is one rendered character.
type Glyph struct {
	ID     int    // Key owned by the GlyphCollection
	Text   string // One grapheme, or LineBreak
	Color  *Color // nil for line breaks and glyphs not yet colored
	Anchor Point  // Center of the glyph's box; unused for line breaks
}

// IsBreak reports whether g ends a line.
func (g Glyph) IsBreak() bool {
	return g.Text == LineBreak
}

// IsSpace reports whether g is a space. Spaces join whatever run surrounds
// them and never carry a color tag of their own.
func (g Glyph) IsSpace() bool {
	return g.Text == " "
}

// WithColor returns a copy of g colored c.
func (g Glyph) WithColor(c Color) Glyph {
	g.Color = &c
	return g
}

// ColorString returns the hex form of the glyph's color, or "" for spaces,
// line breaks and uncolored glyphs.
func (g Glyph) ColorString() string {
	if g.Color == nil || g.IsBreak() || g.IsSpace() {
		return ""
	}
	return g.Color.String()
}

// ColorStrings returns the colors of glyphs as hex strings aligned 1:1 with
// the input. Spaces, line breaks and uncolored glyphs map to "".
func ColorStrings(glyphs []Glyph) []string {
	out := make([]string, len(glyphs))
	for i, g := range glyphs {
		out[i] = g.ColorString()
	}
	return out
}

// anchors returns the anchors of the non-break glyphs.
func anchors(glyphs []Glyph) []Point {
	points := make([]Point, 0, len(glyphs))
	for _, g := range glyphs {
		if g.IsBreak() {
			continue
		}
		points = append(points, g.Anchor)
	}
	return points
}
