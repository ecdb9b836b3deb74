package glyphgrad

// GlyphCollection owns the glyphs of one rendering pass. Anchors are stored
// relative to the top-left-most anchor so the layout is translation
// invariant. A collection is not safe for concurrent mutation.
type GlyphCollection struct {
	glyphs []Glyph
	index  map[int]int // glyph ID -> position
	bounds Bounds
}

// NewGlyphCollection takes ownership of glyphs, assigns each its position as
// ID and normalizes anchors against the minimum x and y of the non-break
// glyphs.
func NewGlyphCollection(glyphs []Glyph) *GlyphCollection {
	c := &GlyphCollection{
		glyphs: make([]Glyph, len(glyphs)),
		index:  make(map[int]int, len(glyphs)),
	}
	b := BoundsOf(anchors(glyphs))
	for i, g := range glyphs {
		g.ID = i
		if !g.IsBreak() {
			g.Anchor = Point{X: g.Anchor.X - b.MinX, Y: g.Anchor.Y - b.MinY}
		}
		c.glyphs[i] = g
		c.index[i] = i
	}
	c.bounds = Bounds{MaxX: b.Width(), MaxY: b.Height()}
	return c
}

// Glyphs returns a copy of the glyphs in order.
func (c *GlyphCollection) Glyphs() []Glyph {
	out := make([]Glyph, len(c.glyphs))
	copy(out, c.glyphs)
	return out
}

// Len returns the number of glyphs, line breaks included.
func (c *GlyphCollection) Len() int { return len(c.glyphs) }

// Width returns the horizontal extent of the normalized layout.
func (c *GlyphCollection) Width() float64 { return c.bounds.Width() }

// Height returns the vertical extent of the normalized layout.
func (c *GlyphCollection) Height() float64 { return c.bounds.Height() }

// Visible returns every glyph that is not a line break.
func (c *GlyphCollection) Visible() []Glyph {
	out := make([]Glyph, 0, len(c.glyphs))
	for _, g := range c.glyphs {
		if !g.IsBreak() {
			out = append(out, g)
		}
	}
	return out
}

// Glyph returns the glyph with the given ID.
func (c *GlyphCollection) Glyph(id int) (Glyph, error) {
	i, ok := c.index[id]
	if !ok {
		return Glyph{}, &NotFoundError{ID: id}
	}
	return c.glyphs[i], nil
}

// Select returns the glyphs with the given IDs, in the order requested.
// It fails on the first unknown ID.
func (c *GlyphCollection) Select(ids []int) ([]Glyph, error) {
	out := make([]Glyph, 0, len(ids))
	for _, id := range ids {
		g, err := c.Glyph(id)
		if err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, nil
}

// Apply copies the colors of colored into the glyphs with matching IDs.
// Every ID is checked before anything is written, so a failed Apply leaves
// the collection unchanged.
func (c *GlyphCollection) Apply(colored []Glyph) error {
	for _, g := range colored {
		if _, ok := c.index[g.ID]; !ok {
			return &NotFoundError{ID: g.ID}
		}
	}
	for _, g := range colored {
		c.glyphs[c.index[g.ID]].Color = g.Color
	}
	return nil
}

// Recolor assigns spec to the glyphs with the given IDs, using the bounding
// box of that subset, and merges the result back.
func (c *GlyphCollection) Recolor(ids []int, spec GradientSpec) error {
	selected, err := c.Select(ids)
	if err != nil {
		return err
	}
	return c.Apply(spec.Assign(selected))
}

// RecolorAll assigns spec to every glyph.
func (c *GlyphCollection) RecolorAll(spec GradientSpec) {
	// IDs come from the collection itself, so Apply cannot fail.
	_ = c.Apply(spec.Assign(c.glyphs))
}

// Encode renders the collection with t.
func (c *GlyphCollection) Encode(t MarkupTemplate) string {
	return t.Encode(c.glyphs)
}
