package glyphgrad

import (
	"fmt"
	"strings"
)

// Template placeholders.
const (
	PlaceholderColor = "%%color"
	PlaceholderWords = "%%words"
)

// DefaultFormat is a BBCode color tag.
const DefaultFormat = "[color=%%color]%%words[/color]"

// Run is a span of text sharing one color, or a line break.
type Run struct {
	Text  string
	Color *Color // nil for whitespace-only runs and breaks
	Break bool
}

// MarkupTemplate renders runs as tagged markup.
type MarkupTemplate struct {
	Format    string // Must contain PlaceholderColor and PlaceholderWords
	Default   Color  // Runs of this color are emitted without a tag
	Break     string // Token emitted at line breaks; "" means "\n"
	Uppercase bool   // Emit "#RRGGBB" instead of "#rrggbb"
}

// DefaultTemplate returns a BBCode template with black as the default font
// color.
func DefaultTemplate() MarkupTemplate {
	return MarkupTemplate{Format: DefaultFormat, Default: NewRGB(0, 0, 0)}
}

// Validate checks that the format holds both placeholders.
func (t MarkupTemplate) Validate() error {
	for _, p := range []string{PlaceholderColor, PlaceholderWords} {
		if !strings.Contains(t.Format, p) {
			return fmt.Errorf("%w: %q lacks %s", ErrInvalidTemplate, t.Format, p)
		}
	}
	return nil
}

func (t MarkupTemplate) breakToken() string {
	if t.Break == "" {
		return LineBreak
	}
	return t.Break
}

func (t MarkupTemplate) colorString(c Color) string {
	if t.Uppercase {
		return strings.ToUpper(c.String())
	}
	return c.String()
}

// Render renders a single run. Runs without a color or with the default
// color are emitted as raw text.
func (t MarkupTemplate) Render(run Run) string {
	if run.Break {
		return t.breakToken()
	}
	if run.Color == nil || run.Color.Equal(t.Default) {
		return run.Text
	}
	s := strings.Replace(t.Format, PlaceholderColor, t.colorString(*run.Color), 1)
	return strings.Replace(s, PlaceholderWords, run.Text, 1)
}

// RenderGlyph renders one glyph on its own, without merging.
func (t MarkupTemplate) RenderGlyph(g Glyph) string {
	switch {
	case g.IsBreak():
		return t.breakToken()
	case g.IsSpace():
		return g.Text
	}
	return t.Render(Run{Text: g.Text, Color: g.Color})
}

// Merge coalesces glyphs into runs. Adjacent glyphs of equal color share a
// run, spaces join the pending run whatever its color, and line breaks end
// the pending run. Uncolored glyphs count as the default color.
func (t MarkupTemplate) Merge(glyphs []Glyph) []Run {
	m := merger{def: t.Default}
	for _, g := range glyphs {
		switch {
		case g.IsBreak():
			m.lineBreak()
		case g.IsSpace():
			m.space(g.Text)
		default:
			m.text(g.Text, g.Color)
		}
	}
	return m.finish()
}

// MergeRuns coalesces runs the same way Merge does for glyphs. Uncolored
// runs of whitespace behave like spaces.
func (t MarkupTemplate) MergeRuns(runs []Run) []Run {
	m := merger{def: t.Default}
	for _, r := range runs {
		switch {
		case r.Break:
			m.lineBreak()
		case r.Color == nil && !Colorable(r.Text):
			m.space(r.Text)
		default:
			m.text(r.Text, r.Color)
		}
	}
	return m.finish()
}

// Encode merges glyphs and renders the result.
func (t MarkupTemplate) Encode(glyphs []Glyph) string {
	return t.join(t.Merge(glyphs))
}

// EncodeRuns merges runs and renders the result.
func (t MarkupTemplate) EncodeRuns(runs []Run) string {
	return t.join(t.MergeRuns(runs))
}

// EncodeEach renders every glyph with its own tag.
func (t MarkupTemplate) EncodeEach(glyphs []Glyph) string {
	var sb strings.Builder
	for _, g := range glyphs {
		sb.WriteString(t.RenderGlyph(g))
	}
	return sb.String()
}

func (t MarkupTemplate) join(runs []Run) string {
	var sb strings.Builder
	for _, r := range runs {
		sb.WriteString(t.Render(r))
	}
	return sb.String()
}

// merger holds the pending run while scanning left to right.
type merger struct {
	def   Color
	runs  []Run
	buf   strings.Builder
	color *Color
}

func (m *merger) flush() {
	if m.buf.Len() > 0 {
		m.runs = append(m.runs, Run{Text: m.buf.String(), Color: m.color})
	}
	m.buf.Reset()
	m.color = nil
}

func (m *merger) lineBreak() {
	m.flush()
	m.runs = append(m.runs, Run{Break: true})
}

func (m *merger) space(s string) {
	m.buf.WriteString(s)
}

func (m *merger) text(s string, c *Color) {
	if c == nil {
		d := m.def
		c = &d
	}
	if m.color == nil || !m.color.Equal(*c) {
		m.flush()
		m.color = c
	}
	m.buf.WriteString(s)
}

func (m *merger) finish() []Run {
	m.flush()
	return m.runs
}
