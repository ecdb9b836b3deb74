// Package uniseg lays text out on a monospace cell grid, splitting it into
// grapheme clusters with the uniseg library.
package uniseg

import (
	"strings"

	"github.com/mattn/go-runewidth"
	uniseglib "github.com/rivo/uniseg"

	"github.com/fwojciec/glyphgrad"
)

// Compile-time interface verification.
var (
	_ glyphgrad.Layout    = (*Layout)(nil)
	_ glyphgrad.Segmenter = (*Segmenter)(nil)
)

// Default cell geometry. Terminal cells are about twice as tall as wide.
const (
	DefaultCellWidth  = 1.0
	DefaultCellHeight = 2.0
	DefaultTabWidth   = 8
)

// Layout places every grapheme cluster at the center of the cells it
// occupies on a monospace grid.
type Layout struct {
	cellWidth  float64
	cellHeight float64
	tabWidth   int
}

// NewLayout creates a Layout. Zero fields of cfg take the defaults.
func NewLayout(cfg glyphgrad.LayoutConfig) *Layout {
	l := &Layout{
		cellWidth:  cfg.CellWidth,
		cellHeight: cfg.CellHeight,
		tabWidth:   cfg.TabWidth,
	}
	if l.cellWidth <= 0 {
		l.cellWidth = DefaultCellWidth
	}
	if l.cellHeight <= 0 {
		l.cellHeight = DefaultCellHeight
	}
	if l.tabWidth <= 0 {
		l.tabWidth = DefaultTabWidth
	}
	return l
}

// Layout implements glyphgrad.Layout. Tabs are expanded to spaces first.
func (l *Layout) Layout(text string) []glyphgrad.Glyph {
	text = normalizeNewlines(text)
	var glyphs []glyphgrad.Glyph
	for row, line := range strings.Split(text, "\n") {
		if row > 0 {
			glyphs = append(glyphs, glyphgrad.Glyph{ID: len(glyphs), Text: glyphgrad.LineBreak})
		}
		col := 0
		gr := uniseglib.NewGraphemes(ExpandTabs(line, 0, l.tabWidth))
		for gr.Next() {
			cluster := gr.Str()
			w := runewidth.StringWidth(cluster)
			glyphs = append(glyphs, glyphgrad.Glyph{
				ID:   len(glyphs),
				Text: cluster,
				Anchor: glyphgrad.Point{
					X: (float64(col) + float64(w)/2) * l.cellWidth,
					Y: (float64(row) + 0.5) * l.cellHeight,
				},
			})
			col += w
		}
	}
	return glyphs
}

// Segmenter splits text into grapheme clusters.
type Segmenter struct{}

// NewSegmenter creates a new Segmenter.
func NewSegmenter() *Segmenter {
	return &Segmenter{}
}

// Segment implements glyphgrad.Segmenter. "\r\n" is reported as a single
// glyphgrad.LineBreak.
func (s *Segmenter) Segment(text string) []string {
	var out []string
	gr := uniseglib.NewGraphemes(normalizeNewlines(text))
	for gr.Next() {
		out = append(out, gr.Str())
	}
	return out
}

func normalizeNewlines(s string) string {
	return strings.ReplaceAll(s, "\r\n", "\n")
}

// ExpandTabs converts tab characters to the number of spaces that reaches
// the next tab stop. startCol is the column the string begins at, which
// affects how the first tab is expanded.
func ExpandTabs(s string, startCol, tabWidth int) string {
	if !strings.Contains(s, "\t") {
		return s
	}
	if tabWidth <= 0 {
		tabWidth = DefaultTabWidth
	}

	var sb strings.Builder
	col := startCol
	gr := uniseglib.NewGraphemes(s)
	for gr.Next() {
		cluster := gr.Str()
		if cluster == "\t" {
			nextStop := ((col / tabWidth) + 1) * tabWidth
			sb.WriteString(strings.Repeat(" ", nextStop-col))
			col = nextStop
			continue
		}
		sb.WriteString(cluster)
		col += runewidth.StringWidth(cluster)
	}
	return sb.String()
}
