// Package glyphgrad provides domain types for coloring text with gradients
// and encoding the result as compact markup.
//
// The root package holds the pure engine: color conversion, gradient
// geometry, cycle remapping, interpolation and run-length markup encoding.
// Sub-packages adapt third-party libraries to the interfaces declared here.
package glyphgrad

import "context"

// Layout places the glyphs of a text on a 2D surface.
type Layout interface {
	// Layout returns one glyph per grapheme with its anchor set, and a
	// LineBreak glyph at the end of every line but the last.
	Layout(text string) []Glyph
}

// ColorParser parses a user-supplied color string.
type ColorParser interface {
	Parse(s string) (Color, error)
}

// HexParser parses "#RRGGBB" strings only.
type HexParser struct{}

// Parse implements ColorParser.
func (HexParser) Parse(s string) (Color, error) {
	return ParseHex(s)
}

// Previewer renders colored glyphs for display.
type Previewer interface {
	Preview(glyphs []Glyph) string
}

// Clipboard provides access to the system clipboard.
type Clipboard interface {
	Copy(content string) error
	Paste() (string, error)
}

// ConfigLoader loads configuration from a file.
type ConfigLoader interface {
	Load(path string) (*Config, error)
}

// Editor lets a user edit text interactively while previewing its gradient.
type Editor interface {
	// Edit blocks until the user exits and returns the final markup.
	Edit(ctx context.Context, text string) (string, error)
}
