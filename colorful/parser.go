// Package colorful parses user-supplied colors using the go-colorful library.
package colorful

import (
	"fmt"
	"strconv"
	"strings"

	colorfullib "github.com/lucasb-eyer/go-colorful"

	"github.com/fwojciec/glyphgrad"
)

// Compile-time interface verification.
var _ glyphgrad.ColorParser = (*Parser)(nil)

// Parser accepts "#rgb", "#rrggbb" (with or without the leading '#'),
// "rgb(r, g, b)" with channels in 0-255, and "hsv(h, s, v)" with hue in
// degrees and saturation and value either in [0,1] or as percentages.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse implements glyphgrad.ColorParser.
func (p *Parser) Parse(s string) (glyphgrad.Color, error) {
	s = strings.TrimSpace(s)
	lower := strings.ToLower(s)

	switch {
	case strings.HasPrefix(lower, "rgb(") && strings.HasSuffix(lower, ")"):
		v, err := parseArgs(lower[len("rgb("):len(lower)-1], false)
		if err != nil {
			return glyphgrad.Color{}, fmt.Errorf("%w: %q: %v", glyphgrad.ErrInvalidColor, s, err)
		}
		return glyphgrad.NewRGB(v[0], v[1], v[2]), nil

	case strings.HasPrefix(lower, "hsv(") && strings.HasSuffix(lower, ")"):
		v, err := parseArgs(lower[len("hsv("):len(lower)-1], true)
		if err != nil {
			return glyphgrad.Color{}, fmt.Errorf("%w: %q: %v", glyphgrad.ErrInvalidColor, s, err)
		}
		return glyphgrad.NewHSV(v[0], v[1], v[2]), nil
	}

	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	if len(s) != 4 && len(s) != 7 {
		return glyphgrad.Color{}, fmt.Errorf("%w: %q: want #rgb or #rrggbb", glyphgrad.ErrInvalidColor, s)
	}
	c, err := colorfullib.Hex(s)
	if err != nil {
		return glyphgrad.Color{}, fmt.Errorf("%w: %q: %v", glyphgrad.ErrInvalidColor, s, err)
	}
	return FromColorful(c), nil
}

// FromColorful converts a go-colorful color, clamping it into the sRGB
// gamut first.
func FromColorful(c colorfullib.Color) glyphgrad.Color {
	r, g, b := c.Clamped().RGB255()
	return glyphgrad.NewRGB(float64(r), float64(g), float64(b))
}

// ToColorful converts a color to go-colorful.
func ToColorful(c glyphgrad.Color) colorfullib.Color {
	rgb := c.RGB()
	return colorfullib.Color{R: float64(rgb.R) / 255, G: float64(rgb.G) / 255, B: float64(rgb.B) / 255}
}

// parseArgs parses three comma-separated numbers. With percent set, a
// trailing '%' on the second and third argument divides them by 100.
func parseArgs(s string, percent bool) ([3]float64, error) {
	var out [3]float64
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return out, fmt.Errorf("want 3 components, got %d", len(parts))
	}
	for i, part := range parts {
		part = strings.TrimSpace(part)
		scale := 1.0
		if percent && i > 0 && strings.HasSuffix(part, "%") {
			part = strings.TrimSuffix(part, "%")
			scale = 100
		}
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return out, fmt.Errorf("component %d: %w", i+1, err)
		}
		out[i] = v / scale
	}
	return out, nil
}
