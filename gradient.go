package glyphgrad

import (
	"fmt"
	"strings"
)

// ColorSpace selects the space channels are interpolated in.
type ColorSpace int

// Color spaces.
const (
	SpaceRGB ColorSpace = iota
	SpaceHSV
)

// String returns the configuration name of the space.
func (s ColorSpace) String() string {
	switch s {
	case SpaceRGB:
		return "RGB"
	case SpaceHSV:
		return "HSV"
	default:
		return fmt.Sprintf("ColorSpace(%d)", int(s))
	}
}

// ParseColorSpace parses "RGB" or "HSV" (case-insensitive). The empty string
// is RGB.
func ParseColorSpace(s string) (ColorSpace, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", "RGB":
		return SpaceRGB, nil
	case "HSV":
		return SpaceHSV, nil
	}
	return SpaceRGB, &ConfigError{Field: "space", Value: s, Reason: "want RGB or HSV"}
}

// GradientSpec configures a gradient. It is a value type; copies are
// independent.
type GradientSpec struct {
	Start  Color
	End    Color
	Space  ColorSpace
	Cycles int // >= 1
	Mode   CycleMode
}

// DefaultSpec returns a single-pass RGB gradient from start to end.
func DefaultSpec(start, end Color) GradientSpec {
	return GradientSpec{Start: start, End: end, Space: SpaceRGB, Cycles: 1, Mode: CycleNone}
}

// Validate reports the first invalid field of s.
func (s GradientSpec) Validate() error {
	if s.Cycles < 1 {
		return &ConfigError{Field: "cycles", Value: s.Cycles, Reason: "must be at least 1"}
	}
	if s.Space != SpaceRGB && s.Space != SpaceHSV {
		return &ConfigError{Field: "space", Value: s.Space, Reason: "want RGB or HSV"}
	}
	switch s.Mode {
	case CycleNone, CycleRepeat, CycleReflect:
	default:
		return &ConfigError{Field: "mode", Value: s.Mode, Reason: "want none, repeat or reflect"}
	}
	return nil
}

// Interpolate returns the color at ratio between start and end, with every
// channel interpolated independently in space. Hue travels linearly between
// the two raw hue values and may take the long way around the wheel.
func Interpolate(start, end Color, space ColorSpace, ratio float64) Color {
	if space == SpaceHSV {
		a, b := start.HSV(), end.HSV()
		return NewHSV(lerp(a.H, b.H, ratio), lerp(a.S, b.S, ratio), lerp(a.V, b.V, ratio))
	}
	a, b := start.RGB(), end.RGB()
	return NewRGB(
		lerp(float64(a.R), float64(b.R), ratio),
		lerp(float64(a.G), float64(b.G), ratio),
		lerp(float64(a.B), float64(b.B), ratio),
	)
}

// At returns the color of the gradient at a raw ratio, after cycling.
func (s GradientSpec) At(ratio float64) Color {
	return Interpolate(s.Start, s.End, s.Space, Remap(ratio, s.Cycles, s.Mode))
}

// Assign colors glyphs by their position along the diagonal of their own
// bounding box and returns the colored copies. Line breaks are passed
// through uncolored. The input slice is not modified.
func (s GradientSpec) Assign(glyphs []Glyph) []Glyph {
	proj := NewProjector(anchors(glyphs))
	out := make([]Glyph, len(glyphs))
	for i, g := range glyphs {
		if g.IsBreak() {
			g.Color = nil
			out[i] = g
			continue
		}
		out[i] = g.WithColor(s.At(proj.Ratio(g.Anchor)))
	}
	return out
}

func lerp(begin, end, ratio float64) float64 {
	return begin + (end-begin)*ratio
}
