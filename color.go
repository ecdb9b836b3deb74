package glyphgrad

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// ErrInvalidColor is returned when a color string cannot be parsed.
var ErrInvalidColor = errors.New("invalid color")

// RGB is a color in the RGB space. Channels are in [0,255].
type RGB struct {
	R, G, B int
}

// HSV is a color in the HSV space. H is in [0,360), S and V in [0,1].
type HSV struct {
	H, S, V float64
}

// Color holds both the RGB and the HSV representation of a color.
// The representation not supplied to the constructor is derived once,
// at construction, so the two views always agree.
type Color struct {
	rgb RGB
	hsv HSV
}

// NewRGB returns a Color from RGB channel values. Values are truncated to
// integers and clamped to [0,255].
func NewRGB(r, g, b float64) Color {
	rgb := RGB{R: clampChannel(r), G: clampChannel(g), B: clampChannel(b)}
	return Color{rgb: rgb, hsv: rgb.HSV()}
}

// NewHSV returns a Color from HSV values. Hue is clamped to [0,360] with 360
// folded onto 0; saturation and value are clamped to [0,1].
func NewHSV(h, s, v float64) Color {
	hsv := HSV{H: clampHue(h), S: clampUnit(s), V: clampUnit(v)}
	return Color{rgb: hsv.RGB(), hsv: hsv}
}

// ParseHex parses a "#RRGGBB" string. Hex digits are case-insensitive.
func ParseHex(s string) (Color, error) {
	if len(s) != 7 || s[0] != '#' {
		return Color{}, fmt.Errorf("%w: %q: want #RRGGBB", ErrInvalidColor, s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q: %v", ErrInvalidColor, s, err)
	}
	return NewRGB(float64(v>>16&0xff), float64(v>>8&0xff), float64(v&0xff)), nil
}

// MustParseHex is like ParseHex but panics if s is malformed.
func MustParseHex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// RGB returns the RGB view of the color.
func (c Color) RGB() RGB { return c.rgb }

// HSV returns the HSV view of the color.
func (c Color) HSV() HSV { return c.hsv }

// String returns the canonical "#rrggbb" form.
func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.rgb.R, c.rgb.G, c.rgb.B)
}

// Equal reports whether c and o have the same canonical string form.
func (c Color) Equal(o Color) bool {
	return c.rgb == o.rgb
}

// HSV converts the color to the HSV space.
func (c RGB) HSV() HSV {
	r, g, b := float64(c.R)/255, float64(c.G)/255, float64(c.B)/255
	hi := math.Max(r, math.Max(g, b))
	lo := math.Min(r, math.Min(g, b))
	delta := hi - lo

	// Gray pixels have no hue and no saturation.
	if delta == 0 {
		return HSV{H: 0, S: 0, V: hi}
	}

	var h float64
	switch hi {
	case r:
		h = (g - b) / delta * 60
	case g:
		h = 120 + (b-r)/delta*60
	default:
		h = 240 + (r-g)/delta*60
	}
	if h < 0 {
		h += 360
	}
	return HSV{H: clampHue(h), S: delta / hi, V: hi}
}

// RGB converts the color to the RGB space.
func (c HSV) RGB() RGB {
	if c.S == 0 {
		v := scaleChannel(c.V)
		return RGB{R: v, G: v, B: v}
	}

	h := c.H / 60
	i := math.Floor(h)
	f := h - i
	p := c.V * (1 - c.S)
	q := c.V * (1 - c.S*f)
	t := c.V * (1 - c.S*(1-f))

	var r, g, b float64
	switch int(i) % 6 {
	case 0:
		r, g, b = c.V, t, p
	case 1:
		r, g, b = q, c.V, p
	case 2:
		r, g, b = p, c.V, t
	case 3:
		r, g, b = p, q, c.V
	case 4:
		r, g, b = t, p, c.V
	default:
		r, g, b = c.V, p, q
	}
	return RGB{R: scaleChannel(r), G: scaleChannel(g), B: scaleChannel(b)}
}

// scaleEpsilon absorbs float noise such as 0.2*255 = 50.99999999999999.
const scaleEpsilon = 1e-9

func scaleChannel(unit float64) int {
	return clampChannel(math.Floor(unit*255 + scaleEpsilon))
}

func clampChannel(v float64) int {
	if math.IsNaN(v) {
		return 0
	}
	switch {
	case v < 0:
		return 0
	case v > 255:
		return 255
	}
	return int(v)
}

func clampUnit(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Min(1, math.Max(0, v))
}

func clampHue(h float64) float64 {
	if math.IsNaN(h) {
		return 0
	}
	h = math.Min(360, math.Max(0, h))
	if h == 360 {
		return 0
	}
	return h
}
