// Package chroma derives gradient presets from the syntax highlighting
// styles registered with the Chroma library.
package chroma

import (
	chromalib "github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/fwojciec/glyphgrad"
)

// Preset is a gradient taken from a highlighting style: keywords start it,
// strings end it, and plain text is the default font color.
type Preset struct {
	Name  string
	Start glyphgrad.Color
	End   glyphgrad.Color
	Text  glyphgrad.Color
}

// Gradient returns the preset as a gradient configuration layer.
func (p Preset) Gradient() glyphgrad.GradientConfig {
	return glyphgrad.GradientConfig{
		Start: p.Start.String(),
		End:   p.End.String(),
	}
}

// Markup returns the preset as a markup configuration layer.
func (p Preset) Markup() glyphgrad.MarkupConfig {
	return glyphgrad.MarkupConfig{Default: p.Text.String()}
}

// Lookup returns the preset for the named style.
func Lookup(name string) (Preset, error) {
	style, ok := styles.Registry[name]
	if !ok {
		return Preset{}, &glyphgrad.ConfigError{Field: "style", Value: name, Reason: "unknown chroma style"}
	}
	return fromStyle(style), nil
}

// StyleNames returns the sorted names of all registered styles.
func StyleNames() []string {
	return styles.Names()
}

func fromStyle(style *chromalib.Style) Preset {
	text := colour(style.Get(chromalib.Text).Colour, glyphgrad.NewRGB(0, 0, 0))
	return Preset{
		Name:  style.Name,
		Start: colour(style.Get(chromalib.Keyword).Colour, text),
		End:   colour(style.Get(chromalib.LiteralString).Colour, text),
		Text:  text,
	}
}

func colour(c chromalib.Colour, fallback glyphgrad.Color) glyphgrad.Color {
	if !c.IsSet() {
		return fallback
	}
	return glyphgrad.NewRGB(float64(c.Red()), float64(c.Green()), float64(c.Blue()))
}
