package glyphgrad

import (
	"fmt"
	"sort"
)

// Config is the user-facing configuration. Values are kept as strings until
// resolved so that any ColorParser can interpret them.
type Config struct {
	Gradient GradientConfig            `toml:"gradient"`
	Markup   MarkupConfig              `toml:"markup"`
	Layout   LayoutConfig              `toml:"layout"`
	Presets  map[string]GradientConfig `toml:"presets"`
}

// GradientConfig is the unresolved form of a GradientSpec.
type GradientConfig struct {
	Start  string `toml:"start"`
	End    string `toml:"end"`
	Space  string `toml:"space"`  // "RGB" or "HSV"
	Cycles int    `toml:"cycles"` // 0 means 1
	Mode   string `toml:"mode"`   // "none", "repeat" or "reflect"
}

// MarkupConfig is the unresolved form of a MarkupTemplate.
type MarkupConfig struct {
	Template  string `toml:"template"`
	Default   string `toml:"default"`
	Break     string `toml:"break"`
	Uppercase bool   `toml:"uppercase"`
}

// LayoutConfig sizes the cells of a monospace layout.
type LayoutConfig struct {
	CellWidth  float64 `toml:"cell_width"`
	CellHeight float64 `toml:"cell_height"`
	TabWidth   int     `toml:"tab_width"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Gradient: GradientConfig{
			Start:  "#ff0000",
			End:    "#0000ff",
			Space:  SpaceRGB.String(),
			Cycles: 1,
			Mode:   CycleNone.String(),
		},
		Markup: MarkupConfig{
			Template: DefaultFormat,
			Default:  "#000000",
			Break:    LineBreak,
		},
		Layout: LayoutConfig{
			CellWidth:  1,
			CellHeight: 2,
			TabWidth:   8,
		},
	}
}

// Merge returns c with every non-zero field of o applied on top.
func (c GradientConfig) Merge(o GradientConfig) GradientConfig {
	if o.Start != "" {
		c.Start = o.Start
	}
	if o.End != "" {
		c.End = o.End
	}
	if o.Space != "" {
		c.Space = o.Space
	}
	if o.Cycles != 0 {
		c.Cycles = o.Cycles
	}
	if o.Mode != "" {
		c.Mode = o.Mode
	}
	return c
}

// Spec resolves c into a validated GradientSpec.
func (c GradientConfig) Spec(p ColorParser) (GradientSpec, error) {
	start, err := p.Parse(c.Start)
	if err != nil {
		return GradientSpec{}, fmt.Errorf("start: %w", err)
	}
	end, err := p.Parse(c.End)
	if err != nil {
		return GradientSpec{}, fmt.Errorf("end: %w", err)
	}
	space, err := ParseColorSpace(c.Space)
	if err != nil {
		return GradientSpec{}, err
	}
	mode, err := ParseCycleMode(c.Mode)
	if err != nil {
		return GradientSpec{}, err
	}
	cycles := c.Cycles
	if cycles == 0 {
		cycles = 1
	}
	spec := GradientSpec{Start: start, End: end, Space: space, Cycles: cycles, Mode: mode}
	if err := spec.Validate(); err != nil {
		return GradientSpec{}, err
	}
	return spec, nil
}

// Merge returns c with every non-zero field of o applied on top. Uppercase
// is applied only when set.
func (c MarkupConfig) Merge(o MarkupConfig) MarkupConfig {
	if o.Template != "" {
		c.Template = o.Template
	}
	if o.Default != "" {
		c.Default = o.Default
	}
	if o.Break != "" {
		c.Break = o.Break
	}
	if o.Uppercase {
		c.Uppercase = true
	}
	return c
}

// Resolve turns c into a validated MarkupTemplate.
func (c MarkupConfig) Resolve(p ColorParser) (MarkupTemplate, error) {
	def, err := p.Parse(c.Default)
	if err != nil {
		return MarkupTemplate{}, fmt.Errorf("default: %w", err)
	}
	t := MarkupTemplate{
		Format:    c.Template,
		Default:   def,
		Break:     c.Break,
		Uppercase: c.Uppercase,
	}
	if err := t.Validate(); err != nil {
		return MarkupTemplate{}, err
	}
	return t, nil
}

// Preset returns the named preset merged over the base gradient.
func (c Config) Preset(name string) (GradientConfig, error) {
	p, ok := c.Presets[name]
	if !ok {
		return GradientConfig{}, &ConfigError{Field: "preset", Value: name, Reason: "not defined"}
	}
	return c.Gradient.Merge(p), nil
}

// PresetNames returns the preset names in sorted order.
func (c Config) PresetNames() []string {
	names := make([]string, 0, len(c.Presets))
	for name := range c.Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
