// Package lipgloss renders colored glyphs and editor chrome using the
// Lipgloss styling library.
package lipgloss

import lipglosslib "github.com/charmbracelet/lipgloss"

// Palette holds the UI colors of the interactive editor.
type Palette struct {
	Background string
	Foreground string
	Muted      string
	Accent     string
	Border     string
	Error      string
	Success    string
}

// Theme provides the editor palette and the styles derived from it.
type Theme struct {
	palette  Palette
	renderer *lipglosslib.Renderer
}

// Palette returns the color palette for this theme.
func (t *Theme) Palette() Palette {
	return t.palette
}

// WithRenderer returns a copy of the theme whose styles are created by r.
func (t *Theme) WithRenderer(r *lipglosslib.Renderer) *Theme {
	c := *t
	c.renderer = r
	return &c
}

func (t *Theme) newStyle() lipglosslib.Style {
	if t.renderer != nil {
		return t.renderer.NewStyle()
	}
	return lipglosslib.NewStyle()
}

// Title styles section headers.
func (t *Theme) Title() lipglosslib.Style {
	return t.newStyle().Bold(true).Foreground(lipglosslib.Color(t.palette.Accent))
}

// Status styles the status line.
func (t *Theme) Status() lipglosslib.Style {
	return t.newStyle().
		Foreground(lipglosslib.Color(t.palette.Foreground)).
		Background(lipglosslib.Color(t.palette.Border))
}

// Help styles key hints.
func (t *Theme) Help() lipglosslib.Style {
	return t.newStyle().Foreground(lipglosslib.Color(t.palette.Muted))
}

// Message styles a transient status message; failures use the error color.
func (t *Theme) Message(failed bool) lipglosslib.Style {
	c := t.palette.Success
	if failed {
		c = t.palette.Error
	}
	return t.newStyle().Foreground(lipglosslib.Color(c))
}

// Pane styles the bordered preview pane.
func (t *Theme) Pane() lipglosslib.Style {
	return t.newStyle().
		Border(lipglosslib.RoundedBorder()).
		BorderForeground(lipglosslib.Color(t.palette.Border))
}

// DefaultTheme returns the default theme (dark background optimized).
func DefaultTheme() *Theme {
	return DarkTheme()
}

// ThemeFor returns DarkTheme for dark backgrounds and LightTheme otherwise.
func ThemeFor(dark bool) *Theme {
	if dark {
		return DarkTheme()
	}
	return LightTheme()
}

// DetectTheme picks a theme matching the background of the terminal.
func DetectTheme() *Theme {
	return ThemeFor(lipglosslib.HasDarkBackground())
}

// DarkTheme returns a theme optimized for dark terminal backgrounds.
func DarkTheme() *Theme {
	return &Theme{
		palette: Palette{
			// Catppuccin Mocha
			Background: "#1e1e2e",
			Foreground: "#cdd6f4",
			Muted:      "#6c7086",
			Accent:     "#89b4fa",
			Border:     "#45475a",
			Error:      "#f38ba8",
			Success:    "#a6e3a1",
		},
	}
}

// LightTheme returns a theme optimized for light terminal backgrounds.
func LightTheme() *Theme {
	return &Theme{
		palette: Palette{
			// Catppuccin Latte
			Background: "#eff1f5",
			Foreground: "#4c4f69",
			Muted:      "#9ca0b0",
			Accent:     "#1e66f5",
			Border:     "#bcc0cc",
			Error:      "#d20f39",
			Success:    "#40a02b",
		},
	}
}
