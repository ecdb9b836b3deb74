package lipgloss_test

import (
	"testing"

	"github.com/fwojciec/glyphgrad/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestDefaultTheme(t *testing.T) {
	t.Parallel()

	t.Run("returns same palette as DarkTheme", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, lipgloss.DarkTheme().Palette(), lipgloss.DefaultTheme().Palette())
	})

	t.Run("every palette color is set", func(t *testing.T) {
		t.Parallel()

		for _, theme := range []*lipgloss.Theme{lipgloss.DarkTheme(), lipgloss.LightTheme()} {
			p := theme.Palette()
			for _, c := range []string{p.Background, p.Foreground, p.Muted, p.Accent, p.Border, p.Error, p.Success} {
				assert.Regexp(t, `^#[0-9a-f]{6}$`, c)
			}
		}
	})
}

func TestLightTheme(t *testing.T) {
	t.Parallel()

	t.Run("differs from dark theme", func(t *testing.T) {
		t.Parallel()

		assert.NotEqual(t, lipgloss.DarkTheme().Palette(), lipgloss.LightTheme().Palette())
	})
}

func TestThemeFor(t *testing.T) {
	t.Parallel()

	assert.Equal(t, lipgloss.DarkTheme().Palette(), lipgloss.ThemeFor(true).Palette())
	assert.Equal(t, lipgloss.LightTheme().Palette(), lipgloss.ThemeFor(false).Palette())
}

func TestTheme_Styles(t *testing.T) {
	t.Parallel()

	theme := lipgloss.DarkTheme().WithRenderer(trueColorRenderer())

	t.Run("title uses the accent color", func(t *testing.T) {
		t.Parallel()

		got := theme.Title().Render("Preview")

		assert.Contains(t, got, "Preview")
		assert.Contains(t, got, "38;2;137;180;250")
	})

	t.Run("message color reflects failure", func(t *testing.T) {
		t.Parallel()

		assert.Contains(t, theme.Message(true).Render("x"), "38;2;243;139;168")
		assert.Contains(t, theme.Message(false).Render("x"), "38;2;166;227;161")
	})
}
