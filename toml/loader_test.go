package toml_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/glyphgrad"
	"github.com/fwojciec/glyphgrad/colorful"
	"github.com/fwojciec/glyphgrad/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "glyphgrad.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoader_Load(t *testing.T) {
	t.Parallel()

	t.Run("layers the file over the defaults", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, `
[gradient]
end = "#00ff00"
mode = "reflect"
cycles = 2

[markup]
uppercase = true

[layout]
tab_width = 4

[presets.sunset]
start = "#ff7e5f"
end = "#feb47b"
space = "HSV"
`)

		cfg, err := toml.NewLoader(nil).Load(path)

		require.NoError(t, err)
		assert.Equal(t, "#ff0000", cfg.Gradient.Start)
		assert.Equal(t, "#00ff00", cfg.Gradient.End)
		assert.Equal(t, "reflect", cfg.Gradient.Mode)
		assert.Equal(t, 2, cfg.Gradient.Cycles)
		assert.True(t, cfg.Markup.Uppercase)
		assert.Equal(t, glyphgrad.DefaultFormat, cfg.Markup.Template)
		assert.Equal(t, 4, cfg.Layout.TabWidth)
		assert.Equal(t, 2.0, cfg.Layout.CellHeight)
		assert.Equal(t, []string{"sunset"}, cfg.PresetNames())
	})

	t.Run("colors are checked with the given parser", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, "[gradient]\nstart = \"rgb(0, 128, 255)\"\n")

		_, err := toml.NewLoader(nil).Load(path)
		require.ErrorIs(t, err, glyphgrad.ErrInvalidColor)

		cfg, err := toml.NewLoader(colorful.NewParser()).Load(path)
		require.NoError(t, err)
		assert.Equal(t, "rgb(0, 128, 255)", cfg.Gradient.Start)
	})

	t.Run("unknown keys are rejected", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, "[gradient]\nstrat = \"#000000\"\n")

		_, err := toml.NewLoader(nil).Load(path)

		require.ErrorIs(t, err, glyphgrad.ErrInvalidConfig)
		assert.Contains(t, err.Error(), "gradient.strat")
	})

	t.Run("bad preset", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, "[presets.broken]\nmode = \"sideways\"\n")

		_, err := toml.NewLoader(nil).Load(path)

		require.ErrorIs(t, err, glyphgrad.ErrInvalidConfig)
		assert.Contains(t, err.Error(), "preset broken")
	})

	t.Run("invalid template", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, "[markup]\ntemplate = \"<b>\"\n")

		_, err := toml.NewLoader(nil).Load(path)

		assert.ErrorIs(t, err, glyphgrad.ErrInvalidTemplate)
	})

	t.Run("syntax error", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, "[gradient\n")

		_, err := toml.NewLoader(nil).Load(path)

		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := toml.NewLoader(nil).Load(filepath.Join(t.TempDir(), "nope.toml"))

		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestDefaultPath(t *testing.T) {
	t.Parallel()

	path, _ := toml.DefaultPath()

	if path != "" {
		assert.Equal(t, toml.FileName, filepath.Base(path))
		assert.Equal(t, "glyphgrad", filepath.Base(filepath.Dir(path)))
	}
}
