package glyphgrad_test

import (
	"testing"

	"github.com/fwojciec/glyphgrad"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// colored builds glyphs from text with one color per rune; a nil entry
// leaves the glyph uncolored.
func colored(text string, colors ...*glyphgrad.Color) []glyphgrad.Glyph {
	glyphs := make([]glyphgrad.Glyph, 0, len(colors))
	for i, r := range []rune(text) {
		glyphs = append(glyphs, glyphgrad.Glyph{ID: i, Text: string(r), Color: colors[i]})
	}
	return glyphs
}

func ptr(c glyphgrad.Color) *glyphgrad.Color { return &c }

func TestMarkupTemplate_Encode(t *testing.T) {
	t.Parallel()

	tpl := glyphgrad.MarkupTemplate{Format: "[c=%%color]%%words[/c]", Default: black}

	t.Run("merges equal colors and absorbs spaces", func(t *testing.T) {
		t.Parallel()

		upper := tpl
		upper.Uppercase = true
		glyphs := colored("ab c", ptr(red), ptr(red), nil, ptr(green))

		got := upper.Encode(glyphs)

		assert.Equal(t, "[c=#FF0000]ab [/c][c=#00FF00]c[/c]", got)
	})

	t.Run("default color is emitted raw", func(t *testing.T) {
		t.Parallel()

		glyphs := colored("hi x", ptr(black), ptr(black), nil, ptr(red))

		got := tpl.Encode(glyphs)

		assert.Equal(t, "hi [c=#ff0000]x[/c]", got)
	})

	t.Run("uncolored glyphs count as default", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "plain", tpl.Encode(colored("plain", nil, nil, nil, nil, nil)))
	})

	t.Run("line break flushes the pending run", func(t *testing.T) {
		t.Parallel()

		glyphs := colored("a\nb", ptr(red), nil, ptr(red))
		withBreak := tpl
		withBreak.Break = "<br>"

		assert.Equal(t, "[c=#ff0000]a[/c]\n[c=#ff0000]b[/c]", tpl.Encode(glyphs))
		assert.Equal(t, "[c=#ff0000]a[/c]<br>[c=#ff0000]b[/c]", withBreak.Encode(glyphs))
	})

	t.Run("every color change opens a new run", func(t *testing.T) {
		t.Parallel()

		glyphs := colored("abc", ptr(red), ptr(green), ptr(red))

		got := tpl.Encode(glyphs)

		assert.Equal(t, "[c=#ff0000]a[/c][c=#00ff00]b[/c][c=#ff0000]c[/c]", got)
	})

	t.Run("trailing spaces are kept", func(t *testing.T) {
		t.Parallel()

		glyphs := colored("a  ", ptr(red), nil, nil)

		assert.Equal(t, "[c=#ff0000]a  [/c]", tpl.Encode(glyphs))
	})

	t.Run("leading spaces are emitted raw", func(t *testing.T) {
		t.Parallel()

		glyphs := colored(" a", nil, ptr(red))

		assert.Equal(t, " [c=#ff0000]a[/c]", tpl.Encode(glyphs))
	})

	t.Run("space colors are ignored", func(t *testing.T) {
		t.Parallel()

		glyphs := colored("a b", ptr(red), ptr(blue), ptr(red))

		assert.Equal(t, "[c=#ff0000]a b[/c]", tpl.Encode(glyphs))
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, tpl.Encode(nil))
	})
}

func TestMarkupTemplate_Merge(t *testing.T) {
	t.Parallel()

	tpl := glyphgrad.MarkupTemplate{Format: glyphgrad.DefaultFormat, Default: black}
	glyphs := colored("ab\nc", ptr(red), ptr(red), nil, ptr(red))

	runs := tpl.Merge(glyphs)

	require.Len(t, runs, 3)
	assert.Equal(t, "ab", runs[0].Text)
	assert.True(t, runs[1].Break)
	assert.Equal(t, "c", runs[2].Text)
}

func TestMarkupTemplate_EncodeRuns(t *testing.T) {
	t.Parallel()

	tpl := glyphgrad.DefaultTemplate()

	t.Run("single-color line is one tag", func(t *testing.T) {
		t.Parallel()

		runs := glyphgrad.LineGradient{Start: red, End: red}.Runs(glyphTexts("hi there"))

		assert.Equal(t, "[color=#ff0000]hi there[/color]", tpl.EncodeRuns(runs))
	})

	t.Run("gradient runs merge across spaces", func(t *testing.T) {
		t.Parallel()

		runs := []glyphgrad.Run{
			{Text: "a", Color: ptr(red)},
			{Text: " "},
			{Text: "b", Color: ptr(red)},
			{Break: true},
			{Text: "c", Color: ptr(blue)},
		}

		assert.Equal(t, "[color=#ff0000]a b[/color]\n[color=#0000ff]c[/color]", tpl.EncodeRuns(runs))
	})
}

func TestMarkupTemplate_EncodeEach(t *testing.T) {
	t.Parallel()

	tpl := glyphgrad.MarkupTemplate{Format: "<%%color>%%words", Default: black, Break: "|"}
	glyphs := colored("aa b\nc", ptr(red), ptr(red), nil, ptr(black), nil, ptr(blue))

	got := tpl.EncodeEach(glyphs)

	assert.Equal(t, "<#ff0000>a<#ff0000>a b|<#0000ff>c", got)
}

func TestMarkupTemplate_Render(t *testing.T) {
	t.Parallel()

	tpl := glyphgrad.MarkupTemplate{Format: "%%color %%color %%words %%words", Default: black}

	got := tpl.Render(glyphgrad.Run{Text: "x", Color: ptr(red)})

	assert.Equal(t, "#ff0000 %%color x %%words", got)
}

func TestMarkupTemplate_Validate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, glyphgrad.DefaultTemplate().Validate())

	for _, format := range []string{"", "[color=%%color]", "%%words"} {
		tpl := glyphgrad.MarkupTemplate{Format: format}
		assert.ErrorIs(t, tpl.Validate(), glyphgrad.ErrInvalidTemplate, "format %q", format)
	}
}
