package bubbletea_test

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/fwojciec/glyphgrad"
	"github.com/fwojciec/glyphgrad/bubbletea"
	"github.com/fwojciec/glyphgrad/mock"
	"github.com/fwojciec/glyphgrad/uniseg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// plainPreviewer writes each glyph followed by its color.
func plainPreviewer() *mock.Previewer {
	return &mock.Previewer{
		PreviewFn: func(glyphs []glyphgrad.Glyph) string {
			var sb strings.Builder
			for _, g := range glyphs {
				sb.WriteString(g.Text)
				if g.Color != nil {
					sb.WriteString("<" + g.Color.String() + ">")
				}
			}
			return sb.String()
		},
	}
}

func newModel(opts ...bubbletea.ModelOption) bubbletea.Model {
	return bubbletea.NewModel(uniseg.NewLayout(glyphgrad.LayoutConfig{}), plainPreviewer(), opts...)
}

func update(t *testing.T, m bubbletea.Model, msgs ...tea.Msg) bubbletea.Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(bubbletea.Model)
		require.True(t, ok, "Update should return a bubbletea.Model")
	}
	return m
}

func TestModel_ViewBeforeReady(t *testing.T) {
	t.Parallel()

	m := newModel()

	assert.Contains(t, m.View(), "Loading", "View should show loading state before WindowSizeMsg")
}

func TestModel_InitialMarkup(t *testing.T) {
	t.Parallel()

	m := newModel(bubbletea.WithText("ab"))

	assert.Equal(t, "[color=#ff0000]a[/color][color=#0000ff]b[/color]", m.Markup())
}

func TestModel_GradientKeys(t *testing.T) {
	t.Parallel()

	t.Run("ctrl+s toggles the color space", func(t *testing.T) {
		t.Parallel()

		m := update(t, newModel(), tea.KeyMsg{Type: tea.KeyCtrlS})
		assert.Equal(t, glyphgrad.SpaceHSV, m.Spec().Space)

		m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
		assert.Equal(t, glyphgrad.SpaceRGB, m.Spec().Space)
	})

	t.Run("ctrl+r cycles through the modes", func(t *testing.T) {
		t.Parallel()

		m := newModel()
		var modes []glyphgrad.CycleMode
		for i := 0; i < 3; i++ {
			m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlR})
			modes = append(modes, m.Spec().Mode)
		}

		assert.Equal(t, []glyphgrad.CycleMode{glyphgrad.CycleRepeat, glyphgrad.CycleReflect, glyphgrad.CycleNone}, modes)
	})

	t.Run("cycle count never drops below one", func(t *testing.T) {
		t.Parallel()

		m := update(t, newModel(),
			tea.KeyMsg{Type: tea.KeyCtrlDown},
			tea.KeyMsg{Type: tea.KeyCtrlUp},
			tea.KeyMsg{Type: tea.KeyCtrlUp},
		)
		assert.Equal(t, 3, m.Spec().Cycles)

		m = update(t, m,
			tea.KeyMsg{Type: tea.KeyCtrlDown},
			tea.KeyMsg{Type: tea.KeyCtrlDown},
			tea.KeyMsg{Type: tea.KeyCtrlDown},
		)
		assert.Equal(t, 1, m.Spec().Cycles)
	})

	t.Run("settings change the markup", func(t *testing.T) {
		t.Parallel()

		m := newModel(bubbletea.WithText("abc"))
		before := m.Markup()

		m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlR}, tea.KeyMsg{Type: tea.KeyCtrlUp})

		assert.NotEqual(t, before, m.Markup())
	})
}

func TestModel_TypingUpdatesMarkup(t *testing.T) {
	t.Parallel()

	m := newModel()
	tm := teatest.NewTestModel(t, m,
		teatest.WithInitialTermSize(80, 24),
	)

	tm.Type("ab")
	teatest.WaitFor(t, tm.Output(), func(out []byte) bool {
		return bytes.Contains(out, []byte("b<#0000ff>"))
	})

	tm.Send(tea.KeyMsg{Type: tea.KeyEsc})
	tm.WaitFinished(t, teatest.WithFinalTimeout(time.Second))

	final, ok := tm.FinalModel(t).(bubbletea.Model)
	require.True(t, ok)
	assert.Equal(t, "[color=#ff0000]a[/color][color=#0000ff]b[/color]", final.Markup())
}

func TestModel_StatusShowsSettings(t *testing.T) {
	t.Parallel()

	m := newModel(bubbletea.WithText("hello"))
	tm := teatest.NewTestModel(t, m,
		teatest.WithInitialTermSize(100, 24),
	)

	teatest.WaitFor(t, tm.Output(), func(out []byte) bool {
		return bytes.Contains(out, []byte("RGB"))
	})

	tm.Send(tea.KeyMsg{Type: tea.KeyCtrlS})
	teatest.WaitFor(t, tm.Output(), func(out []byte) bool {
		return bytes.Contains(out, []byte("HSV"))
	})

	tm.Send(tea.KeyMsg{Type: tea.KeyCtrlC})
	tm.WaitFinished(t, teatest.WithFinalTimeout(time.Second))
}

func TestModel_Copy(t *testing.T) {
	t.Parallel()

	t.Run("copies the markup", func(t *testing.T) {
		t.Parallel()

		var mu sync.Mutex
		var copied string
		cb := &mock.Clipboard{
			CopyFn: func(content string) error {
				mu.Lock()
				defer mu.Unlock()
				copied = content
				return nil
			},
		}

		m := newModel(bubbletea.WithText("ab"), bubbletea.WithClipboard(cb))
		tm := teatest.NewTestModel(t, m,
			teatest.WithInitialTermSize(100, 24),
		)

		tm.Send(tea.KeyMsg{Type: tea.KeyCtrlY})
		teatest.WaitFor(t, tm.Output(), func(out []byte) bool {
			return bytes.Contains(out, []byte("copied"))
		})

		tm.Send(tea.KeyMsg{Type: tea.KeyEsc})
		tm.WaitFinished(t, teatest.WithFinalTimeout(time.Second))

		mu.Lock()
		defer mu.Unlock()
		assert.Equal(t, m.Markup(), copied)
	})

	t.Run("reports a failed copy", func(t *testing.T) {
		t.Parallel()

		cb := &mock.Clipboard{
			CopyFn: func(string) error { return errors.New("boom") },
		}

		m := newModel(bubbletea.WithText("ab"), bubbletea.WithClipboard(cb))
		tm := teatest.NewTestModel(t, m,
			teatest.WithInitialTermSize(100, 24),
		)

		tm.Send(tea.KeyMsg{Type: tea.KeyCtrlY})
		teatest.WaitFor(t, tm.Output(), func(out []byte) bool {
			return bytes.Contains(out, []byte("copy failed: boom"))
		})

		tm.Send(tea.KeyMsg{Type: tea.KeyEsc})
		tm.WaitFinished(t, teatest.WithFinalTimeout(time.Second))
	})
}

func TestModel_UsesTemplate(t *testing.T) {
	t.Parallel()

	tpl := glyphgrad.MarkupTemplate{Format: "<%%color>%%words", Default: glyphgrad.MustParseHex("#000000")}
	red := glyphgrad.MustParseHex("#ff0000")

	m := newModel(
		bubbletea.WithText("ab"),
		bubbletea.WithTemplate(tpl),
		bubbletea.WithSpec(glyphgrad.DefaultSpec(red, red)),
	)

	assert.Equal(t, "<#ff0000>ab", m.Markup())
}
