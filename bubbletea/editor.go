// Package bubbletea provides an interactive gradient editor using the Bubble
// Tea framework.
package bubbletea

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/fwojciec/glyphgrad"
	theme "github.com/fwojciec/glyphgrad/lipgloss"
)

// Compile-time interface verification.
var _ glyphgrad.Editor = (*Editor)(nil)

// swatcher is implemented by previewers that can draw a color sample.
type swatcher interface {
	Swatch(c glyphgrad.Color, label string) string
}

// copiedMsg reports the result of a clipboard copy.
type copiedMsg struct {
	n   int
	err error
}

// Model is the Bubble Tea model of the gradient editor: a text area on top,
// a live preview of the colored text below and a status line.
type Model struct {
	// Collaborators
	layout    glyphgrad.Layout
	previewer glyphgrad.Previewer
	clipboard glyphgrad.Clipboard

	// Gradient state
	spec     glyphgrad.GradientSpec
	template glyphgrad.MarkupTemplate
	markup   string

	// UI Components
	editor  textarea.Model
	preview viewport.Model

	// State
	ready     bool
	message   string
	failed    bool
	lastValue string

	// Rendering
	width, height int
	theme         *theme.Theme

	// Keybindings
	keymap KeyMap
}

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithSpec sets the initial gradient.
func WithSpec(spec glyphgrad.GradientSpec) ModelOption {
	return func(m *Model) {
		m.spec = spec
	}
}

// WithTemplate sets the markup template used for the copied markup.
func WithTemplate(t glyphgrad.MarkupTemplate) ModelOption {
	return func(m *Model) {
		m.template = t
	}
}

// WithClipboard enables copying the markup.
func WithClipboard(c glyphgrad.Clipboard) ModelOption {
	return func(m *Model) {
		m.clipboard = c
	}
}

// WithText sets the initial text.
func WithText(s string) ModelOption {
	return func(m *Model) {
		m.editor.SetValue(s)
	}
}

// WithTheme sets the UI theme.
func WithTheme(t *theme.Theme) ModelOption {
	return func(m *Model) {
		m.theme = t
	}
}

// WithKeyMap replaces the default key bindings.
func WithKeyMap(k KeyMap) ModelOption {
	return func(m *Model) {
		m.keymap = k
	}
}

// NewModel creates a new editor that positions glyphs with layout and draws
// them with previewer.
func NewModel(layout glyphgrad.Layout, previewer glyphgrad.Previewer, opts ...ModelOption) Model {
	ta := textarea.New()
	ta.Placeholder = "Type some text..."
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.Focus()

	m := Model{
		layout:    layout,
		previewer: previewer,
		spec: glyphgrad.DefaultSpec(
			glyphgrad.MustParseHex("#ff0000"),
			glyphgrad.MustParseHex("#0000ff"),
		),
		template: glyphgrad.DefaultTemplate(),
		editor:   ta,
		theme:    theme.DefaultTheme(),
		keymap:   DefaultKeyMap(),
	}

	for _, opt := range opts {
		opt(&m)
	}

	m.refresh()
	return m
}

// Markup returns the markup of the current text and gradient.
func (m Model) Markup() string {
	return m.markup
}

// Spec returns the current gradient.
func (m Model) Spec() glyphgrad.GradientSpec {
	return m.spec
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeys(msg)

	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)

	case copiedMsg:
		if msg.err != nil {
			m.message = fmt.Sprintf("copy failed: %v", msg.err)
			m.failed = true
		} else {
			m.message = fmt.Sprintf("copied %d bytes", msg.n)
			m.failed = false
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m Model) handleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keymap.ToggleSpace):
		if m.spec.Space == glyphgrad.SpaceRGB {
			m.spec.Space = glyphgrad.SpaceHSV
		} else {
			m.spec.Space = glyphgrad.SpaceRGB
		}
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keymap.CycleMode):
		m.spec.Mode = nextMode(m.spec.Mode)
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keymap.MoreCycles):
		m.spec.Cycles++
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keymap.FewerCycles):
		if m.spec.Cycles > 1 {
			m.spec.Cycles--
			m.refresh()
		}
		return m, nil

	case key.Matches(msg, m.keymap.Copy):
		return m, m.copyMarkup()

	case key.Matches(msg, m.keymap.PreviewUp):
		m.preview.HalfViewUp()
		return m, nil

	case key.Matches(msg, m.keymap.PreviewDown):
		m.preview.HalfViewDown()
		return m, nil
	}

	// Pass all other keys to the text area
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	if m.editor.Value() != m.lastValue {
		m.message = ""
		m.refresh()
	}
	return m, cmd
}

func (m Model) copyMarkup() tea.Cmd {
	if m.clipboard == nil {
		return func() tea.Msg {
			return copiedMsg{err: errors.New("no clipboard configured")}
		}
	}
	cb, markup := m.clipboard, m.markup
	return func() tea.Msg {
		return copiedMsg{n: len(markup), err: cb.Copy(markup)}
	}
}

func (m *Model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height

	// Reserve: two titles (2), pane border (2), status line (1)
	usableHeight := msg.Height - 5
	if usableHeight < 2 {
		usableHeight = 2 // Minimum height for tiny terminals
	}
	editorHeight := usableHeight / 2
	previewHeight := usableHeight - editorHeight

	m.editor.SetWidth(msg.Width)
	m.editor.SetHeight(editorHeight)

	if !m.ready {
		m.preview = viewport.New(msg.Width-2, previewHeight)
		m.ready = true
	} else {
		m.preview.Width = msg.Width - 2
		m.preview.Height = previewHeight
	}
	m.refresh()

	return *m, nil
}

func nextMode(mode glyphgrad.CycleMode) glyphgrad.CycleMode {
	switch mode {
	case glyphgrad.CycleNone:
		return glyphgrad.CycleRepeat
	case glyphgrad.CycleRepeat:
		return glyphgrad.CycleReflect
	default:
		return glyphgrad.CycleNone
	}
}

// refresh recolors the text and updates the preview and markup.
func (m *Model) refresh() {
	text := m.editor.Value()
	m.lastValue = text

	c := glyphgrad.NewGlyphCollection(m.layout.Layout(text))
	c.RecolorAll(m.spec)
	m.markup = c.Encode(m.template)

	if m.ready {
		m.preview.SetContent(m.previewer.Preview(c.Glyphs()))
	}
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	var s strings.Builder
	s.WriteString(m.theme.Title().Render("Text"))
	s.WriteString("\n")
	s.WriteString(m.editor.View())
	s.WriteString("\n")
	s.WriteString(m.theme.Title().Render("Preview"))
	s.WriteString("\n")
	s.WriteString(m.theme.Pane().Render(m.preview.View()))
	s.WriteString("\n")
	s.WriteString(m.renderStatusBar())

	return s.String()
}

func (m Model) renderStatusBar() string {
	start, end := m.spec.Start.String(), m.spec.End.String()
	if sw, ok := m.previewer.(swatcher); ok {
		start = sw.Swatch(m.spec.Start, start)
		end = sw.Swatch(m.spec.End, end)
	}

	settings := fmt.Sprintf("%s │ %s │ ×%d", m.spec.Space, m.spec.Mode, m.spec.Cycles)

	var help []string
	for _, b := range m.keymap.ShortHelp() {
		h := b.Help()
		help = append(help, h.Key+" "+h.Desc)
	}

	status := fmt.Sprintf("%s → %s %s", start, end, m.theme.Status().Render(" "+settings+" "))
	if m.message != "" {
		return status + " " + m.theme.Message(m.failed).Render(m.message)
	}
	return status + " " + m.theme.Help().Render(strings.Join(help, " · "))
}

// Editor runs the gradient editor as a full-screen program.
type Editor struct {
	layout    glyphgrad.Layout
	previewer glyphgrad.Previewer
	opts      []ModelOption
}

// NewEditor creates a new Editor.
func NewEditor(layout glyphgrad.Layout, previewer glyphgrad.Previewer, opts ...ModelOption) *Editor {
	return &Editor{layout: layout, previewer: previewer, opts: opts}
}

// Edit opens the editor on text and blocks until the user exits. It returns
// the markup of the final text.
func (e *Editor) Edit(ctx context.Context, text string) (string, error) {
	opts := append([]ModelOption{WithText(text)}, e.opts...)
	m := NewModel(e.layout, e.previewer, opts...)
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	final, err := p.Run()
	if err != nil {
		return "", err
	}
	return final.(Model).Markup(), nil
}
