package bubbletea

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings for the gradient editor. Plain keys go to
// the text area, so every binding uses a modifier.
type KeyMap struct {
	ToggleSpace key.Binding
	CycleMode   key.Binding
	MoreCycles  key.Binding
	FewerCycles key.Binding
	Copy        key.Binding
	PreviewUp   key.Binding
	PreviewDown key.Binding
	Quit        key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		ToggleSpace: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "rgb/hsv"),
		),
		CycleMode: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "mode"),
		),
		MoreCycles: key.NewBinding(
			key.WithKeys("ctrl+up", "alt+up"),
			key.WithHelp("ctrl+↑", "more cycles"),
		),
		FewerCycles: key.NewBinding(
			key.WithKeys("ctrl+down", "alt+down"),
			key.WithHelp("ctrl+↓", "fewer cycles"),
		),
		Copy: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", "copy markup"),
		),
		PreviewUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "scroll preview"),
		),
		PreviewDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "scroll preview"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// ShortHelp returns the bindings shown in the status line.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.ToggleSpace, k.CycleMode, k.MoreCycles, k.FewerCycles, k.Copy, k.Quit}
}
