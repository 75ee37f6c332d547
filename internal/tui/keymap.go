package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/LISSConsulting/LISSTech.Tabset/internal/tabs"
)

// KeyMap defines the keybindings of the root model.
type KeyMap struct {
	// Title strip navigation
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding

	// Direct selection (1-9)
	Select key.Binding

	// General
	Focus key.Binding
	Quit  key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "previous"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "next"),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "previous"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "next"),
		),
		Select: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "select"),
		),
		Focus: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "focus"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// RouterKey maps a key message name to the router key it stands for.
// Keys the router does not handle map to tabs.KeyOther.
func (k KeyMap) RouterKey(msg tea.KeyMsg) tabs.Key {
	switch {
	case key.Matches(msg, k.Up):
		return tabs.KeyUp
	case key.Matches(msg, k.Down):
		return tabs.KeyDown
	case key.Matches(msg, k.Left):
		return tabs.KeyLeft
	case key.Matches(msg, k.Right):
		return tabs.KeyRight
	}
	return tabs.KeyOther
}

// HelpFor returns the bindings worth showing for the given focus.
func (k KeyMap) HelpFor(focus FocusTarget) []key.Binding {
	if focus == FocusTitles {
		return []key.Binding{k.Left, k.Right, k.Select, k.Focus, k.Quit}
	}
	return []key.Binding{k.Select, k.Focus, k.Quit}
}
