package tui

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/LISSConsulting/LISSTech.Tabset/internal/tabs"
)

func TestKeyMap_RouterKey(t *testing.T) {
	km := DefaultKeyMap()
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want tabs.Key
	}{
		{"up", tea.KeyMsg{Type: tea.KeyUp}, tabs.KeyUp},
		{"down", tea.KeyMsg{Type: tea.KeyDown}, tabs.KeyDown},
		{"left", tea.KeyMsg{Type: tea.KeyLeft}, tabs.KeyLeft},
		{"right", tea.KeyMsg{Type: tea.KeyRight}, tabs.KeyRight},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, tabs.KeyOther},
		{"rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}, tabs.KeyOther},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.RouterKey(tt.msg); got != tt.want {
				t.Errorf("RouterKey(%s) = %v, want %v", tt.msg, got, tt.want)
			}
		})
	}
}

func TestKeyMap_SelectDigits(t *testing.T) {
	km := DefaultKeyMap()
	for _, d := range "123456789" {
		if !key.Matches(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{d}}, km.Select) {
			t.Errorf("digit %q should match Select", d)
		}
	}
	if key.Matches(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("0")}, km.Select) {
		t.Error("0 should not match Select")
	}
}

func TestKeyMap_HelpFor(t *testing.T) {
	km := DefaultKeyMap()
	if got := len(km.HelpFor(FocusTitles)); got != 5 {
		t.Errorf("titles help: got %d bindings, want 5", got)
	}
	if got := len(km.HelpFor(FocusPanel)); got != 3 {
		t.Errorf("panel help: got %d bindings, want 3", got)
	}
}
