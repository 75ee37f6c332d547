// Package components provides reusable TUI components for the tab widget.
package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"
)

// zoneTitlePrefix prefixes the bubblezone id of every rendered title.
const zoneTitlePrefix = "tabset-title-"

// separator sits between rendered titles.
const separator = " │ "

// ZoneID returns the bubblezone id of the title at index.
func ZoneID(index int) string {
	return fmt.Sprintf("%s%d", zoneTitlePrefix, index)
}

// Tab is one title as the bar renders it. Selected mirrors aria-selected and
// Focused marks the element holding input focus.
type Tab struct {
	Label    string
	Selected bool
	Focused  bool
}

// TabBar is a stateless title strip. It never decides which title is active;
// it only renders what the widget's attributes say.
type TabBar struct {
	tabs     []Tab
	width    int
	active   lipgloss.Style
	inactive lipgloss.Style
}

// NewTabBar creates a TabBar for tabs with default styles.
func NewTabBar(tabs []Tab) TabBar {
	return TabBar{
		tabs:     tabs,
		active:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4")),
		inactive: lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")),
	}
}

// WithStyles returns a TabBar that renders with the given styles.
func (t TabBar) WithStyles(active, inactive lipgloss.Style) TabBar {
	t.active = active
	t.inactive = inactive
	return t
}

// SetWidth returns a TabBar configured for the given render width. Zero
// disables truncation.
func (t TabBar) SetWidth(w int) TabBar {
	t.width = w
	return t
}

// Active returns the index of the first selected tab, or -1.
func (t TabBar) Active() int {
	for i, tab := range t.tabs {
		if tab.Selected {
			return i
		}
	}
	return -1
}

// View renders the bar as a single line. Each title is wrapped in its own
// zone so mouse releases can be mapped back to an index.
func (t TabBar) View() string {
	if len(t.tabs) == 0 {
		return ""
	}

	labels := t.fitLabels()
	parts := make([]string, len(t.tabs))
	for i, tab := range t.tabs {
		style := t.inactive
		if tab.Selected {
			style = t.active
		}
		if tab.Focused {
			style = style.Underline(true)
		}
		parts[i] = zone.Mark(ZoneID(i), style.Render(labels[i]))
	}
	return strings.Join(parts, separator)
}

// fitLabels truncates labels evenly so the joined bar fits the width.
func (t TabBar) fitLabels() []string {
	labels := make([]string, len(t.tabs))
	total := ansi.StringWidth(separator) * (len(t.tabs) - 1)
	for i, tab := range t.tabs {
		labels[i] = tab.Label
		total += ansi.StringWidth(tab.Label)
	}
	if t.width <= 0 || total <= t.width {
		return labels
	}

	budget := (t.width - ansi.StringWidth(separator)*(len(t.tabs)-1)) / len(t.tabs)
	if budget < 1 {
		budget = 1
	}
	for i := range labels {
		labels[i] = ansi.Truncate(labels[i], budget, "…")
	}
	return labels
}
