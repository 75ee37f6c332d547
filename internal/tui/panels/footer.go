package panels

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

var footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))

// FooterProps holds all data needed to render the footer bar.
type FooterProps struct {
	Bindings []key.Binding
	Status   string // transient message, e.g. a failed reload
}

// RenderFooter renders the footer bar.
// Left side: status. Right side: keybinding hints from the bindings' help.
func RenderFooter(props FooterProps, width int) string {
	left := props.Status
	right := Hints(props.Bindings)

	gap := width - ansi.StringWidth(left) - ansi.StringWidth(right)
	if gap < 2 {
		gap = 2
	}

	line := ansi.Truncate(left+strings.Repeat(" ", gap)+right, width, "…")
	return footerStyle.Width(width).Render(line)
}

// Hints formats enabled bindings as "key:desc" pairs.
func Hints(bindings []key.Binding) string {
	var parts []string
	for _, b := range bindings {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		parts = append(parts, h.Key+":"+h.Desc)
	}
	return strings.Join(parts, "  ")
}
