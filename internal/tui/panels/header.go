// Package panels renders the header and footer bars around the tab widget.
package panels

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// HeaderProps holds all data needed to render the header bar.
// Plain strings and ints keep this package free of widget types.
type HeaderProps struct {
	Name     string // document name; "tabset" when empty
	Path     string // document path, abbreviated for display
	Selected int    // selected index, -1 when nothing is selected
	Count    int    // number of titles
	Focus    string // "titles" or "panel"
	Watching bool
}

// AbbreviatePath returns a display-friendly path, replacing the home directory
// with "~" and converting backslashes to forward slashes.
func AbbreviatePath(path string) string {
	if path == "" {
		return ""
	}
	if home, err := os.UserHomeDir(); err == nil && strings.HasPrefix(path, home) {
		path = "~" + path[len(home):]
	}
	return strings.ReplaceAll(path, "\\", "/")
}

// Position renders the selection as "2/3". Out-of-range selections render
// as "–/3".
func Position(selected, count int) string {
	if selected < 0 || selected >= count {
		return fmt.Sprintf("–/%d", count)
	}
	return fmt.Sprintf("%d/%d", selected+1, count)
}

// RenderHeader renders the header bar.
// accentStyle is applied to the full header bar width.
func RenderHeader(props HeaderProps, width int, accentStyle lipgloss.Style) string {
	name := "tabset"
	if props.Name != "" {
		name = props.Name
	}

	parts := []string{name}
	if props.Path != "" {
		parts = append(parts, AbbreviatePath(props.Path))
	}
	parts = append(parts, "tab "+Position(props.Selected, props.Count))
	if props.Focus != "" {
		parts = append(parts, "focus: "+props.Focus)
	}
	if props.Watching {
		parts = append(parts, "watching")
	}

	content := ansi.Truncate(strings.Join(parts, "  │  "), width, "…")
	return accentStyle.Width(width).Render(content)
}
