package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme holds accent-color-derived styles.
type Theme struct {
	accentStyle   lipgloss.Style // header bar
	titleActive   lipgloss.Style // aria-selected="true"
	titleInactive lipgloss.Style
	frame         lipgloss.Style // "framed" host attribute
}

// NewTheme creates a Theme from a hex accent color string (e.g. "#7D56F4").
// If accentColor is empty, the default accent color is used.
func NewTheme(accentColor string) Theme {
	color := defaultAccentColor
	if accentColor != "" {
		color = accentColor
	}
	c := lipgloss.Color(color)
	return Theme{
		accentStyle: lipgloss.NewStyle().
			Background(c).
			Foreground(lipgloss.Color("#FFFFFF")).
			Bold(true),
		titleActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(c),
		titleInactive: lipgloss.NewStyle().
			Foreground(colorGray),
		frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c),
	}
}

// AccentHeaderStyle returns the style for the header bar.
func (t Theme) AccentHeaderStyle() lipgloss.Style {
	return t.accentStyle
}

// TitleStyles returns the active and inactive title styles.
func (t Theme) TitleStyles() (active, inactive lipgloss.Style) {
	return t.titleActive, t.titleInactive
}

// FrameStyle returns the rounded accent border drawn around framed widgets.
func (t Theme) FrameStyle() lipgloss.Style {
	return t.frame
}
