// Package tui provides a bubbletea + lipgloss terminal front end for a
// mounted tab widget.
package tui

import "github.com/charmbracelet/lipgloss"

// defaultAccentColor is the default accent color (indigo).
const defaultAccentColor = "#7D56F4"

// minWidth and minHeight are the smallest terminal the widget renders in.
const (
	minWidth  = 20
	minHeight = 6
)

var (
	colorWhite = lipgloss.Color("#FAFAFA")
	colorGray  = lipgloss.Color("#888888")
)

// Styles that do not depend on the accent color.
var (
	emptyPanelStyle = lipgloss.NewStyle().
			Foreground(colorGray).
			Italic(true)

	plainBodyStyle = lipgloss.NewStyle().
			Foreground(colorWhite)
)
