package tui

// Rect represents a rectangular region of the terminal.
type Rect struct {
	X, Y, Width, Height int
}

// Layout holds the computed geometry for a given terminal size.
type Layout struct {
	Header, Footer Rect
	Titles, Panel  Rect
	TooSmall       bool // true when terminal is below the minimum 20×6
}

// Calculate computes the layout for a terminal of the given dimensions.
// Returns a Layout with TooSmall=true if width < 20 or height < 6.
//
// Algorithm:
//   - Header: full width, 1 row at top
//   - Footer: full width, 1 row at bottom
//   - Titles: 1 row below the header
//   - Panel: everything between the titles and the footer
//   - framed: Titles and Panel shrink by the 1-character border on each side
func Calculate(width, height int, framed bool) Layout {
	if width < minWidth || height < minHeight {
		return Layout{TooSmall: true}
	}

	x, y := 0, 1
	innerW := width
	bodyH := height - 2 // subtract header + footer rows
	if framed {
		x, y = 1, 2
		innerW -= 2
		bodyH -= 2
	}
	panelH := bodyH - 1
	if panelH < 1 {
		panelH = 1
	}

	return Layout{
		Header:   Rect{X: 0, Y: 0, Width: width, Height: 1},
		Footer:   Rect{X: 0, Y: height - 1, Width: width, Height: 1},
		Titles:   Rect{X: x, Y: y, Width: innerW, Height: 1},
		Panel:    Rect{X: x, Y: y + 1, Width: innerW, Height: panelH},
		TooSmall: false,
	}
}
