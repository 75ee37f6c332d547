package tui

// FocusTarget identifies which part of the widget holds keyboard focus.
type FocusTarget int

const (
	FocusTitles FocusTarget = iota // title strip; arrows move the selection
	FocusPanel                     // panel body; keys scroll the viewport
)

// Next returns the other focus target.
func (f FocusTarget) Next() FocusTarget {
	return (f + 1) % 2
}

// String returns the human-readable name of the focus target.
func (f FocusTarget) String() string {
	switch f {
	case FocusTitles:
		return "titles"
	case FocusPanel:
		return "panel"
	default:
		return "unknown"
	}
}
