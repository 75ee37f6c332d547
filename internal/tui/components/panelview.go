package components

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// PanelView is a scrollable panel body that wraps bubbles/viewport.
// New content always starts at the top.
type PanelView struct {
	vp      viewport.Model
	content string
	width   int
	height  int
}

// NewPanelView creates a PanelView with the given dimensions.
func NewPanelView(w, h int) PanelView {
	return PanelView{
		vp:     viewport.New(w, h),
		width:  w,
		height: h,
	}
}

// SetContent replaces the body and scrolls back to the top.
func (v PanelView) SetContent(content string) PanelView {
	v.content = content
	v.vp.SetContent(content)
	v.vp.GotoTop()
	return v
}

// Content returns the body last passed to SetContent.
func (v PanelView) Content() string {
	return v.content
}

// SetSize resizes the panel to the given dimensions.
func (v PanelView) SetSize(w, h int) PanelView {
	v.width = w
	v.height = h
	v.vp.Width = w
	v.vp.Height = h
	return v
}

// ScrollPercent reports how far the body is scrolled, from 0 to 1.
func (v PanelView) ScrollPercent() float64 {
	return v.vp.ScrollPercent()
}

// AtTop reports whether the first line is visible.
func (v PanelView) AtTop() bool {
	return v.vp.AtTop()
}

// Update handles bubbletea messages (scroll keys, mouse wheel).
func (v PanelView) Update(msg tea.Msg) (PanelView, tea.Cmd) {
	var cmd tea.Cmd
	v.vp, cmd = v.vp.Update(msg)
	return v, cmd
}

// View renders the panel content.
func (v PanelView) View() string {
	return v.vp.View()
}
