package tabs

import "strconv"

// Controller owns the title and panel sequences and the selected index.
// It holds no I/O and performs no bounds validation: callers that select an
// index outside [0, len(titles)) get a state where no title is active.
type Controller struct {
	titles []Element
	panels []Element

	selected    int
	hasSelected bool
}

// Initialize captures the paired sequences and assigns the static ARIA roles.
// Titles become role="tab"; panels become role="tabpanel" with tabindex 0.
// Nothing is selected yet.
func (c *Controller) Initialize(titles, panels []Element) {
	c.titles = titles
	c.panels = panels
	c.selected = 0
	c.hasSelected = false

	for _, title := range titles {
		title.SetAttribute(AttrRole, RoleTab)
	}
	for _, panel := range panels {
		panel.SetAttribute(AttrRole, RoleTabPanel)
		panel.SetAttribute(AttrTabIndex, "0")
	}
}

// DeclaredSelection returns the index of the last title carrying the
// "selected" marker. Later markers override earlier ones.
func (c *Controller) DeclaredSelection() (int, bool) {
	idx, found := 0, false
	for i, title := range c.titles {
		if hasAttribute(title, AttrSelected) {
			idx, found = i, true
		}
	}
	return idx, found
}

// Select makes index the active pair by rewriting every title and panel.
// Titles and panels are walked independently, so mismatched lengths leave
// the surplus elements permanently inactive instead of failing.
func (c *Controller) Select(index int) {
	for i, title := range c.titles {
		active := i == index
		tabIndex := -1
		if active {
			tabIndex = 0
		}
		title.SetAttribute(AttrTabIndex, strconv.Itoa(tabIndex))
		title.SetAttribute(AttrAriaSelected, boolAttr(active))
	}
	for i, panel := range c.panels {
		panel.SetAttribute(AttrAriaHidden, boolAttr(i != index))
	}
	c.selected = index
	c.hasSelected = true
}

// Selected returns the current index, or false before the first Select.
func (c *Controller) Selected() (int, bool) {
	return c.selected, c.hasSelected
}

// Titles returns the captured title sequence.
func (c *Controller) Titles() []Element {
	return c.titles
}

// Panels returns the captured panel sequence.
func (c *Controller) Panels() []Element {
	return c.panels
}

// IndexOf returns the position of el in the title sequence, or -1.
func (c *Controller) IndexOf(el Element) int {
	if el == nil {
		return -1
	}
	for i, title := range c.titles {
		if title == el {
			return i
		}
	}
	return -1
}
