// Package tabs implements the selection state machine behind an accessible
// tab-panel widget: a set of title elements paired by position with a set of
// panel elements, exactly one pair active at a time.
//
// The package never creates or destroys elements. It mutates ARIA attributes
// on handles supplied by a Provider and reacts to click and keydown events
// dispatched on the widget's title Region.
package tabs

// Attribute names read or written on title, panel, and host elements.
const (
	AttrRole         = "role"
	AttrTabIndex     = "tabindex"
	AttrAriaSelected = "aria-selected"
	AttrAriaHidden   = "aria-hidden"
	AttrSelected     = "selected" // per-title pre-selection marker; host property mirror
	AttrFramed       = "framed"
)

// ARIA roles assigned by the widget.
const (
	RoleTabList  = "tablist"
	RoleTab      = "tab"
	RoleTabPanel = "tabpanel"
)

// Element is an opaque handle to a node owned by the host. Implementations
// must be comparable (pointer types) because title membership is decided by
// identity.
type Element interface {
	// Attribute returns the value of name and whether it is present.
	Attribute(name string) (string, bool)

	// SetAttribute adds or replaces name.
	SetAttribute(name, value string)

	// RemoveAttribute deletes name. Removing an absent attribute is a no-op.
	RemoveAttribute(name string)

	// Focus moves input focus to the element.
	Focus()
}

// hasAttribute reports whether el carries name, regardless of its value.
func hasAttribute(el Element, name string) bool {
	_, ok := el.Attribute(name)
	return ok
}

// boolAttr renders a boolean the way ARIA attributes spell it.
func boolAttr(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
