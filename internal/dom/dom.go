// Package dom is a minimal element tree for hosting tab widgets in the
// terminal. Nodes carry string attributes like DOM elements, and a Document
// distributes its children into slots the way shadow DOM does: children with
// slot "title" are titles, every other child is a panel.
package dom

import (
	"sort"

	"github.com/LISSConsulting/LISSTech.Tabset/internal/tabs"
)

// SlotTitle is the slot name that marks a child as a tab title.
const SlotTitle = "title"

// Format is the markup of a panel body.
type Format string

const (
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
)

// Attr is a single name/value attribute pair.
type Attr struct {
	Name  string
	Value string
}

// Node is an element owned by a Document.
type Node struct {
	doc    *Document
	slot   string
	label  string
	body   string
	format Format
	attrs  map[string]string
}

// Attribute returns the value of name and whether it is present.
func (n *Node) Attribute(name string) (string, bool) {
	v, ok := n.attrs[name]
	return v, ok
}

// SetAttribute adds or replaces name.
func (n *Node) SetAttribute(name, value string) {
	n.attrs[name] = value
}

// RemoveAttribute deletes name.
func (n *Node) RemoveAttribute(name string) {
	delete(n.attrs, name)
}

// HasAttribute reports whether name is present.
func (n *Node) HasAttribute(name string) bool {
	_, ok := n.attrs[name]
	return ok
}

// Attributes returns all attributes sorted by name.
func (n *Node) Attributes() []Attr {
	out := make([]Attr, 0, len(n.attrs))
	for k, v := range n.attrs {
		out = append(out, Attr{Name: k, Value: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Focus makes n the document's focused node.
func (n *Node) Focus() {
	if n.doc != nil {
		n.doc.focused = n
	}
}

// Focused reports whether n holds the document focus.
func (n *Node) Focused() bool {
	return n.doc != nil && n.doc.focused == n
}

// Slot returns the slot the node is assigned to ("" for the default slot).
func (n *Node) Slot() string { return n.slot }

// Label returns the node's display text (titles).
func (n *Node) Label() string { return n.label }

// Body returns the node's content (panels).
func (n *Node) Body() string { return n.body }

// Format returns the markup of Body.
func (n *Node) Format() Format { return n.format }

// Document owns a host node and its ordered children.
type Document struct {
	// Name is a display name for the document, shown in headers.
	Name string

	host     *Node
	children []*Node
	focused  *Node
}

// New creates an empty Document with a host node.
func New() *Document {
	d := &Document{}
	d.host = d.node("", "", "", FormatText)
	return d
}

func (d *Document) node(slot, label, body string, format Format) *Node {
	return &Node{doc: d, slot: slot, label: label, body: body, format: format, attrs: map[string]string{}}
}

// Host returns the node the widget renders into.
func (d *Document) Host() *Node {
	return d.host
}

// AddTitle appends a title child and returns it.
func (d *Document) AddTitle(label string) *Node {
	n := d.node(SlotTitle, label, "", FormatText)
	n.attrs["slot"] = SlotTitle
	d.children = append(d.children, n)
	return n
}

// AddPanel appends a default-slot child and returns it. An empty format is
// treated as plain text.
func (d *Document) AddPanel(body string, format Format) *Node {
	if format == "" {
		format = FormatText
	}
	n := d.node("", "", body, format)
	d.children = append(d.children, n)
	return n
}

// Children returns the children in document order.
func (d *Document) Children() []*Node {
	return d.children
}

// Assigned returns the children distributed to slot, in document order.
// The empty slot name selects the default slot.
func (d *Document) Assigned(slot string) []*Node {
	var out []*Node
	for _, c := range d.children {
		if c.slot == slot {
			out = append(out, c)
		}
	}
	return out
}

// Focused returns the focused node, or nil.
func (d *Document) Focused() *Node {
	return d.focused
}

// Compose implements tabs.Provider. A nil Document cannot compose and
// reports tabs.ErrUnsupported.
func (d *Document) Compose(tabs.Element) ([]tabs.Element, []tabs.Element, error) {
	if d == nil {
		return nil, nil, tabs.ErrUnsupported
	}
	return elements(d.Assigned(SlotTitle)), elements(d.Assigned("")), nil
}

func elements(nodes []*Node) []tabs.Element {
	out := make([]tabs.Element, len(nodes))
	for i, n := range nodes {
		out[i] = n
	}
	return out
}

// TitleNodes converts the widget's titles back to nodes. Elements that are
// not nodes are skipped.
func TitleNodes(w *tabs.Widget) []*Node {
	return nodes(w.Titles())
}

// PanelNodes converts the widget's panels back to nodes.
func PanelNodes(w *tabs.Widget) []*Node {
	return nodes(w.Panels())
}

func nodes(els []tabs.Element) []*Node {
	out := make([]*Node, 0, len(els))
	for _, el := range els {
		if n, ok := el.(*Node); ok {
			out = append(out, n)
		}
	}
	return out
}
