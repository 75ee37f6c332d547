package tabs

import "fmt"

// fakeTree tracks focus across a set of fake elements.
type fakeTree struct {
	focused *fakeElement
}

type fakeElement struct {
	tree  *fakeTree
	name  string
	attrs map[string]string
}

func (t *fakeTree) element(name string) *fakeElement {
	return &fakeElement{tree: t, name: name, attrs: map[string]string{}}
}

func (t *fakeTree) elements(prefix string, n int) []Element {
	out := make([]Element, n)
	for i := range out {
		out[i] = t.element(fmt.Sprintf("%s%d", prefix, i))
	}
	return out
}

func (e *fakeElement) Attribute(name string) (string, bool) {
	v, ok := e.attrs[name]
	return v, ok
}

func (e *fakeElement) SetAttribute(name, value string) { e.attrs[name] = value }

func (e *fakeElement) RemoveAttribute(name string) { delete(e.attrs, name) }

func (e *fakeElement) Focus() { e.tree.focused = e }

func (e *fakeElement) String() string { return e.name }

type fakeProvider struct {
	titles []Element
	panels []Element
	err    error
	calls  int
}

func (p *fakeProvider) Compose(Element) ([]Element, []Element, error) {
	p.calls++
	return p.titles, p.panels, p.err
}

// attr returns el's attribute value, or "<unset>".
func attr(el Element, name string) string {
	v, ok := el.Attribute(name)
	if !ok {
		return "<unset>"
	}
	return v
}

// activeTitles returns the indices of titles with aria-selected="true".
func activeTitles(titles []Element) []int {
	var out []int
	for i, t := range titles {
		if attr(t, AttrAriaSelected) == "true" {
			out = append(out, i)
		}
	}
	return out
}

// visiblePanels returns the indices of panels with aria-hidden="false".
func visiblePanels(panels []Element) []int {
	var out []int
	for i, p := range panels {
		if attr(p, AttrAriaHidden) == "false" {
			out = append(out, i)
		}
	}
	return out
}

// newMounted mounts a widget over n titles and n panels.
func newMounted(n int) (*Widget, *fakeTree, *fakeProvider) {
	tree := &fakeTree{}
	p := &fakeProvider{titles: tree.elements("T", n), panels: tree.elements("P", n)}
	w := New(tree.element("host"))
	if err := w.Mount(p); err != nil {
		panic(err)
	}
	return w, tree, p
}
