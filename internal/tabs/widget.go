package tabs

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrUnsupported is returned by Mount when the host cannot compose titles
// and panels. No core logic runs in that case.
var ErrUnsupported = errors.New("tabs: host does not support element composition")

// Provider supplies the ordered title and panel sequences for a widget at
// mount time. The sequences are treated as static until the next mount.
type Provider interface {
	Compose(host Element) (titles, panels []Element, err error)
}

// State is the widget lifecycle state.
type State int

const (
	StateUninitialized State = iota // not mounted: no listeners, no selection
	StateActive                     // mounted: listeners attached, one pair active
)

// validTransitions defines the allowed State transitions.
var validTransitions = map[State][]State{
	StateUninitialized: {StateActive},
	StateActive:        {StateUninitialized},
}

// CanTransitionTo reports whether transitioning from s to next is valid.
func (s State) CanTransitionTo(next State) bool {
	for _, valid := range validTransitions[s] {
		if valid == next {
			return true
		}
	}
	return false
}

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateActive:
		return "active"
	default:
		return "unknown"
	}
}

type hook struct {
	fn func(Activation)
}

// Widget ties a Controller and a Router to a host element and its title
// Region. Every widget owns its own selection; nothing is shared between
// instances.
type Widget struct {
	host   Element
	region *Region
	ctrl   Controller
	router *Router
	state  State

	// Bound listeners kept so Unmount removes exactly what Mount added.
	onClick   *ListenerFunc
	onKeyDown *ListenerFunc

	hooks []*hook
}

// New creates an unmounted widget rendered by host. host may be nil for
// headless use, in which case host attributes are not mirrored.
func New(host Element) *Widget {
	return &Widget{
		host:   host,
		region: NewRegion(),
		state:  StateUninitialized,
	}
}

// Mount composes the widget from p, attaches the title-region listeners and
// selects the declared title (the last one marked "selected"), or index 0.
// Mounting an active widget remounts it from scratch.
func (w *Widget) Mount(p Provider) error {
	if w.state == StateActive {
		w.Unmount()
	}
	if p == nil {
		return fmt.Errorf("tabs: mount: %w", ErrUnsupported)
	}

	titles, panels, err := p.Compose(w.host)
	if err != nil {
		return fmt.Errorf("tabs: mount: %w", err)
	}

	if w.host != nil {
		w.host.SetAttribute(AttrRole, RoleTabList)
	}
	w.ctrl.Initialize(titles, panels)
	w.router = NewRouter(&w.ctrl, w.commit, w.emit)

	w.onClick = NewListener(w.router.HandleClick)
	w.onKeyDown = NewListener(w.router.HandleKeyDown)
	w.region.AddEventListener(EventClick, w.onClick)
	w.region.AddEventListener(EventKeyDown, w.onKeyDown)

	w.state = StateActive

	idx, ok := w.ctrl.DeclaredSelection()
	if !ok {
		idx = 0
	}
	w.commit(idx)
	return nil
}

// Unmount detaches the listeners registered by Mount. It is safe to call on
// an unmounted widget. The last selected index stays readable.
func (w *Widget) Unmount() {
	if !w.state.CanTransitionTo(StateUninitialized) {
		return
	}
	w.region.RemoveEventListener(EventClick, w.onClick)
	w.region.RemoveEventListener(EventKeyDown, w.onKeyDown)
	w.onClick = nil
	w.onKeyDown = nil
	w.state = StateUninitialized
}

// State returns the lifecycle state.
func (w *Widget) State() State {
	return w.state
}

// Host returns the element the widget renders into.
func (w *Widget) Host() Element {
	return w.host
}

// TitleRegion returns the event target for the title strip. Integrators may
// add their own listeners; they run after the router's. Keyboard navigation
// activates titles without dispatching a click here, so use OnActivate to
// observe every activation regardless of source.
func (w *Widget) TitleRegion() *Region {
	return w.region
}

// Titles returns the titles captured at mount.
func (w *Widget) Titles() []Element {
	return w.ctrl.Titles()
}

// Panels returns the panels captured at mount.
func (w *Widget) Panels() []Element {
	return w.ctrl.Panels()
}

// Selected returns the selected index, or false before the first selection.
func (w *Widget) Selected() (int, bool) {
	return w.ctrl.Selected()
}

// SetSelected writes the selected property. It runs the same selection path
// as clicks and keys and mirrors the value to the host's "selected"
// attribute. Out-of-range values are stored as written; no title becomes
// active in that case.
func (w *Widget) SetSelected(index int) {
	w.commit(index)
	var el Element
	if titles := w.ctrl.Titles(); index >= 0 && index < len(titles) {
		el = titles[index]
	}
	w.emit(Activation{Index: index, Element: el, Source: SourceProgrammatic})
}

// Framed reports whether the host carries the cosmetic "framed" attribute.
func (w *Widget) Framed() bool {
	return w.host != nil && hasAttribute(w.host, AttrFramed)
}

// SetFramed toggles the "framed" attribute. Selection is unaffected.
func (w *Widget) SetFramed(framed bool) {
	if w.host == nil {
		return
	}
	if framed {
		w.host.SetAttribute(AttrFramed, "")
		return
	}
	w.host.RemoveAttribute(AttrFramed)
}

// Click dispatches a click on target through the title region. It returns
// true when target was a title and became active.
func (w *Widget) Click(target Element) bool {
	w.region.Dispatch(&Event{Type: EventClick, Target: target})
	pos := w.ctrl.IndexOf(target)
	idx, ok := w.ctrl.Selected()
	return w.state == StateActive && pos >= 0 && ok && idx == pos
}

// KeyDown dispatches key through the title region and reports whether the
// default action was prevented (the key was consumed).
func (w *Widget) KeyDown(key Key) bool {
	e := &Event{Type: EventKeyDown, Key: key}
	return !w.region.Dispatch(e)
}

// OnActivate registers fn to observe every activation. The returned func
// unregisters it.
func (w *Widget) OnActivate(fn func(Activation)) (remove func()) {
	h := &hook{fn: fn}
	w.hooks = append(w.hooks, h)
	return func() {
		for i, existing := range w.hooks {
			if existing == h {
				w.hooks = append(w.hooks[:i:i], w.hooks[i+1:]...)
				return
			}
		}
	}
}

func (w *Widget) commit(index int) {
	w.ctrl.Select(index)
	if w.host != nil {
		w.host.SetAttribute(AttrSelected, strconv.Itoa(index))
	}
}

func (w *Widget) emit(a Activation) {
	for _, h := range append([]*hook(nil), w.hooks...) {
		h.fn(a)
	}
}
