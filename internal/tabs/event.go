package tabs

// EventType identifies the kind of input event dispatched on a Region.
type EventType int

const (
	EventClick   EventType = iota // pointer activation of a target element
	EventKeyDown                  // key press while the region has focus
)

// String returns the DOM-style event name.
func (t EventType) String() string {
	switch t {
	case EventClick:
		return "click"
	case EventKeyDown:
		return "keydown"
	default:
		return "unknown"
	}
}

// Key is a navigation key recognised by the Router.
type Key int

const (
	KeyOther Key = iota // any key the router does not intercept
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
)

// String returns the human-readable key name.
func (k Key) String() string {
	switch k {
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	default:
		return "other"
	}
}

// ParseKey maps a key name ("up", "left", ...) to a Key. Unknown names map to KeyOther.
func ParseKey(name string) Key {
	switch name {
	case "up":
		return KeyUp
	case "down":
		return KeyDown
	case "left":
		return KeyLeft
	case "right":
		return KeyRight
	default:
		return KeyOther
	}
}

// Event is a single input event travelling through a Region.
type Event struct {
	Type   EventType
	Target Element // clicked element; nil for keydown
	Key    Key     // pressed key; KeyOther for click

	defaultPrevented bool
}

// PreventDefault marks the event's default host action (e.g. scrolling) as suppressed.
func (e *Event) PreventDefault() {
	e.defaultPrevented = true
}

// DefaultPrevented reports whether a listener called PreventDefault.
func (e *Event) DefaultPrevented() bool {
	return e.defaultPrevented
}

// Listener receives events dispatched on a Region. Listener identity is the
// interface value itself, so implementations should be pointers.
type Listener interface {
	HandleEvent(e *Event)
}

// ListenerFunc adapts a function to a Listener. Use NewListener to obtain a
// pointer whose identity can later be passed to RemoveEventListener.
type ListenerFunc struct {
	fn func(e *Event)
}

// NewListener wraps fn in a Listener with a stable identity.
func NewListener(fn func(e *Event)) *ListenerFunc {
	return &ListenerFunc{fn: fn}
}

// HandleEvent calls the wrapped function.
func (l *ListenerFunc) HandleEvent(e *Event) {
	l.fn(e)
}

// Region is the event target for the title strip. It keeps listeners per
// event type in registration order.
type Region struct {
	listeners map[EventType][]Listener
}

// NewRegion returns an empty Region.
func NewRegion() *Region {
	return &Region{listeners: make(map[EventType][]Listener)}
}

// AddEventListener registers l for t. Registering the same listener twice is a no-op.
func (r *Region) AddEventListener(t EventType, l Listener) {
	if l == nil {
		return
	}
	for _, existing := range r.listeners[t] {
		if existing == l {
			return
		}
	}
	r.listeners[t] = append(r.listeners[t], l)
}

// RemoveEventListener unregisters l for t. Unknown listeners are ignored.
func (r *Region) RemoveEventListener(t EventType, l Listener) {
	list := r.listeners[t]
	for i, existing := range list {
		if existing == l {
			r.listeners[t] = append(list[:i:i], list[i+1:]...)
			return
		}
	}
}

// ListenerCount returns the number of listeners registered for t.
func (r *Region) ListenerCount(t EventType) int {
	return len(r.listeners[t])
}

// Dispatch delivers e to every listener registered for its type, in order.
// It returns false when a listener prevented the default action.
func (r *Region) Dispatch(e *Event) bool {
	// Snapshot so listeners may unregister themselves while handling.
	list := append([]Listener(nil), r.listeners[e.Type]...)
	for _, l := range list {
		l.HandleEvent(e)
	}
	return !e.defaultPrevented
}
