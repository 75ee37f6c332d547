package tabs

// Source says how an activation was triggered.
type Source int

const (
	SourcePointer      Source = iota // click on a title
	SourceKeyboard                   // arrow-key navigation
	SourceProgrammatic               // write to the widget's selected property
)

// String returns the lowercase source name used in logs and notifications.
func (s Source) String() string {
	switch s {
	case SourcePointer:
		return "pointer"
	case SourceKeyboard:
		return "keyboard"
	case SourceProgrammatic:
		return "programmatic"
	default:
		return "unknown"
	}
}

// Activation describes one change of the active pair.
type Activation struct {
	Index   int
	Element Element // the activated title; nil for out-of-range programmatic writes
	Source  Source
}

// Router translates events arriving at the title region into selections.
// It owns the wraparound arithmetic for arrow-key navigation.
type Router struct {
	ctrl   *Controller
	commit func(index int)
	notify func(Activation)
}

// NewRouter creates a Router driving ctrl. commit performs the selection and
// defaults to ctrl.Select; notify, if non-nil, observes every activation.
func NewRouter(ctrl *Controller, commit func(index int), notify func(Activation)) *Router {
	if commit == nil {
		commit = ctrl.Select
	}
	return &Router{ctrl: ctrl, commit: commit, notify: notify}
}

// Click handles a pointer activation of target. Targets that are not one of
// the resolved titles are ignored and Click returns false.
func (r *Router) Click(target Element) bool {
	return r.activate(target, SourcePointer)
}

// Activate runs the click path for el on behalf of keyboard navigation. It
// does not dispatch through the title Region, so only the notify func sees
// keyboard activations.
func (r *Router) Activate(el Element) bool {
	return r.activate(el, SourceKeyboard)
}

func (r *Router) activate(el Element, src Source) bool {
	idx := r.ctrl.IndexOf(el)
	if idx < 0 {
		return false
	}
	r.commit(idx)
	el.Focus()
	if r.notify != nil {
		r.notify(Activation{Index: idx, Element: el, Source: src})
	}
	return true
}

// KeyDown handles a navigation key. It returns true when the key was
// intercepted, in which case the host must suppress its default action.
// Up/Left step back and land on the last title from any index below one;
// Down/Right step forward modulo the title count. With no titles every key is ignored.
func (r *Router) KeyDown(key Key) bool {
	titles := r.ctrl.Titles()
	if len(titles) == 0 {
		return false
	}

	current, _ := r.ctrl.Selected()
	var next int
	switch key {
	case KeyUp, KeyLeft:
		next = current - 1
		if next < 0 {
			next = len(titles) - 1
		} else {
			next = Wrap(next, len(titles))
		}
	case KeyDown, KeyRight:
		next = Wrap(current+1, len(titles))
	default:
		return false
	}
	r.Activate(titles[next])
	return true
}

// HandleClick is the click listener body registered on the title region.
func (r *Router) HandleClick(e *Event) {
	r.Click(e.Target)
}

// HandleKeyDown is the keydown listener body registered on the title region.
func (r *Router) HandleKeyDown(e *Event) {
	if r.KeyDown(e.Key) {
		e.PreventDefault()
	}
}

// Wrap maps i into [0, n). Negative values wrap from the end, so Wrap(-1, n)
// is n-1. n must be positive.
func Wrap(i, n int) int {
	return ((i % n) + n) % n
}
