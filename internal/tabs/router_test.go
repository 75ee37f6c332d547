package tabs

import "testing"

func newRouter(n, current int) (*Router, *Controller, []Element, *fakeTree) {
	tree := &fakeTree{}
	titles := tree.elements("T", n)
	c := &Controller{}
	c.Initialize(titles, tree.elements("P", n))
	if n > 0 {
		c.Select(current)
	}
	return NewRouter(c, nil, nil), c, titles, tree
}

func TestRouter_KeyDown_Wraparound(t *testing.T) {
	tests := []struct {
		name    string
		n       int
		current int
		key     Key
		want    int
	}{
		{"up wraps from first", 3, 0, KeyUp, 2},
		{"left wraps from first", 3, 0, KeyLeft, 2},
		{"down wraps from last", 3, 2, KeyDown, 0},
		{"right wraps from last", 3, 2, KeyRight, 0},
		{"up steps back", 3, 2, KeyUp, 1},
		{"right steps forward", 3, 0, KeyRight, 1},
		{"single title up", 1, 0, KeyUp, 0},
		{"single title down", 1, 0, KeyDown, 0},
		{"single title left", 1, 0, KeyLeft, 0},
		{"single title right", 1, 0, KeyRight, 0},
		{"out of range right", 3, 7, KeyRight, 2},
		{"out of range left", 3, 7, KeyLeft, 0},
		{"negative right", 3, -1, KeyRight, 0},
		{"below minus one up", 3, -2, KeyUp, 2},
		{"below minus one left", 3, -5, KeyLeft, 2},
		{"out of range up", 3, 4, KeyUp, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, c, titles, tree := newRouter(tt.n, tt.current)
			if !r.KeyDown(tt.key) {
				t.Fatalf("KeyDown(%v) should be intercepted", tt.key)
			}
			if got, _ := c.Selected(); got != tt.want {
				t.Errorf("selected after %v: got %d, want %d", tt.key, got, tt.want)
			}
			if tree.focused != titles[tt.want] {
				t.Errorf("focus: got %v, want %v", tree.focused, titles[tt.want])
			}
		})
	}
}

func TestRouter_KeyDown_OtherKeyIgnored(t *testing.T) {
	r, c, _, tree := newRouter(3, 1)
	if r.KeyDown(KeyOther) {
		t.Error("KeyOther should not be intercepted")
	}
	if got, _ := c.Selected(); got != 1 {
		t.Errorf("selected changed to %d", got)
	}
	if tree.focused != nil {
		t.Error("focus should not move")
	}
}

func TestRouter_KeyDown_NoTitles(t *testing.T) {
	r, c, _, _ := newRouter(0, 0)
	for _, k := range []Key{KeyUp, KeyDown, KeyLeft, KeyRight} {
		if r.KeyDown(k) {
			t.Errorf("KeyDown(%v) with no titles should be a no-op", k)
		}
	}
	if _, ok := c.Selected(); ok {
		t.Error("no selection expected")
	}
}

func TestRouter_Click(t *testing.T) {
	r, c, titles, tree := newRouter(3, 0)

	if !r.Click(titles[2]) {
		t.Fatal("click on a title should be handled")
	}
	if got, _ := c.Selected(); got != 2 {
		t.Errorf("selected: got %d, want 2", got)
	}
	if tree.focused != titles[2] {
		t.Errorf("focus: got %v, want T2", tree.focused)
	}

	stranger := tree.element("button")
	if r.Click(stranger) {
		t.Error("click on a non-title should be ignored")
	}
	if r.Click(nil) {
		t.Error("click on nil should be ignored")
	}
	if got, _ := c.Selected(); got != 2 {
		t.Errorf("selected changed to %d after ignored clicks", got)
	}
}

func TestRouter_NotifySources(t *testing.T) {
	tree := &fakeTree{}
	titles := tree.elements("T", 3)
	c := &Controller{}
	c.Initialize(titles, tree.elements("P", 3))
	c.Select(0)

	var got []Activation
	r := NewRouter(c, nil, func(a Activation) { got = append(got, a) })

	r.Click(titles[1])
	r.KeyDown(KeyRight)

	if len(got) != 2 {
		t.Fatalf("got %d activations, want 2", len(got))
	}
	if got[0].Index != 1 || got[0].Source != SourcePointer || got[0].Element != titles[1] {
		t.Errorf("first activation = %+v", got[0])
	}
	if got[1].Index != 2 || got[1].Source != SourceKeyboard || got[1].Element != titles[2] {
		t.Errorf("second activation = %+v", got[1])
	}
}

func TestRouter_HandleKeyDown_PreventsDefault(t *testing.T) {
	r, _, _, _ := newRouter(3, 0)

	e := &Event{Type: EventKeyDown, Key: KeyDown}
	r.HandleKeyDown(e)
	if !e.DefaultPrevented() {
		t.Error("arrow key should prevent default")
	}

	e = &Event{Type: EventKeyDown, Key: KeyOther}
	r.HandleKeyDown(e)
	if e.DefaultPrevented() {
		t.Error("other key should not prevent default")
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		i, n, want int
	}{
		{0, 3, 0},
		{3, 3, 0},
		{-1, 3, 2},
		{-4, 3, 2},
		{5, 1, 0},
		{-1, 1, 0},
	}
	for _, tt := range tests {
		if got := Wrap(tt.i, tt.n); got != tt.want {
			t.Errorf("Wrap(%d, %d) = %d, want %d", tt.i, tt.n, got, tt.want)
		}
	}
}

func TestKey_StringParse(t *testing.T) {
	for _, k := range []Key{KeyUp, KeyDown, KeyLeft, KeyRight} {
		if got := ParseKey(k.String()); got != k {
			t.Errorf("ParseKey(%q) = %v, want %v", k.String(), got, k)
		}
	}
	if got := ParseKey("enter"); got != KeyOther {
		t.Errorf("ParseKey(enter) = %v, want other", got)
	}
}

func TestSource_String(t *testing.T) {
	tests := []struct {
		input Source
		want  string
	}{
		{SourcePointer, "pointer"},
		{SourceKeyboard, "keyboard"},
		{SourceProgrammatic, "programmatic"},
		{Source(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.input.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
