package layout

import "sort"

// Breakpoint is a named responsive threshold.
type Breakpoint struct {
	Name   string
	Width  float64
	Height float64
}

// Breakpoints is a set of breakpoints ordered by ascending width.
type Breakpoints struct {
	list []Breakpoint
}

// NewBreakpoints creates a set from the given breakpoints in any order.
func NewBreakpoints(bps ...Breakpoint) Breakpoints {
	list := append([]Breakpoint(nil), bps...)
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Width < list[j].Width
	})
	return Breakpoints{list: list}
}

// All returns the breakpoints in ascending width order.
func (b Breakpoints) All() []Breakpoint {
	return append([]Breakpoint(nil), b.list...)
}

// Match returns the widest breakpoint whose width does not exceed the
// viewport width. If the viewport is narrower than every breakpoint the
// smallest one is returned. ok is false only for an empty set.
func (b Breakpoints) Match(viewport Size) (Breakpoint, bool) {
	if len(b.list) == 0 {
		return Breakpoint{}, false
	}
	match := b.list[0]
	for _, bp := range b.list[1:] {
		if bp.Width > viewport.Width {
			break
		}
		match = bp
	}
	return match, true
}

// Apply returns a copy of c whose Breakpoint is matched against its viewport
// (or stage, when no viewport is set).
func (b Breakpoints) Apply(c Context) Context {
	vp := c.Viewport
	if vp == nil {
		s, _ := c.Stage()
		vp = &s
	}
	if bp, ok := b.Match(*vp); ok {
		return c.WithBreakpoint(bp)
	}
	return c
}
