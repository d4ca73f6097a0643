package layout

// Fallback sizes used when a context rectangle is missing.
const (
	DefaultSceneWidth    = 800.0
	DefaultSceneHeight   = 600.0
	DefaultContentWidth  = 100.0
	DefaultContentHeight = 100.0

	// Reference resolution for device-relative scaling.
	DefaultDesignWidth  = 1280.0
	DefaultDesignHeight = 720.0
)

// DefaultScene is the stage size assumed when neither scene nor viewport is known.
var DefaultScene = Size{Width: DefaultSceneWidth, Height: DefaultSceneHeight}

// DefaultContent is the content size assumed when content has not been measured.
var DefaultContent = Size{Width: DefaultContentWidth, Height: DefaultContentHeight}

// DefaultDesign is the reference resolution for device-relative scaling.
var DefaultDesign = Size{Width: DefaultDesignWidth, Height: DefaultDesignHeight}

// Context is the snapshot a unit is resolved against.
// A nil field means the host did not supply that rectangle.
type Context struct {
	// Parent is the immediate containing box.
	Parent *Rect

	// Scene is the top-level stage size.
	Scene *Size

	// Viewport is the visible screen area.
	Viewport *Size

	// Content is the intrinsic bounds of the content being measured.
	// X and Y are usually zero.
	Content *Rect

	// Breakpoint is the active responsive breakpoint, if any.
	Breakpoint *Breakpoint

	// Dimension is the axis the caller is resolving. Position descriptors
	// governing XY use it to pick an axis; strategies use it for lookups.
	Dimension Dimension
}

// WithParent returns a copy of c with the parent box set.
func (c Context) WithParent(r Rect) Context {
	c.Parent = &r
	return c
}

// WithScene returns a copy of c with the scene size set.
func (c Context) WithScene(width, height float64) Context {
	c.Scene = &Size{Width: width, Height: height}
	return c
}

// WithViewport returns a copy of c with the viewport size set.
func (c Context) WithViewport(width, height float64) Context {
	c.Viewport = &Size{Width: width, Height: height}
	return c
}

// WithContent returns a copy of c with the content size set.
func (c Context) WithContent(width, height float64) Context {
	c.Content = &Rect{Width: width, Height: height}
	return c
}

// WithBreakpoint returns a copy of c with the breakpoint set.
func (c Context) WithBreakpoint(bp Breakpoint) Context {
	c.Breakpoint = &bp
	return c
}

// WithDimension returns a copy of c resolving along d.
func (c Context) WithDimension(d Dimension) Context {
	c.Dimension = d
	return c
}

// Clone returns a deep copy so the snapshot can be retained independently
// of the host's rectangles.
func (c Context) Clone() Context {
	out := Context{Dimension: c.Dimension}
	if c.Parent != nil {
		p := *c.Parent
		out.Parent = &p
	}
	if c.Scene != nil {
		s := *c.Scene
		out.Scene = &s
	}
	if c.Viewport != nil {
		v := *c.Viewport
		out.Viewport = &v
	}
	if c.Content != nil {
		ct := *c.Content
		out.Content = &ct
	}
	if c.Breakpoint != nil {
		bp := *c.Breakpoint
		out.Breakpoint = &bp
	}
	return out
}

// Stage returns the scene size, falling back to the viewport and then
// DefaultScene. ok is false when the default was used.
func (c Context) Stage() (s Size, ok bool) {
	switch {
	case c.Scene != nil:
		return *c.Scene, true
	case c.Viewport != nil:
		return *c.Viewport, true
	default:
		return DefaultScene, false
	}
}

// SceneBox returns the scene as an origin-anchored box, falling back to the
// viewport and then DefaultScene.
func (c Context) SceneBox() (Rect, bool) {
	s, ok := c.Stage()
	return s.Box(), ok
}

// ViewportBox returns the viewport as an origin-anchored box, falling back to
// the scene and then DefaultScene.
func (c Context) ViewportBox() (Rect, bool) {
	switch {
	case c.Viewport != nil:
		return c.Viewport.Box(), true
	case c.Scene != nil:
		return c.Scene.Box(), true
	default:
		return DefaultScene.Box(), false
	}
}

// ParentBox returns the parent box, falling back through the scene box chain.
// ok reports whether the parent itself was present.
func (c Context) ParentBox() (Rect, bool) {
	if c.Parent != nil {
		return *c.Parent, true
	}
	r, _ := c.SceneBox()
	return r, false
}

// ContentBox returns the content bounds, falling back to DefaultContent.
func (c Context) ContentBox() (Rect, bool) {
	if c.Content != nil {
		return *c.Content, true
	}
	return DefaultContent.Box(), false
}

// FillSize returns the space a "fill" unit expands into: the scene, then the
// viewport, then the parent, then DefaultScene.
func (c Context) FillSize() (Size, bool) {
	switch {
	case c.Scene != nil:
		return *c.Scene, true
	case c.Viewport != nil:
		return *c.Viewport, true
	case c.Parent != nil:
		return c.Parent.Size(), true
	default:
		return DefaultScene, false
	}
}
