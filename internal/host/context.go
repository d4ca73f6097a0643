package host

import (
	"fyne.io/fyne/v2"
	"github.com/grindlemire/go-unitcalc/internal/layout"
)

// Sizer is anything with a size, such as a fyne.Canvas or fyne.Window content.
type Sizer interface {
	Size() fyne.Size
}

// RectOf returns the bounds of o in its parent's coordinates.
func RectOf(o fyne.CanvasObject) layout.Rect {
	p, s := o.Position(), o.Size()
	return layout.NewRect(float64(p.X), float64(p.Y), float64(s.Width), float64(s.Height))
}

// SizeOf converts a fyne size.
func SizeOf(s fyne.Size) layout.Size {
	return layout.NewSize(float64(s.Width), float64(s.Height))
}

// ToFyne converts a size to fyne's float32 geometry.
func ToFyne(s layout.Size) fyne.Size {
	return fyne.NewSize(float32(s.Width), float32(s.Height))
}

// SceneContext returns a context whose scene and viewport are the size of c.
func SceneContext(c Sizer) layout.Context {
	s := SizeOf(c.Size())
	return layout.Context{}.WithScene(s.Width, s.Height).WithViewport(s.Width, s.Height)
}

// ChildContext returns base with the parent set to the container bounds
// and the content set to the child's minimum size. A container with no area,
// as fyne lays out before the window is shown, leaves the parent unset so
// parent-relative units fall back to the scene.
func ChildContext(base layout.Context, container fyne.Size, child fyne.CanvasObject) layout.Context {
	ctx := base
	if box := SizeOf(container).Box(); !box.IsEmpty() {
		ctx = ctx.WithParent(box)
	}
	ms := SizeOf(child.MinSize())
	return ctx.WithContent(ms.Width, ms.Height)
}
