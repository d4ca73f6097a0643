// layout.go re-exports layout types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package unitcalc

import "github.com/grindlemire/go-unitcalc/internal/layout"

// Dimension names the axis a calculation governs.
type Dimension = layout.Dimension

const (
	Width  = layout.Width
	Height = layout.Height
	Both   = layout.Both
	X      = layout.X
	Y      = layout.Y
	XY     = layout.XY
)

// Context is the snapshot of surrounding boxes a unit resolves against.
type Context = layout.Context

// Rect is a positioned box.
type Rect = layout.Rect

// BoxSize is a width and height. Size is the size descriptor.
type BoxSize = layout.Size

// Point is an x/y coordinate.
type Point = layout.Point

// Breakpoint is a named responsive threshold.
type Breakpoint = layout.Breakpoint

// Breakpoints is an ordered set of breakpoints.
type Breakpoints = layout.Breakpoints

// Fallback extents used when a context section is absent.
var (
	DefaultScene   = layout.DefaultScene
	DefaultContent = layout.DefaultContent
)

// NewRect creates a Rect.
func NewRect(x, y, width, height float64) Rect { return layout.NewRect(x, y, width, height) }

// NewBreakpoints creates a Breakpoints set.
func NewBreakpoints(bps ...Breakpoint) Breakpoints { return layout.NewBreakpoints(bps...) }

// ParseDimension converts a name such as "width" or "xy" to a Dimension.
func ParseDimension(s string) (Dimension, error) { return layout.ParseDimension(s) }
