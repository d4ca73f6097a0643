package layout

// Rect represents a rectangle in pixels.
// X and Y are the top-left corner; Width and Height are dimensions.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height float64) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.Width
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.Height
}

// CenterX returns the horizontal center of the rectangle.
func (r Rect) CenterX() float64 {
	return r.X + r.Width/2
}

// CenterY returns the vertical center of the rectangle.
func (r Rect) CenterY() float64 {
	return r.Y + r.Height/2
}

// Size returns the dimensions of the rectangle.
func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Start returns the leading edge along a position axis.
// Horizontal dimensions (X, Width) use the left edge, everything else the top edge.
func (r Rect) Start(d Dimension) float64 {
	if d.Horizontal() {
		return r.X
	}
	return r.Y
}

// End returns the trailing edge along a position axis.
func (r Rect) End(d Dimension) float64 {
	if d.Horizontal() {
		return r.Right()
	}
	return r.Bottom()
}

// Center returns the midpoint along a position axis.
func (r Rect) Center(d Dimension) float64 {
	if d.Horizontal() {
		return r.CenterX()
	}
	return r.CenterY()
}

// Extent returns the length of the rectangle along an axis.
func (r Rect) Extent(d Dimension) float64 {
	return r.Size().Extent(d)
}

// Size is a width/height pair.
type Size struct {
	Width, Height float64
}

// NewSize creates a Size.
func NewSize(width, height float64) Size {
	return Size{Width: width, Height: height}
}

// Extent returns the width for horizontal dimensions and the height otherwise.
// For Both and XY it returns the larger of the two.
func (s Size) Extent(d Dimension) float64 {
	switch d {
	case Width, X:
		return s.Width
	case Height, Y:
		return s.Height
	default:
		return max(s.Width, s.Height)
	}
}

// Box returns the size as a rectangle anchored at the origin.
func (s Size) Box() Rect {
	return Rect{Width: s.Width, Height: s.Height}
}

// Point represents an (X, Y) coordinate.
type Point struct {
	X, Y float64
}

// Range is a closed numeric interval.
type Range struct {
	Min, Max float64
}

// Contains reports whether v lies in [Min, Max].
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Clamp restricts v to the range.
// If Min > Max, Min wins.
func Clamp(v, minVal, maxVal float64) float64 {
	if v < minVal {
		return minVal
	}
	if maxVal >= minVal && v > maxVal {
		return maxVal
	}
	return v
}
