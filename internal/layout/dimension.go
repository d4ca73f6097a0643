package layout

import "fmt"

// Dimension names the geometric axis a calculation governs.
// Size and scale descriptors use Width, Height and Both; position
// descriptors use X, Y and XY.
type Dimension uint8

const (
	Width  Dimension = iota // Horizontal extent
	Height                  // Vertical extent
	Both                    // Both extents
	X                       // Horizontal position
	Y                       // Vertical position
	XY                      // Both positions
)

var dimensionNames = [...]string{
	Width:  "width",
	Height: "height",
	Both:   "both",
	X:      "x",
	Y:      "y",
	XY:     "xy",
}

func (d Dimension) String() string {
	if int(d) < len(dimensionNames) {
		return dimensionNames[d]
	}
	return fmt.Sprintf("dimension(%d)", d)
}

// ParseDimension converts a name such as "width" or "xy" to a Dimension.
func ParseDimension(s string) (Dimension, error) {
	for i, name := range dimensionNames {
		if name == s {
			return Dimension(i), nil
		}
	}
	return 0, fmt.Errorf("unknown dimension %q", s)
}

// IsSize reports whether d is one of Width, Height or Both.
func (d Dimension) IsSize() bool {
	return d <= Both
}

// IsPosition reports whether d is one of X, Y or XY.
func (d Dimension) IsPosition() bool {
	return d >= X && d <= XY
}

// Horizontal reports whether d measures along the horizontal axis.
// Both and XY are treated as horizontal.
func (d Dimension) Horizontal() bool {
	return d != Height && d != Y
}

// SizeAxis maps a position axis to the matching size dimension
// (X to Width, Y to Height, XY to Both). Size dimensions map to themselves.
func (d Dimension) SizeAxis() Dimension {
	switch d {
	case X:
		return Width
	case Y:
		return Height
	case XY:
		return Both
	default:
		return d
	}
}
