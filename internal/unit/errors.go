package unit

import "errors"

var (
	// ErrAxisMismatch is returned when a single-axis position descriptor is
	// asked to resolve along the other axis.
	ErrAxisMismatch = errors.New("axis mismatch")

	// ErrInvalidDimension is returned when a descriptor is built with a
	// dimension from the wrong family (e.g. X for a size).
	ErrInvalidDimension = errors.New("invalid dimension")

	// ErrUnknownBehavior is returned when parsing an unrecognized basis or
	// behavior name.
	ErrUnknownBehavior = errors.New("unknown behavior")

	// ErrUnknownKind is returned when parsing an unrecognized descriptor kind.
	ErrUnknownKind = errors.New("unknown kind")
)
