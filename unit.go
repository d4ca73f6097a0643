// unit.go re-exports descriptor types from internal/unit.
package unitcalc

import "github.com/grindlemire/go-unitcalc/internal/unit"

// Descriptor is the behavior shared by size, position and scale units.
type Descriptor = unit.Descriptor

// Kind identifies the descriptor family.
type Kind = unit.Kind

const (
	KindSize     = unit.KindSize
	KindPosition = unit.KindPosition
	KindScale    = unit.KindScale
)

type (
	// SizeUnit is the measurement basis of a size.
	SizeUnit = unit.SizeUnit
	// PositionUnit is the reference point of a position.
	PositionUnit = unit.PositionUnit
	// ScaleUnit is the reference frame of a scale.
	ScaleUnit = unit.ScaleUnit

	SizeValue     = unit.SizeValue
	PositionValue = unit.PositionValue
	ScaleValue    = unit.ScaleValue
)

type (
	Size         = unit.Size
	SizeSpec     = unit.SizeSpec
	Position     = unit.Position
	PositionSpec = unit.PositionSpec
	Scale        = unit.Scale
	ScaleSpec    = unit.ScaleSpec
)

// Option configures a descriptor's offset, alignment, logger or random
// source.
type Option = unit.Option

// Custom is a user-supplied unit resolved through a Script behavior.
type Custom = unit.Custom

// Behavior is the rule a descriptor resolves with.
type Behavior[V unit.Named] = unit.Behavior[V]

var (
	WithOffset    = unit.WithOffset
	WithAlignment = unit.WithAlignment
	WithLogger    = unit.WithLogger
	WithRand      = unit.WithRand
)

var (
	ErrAxisMismatch     = unit.ErrAxisMismatch
	ErrInvalidDimension = unit.ErrInvalidDimension
	ErrUnknownBehavior  = unit.ErrUnknownBehavior
	ErrUnknownKind      = unit.ErrUnknownKind
)

// NewSize validates spec and creates a size descriptor.
func NewSize(spec SizeSpec, opts ...Option) (*Size, error) { return unit.NewSize(spec, opts...) }

// NewPosition validates spec and creates a position descriptor.
func NewPosition(spec PositionSpec, opts ...Option) (*Position, error) {
	return unit.NewPosition(spec, opts...)
}

// NewScale validates spec and creates a scale descriptor.
func NewScale(spec ScaleSpec, opts ...Option) (*Scale, error) { return unit.NewScale(spec, opts...) }

// Pixels is a literal size behavior.
func Pixels(v float64) Behavior[SizeValue] { return unit.Pixels(v) }

// At is a literal position behavior.
func At(v float64) Behavior[PositionValue] { return unit.At(v) }

// Factor is a literal scale behavior.
func Factor(v float64) Behavior[ScaleValue] { return unit.Factor(v) }

// Percent is a percentage of the basis extent.
func Percent[V unit.Named](p float64) Behavior[V] { return unit.Percent[V](p) }

// Is is a named behavior such as fill or center.
func Is[V unit.Named](v V) Behavior[V] { return unit.Is(v) }

// Script resolves through a Custom unit.
func Script[V unit.Named](c Custom) Behavior[V] { return unit.Script[V](c) }
