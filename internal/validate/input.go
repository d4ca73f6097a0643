package validate

import (
	"github.com/grindlemire/go-unitcalc/internal/unit"
)

// Values used when a descriptor's behavior is not a plain number.
const (
	SizeFallback     = 100.0
	PositionFallback = 0.0
	ScaleFallback    = 1.0
)

// InputKind tags the variant an Input holds.
type InputKind uint8

const (
	InputNumber InputKind = iota
	InputWrapped
	InputSize
	InputPosition
	InputScale
)

func (k InputKind) String() string {
	switch k {
	case InputNumber:
		return "number"
	case InputWrapped:
		return "wrapped"
	case InputSize:
		return "size"
	case InputPosition:
		return "position"
	case InputScale:
		return "scale"
	default:
		return "unknown"
	}
}

// Input is a value to validate: a raw number, a wrapped number, or a unit
// descriptor.
type Input struct {
	kind  InputKind
	value float64
	desc  unit.Descriptor
}

// Number wraps a raw number.
func Number(v float64) Input { return Input{kind: InputNumber, value: v} }

// Wrapped wraps a number carried in a value holder.
func Wrapped(v float64) Input { return Input{kind: InputWrapped, value: v} }

// FromSize validates the declared value of a size descriptor.
func FromSize(s *unit.Size) Input {
	return Input{kind: InputSize, value: declared(s.Behavior(), SizeFallback), desc: s}
}

// FromPosition validates the declared value of a position descriptor.
func FromPosition(p *unit.Position) Input {
	return Input{kind: InputPosition, value: declared(p.Behavior(), PositionFallback), desc: p}
}

// FromScale validates the declared value of a scale descriptor.
func FromScale(s *unit.Scale) Input {
	return Input{kind: InputScale, value: declared(s.Behavior(), ScaleFallback), desc: s}
}

// FromDescriptor dispatches to FromSize, FromPosition or FromScale. Other
// descriptor implementations validate as their kind's fallback value.
func FromDescriptor(d unit.Descriptor) Input {
	switch d := d.(type) {
	case *unit.Size:
		return FromSize(d)
	case *unit.Position:
		return FromPosition(d)
	case *unit.Scale:
		return FromScale(d)
	}
	switch d.Kind() {
	case unit.KindPosition:
		return Input{kind: InputPosition, value: PositionFallback, desc: d}
	case unit.KindScale:
		return Input{kind: InputScale, value: ScaleFallback, desc: d}
	default:
		return Input{kind: InputSize, value: SizeFallback, desc: d}
	}
}

// Resolved validates v, the value d resolved to. Context validators still
// see d.
func Resolved(d unit.Descriptor, v float64) Input {
	in := FromDescriptor(d)
	in.value = v
	return in
}

func declared[V unit.Named](b unit.Behavior[V], fallback float64) float64 {
	if v, ok := b.Numeric(); ok {
		return v
	}
	return fallback
}

// Kind returns the variant tag.
func (in Input) Kind() InputKind { return in.kind }

// Value returns the number under validation.
func (in Input) Value() float64 { return in.value }

// Descriptor returns the descriptor for descriptor inputs, else nil.
func (in Input) Descriptor() unit.Descriptor { return in.desc }

// ID identifies the input in logs: the descriptor id, or the variant name.
func (in Input) ID() string {
	if in.desc != nil {
		return in.desc.ID()
	}
	return in.kind.String()
}
