package validate

import (
	"fmt"
	"math"
	"strconv"

	"github.com/grindlemire/go-unitcalc/internal/layout"
)

// Outcome is the result of a validation.
type Outcome struct {
	OK      bool
	Message string // empty when OK
}

// Pass is the successful outcome.
var Pass = Outcome{OK: true}

// Fail returns a failed outcome with a formatted message.
func Fail(format string, args ...any) Outcome {
	return Outcome{Message: fmt.Sprintf(format, args...)}
}

// Validator checks one constraint.
type Validator interface {
	Name() string
	CanHandle(in Input) bool
	Validate(in Input, ctx layout.Context) Outcome
}

// Range checks that a value lies between two bounds.
type Range struct {
	name      string
	lo, hi    float64
	inclusive bool
}

var _ Validator = (*Range)(nil)

// NewRange creates a range validator. An inclusive range accepts its bounds.
func NewRange(name string, lo, hi float64, inclusive bool) *Range {
	return &Range{name: name, lo: lo, hi: hi, inclusive: inclusive}
}

func (r *Range) Name() string { return r.name }

// CanHandle accepts every input variant.
func (r *Range) CanHandle(Input) bool { return true }

func (r *Range) Validate(in Input, _ layout.Context) Outcome {
	if r.Contains(in.Value()) {
		return Pass
	}
	open, closed := "(", ")"
	if r.inclusive {
		open, closed = "[", "]"
	}
	return Fail("Value %s is outside the allowed range %s%s, %s%s",
		num(in.Value()), open, num(r.lo), num(r.hi), closed)
}

// Contains reports whether v satisfies the range.
func (r *Range) Contains(v float64) bool {
	if r.inclusive {
		return r.lo <= v && v <= r.hi
	}
	return r.lo < v && v < r.hi
}

func num(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

// Finite rejects NaN and infinities.
type Finite struct{}

var _ Validator = Finite{}

func (Finite) Name() string         { return "finite" }
func (Finite) CanHandle(Input) bool { return true }

func (Finite) Validate(in Input, _ layout.Context) Outcome {
	v := in.Value()
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Fail("Value %s is not finite", num(v))
	}
	return Pass
}

// Context fails descriptors whose required context rectangles are absent.
type Context struct{}

var _ Validator = Context{}

func (Context) Name() string { return "context" }

// CanHandle accepts descriptor inputs only.
func (Context) CanHandle(in Input) bool { return in.Descriptor() != nil }

func (Context) Validate(in Input, ctx layout.Context) Outcome {
	if in.Descriptor().Validate(ctx) {
		return Pass
	}
	return Fail("Unit %s is missing required context", in.Descriptor().ID())
}
