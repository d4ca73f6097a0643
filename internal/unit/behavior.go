package unit

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/grindlemire/go-unitcalc/internal/layout"
)

// Named is the constraint satisfied by the behavior enums
// (SizeValue, PositionValue, ScaleValue).
type Named interface {
	~uint8
	String() string
}

// BehaviorKind discriminates the variants of a Behavior.
type BehaviorKind uint8

const (
	BehaviorNamed   BehaviorKind = iota // A named rule such as center or fill
	BehaviorLiteral                     // A plain number (pixels or factor)
	BehaviorPercent                     // A percentage of the basis extent
	BehaviorScript                      // A Custom unit
)

var behaviorKindNames = []string{
	BehaviorNamed:   "named",
	BehaviorLiteral: "literal",
	BehaviorPercent: "percent",
	BehaviorScript:  "script",
}

func (k BehaviorKind) String() string { return enumString(behaviorKindNames, k, "behavior-kind") }

// Custom is a user-supplied unit resolved outside the built-in dispatch.
// Implementations must be safe for concurrent use.
type Custom interface {
	ID() string
	Resolve(ctx layout.Context, dim layout.Dimension) (float64, error)
}

// Behavior is what a descriptor's value means. It is a closed union of a
// literal, a percentage, a named rule, or a Custom unit. The zero value is
// the named "basis" rule.
type Behavior[V Named] struct {
	kind   BehaviorKind
	amount float64
	named  V
	custom Custom
}

// Literal returns a behavior that resolves to v plus the descriptor offset.
func Literal[V Named](v float64) Behavior[V] {
	return Behavior[V]{kind: BehaviorLiteral, amount: v}
}

// Percent returns a behavior resolving to p percent of the basis extent.
// p is on a 0-100 scale.
func Percent[V Named](p float64) Behavior[V] {
	return Behavior[V]{kind: BehaviorPercent, amount: p}
}

// Is returns a named behavior.
func Is[V Named](v V) Behavior[V] {
	return Behavior[V]{kind: BehaviorNamed, named: v}
}

// Script returns a behavior delegating to a Custom unit.
func Script[V Named](c Custom) Behavior[V] {
	return Behavior[V]{kind: BehaviorScript, custom: c}
}

// Pixels is a literal size behavior.
func Pixels(v float64) Behavior[SizeValue] { return Literal[SizeValue](v) }

// At is a literal position behavior.
func At(v float64) Behavior[PositionValue] { return Literal[PositionValue](v) }

// Factor is a literal scale behavior.
func Factor(v float64) Behavior[ScaleValue] { return Literal[ScaleValue](v) }

// Kind returns the variant.
func (b Behavior[V]) Kind() BehaviorKind { return b.kind }

// Amount returns the literal or percentage amount. It is zero for the other variants.
func (b Behavior[V]) Amount() float64 { return b.amount }

// Value returns the named rule. It is only meaningful for BehaviorNamed.
func (b Behavior[V]) Value() V { return b.named }

// Custom returns the Custom unit of a BehaviorScript, or nil.
func (b Behavior[V]) Custom() Custom { return b.custom }

// IsLiteral reports whether the behavior is a plain number.
func (b Behavior[V]) IsLiteral() bool { return b.kind == BehaviorLiteral }

// Numeric returns the literal value, if the behavior is a literal.
func (b Behavior[V]) Numeric() (float64, bool) {
	if b.kind == BehaviorLiteral {
		return b.amount, true
	}
	return 0, false
}

func (b Behavior[V]) String() string {
	switch b.kind {
	case BehaviorLiteral:
		return strconv.FormatFloat(b.amount, 'f', -1, 64)
	case BehaviorPercent:
		return strconv.FormatFloat(b.amount, 'f', -1, 64) + "%"
	case BehaviorScript:
		if b.custom == nil {
			return "script(nil)"
		}
		return "script(" + b.custom.ID() + ")"
	default:
		return b.named.String()
	}
}

// ParseBehavior parses "12.5" as a literal, "60%" as a percentage and anything
// else as a named rule via parse.
func ParseBehavior[V Named](s string, parse func(string) (V, error)) (Behavior[V], error) {
	s = strings.TrimSpace(s)
	if pct, ok := strings.CutSuffix(s, "%"); ok {
		p, err := strconv.ParseFloat(strings.TrimSpace(pct), 64)
		if err != nil {
			return Behavior[V]{}, fmt.Errorf("parse percentage %q: %w", s, err)
		}
		return Percent[V](p), nil
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return Literal[V](v), nil
	}
	named, err := parse(s)
	if err != nil {
		return Behavior[V]{}, err
	}
	return Is(named), nil
}
