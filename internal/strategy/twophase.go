package strategy

import (
	"github.com/grindlemire/go-unitcalc/internal/layout"
	"github.com/grindlemire/go-unitcalc/internal/unit"
)

// TwoPhasePriority ranks the two-phase strategy behind every built-in, so
// it is only selected once the others are unregistered.
const TwoPhasePriority = 1000

// TwoPhasePosition resolves any position with a known behavior by first
// taking the reference point of the measurement basis and then applying the
// behavior to it.
//
// It differs from the calculator in two places. The plain center, left,
// right, top and bottom behaviors add the offset to the basis reference
// rather than to the stage edge. A parent-relative basis with no parent in
// the context references 0 instead of falling back to the scene.
func TwoPhasePosition() Strategy[*unit.Position] {
	return &Func[*unit.Position]{
		Name:  "position.two-phase",
		Rank:  TwoPhasePriority,
		Match: knownPosition,
		Calc:  twoPhase,
	}
}

// Reference returns the reference point of basis u along axis. Parent-relative
// bases reference 0 when the context has no parent.
func Reference(u unit.PositionUnit, ctx layout.Context, axis layout.Dimension) float64 {
	if u.IsParentRelative() && ctx.Parent == nil {
		return 0
	}
	return unit.PositionReference(u, ctx, axis)
}

// knownPosition rejects named behaviors outside the known set; the resolver
// then falls back to the calculator, which resolves them to the offset.
func knownPosition(p *unit.Position) bool {
	b := p.Behavior()
	return b.Kind() != unit.BehaviorNamed || b.Value().IsKnown()
}

func twoPhase(p *unit.Position, ctx layout.Context) float64 {
	axis := p.AxisFor(ctx)
	b := p.Behavior()

	switch b.Kind() {
	case unit.BehaviorLiteral:
		return b.Amount() + p.Offset()
	case unit.BehaviorPercent:
		return unit.PositionPercent(p.Basis(), b.Amount(), ctx, axis) + p.Offset()
	case unit.BehaviorScript:
		v, _ := runScript(b.Custom(), ctx, axis, p.ID(), p.Logger())
		return v + p.Offset()
	}

	ref := Reference(p.Basis(), ctx, axis)
	switch v := b.Value(); v {
	case unit.PositionCenter, unit.PositionLeft, unit.PositionRight,
		unit.PositionTop, unit.PositionBottom, unit.PositionBasis:
		return ref + p.Offset()
	case unit.PositionStatic, unit.PositionRelative, unit.PositionAbsolute, unit.PositionFixed:
		return p.Offset()
	case unit.PositionRandom:
		return unit.RandomPosition(ctx, axis, p.Rand())
	default:
		if e, ok := unit.PositionEdge(v, ctx, axis); ok {
			return e + p.Offset()
		}
		return p.Offset()
	}
}
