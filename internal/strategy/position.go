package strategy

import (
	"github.com/grindlemire/go-unitcalc/internal/layout"
	"github.com/grindlemire/go-unitcalc/internal/unit"
)

func positionNamed(match func(unit.PositionValue) bool) func(*unit.Position) bool {
	return func(p *unit.Position) bool {
		b := p.Behavior()
		return b.Kind() == unit.BehaviorNamed && match(b.Value())
	}
}

func positionKind(k unit.BehaviorKind) func(*unit.Position) bool {
	return func(p *unit.Position) bool { return p.Behavior().Kind() == k }
}

// offset adds the descriptor offset to raw, resolved along the descriptor's
// axis for ctx.
func offset(raw func(p *unit.Position, ctx layout.Context, axis layout.Dimension) float64) func(*unit.Position, layout.Context) float64 {
	return func(p *unit.Position, ctx layout.Context) float64 {
		return raw(p, ctx, p.AxisFor(ctx)) + p.Offset()
	}
}

// PositionLiteral resolves pixel literals.
func PositionLiteral() Strategy[*unit.Position] {
	return &Func[*unit.Position]{
		Name:  "position.literal",
		Rank:  10,
		Match: positionKind(unit.BehaviorLiteral),
		Calc: offset(func(p *unit.Position, _ layout.Context, _ layout.Dimension) float64 {
			return p.Behavior().Amount()
		}),
	}
}

// PositionPercent resolves a percentage along the basis box.
func PositionPercent() Strategy[*unit.Position] {
	return &Func[*unit.Position]{
		Name:  "position.percent",
		Rank:  20,
		Match: positionKind(unit.BehaviorPercent),
		Calc: offset(func(p *unit.Position, ctx layout.Context, axis layout.Dimension) float64 {
			return unit.PositionPercent(p.Basis(), p.Behavior().Amount(), ctx, axis)
		}),
	}
}

// PositionEdge resolves center, left, parent-right, content-center and the
// other box edges.
func PositionEdge() Strategy[*unit.Position] {
	return &Func[*unit.Position]{
		Name:  "position.edge",
		Rank:  30,
		Match: positionNamed(unit.PositionValue.IsEdge),
		Calc: offset(func(p *unit.Position, ctx layout.Context, axis layout.Dimension) float64 {
			v, _ := unit.PositionEdge(p.Behavior().Value(), ctx, axis)
			return v
		}),
	}
}

// PositionFlow resolves static, relative, absolute and fixed to the offset.
func PositionFlow() Strategy[*unit.Position] {
	return &Func[*unit.Position]{
		Name:  "position.flow",
		Rank:  30,
		Match: positionNamed(unit.PositionValue.IsFlow),
		Calc: offset(func(*unit.Position, layout.Context, layout.Dimension) float64 {
			return 0
		}),
	}
}

// PositionRandom samples along the stage. The offset is not applied.
func PositionRandom() Strategy[*unit.Position] {
	return &Func[*unit.Position]{
		Name:  "position.random",
		Rank:  40,
		Match: positionNamed(func(v unit.PositionValue) bool { return v == unit.PositionRandom }),
		Calc: func(p *unit.Position, ctx layout.Context) float64 {
			return unit.RandomPosition(ctx, p.AxisFor(ctx), p.Rand())
		},
		Requires: hasStage,
	}
}

// PositionBasis resolves the reference point of the measurement basis.
func PositionBasis() Strategy[*unit.Position] {
	return &Func[*unit.Position]{
		Name:  "position.basis",
		Rank:  50,
		Match: positionNamed(func(v unit.PositionValue) bool { return v == unit.PositionBasis }),
		Calc: offset(func(p *unit.Position, ctx layout.Context, axis layout.Dimension) float64 {
			return unit.PositionReference(p.Basis(), ctx, axis)
		}),
	}
}

// PositionScript resolves script behaviors. A failing script contributes 0.
func PositionScript() Strategy[*unit.Position] {
	return &Func[*unit.Position]{
		Name:  "position.script",
		Rank:  60,
		Match: positionKind(unit.BehaviorScript),
		Calc: offset(func(p *unit.Position, ctx layout.Context, axis layout.Dimension) float64 {
			v, _ := runScript(p.Behavior().Custom(), ctx, axis, p.ID(), p.Logger())
			return v
		}),
	}
}

// PositionStrategies returns the built-in position strategies, including
// the low-priority two-phase strategy.
func PositionStrategies() []Strategy[*unit.Position] {
	return []Strategy[*unit.Position]{
		PositionLiteral(),
		PositionPercent(),
		PositionEdge(),
		PositionFlow(),
		PositionRandom(),
		PositionBasis(),
		PositionScript(),
		TwoPhasePosition(),
	}
}

// NewPositionRegistry returns a registry holding the built-in position
// strategies.
func NewPositionRegistry(opts ...RegistryOption) *Registry[*unit.Position] {
	r := NewRegistry[*unit.Position](opts...)
	r.MustRegister(PositionStrategies()...)
	return r
}
