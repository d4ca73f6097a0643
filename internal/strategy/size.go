package strategy

import (
	"github.com/grindlemire/go-unitcalc/internal/layout"
	"github.com/grindlemire/go-unitcalc/internal/unit"
	"go.uber.org/zap"
)

// Size strategies resolve the raw extent; sized adds the offset and the
// min/max clamp so results match (*unit.Size).Calculate.
func sized(raw func(s *unit.Size, ctx layout.Context) float64) func(*unit.Size, layout.Context) float64 {
	return func(s *unit.Size, ctx layout.Context) float64 {
		return s.Bound(raw(s, ctx) + s.Offset())
	}
}

func sizeNamed(match func(unit.SizeValue) bool) func(*unit.Size) bool {
	return func(s *unit.Size) bool {
		b := s.Behavior()
		return b.Kind() == unit.BehaviorNamed && match(b.Value())
	}
}

func sizeKind(k unit.BehaviorKind) func(*unit.Size) bool {
	return func(s *unit.Size) bool { return s.Behavior().Kind() == k }
}

// SizeLiteral resolves pixel literals.
func SizeLiteral() Strategy[*unit.Size] {
	return &Func[*unit.Size]{
		Name:  "size.literal",
		Rank:  10,
		Match: sizeKind(unit.BehaviorLiteral),
		Calc: sized(func(s *unit.Size, _ layout.Context) float64 {
			return s.Behavior().Amount()
		}),
	}
}

// SizePercent resolves percentages of the basis extent.
func SizePercent() Strategy[*unit.Size] {
	return &Func[*unit.Size]{
		Name:  "size.percent",
		Rank:  20,
		Match: sizeKind(unit.BehaviorPercent),
		Calc: sized(func(s *unit.Size, ctx layout.Context) float64 {
			return unit.SizePercent(s.Basis(), s.Behavior().Amount(), ctx, s.Dimension())
		}),
	}
}

// SizeFill resolves the fill behavior.
func SizeFill() Strategy[*unit.Size] {
	return &Func[*unit.Size]{
		Name:  "size.fill",
		Rank:  30,
		Match: sizeNamed(func(v unit.SizeValue) bool { return v == unit.SizeFill }),
		Calc: sized(func(s *unit.Size, ctx layout.Context) float64 {
			return unit.FillSize(ctx, s.Dimension())
		}),
		Requires: hasFill,
	}
}

// SizeAuto resolves the auto behavior from the content bounds.
func SizeAuto() Strategy[*unit.Size] {
	return &Func[*unit.Size]{
		Name:  "size.auto",
		Rank:  30,
		Match: sizeNamed(func(v unit.SizeValue) bool { return v == unit.SizeAuto }),
		Calc: sized(func(s *unit.Size, ctx layout.Context) float64 {
			return unit.AutoSize(ctx, s.Dimension())
		}),
		Requires: hasContent,
	}
}

// SizeExtent resolves parent-width, scene-height and the other box extents.
func SizeExtent() Strategy[*unit.Size] {
	return &Func[*unit.Size]{
		Name:  "size.extent",
		Rank:  40,
		Match: sizeNamed(unit.SizeValue.IsExtent),
		Calc: sized(func(s *unit.Size, ctx layout.Context) float64 {
			v, _ := unit.SizeExtent(s.Behavior().Value(), ctx)
			return v
		}),
	}
}

// SizeBasis resolves the basis behavior from the measurement basis alone.
func SizeBasis() Strategy[*unit.Size] {
	return &Func[*unit.Size]{
		Name:  "size.basis",
		Rank:  50,
		Match: sizeNamed(func(v unit.SizeValue) bool { return v == unit.SizeBasis }),
		Calc: sized(func(s *unit.Size, ctx layout.Context) float64 {
			return unit.SizeBasisExtent(s.Basis(), ctx, s.Dimension())
		}),
	}
}

// SizeScript resolves script behaviors, falling back to the basis extent.
func SizeScript() Strategy[*unit.Size] {
	return &Func[*unit.Size]{
		Name:  "size.script",
		Rank:  60,
		Match: sizeKind(unit.BehaviorScript),
		Calc: sized(func(s *unit.Size, ctx layout.Context) float64 {
			if v, ok := runScript(s.Behavior().Custom(), ctx, s.Dimension(), s.ID(), s.Logger()); ok {
				return v
			}
			return unit.SizeBasisExtent(s.Basis(), ctx, s.Dimension())
		}),
	}
}

// SizeStrategies returns the built-in size strategies.
func SizeStrategies() []Strategy[*unit.Size] {
	return []Strategy[*unit.Size]{
		SizeLiteral(),
		SizePercent(),
		SizeFill(),
		SizeAuto(),
		SizeExtent(),
		SizeBasis(),
		SizeScript(),
	}
}

// NewSizeRegistry returns a registry holding the built-in size strategies.
func NewSizeRegistry(opts ...RegistryOption) *Registry[*unit.Size] {
	r := NewRegistry[*unit.Size](opts...)
	r.MustRegister(SizeStrategies()...)
	return r
}

func runScript(c unit.Custom, ctx layout.Context, dim layout.Dimension, id string, log *zap.Logger) (float64, bool) {
	if c == nil {
		return 0, false
	}
	v, err := c.Resolve(ctx.WithDimension(dim), dim)
	if err != nil {
		log.Warn("script unit failed, using fallback",
			zap.String("id", id), zap.String("script", c.ID()), zap.Error(err))
		return 0, false
	}
	return v, true
}
