package strategy

import (
	"github.com/grindlemire/go-unitcalc/internal/layout"
	"github.com/grindlemire/go-unitcalc/internal/unit"
)

func scaleNamed(match func(unit.ScaleValue) bool) func(*unit.Scale) bool {
	return func(s *unit.Scale) bool {
		b := s.Behavior()
		return b.Kind() == unit.BehaviorNamed && match(b.Value())
	}
}

func scaleKind(k unit.BehaviorKind) func(*unit.Scale) bool {
	return func(s *unit.Scale) bool { return s.Behavior().Kind() == k }
}

func scaled(raw func(s *unit.Scale, ctx layout.Context) float64) func(*unit.Scale, layout.Context) float64 {
	return func(s *unit.Scale, ctx layout.Context) float64 {
		return raw(s, ctx) + s.Offset()
	}
}

func measured(v unit.ScaleValue) bool {
	_, ok := unit.ScaleFactor(v, unit.ScaleUnitFactor, layout.Context{}, layout.Both)
	return ok && !breakpointScale(v)
}

func breakpointScale(v unit.ScaleValue) bool {
	return v == unit.ScaleBreakpoint || v == unit.ScaleDevice
}

func measuredFactor(s *unit.Scale, ctx layout.Context) float64 {
	v, _ := unit.ScaleFactor(s.Behavior().Value(), s.Basis(), ctx, s.Dimension())
	return v
}

func scaleValidate(s *unit.Scale, ctx layout.Context) bool { return s.Validate(ctx) }

// ScaleLiteral resolves literal factors.
func ScaleLiteral() Strategy[*unit.Scale] {
	return &Func[*unit.Scale]{
		Name:  "scale.literal",
		Rank:  10,
		Match: scaleKind(unit.BehaviorLiteral),
		Calc: scaled(func(s *unit.Scale, _ layout.Context) float64 {
			return s.Behavior().Amount()
		}),
	}
}

// ScalePercent resolves percentages as p/100.
func ScalePercent() Strategy[*unit.Scale] {
	return &Func[*unit.Scale]{
		Name:  "scale.percent",
		Rank:  20,
		Match: scaleKind(unit.BehaviorPercent),
		Calc: scaled(func(s *unit.Scale, _ layout.Context) float64 {
			return s.Behavior().Amount() / 100
		}),
	}
}

// ScaleMeasured resolves fit, fill, stretch and the container and content
// ratios. All of them measure the content.
func ScaleMeasured() Strategy[*unit.Scale] {
	return &Func[*unit.Scale]{
		Name:        "scale.measured",
		Rank:        30,
		Match:       scaleNamed(measured),
		Calc:        scaled(measuredFactor),
		Requires:    hasContent,
		RequiresFor: scaleValidate,
	}
}

// ScaleBreakpoint resolves the breakpoint and device ratios, which read the
// breakpoint rather than the content.
func ScaleBreakpoint() Strategy[*unit.Scale] {
	return &Func[*unit.Scale]{
		Name:        "scale.breakpoint",
		Rank:        30,
		Match:       scaleNamed(breakpointScale),
		Calc:        scaled(measuredFactor),
		Requires:    hasBreakpoint,
		RequiresFor: scaleValidate,
	}
}

// ScaleRandom samples a factor in [unit.RandomScaleMin, unit.RandomScaleMax).
func ScaleRandom() Strategy[*unit.Scale] {
	return &Func[*unit.Scale]{
		Name:  "scale.random",
		Rank:  40,
		Match: scaleNamed(func(v unit.ScaleValue) bool { return v == unit.ScaleRandom }),
		Calc: scaled(func(s *unit.Scale, _ layout.Context) float64 {
			return unit.RandomScale(s.Rand())
		}),
	}
}

// ScaleBasis resolves the factor implied by the scale unit.
func ScaleBasis() Strategy[*unit.Scale] {
	return &Func[*unit.Scale]{
		Name:  "scale.basis",
		Rank:  50,
		Match: scaleNamed(func(v unit.ScaleValue) bool { return v == unit.ScaleBasis }),
		Calc: scaled(func(s *unit.Scale, ctx layout.Context) float64 {
			return unit.ScaleBasisFactor(s.Basis(), ctx, s.Dimension())
		}),
	}
}

// ScaleScript resolves script behaviors, falling back to the identity.
func ScaleScript() Strategy[*unit.Scale] {
	return &Func[*unit.Scale]{
		Name:  "scale.script",
		Rank:  60,
		Match: scaleKind(unit.BehaviorScript),
		Calc: scaled(func(s *unit.Scale, ctx layout.Context) float64 {
			if v, ok := runScript(s.Behavior().Custom(), ctx, s.Dimension(), s.ID(), s.Logger()); ok {
				return v
			}
			return unit.DefaultContentScale
		}),
	}
}

// ScaleStrategies returns the built-in scale strategies.
func ScaleStrategies() []Strategy[*unit.Scale] {
	return []Strategy[*unit.Scale]{
		ScaleLiteral(),
		ScalePercent(),
		ScaleMeasured(),
		ScaleBreakpoint(),
		ScaleRandom(),
		ScaleBasis(),
		ScaleScript(),
	}
}

// NewScaleRegistry returns a registry holding the built-in scale strategies.
func NewScaleRegistry(opts ...RegistryOption) *Registry[*unit.Scale] {
	r := NewRegistry[*unit.Scale](opts...)
	r.MustRegister(ScaleStrategies()...)
	return r
}
