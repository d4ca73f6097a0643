package strategy

import (
	"fmt"
	"testing"

	"github.com/grindlemire/go-unitcalc/internal/layout"
	"github.com/grindlemire/go-unitcalc/internal/unit"
	"github.com/stretchr/testify/assert"
)

func TestEquivalence_FillScene(t *testing.T) {
	s := mustSize(t, unit.SizeSpec{Dimension: layout.Width, Behavior: unit.Is(unit.SizeFill)})
	ctx := layout.Context{Scene: &layout.Size{Width: 800, Height: 600}, Dimension: layout.Width}

	best, ok := NewSizeRegistry().Best(s)
	if assert.True(t, ok) {
		assert.Equal(t, "size.fill", best.ID())
		assert.Equal(t, 800.0, best.Calculate(s, ctx))
	}
	assert.Equal(t, 800.0, s.Calculate(ctx))
}

func TestEquivalence_Size(t *testing.T) {
	r := NewResolver(NewSizeRegistry(), nil)
	behaviors := []unit.Behavior[unit.SizeValue]{unit.Pixels(42), unit.Percent[unit.SizeValue](25)}
	for _, v := range enumerate(unit.ParseSizeValue) {
		behaviors = append(behaviors, unit.Is(v))
	}

	for _, basis := range enumerate(unit.ParseSizeUnit) {
		for _, dim := range []layout.Dimension{layout.Width, layout.Height, layout.Both} {
			for _, b := range behaviors {
				s := mustSize(t, unit.SizeSpec{Basis: basis, Dimension: dim, Behavior: b}, unit.WithOffset(3))
				_, ok := r.Registry().Best(s)
				assert.True(t, ok, "no strategy for %s", b)
				for name, ctx := range contexts {
					assert.Equal(t, s.Calculate(ctx), r.Resolve(s, ctx),
						fmt.Sprintf("%s/%s/%s/%s", basis, dim, b, name))
				}
			}
		}
	}
}

func TestEquivalence_SizeClamp(t *testing.T) {
	lo, hi := 100.0, 50.0
	s := mustSize(t, unit.SizeSpec{Dimension: layout.Width, Behavior: unit.Is(unit.SizeFill), Min: &lo, Max: &hi})
	ctx := layout.Context{}.WithScene(800, 600)
	assert.Equal(t, 100.0, NewResolver(NewSizeRegistry(), nil).Resolve(s, ctx))
	assert.Equal(t, s.Calculate(ctx), NewResolver(NewSizeRegistry(), nil).Resolve(s, ctx))
}

func TestEquivalence_Position(t *testing.T) {
	r := NewResolver(NewPositionRegistry(), nil)
	behaviors := []unit.Behavior[unit.PositionValue]{unit.At(17), unit.Percent[unit.PositionValue](40)}
	for _, v := range enumerate(unit.ParsePositionValue) {
		behaviors = append(behaviors, unit.Is(v))
	}

	for _, basis := range enumerate(unit.ParsePositionUnit) {
		for _, axis := range []layout.Dimension{layout.X, layout.Y, layout.XY} {
			for _, b := range behaviors {
				p := mustPosition(t, unit.PositionSpec{Basis: basis, Axis: axis, Behavior: b},
					unit.WithOffset(-2), unit.WithRand(fixedRand(0.5)))
				best, ok := r.Registry().Best(p)
				if assert.True(t, ok, "no strategy for %s", b) {
					assert.NotEqual(t, "position.two-phase", best.ID(), b.String())
				}
				for name, ctx := range contexts {
					assert.Equal(t, p.Calculate(ctx), r.Resolve(p, ctx),
						fmt.Sprintf("%s/%s/%s/%s", basis, axis, b, name))
				}
			}
		}
	}
}

func TestEquivalence_PositionUnknownBehavior(t *testing.T) {
	r := NewResolver(NewPositionRegistry(), nil)
	for _, basis := range enumerate(unit.ParsePositionUnit) {
		for _, axis := range []layout.Dimension{layout.X, layout.Y, layout.XY} {
			p := mustPosition(t, unit.PositionSpec{Basis: basis, Axis: axis, Behavior: unit.Is(unit.PositionValue(200))},
				unit.WithOffset(5))
			_, ok := r.Registry().Best(p)
			assert.False(t, ok, "unknown behavior matched a strategy")
			for name, ctx := range contexts {
				assert.Equal(t, 5.0, p.Calculate(ctx), fmt.Sprintf("%s/%s/%s", basis, axis, name))
				assert.Equal(t, p.Calculate(ctx), r.Resolve(p, ctx), fmt.Sprintf("%s/%s/%s", basis, axis, name))
			}
		}
	}
}

func TestEquivalence_Scale(t *testing.T) {
	r := NewResolver(NewScaleRegistry(), nil)
	behaviors := []unit.Behavior[unit.ScaleValue]{unit.Factor(1.25), unit.Percent[unit.ScaleValue](80)}
	for _, v := range enumerate(unit.ParseScaleValue) {
		behaviors = append(behaviors, unit.Is(v))
	}

	for _, basis := range enumerate(unit.ParseScaleUnit) {
		for _, dim := range []layout.Dimension{layout.Width, layout.Height, layout.Both} {
			for _, b := range behaviors {
				s := mustScale(t, unit.ScaleSpec{Basis: basis, Dimension: dim, Behavior: b},
					unit.WithOffset(0.1), unit.WithRand(fixedRand(0.25)))
				_, ok := r.Registry().Best(s)
				assert.True(t, ok, "no strategy for %s", b)
				for name, ctx := range contexts {
					assert.Equal(t, s.Calculate(ctx), r.Resolve(s, ctx),
						fmt.Sprintf("%s/%s/%s/%s", basis, dim, b, name))
				}
			}
		}
	}
}
