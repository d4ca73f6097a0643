package unit

import (
	"testing"

	"github.com/grindlemire/go-unitcalc/internal/layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustScale(t *testing.T, spec ScaleSpec, opts ...Option) *Scale {
	t.Helper()
	s, err := NewScale(spec, opts...)
	require.NoError(t, err)
	return s
}

func TestScale_FactorIgnoresContext(t *testing.T) {
	s := mustScale(t, ScaleSpec{Basis: ScaleUnitFactor, Dimension: layout.Both, Behavior: Factor(1.5)})

	assert.Equal(t, 1.5, s.Calculate(layout.Context{}))
	assert.Equal(t, 1.5, s.Calculate(layout.Context{}.WithScene(10, 10).WithContent(1, 1)))
	assert.False(t, s.IsResponsive())
}

func TestScale_Behaviors(t *testing.T) {
	full := layout.Context{}.
		WithScene(1000, 500).
		WithViewport(800, 600).
		WithContent(100, 50).
		WithParent(layout.NewRect(0, 0, 200, 200)).
		WithBreakpoint(layout.Breakpoint{Name: "md", Width: 400, Height: 300})

	type tc struct {
		spec     ScaleSpec
		ctx      layout.Context
		expected float64
	}

	tests := map[string]tc{
		"percent": {
			spec:     ScaleSpec{Dimension: layout.Both, Behavior: Percent[ScaleValue](250)},
			expected: 2.5,
		},
		"fit both against parent": {
			spec:     ScaleSpec{Dimension: layout.Both, Behavior: Is(ScaleFit)},
			ctx:      full,
			expected: 2,
		},
		"fill both against parent": {
			spec:     ScaleSpec{Dimension: layout.Both, Behavior: Is(ScaleFill)},
			ctx:      full,
			expected: 4,
		},
		"stretch both is horizontal": {
			spec:     ScaleSpec{Dimension: layout.Both, Behavior: Is(ScaleStretch)},
			ctx:      full,
			expected: 2,
		},
		"stretch height": {
			spec:     ScaleSpec{Dimension: layout.Height, Behavior: Is(ScaleStretch)},
			ctx:      full,
			expected: 4,
		},
		"fit against scene basis": {
			spec:     ScaleSpec{Basis: ScaleUnitScene, Dimension: layout.Both, Behavior: Is(ScaleFit)},
			ctx:      full,
			expected: 10,
		},
		"fit without content": {
			spec:     ScaleSpec{Dimension: layout.Both, Behavior: Is(ScaleFit)},
			ctx:      layout.Context{}.WithScene(1000, 500),
			expected: DefaultContentScale,
		},
		"parent scale": {
			spec:     ScaleSpec{Dimension: layout.Width, Behavior: Is(ScaleParent)},
			ctx:      full,
			expected: 2,
		},
		"parent scale without parent": {
			spec:     ScaleSpec{Dimension: layout.Width, Behavior: Is(ScaleParent)},
			ctx:      layout.Context{}.WithContent(10, 10),
			expected: DefaultParentScale,
		},
		"scene scale height": {
			spec:     ScaleSpec{Dimension: layout.Height, Behavior: Is(ScaleScene)},
			ctx:      full,
			expected: 10,
		},
		"scene scale without scene": {
			spec:     ScaleSpec{Dimension: layout.Height, Behavior: Is(ScaleScene)},
			ctx:      layout.Context{}.WithContent(10, 10),
			expected: DefaultSceneScale,
		},
		"viewport scale both": {
			spec:     ScaleSpec{Dimension: layout.Both, Behavior: Is(ScaleViewport)},
			ctx:      full,
			expected: 8,
		},
		"content scale": {
			spec:     ScaleSpec{Dimension: layout.Width, Behavior: Is(ScaleContent)},
			ctx:      layout.Context{}.WithContent(640, 360),
			expected: 0.5,
		},
		"breakpoint scale": {
			spec:     ScaleSpec{Dimension: layout.Both, Behavior: Is(ScaleBreakpoint)},
			ctx:      full,
			expected: 2,
		},
		"breakpoint scale missing": {
			spec:     ScaleSpec{Dimension: layout.Both, Behavior: Is(ScaleBreakpoint)},
			ctx:      layout.Context{}.WithViewport(800, 600),
			expected: DefaultBreakpointScale,
		},
		"device scale": {
			spec:     ScaleSpec{Dimension: layout.Width, Behavior: Is(ScaleDevice)},
			ctx:      layout.Context{}.WithBreakpoint(layout.Breakpoint{Width: 640, Height: 360}),
			expected: 0.5,
		},
		"basis factor": {
			spec:     ScaleSpec{Basis: ScaleUnitFactor, Dimension: layout.Both},
			ctx:      full,
			expected: 1,
		},
		"basis viewport": {
			spec:     ScaleSpec{Basis: ScaleUnitViewport, Dimension: layout.Width},
			ctx:      full,
			expected: 8,
		},
		"unknown": {
			spec:     ScaleSpec{Dimension: layout.Width, Behavior: Is(ScaleValue(77))},
			ctx:      full,
			expected: 1,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s := mustScale(t, tt.spec)
			assert.InDelta(t, tt.expected, s.Calculate(tt.ctx), 1e-9)
		})
	}
}

func TestScale_Random(t *testing.T) {
	s := mustScale(t, ScaleSpec{Dimension: layout.Both, Behavior: Is(ScaleRandom)}, WithRand(fixedRand(0.5)))
	assert.Equal(t, 1.0, s.Calculate(layout.Context{}))

	s = mustScale(t, ScaleSpec{Dimension: layout.Both, Behavior: Is(ScaleRandom)})
	for range 50 {
		v := s.Calculate(layout.Context{})
		assert.GreaterOrEqual(t, v, RandomScaleMin)
		assert.Less(t, v, RandomScaleMax)
	}
}

func TestScale_Offset(t *testing.T) {
	s := mustScale(t, ScaleSpec{Dimension: layout.Both, Behavior: Factor(2)}, WithOffset(0.25))
	assert.Equal(t, 2.25, s.Calculate(layout.Context{}))
	s.SetOffset(0)
	assert.Equal(t, 2.0, s.Calculate(layout.Context{}))
}

func TestScale_Validate(t *testing.T) {
	type tc struct {
		spec    ScaleSpec
		ctx     layout.Context
		isValid bool
	}

	tests := map[string]tc{
		"factor":                {spec: ScaleSpec{Dimension: layout.Both, Behavior: Factor(2)}, isValid: true},
		"fit without content":   {spec: ScaleSpec{Dimension: layout.Both, Behavior: Is(ScaleFit)}, ctx: layout.Context{}.WithParent(layout.Rect{}), isValid: false},
		"fit complete":          {spec: ScaleSpec{Dimension: layout.Both, Behavior: Is(ScaleFit)}, ctx: layout.Context{}.WithParent(layout.Rect{}).WithContent(1, 1), isValid: true},
		"scene scale":           {spec: ScaleSpec{Dimension: layout.Both, Behavior: Is(ScaleScene)}, ctx: layout.Context{}.WithContent(1, 1), isValid: false},
		"device needs bp":       {spec: ScaleSpec{Dimension: layout.Both, Behavior: Is(ScaleDevice)}, isValid: false},
		"basis parent":          {spec: ScaleSpec{Basis: ScaleUnitParent, Dimension: layout.Both}, ctx: layout.Context{}.WithContent(1, 1), isValid: false},
		"basis factor":          {spec: ScaleSpec{Basis: ScaleUnitFactor, Dimension: layout.Both}, isValid: true},
		"random needs nothing":  {spec: ScaleSpec{Dimension: layout.Both, Behavior: Is(ScaleRandom)}, isValid: true},
		"breakpoint with stage": {spec: ScaleSpec{Dimension: layout.Both, Behavior: Is(ScaleBreakpoint)}, ctx: layout.Context{}.WithViewport(1, 1).WithBreakpoint(layout.Breakpoint{Width: 1}), isValid: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s := mustScale(t, tt.spec)
			assert.Equal(t, tt.isValid, s.Validate(tt.ctx))
		})
	}
}

func TestScale_Clone(t *testing.T) {
	orig := mustScale(t, ScaleSpec{ID: "s", Dimension: layout.Both, Behavior: Is(ScaleFit)}, WithOffset(0.5))
	clone := orig.Clone()
	ctx := layout.Context{}.WithParent(layout.NewRect(0, 0, 200, 100)).WithContent(100, 100)
	assert.Equal(t, orig.Calculate(ctx), clone.Calculate(ctx))

	clone.SetOffset(0)
	assert.Equal(t, 0.5, orig.Offset())

	w, err := orig.CloneWith(func(s *ScaleSpec) { s.Dimension = layout.Width })
	require.NoError(t, err)
	assert.Equal(t, 2.5, w.Calculate(ctx))

	_, err = orig.CloneWith(func(s *ScaleSpec) { s.Dimension = layout.Y })
	assert.ErrorIs(t, err, ErrInvalidDimension)
}
