package unitcalc

import (
	"testing"

	"github.com/grindlemire/go-unitcalc/internal/strategy"
	"github.com/grindlemire/go-unitcalc/internal/unit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculator_Resolve(t *testing.T) {
	ctx := Context{}.
		WithScene(1280, 720).
		WithParent(NewRect(100, 50, 400, 300)).
		WithContent(200, 100)

	width, err := NewSize(SizeSpec{ID: "w", Dimension: Width, Behavior: Percent[SizeValue](50), Basis: unit.SizeUnitParentWidth})
	require.NoError(t, err)
	x, err := NewPosition(PositionSpec{ID: "x", Axis: X, Basis: unit.PositionUnitParentCenterX}, WithOffset(-10))
	require.NoError(t, err)
	s, err := NewScale(ScaleSpec{ID: "s", Dimension: Both, Behavior: Is(unit.ScaleFit)})
	require.NoError(t, err)

	type tc struct {
		d        Descriptor
		expected float64
	}

	tests := map[string]tc{
		"size":     {d: width, expected: 200},
		"position": {d: x, expected: 290},
		"scale":    {d: s, expected: 2},
	}

	calc := NewCalculator()
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.expected, calc.Resolve(tt.d, ctx))
			assert.Equal(t, tt.d.Calculate(ctx), calc.Resolve(tt.d, ctx))
		})
	}
}

func TestCalculator_ResolvePoint(t *testing.T) {
	ctx := Context{}.WithScene(800, 600)
	calc := NewCalculator()

	xy, err := NewPosition(PositionSpec{Axis: XY, Behavior: Is(unit.PositionSceneCenter)})
	require.NoError(t, err)
	assert.Equal(t, Point{X: 400, Y: 300}, calc.ResolvePoint(xy, ctx))

	y, err := NewPosition(PositionSpec{Axis: Y, Behavior: At(12)})
	require.NoError(t, err)
	assert.Equal(t, Point{Y: 12}, calc.ResolvePoint(y, ctx))
}

func TestCalculator_CustomRegistry(t *testing.T) {
	reg := strategy.NewRegistry[*Size]()
	reg.MustRegister(&strategy.Func[*Size]{
		Name:  "size.constant",
		Match: func(*Size) bool { return true },
		Calc:  func(*Size, Context) float64 { return 42 },
	})

	size, err := NewSize(SizeSpec{Dimension: Width, Behavior: Pixels(10)})
	require.NoError(t, err)

	assert.Equal(t, 42.0, NewCalculator(WithSizeRegistry(reg)).Resolve(size, Context{}))
	assert.Equal(t, 10.0, NewCalculator().Resolve(size, Context{}))
}

func TestCompile(t *testing.T) {
	c, err := Compile("half", "parent.width / 2", 0)
	require.NoError(t, err)

	size, err := NewSize(SizeSpec{Dimension: Width, Behavior: Script[SizeValue](c)})
	require.NoError(t, err)
	assert.Equal(t, 150.0, NewCalculator().Resolve(size, Context{}.WithParent(NewRect(0, 0, 300, 10))))

	c, err = Compile("broken", "parent.width +", 0)
	assert.Error(t, err)
	assert.Nil(t, c)
}
