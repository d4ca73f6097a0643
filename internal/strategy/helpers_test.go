package strategy

import (
	"testing"

	"github.com/grindlemire/go-unitcalc/internal/layout"
	"github.com/grindlemire/go-unitcalc/internal/unit"
	"github.com/stretchr/testify/require"
)

type fixedRand float64

func (f fixedRand) Float64() float64 { return float64(f) }

// enumerate lists every named value parse accepts, in declaration order.
func enumerate[T interface {
	~uint8
	String() string
}](parse func(string) (T, error)) []T {
	var out []T
	for v := T(0); ; v++ {
		if _, err := parse(v.String()); err != nil {
			return out
		}
		out = append(out, v)
	}
}

var contexts = map[string]layout.Context{
	"empty":      {},
	"scene only": layout.Context{}.WithScene(800, 600),
	"full": layout.Context{}.
		WithParent(layout.NewRect(20, 40, 300, 200)).
		WithScene(1000, 500).
		WithViewport(640, 480).
		WithContent(50, 80).
		WithBreakpoint(layout.Breakpoint{Name: "md", Width: 320, Height: 240}),
	"parent and content": layout.Context{}.
		WithParent(layout.NewRect(5, 5, 90, 60)).
		WithContent(30, 20),
}

func mustSize(t *testing.T, spec unit.SizeSpec, opts ...unit.Option) *unit.Size {
	t.Helper()
	s, err := unit.NewSize(spec, opts...)
	require.NoError(t, err)
	return s
}

func mustPosition(t *testing.T, spec unit.PositionSpec, opts ...unit.Option) *unit.Position {
	t.Helper()
	p, err := unit.NewPosition(spec, opts...)
	require.NoError(t, err)
	return p
}

func mustScale(t *testing.T, spec unit.ScaleSpec, opts ...unit.Option) *unit.Scale {
	t.Helper()
	s, err := unit.NewScale(spec, opts...)
	require.NoError(t, err)
	return s
}
