package expr

import (
	"sync"
	"testing"
	"time"

	"github.com/grindlemire/go-unitcalc/internal/layout"
	"github.com/grindlemire/go-unitcalc/internal/unit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompile_Invalid(t *testing.T) {
	_, err := Compile("bad", "parent.width *")
	assert.ErrorIs(t, err, ErrCompile)
	assert.Panics(t, func() { MustCompile("bad", ")(") })
}

func TestUnit_Resolve(t *testing.T) {
	full := layout.Context{}.
		WithParent(layout.NewRect(10, 20, 300, 200)).
		WithScene(1000, 500).
		WithContent(40, 30).
		WithBreakpoint(layout.Breakpoint{Name: "md", Width: 768, Height: 1024})

	type tc struct {
		src      string
		ctx      layout.Context
		dim      layout.Dimension
		expected float64
		err      error
	}

	tests := map[string]tc{
		"constant":          {src: "42", expected: 42},
		"parent half":       {src: "parent.width / 2", ctx: full, expected: 150},
		"parent fallback":   {src: "parent ? parent.width : stage.width / 4", ctx: layout.Context{}.WithScene(800, 600), expected: 200},
		"stage defaults":    {src: "stage.height", expected: layout.DefaultSceneHeight},
		"viewport null":     {src: "viewport === null ? 1 : 0", ctx: full, expected: 1},
		"content right":     {src: "content.x + content.width", ctx: full, expected: 40},
		"breakpoint name":   {src: "breakpoint.name === 'md' ? breakpoint.width : 0", ctx: full, expected: 768},
		"dimension aware":   {src: "dimension === 'height' ? scene.height : scene.width", ctx: full, dim: layout.Height, expected: 500},
		"clamp":             {src: "clamp(parent.width, 0, 120)", ctx: full, expected: 120},
		"math":              {src: "Math.max(scene.width, scene.height) * 0.1", ctx: full, expected: 100},
		"string result":     {src: "'wide'", err: ErrNotNumber},
		"undefined result":  {src: "undefined", err: ErrNotNumber},
		"division by zero":  {src: "1 / 0", err: ErrNotNumber},
		"nan":               {src: "Math.sqrt(-1)", err: ErrNotNumber},
		"runtime reference": {src: "parent.width", ctx: layout.Context{}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			u, err := Compile(name, tt.src)
			require.NoError(t, err)
			v, err := u.Resolve(tt.ctx, tt.dim)
			switch {
			case tt.err != nil:
				assert.ErrorIs(t, err, tt.err)
			case name == "runtime reference":
				assert.Error(t, err)
			default:
				require.NoError(t, err)
				assert.InDelta(t, tt.expected, v, 1e-9)
			}
		})
	}
}

func TestUnit_Timeout(t *testing.T) {
	u := MustCompile("spin", "for (;;) {}", WithTimeout(20*time.Millisecond))
	_, err := u.Resolve(layout.Context{}, layout.Width)
	assert.ErrorIs(t, err, ErrTimeout)

	// Other units are unaffected by the interrupt.
	u2 := MustCompile("ok", "1 + 1")
	v, err := u2.Resolve(layout.Context{}, layout.Width)
	require.NoError(t, err)
	assert.Equal(t, 2.0, v)
}

func TestUnit_RepeatedResolveIsStable(t *testing.T) {
	ctx := layout.Context{}.WithParent(layout.NewRect(0, 0, 300, 100))

	type tc struct {
		src      string
		expected float64
	}

	tests := map[string]tc{
		"let":      {src: "let w = parent.width; w / 2", expected: 150},
		"const":    {src: "const h = parent.height; h * 2", expected: 200},
		"function": {src: "function half(v) { return v / 2 }; half(parent.width)", expected: 150},
		"var state": {
			src:      "var n = (typeof n === 'number' ? n : 0) + 1; n",
			expected: 1,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			u := MustCompile(name, tt.src)
			for i := range 3 {
				v, err := u.Resolve(ctx, layout.Width)
				require.NoError(t, err, "call %d", i)
				assert.Equal(t, tt.expected, v, "call %d", i)
			}
		})
	}
}

func TestUnit_XYPositionResolvesBothAxes(t *testing.T) {
	u := MustCompile("mid", "let s = stage; dimension === 'y' ? s.height / 2 : s.width / 2")
	p, err := unit.NewPosition(unit.PositionSpec{Axis: layout.XY, Behavior: unit.Script[unit.PositionValue](u)})
	require.NoError(t, err)

	pt := p.CalculateBoth(layout.Context{}.WithScene(800, 600))
	assert.Equal(t, layout.Point{X: 400, Y: 300}, pt)
}

func TestUnit_AsSizeBehavior(t *testing.T) {
	u := MustCompile("half-parent", "parent.width / 2")
	s, err := unit.NewSize(unit.SizeSpec{
		Basis:     unit.SizeUnitParentWidth,
		Dimension: layout.Width,
		Behavior:  unit.Script[unit.SizeValue](u),
	}, unit.WithOffset(4))
	require.NoError(t, err)

	assert.Equal(t, 104.0, s.Calculate(layout.Context{}.WithParent(layout.NewRect(0, 0, 200, 50))))
	// Without a parent the script throws and the basis extent is used.
	assert.Equal(t, layout.DefaultSceneWidth+4, s.Calculate(layout.Context{}))
}

func TestUnit_Concurrent(t *testing.T) {
	u := MustCompile("scene", "scene.width")
	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			w := float64(100 + i)
			v, err := u.Resolve(layout.Context{}.WithScene(w, 1), layout.Width)
			if assert.NoError(t, err) {
				assert.Equal(t, w, v)
			}
		}()
	}
	wg.Wait()
}
