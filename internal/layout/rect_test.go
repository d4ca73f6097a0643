package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRect_Edges(t *testing.T) {
	type tc struct {
		rect    Rect
		right   float64
		bottom  float64
		centerX float64
		centerY float64
	}

	tests := map[string]tc{
		"standard rect": {
			rect:    NewRect(100, 50, 200, 100),
			right:   300,
			bottom:  150,
			centerX: 200,
			centerY: 100,
		},
		"origin": {
			rect:    NewRect(0, 0, 10, 10),
			right:   10,
			bottom:  10,
			centerX: 5,
			centerY: 5,
		},
		"negative position": {
			rect:    NewRect(-20, -10, 40, 20),
			right:   20,
			bottom:  10,
			centerX: 0,
			centerY: 0,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.right, tt.rect.Right())
			assert.Equal(t, tt.bottom, tt.rect.Bottom())
			assert.Equal(t, tt.centerX, tt.rect.CenterX())
			assert.Equal(t, tt.centerY, tt.rect.CenterY())
		})
	}
}

func TestRect_AxisAccessors(t *testing.T) {
	r := NewRect(10, 20, 300, 400)

	type tc struct {
		dim    Dimension
		start  float64
		end    float64
		center float64
		extent float64
	}

	tests := map[string]tc{
		"x":      {dim: X, start: 10, end: 310, center: 160, extent: 300},
		"y":      {dim: Y, start: 20, end: 420, center: 220, extent: 400},
		"width":  {dim: Width, start: 10, end: 310, center: 160, extent: 300},
		"height": {dim: Height, start: 20, end: 420, center: 220, extent: 400},
		"both":   {dim: Both, start: 10, end: 310, center: 160, extent: 400},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.start, r.Start(tt.dim), "Start")
			assert.Equal(t, tt.end, r.End(tt.dim), "End")
			assert.Equal(t, tt.center, r.Center(tt.dim), "Center")
			assert.Equal(t, tt.extent, r.Extent(tt.dim), "Extent")
		})
	}
}

func TestRect_IsEmpty(t *testing.T) {
	assert.True(t, Rect{}.IsEmpty())
	assert.True(t, NewRect(0, 0, 10, 0).IsEmpty())
	assert.True(t, NewRect(0, 0, -1, 10).IsEmpty())
	assert.False(t, NewRect(0, 0, 1, 1).IsEmpty())
}

func TestClamp(t *testing.T) {
	type tc struct {
		v, min, max float64
		expected    float64
	}

	tests := map[string]tc{
		"within":        {v: 5, min: 0, max: 10, expected: 5},
		"below":         {v: -1, min: 0, max: 10, expected: 0},
		"above":         {v: 11, min: 0, max: 10, expected: 10},
		"inverted":      {v: 5, min: 20, max: 10, expected: 20},
		"inverted high": {v: 30, min: 20, max: 10, expected: 30},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Clamp(tt.v, tt.min, tt.max))
		})
	}
}

func TestRange_Contains(t *testing.T) {
	r := Range{Min: 0, Max: 100}
	assert.True(t, r.Contains(0))
	assert.True(t, r.Contains(100))
	assert.False(t, r.Contains(-0.1))
	assert.False(t, r.Contains(100.1))
}
