package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resolved(t *testing.T, out string) map[string]result {
	t.Helper()
	var results []result
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	got := make(map[string]result, len(results))
	for _, r := range results {
		got[r.ID] = r
	}
	return got
}

func TestResolve_JSON(t *testing.T) {
	path := writeSheet(t, sheet)

	type tc struct {
		args     []string
		expected map[string]float64
	}

	tests := map[string]tc{
		"sheet context": {
			args:     []string{"resolve", "-o", "json", path},
			expected: map[string]float64{"panel-width": 1000, "panel-x": 190, "logo": 2, "gutter": 51.2},
		},
		"direct calculators agree": {
			args:     []string{"resolve", "--json", "--direct", path},
			expected: map[string]float64{"panel-width": 1000, "panel-x": 190, "logo": 2, "gutter": 51.2},
		},
		"viewport override": {
			args:     []string{"resolve", "--json", "--viewport", "400x800", path},
			expected: map[string]float64{"panel-width": 1000, "panel-x": 190, "logo": 2, "gutter": 20},
		},
		"parent override": {
			args:     []string{"resolve", "--json", "--parent", "0,0,300x300", "--content", "150x150", path},
			expected: map[string]float64{"panel-width": 1000, "panel-x": 0, "logo": 2, "gutter": 51.2},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			out, err := run(t, tt.args...)
			require.NoError(t, err)

			got := resolved(t, out)
			require.Len(t, got, len(tt.expected))
			for id, want := range tt.expected {
				assert.InDelta(t, want, got[id].Value, 1e-9, id)
			}
		})
	}
}

func TestResolve_Metadata(t *testing.T) {
	out, err := run(t, "resolve", "--json", writeSheet(t, sheet))
	require.NoError(t, err)

	got := resolved(t, out)
	assert.Equal(t, "size", got["panel-width"].Kind)
	assert.Equal(t, "position", got["panel-x"].Kind)
	assert.True(t, got["gutter"].Responsive)
	assert.True(t, got["logo"].Complete)
}

func TestResolve_XYPosition(t *testing.T) {
	path := writeSheet(t, `
context:
  scene: {width: 800, height: 600}
units:
  - kind: position
    id: middle
    baseValue: scene-center
    axis: xy
`)
	out, err := run(t, "resolve", "--json", path)
	require.NoError(t, err)

	got := resolved(t, out)["middle"]
	assert.Equal(t, 400.0, got.Value)
	require.NotNil(t, got.Y)
	assert.Equal(t, 300.0, *got.Y)
}

func TestResolve_Table(t *testing.T) {
	out, err := run(t, "resolve", writeSheet(t, sheet))
	require.NoError(t, err)

	for _, want := range []string{"SHEET", "panel-width", "1000", "51.2", "scale"} {
		assert.Contains(t, out, want)
	}
}

func TestResolve_Errors(t *testing.T) {
	bad := writeSheet(t, `
units:
  - kind: size
    id: ok
    baseValue: 10
  - kind: size
    id: broken
    baseValue: sideways
`)

	out, err := run(t, "resolve", "--json", bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "units[1]")
	assert.Contains(t, resolved(t, out), "ok", "units that built are still reported")

	_, err = run(t, "resolve", "/does/not/exist.yaml")
	assert.Error(t, err)

	_, err = run(t, "resolve", "--scene", "huge", writeSheet(t, sheet))
	assert.ErrorContains(t, err, "--scene")

	_, err = run(t, "resolve")
	assert.Error(t, err)
}
