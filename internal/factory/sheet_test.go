package factory

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/grindlemire/go-unitcalc/internal/layout"
	"github.com/grindlemire/go-unitcalc/internal/unit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSheet(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

const yamlSheet = `
context:
  scene: {width: 1280, height: 720}
  viewport: {width: 1024, height: 768}
  parent: {x: 40, y: 20, width: 600, height: 400}
  content: {width: 300, height: 150}
breakpoints:
  - {name: sm, width: 640, height: 480}
  - {name: md, width: 1024, height: 768}
  - {name: lg, width: 1440, height: 900}
units:
  - kind: size
    id: panel-width
    dimension: width
    baseValue: fill
    maxSize: 1000
  - kind: position
    id: panel-x
    positionUnit: parent-center-x
    axis: x
    offset: -150
  - kind: scale
    id: logo
    baseValue: fit
  - kind: size
    id: gutter
    sizeUnit: viewport-width
    dimension: width
    baseValue: 5%
`

func TestLoadSheet_YAML(t *testing.T) {
	s, err := LoadSheet(writeSheet(t, "sheet.yaml", yamlSheet))
	require.NoError(t, err)
	require.Len(t, s.Units, 4)

	ctx := s.Layout()
	require.NotNil(t, ctx.Breakpoint)
	assert.Equal(t, "md", ctx.Breakpoint.Name)
	assert.Equal(t, layout.NewRect(40, 20, 600, 400), *ctx.Parent)

	units, err := New().BuildSheet(s)
	require.NoError(t, err)

	got := map[string]float64{}
	for _, u := range units {
		got[u.ID()] = u.Calculate(ctx)
	}
	assert.Equal(t, map[string]float64{
		"panel-width": 1000,
		"panel-x":     190,
		"logo":        2,
		"gutter":      51.2,
	}, got)
}

func TestLoadSheet_JSON(t *testing.T) {
	path := writeSheet(t, "sheet.json", `{
		"context": {"scene": {"width": 800, "height": 600}, "breakpoint": {"name": "xs", "width": 400, "height": 300}},
		"units": [{"kind": "scale", "id": "bp", "baseValue": "breakpoint-scale", "dimension": "width"}]
	}`)
	s, err := LoadSheet(path)
	require.NoError(t, err)

	units, err := New().BuildSheet(s)
	require.NoError(t, err)
	require.Len(t, units, 1)
	assert.Equal(t, 2.0, units[0].Calculate(s.Layout()))
}

func TestLoadSheet_Missing(t *testing.T) {
	_, err := LoadSheet(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestBuildSheet_CollectsErrors(t *testing.T) {
	s := &Sheet{Units: []Config{
		{Kind: "size", ID: "ok", BaseValue: 1},
		{Kind: "size", ID: "bad", BaseValue: "enormous"},
		{Kind: "widget", ID: "worse"},
	}}
	units, err := New().BuildSheet(s)
	require.Error(t, err)
	assert.Len(t, units, 1)
	assert.ErrorIs(t, err, unit.ErrUnknownBehavior)
	assert.ErrorIs(t, err, unit.ErrUnknownKind)
	assert.Contains(t, err.Error(), "units[1]")
}
