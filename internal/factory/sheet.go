package factory

import (
	"errors"
	"fmt"

	"github.com/grindlemire/go-unitcalc/internal/layout"
	"github.com/grindlemire/go-unitcalc/internal/unit"
	"github.com/spf13/viper"
)

// Sheet is a file bundling a layout context with the units to resolve in it.
type Sheet struct {
	Context     ContextConfig      `mapstructure:"context" json:"context"`
	Breakpoints []BreakpointConfig `mapstructure:"breakpoints" json:"breakpoints,omitempty"`
	Units       []Config           `mapstructure:"units" json:"units"`
}

// SizeConfig is a width and height.
type SizeConfig struct {
	Width  float64 `mapstructure:"width" json:"width"`
	Height float64 `mapstructure:"height" json:"height"`
}

// RectConfig is a positioned box.
type RectConfig struct {
	X      float64 `mapstructure:"x" json:"x"`
	Y      float64 `mapstructure:"y" json:"y"`
	Width  float64 `mapstructure:"width" json:"width"`
	Height float64 `mapstructure:"height" json:"height"`
}

// BreakpointConfig is a named responsive threshold.
type BreakpointConfig struct {
	Name   string  `mapstructure:"name" json:"name"`
	Width  float64 `mapstructure:"width" json:"width"`
	Height float64 `mapstructure:"height" json:"height"`
}

// ContextConfig describes a layout context. Absent sections stay nil.
type ContextConfig struct {
	Parent     *RectConfig       `mapstructure:"parent" json:"parent,omitempty"`
	Scene      *SizeConfig       `mapstructure:"scene" json:"scene,omitempty"`
	Viewport   *SizeConfig       `mapstructure:"viewport" json:"viewport,omitempty"`
	Content    *RectConfig       `mapstructure:"content" json:"content,omitempty"`
	Breakpoint *BreakpointConfig `mapstructure:"breakpoint" json:"breakpoint,omitempty"`
}

// Layout converts c to a layout context.
func (c ContextConfig) Layout() layout.Context {
	var ctx layout.Context
	if c.Parent != nil {
		ctx = ctx.WithParent(c.Parent.rect())
	}
	if c.Scene != nil {
		ctx = ctx.WithScene(c.Scene.Width, c.Scene.Height)
	}
	if c.Viewport != nil {
		ctx = ctx.WithViewport(c.Viewport.Width, c.Viewport.Height)
	}
	if c.Content != nil {
		r := c.Content.rect()
		ctx.Content = &r
	}
	if c.Breakpoint != nil {
		ctx = ctx.WithBreakpoint(c.Breakpoint.breakpoint())
	}
	return ctx
}

func (r RectConfig) rect() layout.Rect {
	return layout.NewRect(r.X, r.Y, r.Width, r.Height)
}

func (b BreakpointConfig) breakpoint() layout.Breakpoint {
	return layout.Breakpoint{Name: b.Name, Width: b.Width, Height: b.Height}
}

// Layout returns the sheet's context. When the sheet lists breakpoints and
// the context names none, the breakpoint is matched against the viewport.
func (s *Sheet) Layout() layout.Context {
	ctx := s.Context.Layout()
	if ctx.Breakpoint == nil && len(s.Breakpoints) > 0 {
		bps := make([]layout.Breakpoint, len(s.Breakpoints))
		for i, b := range s.Breakpoints {
			bps[i] = b.breakpoint()
		}
		ctx = layout.NewBreakpoints(bps...).Apply(ctx)
	}
	return ctx
}

// LoadSheet reads a YAML, JSON or TOML sheet. The format follows the file
// extension.
func LoadSheet(path string) (*Sheet, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", path, err)
	}
	var s Sheet
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("decode sheet %s: %w", path, err)
	}
	return &s, nil
}

// BuildSheet creates every unit in s. All units are attempted; the errors of
// those that fail are joined.
func (f *Factory) BuildSheet(s *Sheet) ([]unit.Descriptor, error) {
	out := make([]unit.Descriptor, 0, len(s.Units))
	var errs []error
	for i, cfg := range s.Units {
		d, err := f.Build(cfg)
		if err != nil {
			errs = append(errs, fmt.Errorf("units[%d]: %w", i, err))
			continue
		}
		out = append(out, d)
	}
	return out, errors.Join(errs...)
}
