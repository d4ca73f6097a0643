package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/grindlemire/go-unitcalc/internal/factory"
	"github.com/spf13/cobra"
)

// contextFlags override sections of a sheet's layout context.
type contextFlags struct {
	scene      string
	viewport   string
	parent     string
	content    string
	breakpoint string
}

func (f *contextFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&f.scene, "scene", "", "scene size as WxH")
	fs.StringVar(&f.viewport, "viewport", "", "viewport size as WxH")
	fs.StringVar(&f.parent, "parent", "", "parent box as X,Y,WxH")
	fs.StringVar(&f.content, "content", "", "content size as WxH or box as X,Y,WxH")
	fs.StringVar(&f.breakpoint, "breakpoint", "", "breakpoint as NAME=WxH")
}

// apply writes every set flag into ctx.
func (f *contextFlags) apply(ctx *factory.ContextConfig) error {
	if f.scene != "" {
		s, err := parseSize(f.scene)
		if err != nil {
			return fmt.Errorf("--scene: %w", err)
		}
		ctx.Scene = &s
	}
	if f.viewport != "" {
		s, err := parseSize(f.viewport)
		if err != nil {
			return fmt.Errorf("--viewport: %w", err)
		}
		ctx.Viewport = &s
		// a new viewport invalidates the sheet's breakpoint
		ctx.Breakpoint = nil
	}
	if f.parent != "" {
		r, err := parseRect(f.parent)
		if err != nil {
			return fmt.Errorf("--parent: %w", err)
		}
		ctx.Parent = &r
	}
	if f.content != "" {
		r, err := parseBox(f.content)
		if err != nil {
			return fmt.Errorf("--content: %w", err)
		}
		ctx.Content = &r
	}
	if f.breakpoint != "" {
		bp, err := parseBreakpoint(f.breakpoint)
		if err != nil {
			return fmt.Errorf("--breakpoint: %w", err)
		}
		ctx.Breakpoint = &bp
	}
	return nil
}

// parseSize parses "WxH".
func parseSize(s string) (factory.SizeConfig, error) {
	w, h, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	if !ok {
		return factory.SizeConfig{}, fmt.Errorf("invalid size %q: want WxH", s)
	}
	width, err := parseFloat(w)
	if err != nil {
		return factory.SizeConfig{}, fmt.Errorf("invalid size %q: %w", s, err)
	}
	height, err := parseFloat(h)
	if err != nil {
		return factory.SizeConfig{}, fmt.Errorf("invalid size %q: %w", s, err)
	}
	return factory.SizeConfig{Width: width, Height: height}, nil
}

// parseRect parses "X,Y,WxH".
func parseRect(s string) (factory.RectConfig, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return factory.RectConfig{}, fmt.Errorf("invalid box %q: want X,Y,WxH", s)
	}
	x, err := parseFloat(parts[0])
	if err != nil {
		return factory.RectConfig{}, fmt.Errorf("invalid box %q: %w", s, err)
	}
	y, err := parseFloat(parts[1])
	if err != nil {
		return factory.RectConfig{}, fmt.Errorf("invalid box %q: %w", s, err)
	}
	size, err := parseSize(parts[2])
	if err != nil {
		return factory.RectConfig{}, err
	}
	return factory.RectConfig{X: x, Y: y, Width: size.Width, Height: size.Height}, nil
}

// parseBox accepts either "WxH", placed at the origin, or "X,Y,WxH".
func parseBox(s string) (factory.RectConfig, error) {
	if !strings.Contains(s, ",") {
		size, err := parseSize(s)
		if err != nil {
			return factory.RectConfig{}, err
		}
		return factory.RectConfig{Width: size.Width, Height: size.Height}, nil
	}
	return parseRect(s)
}

// parseBreakpoint parses "NAME=WxH".
func parseBreakpoint(s string) (factory.BreakpointConfig, error) {
	name, dims, ok := strings.Cut(s, "=")
	if !ok || strings.TrimSpace(name) == "" {
		return factory.BreakpointConfig{}, fmt.Errorf("invalid breakpoint %q: want NAME=WxH", s)
	}
	size, err := parseSize(dims)
	if err != nil {
		return factory.BreakpointConfig{}, err
	}
	return factory.BreakpointConfig{Name: strings.TrimSpace(name), Width: size.Width, Height: size.Height}, nil
}

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}
