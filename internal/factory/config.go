package factory

import (
	"fmt"

	"github.com/grindlemire/go-unitcalc/internal/expr"
	"github.com/grindlemire/go-unitcalc/internal/layout"
	"github.com/grindlemire/go-unitcalc/internal/unit"
)

// Config is the flat, file-friendly description of one unit.
type Config struct {
	Kind                string   `mapstructure:"kind" json:"kind"`
	ID                  string   `mapstructure:"id" json:"id,omitempty"`
	Name                string   `mapstructure:"name" json:"name,omitempty"`
	SizeUnit            string   `mapstructure:"sizeUnit" json:"sizeUnit,omitempty"`
	PositionUnit        string   `mapstructure:"positionUnit" json:"positionUnit,omitempty"`
	ScaleUnit           string   `mapstructure:"scaleUnit" json:"scaleUnit,omitempty"`
	Dimension           string   `mapstructure:"dimension" json:"dimension,omitempty"`
	Axis                string   `mapstructure:"axis" json:"axis,omitempty"`
	BaseValue           any      `mapstructure:"baseValue" json:"baseValue,omitempty"`
	Expression          string   `mapstructure:"expression" json:"expression,omitempty"`
	Offset              float64  `mapstructure:"offset" json:"offset,omitempty"`
	Alignment           string   `mapstructure:"alignment" json:"alignment,omitempty"`
	MaintainAspectRatio bool     `mapstructure:"maintainAspectRatio" json:"maintainAspectRatio,omitempty"`
	MinSize             *float64 `mapstructure:"minSize" json:"minSize,omitempty"`
	MaxSize             *float64 `mapstructure:"maxSize" json:"maxSize,omitempty"`
}

// Defaults applied to empty Config fields.
const (
	DefaultSizeDimension  = "both"
	DefaultPositionAxis   = "xy"
	DefaultScaleDimension = "both"
)

// Build creates the descriptor cfg describes, dispatching on cfg.Kind.
func (f *Factory) Build(cfg Config) (unit.Descriptor, error) {
	kind, err := unit.ParseKind(cfg.Kind)
	if err != nil {
		return nil, fmt.Errorf("unit %q: %w", cfg.ID, err)
	}
	switch kind {
	case unit.KindPosition:
		return f.CreatePositionFromConfig(cfg)
	case unit.KindScale:
		return f.CreateScaleFromConfig(cfg)
	default:
		return f.CreateSizeFromConfig(cfg)
	}
}

// CreateSizeFromConfig creates a size descriptor from cfg.
func (f *Factory) CreateSizeFromConfig(cfg Config) (*unit.Size, error) {
	id := f.id(cfg.ID)
	basis, err := orDefault(cfg.SizeUnit, unit.ParseSizeUnit)
	if err != nil {
		return nil, fmt.Errorf("size %q: %w", id, err)
	}
	dim, err := parseDimension(or(cfg.Dimension, DefaultSizeDimension))
	if err != nil {
		return nil, fmt.Errorf("size %q: %w", id, err)
	}
	b, err := behavior(f, id, cfg, unit.ParseSizeValue)
	if err != nil {
		return nil, fmt.Errorf("size %q: %w", id, err)
	}
	return unit.NewSize(unit.SizeSpec{
		ID:                  id,
		Name:                cfg.Name,
		Basis:               basis,
		Dimension:           dim,
		Behavior:            b,
		MaintainAspectRatio: cfg.MaintainAspectRatio,
		Min:                 cfg.MinSize,
		Max:                 cfg.MaxSize,
	}, f.options(id, cfgOptions(cfg))...)
}

// CreatePositionFromConfig creates a position descriptor from cfg.
func (f *Factory) CreatePositionFromConfig(cfg Config) (*unit.Position, error) {
	id := f.id(cfg.ID)
	basis, err := orDefault(cfg.PositionUnit, unit.ParsePositionUnit)
	if err != nil {
		return nil, fmt.Errorf("position %q: %w", id, err)
	}
	axis, err := parseDimension(or(cfg.Axis, or(cfg.Dimension, DefaultPositionAxis)))
	if err != nil {
		return nil, fmt.Errorf("position %q: %w", id, err)
	}
	b, err := behavior(f, id, cfg, unit.ParsePositionValue)
	if err != nil {
		return nil, fmt.Errorf("position %q: %w", id, err)
	}
	return unit.NewPosition(unit.PositionSpec{
		ID:       id,
		Name:     cfg.Name,
		Basis:    basis,
		Axis:     axis,
		Behavior: b,
	}, f.options(id, cfgOptions(cfg))...)
}

// CreateScaleFromConfig creates a scale descriptor from cfg.
func (f *Factory) CreateScaleFromConfig(cfg Config) (*unit.Scale, error) {
	id := f.id(cfg.ID)
	basis, err := orDefault(cfg.ScaleUnit, unit.ParseScaleUnit)
	if err != nil {
		return nil, fmt.Errorf("scale %q: %w", id, err)
	}
	dim, err := parseDimension(or(cfg.Dimension, DefaultScaleDimension))
	if err != nil {
		return nil, fmt.Errorf("scale %q: %w", id, err)
	}
	b, err := behavior(f, id, cfg, unit.ParseScaleValue)
	if err != nil {
		return nil, fmt.Errorf("scale %q: %w", id, err)
	}
	return unit.NewScale(unit.ScaleSpec{
		ID:        id,
		Name:      cfg.Name,
		Basis:     basis,
		Dimension: dim,
		Behavior:  b,
	}, f.options(id, cfgOptions(cfg))...)
}

func cfgOptions(cfg Config) []unit.Option {
	return []unit.Option{unit.WithOffset(cfg.Offset), unit.WithAlignment(cfg.Alignment)}
}

// behavior resolves the behavior a Config describes. An expression wins over
// baseValue; a missing baseValue means the basis behavior.
func behavior[V unit.Named](f *Factory, id string, cfg Config, parse func(string) (V, error)) (unit.Behavior[V], error) {
	if cfg.Expression != "" {
		u, err := expr.Compile(id, cfg.Expression, expr.WithTimeout(f.scriptTimeout))
		if err != nil {
			return unit.Behavior[V]{}, err
		}
		return unit.Script[V](u), nil
	}

	switch v := cfg.BaseValue.(type) {
	case nil:
		var zero V
		return unit.Is(zero), nil
	case string:
		return unit.ParseBehavior(v, parse)
	case float64:
		return unit.Literal[V](v), nil
	case float32:
		return unit.Literal[V](float64(v)), nil
	case int:
		return unit.Literal[V](float64(v)), nil
	case int64:
		return unit.Literal[V](float64(v)), nil
	case uint64:
		return unit.Literal[V](float64(v)), nil
	default:
		return unit.Behavior[V]{}, fmt.Errorf("%w: baseValue of type %T", unit.ErrUnknownBehavior, v)
	}
}

func parseDimension(s string) (layout.Dimension, error) {
	d, err := layout.ParseDimension(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", unit.ErrInvalidDimension, err)
	}
	return d, nil
}

func or(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func orDefault[T any](s string, parse func(string) (T, error)) (T, error) {
	if s == "" {
		var zero T
		return zero, nil
	}
	return parse(s)
}
