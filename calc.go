package unitcalc

import (
	"time"

	"github.com/grindlemire/go-unitcalc/internal/expr"
	"github.com/grindlemire/go-unitcalc/internal/factory"
	"github.com/grindlemire/go-unitcalc/internal/layout"
	"github.com/grindlemire/go-unitcalc/internal/strategy"
	"github.com/grindlemire/go-unitcalc/internal/unit"
	"github.com/grindlemire/go-unitcalc/internal/validate"
	"go.uber.org/zap"
)

// Calculator resolves any descriptor through the strategy registry for its
// kind. Kinds without a registry use the descriptor's own calculator.
type Calculator struct {
	sizes     *strategy.Resolver[*unit.Size]
	positions *strategy.Resolver[*unit.Position]
	scales    *strategy.Resolver[*unit.Scale]
}

// CalculatorOption configures a Calculator.
type CalculatorOption func(*calculatorOptions)

type calculatorOptions struct {
	log       *zap.Logger
	sizes     *strategy.Registry[*unit.Size]
	positions *strategy.Registry[*unit.Position]
	scales    *strategy.Registry[*unit.Scale]
}

// WithCalculatorLogger sets the logger the registries and resolvers use.
func WithCalculatorLogger(log *zap.Logger) CalculatorOption {
	return func(o *calculatorOptions) {
		if log != nil {
			o.log = log
		}
	}
}

// WithSizeRegistry replaces the built-in size strategies.
func WithSizeRegistry(r *strategy.Registry[*unit.Size]) CalculatorOption {
	return func(o *calculatorOptions) { o.sizes = r }
}

// WithPositionRegistry replaces the built-in position strategies.
func WithPositionRegistry(r *strategy.Registry[*unit.Position]) CalculatorOption {
	return func(o *calculatorOptions) { o.positions = r }
}

// WithScaleRegistry replaces the built-in scale strategies.
func WithScaleRegistry(r *strategy.Registry[*unit.Scale]) CalculatorOption {
	return func(o *calculatorOptions) { o.scales = r }
}

// NewCalculator creates a Calculator over the built-in strategies.
func NewCalculator(opts ...CalculatorOption) *Calculator {
	o := calculatorOptions{log: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	reg := strategy.WithLogger(o.log)
	if o.sizes == nil {
		o.sizes = strategy.NewSizeRegistry(reg)
	}
	if o.positions == nil {
		o.positions = strategy.NewPositionRegistry(reg)
	}
	if o.scales == nil {
		o.scales = strategy.NewScaleRegistry(reg)
	}
	return &Calculator{
		sizes:     strategy.NewResolver(o.sizes, o.log),
		positions: strategy.NewResolver(o.positions, o.log),
		scales:    strategy.NewResolver(o.scales, o.log),
	}
}

// Resolve computes d in ctx.
func (c *Calculator) Resolve(d Descriptor, ctx Context) float64 {
	switch d := d.(type) {
	case *unit.Size:
		return c.sizes.Resolve(d, ctx)
	case *unit.Position:
		return c.positions.Resolve(d, ctx)
	case *unit.Scale:
		return c.scales.Resolve(d, ctx)
	default:
		return d.Calculate(ctx)
	}
}

// ResolvePoint computes both coordinates of a position. The axis a
// single-axis position does not govern is zero.
func (c *Calculator) ResolvePoint(p *Position, ctx Context) Point {
	var pt Point
	if p.Axis() != layout.Y {
		pt.X = c.positions.Resolve(p, ctx.WithDimension(layout.X))
	}
	if p.Axis() != layout.X {
		pt.Y = c.positions.Resolve(p, ctx.WithDimension(layout.Y))
	}
	return pt
}

// Factory builds descriptors from code or config.
type Factory = factory.Factory

// Config is the declarative form of one unit.
type Config = factory.Config

// Sheet bundles a layout context with the units to resolve in it.
type Sheet = factory.Sheet

var (
	NewFactory        = factory.New
	LoadSheet         = factory.LoadSheet
	WithFactoryLogger = factory.WithLogger
	WithScriptTimeout = factory.WithScriptTimeout
)

// Compile parses a JavaScript expression into a Custom unit.
// A non-positive timeout keeps the default.
func Compile(id, src string, timeout time.Duration) (Custom, error) {
	var opts []expr.Option
	if timeout > 0 {
		opts = append(opts, expr.WithTimeout(timeout))
	}
	u, err := expr.Compile(id, src, opts...)
	if err != nil {
		return nil, err
	}
	return u, nil
}

// Validation.
type (
	Validator = validate.Validator
	Outcome   = validate.Outcome
	Input     = validate.Input
	Manager   = validate.Manager
)

var (
	NewManager = validate.NewManager
	NewRange   = validate.NewRange
	Resolved   = validate.Resolved
)
