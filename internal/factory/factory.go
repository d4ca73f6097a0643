package factory

import (
	"time"

	"github.com/google/uuid"
	"github.com/grindlemire/go-unitcalc/internal/expr"
	"github.com/grindlemire/go-unitcalc/internal/layout"
	"github.com/grindlemire/go-unitcalc/internal/unit"
	"go.uber.org/zap"
)

// Factory creates descriptors that share a logger and random source.
type Factory struct {
	log           *zap.Logger
	rand          unit.Rand
	scriptTimeout time.Duration
	newID         func() string
}

// Option configures a Factory.
type Option func(*Factory)

// WithLogger sets the logger handed to every descriptor.
func WithLogger(log *zap.Logger) Option {
	return func(f *Factory) {
		if log != nil {
			f.log = log
		}
	}
}

// WithRand sets the random source handed to every descriptor.
func WithRand(r unit.Rand) Option {
	return func(f *Factory) { f.rand = r }
}

// WithScriptTimeout bounds the evaluation of expression units.
func WithScriptTimeout(d time.Duration) Option {
	return func(f *Factory) { f.scriptTimeout = d }
}

// WithIDGenerator replaces the generator used for descriptors created with
// an empty id.
func WithIDGenerator(gen func() string) Option {
	return func(f *Factory) {
		if gen != nil {
			f.newID = gen
		}
	}
}

// New creates a factory.
func New(opts ...Option) *Factory {
	f := &Factory{
		log:           zap.NewNop(),
		scriptTimeout: expr.DefaultTimeout,
		newID:         uuid.NewString,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Logger returns the factory logger.
func (f *Factory) Logger() *zap.Logger { return f.log }

func (f *Factory) id(id string) string {
	if id == "" {
		return f.newID()
	}
	return id
}

// options prepends the factory's ambient options so callers can override
// them.
func (f *Factory) options(id string, extra []unit.Option) []unit.Option {
	opts := []unit.Option{unit.WithLogger(f.log.With(zap.String("unit", id)))}
	if f.rand != nil {
		opts = append(opts, unit.WithRand(f.rand))
	}
	return append(opts, extra...)
}

// CreateSizeUnit creates a size descriptor. dim must be Width, Height or
// Both. An empty id is replaced by a generated one.
func (f *Factory) CreateSizeUnit(id, name string, basis unit.SizeUnit, dim layout.Dimension, b unit.Behavior[unit.SizeValue], opts ...unit.Option) (*unit.Size, error) {
	id = f.id(id)
	return unit.NewSize(unit.SizeSpec{
		ID:        id,
		Name:      name,
		Basis:     basis,
		Dimension: dim,
		Behavior:  b,
	}, f.options(id, opts)...)
}

// CreatePositionUnit creates a position descriptor. axis must be X, Y or XY.
func (f *Factory) CreatePositionUnit(id, name string, basis unit.PositionUnit, axis layout.Dimension, b unit.Behavior[unit.PositionValue], opts ...unit.Option) (*unit.Position, error) {
	id = f.id(id)
	return unit.NewPosition(unit.PositionSpec{
		ID:       id,
		Name:     name,
		Basis:    basis,
		Axis:     axis,
		Behavior: b,
	}, f.options(id, opts)...)
}

// CreateScaleUnit creates a scale descriptor. dim must be Width, Height or
// Both.
func (f *Factory) CreateScaleUnit(id, name string, basis unit.ScaleUnit, dim layout.Dimension, b unit.Behavior[unit.ScaleValue], opts ...unit.Option) (*unit.Scale, error) {
	id = f.id(id)
	return unit.NewScale(unit.ScaleSpec{
		ID:        id,
		Name:      name,
		Basis:     basis,
		Dimension: dim,
		Behavior:  b,
	}, f.options(id, opts)...)
}
