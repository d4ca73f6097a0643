package unit

import (
	"math/rand/v2"

	"github.com/grindlemire/go-unitcalc/internal/layout"
	"go.uber.org/zap"
)

// Rand is the random source used by the random behaviors.
type Rand interface {
	// Float64 returns a number in [0, 1).
	Float64() float64
}

type globalRand struct{}

func (globalRand) Float64() float64 { return rand.Float64() }

// Option configures the mutable and ambient parts of a descriptor.
type Option func(*state)

// WithOffset sets the pixel (or factor) adjustment added after resolution.
func WithOffset(offset float64) Option {
	return func(s *state) { s.offset = offset }
}

// WithAlignment sets the cosmetic alignment tag.
func WithAlignment(alignment string) Option {
	return func(s *state) { s.alignment = alignment }
}

// WithLogger sets the logger used to report fallbacks.
func WithLogger(log *zap.Logger) Option {
	return func(s *state) {
		if log != nil {
			s.log = log
		}
	}
}

// WithRand sets the random source for random behaviors.
func WithRand(r Rand) Option {
	return func(s *state) {
		if r != nil {
			s.rand = r
		}
	}
}

// state is the part of a descriptor that is shared by all kinds.
type state struct {
	offset    float64
	alignment string
	log       *zap.Logger
	rand      Rand
}

func newState(opts []Option) state {
	s := state{log: zap.NewNop(), rand: globalRand{}}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// Offset returns the adjustment added after resolution.
func (s *state) Offset() float64 { return s.offset }

// SetOffset changes the adjustment added after resolution.
func (s *state) SetOffset(offset float64) { s.offset = offset }

// Alignment returns the cosmetic alignment tag.
func (s *state) Alignment() string { return s.alignment }

// SetAlignment changes the cosmetic alignment tag.
func (s *state) SetAlignment(alignment string) { s.alignment = alignment }

// Logger returns the descriptor's logger.
func (s *state) Logger() *zap.Logger { return s.log }

// Rand returns the descriptor's random source.
func (s *state) Rand() Rand { return s.rand }

func (s *state) script(c Custom, ctx layout.Context, dim layout.Dimension, id string) (float64, bool) {
	if c == nil {
		s.log.Warn("script unit has no handle", zap.String("id", id))
		return 0, false
	}
	v, err := c.Resolve(ctx.WithDimension(dim), dim)
	if err != nil {
		s.log.Warn("script unit failed, using fallback",
			zap.String("id", id),
			zap.String("script", c.ID()),
			zap.Error(err))
		return 0, false
	}
	return v, true
}

// needs is the set of context rectangles a descriptor relies on.
type needs uint8

const (
	needParent needs = 1 << iota
	needScene
	needViewport
	needContent
	needBreakpoint
	needStage // scene or viewport
	needFill  // scene, viewport or parent
)

// met reports whether every required rectangle is present in ctx.
func (n needs) met(ctx layout.Context) bool {
	switch {
	case n&needParent != 0 && ctx.Parent == nil:
		return false
	case n&needScene != 0 && ctx.Scene == nil:
		return false
	case n&needViewport != 0 && ctx.Viewport == nil:
		return false
	case n&needContent != 0 && ctx.Content == nil:
		return false
	case n&needBreakpoint != 0 && ctx.Breakpoint == nil:
		return false
	case n&needStage != 0 && ctx.Scene == nil && ctx.Viewport == nil:
		return false
	case n&needFill != 0 && ctx.Scene == nil && ctx.Viewport == nil && ctx.Parent == nil:
		return false
	}
	return true
}

// Descriptor is the behavior shared by Size, Position and Scale.
type Descriptor interface {
	ID() string
	Name() string
	Kind() Kind
	Calculate(ctx layout.Context) float64
	IsResponsive() bool
	Validate(ctx layout.Context) bool
	Offset() float64
	SetOffset(offset float64)
	Alignment() string
	SetAlignment(alignment string)
}

var (
	_ Descriptor = (*Size)(nil)
	_ Descriptor = (*Position)(nil)
	_ Descriptor = (*Scale)(nil)
)
