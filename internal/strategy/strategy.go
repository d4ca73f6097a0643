package strategy

import (
	"errors"

	"github.com/grindlemire/go-unitcalc/internal/layout"
)

// ErrDuplicateStrategy is returned when a strategy id is registered twice.
var ErrDuplicateStrategy = errors.New("duplicate strategy")

// Strategy resolves the descriptors of type D it can handle.
type Strategy[D any] interface {
	// ID uniquely identifies the strategy within a registry.
	ID() string

	// Priority orders matching strategies. Lower wins.
	Priority() int

	// CanHandle reports whether the strategy resolves d.
	CanHandle(d D) bool

	// Calculate resolves d in ctx. Only called when CanHandle(d) is true.
	Calculate(d D, ctx layout.Context) float64

	// ValidateContext reports whether ctx carries what the strategy reads.
	ValidateContext(ctx layout.Context) bool
}

// DescriptorValidator is implemented by strategies whose context needs
// depend on the descriptor. The resolver prefers it over ValidateContext.
type DescriptorValidator[D any] interface {
	ValidateFor(d D, ctx layout.Context) bool
}

// Func adapts plain functions to a Strategy.
type Func[D any] struct {
	Name     string
	Rank     int
	Match    func(d D) bool
	Calc     func(d D, ctx layout.Context) float64
	Requires func(ctx layout.Context) bool // nil means always valid

	// RequiresFor refines Requires for a specific descriptor.
	RequiresFor func(d D, ctx layout.Context) bool
}

var (
	_ Strategy[any]            = (*Func[any])(nil)
	_ DescriptorValidator[any] = (*Func[any])(nil)
)

func (f *Func[D]) ID() string         { return f.Name }
func (f *Func[D]) Priority() int      { return f.Rank }
func (f *Func[D]) CanHandle(d D) bool { return f.Match(d) }

func (f *Func[D]) Calculate(d D, ctx layout.Context) float64 {
	return f.Calc(d, ctx)
}

func (f *Func[D]) ValidateContext(ctx layout.Context) bool {
	if f.Requires == nil {
		return true
	}
	return f.Requires(ctx)
}

// ValidateFor reports whether ctx carries what resolving d reads.
func (f *Func[D]) ValidateFor(d D, ctx layout.Context) bool {
	if f.RequiresFor == nil {
		return f.ValidateContext(ctx)
	}
	return f.RequiresFor(d, ctx)
}

func hasBreakpoint(ctx layout.Context) bool { return ctx.Breakpoint != nil }

func hasContent(ctx layout.Context) bool { return ctx.Content != nil }
func hasStage(ctx layout.Context) bool   { return ctx.Scene != nil || ctx.Viewport != nil }

func hasFill(ctx layout.Context) bool {
	return ctx.Scene != nil || ctx.Viewport != nil || ctx.Parent != nil
}
