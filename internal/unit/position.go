package unit

import (
	"fmt"

	"github.com/grindlemire/go-unitcalc/internal/layout"
	"go.uber.org/zap"
)

// PositionSpec is the immutable part of a position descriptor.
type PositionSpec struct {
	ID       string
	Name     string
	Basis    PositionUnit
	Axis     layout.Dimension // X, Y or XY
	Behavior Behavior[PositionValue]
}

// Position resolves a coordinate along one or both axes.
// Only the offset and alignment are mutable after construction.
type Position struct {
	spec PositionSpec
	state
}

// NewPosition validates spec and creates a position descriptor.
func NewPosition(spec PositionSpec, opts ...Option) (*Position, error) {
	if !spec.Axis.IsPosition() {
		return nil, fmt.Errorf("position %q: %w: %s", spec.ID, ErrInvalidDimension, spec.Axis)
	}
	return &Position{spec: spec, state: newState(opts)}, nil
}

func (p *Position) ID() string                        { return p.spec.ID }
func (p *Position) Name() string                      { return p.spec.Name }
func (p *Position) Basis() PositionUnit               { return p.spec.Basis }
func (p *Position) Axis() layout.Dimension            { return p.spec.Axis }
func (p *Position) Behavior() Behavior[PositionValue] { return p.spec.Behavior }
func (p *Position) Spec() PositionSpec                { return p.spec }
func (p *Position) Kind() Kind                        { return KindPosition }

// Calculate resolves the position along the descriptor's axis. XY
// descriptors resolve along ctx.Dimension when it is X or Y, else along X.
func (p *Position) Calculate(ctx layout.Context) float64 {
	return p.calculate(ctx, p.AxisFor(ctx))
}

// CalculateX resolves the horizontal coordinate.
func (p *Position) CalculateX(ctx layout.Context) (float64, error) {
	if p.spec.Axis == layout.Y {
		return 0, fmt.Errorf("position %q: %w: x requested from y descriptor", p.spec.ID, ErrAxisMismatch)
	}
	return p.calculate(ctx, layout.X), nil
}

// CalculateY resolves the vertical coordinate.
func (p *Position) CalculateY(ctx layout.Context) (float64, error) {
	if p.spec.Axis == layout.X {
		return 0, fmt.Errorf("position %q: %w: y requested from x descriptor", p.spec.ID, ErrAxisMismatch)
	}
	return p.calculate(ctx, layout.Y), nil
}

// CalculateBoth resolves both coordinates. The axis a single-axis
// descriptor does not govern is zero.
func (p *Position) CalculateBoth(ctx layout.Context) layout.Point {
	var pt layout.Point
	if p.spec.Axis != layout.Y {
		pt.X = p.calculate(ctx, layout.X)
	}
	if p.spec.Axis != layout.X {
		pt.Y = p.calculate(ctx, layout.Y)
	}
	return pt
}

// AxisFor returns the axis Calculate resolves along for ctx.
func (p *Position) AxisFor(ctx layout.Context) layout.Dimension {
	if p.spec.Axis != layout.XY {
		return p.spec.Axis
	}
	if ctx.Dimension == layout.Y {
		return layout.Y
	}
	return layout.X
}

func (p *Position) calculate(ctx layout.Context, axis layout.Dimension) float64 {
	b := p.spec.Behavior
	switch b.Kind() {
	case BehaviorLiteral:
		return b.Amount() + p.offset
	case BehaviorPercent:
		return PositionPercent(p.spec.Basis, b.Amount(), ctx, axis) + p.offset
	case BehaviorScript:
		v, _ := p.script(b.Custom(), ctx, axis, p.spec.ID)
		return v + p.offset
	}

	v := b.Value()
	switch {
	case v == PositionBasis:
		p.traceFallback(ctx, p.spec.Basis.needsReference())
		return PositionReference(p.spec.Basis, ctx, axis) + p.offset
	case v == PositionRandom:
		return RandomPosition(ctx, axis, p.rand)
	case v.IsFlow():
		return p.offset
	}
	if pos, ok := PositionEdge(v, ctx, axis); ok {
		p.traceFallback(ctx, positionNeeds(v))
		return pos + p.offset
	}
	p.log.Debug("unknown position behavior, using offset",
		zap.String("id", p.spec.ID), zap.Stringer("behavior", v))
	return p.offset
}

func (p *Position) traceFallback(ctx layout.Context, n needs) {
	if !n.met(ctx) {
		p.log.Debug("context rectangle missing, using fallback",
			zap.String("id", p.spec.ID),
			zap.Stringer("basis", p.spec.Basis),
			zap.Stringer("behavior", p.spec.Behavior))
	}
}

// IsResponsive reports whether the result depends on the context.
func (p *Position) IsResponsive() bool {
	return !p.spec.Behavior.IsLiteral()
}

// Validate reports whether ctx holds every rectangle the descriptor reads.
// Calculate never requires this; it is a pre-flight check for callers that
// prefer failing over fallbacks.
func (p *Position) Validate(ctx layout.Context) bool {
	return p.needs().met(ctx)
}

func (p *Position) needs() needs {
	b := p.spec.Behavior
	switch b.Kind() {
	case BehaviorLiteral, BehaviorScript:
		return 0
	case BehaviorPercent:
		return p.spec.Basis.anchor().frame.needs()
	}
	if b.Value() == PositionBasis {
		return p.spec.Basis.needsReference()
	}
	return positionNeeds(b.Value())
}

func positionNeeds(v PositionValue) needs {
	if v == PositionRandom {
		return needStage
	}
	a, ok := v.anchor()
	if !ok {
		return 0
	}
	if a.frame == frameStage && (a.edge == edgeLeft || a.edge == edgeTop) {
		return 0
	}
	return a.frame.needs()
}

// IsWithinBounds reports whether pos lies in [0, stage extent] along the
// descriptor's axis. XY descriptors are not bounds-checked.
func (p *Position) IsWithinBounds(pos float64, ctx layout.Context) bool {
	if p.spec.Axis == layout.XY {
		return true
	}
	return p.PositionRange(ctx).Contains(pos)
}

// PositionRange returns the valid coordinate range along the descriptor's
// axis. XY descriptors use the larger stage extent.
func (p *Position) PositionRange(ctx layout.Context) layout.Range {
	stage, _ := ctx.Stage()
	return layout.Range{Min: 0, Max: stage.Extent(p.spec.Axis)}
}

// Clone returns an independent copy, including offset and alignment.
func (p *Position) Clone() *Position {
	c := *p
	return &c
}

// CloneWith returns a copy with edits applied to the immutable spec.
// Offset and alignment are carried over.
func (p *Position) CloneWith(edits ...func(*PositionSpec)) (*Position, error) {
	spec := p.spec
	for _, edit := range edits {
		edit(&spec)
	}
	if !spec.Axis.IsPosition() {
		return nil, fmt.Errorf("position %q: %w: %s", spec.ID, ErrInvalidDimension, spec.Axis)
	}
	return &Position{spec: spec, state: p.state}, nil
}

// PositionReference returns the reference point named by a measurement
// basis along axis. Pixel and percentage bases reference 0. A missing
// parent falls back to the scene box, then the viewport, then DefaultScene.
func PositionReference(u PositionUnit, ctx layout.Context, axis layout.Dimension) float64 {
	a := u.anchor()
	r, _ := a.frame.box(ctx)
	return a.edge.of(r, axis)
}

// PositionEdge resolves an edge behavior (center, left, parent-right,
// content-center, ...) along axis. ok is false for any other behavior.
func PositionEdge(v PositionValue, ctx layout.Context, axis layout.Dimension) (float64, bool) {
	a, ok := v.anchor()
	if !ok {
		return 0, false
	}
	r, _ := a.frame.box(ctx)
	return a.edge.of(r, axis), true
}

// PositionPercent resolves p percent along the basis box, measured from the
// box's leading edge.
func PositionPercent(u PositionUnit, p float64, ctx layout.Context, axis layout.Dimension) float64 {
	r, _ := u.anchor().frame.box(ctx)
	return r.Start(axis) + r.Extent(axis)*p/100
}

// RandomPosition samples uniformly in [0, stage extent) along axis.
func RandomPosition(ctx layout.Context, axis layout.Dimension, r Rand) float64 {
	stage, _ := ctx.Stage()
	return r.Float64() * stage.Extent(axis)
}
