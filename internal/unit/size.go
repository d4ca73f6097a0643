package unit

import (
	"fmt"

	"github.com/grindlemire/go-unitcalc/internal/layout"
	"go.uber.org/zap"
)

// SizeSpec is the immutable part of a size descriptor.
type SizeSpec struct {
	ID        string
	Name      string
	Basis     SizeUnit
	Dimension layout.Dimension // Width, Height or Both
	Behavior  Behavior[SizeValue]

	// MaintainAspectRatio is carried for the host; the calculator
	// returns an unconstrained scalar.
	MaintainAspectRatio bool

	// Min and Max clamp the result when set. Min wins if they cross.
	Min *float64
	Max *float64
}

func (s SizeSpec) clone() SizeSpec {
	if s.Min != nil {
		v := *s.Min
		s.Min = &v
	}
	if s.Max != nil {
		v := *s.Max
		s.Max = &v
	}
	return s
}

// Size resolves a pixel extent.
type Size struct {
	spec SizeSpec
	state
}

// NewSize validates spec and creates a size descriptor.
func NewSize(spec SizeSpec, opts ...Option) (*Size, error) {
	if !spec.Dimension.IsSize() {
		return nil, fmt.Errorf("size %q: %w: %s", spec.ID, ErrInvalidDimension, spec.Dimension)
	}
	return &Size{spec: spec.clone(), state: newState(opts)}, nil
}

func (s *Size) ID() string                    { return s.spec.ID }
func (s *Size) Name() string                  { return s.spec.Name }
func (s *Size) Basis() SizeUnit               { return s.spec.Basis }
func (s *Size) Dimension() layout.Dimension   { return s.spec.Dimension }
func (s *Size) Behavior() Behavior[SizeValue] { return s.spec.Behavior }
func (s *Size) MaintainAspectRatio() bool     { return s.spec.MaintainAspectRatio }
func (s *Size) Spec() SizeSpec                { return s.spec.clone() }
func (s *Size) Kind() Kind                    { return KindSize }

// Calculate resolves the size along the configured dimension, adds the
// offset and applies the min/max clamp.
func (s *Size) Calculate(ctx layout.Context) float64 {
	return s.Bound(s.resolve(ctx) + s.offset)
}

func (s *Size) resolve(ctx layout.Context) float64 {
	b := s.spec.Behavior
	dim := s.spec.Dimension
	switch b.Kind() {
	case BehaviorLiteral:
		return b.Amount()
	case BehaviorPercent:
		return SizePercent(s.spec.Basis, b.Amount(), ctx, dim)
	case BehaviorScript:
		v, ok := s.script(b.Custom(), ctx, dim, s.spec.ID)
		if !ok {
			return SizeBasisExtent(s.spec.Basis, ctx, dim)
		}
		return v
	}

	v := b.Value()
	if !s.needs().met(ctx) {
		s.log.Debug("context rectangle missing, using fallback",
			zap.String("id", s.spec.ID),
			zap.Stringer("basis", s.spec.Basis),
			zap.Stringer("behavior", v))
	}
	switch v {
	case SizeBasis:
		return SizeBasisExtent(s.spec.Basis, ctx, dim)
	case SizeFill:
		return FillSize(ctx, dim)
	case SizeAuto:
		return AutoSize(ctx, dim)
	}
	if ext, ok := SizeExtent(v, ctx); ok {
		return ext
	}
	s.log.Debug("unknown size behavior, using basis extent",
		zap.String("id", s.spec.ID), zap.Stringer("behavior", v))
	return SizeBasisExtent(s.spec.Basis, ctx, dim)
}

// Bound applies the min/max clamp. Min wins if the bounds cross.
func (s *Size) Bound(v float64) float64 {
	if s.spec.Max != nil && v > *s.spec.Max {
		v = *s.spec.Max
	}
	if s.spec.Min != nil && v < *s.spec.Min {
		v = *s.spec.Min
	}
	return v
}

// IsResponsive reports whether the result depends on the context.
func (s *Size) IsResponsive() bool {
	return !s.spec.Behavior.IsLiteral()
}

// Validate reports whether ctx holds every rectangle the descriptor reads.
func (s *Size) Validate(ctx layout.Context) bool {
	return s.needs().met(ctx)
}

func (s *Size) needs() needs {
	b := s.spec.Behavior
	switch b.Kind() {
	case BehaviorLiteral, BehaviorScript:
		return 0
	case BehaviorPercent:
		return s.spec.Basis.extent().frame.needs()
	}
	switch v := b.Value(); v {
	case SizeBasis:
		if s.spec.Basis == SizeUnitPixel {
			return 0
		}
		return s.spec.Basis.extent().frame.needs()
	case SizeFill:
		return needFill
	case SizeAuto:
		return needContent
	default:
		if e, ok := sizeExtents[v]; ok {
			return e.frame.needs()
		}
		return 0
	}
}

// Clone returns an independent copy, including offset and alignment.
func (s *Size) Clone() *Size {
	return &Size{spec: s.spec.clone(), state: s.state}
}

// CloneWith returns a copy with edits applied to the immutable spec.
func (s *Size) CloneWith(edits ...func(*SizeSpec)) (*Size, error) {
	spec := s.spec.clone()
	for _, edit := range edits {
		edit(&spec)
	}
	if !spec.Dimension.IsSize() {
		return nil, fmt.Errorf("size %q: %w: %s", spec.ID, ErrInvalidDimension, spec.Dimension)
	}
	return &Size{spec: spec.clone(), state: s.state}, nil
}

// extentRef is a frame measured along a fixed axis, or along the
// descriptor's dimension when axis is Both.
type extentRef struct {
	frame frame
	axis  layout.Dimension
}

var sizeUnitExtents = []extentRef{
	SizeUnitPixel:          {frameParent, layout.Both},
	SizeUnitPercentage:     {frameParent, layout.Both},
	SizeUnitParentWidth:    {frameParent, layout.Width},
	SizeUnitParentHeight:   {frameParent, layout.Height},
	SizeUnitSceneWidth:     {frameScene, layout.Width},
	SizeUnitSceneHeight:    {frameScene, layout.Height},
	SizeUnitViewportWidth:  {frameViewport, layout.Width},
	SizeUnitViewportHeight: {frameViewport, layout.Height},
	SizeUnitContentWidth:   {frameContent, layout.Width},
	SizeUnitContentHeight:  {frameContent, layout.Height},
}

func (u SizeUnit) extent() extentRef {
	if int(u) < len(sizeUnitExtents) {
		return sizeUnitExtents[u]
	}
	return extentRef{frameParent, layout.Both}
}

func (e extentRef) measure(ctx layout.Context, dim layout.Dimension) float64 {
	r, _ := e.frame.box(ctx)
	if e.axis != layout.Both {
		dim = e.axis
	}
	return r.Extent(dim)
}

var sizeExtents = map[SizeValue]extentRef{
	SizeParentWidth:    {frameParent, layout.Width},
	SizeParentHeight:   {frameParent, layout.Height},
	SizeSceneWidth:     {frameScene, layout.Width},
	SizeSceneHeight:    {frameScene, layout.Height},
	SizeViewportWidth:  {frameViewport, layout.Width},
	SizeViewportHeight: {frameViewport, layout.Height},
	SizeContentWidth:   {frameContent, layout.Width},
	SizeContentHeight:  {frameContent, layout.Height},
}

// IsExtent reports whether v names a single box extent such as parent-width.
func (v SizeValue) IsExtent() bool {
	_, ok := sizeExtents[v]
	return ok
}

// SizeExtent resolves a box-extent behavior (parent-width, viewport-height,
// ...). ok is false for any other behavior.
func SizeExtent(v SizeValue, ctx layout.Context) (float64, bool) {
	e, ok := sizeExtents[v]
	if !ok {
		return 0, false
	}
	return e.measure(ctx, e.axis), true
}

// SizeBasisExtent returns the extent implied by the basis alone. A pixel
// basis has no reference extent and yields 0; a percentage basis yields the
// full parent extent along dim (the larger side for Both).
func SizeBasisExtent(u SizeUnit, ctx layout.Context, dim layout.Dimension) float64 {
	if u == SizeUnitPixel {
		return 0
	}
	return u.extent().measure(ctx, dim)
}

// SizePercent resolves p percent of the basis extent. Pixel and percentage
// bases measure against the parent.
func SizePercent(u SizeUnit, p float64, ctx layout.Context, dim layout.Dimension) float64 {
	return u.extent().measure(ctx, dim) * p / 100
}

// FillSize resolves the fill behavior: the scene, viewport or parent extent
// along dim. Both yields the smaller side so the result fits either axis.
func FillSize(ctx layout.Context, dim layout.Dimension) float64 {
	s, _ := ctx.FillSize()
	switch dim {
	case layout.Width:
		return s.Width
	case layout.Height:
		return s.Height
	default:
		return min(s.Width, s.Height)
	}
}

// AutoSize resolves the auto behavior from the content bounds. Both yields
// the larger side.
func AutoSize(ctx layout.Context, dim layout.Dimension) float64 {
	r, _ := ctx.ContentBox()
	switch dim {
	case layout.Width:
		return r.Width
	case layout.Height:
		return r.Height
	default:
		return max(r.Width, r.Height)
	}
}
