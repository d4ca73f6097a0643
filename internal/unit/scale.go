package unit

import (
	"fmt"

	"github.com/grindlemire/go-unitcalc/internal/layout"
	"go.uber.org/zap"
)

// Fallback factors used when a scale cannot be measured.
const (
	DefaultParentScale     = 1.0
	DefaultSceneScale      = 1.0
	DefaultViewportScale   = 1.0
	DefaultContentScale    = 1.0
	DefaultBreakpointScale = 1.0

	RandomScaleMin = 0.5
	RandomScaleMax = 1.5
)

// ScaleSpec is the immutable part of a scale descriptor.
type ScaleSpec struct {
	ID        string
	Name      string
	Basis     ScaleUnit
	Dimension layout.Dimension // Width, Height or Both
	Behavior  Behavior[ScaleValue]
}

// Scale resolves a dimensionless multiplier.
type Scale struct {
	spec ScaleSpec
	state
}

// NewScale validates spec and creates a scale descriptor.
func NewScale(spec ScaleSpec, opts ...Option) (*Scale, error) {
	if !spec.Dimension.IsSize() {
		return nil, fmt.Errorf("scale %q: %w: %s", spec.ID, ErrInvalidDimension, spec.Dimension)
	}
	return &Scale{spec: spec, state: newState(opts)}, nil
}

func (s *Scale) ID() string                     { return s.spec.ID }
func (s *Scale) Name() string                   { return s.spec.Name }
func (s *Scale) Basis() ScaleUnit               { return s.spec.Basis }
func (s *Scale) Dimension() layout.Dimension    { return s.spec.Dimension }
func (s *Scale) Behavior() Behavior[ScaleValue] { return s.spec.Behavior }
func (s *Scale) Spec() ScaleSpec                { return s.spec }
func (s *Scale) Kind() Kind                     { return KindScale }

// Calculate resolves the factor and adds the offset.
func (s *Scale) Calculate(ctx layout.Context) float64 {
	return s.resolve(ctx) + s.offset
}

func (s *Scale) resolve(ctx layout.Context) float64 {
	b := s.spec.Behavior
	dim := s.spec.Dimension
	switch b.Kind() {
	case BehaviorLiteral:
		return b.Amount()
	case BehaviorPercent:
		return b.Amount() / 100
	case BehaviorScript:
		v, ok := s.script(b.Custom(), ctx, dim, s.spec.ID)
		if !ok {
			return DefaultContentScale
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
	case ScaleBasis:
		return ScaleBasisFactor(s.spec.Basis, ctx, dim)
	case ScaleRandom:
		return RandomScale(s.rand)
	}
	if f, ok := ScaleFactor(v, s.spec.Basis, ctx, dim); ok {
		return f
	}
	s.log.Debug("unknown scale behavior, using identity",
		zap.String("id", s.spec.ID), zap.Stringer("behavior", v))
	return 1
}

// IsResponsive reports whether the result depends on the context.
func (s *Scale) IsResponsive() bool {
	return !s.spec.Behavior.IsLiteral()
}

// Validate reports whether ctx holds every rectangle the descriptor reads.
func (s *Scale) Validate(ctx layout.Context) bool {
	return s.needs().met(ctx)
}

func (s *Scale) needs() needs {
	b := s.spec.Behavior
	if b.Kind() != BehaviorNamed {
		return 0
	}
	v := b.Value()
	if v == ScaleBasis {
		v = s.spec.Basis.behavior()
	}
	switch v {
	case ScaleFit, ScaleStretch, ScaleFill:
		return needContent | s.spec.Basis.container().needs()
	case ScaleParent:
		return needContent | needParent
	case ScaleScene:
		return needContent | needScene
	case ScaleViewport:
		return needContent | needViewport
	case ScaleContent:
		return needContent
	case ScaleBreakpoint:
		return needBreakpoint | needStage
	case ScaleDevice:
		return needBreakpoint
	default:
		return 0
	}
}

// Clone returns an independent copy, including offset and alignment.
func (s *Scale) Clone() *Scale {
	c := *s
	return &c
}

// CloneWith returns a copy with edits applied to the immutable spec.
func (s *Scale) CloneWith(edits ...func(*ScaleSpec)) (*Scale, error) {
	spec := s.spec
	for _, edit := range edits {
		edit(&spec)
	}
	if !spec.Dimension.IsSize() {
		return nil, fmt.Errorf("scale %q: %w: %s", spec.ID, ErrInvalidDimension, spec.Dimension)
	}
	return &Scale{spec: spec, state: s.state}, nil
}

// container is the box fit, fill and stretch measure the content against.
func (u ScaleUnit) container() frame {
	switch u {
	case ScaleUnitScene:
		return frameScene
	case ScaleUnitViewport:
		return frameViewport
	default:
		return frameParent
	}
}

// behavior is the named rule a basis implies for the basis behavior.
func (u ScaleUnit) behavior() ScaleValue {
	switch u {
	case ScaleUnitParent:
		return ScaleParent
	case ScaleUnitScene:
		return ScaleScene
	case ScaleUnitViewport:
		return ScaleViewport
	case ScaleUnitContent:
		return ScaleContent
	default:
		return ScaleBasis
	}
}

// ScaleBasisFactor resolves the factor implied by the basis alone. Factor
// and percentage bases are the identity.
func ScaleBasisFactor(u ScaleUnit, ctx layout.Context, dim layout.Dimension) float64 {
	v := u.behavior()
	if v == ScaleBasis {
		return 1
	}
	f, _ := ScaleFactor(v, u, ctx, dim)
	return f
}

// ScaleFactor resolves a measured scale behavior. ok is false for basis,
// random and unknown behaviors.
func ScaleFactor(v ScaleValue, u ScaleUnit, ctx layout.Context, dim layout.Dimension) (float64, bool) {
	switch v {
	case ScaleFit, ScaleFill, ScaleStretch:
		content, ok := ctx.ContentBox()
		if !ok {
			return DefaultContentScale, true
		}
		box, _ := u.container().box(ctx)
		return ratio(box.Size(), content.Size(), dim, v, DefaultContentScale), true
	case ScaleParent:
		if ctx.Parent == nil {
			return DefaultParentScale, true
		}
		return containerRatio(ctx.Parent.Size(), ctx, dim, DefaultParentScale), true
	case ScaleScene:
		if ctx.Scene == nil {
			return DefaultSceneScale, true
		}
		return containerRatio(*ctx.Scene, ctx, dim, DefaultSceneScale), true
	case ScaleViewport:
		if ctx.Viewport == nil {
			return DefaultViewportScale, true
		}
		return containerRatio(*ctx.Viewport, ctx, dim, DefaultViewportScale), true
	case ScaleContent:
		if ctx.Content == nil {
			return DefaultContentScale, true
		}
		return ratio(ctx.Content.Size(), layout.DefaultDesign, dim, ScaleFit, DefaultContentScale), true
	case ScaleBreakpoint:
		if ctx.Breakpoint == nil {
			return DefaultBreakpointScale, true
		}
		vp, _ := ctx.ViewportBox()
		bp := layout.Size{Width: ctx.Breakpoint.Width, Height: ctx.Breakpoint.Height}
		return ratio(vp.Size(), bp, dim, ScaleFit, DefaultBreakpointScale), true
	case ScaleDevice:
		if ctx.Breakpoint == nil {
			return DefaultBreakpointScale, true
		}
		bp := layout.Size{Width: ctx.Breakpoint.Width, Height: ctx.Breakpoint.Height}
		return ratio(bp, layout.DefaultDesign, dim, ScaleFit, DefaultBreakpointScale), true
	}
	return 0, false
}

// RandomScale samples uniformly in [RandomScaleMin, RandomScaleMax).
func RandomScale(r Rand) float64 {
	return RandomScaleMin + r.Float64()*(RandomScaleMax-RandomScaleMin)
}

// containerRatio is the factor that makes the content match container.
// Missing content yields fallback.
func containerRatio(container layout.Size, ctx layout.Context, dim layout.Dimension, fallback float64) float64 {
	if ctx.Content == nil {
		return fallback
	}
	return ratio(container, ctx.Content.Size(), dim, ScaleFit, fallback)
}

// ratio divides outer by inner along dim. For Both, fit takes the smaller
// ratio, fill the larger, and stretch the horizontal one. A non-positive
// inner extent yields fallback.
func ratio(outer, inner layout.Size, dim layout.Dimension, mode ScaleValue, fallback float64) float64 {
	wr, hr := fallback, fallback
	if inner.Width > 0 {
		wr = outer.Width / inner.Width
	}
	if inner.Height > 0 {
		hr = outer.Height / inner.Height
	}
	switch dim {
	case layout.Width:
		return wr
	case layout.Height:
		return hr
	}
	switch mode {
	case ScaleFill:
		return max(wr, hr)
	case ScaleStretch:
		return wr
	default:
		return min(wr, hr)
	}
}
