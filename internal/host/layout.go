package host

import (
	"sync"

	"fyne.io/fyne/v2"
	"github.com/grindlemire/go-unitcalc/internal/layout"
	"github.com/grindlemire/go-unitcalc/internal/strategy"
	"github.com/grindlemire/go-unitcalc/internal/unit"
	"go.uber.org/zap"
)

// Placement is the set of descriptors governing one child. Nil fields leave
// that part of the geometry to the fallbacks described on Layout.
type Placement struct {
	X      *unit.Position
	Y      *unit.Position
	Width  *unit.Size
	Height *unit.Size
	Scale  *unit.Scale
}

// Layout is a fyne.Layout that positions children from unit descriptors.
//
// For each visible child with a placement, the parent is the container box
// and the content is the child's MinSize. A missing Width or Height is the
// MinSize extent multiplied by Scale (1 when Scale is nil); a missing X or Y
// keeps the child's current coordinate. Children without a placement are
// left untouched.
type Layout struct {
	mu          sync.RWMutex
	base        layout.Context
	breakpoints layout.Breakpoints
	placements  map[fyne.CanvasObject]Placement

	sizeReg     *strategy.Registry[*unit.Size]
	positionReg *strategy.Registry[*unit.Position]
	scaleReg    *strategy.Registry[*unit.Scale]

	sizes     *strategy.Resolver[*unit.Size]
	positions *strategy.Resolver[*unit.Position]
	scales    *strategy.Resolver[*unit.Scale]
	log       *zap.Logger
}

var _ fyne.Layout = (*Layout)(nil)

// LayoutOption configures a Layout.
type LayoutOption func(*Layout)

// WithLogger sets the logger.
func WithLogger(log *zap.Logger) LayoutOption {
	return func(l *Layout) {
		if log != nil {
			l.log = log
		}
	}
}

// WithBreakpoints matches a breakpoint against the viewport on each layout
// pass.
func WithBreakpoints(bps layout.Breakpoints) LayoutOption {
	return func(l *Layout) { l.breakpoints = bps }
}

// WithRegistries resolves descriptors through the given registries instead
// of the built-in ones. Nil registries keep the built-ins.
func WithRegistries(sizes *strategy.Registry[*unit.Size], positions *strategy.Registry[*unit.Position], scales *strategy.Registry[*unit.Scale]) LayoutOption {
	return func(l *Layout) {
		l.sizeReg, l.positionReg, l.scaleReg = sizes, positions, scales
	}
}

// NewLayout creates a layout resolving against base. Scene, viewport and
// breakpoint come from base; the parent and content are set per child.
func NewLayout(base layout.Context, opts ...LayoutOption) *Layout {
	l := &Layout{
		base:       base.Clone(),
		placements: make(map[fyne.CanvasObject]Placement),
		log:        zap.NewNop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.sizeReg == nil {
		l.sizeReg = strategy.NewSizeRegistry(strategy.WithLogger(l.log))
	}
	if l.positionReg == nil {
		l.positionReg = strategy.NewPositionRegistry(strategy.WithLogger(l.log))
	}
	if l.scaleReg == nil {
		l.scaleReg = strategy.NewScaleRegistry(strategy.WithLogger(l.log))
	}
	l.sizes = strategy.NewResolver(l.sizeReg, l.log)
	l.positions = strategy.NewResolver(l.positionReg, l.log)
	l.scales = strategy.NewResolver(l.scaleReg, l.log)
	return l
}

// Place sets the descriptors for o.
func (l *Layout) Place(o fyne.CanvasObject, p Placement) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.placements[o] = p
}

// Remove forgets o.
func (l *Layout) Remove(o fyne.CanvasObject) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.placements, o)
}

// SetBase replaces the scene, viewport and breakpoint context, e.g. after
// the window was resized.
func (l *Layout) SetBase(base layout.Context) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.base = base.Clone()
}

// Layout implements fyne.Layout.
func (l *Layout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	base := l.base
	if len(l.breakpoints.All()) > 0 && base.Breakpoint == nil {
		base = l.breakpoints.Apply(base)
	}

	for _, o := range objects {
		p, ok := l.placements[o]
		if !ok || !o.Visible() {
			continue
		}
		ctx := ChildContext(base, size, o)
		s := l.size(p, ctx, o)
		o.Resize(ToFyne(s))
		o.Move(l.position(p, ctx, o))
	}
}

func (l *Layout) size(p Placement, ctx layout.Context, o fyne.CanvasObject) layout.Size {
	factor := 1.0
	if p.Scale != nil {
		factor = l.scales.Resolve(p.Scale, ctx)
	}
	s := SizeOf(o.MinSize())
	s.Width *= factor
	s.Height *= factor
	if p.Width != nil {
		s.Width = l.sizes.Resolve(p.Width, ctx.WithDimension(layout.Width))
	}
	if p.Height != nil {
		s.Height = l.sizes.Resolve(p.Height, ctx.WithDimension(layout.Height))
	}
	return layout.Size{Width: max(s.Width, 0), Height: max(s.Height, 0)}
}

func (l *Layout) position(p Placement, ctx layout.Context, o fyne.CanvasObject) fyne.Position {
	pos := o.Position()
	if p.X != nil {
		pos.X = float32(l.positions.Resolve(p.X, ctx.WithDimension(layout.X)))
	}
	if p.Y != nil {
		pos.Y = float32(l.positions.Resolve(p.Y, ctx.WithDimension(layout.Y)))
	}
	return pos
}

// MinSize implements fyne.Layout. It is the union of the visible children's
// minimum sizes.
func (l *Layout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	var out fyne.Size
	for _, o := range objects {
		if !o.Visible() {
			continue
		}
		out = out.Max(o.MinSize())
	}
	return out
}
