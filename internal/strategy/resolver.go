package strategy

import (
	"github.com/grindlemire/go-unitcalc/internal/layout"
	"go.uber.org/zap"
)

// Calculator is a descriptor that can resolve itself.
type Calculator interface {
	ID() string
	Calculate(ctx layout.Context) float64
}

// Resolver resolves descriptors through a registry and falls back to the
// descriptor's own calculator when no strategy matches.
type Resolver[D Calculator] struct {
	reg *Registry[D]
	log *zap.Logger
}

// NewResolver creates a resolver over reg.
func NewResolver[D Calculator](reg *Registry[D], log *zap.Logger) *Resolver[D] {
	if log == nil {
		log = zap.NewNop()
	}
	return &Resolver[D]{reg: reg, log: log}
}

// Registry returns the registry the resolver consults.
func (r *Resolver[D]) Registry() *Registry[D] { return r.reg }

// Resolve returns the best strategy's result for d, or d.Calculate(ctx)
// when nothing matches.
func (r *Resolver[D]) Resolve(d D, ctx layout.Context) float64 {
	s, ok := r.reg.Best(d)
	if !ok {
		r.log.Debug("no strategy matched, using calculator", zap.String("id", d.ID()))
		return d.Calculate(ctx)
	}
	if !valid(s, d, ctx) {
		r.log.Debug("strategy context incomplete, using fallbacks",
			zap.String("id", d.ID()), zap.String("strategy", s.ID()))
	}
	return s.Calculate(d, ctx)
}

func valid[D any](s Strategy[D], d D, ctx layout.Context) bool {
	if dv, ok := s.(DescriptorValidator[D]); ok {
		return dv.ValidateFor(d, ctx)
	}
	return s.ValidateContext(ctx)
}
