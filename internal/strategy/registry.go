package strategy

import (
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"
)

// Registry stores strategies by id. Lookups may run concurrently with each
// other and with registration.
type Registry[D any] struct {
	mu   sync.RWMutex
	byID map[string]Strategy[D]
	log  *zap.Logger
}

// RegistryOption configures a Registry.
type RegistryOption func(*registryOptions)

type registryOptions struct {
	log *zap.Logger
}

// WithLogger sets the logger used to report registration changes.
func WithLogger(log *zap.Logger) RegistryOption {
	return func(o *registryOptions) {
		if log != nil {
			o.log = log
		}
	}
}

// NewRegistry creates an empty registry.
func NewRegistry[D any](opts ...RegistryOption) *Registry[D] {
	o := registryOptions{log: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	return &Registry[D]{
		byID: make(map[string]Strategy[D]),
		log:  o.log,
	}
}

// Register adds s. Registering an id that is already present fails with
// ErrDuplicateStrategy.
func (r *Registry[D]) Register(s Strategy[D]) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[s.ID()]; ok {
		return fmt.Errorf("register %q: %w", s.ID(), ErrDuplicateStrategy)
	}
	r.byID[s.ID()] = s
	r.log.Debug("strategy registered", zap.String("id", s.ID()), zap.Int("priority", s.Priority()))
	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry[D]) MustRegister(strategies ...Strategy[D]) {
	for _, s := range strategies {
		if err := r.Register(s); err != nil {
			panic(err)
		}
	}
}

// Unregister removes the strategy with id and reports whether it existed.
func (r *Registry[D]) Unregister(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return false
	}
	delete(r.byID, id)
	r.log.Debug("strategy unregistered", zap.String("id", id))
	return true
}

// Get returns the strategy registered under id.
func (r *Registry[D]) Get(id string) (Strategy[D], bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.byID[id]
	return s, ok
}

// Len returns the number of registered strategies.
func (r *Registry[D]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID)
}

// Strategies returns every registered strategy in priority order.
func (r *Registry[D]) Strategies() []Strategy[D] {
	return r.collect(func(Strategy[D]) bool { return true })
}

// Matching returns the strategies that can handle d, lowest priority first.
// Equal priorities are ordered by id.
func (r *Registry[D]) Matching(d D) []Strategy[D] {
	return r.collect(func(s Strategy[D]) bool { return s.CanHandle(d) })
}

// Best returns the first strategy Matching would return.
func (r *Registry[D]) Best(d D) (Strategy[D], bool) {
	var best Strategy[D]
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, s := range r.byID {
		if !s.CanHandle(d) {
			continue
		}
		if best == nil || less(s, best) {
			best = s
		}
	}
	return best, best != nil
}

func (r *Registry[D]) collect(keep func(Strategy[D]) bool) []Strategy[D] {
	r.mu.RLock()
	out := make([]Strategy[D], 0, len(r.byID))
	for _, s := range r.byID {
		if keep(s) {
			out = append(out, s)
		}
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

func less[D any](a, b Strategy[D]) bool {
	if a.Priority() != b.Priority() {
		return a.Priority() < b.Priority()
	}
	return a.ID() < b.ID()
}
