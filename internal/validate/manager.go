package validate

import (
	"context"
	"fmt"
	"runtime"
	"strings"
	"sync"

	"github.com/grindlemire/go-unitcalc/internal/layout"
	"github.com/grindlemire/go-unitcalc/internal/unit"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// DefaultMaxErrors bounds the error log. Older entries are dropped first.
const DefaultMaxErrors = 1000

// Stats counts validations since the last reset.
type Stats struct {
	Total      int `json:"total"`
	Successful int `json:"successful"`
	Failed     int `json:"failed"`
}

// SuccessRate is Successful/Total, or 0 before any validation.
func (s Stats) SuccessRate() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Successful) / float64(s.Total)
}

type link struct {
	v    Validator
	next *link
}

// Manager runs a chain of validators and keeps statistics and an error log.
// It is safe for concurrent use.
type Manager struct {
	mu        sync.Mutex
	head      *link
	tail      *link
	errs      []string
	stats     Stats
	maxErrors int
	workers   int
	log       *zap.Logger
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithLogger sets the logger failures are reported to.
func WithLogger(log *zap.Logger) ManagerOption {
	return func(m *Manager) {
		if log != nil {
			m.log = log
		}
	}
}

// WithMaxErrors bounds the error log.
func WithMaxErrors(n int) ManagerOption {
	return func(m *Manager) {
		if n > 0 {
			m.maxErrors = n
		}
	}
}

// WithWorkers bounds the goroutines ValidateBatch uses.
func WithWorkers(n int) ManagerOption {
	return func(m *Manager) {
		if n > 0 {
			m.workers = n
		}
	}
}

// NewManager creates a manager whose chain holds validators, in order.
func NewManager(validators []Validator, opts ...ManagerOption) *Manager {
	m := &Manager{
		maxErrors: DefaultMaxErrors,
		workers:   runtime.GOMAXPROCS(0),
		log:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.Use(validators...)
	return m
}

// Use appends validators to the end of the chain.
func (m *Manager) Use(validators ...Validator) *Manager {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, v := range validators {
		l := &link{v: v}
		if m.tail == nil {
			m.head = l
		} else {
			m.tail.next = l
		}
		m.tail = l
	}
	return m
}

// Validators returns the chain in order.
func (m *Manager) Validators() []Validator {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []Validator
	for l := m.head; l != nil; l = l.next {
		out = append(out, l.v)
	}
	return out
}

// ValidateUnit validates the declared value of d and, when the chain holds
// a Context validator, its context requirements.
func (m *Manager) ValidateUnit(d unit.Descriptor, ctx layout.Context) Outcome {
	return m.ValidateInput(FromDescriptor(d), ctx)
}

// ValidateInput walks the chain. Every validator that can handle in runs;
// the outcome fails if any of them fails, with their messages joined.
func (m *Manager) ValidateInput(in Input, ctx layout.Context) Outcome {
	var failures []string
	for _, v := range m.Validators() {
		if !v.CanHandle(in) {
			continue
		}
		if out := v.Validate(in, ctx); !out.OK {
			failures = append(failures, out.Message)
			m.log.Debug("validation failed",
				zap.String("id", in.ID()),
				zap.String("validator", v.Name()),
				zap.String("message", out.Message))
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.stats.Total++
	if len(failures) == 0 {
		m.stats.Successful++
		return Pass
	}
	m.stats.Failed++
	for _, f := range failures {
		m.record(fmt.Sprintf("%s: %s", in.ID(), f))
	}
	return Outcome{Message: strings.Join(failures, "; ")}
}

// ValidateBatch validates inputs in parallel. Outcomes are in input order.
// A cancelled c stops the batch and returns its error.
func (m *Manager) ValidateBatch(c context.Context, inputs []Input, ctx layout.Context) ([]Outcome, error) {
	out := make([]Outcome, len(inputs))
	g, gctx := errgroup.WithContext(c)
	g.SetLimit(m.workers)
	for i, in := range inputs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out[i] = m.ValidateInput(in, ctx)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("validate batch: %w", err)
	}
	return out, nil
}

func (m *Manager) record(msg string) {
	if len(m.errs) >= m.maxErrors {
		m.errs = append(m.errs[:0], m.errs[len(m.errs)-m.maxErrors+1:]...)
	}
	m.errs = append(m.errs, msg)
}

// Errors returns a copy of the error log, oldest first.
func (m *Manager) Errors() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.errs...)
}

// ClearErrors empties the error log.
func (m *Manager) ClearErrors() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errs = nil
}

// Stats returns the counters.
func (m *Manager) Stats() Stats {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stats
}

// SuccessRate is shorthand for Stats().SuccessRate().
func (m *Manager) SuccessRate() float64 { return m.Stats().SuccessRate() }

// ResetStats zeroes the counters. The error log is kept.
func (m *Manager) ResetStats() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stats = Stats{}
}
