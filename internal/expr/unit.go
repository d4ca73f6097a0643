package expr

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/dop251/goja"
	"github.com/grindlemire/go-unitcalc/internal/layout"
	"github.com/grindlemire/go-unitcalc/internal/unit"
)

// DefaultTimeout bounds a single evaluation.
const DefaultTimeout = 250 * time.Millisecond

var (
	// ErrCompile is returned when an expression does not parse.
	ErrCompile = errors.New("compile expression")

	// ErrNotNumber is returned when an expression yields a non-number or a
	// non-finite number.
	ErrNotNumber = errors.New("expression result is not a finite number")

	// ErrTimeout is returned when an evaluation is interrupted.
	ErrTimeout = errors.New("expression timed out")
)

// Unit is a compiled script unit. Each evaluation runs the program on a
// fresh runtime, so declarations never carry over between calls and the
// unit is safe for concurrent use.
type Unit struct {
	id      string
	prog    *goja.Program
	timeout time.Duration
}

var _ unit.Custom = (*Unit)(nil)

// Option configures a Unit.
type Option func(*Unit)

// WithTimeout bounds each evaluation. Zero disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(u *Unit) { u.timeout = d }
}

// Compile parses src. id names the unit in errors and logs.
func Compile(id, src string, opts ...Option) (u *Unit, err error) {
	defer func() {
		if p := recover(); p != nil {
			u, err = nil, fmt.Errorf("%w %q: panic: %v", ErrCompile, id, p)
		}
	}()

	prog, err := goja.Compile(id, src, true)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrCompile, id, err)
	}
	u = &Unit{
		id:      id,
		prog:    prog,
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u, nil
}

// MustCompile is like Compile but panics on error.
func MustCompile(id, src string, opts ...Option) *Unit {
	u, err := Compile(id, src, opts...)
	if err != nil {
		panic(err)
	}
	return u
}

func (u *Unit) ID() string { return u.id }

// Resolve evaluates the expression against ctx along dim.
func (u *Unit) Resolve(ctx layout.Context, dim layout.Dimension) (v float64, err error) {
	defer func() {
		if p := recover(); p != nil {
			v, err = 0, fmt.Errorf("evaluate %q: panic: %v", u.id, p)
		}
	}()

	vm := goja.New()
	bind(vm, ctx, dim)

	if u.timeout > 0 {
		t := time.AfterFunc(u.timeout, func() { vm.Interrupt(ErrTimeout) })
		defer t.Stop()
	}

	res, err := vm.RunProgram(u.prog)
	if err != nil {
		var ie *goja.InterruptedError
		if errors.As(err, &ie) {
			return 0, fmt.Errorf("evaluate %q: %w", u.id, ErrTimeout)
		}
		return 0, fmt.Errorf("evaluate %q: %w", u.id, err)
	}
	return number(u.id, res)
}

func number(id string, res goja.Value) (float64, error) {
	if res == nil || goja.IsUndefined(res) || goja.IsNull(res) {
		return 0, fmt.Errorf("evaluate %q: %w: got %v", id, ErrNotNumber, res)
	}
	var f float64
	switch n := res.Export().(type) {
	case int64:
		f = float64(n)
	case float64:
		f = n
	default:
		return 0, fmt.Errorf("evaluate %q: %w: got %s", id, ErrNotNumber, res.String())
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("evaluate %q: %w: got %s", id, ErrNotNumber, res.String())
	}
	return f, nil
}

func bind(vm *goja.Runtime, ctx layout.Context, dim layout.Dimension) {
	vm.Set("clamp", layout.Clamp)
	vm.Set("parent", rectOrNull(ctx.Parent))
	vm.Set("content", rectOrNull(ctx.Content))
	vm.Set("scene", sizeOrNull(ctx.Scene))
	vm.Set("viewport", sizeOrNull(ctx.Viewport))
	if bp := ctx.Breakpoint; bp != nil {
		vm.Set("breakpoint", map[string]any{"name": bp.Name, "width": bp.Width, "height": bp.Height})
	} else {
		vm.Set("breakpoint", goja.Null())
	}
	stage, _ := ctx.Stage()
	vm.Set("stage", map[string]any{"width": stage.Width, "height": stage.Height})
	vm.Set("dimension", dim.String())
}

func rectOrNull(r *layout.Rect) any {
	if r == nil {
		return goja.Null()
	}
	return map[string]any{"x": r.X, "y": r.Y, "width": r.Width, "height": r.Height}
}

func sizeOrNull(s *layout.Size) any {
	if s == nil {
		return goja.Null()
	}
	return map[string]any{"width": s.Width, "height": s.Height}
}
