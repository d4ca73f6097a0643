package main

import (
	"errors"
	"fmt"

	"github.com/grindlemire/go-unitcalc/internal/factory"
	"github.com/grindlemire/go-unitcalc/internal/layout"
	"github.com/grindlemire/go-unitcalc/internal/unit"
	"go.uber.org/zap"
)

// loadedSheet is a sheet with its context resolved and its units built.
type loadedSheet struct {
	path  string
	ctx   layout.Context
	units []unit.Descriptor
}

// loadSheets reads and builds every path. A sheet whose units partly fail
// to build is still returned with the units that succeeded; the build
// errors are joined into the returned error.
func (a *app) loadSheets(paths []string, flags *contextFlags) ([]loadedSheet, error) {
	f := factory.New(
		factory.WithLogger(a.log),
		factory.WithScriptTimeout(a.cfg.Script.Timeout),
	)

	var (
		out  []loadedSheet
		errs []error
	)
	for _, path := range paths {
		s, err := factory.LoadSheet(path)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if err := flags.apply(&s.Context); err != nil {
			return nil, err
		}
		units, err := f.BuildSheet(s)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", path, err))
		}
		a.log.Debug("sheet loaded", zap.String("path", path), zap.Int("units", len(units)))
		out = append(out, loadedSheet{path: path, ctx: s.Layout(), units: units})
	}
	return out, errors.Join(errs...)
}
