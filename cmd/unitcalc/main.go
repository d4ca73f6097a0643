// Package main provides the unitcalc command-line tool for resolving
// responsive layout units described in sheet files.
//
// Usage:
//
//	unitcalc resolve [flags] sheet...   Resolve every unit in the sheets
//	unitcalc check [flags] sheet...     Validate resolved units against a range
//	unitcalc version                    Print version information
//
// Examples:
//
//	unitcalc resolve layout.yaml                     Resolve in the sheet's own context
//	unitcalc resolve --viewport 390x844 layout.yaml  Override the viewport
//	unitcalc resolve -o json layout.yaml             Emit JSON
//	unitcalc check --max 1920 layout.yaml            Fail units that resolve above 1920
package main

import (
	"fmt"
	"os"

	"github.com/grindlemire/go-unitcalc/internal/debug"
)

func main() {
	err := newRootCmd().Execute()
	debug.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
