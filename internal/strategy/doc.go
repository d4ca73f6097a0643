// Package strategy is the extensible resolution path. Each Strategy handles
// one family of behaviors for one descriptor kind and is selected from a
// Registry by priority, lowest first.
//
// The built-in strategies compute with the same primitives as the
// calculators in package unit and return identical results. New behaviors
// can be added by registering a strategy without touching the calculators.
package strategy
