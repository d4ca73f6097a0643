// Package factory builds unit descriptors from typed arguments, from flat
// Config records, and from sheet files that bundle a layout context with a
// list of units.
package factory
