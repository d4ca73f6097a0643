// Package unitcalc resolves responsive layout units into pixel values,
// coordinates and scale factors.
//
// Users import this single package for the public API: layout contexts,
// size/position/scale descriptors, the strategy resolvers, config-driven
// construction and validation.
package unitcalc
