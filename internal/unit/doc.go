// Package unit converts declarative size, position and scale descriptors into
// numbers against a [layout.Context].
//
// A descriptor pairs a measurement basis (how to measure: pixels, percentage,
// parent-, scene- or viewport-relative) with a [Behavior] (what the value means:
// a literal, a percentage, a named rule such as center or fill, or a scripted
// [Custom] unit). Resolution is a direct dispatch over the behavior; missing
// context rectangles degrade to the layout Default* constants and never fail.
// The only error a calculation can return is [ErrAxisMismatch].
package unit
