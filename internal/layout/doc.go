// Package layout holds the geometry and the per-calculation layout context that
// unit descriptors are resolved against.
//
// A [Context] is a read-only snapshot of the parent, scene, viewport and content
// rectangles supplied by the host engine. Every field is optional; the fallback
// chains on [Context] ([Context.Stage], [Context.ParentBox], [Context.FillSize], ...)
// degrade to the Default* constants when a rectangle is missing.
// Types are re-exported through the root unitcalc package for public consumption.
package layout
