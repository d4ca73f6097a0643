// Package expr implements script units: descriptors whose value is a
// JavaScript expression evaluated with goja against the layout context.
//
// The expression sees these globals:
//
//	parent      {x, y, width, height} or null
//	scene       {width, height} or null
//	viewport    {width, height} or null
//	content     {x, y, width, height} or null
//	breakpoint  {name, width, height} or null
//	stage       {width, height}, the scene/viewport fallback chain
//	dimension   "width", "height", "both", "x", "y" or "xy"
//	clamp(v, lo, hi)
//
// and must evaluate to a finite number, for example
//
//	parent ? parent.width / 2 - 8 : stage.width / 4
package expr
