package unit

import "github.com/grindlemire/go-unitcalc/internal/layout"

// frame is the context box a reference point is measured on.
type frame uint8

const (
	frameNone frame = iota
	frameStage
	frameParent
	frameScene
	frameViewport
	frameContent
)

var frameNames = []string{
	frameNone:     "none",
	frameStage:    "stage",
	frameParent:   "parent",
	frameScene:    "scene",
	frameViewport: "viewport",
	frameContent:  "content",
}

func (f frame) String() string { return enumString(frameNames, f, "frame") }

// box returns the frame's rectangle and whether it came from the context
// rather than a fallback.
func (f frame) box(ctx layout.Context) (layout.Rect, bool) {
	switch f {
	case frameStage:
		s, ok := ctx.Stage()
		return s.Box(), ok
	case frameParent:
		return ctx.ParentBox()
	case frameScene:
		return ctx.SceneBox()
	case frameViewport:
		return ctx.ViewportBox()
	case frameContent:
		return ctx.ContentBox()
	default:
		return layout.Rect{}, true
	}
}

func (f frame) needs() needs {
	switch f {
	case frameStage:
		return needStage
	case frameParent:
		return needParent
	case frameScene:
		return needScene
	case frameViewport:
		return needViewport
	case frameContent:
		return needContent
	default:
		return 0
	}
}

// edge selects a coordinate on a box.
type edge uint8

const (
	edgeOrigin  edge = iota // Always 0
	edgeLeft                // Left edge
	edgeRight               // Right edge
	edgeTop                 // Top edge
	edgeBottom              // Bottom edge
	edgeCenter              // Center along the resolving axis
	edgeCenterX             // Horizontal center
	edgeCenterY             // Vertical center
)

func (e edge) of(r layout.Rect, axis layout.Dimension) float64 {
	switch e {
	case edgeLeft:
		return r.X
	case edgeRight:
		return r.Right()
	case edgeTop:
		return r.Y
	case edgeBottom:
		return r.Bottom()
	case edgeCenter:
		return r.Center(axis)
	case edgeCenterX:
		return r.CenterX()
	case edgeCenterY:
		return r.CenterY()
	default:
		return 0
	}
}

// anchor is a reference point: an edge of a frame.
type anchor struct {
	frame frame
	edge  edge
}

var basisAnchors = []anchor{
	PositionUnitPixel:           {frameParent, edgeOrigin},
	PositionUnitPercentage:      {frameParent, edgeOrigin},
	PositionUnitParentLeft:      {frameParent, edgeLeft},
	PositionUnitParentRight:     {frameParent, edgeRight},
	PositionUnitParentTop:       {frameParent, edgeTop},
	PositionUnitParentBottom:    {frameParent, edgeBottom},
	PositionUnitParentCenterX:   {frameParent, edgeCenterX},
	PositionUnitParentCenterY:   {frameParent, edgeCenterY},
	PositionUnitSceneLeft:       {frameScene, edgeLeft},
	PositionUnitSceneRight:      {frameScene, edgeRight},
	PositionUnitSceneTop:        {frameScene, edgeTop},
	PositionUnitSceneBottom:     {frameScene, edgeBottom},
	PositionUnitSceneCenterX:    {frameScene, edgeCenterX},
	PositionUnitSceneCenterY:    {frameScene, edgeCenterY},
	PositionUnitViewportLeft:    {frameViewport, edgeLeft},
	PositionUnitViewportRight:   {frameViewport, edgeRight},
	PositionUnitViewportTop:     {frameViewport, edgeTop},
	PositionUnitViewportBottom:  {frameViewport, edgeBottom},
	PositionUnitViewportCenterX: {frameViewport, edgeCenterX},
	PositionUnitViewportCenterY: {frameViewport, edgeCenterY},
}

// anchor returns the reference point named by the basis. Unknown bases
// anchor at the parent origin.
func (u PositionUnit) anchor() anchor {
	if int(u) < len(basisAnchors) {
		return basisAnchors[u]
	}
	return anchor{frameParent, edgeOrigin}
}

// needsReference reports whether resolving the basis reference point reads
// the context at all. Pixel and percentage reference the origin.
func (u PositionUnit) needsReference() needs {
	a := u.anchor()
	if a.edge == edgeOrigin {
		return 0
	}
	return a.frame.needs()
}

var valueAnchors = map[PositionValue]anchor{
	PositionCenter:         {frameStage, edgeCenter},
	PositionLeft:           {frameStage, edgeLeft},
	PositionRight:          {frameStage, edgeRight},
	PositionTop:            {frameStage, edgeTop},
	PositionBottom:         {frameStage, edgeBottom},
	PositionParentLeft:     {frameParent, edgeLeft},
	PositionParentRight:    {frameParent, edgeRight},
	PositionParentTop:      {frameParent, edgeTop},
	PositionParentBottom:   {frameParent, edgeBottom},
	PositionParentCenter:   {frameParent, edgeCenter},
	PositionSceneLeft:      {frameScene, edgeLeft},
	PositionSceneRight:     {frameScene, edgeRight},
	PositionSceneTop:       {frameScene, edgeTop},
	PositionSceneBottom:    {frameScene, edgeBottom},
	PositionSceneCenter:    {frameScene, edgeCenter},
	PositionViewportLeft:   {frameViewport, edgeLeft},
	PositionViewportRight:  {frameViewport, edgeRight},
	PositionViewportTop:    {frameViewport, edgeTop},
	PositionViewportBottom: {frameViewport, edgeBottom},
	PositionViewportCenter: {frameViewport, edgeCenter},
	PositionContentLeft:    {frameContent, edgeLeft},
	PositionContentRight:   {frameContent, edgeRight},
	PositionContentTop:     {frameContent, edgeTop},
	PositionContentBottom:  {frameContent, edgeBottom},
	PositionContentCenter:  {frameContent, edgeCenter},
}

// anchor returns the reference point named by an edge behavior.
func (v PositionValue) anchor() (anchor, bool) {
	a, ok := valueAnchors[v]
	return a, ok
}

// IsEdge reports whether v resolves to an edge or center of a context box.
func (v PositionValue) IsEdge() bool {
	_, ok := valueAnchors[v]
	return ok
}

// IsFlow reports whether v is one of static, relative, absolute or fixed,
// which resolve to the offset alone.
func (v PositionValue) IsFlow() bool {
	switch v {
	case PositionStatic, PositionRelative, PositionAbsolute, PositionFixed:
		return true
	}
	return false
}

// IsParentRelative reports whether the basis references an edge of the
// parent box. Pixel and percentage reference the origin and are not.
func (u PositionUnit) IsParentRelative() bool {
	a := u.anchor()
	return a.frame == frameParent && a.edge != edgeOrigin
}
