package unit

// SizeUnit is the measurement basis of a size descriptor.
type SizeUnit uint8

const (
	SizeUnitPixel SizeUnit = iota
	SizeUnitPercentage
	SizeUnitParentWidth
	SizeUnitParentHeight
	SizeUnitSceneWidth
	SizeUnitSceneHeight
	SizeUnitViewportWidth
	SizeUnitViewportHeight
	SizeUnitContentWidth
	SizeUnitContentHeight
)

var sizeUnitNames = []string{
	SizeUnitPixel:          "pixel",
	SizeUnitPercentage:     "percentage",
	SizeUnitParentWidth:    "parent-width",
	SizeUnitParentHeight:   "parent-height",
	SizeUnitSceneWidth:     "scene-width",
	SizeUnitSceneHeight:    "scene-height",
	SizeUnitViewportWidth:  "viewport-width",
	SizeUnitViewportHeight: "viewport-height",
	SizeUnitContentWidth:   "content-width",
	SizeUnitContentHeight:  "content-height",
}

func (u SizeUnit) String() string { return enumString(sizeUnitNames, u, "size-unit") }

// ParseSizeUnit converts a kebab-case name to a SizeUnit.
func ParseSizeUnit(s string) (SizeUnit, error) {
	return parseNamed[SizeUnit](sizeUnitNames, s, "size unit")
}

// PositionUnit is the measurement basis of a position descriptor. Each
// non-pixel basis names a reference point on the parent, scene or viewport box.
type PositionUnit uint8

const (
	PositionUnitPixel PositionUnit = iota
	PositionUnitPercentage
	PositionUnitParentLeft
	PositionUnitParentRight
	PositionUnitParentTop
	PositionUnitParentBottom
	PositionUnitParentCenterX
	PositionUnitParentCenterY
	PositionUnitSceneLeft
	PositionUnitSceneRight
	PositionUnitSceneTop
	PositionUnitSceneBottom
	PositionUnitSceneCenterX
	PositionUnitSceneCenterY
	PositionUnitViewportLeft
	PositionUnitViewportRight
	PositionUnitViewportTop
	PositionUnitViewportBottom
	PositionUnitViewportCenterX
	PositionUnitViewportCenterY
)

var positionUnitNames = []string{
	PositionUnitPixel:           "pixel",
	PositionUnitPercentage:      "percentage",
	PositionUnitParentLeft:      "parent-left",
	PositionUnitParentRight:     "parent-right",
	PositionUnitParentTop:       "parent-top",
	PositionUnitParentBottom:    "parent-bottom",
	PositionUnitParentCenterX:   "parent-center-x",
	PositionUnitParentCenterY:   "parent-center-y",
	PositionUnitSceneLeft:       "scene-left",
	PositionUnitSceneRight:      "scene-right",
	PositionUnitSceneTop:        "scene-top",
	PositionUnitSceneBottom:     "scene-bottom",
	PositionUnitSceneCenterX:    "scene-center-x",
	PositionUnitSceneCenterY:    "scene-center-y",
	PositionUnitViewportLeft:    "viewport-left",
	PositionUnitViewportRight:   "viewport-right",
	PositionUnitViewportTop:     "viewport-top",
	PositionUnitViewportBottom:  "viewport-bottom",
	PositionUnitViewportCenterX: "viewport-center-x",
	PositionUnitViewportCenterY: "viewport-center-y",
}

func (u PositionUnit) String() string { return enumString(positionUnitNames, u, "position-unit") }

// ParsePositionUnit converts a kebab-case name to a PositionUnit.
func ParsePositionUnit(s string) (PositionUnit, error) {
	return parseNamed[PositionUnit](positionUnitNames, s, "position unit")
}

// ScaleUnit is the measurement basis of a scale descriptor.
type ScaleUnit uint8

const (
	ScaleUnitFactor ScaleUnit = iota
	ScaleUnitPercentage
	ScaleUnitParent
	ScaleUnitScene
	ScaleUnitViewport
	ScaleUnitContent
)

var scaleUnitNames = []string{
	ScaleUnitFactor:     "factor",
	ScaleUnitPercentage: "percentage",
	ScaleUnitParent:     "parent",
	ScaleUnitScene:      "scene",
	ScaleUnitViewport:   "viewport",
	ScaleUnitContent:    "content",
}

func (u ScaleUnit) String() string { return enumString(scaleUnitNames, u, "scale-unit") }

// ParseScaleUnit converts a kebab-case name to a ScaleUnit.
func ParseScaleUnit(s string) (ScaleUnit, error) {
	return parseNamed[ScaleUnit](scaleUnitNames, s, "scale unit")
}
