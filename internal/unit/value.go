package unit

// SizeValue names a size behavior.
type SizeValue uint8

const (
	SizeBasis SizeValue = iota // Extent of the measurement basis
	SizeFill
	SizeAuto
	SizeParentWidth
	SizeParentHeight
	SizeSceneWidth
	SizeSceneHeight
	SizeViewportWidth
	SizeViewportHeight
	SizeContentWidth
	SizeContentHeight
)

var sizeValueNames = []string{
	SizeBasis:          "basis",
	SizeFill:           "fill",
	SizeAuto:           "auto",
	SizeParentWidth:    "parent-width",
	SizeParentHeight:   "parent-height",
	SizeSceneWidth:     "scene-width",
	SizeSceneHeight:    "scene-height",
	SizeViewportWidth:  "viewport-width",
	SizeViewportHeight: "viewport-height",
	SizeContentWidth:   "content-width",
	SizeContentHeight:  "content-height",
}

func (v SizeValue) String() string { return enumString(sizeValueNames, v, "size-value") }

// ParseSizeValue converts a kebab-case name to a SizeValue.
func ParseSizeValue(s string) (SizeValue, error) {
	return parseNamed[SizeValue](sizeValueNames, s, "size value")
}

// PositionValue names a position behavior.
type PositionValue uint8

const (
	PositionBasis PositionValue = iota // Reference point of the measurement basis
	PositionCenter
	PositionLeft
	PositionRight
	PositionTop
	PositionBottom
	PositionStatic
	PositionRelative
	PositionAbsolute
	PositionFixed
	PositionRandom
	PositionParentLeft
	PositionParentRight
	PositionParentTop
	PositionParentBottom
	PositionParentCenter
	PositionSceneLeft
	PositionSceneRight
	PositionSceneTop
	PositionSceneBottom
	PositionSceneCenter
	PositionViewportLeft
	PositionViewportRight
	PositionViewportTop
	PositionViewportBottom
	PositionViewportCenter
	PositionContentLeft
	PositionContentRight
	PositionContentTop
	PositionContentBottom
	PositionContentCenter
)

var positionValueNames = []string{
	PositionBasis:          "basis",
	PositionCenter:         "center",
	PositionLeft:           "left",
	PositionRight:          "right",
	PositionTop:            "top",
	PositionBottom:         "bottom",
	PositionStatic:         "static",
	PositionRelative:       "relative",
	PositionAbsolute:       "absolute",
	PositionFixed:          "fixed",
	PositionRandom:         "random",
	PositionParentLeft:     "parent-left",
	PositionParentRight:    "parent-right",
	PositionParentTop:      "parent-top",
	PositionParentBottom:   "parent-bottom",
	PositionParentCenter:   "parent-center",
	PositionSceneLeft:      "scene-left",
	PositionSceneRight:     "scene-right",
	PositionSceneTop:       "scene-top",
	PositionSceneBottom:    "scene-bottom",
	PositionSceneCenter:    "scene-center",
	PositionViewportLeft:   "viewport-left",
	PositionViewportRight:  "viewport-right",
	PositionViewportTop:    "viewport-top",
	PositionViewportBottom: "viewport-bottom",
	PositionViewportCenter: "viewport-center",
	PositionContentLeft:    "content-left",
	PositionContentRight:   "content-right",
	PositionContentTop:     "content-top",
	PositionContentBottom:  "content-bottom",
	PositionContentCenter:  "content-center",
}

func (v PositionValue) String() string { return enumString(positionValueNames, v, "position-value") }

// IsKnown reports whether v is one of the named position behaviors.
func (v PositionValue) IsKnown() bool { return int(v) < len(positionValueNames) }

// ParsePositionValue converts a kebab-case name to a PositionValue.
func ParsePositionValue(s string) (PositionValue, error) {
	return parseNamed[PositionValue](positionValueNames, s, "position value")
}

// ScaleValue names a scale behavior.
type ScaleValue uint8

const (
	ScaleBasis ScaleValue = iota // Scale implied by the measurement basis
	ScaleFit
	ScaleStretch
	ScaleFill
	ScaleParent
	ScaleScene
	ScaleViewport
	ScaleContent
	ScaleRandom
	ScaleBreakpoint
	ScaleDevice
)

var scaleValueNames = []string{
	ScaleBasis:      "basis",
	ScaleFit:        "fit",
	ScaleStretch:    "stretch",
	ScaleFill:       "fill",
	ScaleParent:     "parent-scale",
	ScaleScene:      "scene-scale",
	ScaleViewport:   "viewport-scale",
	ScaleContent:    "content-scale",
	ScaleRandom:     "random",
	ScaleBreakpoint: "breakpoint-scale",
	ScaleDevice:     "device-scale",
}

func (v ScaleValue) String() string { return enumString(scaleValueNames, v, "scale-value") }

// ParseScaleValue converts a kebab-case name to a ScaleValue.
func ParseScaleValue(s string) (ScaleValue, error) {
	return parseNamed[ScaleValue](scaleValueNames, s, "scale value")
}
