package sedml

// Enumerated attribute types. The zero value of each is its Invalid
// sentinel, which is also what an unset attribute holds. Lexemes are
// matched case-sensitively.

func enumString(text []string, v int, enum string) string {
	if v >= 1 && v <= len(text) {
		return text[v-1]
	}
	return "invalid " + enum + " value"
}

func enumParse(text []string, s string) int {
	for i, t := range text {
		if t == s {
			return i + 1
		}
	}
	return 0
}

// AxisType is the scale of a plot axis
type AxisType int

const (
	AxisTypeInvalid AxisType = iota
	AxisTypeLinear
	AxisTypeLog10
)

var axisTypeText = []string{"linear", "log10"}

func (t AxisType) String() string     { return enumString(axisTypeText, int(t), "AxisType") }
func (t AxisType) IsValid() bool      { return t > AxisTypeInvalid && int(t) <= len(axisTypeText) }
func ParseAxisType(s string) AxisType { return AxisType(enumParse(axisTypeText, s)) }

// LineType is the dash pattern of a line
type LineType int

const (
	LineTypeInvalid LineType = iota
	LineTypeNone
	LineTypeSolid
	LineTypeDash
	LineTypeDot
	LineTypeDashDot
	LineTypeDashDotDot
)

var lineTypeText = []string{"none", "solid", "dash", "dot", "dashDot", "dashDotDot"}

func (t LineType) String() string     { return enumString(lineTypeText, int(t), "LineType") }
func (t LineType) IsValid() bool      { return t > LineTypeInvalid && int(t) <= len(lineTypeText) }
func ParseLineType(s string) LineType { return LineType(enumParse(lineTypeText, s)) }

// MarkerType is the symbol drawn at data points
type MarkerType int

const (
	MarkerTypeInvalid MarkerType = iota
	MarkerTypeNone
	MarkerTypeSquare
	MarkerTypeCircle
	MarkerTypeDiamond
	MarkerTypeXCross
	MarkerTypePlus
	MarkerTypeStar
	MarkerTypeTriangleUp
	MarkerTypeTriangleDown
	MarkerTypeTriangleLeft
	MarkerTypeTriangleRight
	MarkerTypeHDash
	MarkerTypeVDash
)

var markerTypeText = []string{
	"none", "square", "circle", "diamond", "xCross", "plus", "star",
	"triangleUp", "triangleDown", "triangleLeft", "triangleRight", "hDash", "vDash",
}

func (t MarkerType) String() string       { return enumString(markerTypeText, int(t), "MarkerType") }
func (t MarkerType) IsValid() bool        { return t > MarkerTypeInvalid && int(t) <= len(markerTypeText) }
func ParseMarkerType(s string) MarkerType { return MarkerType(enumParse(markerTypeText, s)) }

// CurveType is how a curve's data is drawn
type CurveType int

const (
	CurveTypeInvalid CurveType = iota
	CurveTypePoints
	CurveTypeBar
	CurveTypeBarStacked
	CurveTypeHorizontalBar
	CurveTypeHorizontalBarStacked
)

var curveTypeText = []string{"points", "bar", "barStacked", "horizontalBar", "horizontalBarStacked"}

func (t CurveType) String() string      { return enumString(curveTypeText, int(t), "CurveType") }
func (t CurveType) IsValid() bool       { return t > CurveTypeInvalid && int(t) <= len(curveTypeText) }
func ParseCurveType(s string) CurveType { return CurveType(enumParse(curveTypeText, s)) }

// SurfaceType is how a surface's data is drawn
type SurfaceType int

const (
	SurfaceTypeInvalid SurfaceType = iota
	SurfaceTypeParametricCurve
	SurfaceTypeSurfaceMesh
	SurfaceTypeSurfaceContour
	SurfaceTypeContour
	SurfaceTypeHeatMap
	SurfaceTypeStackedCurves
	SurfaceTypeBar
)

var surfaceTypeText = []string{
	"parametricCurve", "surfaceMesh", "surfaceContour", "contour", "heatMap", "stackedCurves", "bar",
}

func (t SurfaceType) String() string { return enumString(surfaceTypeText, int(t), "SurfaceType") }
func (t SurfaceType) IsValid() bool {
	return t > SurfaceTypeInvalid && int(t) <= len(surfaceTypeText)
}
func ParseSurfaceType(s string) SurfaceType { return SurfaceType(enumParse(surfaceTypeText, s)) }

// ScaleType is the scale on which a parameter is adjusted
type ScaleType int

const (
	ScaleTypeInvalid ScaleType = iota
	ScaleTypeLinear
	ScaleTypeLog
	ScaleTypeLog10
)

var scaleTypeText = []string{"linear", "log", "log10"}

func (t ScaleType) String() string      { return enumString(scaleTypeText, int(t), "ScaleType") }
func (t ScaleType) IsValid() bool       { return t > ScaleTypeInvalid && int(t) <= len(scaleTypeText) }
func ParseScaleType(s string) ScaleType { return ScaleType(enumParse(scaleTypeText, s)) }

// ExperimentType is the kind of experiment a fit is made against
type ExperimentType int

const (
	ExperimentTypeInvalid ExperimentType = iota
	ExperimentTypeSteadyState
	ExperimentTypeTimeCourse
)

var experimentTypeText = []string{"steadyState", "timeCourse"}

func (t ExperimentType) String() string {
	return enumString(experimentTypeText, int(t), "ExperimentType")
}
func (t ExperimentType) IsValid() bool {
	return t > ExperimentTypeInvalid && int(t) <= len(experimentTypeText)
}
func ParseExperimentType(s string) ExperimentType {
	return ExperimentType(enumParse(experimentTypeText, s))
}

// MappingType is the role of an experimental data column in a fit
type MappingType int

const (
	MappingTypeInvalid MappingType = iota
	MappingTypeTime
	MappingTypeExperimentalCondition
	MappingTypeObservable
)

var mappingTypeText = []string{"time", "experimentalCondition", "observable"}

func (t MappingType) String() string { return enumString(mappingTypeText, int(t), "MappingType") }
func (t MappingType) IsValid() bool {
	return t > MappingTypeInvalid && int(t) <= len(mappingTypeText)
}
func ParseMappingType(s string) MappingType { return MappingType(enumParse(mappingTypeText, s)) }
