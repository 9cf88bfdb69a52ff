package sedml

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type enum interface {
	String() string
	IsValid() bool
}

func TestEnums(t *testing.T) {
	for _, tc := range []struct {
		name    string
		texts   []string
		parse   func(string) enum
		invalid string
	}{
		{"AxisType", axisTypeText, func(s string) enum { return ParseAxisType(s) }, "invalid AxisType value"},
		{"LineType", lineTypeText, func(s string) enum { return ParseLineType(s) }, "invalid LineType value"},
		{"MarkerType", markerTypeText, func(s string) enum { return ParseMarkerType(s) }, "invalid MarkerType value"},
		{"CurveType", curveTypeText, func(s string) enum { return ParseCurveType(s) }, "invalid CurveType value"},
		{"SurfaceType", surfaceTypeText, func(s string) enum { return ParseSurfaceType(s) }, "invalid SurfaceType value"},
		{"ScaleType", scaleTypeText, func(s string) enum { return ParseScaleType(s) }, "invalid ScaleType value"},
		{"ExperimentType", experimentTypeText, func(s string) enum { return ParseExperimentType(s) }, "invalid ExperimentType value"},
		{"MappingType", mappingTypeText, func(s string) enum { return ParseMappingType(s) }, "invalid MappingType value"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			check := assert.New(t)
			for _, text := range tc.texts {
				v := tc.parse(text)
				check.True(v.IsValid(), text)
				check.Equal(text, v.String())
			}
			for _, bad := range []string{"", "bogus", "Linear", " points"} {
				v := tc.parse(bad)
				check.False(v.IsValid(), bad)
				check.Equal(tc.invalid, v.String())
			}
		})
	}
}

func TestEnumOutOfRange(t *testing.T) {
	check := assert.New(t)
	check.Equal("invalid CurveType value", CurveType(42).String())
	check.False(CurveType(42).IsValid())
	check.False(MarkerType(-1).IsValid())
	check.Equal(ScaleTypeLog, ParseScaleType("log"))
}
