package sedml

import (
	"github.com/andaru/sedml/stream"
)

// AbstractCurve is a curve or shaded area of a 2D plot
type AbstractCurve interface {
	Element
	XDataReference() string
	LogX() bool
	Order() int
	Style() string
	YAxis() string
}

func curveFactory(name string, level, version int) (AbstractCurve, bool) {
	switch name {
	case "curve":
		return NewCurve(level, version), true
	case "shadedArea":
		return NewShadedArea(level, version), true
	}
	return nil, false
}

type curveBase struct {
	Base
	logX           boolAttr
	xDataReference string
	order          intAttr
	style          string
	yAxis          string
}

func (c *curveBase) LogX() bool         { return c.logX.get() }
func (c *curveBase) IsSetLogX() bool    { return c.logX.set }
func (c *curveBase) SetLogX(log bool)   { c.logX.put(log) }
func (c *curveBase) UnsetLogX()         { c.logX = boolAttr{} }
func (c *curveBase) Order() int         { return c.order.get() }
func (c *curveBase) IsSetOrder() bool   { return c.order.set }
func (c *curveBase) SetOrder(order int) { c.order.put(order) }
func (c *curveBase) UnsetOrder()        { c.order = intAttr{} }

// XDataReference returns the id of the data generator for the x values
func (c *curveBase) XDataReference() string             { return c.xDataReference }
func (c *curveBase) IsSetXDataReference() bool          { return c.xDataReference != "" }
func (c *curveBase) SetXDataReference(ref string) error { return setSId(&c.xDataReference, ref) }
func (c *curveBase) UnsetXDataReference()               { c.xDataReference = "" }
func (c *curveBase) Style() string                      { return c.style }
func (c *curveBase) IsSetStyle() bool                   { return c.style != "" }
func (c *curveBase) SetStyle(style string) error        { return setSId(&c.style, style) }
func (c *curveBase) UnsetStyle()                        { c.style = "" }

// YAxis returns which y axis the curve is drawn against, "left" or "right"
func (c *curveBase) YAxis() string         { return c.yAxis }
func (c *curveBase) IsSetYAxis() bool      { return c.yAxis != "" }
func (c *curveBase) SetYAxis(yAxis string) { c.yAxis = yAxis }
func (c *curveBase) UnsetYAxis()           { c.yAxis = "" }

func (c *curveBase) renameRefs(oldID, newID string) {
	renameRef(&c.xDataReference, oldID, newID)
	renameRef(&c.style, oldID, newID)
}

func (c *curveBase) readAttributes(a *stream.Attributes) {
	c.Base.readAttributes(a)
	c.logX.read(a.Bool("logX", false))
	c.xDataReference, _ = a.SId("xDataReference", true)
	c.order.read(a.Int("order", false))
	c.style, _ = a.SId("style", false)
	c.yAxis, _ = a.String("yAxis", false)
}

func (c *curveBase) writeAttributes(a *stream.AttrList) {
	c.Base.writeAttributes(a)
	c.logX.write(a, "logX")
	writeString(a, "xDataReference", c.xDataReference)
	c.order.write(a, "order")
	writeString(a, "style", c.style)
	writeString(a, "yAxis", c.yAxis)
}

// Curve plots y data against x data, with optional error bars
type Curve struct {
	curveBase
	logY           boolAttr
	yDataReference string
	curveType      CurveType
	xErrorUpper    string
	xErrorLower    string
	yErrorUpper    string
	yErrorLower    string
}

func NewCurve(level, version int) *Curve {
	c := &Curve{}
	c.init(c, level, version)
	return c
}

func (c *Curve) Clone() *Curve {
	x := *c
	x.Base = c.Base.cloned(&x)
	return &x
}

func (c *Curve) cloneElement() Element { return c.Clone() }
func (c *Curve) ElementName() string   { return "curve" }
func (c *Curve) TypeCode() TypeCode    { return TypeCurve }

func (c *Curve) LogY() bool                         { return c.logY.get() }
func (c *Curve) IsSetLogY() bool                    { return c.logY.set }
func (c *Curve) SetLogY(log bool)                   { c.logY.put(log) }
func (c *Curve) UnsetLogY()                         { c.logY = boolAttr{} }
func (c *Curve) YDataReference() string             { return c.yDataReference }
func (c *Curve) IsSetYDataReference() bool          { return c.yDataReference != "" }
func (c *Curve) SetYDataReference(ref string) error { return setSId(&c.yDataReference, ref) }
func (c *Curve) UnsetYDataReference()               { c.yDataReference = "" }

func (c *Curve) Type() CurveType                { return c.curveType }
func (c *Curve) IsSetType() bool                { return c.curveType != CurveTypeInvalid }
func (c *Curve) SetType(t CurveType) error      { return setEnum(&c.curveType, t) }
func (c *Curve) TypeAsString() string           { return c.curveType.String() }
func (c *Curve) SetTypeAsString(s string) error { return setEnum(&c.curveType, ParseCurveType(s)) }
func (c *Curve) UnsetType()                     { c.curveType = CurveTypeInvalid }

// The error references name data generators giving the extent of the
// error bars on either side of each point.
func (c *Curve) XErrorUpper() string             { return c.xErrorUpper }
func (c *Curve) IsSetXErrorUpper() bool          { return c.xErrorUpper != "" }
func (c *Curve) SetXErrorUpper(ref string) error { return setSId(&c.xErrorUpper, ref) }
func (c *Curve) UnsetXErrorUpper()               { c.xErrorUpper = "" }
func (c *Curve) XErrorLower() string             { return c.xErrorLower }
func (c *Curve) IsSetXErrorLower() bool          { return c.xErrorLower != "" }
func (c *Curve) SetXErrorLower(ref string) error { return setSId(&c.xErrorLower, ref) }
func (c *Curve) UnsetXErrorLower()               { c.xErrorLower = "" }
func (c *Curve) YErrorUpper() string             { return c.yErrorUpper }
func (c *Curve) IsSetYErrorUpper() bool          { return c.yErrorUpper != "" }
func (c *Curve) SetYErrorUpper(ref string) error { return setSId(&c.yErrorUpper, ref) }
func (c *Curve) UnsetYErrorUpper()               { c.yErrorUpper = "" }
func (c *Curve) YErrorLower() string             { return c.yErrorLower }
func (c *Curve) IsSetYErrorLower() bool          { return c.yErrorLower != "" }
func (c *Curve) SetYErrorLower(ref string) error { return setSId(&c.yErrorLower, ref) }
func (c *Curve) UnsetYErrorLower()               { c.yErrorLower = "" }

func (c *Curve) HasRequiredAttributes() bool {
	return c.IsSetID() && c.IsSetXDataReference() && c.IsSetYDataReference()
}

func (c *Curve) renameRefs(oldID, newID string) {
	c.curveBase.renameRefs(oldID, newID)
	for _, ref := range []*string{&c.yDataReference, &c.xErrorUpper, &c.xErrorLower, &c.yErrorUpper, &c.yErrorLower} {
		renameRef(ref, oldID, newID)
	}
}

func (c *Curve) readAttributes(a *stream.Attributes) {
	c.curveBase.readAttributes(a)
	a.Required("id")
	c.logY.read(a.Bool("logY", false))
	c.yDataReference, _ = a.SId("yDataReference", true)
	c.curveType = readEnum(a, "type", false, ParseCurveType)
	c.xErrorUpper, _ = a.SId("xErrorUpper", false)
	c.xErrorLower, _ = a.SId("xErrorLower", false)
	c.yErrorUpper, _ = a.SId("yErrorUpper", false)
	c.yErrorLower, _ = a.SId("yErrorLower", false)
}

func (c *Curve) writeAttributes(a *stream.AttrList) {
	c.curveBase.writeAttributes(a)
	c.logY.write(a, "logY")
	writeString(a, "yDataReference", c.yDataReference)
	writeEnum(a, "type", c.curveType)
	writeString(a, "xErrorUpper", c.xErrorUpper)
	writeString(a, "xErrorLower", c.xErrorLower)
	writeString(a, "yErrorUpper", c.yErrorUpper)
	writeString(a, "yErrorLower", c.yErrorLower)
}

// ShadedArea fills the region between two y data series
type ShadedArea struct {
	curveBase
	yDataReferenceFrom string
	yDataReferenceTo   string
}

func NewShadedArea(level, version int) *ShadedArea {
	s := &ShadedArea{}
	s.init(s, level, version)
	return s
}

func (s *ShadedArea) Clone() *ShadedArea {
	c := *s
	c.Base = s.Base.cloned(&c)
	return &c
}

func (s *ShadedArea) cloneElement() Element { return s.Clone() }
func (s *ShadedArea) ElementName() string   { return "shadedArea" }
func (s *ShadedArea) TypeCode() TypeCode    { return TypeShadedArea }

func (s *ShadedArea) YDataReferenceFrom() string    { return s.yDataReferenceFrom }
func (s *ShadedArea) IsSetYDataReferenceFrom() bool { return s.yDataReferenceFrom != "" }
func (s *ShadedArea) SetYDataReferenceFrom(ref string) error {
	return setSId(&s.yDataReferenceFrom, ref)
}
func (s *ShadedArea) UnsetYDataReferenceFrom()    { s.yDataReferenceFrom = "" }
func (s *ShadedArea) YDataReferenceTo() string    { return s.yDataReferenceTo }
func (s *ShadedArea) IsSetYDataReferenceTo() bool { return s.yDataReferenceTo != "" }
func (s *ShadedArea) SetYDataReferenceTo(ref string) error {
	return setSId(&s.yDataReferenceTo, ref)
}
func (s *ShadedArea) UnsetYDataReferenceTo() { s.yDataReferenceTo = "" }

func (s *ShadedArea) HasRequiredAttributes() bool {
	return s.IsSetID() && s.IsSetXDataReference() && s.IsSetYDataReferenceFrom() && s.IsSetYDataReferenceTo()
}

func (s *ShadedArea) renameRefs(oldID, newID string) {
	s.curveBase.renameRefs(oldID, newID)
	renameRef(&s.yDataReferenceFrom, oldID, newID)
	renameRef(&s.yDataReferenceTo, oldID, newID)
}

func (s *ShadedArea) readAttributes(a *stream.Attributes) {
	s.curveBase.readAttributes(a)
	a.Required("id")
	s.yDataReferenceFrom, _ = a.SId("yDataReferenceFrom", true)
	s.yDataReferenceTo, _ = a.SId("yDataReferenceTo", true)
}

func (s *ShadedArea) writeAttributes(a *stream.AttrList) {
	s.curveBase.writeAttributes(a)
	writeString(a, "yDataReferenceFrom", s.yDataReferenceFrom)
	writeString(a, "yDataReferenceTo", s.yDataReferenceTo)
}

// Surface plots z data over x and y data
type Surface struct {
	Base
	xDataReference string
	yDataReference string
	zDataReference string
	logX           boolAttr
	logY           boolAttr
	logZ           boolAttr
	style          string
	surfaceType    SurfaceType
	order          intAttr
}

func NewSurface(level, version int) *Surface {
	s := &Surface{}
	s.init(s, level, version)
	return s
}

func (s *Surface) Clone() *Surface {
	c := *s
	c.Base = s.Base.cloned(&c)
	return &c
}

func (s *Surface) cloneElement() Element { return s.Clone() }
func (s *Surface) ElementName() string   { return "surface" }
func (s *Surface) TypeCode() TypeCode    { return TypeSurface }

func (s *Surface) XDataReference() string             { return s.xDataReference }
func (s *Surface) IsSetXDataReference() bool          { return s.xDataReference != "" }
func (s *Surface) SetXDataReference(ref string) error { return setSId(&s.xDataReference, ref) }
func (s *Surface) UnsetXDataReference()               { s.xDataReference = "" }
func (s *Surface) YDataReference() string             { return s.yDataReference }
func (s *Surface) IsSetYDataReference() bool          { return s.yDataReference != "" }
func (s *Surface) SetYDataReference(ref string) error { return setSId(&s.yDataReference, ref) }
func (s *Surface) UnsetYDataReference()               { s.yDataReference = "" }
func (s *Surface) ZDataReference() string             { return s.zDataReference }
func (s *Surface) IsSetZDataReference() bool          { return s.zDataReference != "" }
func (s *Surface) SetZDataReference(ref string) error { return setSId(&s.zDataReference, ref) }
func (s *Surface) UnsetZDataReference()               { s.zDataReference = "" }

func (s *Surface) LogX() bool       { return s.logX.get() }
func (s *Surface) IsSetLogX() bool  { return s.logX.set }
func (s *Surface) SetLogX(log bool) { s.logX.put(log) }
func (s *Surface) UnsetLogX()       { s.logX = boolAttr{} }
func (s *Surface) LogY() bool       { return s.logY.get() }
func (s *Surface) IsSetLogY() bool  { return s.logY.set }
func (s *Surface) SetLogY(log bool) { s.logY.put(log) }
func (s *Surface) UnsetLogY()       { s.logY = boolAttr{} }
func (s *Surface) LogZ() bool       { return s.logZ.get() }
func (s *Surface) IsSetLogZ() bool  { return s.logZ.set }
func (s *Surface) SetLogZ(log bool) { s.logZ.put(log) }
func (s *Surface) UnsetLogZ()       { s.logZ = boolAttr{} }

func (s *Surface) Style() string               { return s.style }
func (s *Surface) IsSetStyle() bool            { return s.style != "" }
func (s *Surface) SetStyle(style string) error { return setSId(&s.style, style) }
func (s *Surface) UnsetStyle()                 { s.style = "" }
func (s *Surface) Order() int                  { return s.order.get() }
func (s *Surface) IsSetOrder() bool            { return s.order.set }
func (s *Surface) SetOrder(order int)          { s.order.put(order) }
func (s *Surface) UnsetOrder()                 { s.order = intAttr{} }

func (s *Surface) Type() SurfaceType           { return s.surfaceType }
func (s *Surface) IsSetType() bool             { return s.surfaceType != SurfaceTypeInvalid }
func (s *Surface) SetType(t SurfaceType) error { return setEnum(&s.surfaceType, t) }
func (s *Surface) TypeAsString() string        { return s.surfaceType.String() }
func (s *Surface) SetTypeAsString(v string) error {
	return setEnum(&s.surfaceType, ParseSurfaceType(v))
}
func (s *Surface) UnsetType() { s.surfaceType = SurfaceTypeInvalid }

func (s *Surface) HasRequiredAttributes() bool {
	return s.IsSetID() && s.IsSetXDataReference() && s.IsSetYDataReference() && s.IsSetZDataReference()
}

func (s *Surface) renameRefs(oldID, newID string) {
	for _, ref := range []*string{&s.xDataReference, &s.yDataReference, &s.zDataReference, &s.style} {
		renameRef(ref, oldID, newID)
	}
}

func (s *Surface) readAttributes(a *stream.Attributes) {
	s.Base.readAttributes(a)
	a.Required("id")
	s.xDataReference, _ = a.SId("xDataReference", true)
	s.yDataReference, _ = a.SId("yDataReference", true)
	s.zDataReference, _ = a.SId("zDataReference", true)
	s.logX.read(a.Bool("logX", false))
	s.logY.read(a.Bool("logY", false))
	s.logZ.read(a.Bool("logZ", false))
	s.style, _ = a.SId("style", false)
	s.surfaceType = readEnum(a, "type", false, ParseSurfaceType)
	s.order.read(a.Int("order", false))
}

func (s *Surface) writeAttributes(a *stream.AttrList) {
	s.Base.writeAttributes(a)
	writeString(a, "xDataReference", s.xDataReference)
	writeString(a, "yDataReference", s.yDataReference)
	writeString(a, "zDataReference", s.zDataReference)
	s.logX.write(a, "logX")
	s.logY.write(a, "logY")
	s.logZ.write(a, "logZ")
	writeString(a, "style", s.style)
	writeEnum(a, "type", s.surfaceType)
	s.order.write(a, "order")
}
