package sedml

import (
	"encoding/xml"

	"github.com/andaru/sedml/stream"
)

// Style sets how curves, surfaces and axes are drawn. A style may
// extend a base style.
type Style struct {
	Base
	baseStyle string
	line      *Line
	marker    *Marker
	fill      *Fill
}

func NewStyle(level, version int) *Style {
	s := &Style{}
	s.init(s, level, version)
	return s
}

func (s *Style) Clone() *Style {
	c := *s
	c.Base = s.Base.cloned(&c)
	c.line, c.marker, c.fill = nil, nil, nil
	if s.line != nil {
		c.line = s.line.Clone()
		c.line.parent = &c
	}
	if s.marker != nil {
		c.marker = s.marker.Clone()
		c.marker.parent = &c
	}
	if s.fill != nil {
		c.fill = s.fill.Clone()
		c.fill.parent = &c
	}
	return &c
}

func (s *Style) cloneElement() Element { return s.Clone() }
func (s *Style) ElementName() string   { return "style" }
func (s *Style) TypeCode() TypeCode    { return TypeStyle }

// BaseStyle returns the id of the style this one extends
func (s *Style) BaseStyle() string               { return s.baseStyle }
func (s *Style) IsSetBaseStyle() bool            { return s.baseStyle != "" }
func (s *Style) SetBaseStyle(style string) error { return setSId(&s.baseStyle, style) }
func (s *Style) UnsetBaseStyle()                 { s.baseStyle = "" }

func (s *Style) Line() *Line               { return s.line }
func (s *Style) IsSetLine() bool           { return s.line != nil }
func (s *Style) SetLine(l *Line) error     { return setChild(s, &s.line, l) }
func (s *Style) CreateLine() *Line         { return createChild(s, &s.line, NewLine) }
func (s *Style) UnsetLine()                { s.line = nil }
func (s *Style) Marker() *Marker           { return s.marker }
func (s *Style) IsSetMarker() bool         { return s.marker != nil }
func (s *Style) SetMarker(m *Marker) error { return setChild(s, &s.marker, m) }
func (s *Style) CreateMarker() *Marker     { return createChild(s, &s.marker, NewMarker) }
func (s *Style) UnsetMarker()              { s.marker = nil }
func (s *Style) Fill() *Fill               { return s.fill }
func (s *Style) IsSetFill() bool           { return s.fill != nil }
func (s *Style) SetFill(f *Fill) error     { return setChild(s, &s.fill, f) }
func (s *Style) CreateFill() *Fill         { return createChild(s, &s.fill, NewFill) }
func (s *Style) UnsetFill()                { s.fill = nil }

func (s *Style) HasRequiredAttributes() bool { return s.IsSetID() }

func (s *Style) children() []Element { return nonNil(s.line, s.marker, s.fill) }

func (s *Style) renameRefs(oldID, newID string) { renameRef(&s.baseStyle, oldID, newID) }

func (s *Style) readAttributes(a *stream.Attributes) {
	s.Base.readAttributes(a)
	a.Required("id")
	s.baseStyle, _ = a.SId("baseStyle", false)
}

func (s *Style) writeAttributes(a *stream.AttrList) {
	s.Base.writeAttributes(a)
	writeString(a, "baseStyle", s.baseStyle)
}

func (s *Style) readChild(r *reader, se xml.StartElement) (bool, error) {
	switch se.Name.Local {
	case "line":
		return true, readSingle(r, s, &s.line, se, NewLine)
	case "marker":
		return true, readSingle(r, s, &s.marker, se, NewMarker)
	case "fill":
		return true, readSingle(r, s, &s.fill, se, NewFill)
	}
	return false, nil
}

func (s *Style) writeElements(w *writer) {
	w.single(s.line)
	w.single(s.marker)
	w.single(s.fill)
}

// Line is the line part of a style
type Line struct {
	Base
	lineType  LineType
	color     string
	thickness floatAttr
}

func NewLine(level, version int) *Line {
	l := &Line{}
	l.init(l, level, version)
	return l
}

func (l *Line) Clone() *Line {
	c := *l
	c.Base = l.Base.cloned(&c)
	return &c
}

func (l *Line) cloneElement() Element { return l.Clone() }
func (l *Line) ElementName() string   { return "line" }
func (l *Line) TypeCode() TypeCode    { return TypeLine }

func (l *Line) Type() LineType                 { return l.lineType }
func (l *Line) IsSetType() bool                { return l.lineType != LineTypeInvalid }
func (l *Line) SetType(t LineType) error       { return setEnum(&l.lineType, t) }
func (l *Line) TypeAsString() string           { return l.lineType.String() }
func (l *Line) SetTypeAsString(s string) error { return setEnum(&l.lineType, ParseLineType(s)) }
func (l *Line) UnsetType()                     { l.lineType = LineTypeInvalid }

// Color returns the line colour as hexadecimal RGB or RGBA
func (l *Line) Color() string          { return l.color }
func (l *Line) IsSetColor() bool       { return l.color != "" }
func (l *Line) SetColor(color string)  { l.color = color }
func (l *Line) UnsetColor()            { l.color = "" }
func (l *Line) Thickness() float64     { return l.thickness.get() }
func (l *Line) IsSetThickness() bool   { return l.thickness.set }
func (l *Line) SetThickness(t float64) { l.thickness.put(t) }
func (l *Line) UnsetThickness()        { l.thickness = floatAttr{} }

func (l *Line) readAttributes(a *stream.Attributes) {
	l.Base.readAttributes(a)
	l.lineType = readEnum(a, "type", false, ParseLineType)
	l.color, _ = a.String("color", false)
	l.thickness.read(a.Float("thickness", false))
}

func (l *Line) writeAttributes(a *stream.AttrList) {
	l.Base.writeAttributes(a)
	writeEnum(a, "type", l.lineType)
	writeString(a, "color", l.color)
	l.thickness.write(a, "thickness")
}

// Marker is the data point marker part of a style
type Marker struct {
	Base
	size          floatAttr
	markerType    MarkerType
	fill          string
	lineColor     string
	lineThickness floatAttr
}

func NewMarker(level, version int) *Marker {
	m := &Marker{}
	m.init(m, level, version)
	return m
}

func (m *Marker) Clone() *Marker {
	c := *m
	c.Base = m.Base.cloned(&c)
	return &c
}

func (m *Marker) cloneElement() Element { return m.Clone() }
func (m *Marker) ElementName() string   { return "marker" }
func (m *Marker) TypeCode() TypeCode    { return TypeMarker }

func (m *Marker) Size() float64     { return m.size.get() }
func (m *Marker) IsSetSize() bool   { return m.size.set }
func (m *Marker) SetSize(s float64) { m.size.put(s) }
func (m *Marker) UnsetSize()        { m.size = floatAttr{} }

func (m *Marker) Type() MarkerType           { return m.markerType }
func (m *Marker) IsSetType() bool            { return m.markerType != MarkerTypeInvalid }
func (m *Marker) SetType(t MarkerType) error { return setEnum(&m.markerType, t) }
func (m *Marker) TypeAsString() string       { return m.markerType.String() }
func (m *Marker) SetTypeAsString(s string) error {
	return setEnum(&m.markerType, ParseMarkerType(s))
}
func (m *Marker) UnsetType() { m.markerType = MarkerTypeInvalid }

// Fill returns the marker's fill colour
func (m *Marker) Fill() string               { return m.fill }
func (m *Marker) IsSetFill() bool            { return m.fill != "" }
func (m *Marker) SetFill(color string)       { m.fill = color }
func (m *Marker) UnsetFill()                 { m.fill = "" }
func (m *Marker) LineColor() string          { return m.lineColor }
func (m *Marker) IsSetLineColor() bool       { return m.lineColor != "" }
func (m *Marker) SetLineColor(color string)  { m.lineColor = color }
func (m *Marker) UnsetLineColor()            { m.lineColor = "" }
func (m *Marker) LineThickness() float64     { return m.lineThickness.get() }
func (m *Marker) IsSetLineThickness() bool   { return m.lineThickness.set }
func (m *Marker) SetLineThickness(t float64) { m.lineThickness.put(t) }
func (m *Marker) UnsetLineThickness()        { m.lineThickness = floatAttr{} }

func (m *Marker) readAttributes(a *stream.Attributes) {
	m.Base.readAttributes(a)
	m.size.read(a.Float("size", false))
	m.markerType = readEnum(a, "type", false, ParseMarkerType)
	m.fill, _ = a.String("fill", false)
	m.lineColor, _ = a.String("lineColor", false)
	m.lineThickness.read(a.Float("lineThickness", false))
}

func (m *Marker) writeAttributes(a *stream.AttrList) {
	m.Base.writeAttributes(a)
	m.size.write(a, "size")
	writeEnum(a, "type", m.markerType)
	writeString(a, "fill", m.fill)
	writeString(a, "lineColor", m.lineColor)
	m.lineThickness.write(a, "lineThickness")
}

// Fill is the area fill part of a style
type Fill struct {
	Base
	color string
}

func NewFill(level, version int) *Fill {
	f := &Fill{}
	f.init(f, level, version)
	return f
}

func (f *Fill) Clone() *Fill {
	c := *f
	c.Base = f.Base.cloned(&c)
	return &c
}

func (f *Fill) cloneElement() Element { return f.Clone() }
func (f *Fill) ElementName() string   { return "fill" }
func (f *Fill) TypeCode() TypeCode    { return TypeFill }

func (f *Fill) Color() string         { return f.color }
func (f *Fill) IsSetColor() bool      { return f.color != "" }
func (f *Fill) SetColor(color string) { f.color = color }
func (f *Fill) UnsetColor()           { f.color = "" }

func (f *Fill) HasRequiredAttributes() bool { return f.IsSetColor() }

func (f *Fill) readAttributes(a *stream.Attributes) {
	f.Base.readAttributes(a)
	f.color, _ = a.String("color", true)
}

func (f *Fill) writeAttributes(a *stream.AttrList) {
	f.Base.writeAttributes(a)
	writeString(a, "color", f.color)
}
