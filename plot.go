package sedml

import (
	"encoding/xml"

	"github.com/andaru/sedml/stream"
)

// plotBase holds what 2D and 3D plots share
type plotBase struct {
	outputBase
	legend boolAttr
	height floatAttr
	width  floatAttr
	xAxis  *Axis
	yAxis  *Axis
}

func (p *plotBase) clonedAxes(self Element) {
	p.xAxis = cloneAxis(self, p.xAxis)
	p.yAxis = cloneAxis(self, p.yAxis)
}

func cloneAxis(parent Element, a *Axis) *Axis {
	if a == nil {
		return nil
	}
	c := a.Clone()
	c.parent = parent
	return c
}

func (p *plotBase) Legend() bool        { return p.legend.get() }
func (p *plotBase) IsSetLegend() bool   { return p.legend.set }
func (p *plotBase) SetLegend(l bool)    { p.legend.put(l) }
func (p *plotBase) UnsetLegend()        { p.legend = boolAttr{} }
func (p *plotBase) Height() float64     { return p.height.get() }
func (p *plotBase) IsSetHeight() bool   { return p.height.set }
func (p *plotBase) SetHeight(h float64) { p.height.put(h) }
func (p *plotBase) UnsetHeight()        { p.height = floatAttr{} }
func (p *plotBase) Width() float64      { return p.width.get() }
func (p *plotBase) IsSetWidth() bool    { return p.width.set }
func (p *plotBase) SetWidth(w float64)  { p.width.put(w) }
func (p *plotBase) UnsetWidth()         { p.width = floatAttr{} }

func (p *plotBase) XAxis() *Axis           { return p.xAxis }
func (p *plotBase) IsSetXAxis() bool       { return p.xAxis != nil }
func (p *plotBase) SetXAxis(a *Axis) error { return setAxis(p.self, &p.xAxis, a, "xAxis") }
func (p *plotBase) CreateXAxis() *Axis     { return createChild(p.self, &p.xAxis, newAxis("xAxis")) }
func (p *plotBase) UnsetXAxis()            { p.xAxis = nil }
func (p *plotBase) YAxis() *Axis           { return p.yAxis }
func (p *plotBase) IsSetYAxis() bool       { return p.yAxis != nil }
func (p *plotBase) SetYAxis(a *Axis) error { return setAxis(p.self, &p.yAxis, a, "yAxis") }
func (p *plotBase) CreateYAxis() *Axis     { return createChild(p.self, &p.yAxis, newAxis("yAxis")) }
func (p *plotBase) UnsetYAxis()            { p.yAxis = nil }

func (p *plotBase) readAttributes(a *stream.Attributes) {
	p.outputBase.readAttributes(a)
	p.legend.read(a.Bool("legend", false))
	p.height.read(a.Float("height", false))
	p.width.read(a.Float("width", false))
}

func (p *plotBase) writeAttributes(a *stream.AttrList) {
	p.Base.writeAttributes(a)
	p.legend.write(a, "legend")
	p.height.write(a, "height")
	p.width.write(a, "width")
}

func (p *plotBase) readAxis(r *reader, se xml.StartElement) (bool, error) {
	switch se.Name.Local {
	case "xAxis":
		return true, readSingle(r, p.self, &p.xAxis, se, newAxis("xAxis"))
	case "yAxis":
		return true, readSingle(r, p.self, &p.yAxis, se, newAxis("yAxis"))
	}
	return false, nil
}

// Plot2D plots curves and shaded areas against up to three axes
type Plot2D struct {
	plotBase
	rightYAxis *Axis
	curves     *ListOf[AbstractCurve]
}

func NewPlot2D(level, version int) *Plot2D {
	p := &Plot2D{}
	p.init(p, level, version)
	p.curves = newListOf(p, "listOfCurves", "curve", curveFactory)
	return p
}

func (p *Plot2D) Clone() *Plot2D {
	c := *p
	c.Base = p.Base.cloned(&c)
	c.clonedAxes(&c)
	c.rightYAxis = cloneAxis(&c, p.rightYAxis)
	c.curves = p.curves.cloned(&c)
	return &c
}

func (p *Plot2D) cloneElement() Element { return p.Clone() }
func (p *Plot2D) ElementName() string   { return "plot2D" }
func (p *Plot2D) TypeCode() TypeCode    { return TypePlot2D }

func (p *Plot2D) RightYAxis() *Axis           { return p.rightYAxis }
func (p *Plot2D) IsSetRightYAxis() bool       { return p.rightYAxis != nil }
func (p *Plot2D) SetRightYAxis(a *Axis) error { return setAxis(p, &p.rightYAxis, a, "rightYAxis") }
func (p *Plot2D) UnsetRightYAxis()            { p.rightYAxis = nil }

func (p *Plot2D) CreateRightYAxis() *Axis {
	return createChild(p, &p.rightYAxis, newAxis("rightYAxis"))
}

func (p *Plot2D) Curves() *ListOf[AbstractCurve] { return p.curves }
func (p *Plot2D) CreateCurve() *Curve            { return create(p.curves, NewCurve(p.level, p.version)) }

func (p *Plot2D) CreateShadedArea() *ShadedArea {
	return create(p.curves, NewShadedArea(p.level, p.version))
}

func (p *Plot2D) children() []Element {
	return nonNil(p.xAxis, p.yAxis, p.rightYAxis, p.curves)
}

func (p *Plot2D) readChild(r *reader, se xml.StartElement) (bool, error) {
	switch se.Name.Local {
	case "rightYAxis":
		return true, readSingle(r, p, &p.rightYAxis, se, newAxis("rightYAxis"))
	case "listOfCurves":
		return true, r.readElement(p.curves, se)
	}
	return p.readAxis(r, se)
}

func (p *Plot2D) writeElements(w *writer) {
	w.single(p.xAxis)
	w.single(p.yAxis)
	w.single(p.rightYAxis)
	writeList(w, p.curves)
}

// Plot3D plots surfaces against three axes
type Plot3D struct {
	plotBase
	zAxis    *Axis
	surfaces *ListOf[*Surface]
}

func NewPlot3D(level, version int) *Plot3D {
	p := &Plot3D{}
	p.init(p, level, version)
	p.surfaces = newListOf(p, "listOfSurfaces", "surface", only("surface", NewSurface))
	return p
}

func (p *Plot3D) Clone() *Plot3D {
	c := *p
	c.Base = p.Base.cloned(&c)
	c.clonedAxes(&c)
	c.zAxis = cloneAxis(&c, p.zAxis)
	c.surfaces = p.surfaces.cloned(&c)
	return &c
}

func (p *Plot3D) cloneElement() Element { return p.Clone() }
func (p *Plot3D) ElementName() string   { return "plot3D" }
func (p *Plot3D) TypeCode() TypeCode    { return TypePlot3D }

func (p *Plot3D) ZAxis() *Axis           { return p.zAxis }
func (p *Plot3D) IsSetZAxis() bool       { return p.zAxis != nil }
func (p *Plot3D) SetZAxis(a *Axis) error { return setAxis(p, &p.zAxis, a, "zAxis") }
func (p *Plot3D) CreateZAxis() *Axis     { return createChild(p, &p.zAxis, newAxis("zAxis")) }
func (p *Plot3D) UnsetZAxis()            { p.zAxis = nil }

func (p *Plot3D) Surfaces() *ListOf[*Surface] { return p.surfaces }
func (p *Plot3D) CreateSurface() *Surface     { return p.surfaces.Create() }

func (p *Plot3D) children() []Element {
	return nonNil(p.xAxis, p.yAxis, p.zAxis, p.surfaces)
}

func (p *Plot3D) readChild(r *reader, se xml.StartElement) (bool, error) {
	switch se.Name.Local {
	case "zAxis":
		return true, readSingle(r, p, &p.zAxis, se, newAxis("zAxis"))
	case "listOfSurfaces":
		return true, r.readElement(p.surfaces, se)
	}
	return p.readAxis(r, se)
}

func (p *Plot3D) writeElements(w *writer) {
	w.single(p.xAxis)
	w.single(p.yAxis)
	w.single(p.zAxis)
	writeList(w, p.surfaces)
}

// Figure lays plots out on a grid of sub-plots
type Figure struct {
	outputBase
	numRows  intAttr
	numCols  intAttr
	subPlots *ListOf[*SubPlot]
}

func NewFigure(level, version int) *Figure {
	f := &Figure{}
	f.init(f, level, version)
	f.subPlots = newListOf(f, "listOfSubPlots", "subPlot", only("subPlot", NewSubPlot))
	return f
}

func (f *Figure) Clone() *Figure {
	c := *f
	c.Base = f.Base.cloned(&c)
	c.subPlots = f.subPlots.cloned(&c)
	return &c
}

func (f *Figure) cloneElement() Element { return f.Clone() }
func (f *Figure) ElementName() string   { return "figure" }
func (f *Figure) TypeCode() TypeCode    { return TypeFigure }

func (f *Figure) NumRows() int       { return f.numRows.get() }
func (f *Figure) IsSetNumRows() bool { return f.numRows.set }
func (f *Figure) SetNumRows(n int)   { f.numRows.put(n) }
func (f *Figure) UnsetNumRows()      { f.numRows = intAttr{} }
func (f *Figure) NumCols() int       { return f.numCols.get() }
func (f *Figure) IsSetNumCols() bool { return f.numCols.set }
func (f *Figure) SetNumCols(n int)   { f.numCols.put(n) }
func (f *Figure) UnsetNumCols()      { f.numCols = intAttr{} }

func (f *Figure) SubPlots() *ListOf[*SubPlot] { return f.subPlots }
func (f *Figure) CreateSubPlot() *SubPlot     { return f.subPlots.Create() }

func (f *Figure) HasRequiredAttributes() bool {
	return f.IsSetID() && f.numRows.set && f.numCols.set
}

func (f *Figure) children() []Element { return []Element{f.subPlots} }

func (f *Figure) readAttributes(a *stream.Attributes) {
	f.outputBase.readAttributes(a)
	f.numRows.read(a.Int("numRows", true))
	f.numCols.read(a.Int("numCols", true))
}

func (f *Figure) writeAttributes(a *stream.AttrList) {
	f.Base.writeAttributes(a)
	f.numRows.write(a, "numRows")
	f.numCols.write(a, "numCols")
}

func (f *Figure) readChild(r *reader, se xml.StartElement) (bool, error) {
	if se.Name.Local == "listOfSubPlots" {
		return true, r.readElement(f.subPlots, se)
	}
	return false, nil
}

func (f *Figure) writeElements(w *writer) { writeList(w, f.subPlots) }

// SubPlot places a plot in a cell of a figure's grid
type SubPlot struct {
	Base
	plot    string
	row     intAttr
	col     intAttr
	rowSpan intAttr
	colSpan intAttr
}

func NewSubPlot(level, version int) *SubPlot {
	s := &SubPlot{}
	s.init(s, level, version)
	return s
}

func (s *SubPlot) Clone() *SubPlot {
	c := *s
	c.Base = s.Base.cloned(&c)
	return &c
}

func (s *SubPlot) cloneElement() Element { return s.Clone() }
func (s *SubPlot) ElementName() string   { return "subPlot" }
func (s *SubPlot) TypeCode() TypeCode    { return TypeSubPlot }

// Plot returns the id of the plot placed
func (s *SubPlot) Plot() string              { return s.plot }
func (s *SubPlot) IsSetPlot() bool           { return s.plot != "" }
func (s *SubPlot) SetPlot(plot string) error { return setSId(&s.plot, plot) }
func (s *SubPlot) UnsetPlot()                { s.plot = "" }

func (s *SubPlot) Row() int           { return s.row.get() }
func (s *SubPlot) IsSetRow() bool     { return s.row.set }
func (s *SubPlot) SetRow(n int)       { s.row.put(n) }
func (s *SubPlot) UnsetRow()          { s.row = intAttr{} }
func (s *SubPlot) Col() int           { return s.col.get() }
func (s *SubPlot) IsSetCol() bool     { return s.col.set }
func (s *SubPlot) SetCol(n int)       { s.col.put(n) }
func (s *SubPlot) UnsetCol()          { s.col = intAttr{} }
func (s *SubPlot) RowSpan() int       { return s.rowSpan.get() }
func (s *SubPlot) IsSetRowSpan() bool { return s.rowSpan.set }
func (s *SubPlot) SetRowSpan(n int)   { s.rowSpan.put(n) }
func (s *SubPlot) UnsetRowSpan()      { s.rowSpan = intAttr{} }
func (s *SubPlot) ColSpan() int       { return s.colSpan.get() }
func (s *SubPlot) IsSetColSpan() bool { return s.colSpan.set }
func (s *SubPlot) SetColSpan(n int)   { s.colSpan.put(n) }
func (s *SubPlot) UnsetColSpan()      { s.colSpan = intAttr{} }

func (s *SubPlot) HasRequiredAttributes() bool {
	return s.IsSetPlot() && s.row.set && s.col.set
}

func (s *SubPlot) renameRefs(oldID, newID string) { renameRef(&s.plot, oldID, newID) }

func (s *SubPlot) readAttributes(a *stream.Attributes) {
	s.Base.readAttributes(a)
	s.plot, _ = a.SId("plot", true)
	s.row.read(a.Int("row", true))
	s.col.read(a.Int("col", true))
	s.rowSpan.read(a.Int("rowSpan", false))
	s.colSpan.read(a.Int("colSpan", false))
}

func (s *SubPlot) writeAttributes(a *stream.AttrList) {
	s.Base.writeAttributes(a)
	writeString(a, "plot", s.plot)
	s.row.write(a, "row")
	s.col.write(a, "col")
	s.rowSpan.write(a, "rowSpan")
	s.colSpan.write(a, "colSpan")
}
