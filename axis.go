package sedml

import (
	"github.com/andaru/sedml/stream"
)

// Axis is an axis of a plot. The same type serves the xAxis, yAxis,
// zAxis and rightYAxis elements; its element name follows from the slot
// of the plot holding it.
type Axis struct {
	Base
	elementName string
	axisType    AxisType
	min         floatAttr
	max         floatAttr
	grid        boolAttr
	style       string
	reverse     boolAttr
}

// NewAxis returns an axis written as an <xAxis> until it is placed in a
// plot.
func NewAxis(level, version int) *Axis { return newAxis("xAxis")(level, version) }

func newAxis(elementName string) func(level, version int) *Axis {
	return func(level, version int) *Axis {
		a := &Axis{elementName: elementName}
		a.init(a, level, version)
		return a
	}
}

func (a *Axis) Clone() *Axis {
	c := *a
	c.Base = a.Base.cloned(&c)
	return &c
}

func (a *Axis) cloneElement() Element { return a.Clone() }
func (a *Axis) ElementName() string   { return a.elementName }
func (a *Axis) TypeCode() TypeCode    { return TypeAxis }

func (a *Axis) Type() AxisType  { return a.axisType }
func (a *Axis) IsSetType() bool { return a.axisType != AxisTypeInvalid }

// SetType sets the axis scale. An undefined value leaves the type
// AxisTypeInvalid and returns InvalidAttributeValue.
func (a *Axis) SetType(t AxisType) error       { return setEnum(&a.axisType, t) }
func (a *Axis) TypeAsString() string           { return a.axisType.String() }
func (a *Axis) SetTypeAsString(s string) error { return setEnum(&a.axisType, ParseAxisType(s)) }
func (a *Axis) UnsetType()                     { a.axisType = AxisTypeInvalid }

func (a *Axis) Min() float64       { return a.min.get() }
func (a *Axis) IsSetMin() bool     { return a.min.set }
func (a *Axis) SetMin(v float64)   { a.min.put(v) }
func (a *Axis) UnsetMin()          { a.min = floatAttr{} }
func (a *Axis) Max() float64       { return a.max.get() }
func (a *Axis) IsSetMax() bool     { return a.max.set }
func (a *Axis) SetMax(v float64)   { a.max.put(v) }
func (a *Axis) UnsetMax()          { a.max = floatAttr{} }
func (a *Axis) Grid() bool         { return a.grid.get() }
func (a *Axis) IsSetGrid() bool    { return a.grid.set }
func (a *Axis) SetGrid(grid bool)  { a.grid.put(grid) }
func (a *Axis) UnsetGrid()         { a.grid = boolAttr{} }
func (a *Axis) Reverse() bool      { return a.reverse.get() }
func (a *Axis) IsSetReverse() bool { return a.reverse.set }
func (a *Axis) SetReverse(r bool)  { a.reverse.put(r) }
func (a *Axis) UnsetReverse()      { a.reverse = boolAttr{} }

// Style returns the id of the axis style
func (a *Axis) Style() string               { return a.style }
func (a *Axis) IsSetStyle() bool            { return a.style != "" }
func (a *Axis) SetStyle(style string) error { return setSId(&a.style, style) }
func (a *Axis) UnsetStyle()                 { a.style = "" }

func (a *Axis) HasRequiredAttributes() bool { return a.IsSetType() }

func (a *Axis) renameRefs(oldID, newID string) { renameRef(&a.style, oldID, newID) }

func (a *Axis) readAttributes(attrs *stream.Attributes) {
	a.Base.readAttributes(attrs)
	a.axisType = readEnum(attrs, "type", true, ParseAxisType)
	a.min.read(attrs.Float("min", false))
	a.max.read(attrs.Float("max", false))
	a.grid.read(attrs.Bool("grid", false))
	a.style, _ = attrs.SId("style", false)
	a.reverse.read(attrs.Bool("reverse", false))
}

func (a *Axis) writeAttributes(attrs *stream.AttrList) {
	a.Base.writeAttributes(attrs)
	writeEnum(attrs, "type", a.axisType)
	a.min.write(attrs, "min")
	a.max.write(attrs, "max")
	a.grid.write(attrs, "grid")
	writeString(attrs, "style", a.style)
	a.reverse.write(attrs, "reverse")
}

// setAxis stores a copy of axis in slot under the element name of the slot
func setAxis(parent Element, slot **Axis, axis *Axis, elementName string) error {
	if err := setChild(parent, slot, axis); err != nil {
		return err
	}
	if *slot != nil {
		(*slot).elementName = elementName
	}
	return nil
}
