package sedml

import (
	"github.com/andaru/sedml/sederr"
	"github.com/andaru/sedml/stream"
	"github.com/andaru/sedml/syntax"
)

// Parameter is a named constant used in a mathematical expression
type Parameter struct {
	Base
	value floatAttr
	units string
}

func NewParameter(level, version int) *Parameter {
	p := &Parameter{}
	p.init(p, level, version)
	return p
}

func (p *Parameter) Clone() *Parameter {
	c := *p
	c.Base = p.Base.cloned(&c)
	return &c
}

func (p *Parameter) cloneElement() Element { return p.Clone() }
func (p *Parameter) ElementName() string   { return "parameter" }
func (p *Parameter) TypeCode() TypeCode    { return TypeParameter }

// Value returns the parameter's value, or NaN when unset
func (p *Parameter) Value() float64     { return p.value.get() }
func (p *Parameter) IsSetValue() bool   { return p.value.set }
func (p *Parameter) SetValue(v float64) { p.value.put(v) }
func (p *Parameter) UnsetValue()        { p.value = floatAttr{} }

func (p *Parameter) Units() string    { return p.units }
func (p *Parameter) IsSetUnits() bool { return p.units != "" }

// SetUnits sets the units, which must be a valid UnitSId.
func (p *Parameter) SetUnits(units string) error {
	if units != "" && !syntax.IsValidUnitSId(units) {
		return sederr.InvalidAttributeValue
	}
	p.units = units
	return nil
}

func (p *Parameter) UnsetUnits() { p.units = "" }

func (p *Parameter) HasRequiredAttributes() bool { return p.IsSetID() && p.IsSetValue() }

func (p *Parameter) readAttributes(a *stream.Attributes) {
	p.Base.readAttributes(a)
	a.Required("id")
	p.value.read(a.Float("value", true))
	p.units, _ = a.UnitSId("units", false)
}

func (p *Parameter) writeAttributes(a *stream.AttrList) {
	p.Base.writeAttributes(a)
	p.value.write(a, "value")
	writeString(a, "units", p.units)
}
