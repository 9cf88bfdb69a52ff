package sedml

import (
	"encoding/xml"

	"github.com/andaru/sedml/stream"
)

// Algorithm names a simulation or fitting algorithm by its KiSAO term
type Algorithm struct {
	Base
	kisaoID    string
	parameters *ListOf[*AlgorithmParameter]
}

func NewAlgorithm(level, version int) *Algorithm {
	a := &Algorithm{}
	a.init(a, level, version)
	a.parameters = newAlgorithmParameterList(a)
	return a
}

func newAlgorithmParameterList(parent Element) *ListOf[*AlgorithmParameter] {
	return newListOf(parent, "listOfAlgorithmParameters", "algorithmParameter",
		only("algorithmParameter", NewAlgorithmParameter))
}

func (a *Algorithm) Clone() *Algorithm {
	c := *a
	c.Base = a.Base.cloned(&c)
	c.parameters = a.parameters.cloned(&c)
	return &c
}

func (a *Algorithm) cloneElement() Element { return a.Clone() }
func (a *Algorithm) ElementName() string   { return "algorithm" }
func (a *Algorithm) TypeCode() TypeCode    { return TypeAlgorithm }

// KisaoID returns the KiSAO term, such as KISAO:0000019
func (a *Algorithm) KisaoID() string     { return a.kisaoID }
func (a *Algorithm) IsSetKisaoID() bool  { return a.kisaoID != "" }
func (a *Algorithm) SetKisaoID(s string) { a.kisaoID = s }
func (a *Algorithm) UnsetKisaoID()       { a.kisaoID = "" }

func (a *Algorithm) AlgorithmParameters() *ListOf[*AlgorithmParameter] { return a.parameters }
func (a *Algorithm) CreateAlgorithmParameter() *AlgorithmParameter     { return a.parameters.Create() }

func (a *Algorithm) HasRequiredAttributes() bool { return a.IsSetKisaoID() }

func (a *Algorithm) children() []Element { return []Element{a.parameters} }

func (a *Algorithm) readAttributes(attrs *stream.Attributes) {
	a.Base.readAttributes(attrs)
	a.kisaoID, _ = attrs.String("kisaoID", true)
}

func (a *Algorithm) writeAttributes(attrs *stream.AttrList) {
	a.Base.writeAttributes(attrs)
	writeString(attrs, "kisaoID", a.kisaoID)
}

func (a *Algorithm) readChild(r *reader, se xml.StartElement) (bool, error) {
	if se.Name.Local == "listOfAlgorithmParameters" {
		return true, r.readElement(a.parameters, se)
	}
	return false, nil
}

func (a *Algorithm) writeElements(w *writer) { writeList(w, a.parameters) }

// AlgorithmParameter sets a parameter of an algorithm. Parameters may
// nest.
type AlgorithmParameter struct {
	Base
	kisaoID    string
	value      string
	parameters *ListOf[*AlgorithmParameter]
}

func NewAlgorithmParameter(level, version int) *AlgorithmParameter {
	p := &AlgorithmParameter{}
	p.init(p, level, version)
	p.parameters = newAlgorithmParameterList(p)
	return p
}

func (p *AlgorithmParameter) Clone() *AlgorithmParameter {
	c := *p
	c.Base = p.Base.cloned(&c)
	c.parameters = p.parameters.cloned(&c)
	return &c
}

func (p *AlgorithmParameter) cloneElement() Element { return p.Clone() }
func (p *AlgorithmParameter) ElementName() string   { return "algorithmParameter" }
func (p *AlgorithmParameter) TypeCode() TypeCode    { return TypeAlgorithmParameter }

func (p *AlgorithmParameter) KisaoID() string       { return p.kisaoID }
func (p *AlgorithmParameter) IsSetKisaoID() bool    { return p.kisaoID != "" }
func (p *AlgorithmParameter) SetKisaoID(s string)   { p.kisaoID = s }
func (p *AlgorithmParameter) UnsetKisaoID()         { p.kisaoID = "" }
func (p *AlgorithmParameter) Value() string         { return p.value }
func (p *AlgorithmParameter) IsSetValue() bool      { return p.value != "" }
func (p *AlgorithmParameter) SetValue(value string) { p.value = value }
func (p *AlgorithmParameter) UnsetValue()           { p.value = "" }

func (p *AlgorithmParameter) AlgorithmParameters() *ListOf[*AlgorithmParameter] {
	return p.parameters
}
func (p *AlgorithmParameter) CreateAlgorithmParameter() *AlgorithmParameter {
	return p.parameters.Create()
}

func (p *AlgorithmParameter) HasRequiredAttributes() bool {
	return p.IsSetKisaoID() && p.IsSetValue()
}

func (p *AlgorithmParameter) children() []Element { return []Element{p.parameters} }

func (p *AlgorithmParameter) readAttributes(a *stream.Attributes) {
	p.Base.readAttributes(a)
	p.kisaoID, _ = a.String("kisaoID", true)
	p.value, _ = a.String("value", true)
}

func (p *AlgorithmParameter) writeAttributes(a *stream.AttrList) {
	p.Base.writeAttributes(a)
	writeString(a, "kisaoID", p.kisaoID)
	writeString(a, "value", p.value)
}

func (p *AlgorithmParameter) readChild(r *reader, se xml.StartElement) (bool, error) {
	if se.Name.Local == "listOfAlgorithmParameters" {
		return true, r.readElement(p.parameters, se)
	}
	return false, nil
}

func (p *AlgorithmParameter) writeElements(w *writer) { writeList(w, p.parameters) }
