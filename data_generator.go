package sedml

import (
	"encoding/xml"

	"github.com/andaru/sedml/mathml"
	"github.com/andaru/sedml/stream"
)

// DataGenerator computes output data from simulation variables with a
// MathML expression.
type DataGenerator struct {
	Base
	math       *mathml.AST
	variables  *ListOf[AnyVariable]
	parameters *ListOf[*Parameter]
}

func NewDataGenerator(level, version int) *DataGenerator {
	d := &DataGenerator{}
	d.init(d, level, version)
	d.variables = newVariableList(d)
	d.parameters = newParameterList(d)
	return d
}

func (d *DataGenerator) Clone() *DataGenerator {
	c := *d
	c.Base = d.Base.cloned(&c)
	c.math = d.math.Clone()
	c.variables = d.variables.cloned(&c)
	c.parameters = d.parameters.cloned(&c)
	return &c
}

func (d *DataGenerator) cloneElement() Element { return d.Clone() }
func (d *DataGenerator) ElementName() string   { return "dataGenerator" }
func (d *DataGenerator) TypeCode() TypeCode    { return TypeDataGenerator }

// Math returns the expression, or nil
func (d *DataGenerator) Math() *mathml.AST { return d.math }
func (d *DataGenerator) IsSetMath() bool   { return d.math != nil }

// SetMath stores a copy of math. A nil math unsets the expression, and
// an expression that is not well-formed is rejected with InvalidObject.
func (d *DataGenerator) SetMath(math *mathml.AST) error { return setMath(&d.math, math) }

func (d *DataGenerator) UnsetMath()            { d.math = nil }
func (d *DataGenerator) mathRef() **mathml.AST { return &d.math }

func (d *DataGenerator) Variables() *ListOf[AnyVariable] { return d.variables }
func (d *DataGenerator) Parameters() *ListOf[*Parameter] { return d.parameters }

func (d *DataGenerator) CreateVariable() *Variable {
	return create(d.variables, NewVariable(d.level, d.version))
}

func (d *DataGenerator) CreateDependentVariable() *DependentVariable {
	return create(d.variables, NewDependentVariable(d.level, d.version))
}

func (d *DataGenerator) CreateParameter() *Parameter { return d.parameters.Create() }

func (d *DataGenerator) HasRequiredAttributes() bool { return d.IsSetID() }
func (d *DataGenerator) HasRequiredElements() bool   { return d.IsSetMath() }

func (d *DataGenerator) children() []Element { return []Element{d.variables, d.parameters} }

func (d *DataGenerator) renameRefs(oldID, newID string) { d.math.RenameSIdRefs(oldID, newID) }

func (d *DataGenerator) readAttributes(a *stream.Attributes) {
	d.Base.readAttributes(a)
	a.Required("id")
}

func (d *DataGenerator) readChild(r *reader, se xml.StartElement) (bool, error) {
	switch se.Name.Local {
	case "listOfVariables":
		return true, r.readElement(d.variables, se)
	case "listOfParameters":
		return true, r.readElement(d.parameters, se)
	}
	return false, nil
}

func (d *DataGenerator) writeElements(w *writer) {
	writeList(w, d.variables)
	writeList(w, d.parameters)
	w.math(d.math)
}
