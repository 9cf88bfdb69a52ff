package sedml

import (
	"encoding/xml"

	"github.com/andaru/sedml/stream"
)

// AnyVariable is a Variable or a DependentVariable
type AnyVariable interface {
	Element
	Symbol() string
	Target() string
	TaskReference() string
	ModelReference() string
	DimensionTerm() string
	AppliedDimensions() *ListOf[*AppliedDimension]
	asVariable() *Variable
}

func variableFactory(name string, level, version int) (AnyVariable, bool) {
	switch name {
	case "variable":
		return NewVariable(level, version), true
	case "dependentVariable":
		return NewDependentVariable(level, version), true
	}
	return nil, false
}

func newVariableList(parent Element) *ListOf[AnyVariable] {
	return newListOf(parent, "listOfVariables", "variable", variableFactory)
}

func newParameterList(parent Element) *ListOf[*Parameter] {
	return newListOf(parent, "listOfParameters", "parameter", only("parameter", NewParameter))
}

// Variable refers to a model quantity, by XPath target or by symbol, as
// seen by a task or a model.
type Variable struct {
	Base
	symbol            string
	target            string
	taskReference     string
	modelReference    string
	dimensionTerm     string
	appliedDimensions *ListOf[*AppliedDimension]
}

func NewVariable(level, version int) *Variable {
	v := &Variable{}
	v.initVariable(v, level, version)
	return v
}

func (v *Variable) initVariable(self Element, level, version int) {
	v.init(self, level, version)
	v.appliedDimensions = newListOf(self, "listOfAppliedDimensions", "appliedDimension",
		only("appliedDimension", NewAppliedDimension))
}

func (v *Variable) Clone() *Variable {
	c := *v
	c.Base = v.Base.cloned(&c)
	c.appliedDimensions = v.appliedDimensions.cloned(&c)
	return &c
}

func (v *Variable) cloneElement() Element { return v.Clone() }
func (v *Variable) ElementName() string   { return "variable" }
func (v *Variable) TypeCode() TypeCode    { return TypeVariable }
func (v *Variable) asVariable() *Variable { return v }

// Symbol returns the URN of an implicit model quantity, such as time
func (v *Variable) Symbol() string          { return v.symbol }
func (v *Variable) IsSetSymbol() bool       { return v.symbol != "" }
func (v *Variable) SetSymbol(symbol string) { v.symbol = symbol }
func (v *Variable) UnsetSymbol()            { v.symbol = "" }

// Target returns the XPath expression selecting the model quantity
func (v *Variable) Target() string          { return v.target }
func (v *Variable) IsSetTarget() bool       { return v.target != "" }
func (v *Variable) SetTarget(target string) { v.target = target }
func (v *Variable) UnsetTarget()            { v.target = "" }

func (v *Variable) TaskReference() string              { return v.taskReference }
func (v *Variable) IsSetTaskReference() bool           { return v.taskReference != "" }
func (v *Variable) SetTaskReference(ref string) error  { return setSId(&v.taskReference, ref) }
func (v *Variable) UnsetTaskReference()                { v.taskReference = "" }
func (v *Variable) ModelReference() string             { return v.modelReference }
func (v *Variable) IsSetModelReference() bool          { return v.modelReference != "" }
func (v *Variable) SetModelReference(ref string) error { return setSId(&v.modelReference, ref) }
func (v *Variable) UnsetModelReference()               { v.modelReference = "" }

// DimensionTerm returns the URN of the term reducing the variable's
// dimensions, such as a mean or a maximum.
func (v *Variable) DimensionTerm() string     { return v.dimensionTerm }
func (v *Variable) IsSetDimensionTerm() bool  { return v.dimensionTerm != "" }
func (v *Variable) SetDimensionTerm(t string) { v.dimensionTerm = t }
func (v *Variable) UnsetDimensionTerm()       { v.dimensionTerm = "" }

func (v *Variable) AppliedDimensions() *ListOf[*AppliedDimension] { return v.appliedDimensions }
func (v *Variable) CreateAppliedDimension() *AppliedDimension     { return v.appliedDimensions.Create() }

func (v *Variable) HasRequiredAttributes() bool { return v.IsSetID() }

func (v *Variable) children() []Element { return []Element{v.appliedDimensions} }

func (v *Variable) renameRefs(oldID, newID string) {
	renameRef(&v.taskReference, oldID, newID)
	renameRef(&v.modelReference, oldID, newID)
}

func (v *Variable) readAttributes(a *stream.Attributes) {
	v.Base.readAttributes(a)
	a.Required("id")
	v.symbol, _ = a.String("symbol", false)
	v.target, _ = a.String("target", false)
	v.taskReference, _ = a.SId("taskReference", false)
	v.modelReference, _ = a.SId("modelReference", false)
	v.dimensionTerm, _ = a.String("dimensionTerm", false)
}

func (v *Variable) writeAttributes(a *stream.AttrList) {
	v.Base.writeAttributes(a)
	writeString(a, "symbol", v.symbol)
	writeString(a, "target", v.target)
	writeString(a, "taskReference", v.taskReference)
	writeString(a, "modelReference", v.modelReference)
	writeString(a, "dimensionTerm", v.dimensionTerm)
}

func (v *Variable) readChild(r *reader, se xml.StartElement) (bool, error) {
	if se.Name.Local == "listOfAppliedDimensions" {
		return true, r.readElement(v.appliedDimensions, se)
	}
	return false, nil
}

func (v *Variable) writeElements(w *writer) { writeList(w, v.appliedDimensions) }

// DependentVariable is a Variable derived from a term, such as a
// derivative, of a second quantity.
type DependentVariable struct {
	Variable
	term    string
	target2 string
	symbol2 string
}

func NewDependentVariable(level, version int) *DependentVariable {
	v := &DependentVariable{}
	v.initVariable(v, level, version)
	return v
}

func (v *DependentVariable) Clone() *DependentVariable {
	c := *v
	c.Base = v.Base.cloned(&c)
	c.appliedDimensions = v.appliedDimensions.cloned(&c)
	return &c
}

func (v *DependentVariable) cloneElement() Element { return v.Clone() }
func (v *DependentVariable) ElementName() string   { return "dependentVariable" }
func (v *DependentVariable) TypeCode() TypeCode    { return TypeDependentVariable }

// Term returns the URN of the term applied to the second quantity
func (v *DependentVariable) Term() string             { return v.term }
func (v *DependentVariable) IsSetTerm() bool          { return v.term != "" }
func (v *DependentVariable) SetTerm(term string)      { v.term = term }
func (v *DependentVariable) UnsetTerm()               { v.term = "" }
func (v *DependentVariable) Target2() string          { return v.target2 }
func (v *DependentVariable) IsSetTarget2() bool       { return v.target2 != "" }
func (v *DependentVariable) SetTarget2(target string) { v.target2 = target }
func (v *DependentVariable) UnsetTarget2()            { v.target2 = "" }
func (v *DependentVariable) Symbol2() string          { return v.symbol2 }
func (v *DependentVariable) IsSetSymbol2() bool       { return v.symbol2 != "" }
func (v *DependentVariable) SetSymbol2(symbol string) { v.symbol2 = symbol }
func (v *DependentVariable) UnsetSymbol2()            { v.symbol2 = "" }

func (v *DependentVariable) readAttributes(a *stream.Attributes) {
	v.Variable.readAttributes(a)
	v.term, _ = a.String("term", false)
	v.target2, _ = a.String("target2", false)
	v.symbol2, _ = a.String("symbol2", false)
}

func (v *DependentVariable) writeAttributes(a *stream.AttrList) {
	v.Variable.writeAttributes(a)
	writeString(a, "term", v.term)
	writeString(a, "target2", v.target2)
	writeString(a, "symbol2", v.symbol2)
}

// AppliedDimension names a dimension of the data a variable is reduced
// over.
type AppliedDimension struct {
	Base
	target          string
	dimensionTarget string
}

func NewAppliedDimension(level, version int) *AppliedDimension {
	d := &AppliedDimension{}
	d.init(d, level, version)
	return d
}

func (d *AppliedDimension) Clone() *AppliedDimension {
	c := *d
	c.Base = d.Base.cloned(&c)
	return &c
}

func (d *AppliedDimension) cloneElement() Element { return d.Clone() }
func (d *AppliedDimension) ElementName() string   { return "appliedDimension" }
func (d *AppliedDimension) TypeCode() TypeCode    { return TypeAppliedDimension }

// Target returns the id of the task or sub-task whose dimension is reduced
func (d *AppliedDimension) Target() string                { return d.target }
func (d *AppliedDimension) IsSetTarget() bool             { return d.target != "" }
func (d *AppliedDimension) SetTarget(target string) error { return setSId(&d.target, target) }
func (d *AppliedDimension) UnsetTarget()                  { d.target = "" }

// DimensionTarget returns the id of a data dimension
func (d *AppliedDimension) DimensionTarget() string     { return d.dimensionTarget }
func (d *AppliedDimension) IsSetDimensionTarget() bool  { return d.dimensionTarget != "" }
func (d *AppliedDimension) SetDimensionTarget(t string) { d.dimensionTarget = t }
func (d *AppliedDimension) UnsetDimensionTarget()       { d.dimensionTarget = "" }

func (d *AppliedDimension) renameRefs(oldID, newID string) { renameRef(&d.target, oldID, newID) }

func (d *AppliedDimension) readAttributes(a *stream.Attributes) {
	d.Base.readAttributes(a)
	d.target, _ = a.SId("target", false)
	d.dimensionTarget, _ = a.String("dimensionTarget", false)
}

func (d *AppliedDimension) writeAttributes(a *stream.AttrList) {
	d.Base.writeAttributes(a)
	writeString(a, "target", d.target)
	writeString(a, "dimensionTarget", d.dimensionTarget)
}
