package sedml

import (
	"encoding/xml"
	"strconv"

	"github.com/andaru/sedml/mathml"
	"github.com/andaru/sedml/sederr"
	"github.com/andaru/sedml/stream"
)

// Range is a sequence of values iterated over by a RepeatedTask
type Range interface {
	Element
	rangeElement()
}

func rangeFactory(name string, level, version int) (Range, bool) {
	switch name {
	case "uniformRange":
		return NewUniformRange(level, version), true
	case "vectorRange":
		return NewVectorRange(level, version), true
	case "functionalRange":
		return NewFunctionalRange(level, version), true
	case "dataRange":
		return NewDataRange(level, version), true
	}
	return nil, false
}

type rangeBase struct {
	Base
}

func (r *rangeBase) rangeElement() {}

func (r *rangeBase) HasRequiredAttributes() bool { return r.IsSetID() }

func (r *rangeBase) readAttributes(a *stream.Attributes) {
	r.Base.readAttributes(a)
	a.Required("id")
}

// UniformRange is a range of evenly spaced values from start to end,
// linear or logarithmic.
type UniformRange struct {
	rangeBase
	start         floatAttr
	end           floatAttr
	numberOfSteps intAttr
	rangeType     string
}

func NewUniformRange(level, version int) *UniformRange {
	u := &UniformRange{}
	u.init(u, level, version)
	return u
}

func (u *UniformRange) Clone() *UniformRange {
	c := *u
	c.Base = u.Base.cloned(&c)
	return &c
}

func (u *UniformRange) cloneElement() Element { return u.Clone() }
func (u *UniformRange) ElementName() string   { return "uniformRange" }
func (u *UniformRange) TypeCode() TypeCode    { return TypeUniformRange }

func (u *UniformRange) Start() float64     { return u.start.get() }
func (u *UniformRange) IsSetStart() bool   { return u.start.set }
func (u *UniformRange) SetStart(v float64) { u.start.put(v) }
func (u *UniformRange) UnsetStart()        { u.start = floatAttr{} }
func (u *UniformRange) End() float64       { return u.end.get() }
func (u *UniformRange) IsSetEnd() bool     { return u.end.set }
func (u *UniformRange) SetEnd(v float64)   { u.end.put(v) }
func (u *UniformRange) UnsetEnd()          { u.end = floatAttr{} }

// NumberOfSteps returns the number of steps, written as numberOfSteps
// from level 1 version 4 and as numberOfPoints before it.
func (u *UniformRange) NumberOfSteps() int        { return u.numberOfSteps.get() }
func (u *UniformRange) IsSetNumberOfSteps() bool  { return u.numberOfSteps.set }
func (u *UniformRange) SetNumberOfSteps(n int)    { u.numberOfSteps.put(n) }
func (u *UniformRange) UnsetNumberOfSteps()       { u.numberOfSteps = intAttr{} }
func (u *UniformRange) NumberOfPoints() int       { return u.NumberOfSteps() }
func (u *UniformRange) IsSetNumberOfPoints() bool { return u.IsSetNumberOfSteps() }
func (u *UniformRange) SetNumberOfPoints(n int)   { u.SetNumberOfSteps(n) }
func (u *UniformRange) UnsetNumberOfPoints()      { u.UnsetNumberOfSteps() }

// Type returns the spacing of the values, "linear" or "log"
func (u *UniformRange) Type() string     { return u.rangeType }
func (u *UniformRange) IsSetType() bool  { return u.rangeType != "" }
func (u *UniformRange) SetType(t string) { u.rangeType = t }
func (u *UniformRange) UnsetType()       { u.rangeType = "" }

func (u *UniformRange) HasRequiredAttributes() bool {
	return u.IsSetID() && u.start.set && u.end.set && u.numberOfSteps.set && u.IsSetType()
}

func (u *UniformRange) readAttributes(a *stream.Attributes) {
	u.rangeBase.readAttributes(a)
	u.start.read(a.Float("start", true))
	u.end.read(a.Float("end", true))
	u.numberOfSteps.read(readSteps(a, u.version))
	u.rangeType, _ = a.String("type", true)
}

func (u *UniformRange) writeAttributes(a *stream.AttrList) {
	u.Base.writeAttributes(a)
	u.start.write(a, "start")
	u.end.write(a, "end")
	u.numberOfSteps.write(a, stepsAttr(u.version))
	writeString(a, "type", u.rangeType)
}

// VectorRange is an explicit list of values
type VectorRange struct {
	rangeBase
	values []float64
}

func NewVectorRange(level, version int) *VectorRange {
	v := &VectorRange{}
	v.init(v, level, version)
	return v
}

func (v *VectorRange) Clone() *VectorRange {
	c := *v
	c.Base = v.Base.cloned(&c)
	c.values = append([]float64(nil), v.values...)
	return &c
}

func (v *VectorRange) cloneElement() Element { return v.Clone() }
func (v *VectorRange) ElementName() string   { return "vectorRange" }
func (v *VectorRange) TypeCode() TypeCode    { return TypeVectorRange }

// Values returns a copy of the values
func (v *VectorRange) Values() []float64      { return append([]float64(nil), v.values...) }
func (v *VectorRange) IsSetValues() bool      { return len(v.values) > 0 }
func (v *VectorRange) SetValues(vs []float64) { v.values = append([]float64(nil), vs...) }
func (v *VectorRange) AddValue(f float64)     { v.values = append(v.values, f) }
func (v *VectorRange) UnsetValues()           { v.values = nil }
func (v *VectorRange) NumValues() int         { return len(v.values) }

func (v *VectorRange) readChild(r *reader, se xml.StartElement) (bool, error) {
	if se.Name.Local != "value" {
		return false, nil
	}
	s, err := r.Text(se)
	if err != nil {
		return true, err
	}
	f, perr := stream.ParseFloat(s)
	if perr != nil {
		r.Add(sederr.BadAttributeValue("", "value", sederr.WithMessage(strconv.Quote(s)+" is not a double")))
		return true, nil
	}
	v.values = append(v.values, f)
	return true, nil
}

func (v *VectorRange) writeElements(w *writer) {
	for _, f := range v.values {
		w.Element("value", nil, stream.FormatFloat(f))
	}
}

// FunctionalRange computes each value from an expression over another
// range, variables and parameters.
type FunctionalRange struct {
	rangeBase
	rangeID    string
	math       *mathml.AST
	variables  *ListOf[AnyVariable]
	parameters *ListOf[*Parameter]
}

func NewFunctionalRange(level, version int) *FunctionalRange {
	f := &FunctionalRange{}
	f.init(f, level, version)
	f.variables = newVariableList(f)
	f.parameters = newParameterList(f)
	return f
}

func (f *FunctionalRange) Clone() *FunctionalRange {
	c := *f
	c.Base = f.Base.cloned(&c)
	c.math = f.math.Clone()
	c.variables = f.variables.cloned(&c)
	c.parameters = f.parameters.cloned(&c)
	return &c
}

func (f *FunctionalRange) cloneElement() Element { return f.Clone() }
func (f *FunctionalRange) ElementName() string   { return "functionalRange" }
func (f *FunctionalRange) TypeCode() TypeCode    { return TypeFunctionalRange }

// Range returns the id of the range the values are computed over
func (f *FunctionalRange) Range() string            { return f.rangeID }
func (f *FunctionalRange) IsSetRange() bool         { return f.rangeID != "" }
func (f *FunctionalRange) SetRange(id string) error { return setSId(&f.rangeID, id) }
func (f *FunctionalRange) UnsetRange()              { f.rangeID = "" }

func (f *FunctionalRange) Math() *mathml.AST              { return f.math }
func (f *FunctionalRange) IsSetMath() bool                { return f.math != nil }
func (f *FunctionalRange) SetMath(math *mathml.AST) error { return setMath(&f.math, math) }
func (f *FunctionalRange) UnsetMath()                     { f.math = nil }
func (f *FunctionalRange) mathRef() **mathml.AST          { return &f.math }

func (f *FunctionalRange) Variables() *ListOf[AnyVariable] { return f.variables }
func (f *FunctionalRange) Parameters() *ListOf[*Parameter] { return f.parameters }

func (f *FunctionalRange) CreateVariable() *Variable {
	return create(f.variables, NewVariable(f.level, f.version))
}

func (f *FunctionalRange) CreateParameter() *Parameter { return f.parameters.Create() }

func (f *FunctionalRange) HasRequiredElements() bool { return f.IsSetMath() }

func (f *FunctionalRange) children() []Element { return []Element{f.variables, f.parameters} }

func (f *FunctionalRange) renameRefs(oldID, newID string) {
	renameRef(&f.rangeID, oldID, newID)
	f.math.RenameSIdRefs(oldID, newID)
}

func (f *FunctionalRange) readAttributes(a *stream.Attributes) {
	f.rangeBase.readAttributes(a)
	f.rangeID, _ = a.SId("range", false)
}

func (f *FunctionalRange) writeAttributes(a *stream.AttrList) {
	f.Base.writeAttributes(a)
	writeString(a, "range", f.rangeID)
}

func (f *FunctionalRange) readChild(r *reader, se xml.StartElement) (bool, error) {
	switch se.Name.Local {
	case "listOfVariables":
		return true, r.readElement(f.variables, se)
	case "listOfParameters":
		return true, r.readElement(f.parameters, se)
	}
	return false, nil
}

func (f *FunctionalRange) writeElements(w *writer) {
	writeList(w, f.variables)
	writeList(w, f.parameters)
	w.math(f.math)
}

// DataRange takes its values from a data source
type DataRange struct {
	rangeBase
	sourceRef string
}

func NewDataRange(level, version int) *DataRange {
	d := &DataRange{}
	d.init(d, level, version)
	return d
}

func (d *DataRange) Clone() *DataRange {
	c := *d
	c.Base = d.Base.cloned(&c)
	return &c
}

func (d *DataRange) cloneElement() Element { return d.Clone() }
func (d *DataRange) ElementName() string   { return "dataRange" }
func (d *DataRange) TypeCode() TypeCode    { return TypeDataRange }

// SourceRef returns the id of the data source
func (d *DataRange) SourceRef() string             { return d.sourceRef }
func (d *DataRange) IsSetSourceRef() bool          { return d.sourceRef != "" }
func (d *DataRange) SetSourceRef(ref string) error { return setSId(&d.sourceRef, ref) }
func (d *DataRange) UnsetSourceRef()               { d.sourceRef = "" }

func (d *DataRange) HasRequiredAttributes() bool { return d.IsSetID() && d.IsSetSourceRef() }

func (d *DataRange) renameRefs(oldID, newID string) { renameRef(&d.sourceRef, oldID, newID) }

func (d *DataRange) readAttributes(a *stream.Attributes) {
	d.rangeBase.readAttributes(a)
	d.sourceRef, _ = a.SId("sourceRef", true)
}

func (d *DataRange) writeAttributes(a *stream.AttrList) {
	d.Base.writeAttributes(a)
	writeString(a, "sourceRef", d.sourceRef)
}
