package sedml

import (
	"encoding/xml"

	"github.com/andaru/sedml/stream"
)

// Objective is the function minimised by a ParameterEstimationTask
type Objective interface {
	Element
	objectiveElement()
}

func newObjective(level, version int) Objective {
	return NewLeastSquareObjectiveFunction(level, version)
}

// LeastSquareObjectiveFunction minimises the sum of squared differences
// between model and data
type LeastSquareObjectiveFunction struct {
	Base
}

func NewLeastSquareObjectiveFunction(level, version int) *LeastSquareObjectiveFunction {
	o := &LeastSquareObjectiveFunction{}
	o.init(o, level, version)
	return o
}

func (o *LeastSquareObjectiveFunction) Clone() *LeastSquareObjectiveFunction {
	c := *o
	c.Base = o.Base.cloned(&c)
	return &c
}

func (o *LeastSquareObjectiveFunction) cloneElement() Element { return o.Clone() }
func (o *LeastSquareObjectiveFunction) ElementName() string   { return "leastSquareObjectiveFunction" }
func (o *LeastSquareObjectiveFunction) TypeCode() TypeCode {
	return TypeLeastSquareObjectiveFunction
}
func (o *LeastSquareObjectiveFunction) objectiveElement() {}

// AdjustableParameter is a model parameter varied by a fit
type AdjustableParameter struct {
	Base
	initialValue         floatAttr
	modelReference       string
	target               string
	bounds               *Bounds
	experimentReferences *ListOf[*ExperimentReference]
}

func NewAdjustableParameter(level, version int) *AdjustableParameter {
	p := &AdjustableParameter{}
	p.init(p, level, version)
	p.experimentReferences = newListOf(p, "listOfExperimentReferences", "experimentReference",
		only("experimentReference", NewExperimentReference))
	return p
}

func (p *AdjustableParameter) Clone() *AdjustableParameter {
	c := *p
	c.Base = p.Base.cloned(&c)
	c.bounds = nil
	if p.bounds != nil {
		c.bounds = p.bounds.Clone()
		c.bounds.parent = &c
	}
	c.experimentReferences = p.experimentReferences.cloned(&c)
	return &c
}

func (p *AdjustableParameter) cloneElement() Element { return p.Clone() }
func (p *AdjustableParameter) ElementName() string   { return "adjustableParameter" }
func (p *AdjustableParameter) TypeCode() TypeCode    { return TypeAdjustableParameter }

func (p *AdjustableParameter) InitialValue() float64     { return p.initialValue.get() }
func (p *AdjustableParameter) IsSetInitialValue() bool   { return p.initialValue.set }
func (p *AdjustableParameter) SetInitialValue(v float64) { p.initialValue.put(v) }
func (p *AdjustableParameter) UnsetInitialValue()        { p.initialValue = floatAttr{} }

func (p *AdjustableParameter) ModelReference() string    { return p.modelReference }
func (p *AdjustableParameter) IsSetModelReference() bool { return p.modelReference != "" }
func (p *AdjustableParameter) SetModelReference(ref string) error {
	return setSId(&p.modelReference, ref)
}
func (p *AdjustableParameter) UnsetModelReference()    { p.modelReference = "" }
func (p *AdjustableParameter) Target() string          { return p.target }
func (p *AdjustableParameter) IsSetTarget() bool       { return p.target != "" }
func (p *AdjustableParameter) SetTarget(target string) { p.target = target }
func (p *AdjustableParameter) UnsetTarget()            { p.target = "" }

func (p *AdjustableParameter) Bounds() *Bounds           { return p.bounds }
func (p *AdjustableParameter) IsSetBounds() bool         { return p.bounds != nil }
func (p *AdjustableParameter) SetBounds(b *Bounds) error { return setChild(p, &p.bounds, b) }
func (p *AdjustableParameter) CreateBounds() *Bounds     { return createChild(p, &p.bounds, NewBounds) }
func (p *AdjustableParameter) UnsetBounds()              { p.bounds = nil }

func (p *AdjustableParameter) ExperimentReferences() *ListOf[*ExperimentReference] {
	return p.experimentReferences
}

func (p *AdjustableParameter) CreateExperimentReference() *ExperimentReference {
	return p.experimentReferences.Create()
}

func (p *AdjustableParameter) HasRequiredAttributes() bool {
	return p.IsSetModelReference() && p.IsSetTarget()
}

func (p *AdjustableParameter) HasRequiredElements() bool { return p.IsSetBounds() }

func (p *AdjustableParameter) children() []Element {
	return nonNil(p.bounds, p.experimentReferences)
}

func (p *AdjustableParameter) renameRefs(oldID, newID string) {
	renameRef(&p.modelReference, oldID, newID)
}

func (p *AdjustableParameter) readAttributes(a *stream.Attributes) {
	p.Base.readAttributes(a)
	p.initialValue.read(a.Float("initialValue", false))
	p.modelReference, _ = a.SId("modelReference", true)
	p.target, _ = a.String("target", true)
}

func (p *AdjustableParameter) writeAttributes(a *stream.AttrList) {
	p.Base.writeAttributes(a)
	p.initialValue.write(a, "initialValue")
	writeString(a, "modelReference", p.modelReference)
	writeString(a, "target", p.target)
}

func (p *AdjustableParameter) readChild(r *reader, se xml.StartElement) (bool, error) {
	switch se.Name.Local {
	case "bounds":
		return true, readSingle(r, p, &p.bounds, se, NewBounds)
	case "listOfExperimentReferences":
		return true, r.readElement(p.experimentReferences, se)
	}
	return false, nil
}

func (p *AdjustableParameter) writeElements(w *writer) {
	w.single(p.bounds)
	writeList(w, p.experimentReferences)
}

// Bounds limits the values an adjustable parameter may take
type Bounds struct {
	Base
	lowerBound floatAttr
	upperBound floatAttr
	scale      ScaleType
}

func NewBounds(level, version int) *Bounds {
	b := &Bounds{}
	b.init(b, level, version)
	return b
}

func (b *Bounds) Clone() *Bounds {
	c := *b
	c.Base = b.Base.cloned(&c)
	return &c
}

func (b *Bounds) cloneElement() Element { return b.Clone() }
func (b *Bounds) ElementName() string   { return "bounds" }
func (b *Bounds) TypeCode() TypeCode    { return TypeBounds }

func (b *Bounds) LowerBound() float64     { return b.lowerBound.get() }
func (b *Bounds) IsSetLowerBound() bool   { return b.lowerBound.set }
func (b *Bounds) SetLowerBound(v float64) { b.lowerBound.put(v) }
func (b *Bounds) UnsetLowerBound()        { b.lowerBound = floatAttr{} }
func (b *Bounds) UpperBound() float64     { return b.upperBound.get() }
func (b *Bounds) IsSetUpperBound() bool   { return b.upperBound.set }
func (b *Bounds) SetUpperBound(v float64) { b.upperBound.put(v) }
func (b *Bounds) UnsetUpperBound()        { b.upperBound = floatAttr{} }

func (b *Bounds) Scale() ScaleType                { return b.scale }
func (b *Bounds) IsSetScale() bool                { return b.scale != ScaleTypeInvalid }
func (b *Bounds) SetScale(s ScaleType) error      { return setEnum(&b.scale, s) }
func (b *Bounds) ScaleAsString() string           { return b.scale.String() }
func (b *Bounds) SetScaleAsString(s string) error { return setEnum(&b.scale, ParseScaleType(s)) }
func (b *Bounds) UnsetScale()                     { b.scale = ScaleTypeInvalid }

func (b *Bounds) HasRequiredAttributes() bool {
	return b.lowerBound.set && b.upperBound.set && b.IsSetScale()
}

func (b *Bounds) readAttributes(a *stream.Attributes) {
	b.Base.readAttributes(a)
	b.lowerBound.read(a.Float("lowerBound", true))
	b.upperBound.read(a.Float("upperBound", true))
	b.scale = readEnum(a, "scale", true, ParseScaleType)
}

func (b *Bounds) writeAttributes(a *stream.AttrList) {
	b.Base.writeAttributes(a)
	b.lowerBound.write(a, "lowerBound")
	b.upperBound.write(a, "upperBound")
	writeEnum(a, "scale", b.scale)
}

// ExperimentReference restricts an adjustable parameter to one fit
// experiment
type ExperimentReference struct {
	Base
	experiment string
}

func NewExperimentReference(level, version int) *ExperimentReference {
	e := &ExperimentReference{}
	e.init(e, level, version)
	return e
}

func (e *ExperimentReference) Clone() *ExperimentReference {
	c := *e
	c.Base = e.Base.cloned(&c)
	return &c
}

func (e *ExperimentReference) cloneElement() Element { return e.Clone() }
func (e *ExperimentReference) ElementName() string   { return "experimentReference" }
func (e *ExperimentReference) TypeCode() TypeCode    { return TypeExperimentReference }

func (e *ExperimentReference) Experiment() string            { return e.experiment }
func (e *ExperimentReference) IsSetExperiment() bool         { return e.experiment != "" }
func (e *ExperimentReference) SetExperiment(id string) error { return setSId(&e.experiment, id) }
func (e *ExperimentReference) UnsetExperiment()              { e.experiment = "" }

func (e *ExperimentReference) HasRequiredAttributes() bool { return e.IsSetExperiment() }

func (e *ExperimentReference) renameRefs(oldID, newID string) {
	renameRef(&e.experiment, oldID, newID)
}

func (e *ExperimentReference) readAttributes(a *stream.Attributes) {
	e.Base.readAttributes(a)
	e.experiment, _ = a.SId("experiment", true)
}

func (e *ExperimentReference) writeAttributes(a *stream.AttrList) {
	e.Base.writeAttributes(a)
	writeString(a, "experiment", e.experiment)
}

// FitExperiment is one experiment a model is fitted against, with its
// mapping of data columns onto the model.
type FitExperiment struct {
	Base
	experimentType ExperimentType
	algorithm      *Algorithm
	fitMappings    *ListOf[*FitMapping]
}

func NewFitExperiment(level, version int) *FitExperiment {
	f := &FitExperiment{}
	f.init(f, level, version)
	f.fitMappings = newListOf(f, "listOfFitMappings", "fitMapping", only("fitMapping", NewFitMapping))
	return f
}

func (f *FitExperiment) Clone() *FitExperiment {
	c := *f
	c.Base = f.Base.cloned(&c)
	c.algorithm = nil
	if f.algorithm != nil {
		c.algorithm = f.algorithm.Clone()
		c.algorithm.parent = &c
	}
	c.fitMappings = f.fitMappings.cloned(&c)
	return &c
}

func (f *FitExperiment) cloneElement() Element { return f.Clone() }
func (f *FitExperiment) ElementName() string   { return "fitExperiment" }
func (f *FitExperiment) TypeCode() TypeCode    { return TypeFitExperiment }

func (f *FitExperiment) Type() ExperimentType           { return f.experimentType }
func (f *FitExperiment) IsSetType() bool                { return f.experimentType != ExperimentTypeInvalid }
func (f *FitExperiment) SetType(t ExperimentType) error { return setEnum(&f.experimentType, t) }
func (f *FitExperiment) TypeAsString() string           { return f.experimentType.String() }
func (f *FitExperiment) UnsetType()                     { f.experimentType = ExperimentTypeInvalid }

func (f *FitExperiment) SetTypeAsString(s string) error {
	return setEnum(&f.experimentType, ParseExperimentType(s))
}

func (f *FitExperiment) Algorithm() *Algorithm           { return f.algorithm }
func (f *FitExperiment) IsSetAlgorithm() bool            { return f.algorithm != nil }
func (f *FitExperiment) SetAlgorithm(a *Algorithm) error { return setChild(f, &f.algorithm, a) }
func (f *FitExperiment) CreateAlgorithm() *Algorithm {
	return createChild(f, &f.algorithm, NewAlgorithm)
}
func (f *FitExperiment) UnsetAlgorithm() { f.algorithm = nil }

func (f *FitExperiment) FitMappings() *ListOf[*FitMapping] { return f.fitMappings }
func (f *FitExperiment) CreateFitMapping() *FitMapping     { return f.fitMappings.Create() }

func (f *FitExperiment) HasRequiredAttributes() bool { return f.IsSetType() }

func (f *FitExperiment) children() []Element { return nonNil(f.algorithm, f.fitMappings) }

func (f *FitExperiment) readAttributes(a *stream.Attributes) {
	f.Base.readAttributes(a)
	f.experimentType = readEnum(a, "type", true, ParseExperimentType)
}

func (f *FitExperiment) writeAttributes(a *stream.AttrList) {
	f.Base.writeAttributes(a)
	writeEnum(a, "type", f.experimentType)
}

func (f *FitExperiment) readChild(r *reader, se xml.StartElement) (bool, error) {
	switch se.Name.Local {
	case "algorithm":
		return true, readSingle(r, f, &f.algorithm, se, NewAlgorithm)
	case "listOfFitMappings":
		return true, r.readElement(f.fitMappings, se)
	}
	return false, nil
}

func (f *FitExperiment) writeElements(w *writer) {
	w.single(f.algorithm)
	writeList(w, f.fitMappings)
}

// FitMapping maps a column of experimental data onto a model quantity
type FitMapping struct {
	Base
	mappingType MappingType
	dataSource  string
	target      string
	weight      floatAttr
	pointWeight string
}

func NewFitMapping(level, version int) *FitMapping {
	m := &FitMapping{}
	m.init(m, level, version)
	return m
}

func (m *FitMapping) Clone() *FitMapping {
	c := *m
	c.Base = m.Base.cloned(&c)
	return &c
}

func (m *FitMapping) cloneElement() Element { return m.Clone() }
func (m *FitMapping) ElementName() string   { return "fitMapping" }
func (m *FitMapping) TypeCode() TypeCode    { return TypeFitMapping }

func (m *FitMapping) Type() MappingType           { return m.mappingType }
func (m *FitMapping) IsSetType() bool             { return m.mappingType != MappingTypeInvalid }
func (m *FitMapping) SetType(t MappingType) error { return setEnum(&m.mappingType, t) }
func (m *FitMapping) TypeAsString() string        { return m.mappingType.String() }
func (m *FitMapping) SetTypeAsString(s string) error {
	return setEnum(&m.mappingType, ParseMappingType(s))
}
func (m *FitMapping) UnsetType() { m.mappingType = MappingTypeInvalid }

// DataSource returns the id of the data source holding the column
func (m *FitMapping) DataSource() string             { return m.dataSource }
func (m *FitMapping) IsSetDataSource() bool          { return m.dataSource != "" }
func (m *FitMapping) SetDataSource(ref string) error { return setSId(&m.dataSource, ref) }
func (m *FitMapping) UnsetDataSource()               { m.dataSource = "" }

// Target returns the id of the data generator or variable the column is
// compared with
func (m *FitMapping) Target() string                  { return m.target }
func (m *FitMapping) IsSetTarget() bool               { return m.target != "" }
func (m *FitMapping) SetTarget(ref string) error      { return setSId(&m.target, ref) }
func (m *FitMapping) UnsetTarget()                    { m.target = "" }
func (m *FitMapping) Weight() float64                 { return m.weight.get() }
func (m *FitMapping) IsSetWeight() bool               { return m.weight.set }
func (m *FitMapping) SetWeight(w float64)             { m.weight.put(w) }
func (m *FitMapping) UnsetWeight()                    { m.weight = floatAttr{} }
func (m *FitMapping) PointWeight() string             { return m.pointWeight }
func (m *FitMapping) IsSetPointWeight() bool          { return m.pointWeight != "" }
func (m *FitMapping) SetPointWeight(ref string) error { return setSId(&m.pointWeight, ref) }
func (m *FitMapping) UnsetPointWeight()               { m.pointWeight = "" }

func (m *FitMapping) HasRequiredAttributes() bool {
	return m.IsSetType() && m.IsSetDataSource() && m.IsSetTarget()
}

func (m *FitMapping) renameRefs(oldID, newID string) {
	renameRef(&m.dataSource, oldID, newID)
	renameRef(&m.target, oldID, newID)
	renameRef(&m.pointWeight, oldID, newID)
}

func (m *FitMapping) readAttributes(a *stream.Attributes) {
	m.Base.readAttributes(a)
	m.mappingType = readEnum(a, "type", true, ParseMappingType)
	m.dataSource, _ = a.SId("dataSource", true)
	m.target, _ = a.SId("target", true)
	m.weight.read(a.Float("weight", false))
	m.pointWeight, _ = a.SId("pointWeight", false)
}

func (m *FitMapping) writeAttributes(a *stream.AttrList) {
	m.Base.writeAttributes(a)
	writeEnum(a, "type", m.mappingType)
	writeString(a, "dataSource", m.dataSource)
	writeString(a, "target", m.target)
	m.weight.write(a, "weight")
	writeString(a, "pointWeight", m.pointWeight)
}
