package sedml

import (
	"encoding/xml"

	"github.com/andaru/sedml/stream"
)

// Simulation is a simulation setup run by a task: a time course, a
// single step, a steady state or a generic analysis.
type Simulation interface {
	Element
	Algorithm() *Algorithm
	IsSetAlgorithm() bool
	SetAlgorithm(a *Algorithm) error
	CreateAlgorithm() *Algorithm
	UnsetAlgorithm()
}

func simulationFactory(name string, level, version int) (Simulation, bool) {
	switch name {
	case "uniformTimeCourse":
		return NewUniformTimeCourse(level, version), true
	case "oneStep":
		return NewOneStep(level, version), true
	case "steadyState":
		return NewSteadyState(level, version), true
	case "analysis":
		return NewAnalysis(level, version), true
	}
	return nil, false
}

type simulationBase struct {
	Base
	algorithm *Algorithm
}

func (s *simulationBase) clonedAlgorithm(self Element) *Algorithm {
	if s.algorithm == nil {
		return nil
	}
	a := s.algorithm.Clone()
	a.parent = self
	return a
}

func (s *simulationBase) Algorithm() *Algorithm { return s.algorithm }
func (s *simulationBase) IsSetAlgorithm() bool  { return s.algorithm != nil }

// SetAlgorithm stores a copy of a. A nil a unsets the algorithm.
func (s *simulationBase) SetAlgorithm(a *Algorithm) error {
	return setChild(s.self, &s.algorithm, a)
}

func (s *simulationBase) CreateAlgorithm() *Algorithm {
	return createChild(s.self, &s.algorithm, NewAlgorithm)
}

func (s *simulationBase) UnsetAlgorithm() { s.algorithm = nil }

func (s *simulationBase) HasRequiredAttributes() bool { return s.IsSetID() }
func (s *simulationBase) HasRequiredElements() bool   { return s.IsSetAlgorithm() }

func (s *simulationBase) children() []Element { return nonNil(s.algorithm) }

func (s *simulationBase) readAttributes(a *stream.Attributes) {
	s.Base.readAttributes(a)
	a.Required("id")
}

func (s *simulationBase) readChild(r *reader, se xml.StartElement) (bool, error) {
	if se.Name.Local == "algorithm" {
		return true, readSingle(r, s.self, &s.algorithm, se, NewAlgorithm)
	}
	return false, nil
}

func (s *simulationBase) writeElements(w *writer) { w.single(s.algorithm) }

// UniformTimeCourse simulates a model over time, reporting results at
// evenly spaced steps.
type UniformTimeCourse struct {
	simulationBase
	initialTime     floatAttr
	outputStartTime floatAttr
	outputEndTime   floatAttr
	numberOfSteps   intAttr
}

func NewUniformTimeCourse(level, version int) *UniformTimeCourse {
	s := &UniformTimeCourse{}
	s.init(s, level, version)
	return s
}

func (s *UniformTimeCourse) Clone() *UniformTimeCourse {
	c := *s
	c.Base = s.Base.cloned(&c)
	c.algorithm = s.clonedAlgorithm(&c)
	return &c
}

func (s *UniformTimeCourse) cloneElement() Element { return s.Clone() }
func (s *UniformTimeCourse) ElementName() string   { return "uniformTimeCourse" }
func (s *UniformTimeCourse) TypeCode() TypeCode    { return TypeUniformTimeCourse }

func (s *UniformTimeCourse) InitialTime() float64         { return s.initialTime.get() }
func (s *UniformTimeCourse) IsSetInitialTime() bool       { return s.initialTime.set }
func (s *UniformTimeCourse) SetInitialTime(t float64)     { s.initialTime.put(t) }
func (s *UniformTimeCourse) UnsetInitialTime()            { s.initialTime = floatAttr{} }
func (s *UniformTimeCourse) OutputStartTime() float64     { return s.outputStartTime.get() }
func (s *UniformTimeCourse) IsSetOutputStartTime() bool   { return s.outputStartTime.set }
func (s *UniformTimeCourse) SetOutputStartTime(t float64) { s.outputStartTime.put(t) }
func (s *UniformTimeCourse) UnsetOutputStartTime()        { s.outputStartTime = floatAttr{} }
func (s *UniformTimeCourse) OutputEndTime() float64       { return s.outputEndTime.get() }
func (s *UniformTimeCourse) IsSetOutputEndTime() bool     { return s.outputEndTime.set }
func (s *UniformTimeCourse) SetOutputEndTime(t float64)   { s.outputEndTime.put(t) }
func (s *UniformTimeCourse) UnsetOutputEndTime()          { s.outputEndTime = floatAttr{} }

// NumberOfSteps returns the number of steps, written as numberOfSteps
// from level 1 version 4 and as numberOfPoints before it.
func (s *UniformTimeCourse) NumberOfSteps() int       { return s.numberOfSteps.get() }
func (s *UniformTimeCourse) IsSetNumberOfSteps() bool { return s.numberOfSteps.set }
func (s *UniformTimeCourse) SetNumberOfSteps(n int)   { s.numberOfSteps.put(n) }
func (s *UniformTimeCourse) UnsetNumberOfSteps()      { s.numberOfSteps = intAttr{} }

// NumberOfPoints is NumberOfSteps under its name before version 4
func (s *UniformTimeCourse) NumberOfPoints() int       { return s.NumberOfSteps() }
func (s *UniformTimeCourse) IsSetNumberOfPoints() bool { return s.IsSetNumberOfSteps() }
func (s *UniformTimeCourse) SetNumberOfPoints(n int)   { s.SetNumberOfSteps(n) }
func (s *UniformTimeCourse) UnsetNumberOfPoints()      { s.UnsetNumberOfSteps() }

func (s *UniformTimeCourse) HasRequiredAttributes() bool {
	return s.IsSetID() && s.initialTime.set && s.outputStartTime.set && s.outputEndTime.set && s.numberOfSteps.set
}

func (s *UniformTimeCourse) readAttributes(a *stream.Attributes) {
	s.simulationBase.readAttributes(a)
	s.initialTime.read(a.Float("initialTime", true))
	s.outputStartTime.read(a.Float("outputStartTime", true))
	s.outputEndTime.read(a.Float("outputEndTime", true))
	s.numberOfSteps.read(readSteps(a, s.version))
}

func (s *UniformTimeCourse) writeAttributes(a *stream.AttrList) {
	s.Base.writeAttributes(a)
	s.initialTime.write(a, "initialTime")
	s.outputStartTime.write(a, "outputStartTime")
	s.outputEndTime.write(a, "outputEndTime")
	s.numberOfSteps.write(a, stepsAttr(s.version))
}

// stepsAttr names the step count attribute of a schema version
func stepsAttr(version int) string {
	if version >= 4 {
		return "numberOfSteps"
	}
	return "numberOfPoints"
}

// readSteps reads the step count under the name of version, falling
// back to the name of other versions.
func readSteps(a *stream.Attributes, version int) (int, bool) {
	name, other := stepsAttr(version), "numberOfPoints"
	if name == other {
		other = "numberOfSteps"
	}
	if !a.Has(name) && a.Has(other) {
		return a.Int(other, true)
	}
	return a.Int(name, true)
}

// OneStep advances a model by a single step
type OneStep struct {
	simulationBase
	step floatAttr
}

func NewOneStep(level, version int) *OneStep {
	s := &OneStep{}
	s.init(s, level, version)
	return s
}

func (s *OneStep) Clone() *OneStep {
	c := *s
	c.Base = s.Base.cloned(&c)
	c.algorithm = s.clonedAlgorithm(&c)
	return &c
}

func (s *OneStep) cloneElement() Element { return s.Clone() }
func (s *OneStep) ElementName() string   { return "oneStep" }
func (s *OneStep) TypeCode() TypeCode    { return TypeOneStep }

func (s *OneStep) Step() float64        { return s.step.get() }
func (s *OneStep) IsSetStep() bool      { return s.step.set }
func (s *OneStep) SetStep(step float64) { s.step.put(step) }
func (s *OneStep) UnsetStep()           { s.step = floatAttr{} }

func (s *OneStep) HasRequiredAttributes() bool { return s.IsSetID() && s.step.set }

func (s *OneStep) readAttributes(a *stream.Attributes) {
	s.simulationBase.readAttributes(a)
	s.step.read(a.Float("step", true))
}

func (s *OneStep) writeAttributes(a *stream.AttrList) {
	s.Base.writeAttributes(a)
	s.step.write(a, "step")
}

// SteadyState computes a model's steady state
type SteadyState struct {
	simulationBase
}

func NewSteadyState(level, version int) *SteadyState {
	s := &SteadyState{}
	s.init(s, level, version)
	return s
}

func (s *SteadyState) Clone() *SteadyState {
	c := *s
	c.Base = s.Base.cloned(&c)
	c.algorithm = s.clonedAlgorithm(&c)
	return &c
}

func (s *SteadyState) cloneElement() Element { return s.Clone() }
func (s *SteadyState) ElementName() string   { return "steadyState" }
func (s *SteadyState) TypeCode() TypeCode    { return TypeSteadyState }

// Analysis is a simulation whose semantics are given by its algorithm
type Analysis struct {
	simulationBase
}

func NewAnalysis(level, version int) *Analysis {
	s := &Analysis{}
	s.init(s, level, version)
	return s
}

func (s *Analysis) Clone() *Analysis {
	c := *s
	c.Base = s.Base.cloned(&c)
	c.algorithm = s.clonedAlgorithm(&c)
	return &c
}

func (s *Analysis) cloneElement() Element { return s.Clone() }
func (s *Analysis) ElementName() string   { return "analysis" }
func (s *Analysis) TypeCode() TypeCode    { return TypeAnalysis }
