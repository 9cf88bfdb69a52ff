package sedml

import (
	"encoding/xml"

	"github.com/andaru/sedml/stream"
)

// AbstractTask is a task of the document's listOfTasks
type AbstractTask interface {
	Element
	taskElement()
}

func taskFactory(name string, level, version int) (AbstractTask, bool) {
	switch name {
	case "task":
		return NewTask(level, version), true
	case "repeatedTask":
		return NewRepeatedTask(level, version), true
	case "parameterEstimationTask":
		return NewParameterEstimationTask(level, version), true
	}
	return nil, false
}

type taskBase struct {
	Base
}

func (t *taskBase) taskElement() {}

func (t *taskBase) HasRequiredAttributes() bool { return t.IsSetID() }

func (t *taskBase) readAttributes(a *stream.Attributes) {
	t.Base.readAttributes(a)
	a.Required("id")
}

// Task runs a simulation of a model
type Task struct {
	taskBase
	modelReference      string
	simulationReference string
}

func NewTask(level, version int) *Task {
	t := &Task{}
	t.init(t, level, version)
	return t
}

func (t *Task) Clone() *Task {
	c := *t
	c.Base = t.Base.cloned(&c)
	return &c
}

func (t *Task) cloneElement() Element { return t.Clone() }
func (t *Task) ElementName() string   { return "task" }
func (t *Task) TypeCode() TypeCode    { return TypeTask }

func (t *Task) ModelReference() string             { return t.modelReference }
func (t *Task) IsSetModelReference() bool          { return t.modelReference != "" }
func (t *Task) SetModelReference(ref string) error { return setSId(&t.modelReference, ref) }
func (t *Task) UnsetModelReference()               { t.modelReference = "" }
func (t *Task) SimulationReference() string        { return t.simulationReference }
func (t *Task) IsSetSimulationReference() bool     { return t.simulationReference != "" }
func (t *Task) SetSimulationReference(ref string) error {
	return setSId(&t.simulationReference, ref)
}
func (t *Task) UnsetSimulationReference() { t.simulationReference = "" }

func (t *Task) renameRefs(oldID, newID string) {
	renameRef(&t.modelReference, oldID, newID)
	renameRef(&t.simulationReference, oldID, newID)
}

func (t *Task) readAttributes(a *stream.Attributes) {
	t.taskBase.readAttributes(a)
	t.modelReference, _ = a.SId("modelReference", false)
	t.simulationReference, _ = a.SId("simulationReference", false)
}

func (t *Task) writeAttributes(a *stream.AttrList) {
	t.Base.writeAttributes(a)
	writeString(a, "modelReference", t.modelReference)
	writeString(a, "simulationReference", t.simulationReference)
}

func newSetValueList(parent Element) *ListOf[*SetValue] {
	return newListOf(parent, "listOfChanges", "setValue", only("setValue", NewSetValue))
}

// RepeatedTask runs its sub-tasks once for each value of its master
// range, applying its changes before each repetition.
type RepeatedTask struct {
	taskBase
	rangeID     string
	resetModel  boolAttr
	concatenate boolAttr
	ranges      *ListOf[Range]
	changes     *ListOf[*SetValue]
	subTasks    *ListOf[*SubTask]
}

func NewRepeatedTask(level, version int) *RepeatedTask {
	t := &RepeatedTask{}
	t.init(t, level, version)
	t.ranges = newListOf(t, "listOfRanges", "", rangeFactory)
	t.changes = newSetValueList(t)
	t.subTasks = newListOf(t, "listOfSubTasks", "subTask", only("subTask", NewSubTask))
	return t
}

func (t *RepeatedTask) Clone() *RepeatedTask {
	c := *t
	c.Base = t.Base.cloned(&c)
	c.ranges = t.ranges.cloned(&c)
	c.changes = t.changes.cloned(&c)
	c.subTasks = t.subTasks.cloned(&c)
	return &c
}

func (t *RepeatedTask) cloneElement() Element { return t.Clone() }
func (t *RepeatedTask) ElementName() string   { return "repeatedTask" }
func (t *RepeatedTask) TypeCode() TypeCode    { return TypeRepeatedTask }

// Range returns the id of the master range
func (t *RepeatedTask) Range() string              { return t.rangeID }
func (t *RepeatedTask) IsSetRange() bool           { return t.rangeID != "" }
func (t *RepeatedTask) SetRange(id string) error   { return setSId(&t.rangeID, id) }
func (t *RepeatedTask) UnsetRange()                { t.rangeID = "" }
func (t *RepeatedTask) ResetModel() bool           { return t.resetModel.get() }
func (t *RepeatedTask) IsSetResetModel() bool      { return t.resetModel.set }
func (t *RepeatedTask) SetResetModel(reset bool)   { t.resetModel.put(reset) }
func (t *RepeatedTask) UnsetResetModel()           { t.resetModel = boolAttr{} }
func (t *RepeatedTask) Concatenate() bool          { return t.concatenate.get() }
func (t *RepeatedTask) IsSetConcatenate() bool     { return t.concatenate.set }
func (t *RepeatedTask) SetConcatenate(concat bool) { t.concatenate.put(concat) }
func (t *RepeatedTask) UnsetConcatenate()          { t.concatenate = boolAttr{} }

func (t *RepeatedTask) Ranges() *ListOf[Range]      { return t.ranges }
func (t *RepeatedTask) Changes() *ListOf[*SetValue] { return t.changes }
func (t *RepeatedTask) SubTasks() *ListOf[*SubTask] { return t.subTasks }
func (t *RepeatedTask) CreateSetValue() *SetValue   { return t.changes.Create() }
func (t *RepeatedTask) CreateSubTask() *SubTask     { return t.subTasks.Create() }

func (t *RepeatedTask) CreateUniformRange() *UniformRange {
	return create(t.ranges, NewUniformRange(t.level, t.version))
}

func (t *RepeatedTask) CreateVectorRange() *VectorRange {
	return create(t.ranges, NewVectorRange(t.level, t.version))
}

func (t *RepeatedTask) CreateFunctionalRange() *FunctionalRange {
	return create(t.ranges, NewFunctionalRange(t.level, t.version))
}

func (t *RepeatedTask) CreateDataRange() *DataRange {
	return create(t.ranges, NewDataRange(t.level, t.version))
}

func (t *RepeatedTask) children() []Element { return []Element{t.ranges, t.changes, t.subTasks} }

func (t *RepeatedTask) renameRefs(oldID, newID string) { renameRef(&t.rangeID, oldID, newID) }

func (t *RepeatedTask) readAttributes(a *stream.Attributes) {
	t.taskBase.readAttributes(a)
	t.rangeID, _ = a.SId("range", false)
	t.resetModel.read(a.Bool("resetModel", false))
	t.concatenate.read(a.Bool("concatenate", false))
}

func (t *RepeatedTask) writeAttributes(a *stream.AttrList) {
	t.Base.writeAttributes(a)
	writeString(a, "range", t.rangeID)
	t.resetModel.write(a, "resetModel")
	t.concatenate.write(a, "concatenate")
}

func (t *RepeatedTask) readChild(r *reader, se xml.StartElement) (bool, error) {
	switch se.Name.Local {
	case "listOfRanges":
		return true, r.readElement(t.ranges, se)
	case "listOfChanges":
		return true, r.readElement(t.changes, se)
	case "listOfSubTasks":
		return true, r.readElement(t.subTasks, se)
	}
	return false, nil
}

func (t *RepeatedTask) writeElements(w *writer) {
	writeList(w, t.ranges)
	writeList(w, t.changes)
	writeList(w, t.subTasks)
}

// SubTask is one task run by a RepeatedTask, in order
type SubTask struct {
	Base
	task    string
	order   intAttr
	changes *ListOf[*SetValue]
}

func NewSubTask(level, version int) *SubTask {
	s := &SubTask{}
	s.init(s, level, version)
	s.changes = newSetValueList(s)
	return s
}

func (s *SubTask) Clone() *SubTask {
	c := *s
	c.Base = s.Base.cloned(&c)
	c.changes = s.changes.cloned(&c)
	return &c
}

func (s *SubTask) cloneElement() Element { return s.Clone() }
func (s *SubTask) ElementName() string   { return "subTask" }
func (s *SubTask) TypeCode() TypeCode    { return TypeSubTask }

// Task returns the id of the task run
func (s *SubTask) Task() string              { return s.task }
func (s *SubTask) IsSetTask() bool           { return s.task != "" }
func (s *SubTask) SetTask(task string) error { return setSId(&s.task, task) }
func (s *SubTask) UnsetTask()                { s.task = "" }
func (s *SubTask) Order() int                { return s.order.get() }
func (s *SubTask) IsSetOrder() bool          { return s.order.set }
func (s *SubTask) SetOrder(order int)        { s.order.put(order) }
func (s *SubTask) UnsetOrder()               { s.order = intAttr{} }

func (s *SubTask) Changes() *ListOf[*SetValue] { return s.changes }
func (s *SubTask) CreateSetValue() *SetValue   { return s.changes.Create() }

func (s *SubTask) HasRequiredAttributes() bool { return s.IsSetTask() }

func (s *SubTask) children() []Element { return []Element{s.changes} }

func (s *SubTask) renameRefs(oldID, newID string) { renameRef(&s.task, oldID, newID) }

func (s *SubTask) readAttributes(a *stream.Attributes) {
	s.Base.readAttributes(a)
	s.task, _ = a.SId("task", true)
	s.order.read(a.Int("order", false))
}

func (s *SubTask) writeAttributes(a *stream.AttrList) {
	s.Base.writeAttributes(a)
	writeString(a, "task", s.task)
	s.order.write(a, "order")
}

func (s *SubTask) readChild(r *reader, se xml.StartElement) (bool, error) {
	if se.Name.Local == "listOfChanges" {
		return true, r.readElement(s.changes, se)
	}
	return false, nil
}

func (s *SubTask) writeElements(w *writer) { writeList(w, s.changes) }

// ParameterEstimationTask fits adjustable model parameters to
// experimental data.
type ParameterEstimationTask struct {
	taskBase
	modelReference       string
	algorithm            *Algorithm
	objective            Objective
	adjustableParameters *ListOf[*AdjustableParameter]
	fitExperiments       *ListOf[*FitExperiment]
}

func NewParameterEstimationTask(level, version int) *ParameterEstimationTask {
	t := &ParameterEstimationTask{}
	t.init(t, level, version)
	t.adjustableParameters = newListOf(t, "listOfAdjustableParameters", "adjustableParameter",
		only("adjustableParameter", NewAdjustableParameter))
	t.fitExperiments = newListOf(t, "listOfFitExperiments", "fitExperiment", only("fitExperiment", NewFitExperiment))
	return t
}

func (t *ParameterEstimationTask) Clone() *ParameterEstimationTask {
	c := *t
	c.Base = t.Base.cloned(&c)
	c.algorithm, c.objective = nil, nil
	if t.algorithm != nil {
		c.algorithm = t.algorithm.Clone()
		c.algorithm.parent = &c
	}
	if t.objective != nil {
		c.objective = t.objective.cloneElement().(Objective)
		c.objective.sedBase().parent = &c
	}
	c.adjustableParameters = t.adjustableParameters.cloned(&c)
	c.fitExperiments = t.fitExperiments.cloned(&c)
	return &c
}

func (t *ParameterEstimationTask) cloneElement() Element { return t.Clone() }
func (t *ParameterEstimationTask) ElementName() string   { return "parameterEstimationTask" }
func (t *ParameterEstimationTask) TypeCode() TypeCode    { return TypeParameterEstimationTask }

func (t *ParameterEstimationTask) ModelReference() string    { return t.modelReference }
func (t *ParameterEstimationTask) IsSetModelReference() bool { return t.modelReference != "" }
func (t *ParameterEstimationTask) SetModelReference(ref string) error {
	return setSId(&t.modelReference, ref)
}
func (t *ParameterEstimationTask) UnsetModelReference() { t.modelReference = "" }

func (t *ParameterEstimationTask) HasRequiredAttributes() bool {
	return t.IsSetID() && t.IsSetModelReference()
}

func (t *ParameterEstimationTask) renameRefs(oldID, newID string) {
	renameRef(&t.modelReference, oldID, newID)
}

func (t *ParameterEstimationTask) readAttributes(a *stream.Attributes) {
	t.taskBase.readAttributes(a)
	t.modelReference, _ = a.SId("modelReference", true)
}

func (t *ParameterEstimationTask) writeAttributes(a *stream.AttrList) {
	t.Base.writeAttributes(a)
	writeString(a, "modelReference", t.modelReference)
}

func (t *ParameterEstimationTask) Algorithm() *Algorithm { return t.algorithm }
func (t *ParameterEstimationTask) IsSetAlgorithm() bool  { return t.algorithm != nil }
func (t *ParameterEstimationTask) SetAlgorithm(a *Algorithm) error {
	return setChild(t, &t.algorithm, a)
}
func (t *ParameterEstimationTask) CreateAlgorithm() *Algorithm {
	return createChild(t, &t.algorithm, NewAlgorithm)
}
func (t *ParameterEstimationTask) UnsetAlgorithm() { t.algorithm = nil }

// Objective returns the objective function minimised by the fit, or nil
func (t *ParameterEstimationTask) Objective() Objective { return t.objective }
func (t *ParameterEstimationTask) IsSetObjective() bool { return t.objective != nil }
func (t *ParameterEstimationTask) SetObjective(o Objective) error {
	return setChild(t, &t.objective, o)
}
func (t *ParameterEstimationTask) UnsetObjective() { t.objective = nil }

func (t *ParameterEstimationTask) CreateLeastSquareObjectiveFunction() *LeastSquareObjectiveFunction {
	o := NewLeastSquareObjectiveFunction(t.level, t.version)
	o.parent = t
	t.objective = o
	return o
}

func (t *ParameterEstimationTask) AdjustableParameters() *ListOf[*AdjustableParameter] {
	return t.adjustableParameters
}

func (t *ParameterEstimationTask) FitExperiments() *ListOf[*FitExperiment] {
	return t.fitExperiments
}

func (t *ParameterEstimationTask) CreateAdjustableParameter() *AdjustableParameter {
	return t.adjustableParameters.Create()
}

func (t *ParameterEstimationTask) CreateFitExperiment() *FitExperiment {
	return t.fitExperiments.Create()
}

func (t *ParameterEstimationTask) HasRequiredElements() bool {
	return t.IsSetAlgorithm() && t.IsSetObjective()
}

func (t *ParameterEstimationTask) children() []Element {
	return nonNil(t.algorithm, t.objective, t.adjustableParameters, t.fitExperiments)
}

func (t *ParameterEstimationTask) readChild(r *reader, se xml.StartElement) (bool, error) {
	switch se.Name.Local {
	case "algorithm":
		return true, readSingle(r, t, &t.algorithm, se, NewAlgorithm)
	case "leastSquareObjectiveFunction":
		return true, readSingle(r, t, &t.objective, se, newObjective)
	case "listOfAdjustableParameters":
		return true, r.readElement(t.adjustableParameters, se)
	case "listOfFitExperiments":
		return true, r.readElement(t.fitExperiments, se)
	}
	return false, nil
}

func (t *ParameterEstimationTask) writeElements(w *writer) {
	w.single(t.algorithm)
	w.single(t.objective)
	writeList(w, t.adjustableParameters)
	writeList(w, t.fitExperiments)
}
