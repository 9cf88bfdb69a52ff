package sedml

import (
	"encoding/xml"
	"fmt"

	"github.com/andaru/sedml/sederr"
	"github.com/andaru/sedml/stream"
)

// Document is the root <sedML> element of a simulation experiment
// description.
type Document struct {
	Base
	namespaces *Namespaces

	dataDescriptions *ListOf[*DataDescription]
	models           *ListOf[*Model]
	simulations      *ListOf[Simulation]
	tasks            *ListOf[AbstractTask]
	dataGenerators   *ListOf[*DataGenerator]
	outputs          *ListOf[Output]
	styles           *ListOf[*Style]

	log sederr.Log
}

// NewDocument returns an empty document of a SED-ML level and version
func NewDocument(level, version int) *Document {
	return NewDocumentWithNamespaces(NewNamespaces(level, version))
}

// NewDocumentWithNamespaces returns an empty document with the schema
// version and prefix declarations of ns. A nil ns selects the default
// level and version.
func NewDocumentWithNamespaces(ns *Namespaces) *Document {
	if ns == nil {
		ns = NewNamespaces(DefaultLevel, DefaultVersion)
	}
	d := &Document{namespaces: ns.Clone()}
	d.init(d, ns.level, ns.version)
	d.dataDescriptions = newListOf(d, "listOfDataDescriptions", "dataDescription", only("dataDescription", NewDataDescription))
	d.models = newListOf(d, "listOfModels", "model", only("model", NewModel))
	d.simulations = newListOf(d, "listOfSimulations", "", simulationFactory)
	d.tasks = newListOf(d, "listOfTasks", "", taskFactory)
	d.dataGenerators = newListOf(d, "listOfDataGenerators", "dataGenerator", only("dataGenerator", NewDataGenerator))
	d.outputs = newListOf(d, "listOfOutputs", "", outputFactory)
	d.styles = newListOf(d, "listOfStyles", "style", only("style", NewStyle))
	return d
}

// Clone returns a deep copy of d. The error log is not copied.
func (d *Document) Clone() *Document {
	c := *d
	c.Base = d.Base.cloned(&c)
	c.namespaces = d.namespaces.Clone()
	c.dataDescriptions = d.dataDescriptions.cloned(&c)
	c.models = d.models.cloned(&c)
	c.simulations = d.simulations.cloned(&c)
	c.tasks = d.tasks.cloned(&c)
	c.dataGenerators = d.dataGenerators.cloned(&c)
	c.outputs = d.outputs.cloned(&c)
	c.styles = d.styles.cloned(&c)
	c.log = sederr.Log{}
	return &c
}

func (d *Document) cloneElement() Element { return d.Clone() }

func (d *Document) ElementName() string { return "sedML" }
func (d *Document) TypeCode() TypeCode  { return TypeDocument }

// Document returns d itself
func (d *Document) Document() *Document { return d }

// Errors returns the problems found when the document was read
func (d *Document) Errors() *sederr.Log { return &d.log }

// SetLevelAndVersion changes the schema version of the document and every
// element in it. Version-dependent attribute names follow on write.
func (d *Document) SetLevelAndVersion(level, version int) error {
	if NamespaceURI(level, version) == "" {
		return sederr.InvalidAttributeValue
	}
	d.setLevelAndVersion(level, version)
	return nil
}

func (d *Document) setLevelAndVersion(level, version int) {
	d.namespaces.level, d.namespaces.version = level, version
	setLevelVersion(d, level, version)
}

// Namespaces returns a copy of the document's namespaces
func (d *Document) Namespaces() *Namespaces { return d.namespaces.Clone() }

// AddNamespace declares an additional namespace prefix on the document root
func (d *Document) AddNamespace(prefix, uri string) error { return d.namespaces.Add(prefix, uri) }

// RemoveNamespace removes a prefix declaration
func (d *Document) RemoveNamespace(prefix string) { d.namespaces.Remove(prefix) }

func (d *Document) DataDescriptions() *ListOf[*DataDescription] { return d.dataDescriptions }
func (d *Document) Models() *ListOf[*Model]                     { return d.models }
func (d *Document) Simulations() *ListOf[Simulation]            { return d.simulations }
func (d *Document) Tasks() *ListOf[AbstractTask]                { return d.tasks }
func (d *Document) DataGenerators() *ListOf[*DataGenerator]     { return d.dataGenerators }
func (d *Document) Outputs() *ListOf[Output]                    { return d.outputs }
func (d *Document) Styles() *ListOf[*Style]                     { return d.styles }

func (d *Document) CreateDataDescription() *DataDescription { return d.dataDescriptions.Create() }
func (d *Document) CreateModel() *Model                     { return d.models.Create() }
func (d *Document) CreateDataGenerator() *DataGenerator     { return d.dataGenerators.Create() }
func (d *Document) CreateStyle() *Style                     { return d.styles.Create() }

func (d *Document) CreateUniformTimeCourse() *UniformTimeCourse {
	return create(d.simulations, NewUniformTimeCourse(d.level, d.version))
}

func (d *Document) CreateOneStep() *OneStep {
	return create(d.simulations, NewOneStep(d.level, d.version))
}

func (d *Document) CreateSteadyState() *SteadyState {
	return create(d.simulations, NewSteadyState(d.level, d.version))
}

func (d *Document) CreateAnalysis() *Analysis {
	return create(d.simulations, NewAnalysis(d.level, d.version))
}

func (d *Document) CreateTask() *Task { return create(d.tasks, NewTask(d.level, d.version)) }

func (d *Document) CreateRepeatedTask() *RepeatedTask {
	return create(d.tasks, NewRepeatedTask(d.level, d.version))
}

func (d *Document) CreateParameterEstimationTask() *ParameterEstimationTask {
	return create(d.tasks, NewParameterEstimationTask(d.level, d.version))
}

func (d *Document) CreateReport() *Report { return create(d.outputs, NewReport(d.level, d.version)) }
func (d *Document) CreatePlot2D() *Plot2D { return create(d.outputs, NewPlot2D(d.level, d.version)) }
func (d *Document) CreatePlot3D() *Plot3D { return create(d.outputs, NewPlot3D(d.level, d.version)) }
func (d *Document) CreateFigure() *Figure { return create(d.outputs, NewFigure(d.level, d.version)) }

// AllElements returns every element of the document, lists included, in
// document order. The document itself is not included.
func (d *Document) AllElements() (all []Element) {
	walk(d, func(e Element) {
		if e != Element(d) {
			all = append(all, e)
		}
	})
	return all
}

// ElementBySId returns the first element whose id is id, or nil
func (d *Document) ElementBySId(id string) Element {
	if id == "" {
		return nil
	}
	for _, e := range d.AllElements() {
		if e.ID() == id {
			return e
		}
	}
	return nil
}

// ElementByMetaID returns the first element whose metaid is metaID, or nil
func (d *Document) ElementByMetaID(metaID string) Element {
	if metaID == "" {
		return nil
	}
	for _, e := range d.AllElements() {
		if e.MetaID() == metaID {
			return e
		}
	}
	return nil
}

func (d *Document) HasRequiredAttributes() bool { return d.level > 0 && d.version > 0 }

func (d *Document) children() []Element {
	return []Element{d.dataDescriptions, d.models, d.simulations, d.tasks, d.dataGenerators, d.outputs, d.styles}
}

func (d *Document) readAttributes(a *stream.Attributes) {
	d.Base.readAttributes(a)
	level, lok := a.Int("level", true)
	version, vok := a.Int("version", true)
	if !lok || !vok || (level == d.level && version == d.version) {
		return
	}
	if NamespaceURI(level, version) == "" {
		a.Add(sederr.BadAttributeValue("version", a.Element,
			sederr.WithMessage(fmt.Sprintf("unknown SED-ML level %d version %d", level, version))))
		return
	}
	a.Add(sederr.InvalidNamespace(a.Element, NamespaceURI(d.level, d.version),
		sederr.WithSeverity(sederr.SeverityWarning),
		sederr.WithMessage(fmt.Sprintf("namespace does not match level %d version %d", level, version))))
	d.setLevelAndVersion(level, version)
}

func (d *Document) writeAttributes(a *stream.AttrList) {
	a.String("xmlns", d.namespaceURI())
	a.Attr(d.namespaces.prefixes.Attr()...)
	d.Base.writeAttributes(a)
	a.Int("level", d.level)
	a.Int("version", d.version)
}

func (d *Document) readChild(r *reader, se xml.StartElement) (bool, error) {
	switch se.Name.Local {
	case "listOfDataDescriptions":
		return true, r.readElement(d.dataDescriptions, se)
	case "listOfModels":
		return true, r.readElement(d.models, se)
	case "listOfSimulations":
		return true, r.readElement(d.simulations, se)
	case "listOfTasks":
		return true, r.readElement(d.tasks, se)
	case "listOfDataGenerators":
		return true, r.readElement(d.dataGenerators, se)
	case "listOfOutputs":
		return true, r.readElement(d.outputs, se)
	case "listOfStyles":
		return true, r.readElement(d.styles, se)
	}
	return false, nil
}

func (d *Document) writeElements(w *writer) {
	writeList(w, d.dataDescriptions)
	writeList(w, d.models)
	writeList(w, d.simulations)
	writeList(w, d.tasks)
	writeList(w, d.dataGenerators)
	writeList(w, d.outputs)
	writeList(w, d.styles)
}
