package sedml

import (
	"encoding/xml"

	"github.com/andaru/sedml/stream"
)

// Model identifies a model by its source and language, and lists the
// changes applied to it before it is simulated.
type Model struct {
	Base
	language string
	source   string
	changes  *ListOf[Change]
}

func NewModel(level, version int) *Model {
	m := &Model{}
	m.init(m, level, version)
	m.changes = newListOf(m, "listOfChanges", "", changeFactory)
	return m
}

func (m *Model) Clone() *Model {
	c := *m
	c.Base = m.Base.cloned(&c)
	c.changes = m.changes.cloned(&c)
	return &c
}

func (m *Model) cloneElement() Element { return m.Clone() }
func (m *Model) ElementName() string   { return "model" }
func (m *Model) TypeCode() TypeCode    { return TypeModel }

// Language returns the URN of the model's encoding language
func (m *Model) Language() string            { return m.language }
func (m *Model) IsSetLanguage() bool         { return m.language != "" }
func (m *Model) SetLanguage(language string) { m.language = language }
func (m *Model) UnsetLanguage()              { m.language = "" }

// Source returns the model's location: a URI, or the reference #id of
// another model in the document.
func (m *Model) Source() string          { return m.source }
func (m *Model) IsSetSource() bool       { return m.source != "" }
func (m *Model) SetSource(source string) { m.source = source }
func (m *Model) UnsetSource()            { m.source = "" }

func (m *Model) Changes() *ListOf[Change] { return m.changes }

func (m *Model) CreateAddXML() *AddXML { return create(m.changes, NewAddXML(m.level, m.version)) }
func (m *Model) CreateChangeXML() *ChangeXML {
	return create(m.changes, NewChangeXML(m.level, m.version))
}
func (m *Model) CreateRemoveXML() *RemoveXML {
	return create(m.changes, NewRemoveXML(m.level, m.version))
}
func (m *Model) CreateChangeAttribute() *ChangeAttribute {
	return create(m.changes, NewChangeAttribute(m.level, m.version))
}
func (m *Model) CreateComputeChange() *ComputeChange {
	return create(m.changes, NewComputeChange(m.level, m.version))
}

func (m *Model) HasRequiredAttributes() bool { return m.IsSetID() && m.IsSetSource() }

func (m *Model) children() []Element { return []Element{m.changes} }

func (m *Model) renameRefs(oldID, newID string) {
	if m.source == "#"+oldID {
		m.source = "#" + newID
	}
}

func (m *Model) readAttributes(a *stream.Attributes) {
	m.Base.readAttributes(a)
	a.Required("id")
	m.language, _ = a.String("language", false)
	m.source, _ = a.String("source", true)
}

func (m *Model) writeAttributes(a *stream.AttrList) {
	m.Base.writeAttributes(a)
	writeString(a, "language", m.language)
	writeString(a, "source", m.source)
}

func (m *Model) readChild(r *reader, se xml.StartElement) (bool, error) {
	if se.Name.Local == "listOfChanges" {
		return true, r.readElement(m.changes, se)
	}
	return false, nil
}

func (m *Model) writeElements(w *writer) { writeList(w, m.changes) }
