package sedml

import (
	"encoding/xml"
	"reflect"
	"strings"

	"github.com/andaru/sedml/sederr"
	"github.com/andaru/sedml/stream"
	"github.com/andaru/sedml/syntax"
	"github.com/andaru/sedml/xmltree"
)

// Element is implemented by every SED-ML object: the document, each
// schema element, and the ListOf containers holding repeated children.
type Element interface {
	// ElementName returns the XML element name
	ElementName() string
	// TypeCode identifies the concrete type
	TypeCode() TypeCode

	MetaID() string
	IsSetMetaID() bool
	ID() string
	IsSetID() bool
	SetID(id string) error
	Name() string
	IsSetName() bool
	Notes() *xmltree.Tree
	Annotation() *xmltree.Tree

	Parent() Element
	Level() int
	Version() int
	LineNumber() int
	ColumnNumber() int

	// HasRequiredAttributes reports whether every attribute required by
	// the schema is set
	HasRequiredAttributes() bool
	// HasRequiredElements reports whether every child element required by
	// the schema is present
	HasRequiredElements() bool
	// RenameSIdRefs replaces references to oldID with newID in this
	// element and all its descendants, math included.
	RenameSIdRefs(oldID, newID string)

	sedBase() *Base
	cloneElement() Element
	children() []Element
	renameRefs(oldID, newID string)
	readAttributes(a *stream.Attributes)
	writeAttributes(a *stream.AttrList)
	readChild(r *reader, se xml.StartElement) (bool, error)
	writeElements(w *writer)
}

// Base holds the attributes and children common to all elements, and an
// element's position in its document. It is embedded in every element
// type.
type Base struct {
	self    Element
	parent  Element
	level   int
	version int

	metaID     string
	id         string
	name       string
	notes      *xmltree.Tree
	annotation *xmltree.Tree

	line   int
	column int
}

func (b *Base) init(self Element, level, version int) {
	b.self, b.level, b.version = self, level, version
}

// cloned returns a deep copy of b for the element self. The copy has no
// parent.
func (b *Base) cloned(self Element) Base {
	c := *b
	c.self, c.parent = self, nil
	c.notes = b.notes.Clone()
	c.annotation = b.annotation.Clone()
	return c
}

func (b *Base) sedBase() *Base { return b }

func (b *Base) MetaID() string    { return b.metaID }
func (b *Base) IsSetMetaID() bool { return b.metaID != "" }

// SetMetaID sets the metaid, which must be a valid XML ID.
func (b *Base) SetMetaID(metaID string) error {
	if metaID != "" && !syntax.IsValidXMLID(metaID) {
		return sederr.InvalidAttributeValue
	}
	b.metaID = metaID
	return nil
}

func (b *Base) UnsetMetaID() { b.metaID = "" }

func (b *Base) ID() string    { return b.id }
func (b *Base) IsSetID() bool { return b.id != "" }

// SetID sets the id, which must be a valid SId. The existing id is kept
// when id is rejected.
func (b *Base) SetID(id string) error { return setSId(&b.id, id) }

func (b *Base) UnsetID() { b.id = "" }

func (b *Base) Name() string        { return b.name }
func (b *Base) IsSetName() bool     { return b.name != "" }
func (b *Base) SetName(name string) { b.name = name }
func (b *Base) UnsetName()          { b.name = "" }

// Notes returns the <notes> element, or nil
func (b *Base) Notes() *xmltree.Tree { return b.notes }
func (b *Base) IsSetNotes() bool     { return b.notes != nil }

// SetNotes stores a copy of notes. A tree whose root is not <notes> is
// wrapped in one. A nil tree unsets the notes.
func (b *Base) SetNotes(notes *xmltree.Tree) error {
	if notes == nil {
		b.notes = nil
		return nil
	}
	return b.SetNotesString(notes.String())
}

// SetNotesString parses s as the content of the notes, or as a <notes>
// element.
func (b *Base) SetNotesString(s string) error {
	t, err := wrapTree("notes", b.namespaceURI(), s)
	if err != nil {
		return err
	}
	b.notes = t
	return nil
}

// NotesString returns the notes as XML, or an empty string
func (b *Base) NotesString() string {
	if b.notes == nil {
		return ""
	}
	return b.notes.String()
}

func (b *Base) UnsetNotes() { b.notes = nil }

// Annotation returns the <annotation> element, or nil
func (b *Base) Annotation() *xmltree.Tree { return b.annotation }
func (b *Base) IsSetAnnotation() bool     { return b.annotation != nil }

// SetAnnotation stores a copy of annotation, wrapping it in an
// <annotation> element as needed. A nil tree unsets the annotation.
func (b *Base) SetAnnotation(annotation *xmltree.Tree) error {
	if annotation == nil {
		b.annotation = nil
		return nil
	}
	return b.SetAnnotationString(annotation.String())
}

// SetAnnotationString parses s as the content of the annotation, or as
// an <annotation> element.
func (b *Base) SetAnnotationString(s string) error {
	t, err := wrapTree("annotation", b.namespaceURI(), s)
	if err != nil {
		return err
	}
	b.annotation = t
	return nil
}

// AnnotationString returns the annotation as XML, or an empty string
func (b *Base) AnnotationString() string {
	if b.annotation == nil {
		return ""
	}
	return b.annotation.String()
}

func (b *Base) UnsetAnnotation() { b.annotation = nil }

// Parent returns the element containing this one. Items of a list have
// the ListOf as their parent.
func (b *Base) Parent() Element { return b.parent }

// Document returns the document this element belongs to, or nil when it
// is not attached to one.
func (b *Base) Document() *Document {
	for p := b.parent; p != nil; p = p.sedBase().parent {
		if d, ok := p.(*Document); ok {
			return d
		}
	}
	return nil
}

func (b *Base) Level() int   { return b.level }
func (b *Base) Version() int { return b.version }

// LineNumber returns the input line the element was read from, or zero
func (b *Base) LineNumber() int { return b.line }

// ColumnNumber returns the input column the element was read from, or zero
func (b *Base) ColumnNumber() int { return b.column }

func (b *Base) HasRequiredAttributes() bool { return true }
func (b *Base) HasRequiredElements() bool   { return true }

func (b *Base) RenameSIdRefs(oldID, newID string) {
	if oldID == "" || newID == "" || oldID == newID {
		return
	}
	walk(b.self, func(e Element) { e.renameRefs(oldID, newID) })
}

func (b *Base) namespaceURI() string { return NamespaceURI(b.level, b.version) }

func (b *Base) children() []Element            { return nil }
func (b *Base) renameRefs(oldID, newID string) {}

func (b *Base) readAttributes(a *stream.Attributes) {
	b.metaID, _ = a.XMLID("metaid", false)
	b.id, _ = a.SId("id", false)
	b.name, _ = a.String("name", false)
}

func (b *Base) writeAttributes(a *stream.AttrList) {
	if b.IsSetMetaID() {
		a.String("metaid", b.metaID)
	}
	if b.IsSetID() {
		a.String("id", b.id)
	}
	if b.IsSetName() {
		a.String("name", b.name)
	}
}

func (b *Base) readChild(r *reader, se xml.StartElement) (bool, error) { return false, nil }
func (b *Base) writeElements(w *writer)                                {}

// walk calls fn for e and each of its descendants, parents first
func walk(e Element, fn func(Element)) {
	if isNil(e) {
		return
	}
	fn(e)
	for _, c := range e.children() {
		walk(c, fn)
	}
}

// setLevelVersion stamps e and its descendants with a schema version
func setLevelVersion(e Element, level, version int) {
	walk(e, func(e Element) {
		b := e.sedBase()
		b.level, b.version = level, version
	})
}

// isNil reports whether e is nil, including a nil pointer held in a
// non-nil interface.
func isNil(e Element) bool {
	if e == nil {
		return true
	}
	v := reflect.ValueOf(e)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

// nonNil drops nil elements from a fixed child set
func nonNil(es ...Element) []Element {
	out := es[:0]
	for _, e := range es {
		if !isNil(e) {
			out = append(out, e)
		}
	}
	return out
}

func setSId(dst *string, v string) error {
	if v != "" && !syntax.IsValidSId(v) {
		return sederr.InvalidAttributeValue
	}
	*dst = v
	return nil
}

func renameRef(ref *string, oldID, newID string) {
	if *ref != "" && *ref == oldID {
		*ref = newID
	}
}

// wrapTree parses s as an element name, wrapping it in one when s holds
// only its content.
func wrapTree(name, ns, s string) (*xmltree.Tree, error) {
	if t, err := xmltree.ParseString(s); err == nil && t.Name() == name {
		return t, nil
	}
	var sb strings.Builder
	sb.WriteString("<" + name)
	if ns != "" {
		sb.WriteString(` xmlns="` + ns + `"`)
	}
	sb.WriteString(">" + s + "</" + name + ">")
	t, err := xmltree.ParseString(sb.String())
	if err != nil {
		return nil, sederr.InvalidObject
	}
	return t, nil
}

// setChild stores a deep copy of child in slot, owned by parent. A nil
// child unsets the slot.
func setChild[T Element](parent Element, slot *T, child T) error {
	var zero T
	switch {
	case isNil(child):
		*slot = zero
		return nil
	case child.Level() != parent.Level():
		return sederr.LevelMismatch
	case child.Version() != parent.Version():
		return sederr.VersionMismatch
	}
	c := child.cloneElement().(T)
	c.sedBase().parent = parent
	*slot = c
	return nil
}

// createChild replaces slot with a new child of parent and returns it
func createChild[T Element](parent Element, slot *T, ctor func(level, version int) T) T {
	pb := parent.sedBase()
	c := ctor(pb.level, pb.version)
	c.sedBase().parent = parent
	*slot = c
	return c
}
