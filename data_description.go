package sedml

import (
	"encoding/xml"

	"github.com/andaru/sedml/stream"
	"github.com/andaru/sedml/xmltree"
)

// DataDescription references an external data file and the sources of
// data within it.
type DataDescription struct {
	Base
	source               string
	format               string
	dimensionDescription *xmltree.Tree
	dataSources          *ListOf[*DataSource]
}

func NewDataDescription(level, version int) *DataDescription {
	d := &DataDescription{}
	d.init(d, level, version)
	d.dataSources = newListOf(d, "listOfDataSources", "dataSource", only("dataSource", NewDataSource))
	return d
}

func (d *DataDescription) Clone() *DataDescription {
	c := *d
	c.Base = d.Base.cloned(&c)
	c.dimensionDescription = d.dimensionDescription.Clone()
	c.dataSources = d.dataSources.cloned(&c)
	return &c
}

func (d *DataDescription) cloneElement() Element { return d.Clone() }
func (d *DataDescription) ElementName() string   { return "dataDescription" }
func (d *DataDescription) TypeCode() TypeCode    { return TypeDataDescription }

// Source returns the URI of the data file
func (d *DataDescription) Source() string          { return d.source }
func (d *DataDescription) IsSetSource() bool       { return d.source != "" }
func (d *DataDescription) SetSource(source string) { d.source = source }
func (d *DataDescription) UnsetSource()            { d.source = "" }

// Format returns the URN of the data file's format
func (d *DataDescription) Format() string          { return d.format }
func (d *DataDescription) IsSetFormat() bool       { return d.format != "" }
func (d *DataDescription) SetFormat(format string) { d.format = format }
func (d *DataDescription) UnsetFormat()            { d.format = "" }

// DimensionDescription returns the <dimensionDescription> element, or nil
func (d *DataDescription) DimensionDescription() *xmltree.Tree { return d.dimensionDescription }
func (d *DataDescription) IsSetDimensionDescription() bool     { return d.dimensionDescription != nil }

// SetDimensionDescription stores a copy of t, wrapped in a
// <dimensionDescription> element as needed. A nil t unsets it.
func (d *DataDescription) SetDimensionDescription(t *xmltree.Tree) error {
	if t == nil {
		d.dimensionDescription = nil
		return nil
	}
	return d.SetDimensionDescriptionString(t.String())
}

func (d *DataDescription) SetDimensionDescriptionString(s string) error {
	t, err := wrapTree("dimensionDescription", d.namespaceURI(), s)
	if err != nil {
		return err
	}
	d.dimensionDescription = t
	return nil
}

func (d *DataDescription) UnsetDimensionDescription() { d.dimensionDescription = nil }

func (d *DataDescription) DataSources() *ListOf[*DataSource] { return d.dataSources }
func (d *DataDescription) CreateDataSource() *DataSource     { return d.dataSources.Create() }

func (d *DataDescription) HasRequiredAttributes() bool { return d.IsSetID() && d.IsSetSource() }

func (d *DataDescription) children() []Element { return []Element{d.dataSources} }

func (d *DataDescription) readAttributes(a *stream.Attributes) {
	d.Base.readAttributes(a)
	a.Required("id")
	d.source, _ = a.String("source", true)
	d.format, _ = a.String("format", false)
}

func (d *DataDescription) writeAttributes(a *stream.AttrList) {
	d.Base.writeAttributes(a)
	writeString(a, "source", d.source)
	writeString(a, "format", d.format)
}

func (d *DataDescription) readChild(r *reader, se xml.StartElement) (bool, error) {
	switch se.Name.Local {
	case "dimensionDescription":
		return true, r.readTree(d, &d.dimensionDescription, se)
	case "listOfDataSources":
		return true, r.readElement(d.dataSources, se)
	}
	return false, nil
}

func (d *DataDescription) writeElements(w *writer) {
	w.tree(d.dimensionDescription)
	writeList(w, d.dataSources)
}

// DataSource selects data from a DataDescription, optionally restricted
// by slices.
type DataSource struct {
	Base
	indexSet string
	slices   *ListOf[*Slice]
}

func NewDataSource(level, version int) *DataSource {
	s := &DataSource{}
	s.init(s, level, version)
	s.slices = newListOf(s, "listOfSlices", "slice", only("slice", NewSlice))
	return s
}

func (s *DataSource) Clone() *DataSource {
	c := *s
	c.Base = s.Base.cloned(&c)
	c.slices = s.slices.cloned(&c)
	return &c
}

func (s *DataSource) cloneElement() Element { return s.Clone() }
func (s *DataSource) ElementName() string   { return "dataSource" }
func (s *DataSource) TypeCode() TypeCode    { return TypeDataSource }

func (s *DataSource) IndexSet() string                  { return s.indexSet }
func (s *DataSource) IsSetIndexSet() bool               { return s.indexSet != "" }
func (s *DataSource) SetIndexSet(indexSet string) error { return setSId(&s.indexSet, indexSet) }
func (s *DataSource) UnsetIndexSet()                    { s.indexSet = "" }

func (s *DataSource) Slices() *ListOf[*Slice] { return s.slices }
func (s *DataSource) CreateSlice() *Slice     { return s.slices.Create() }

func (s *DataSource) HasRequiredAttributes() bool { return s.IsSetID() }

func (s *DataSource) children() []Element { return []Element{s.slices} }

func (s *DataSource) renameRefs(oldID, newID string) { renameRef(&s.indexSet, oldID, newID) }

func (s *DataSource) readAttributes(a *stream.Attributes) {
	s.Base.readAttributes(a)
	a.Required("id")
	s.indexSet, _ = a.SId("indexSet", false)
}

func (s *DataSource) writeAttributes(a *stream.AttrList) {
	s.Base.writeAttributes(a)
	writeString(a, "indexSet", s.indexSet)
}

func (s *DataSource) readChild(r *reader, se xml.StartElement) (bool, error) {
	if se.Name.Local == "listOfSlices" {
		return true, r.readElement(s.slices, se)
	}
	return false, nil
}

func (s *DataSource) writeElements(w *writer) { writeList(w, s.slices) }

// Slice restricts a DataSource to one value, or a range of indices, of a
// dimension.
type Slice struct {
	Base
	reference  string
	value      string
	index      string
	startIndex intAttr
	endIndex   intAttr
}

func NewSlice(level, version int) *Slice {
	s := &Slice{}
	s.init(s, level, version)
	return s
}

func (s *Slice) Clone() *Slice {
	c := *s
	c.Base = s.Base.cloned(&c)
	return &c
}

func (s *Slice) cloneElement() Element { return s.Clone() }
func (s *Slice) ElementName() string   { return "slice" }
func (s *Slice) TypeCode() TypeCode    { return TypeSlice }

// Reference returns the id of the dimension being sliced
func (s *Slice) Reference() string                   { return s.reference }
func (s *Slice) IsSetReference() bool                { return s.reference != "" }
func (s *Slice) SetReference(reference string) error { return setSId(&s.reference, reference) }
func (s *Slice) UnsetReference()                     { s.reference = "" }

func (s *Slice) Value() string         { return s.value }
func (s *Slice) IsSetValue() bool      { return s.value != "" }
func (s *Slice) SetValue(value string) { s.value = value }
func (s *Slice) UnsetValue()           { s.value = "" }

func (s *Slice) Index() string               { return s.index }
func (s *Slice) IsSetIndex() bool            { return s.index != "" }
func (s *Slice) SetIndex(index string) error { return setSId(&s.index, index) }
func (s *Slice) UnsetIndex()                 { s.index = "" }

func (s *Slice) StartIndex() int       { return s.startIndex.get() }
func (s *Slice) IsSetStartIndex() bool { return s.startIndex.set }
func (s *Slice) SetStartIndex(i int)   { s.startIndex.put(i) }
func (s *Slice) UnsetStartIndex()      { s.startIndex = intAttr{} }
func (s *Slice) EndIndex() int         { return s.endIndex.get() }
func (s *Slice) IsSetEndIndex() bool   { return s.endIndex.set }
func (s *Slice) SetEndIndex(i int)     { s.endIndex.put(i) }
func (s *Slice) UnsetEndIndex()        { s.endIndex = intAttr{} }

func (s *Slice) HasRequiredAttributes() bool { return s.IsSetReference() }

func (s *Slice) renameRefs(oldID, newID string) {
	renameRef(&s.reference, oldID, newID)
	renameRef(&s.index, oldID, newID)
}

func (s *Slice) readAttributes(a *stream.Attributes) {
	s.Base.readAttributes(a)
	s.reference, _ = a.SId("reference", true)
	s.value, _ = a.String("value", false)
	s.index, _ = a.SId("index", false)
	s.startIndex.read(a.Int("startIndex", false))
	s.endIndex.read(a.Int("endIndex", false))
}

func (s *Slice) writeAttributes(a *stream.AttrList) {
	s.Base.writeAttributes(a)
	writeString(a, "reference", s.reference)
	writeString(a, "value", s.value)
	writeString(a, "index", s.index)
	s.startIndex.write(a, "startIndex")
	s.endIndex.write(a, "endIndex")
}
