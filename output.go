package sedml

import (
	"encoding/xml"

	"github.com/andaru/sedml/stream"
)

// Output is a report, plot or figure of the document's listOfOutputs
type Output interface {
	Element
	outputElement()
}

func outputFactory(name string, level, version int) (Output, bool) {
	switch name {
	case "report":
		return NewReport(level, version), true
	case "plot2D":
		return NewPlot2D(level, version), true
	case "plot3D":
		return NewPlot3D(level, version), true
	case "figure":
		return NewFigure(level, version), true
	}
	return nil, false
}

type outputBase struct {
	Base
}

func (o *outputBase) outputElement() {}

func (o *outputBase) HasRequiredAttributes() bool { return o.IsSetID() }

func (o *outputBase) readAttributes(a *stream.Attributes) {
	o.Base.readAttributes(a)
	a.Required("id")
}

// Report is a tabular output of data sets
type Report struct {
	outputBase
	dataSets *ListOf[*DataSet]
}

func NewReport(level, version int) *Report {
	r := &Report{}
	r.init(r, level, version)
	r.dataSets = newListOf(r, "listOfDataSets", "dataSet", only("dataSet", NewDataSet))
	return r
}

func (r *Report) Clone() *Report {
	c := *r
	c.Base = r.Base.cloned(&c)
	c.dataSets = r.dataSets.cloned(&c)
	return &c
}

func (r *Report) cloneElement() Element { return r.Clone() }
func (r *Report) ElementName() string   { return "report" }
func (r *Report) TypeCode() TypeCode    { return TypeReport }

func (r *Report) DataSets() *ListOf[*DataSet] { return r.dataSets }
func (r *Report) CreateDataSet() *DataSet     { return r.dataSets.Create() }

func (r *Report) children() []Element { return []Element{r.dataSets} }

func (r *Report) readChild(rd *reader, se xml.StartElement) (bool, error) {
	if se.Name.Local == "listOfDataSets" {
		return true, rd.readElement(r.dataSets, se)
	}
	return false, nil
}

func (r *Report) writeElements(w *writer) { writeList(w, r.dataSets) }

// DataSet is one labelled column of a report
type DataSet struct {
	Base
	label         string
	dataReference string
}

func NewDataSet(level, version int) *DataSet {
	d := &DataSet{}
	d.init(d, level, version)
	return d
}

func (d *DataSet) Clone() *DataSet {
	c := *d
	c.Base = d.Base.cloned(&c)
	return &c
}

func (d *DataSet) cloneElement() Element { return d.Clone() }
func (d *DataSet) ElementName() string   { return "dataSet" }
func (d *DataSet) TypeCode() TypeCode    { return TypeDataSet }

func (d *DataSet) Label() string         { return d.label }
func (d *DataSet) IsSetLabel() bool      { return d.label != "" }
func (d *DataSet) SetLabel(label string) { d.label = label }
func (d *DataSet) UnsetLabel()           { d.label = "" }

// DataReference returns the id of the data generator supplying the column
func (d *DataSet) DataReference() string             { return d.dataReference }
func (d *DataSet) IsSetDataReference() bool          { return d.dataReference != "" }
func (d *DataSet) SetDataReference(ref string) error { return setSId(&d.dataReference, ref) }
func (d *DataSet) UnsetDataReference()               { d.dataReference = "" }

func (d *DataSet) HasRequiredAttributes() bool {
	return d.IsSetID() && d.IsSetLabel() && d.IsSetDataReference()
}

func (d *DataSet) renameRefs(oldID, newID string) { renameRef(&d.dataReference, oldID, newID) }

func (d *DataSet) readAttributes(a *stream.Attributes) {
	d.Base.readAttributes(a)
	a.Required("id")
	d.label, _ = a.String("label", true)
	d.dataReference, _ = a.SId("dataReference", true)
}

func (d *DataSet) writeAttributes(a *stream.AttrList) {
	d.Base.writeAttributes(a)
	writeString(a, "label", d.label)
	writeString(a, "dataReference", d.dataReference)
}
