package sedml

import (
	"math"
	"testing"

	"github.com/andaru/sedml/mathml"
	"github.com/andaru/sedml/sederr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnsetDefaults(t *testing.T) {
	check := assert.New(t)
	s := NewUniformTimeCourse(1, 4)
	check.True(math.IsNaN(s.InitialTime()))
	check.False(s.IsSetInitialTime())
	check.Equal(math.MaxInt32, s.NumberOfSteps())
	check.False(s.HasRequiredAttributes())
	check.False(s.HasRequiredElements())

	s.SetInitialTime(1.5)
	check.Equal(1.5, s.InitialTime())
	s.UnsetInitialTime()
	check.True(math.IsNaN(s.InitialTime()))

	a := NewAxis(1, 4)
	check.Equal(AxisTypeInvalid, a.Type())
	check.Equal("invalid AxisType value", a.TypeAsString())
	check.False(a.Grid())
	check.False(a.IsSetGrid())
	check.Equal("", a.Style())

	r := NewRepeatedTask(1, 4)
	check.False(r.ResetModel())
	check.False(r.IsSetResetModel())
	r.SetResetModel(false)
	check.True(r.IsSetResetModel())
}

func TestSetID(t *testing.T) {
	check := assert.New(t)
	m := NewModel(1, 4)
	check.NoError(m.SetID("m1"))
	err := m.SetID("1bad")
	check.Equal(sederr.InvalidAttributeValue, sederr.StatusOf(err))
	check.Equal("m1", m.ID())
	check.NoError(m.SetID(""))
	check.False(m.IsSetID())

	check.Error(m.SetMetaID("has space"))
	check.NoError(m.SetMetaID("_meta.1"))
	check.Equal("_meta.1", m.MetaID())
}

func TestSetEnum(t *testing.T) {
	check := assert.New(t)
	a := NewAxis(1, 4)
	check.NoError(a.SetTypeAsString("log10"))
	check.Equal(AxisTypeLog10, a.Type())
	check.True(a.HasRequiredAttributes())

	err := a.SetTypeAsString("bogus")
	check.Equal(sederr.InvalidAttributeValue, sederr.StatusOf(err))
	check.Equal(AxisTypeInvalid, a.Type())
	check.False(a.IsSetType())

	check.Error(a.SetType(AxisType(99)))
	check.NoError(a.SetType(AxisTypeLinear))
	check.Equal("linear", a.TypeAsString())
}

func TestSetMath(t *testing.T) {
	check := assert.New(t)
	dg := NewDataGenerator(1, 4)
	check.NoError(dg.SetMath(mathml.Identifier("x")))
	check.Equal([]string{"x"}, dg.Math().Identifiers())

	bad := mathml.MustParse(`<math xmlns="http://www.w3.org/1998/Math/MathML"><ci>a</ci><ci>b</ci></math>`)
	check.Equal(sederr.InvalidObject, sederr.StatusOf(dg.SetMath(bad)))
	check.Equal([]string{"x"}, dg.Math().Identifiers())

	check.NoError(dg.SetMath(nil))
	check.False(dg.IsSetMath())
}

func TestListOf(t *testing.T) {
	d := NewDocument(1, 4)
	models := d.Models()

	m := models.Create()
	require.NoError(t, m.SetID("m1"))
	m.SetSource("a.xml")
	assert.Same(t, models, m.Parent())
	assert.Same(t, d, m.Document())

	for _, tc := range []struct {
		name  string
		model func() *Model
		want  sederr.Status
	}{
		{name: "nil", model: func() *Model { return nil }, want: sederr.InvalidAttributeValue},
		{name: "missing id", model: func() *Model { return NewModel(1, 4) }, want: sederr.InvalidObject},
		{name: "level", model: func() *Model { return model(t, 2, 4, "m2") }, want: sederr.LevelMismatch},
		{name: "version", model: func() *Model { return model(t, 1, 3, "m2") }, want: sederr.VersionMismatch},
		{name: "duplicate", model: func() *Model { return model(t, 1, 4, "m1") }, want: sederr.DuplicateObjectID},
		{name: "ok", model: func() *Model { return model(t, 1, 4, "m2") }, want: sederr.OperationSuccess},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, sederr.StatusOf(models.Append(tc.model())))
		})
	}
	check := assert.New(t)
	check.Equal(2, models.Len())

	orig := model(t, 1, 4, "m3")
	require.NoError(t, models.Append(orig))
	check.Nil(orig.Parent())
	check.NotSame(orig, models.GetByID("m3"))

	owned := model(t, 1, 4, "m4")
	require.NoError(t, models.AppendAndOwn(owned))
	check.Same(owned, models.GetByID("m4"))
	check.Same(models, owned.Parent())

	removed := models.RemoveByID("m1")
	check.Same(m, removed)
	check.Nil(removed.Parent())
	check.Nil(models.GetByID("m1"))
	check.Nil(models.Remove(10))
	check.Equal([]string{"m2", "m3", "m4"}, ids(models.Items()))

	// moving an owned item takes it out of its old list
	other := NewDocument(1, 4)
	require.NoError(t, other.Models().AppendAndOwn(owned))
	check.Same(other.Models(), owned.Parent())
	check.Nil(models.GetByID("m4"))

	models.Clear()
	check.Zero(models.Len())
}

func TestListOfCreate(t *testing.T) {
	check := assert.New(t)
	d := NewDocument(1, 4)
	check.Nil(d.Simulations().Create())
	check.Empty(d.Simulations().ItemName())
	s := d.CreateSteadyState()
	check.Equal(1, d.Simulations().Len())
	check.Equal(TypeSteadyState, d.Simulations().Get(0).TypeCode())
	check.Same(d.Simulations(), s.Parent())
	check.Equal("model", d.Models().ItemName())
	check.Equal("listOfModels", d.Models().ElementName())
}

func model(t *testing.T, level, version int, id string) *Model {
	m := NewModel(level, version)
	require.NoError(t, m.SetID(id))
	m.SetSource(id + ".xml")
	return m
}

func ids[T Element](items []T) []string {
	var out []string
	for _, item := range items {
		out = append(out, item.ID())
	}
	return out
}

func TestSetChild(t *testing.T) {
	check := assert.New(t)
	s := NewOneStep(1, 4)
	alg := NewAlgorithm(1, 4)
	alg.SetKisaoID("KISAO:0000019")
	require.NoError(t, s.SetAlgorithm(alg))
	check.NotSame(alg, s.Algorithm())
	check.Same(s, s.Algorithm().Parent())
	check.Nil(alg.Parent())
	alg.SetKisaoID("KISAO:0000088")
	check.Equal("KISAO:0000019", s.Algorithm().KisaoID())

	check.Equal(sederr.VersionMismatch, sederr.StatusOf(s.SetAlgorithm(NewAlgorithm(1, 3))))
	check.Equal(sederr.LevelMismatch, sederr.StatusOf(s.SetAlgorithm(NewAlgorithm(2, 4))))
	check.NoError(s.SetAlgorithm(nil))
	check.False(s.IsSetAlgorithm())

	created := s.CreateAlgorithm()
	check.Same(created, s.Algorithm())
}

func TestSetAxis(t *testing.T) {
	check := assert.New(t)
	p := NewPlot2D(1, 4)
	a := NewAxis(1, 4)
	require.NoError(t, a.SetType(AxisTypeLog10))
	require.NoError(t, p.SetRightYAxis(a))
	check.Equal("rightYAxis", p.RightYAxis().ElementName())
	check.Equal("xAxis", a.ElementName())
	check.Equal("yAxis", p.CreateYAxis().ElementName())
}

func TestClone(t *testing.T) {
	check := assert.New(t)
	d, err := ReadFile("testdata/experiment.sedml")
	require.NoError(t, err)

	c := d.Clone()
	check.Zero(c.Errors().Len())
	check.Nil(c.Parent())
	check.Same(c, c.Models().Parent())
	check.Same(c, c.DataGenerators().GetByID("x").Document())

	c.RenameSIdRefs("t", "time2")
	check.Equal([]string{"time2"}, c.DataGenerators().GetByID("x").Math().Identifiers())
	check.Equal([]string{"t"}, d.DataGenerators().GetByID("x").Math().Identifiers())

	dg := d.DataGenerators().GetByID("time").Clone()
	check.Nil(dg.Parent())
	check.Equal(1, dg.Variables().Len())
	check.Same(dg.Variables(), dg.Variables().Get(0).Parent())
	check.Same(dg, dg.Variables().Parent())

	plot := d.Outputs().GetByID("plot1").(*Plot2D).Clone()
	check.Same(plot, plot.XAxis().Parent())
	check.NotSame(d.Outputs().GetByID("plot1").(*Plot2D).XAxis(), plot.XAxis())
}

func TestRenameSIdRefs(t *testing.T) {
	check := assert.New(t)
	d, err := ReadFile("testdata/experiment.sedml")
	require.NoError(t, err)

	d.RenameSIdRefs("model1", "osc")
	check.Equal("osc", d.Tasks().GetByID("task1").(*Task).ModelReference())
	check.Equal("#osc", d.Models().GetByID("model2").Source())
	check.Equal("model1", d.Models().Get(0).ID())

	d.RenameSIdRefs("task1", "run")
	check.Equal("run", d.Tasks().GetByID("scan").(*RepeatedTask).SubTasks().Get(0).Task())
	check.Equal("run", d.DataGenerators().GetByID("time").Variables().Get(0).TaskReference())

	d.RenameSIdRefs("values", "grid")
	scan := d.Tasks().GetByID("scan").(*RepeatedTask)
	check.Equal("grid", scan.Range())
	check.Equal("grid", scan.Changes().Get(0).Range())
	check.Equal([]string{"grid"}, scan.Changes().Get(0).Math().Identifiers())

	d.RenameSIdRefs("x", "species")
	check.Equal("species", d.Outputs().GetByID("report1").(*Report).DataSets().GetByID("ds2").DataReference())
	curve := d.Outputs().GetByID("plot1").(*Plot2D).Curves().Get(0).(*Curve)
	check.Equal("species", curve.YDataReference())

	d.RenameSIdRefs("thin", "")
	check.Equal("thin", curve.Style())
}

func TestElementLookup(t *testing.T) {
	check := assert.New(t)
	d, err := ReadFile("testdata/experiment.sedml")
	require.NoError(t, err)

	e := d.ElementBySId("scan")
	require.NotNil(t, e)
	check.Equal(TypeRepeatedTask, e.TypeCode())
	check.Nil(d.ElementBySId("nope"))
	check.Nil(d.ElementBySId(""))

	require.NoError(t, d.Styles().Get(0).SetMetaID("style-meta"))
	check.Same(d.Styles().Get(0), d.ElementByMetaID("style-meta"))
	check.Nil(d.ElementByMetaID("missing"))

	var lists int
	for _, e := range d.AllElements() {
		check.NotSame(d, e)
		if e.TypeCode() == TypeListOf {
			lists++
		}
	}
	check.NotZero(lists)
}

func TestHasRequired(t *testing.T) {
	for _, tc := range []struct {
		name       string
		element    Element
		attributes bool
		elements   bool
	}{
		{name: "model", element: NewModel(1, 4), attributes: false, elements: true},
		{name: "data generator", element: NewDataGenerator(1, 4), attributes: false, elements: false},
		{name: "steady state", element: NewSteadyState(1, 4), attributes: false, elements: false},
		{name: "parameter estimation", element: NewParameterEstimationTask(1, 4), attributes: false, elements: false},
		{name: "add xml", element: NewAddXML(1, 4), attributes: false, elements: false},
		{name: "remove xml", element: NewRemoveXML(1, 4), attributes: false, elements: true},
		{name: "document", element: NewDocument(1, 4), attributes: true, elements: true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.attributes, tc.element.HasRequiredAttributes())
			assert.Equal(t, tc.elements, tc.element.HasRequiredElements())
		})
	}
}

func TestDocument(t *testing.T) {
	check := assert.New(t)
	check.Nil(NewDataGenerator(1, 4).Document())

	d := NewDocument(1, 4)
	dg := d.DataGenerators().Create()
	require.NoError(t, dg.SetID("dg"))
	v := dg.CreateVariable()
	check.Same(d, v.Document())
	check.Same(d, dg.Variables().Document())

	removed := d.DataGenerators().RemoveByID("dg")
	check.Nil(removed.Document())
	check.Nil(v.Document())
}
