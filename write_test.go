package sedml

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/andaru/sedml/sederr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func simpleDocument(t *testing.T) *Document {
	d := NewDocument(1, 4)
	m := d.CreateModel()
	require.NoError(t, m.SetID("m1"))
	m.SetLanguage("urn:sedml:language:sbml")
	m.SetSource("model.xml")
	return d
}

func TestWrite(t *testing.T) {
	d := simpleDocument(t)
	for _, tc := range []struct {
		name string
		opts []Option
		want string
	}{
		{
			name: "indented",
			want: `<?xml version="1.0" encoding="UTF-8"?>
<sedML xmlns="http://sed-ml.org/sed-ml/level1/version4" level="1" version="4">
  <listOfModels>
    <model id="m1" language="urn:sedml:language:sbml" source="model.xml"/>
  </listOfModels>
</sedML>`,
		},
		{
			name: "compact",
			opts: []Option{WithIndent("", ""), WithoutDeclaration()},
			want: `<sedML xmlns="http://sed-ml.org/sed-ml/level1/version4" level="1" version="4">` +
				`<listOfModels><model id="m1" language="urn:sedml:language:sbml" source="model.xml"/></listOfModels></sedML>`,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got, err := WriteString(d, tc.opts...)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestWriteEmptyDocument(t *testing.T) {
	got, err := WriteString(NewDocument(1, 3), WithoutDeclaration())
	require.NoError(t, err)
	assert.Equal(t, `<sedML xmlns="http://sed-ml.org/sed-ml/level1/version3" level="1" version="3"/>`, got)
}

func TestWriteInvalid(t *testing.T) {
	check := assert.New(t)
	_, err := WriteString(nil)
	check.Equal(sederr.InvalidObject, sederr.StatusOf(err))

	d := NewDocument(1, 4)
	d.setLevelAndVersion(3, 1)
	_, err = WriteString(d)
	check.Equal(sederr.InvalidObject, sederr.StatusOf(err))
}

func TestWriteNamespaces(t *testing.T) {
	check := assert.New(t)
	d := simpleDocument(t)
	require.NoError(t, d.AddNamespace("sbml", "http://www.sbml.org/sbml/level3/version1/core"))
	out, err := WriteString(d)
	require.NoError(t, err)
	check.Contains(out, `<sedML xmlns="http://sed-ml.org/sed-ml/level1/version4" xmlns:sbml="http://www.sbml.org/sbml/level3/version1/core" level="1" version="4">`)

	d.RemoveNamespace("sbml")
	out, err = WriteString(d)
	require.NoError(t, err)
	check.NotContains(out, "xmlns:sbml")
}

func TestRoundTrip(t *testing.T) {
	check := assert.New(t)
	d, err := ReadFile("testdata/experiment.sedml")
	require.NoError(t, err)
	require.Zero(t, d.Errors().Len(), "%v", d.Errors().Errors())

	first, err := WriteString(d)
	require.NoError(t, err)
	again, err := ReadString(first)
	require.NoError(t, err)
	check.Zero(again.Errors().Len(), "%v", again.Errors().Errors())
	second, err := WriteString(again)
	require.NoError(t, err)
	check.Equal(first, second)

	check.Contains(first, `xmlns:sbml="http://www.sbml.org/sbml/level2/version4"`)
	check.Contains(first, `<p xmlns="http://www.w3.org/1999/xhtml">Oscillator time course and parameter scan.</p>`)
	check.Contains(first, `numberOfSteps="1000"`)
	check.Contains(first, `<value>0.1</value>`)
	check.Contains(first, `target="/sbml:sbml/sbml:model/sbml:listOfParameters/sbml:parameter[@id='k1']/@value"`)
	check.Equal(len(d.AllElements()), len(again.AllElements()))
}

func TestWriteFile(t *testing.T) {
	check := assert.New(t)
	path := filepath.Join(t.TempDir(), "out.sedml")
	d := simpleDocument(t)
	require.NoError(t, WriteFile(path, d))
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	check.Equal(byte('\n'), b[len(b)-1])

	back, err := ReadFile(path)
	require.NoError(t, err)
	check.Zero(back.Errors().Len())
	check.Equal("model.xml", back.Models().GetByID("m1").Source())
}

func TestWriteVersionedAttributes(t *testing.T) {
	check := assert.New(t)
	d := NewDocument(1, 3)
	s := d.CreateUniformTimeCourse()
	require.NoError(t, s.SetID("s"))
	s.SetInitialTime(0)
	s.SetOutputStartTime(0)
	s.SetOutputEndTime(10)
	s.SetNumberOfPoints(50)
	s.CreateAlgorithm().SetKisaoID("KISAO:0000019")

	out, err := WriteString(d)
	require.NoError(t, err)
	check.Contains(out, `numberOfPoints="50"`)
	check.NotContains(out, "numberOfSteps")

	require.NoError(t, d.SetLevelAndVersion(1, 4))
	out, err = WriteString(d)
	require.NoError(t, err)
	check.Contains(out, `numberOfSteps="50"`)
	check.NotContains(out, "numberOfPoints")
}

func TestRoundTripEstimation(t *testing.T) {
	check := assert.New(t)
	d, err := ReadFile("testdata/estimation.sedml")
	require.NoError(t, err)
	require.Zero(t, d.Errors().Len(), "%v", d.Errors().Errors())

	first, err := WriteString(d)
	require.NoError(t, err)
	again, err := ReadString(first)
	require.NoError(t, err)
	check.Zero(again.Errors().Len(), "%v", again.Errors().Errors())
	second, err := WriteString(again)
	require.NoError(t, err)
	check.Equal(first, second)
	check.Equal(len(d.AllElements()), len(again.AllElements()))

	for _, want := range []string{
		`<parameterEstimationTask id="fit1" modelReference="model1">`,
		`<leastSquareObjectiveFunction/>`,
		`<bounds lowerBound="0.001" upperBound="10" scale="log10"/>`,
		`<experimentReference experiment="exp1"/>`,
		`<fitMapping type="observable" dataSource="obsX" target="upper" weight="0.5"/>`,
		`<dataRange id="r2" sourceRef="obsX"/>`,
		`<functionalRange id="r1" range="r2">`,
		`<appliedDimension target="task1" dimensionTarget="time"/>`,
		`term="urn:sedml:function:derivative"`,
		`<zAxis type="log10" reverse="true"/>`,
		`<subPlot plot="surf" row="1" col="2" colSpan="1"/>`,
		`<fill color="#ff000080"/>`,
		`<analysis id="an1">`,
		`<sbml:parameter id="k3" value="1" constant="true"/>`,
		`target="/sbml:sbml/sbml:model/sbml:listOfParameters/sbml:parameter[@id='k2']"`,
	} {
		check.Contains(first, want)
	}
}

func TestRenameEstimationRefs(t *testing.T) {
	check := assert.New(t)
	d, err := ReadFile("testdata/estimation.sedml")
	require.NoError(t, err)

	d.RenameSIdRefs("dg", "dg2")
	d.RenameSIdRefs("model1", "m")
	d.RenameSIdRefs("obsX", "obsY")

	check.NotNil(d.DataGenerators().GetByID("dg"))
	pe := d.Tasks().GetByID("fit1").(*ParameterEstimationTask)
	check.Equal("m", pe.ModelReference())
	check.Equal("m", pe.AdjustableParameters().Get(0).ModelReference())
	mappings := pe.FitExperiments().Get(0).FitMappings()
	check.Equal("dg2", mappings.Get(0).Target())
	check.Equal("obsY", mappings.Get(1).DataSource())

	band := d.Outputs().GetByID("band").(*Plot2D)
	check.Equal("dg2", band.Curves().Get(0).(*ShadedArea).XDataReference())
	surf := d.Outputs().GetByID("surf").(*Plot3D)
	check.Equal("dg2", surf.Surfaces().Get(0).XDataReference())
	scan := d.Tasks().GetByID("scan").(*RepeatedTask)
	check.Equal("obsY", scan.Ranges().GetByID("r2").(*DataRange).SourceRef())

	out, err := WriteString(d)
	require.NoError(t, err)
	check.Contains(out, `<dataGenerator id="dg">`)
	check.Contains(out, `<model id="model1"`)
	check.NotContains(out, `Reference="model1"`)
	check.NotContains(out, `DataReference="dg"`)
	check.Contains(out, `<fitMapping type="time" dataSource="obsTime" target="dg2"/>`)
}
