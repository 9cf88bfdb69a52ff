package sedml

import (
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/andaru/sedml/sederr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dg1 = `<?xml version="1.0" encoding="UTF-8"?>
<sedML xmlns="http://sed-ml.org/sed-ml/level1/version4" level="1" version="4">
  <listOfDataGenerators>
    <dataGenerator id="dg1">
      <math xmlns="http://www.w3.org/1998/Math/MathML"><ci>x</ci></math>
    </dataGenerator>
  </listOfDataGenerators>
</sedML>`

// wrap returns a level 1 version 4 document holding body
func wrap(body string) string {
	return `<sedML xmlns="http://sed-ml.org/sed-ml/level1/version4" level="1" version="4">` + body + `</sedML>`
}

func codes(log *sederr.Log) []sederr.Code {
	var out []sederr.Code
	for _, err := range log.Errors() {
		out = append(out, err.Code)
	}
	return out
}

func TestReadDataGenerator(t *testing.T) {
	check := assert.New(t)
	d, err := ReadString(dg1)
	require.NoError(t, err)
	check.Zero(d.Errors().Len(), "%v", d.Errors().Errors())
	check.Equal(1, d.Level())
	check.Equal(4, d.Version())

	require.Equal(t, 1, d.DataGenerators().Len())
	dg := d.DataGenerators().Get(0)
	check.Equal("dg1", dg.ID())
	check.True(dg.IsSetMath())
	check.True(dg.HasRequiredAttributes())
	check.True(dg.HasRequiredElements())
	check.Equal([]string{"x"}, dg.Math().Identifiers())
	check.Equal(4, dg.LineNumber())
	check.Same(d, dg.Document())
	check.Same(d.DataGenerators(), dg.Parent())

	out, err := WriteString(d)
	require.NoError(t, err)
	check.Contains(out, `<dataGenerator id="dg1">`)
	check.Contains(out, `<math xmlns="http://www.w3.org/1998/Math/MathML">`)
	check.Contains(out, `<ci>x</ci>`)

	again, err := ReadString(out)
	require.NoError(t, err)
	check.Zero(again.Errors().Len())
	check.Equal([]string{"x"}, again.DataGenerators().GetByID("dg1").Math().Identifiers())
}

func TestReadFile(t *testing.T) {
	check := assert.New(t)
	d, err := ReadFile("testdata/experiment.sedml")
	require.NoError(t, err)
	check.Zero(d.Errors().Len(), "%v", d.Errors().Errors())

	check.Equal(1, d.DataDescriptions().Len())
	check.Equal(2, d.Models().Len())
	check.Equal(2, d.Simulations().Len())
	check.Equal(2, d.Tasks().Len())
	check.Equal(2, d.DataGenerators().Len())
	check.Equal(2, d.Outputs().Len())
	check.Equal(1, d.Styles().Len())
	check.Equal("http://www.sbml.org/sbml/level2/version4", d.Namespaces().Namespace("sbml"))
	check.True(d.IsSetNotes())

	slices := d.DataDescriptions().Get(0).DataSources().GetByID("timeColumn").Slices()
	require.Equal(t, 2, slices.Len())
	check.Equal("time", slices.Get(0).Value())
	check.False(slices.Get(0).IsSetStartIndex())
	check.Equal(math.MaxInt32, slices.Get(0).StartIndex())
	check.Equal(10, slices.Get(1).EndIndex())

	changes := d.Models().GetByID("model1").Changes()
	require.Equal(t, 3, changes.Len())
	check.Equal(TypeChangeAttribute, changes.Get(0).TypeCode())
	cc, ok := changes.Get(1).(*ComputeChange)
	require.True(t, ok)
	check.Equal([]string{"factor", "k1"}, cc.Math().Identifiers())
	check.Equal(2.0, cc.Parameters().GetByID("factor").Value())
	check.Equal("model1", cc.Variables().GetByID("k1").ModelReference())

	utc, ok := d.Simulations().GetByID("timecourse").(*UniformTimeCourse)
	require.True(t, ok)
	check.Equal(100.0, utc.OutputEndTime())
	check.Equal(1000, utc.NumberOfSteps())
	check.Equal("KISAO:0000019", utc.Algorithm().KisaoID())
	check.Equal("1e-07", utc.Algorithm().AlgorithmParameters().Get(0).Value())
	check.Same(utc, utc.Algorithm().Parent())

	scan, ok := d.Tasks().GetByID("scan").(*RepeatedTask)
	require.True(t, ok)
	check.True(scan.ResetModel())
	check.True(scan.IsSetConcatenate())
	check.False(scan.Concatenate())
	vr, ok := scan.Ranges().GetByID("values").(*VectorRange)
	require.True(t, ok)
	check.Equal([]float64{0.1, 1, 10}, vr.Values())
	check.Equal("values", scan.Changes().Get(0).Range())
	check.Equal(1, scan.SubTasks().Get(0).Order())

	plot, ok := d.Outputs().GetByID("plot1").(*Plot2D)
	require.True(t, ok)
	check.Equal("xAxis", plot.XAxis().ElementName())
	check.Equal(AxisTypeLog10, plot.YAxis().Type())
	check.True(plot.YAxis().Grid())
	check.False(plot.IsSetRightYAxis())
	curve, ok := plot.Curves().Get(0).(*Curve)
	require.True(t, ok)
	check.Equal(CurveTypePoints, curve.Type())
	check.Equal("x", curve.YDataReference())

	style := d.Styles().GetByID("thin")
	check.Equal(LineTypeSolid, style.Line().Type())
	check.Equal(0.5, style.Line().Thickness())
	check.Equal(MarkerTypeCircle, style.Marker().Type())
	check.False(style.IsSetFill())
}

func TestReadProblems(t *testing.T) {
	for _, tc := range []struct {
		name string
		in   string
		want []sederr.Code
	}{
		{
			name: "clean",
			in:   wrap(`<listOfModels><model id="m1" source="m.xml"/></listOfModels>`),
		},
		{
			name: "missing attribute",
			in:   wrap(`<listOfModels><model id="m1"/></listOfModels>`),
			want: []sederr.Code{sederr.CodeMissingAttribute},
		},
		{
			name: "missing id",
			in:   wrap(`<listOfModels><model source="m.xml"/></listOfModels>`),
			want: []sederr.Code{sederr.CodeMissingAttribute},
		},
		{
			name: "unknown attribute",
			in:   wrap(`<listOfModels><model id="m1" source="m.xml" colour="red"/></listOfModels>`),
			want: []sederr.Code{sederr.CodeUnknownAttribute},
		},
		{
			name: "foreign attribute",
			in:   wrap(`<listOfModels><model xmlns:x="urn:x" x:colour="red" id="m1" source="m.xml"/></listOfModels>`),
		},
		{
			name: "unknown element",
			in:   wrap(`<listOfModels><model id="m1" source="m.xml"/><bogus><model/></bogus></listOfModels>`),
			want: []sederr.Code{sederr.CodeUnknownElement},
		},
		{
			name: "invalid id",
			in:   wrap(`<listOfModels><model id="1m" source="m.xml"/></listOfModels>`),
			want: []sederr.Code{sederr.CodeInvalidIDSyntax},
		},
		{
			name: "empty attribute",
			in:   wrap(`<listOfModels><model id="m1" source=""/></listOfModels>`),
			want: []sederr.Code{sederr.CodeEmptyAttribute},
		},
		{
			name: "duplicate id",
			in:   wrap(`<listOfModels><model id="m1" source="a.xml"/><model id="m1" source="b.xml"/></listOfModels>`),
			want: []sederr.Code{sederr.CodeDuplicateID},
		},
		{
			name: "local variable ids",
			in: wrap(`<listOfDataGenerators>` +
				`<dataGenerator id="a"><listOfVariables><variable id="v" taskReference="t"/></listOfVariables>` +
				`<math xmlns="http://www.w3.org/1998/Math/MathML"><ci>v</ci></math></dataGenerator>` +
				`<dataGenerator id="b"><listOfVariables><variable id="v" taskReference="t"/></listOfVariables>` +
				`<math xmlns="http://www.w3.org/1998/Math/MathML"><ci>v</ci></math></dataGenerator>` +
				`</listOfDataGenerators>`),
		},
		{
			name: "bad double",
			in: wrap(`<listOfSimulations><oneStep id="s1" step="big">` +
				`<algorithm kisaoID="KISAO:0000019"/></oneStep></listOfSimulations>`),
			want: []sederr.Code{sederr.CodeBadAttributeValue},
		},
		{
			name: "max occurs",
			in: wrap(`<listOfSimulations><oneStep id="s1" step="1">` +
				`<algorithm kisaoID="KISAO:0000019"/><algorithm kisaoID="KISAO:0000088"/></oneStep></listOfSimulations>`),
			want: []sederr.Code{sederr.CodeMaxOccurs},
		},
		{
			name: "invalid enum",
			in:   wrap(`<listOfOutputs><plot2D id="p1"><xAxis type="cubic"/></plot2D></listOfOutputs>`),
			want: []sederr.Code{sederr.CodeInvalidEnumValue},
		},
		{
			name: "ill-formed math",
			in: wrap(`<listOfDataGenerators><dataGenerator id="a">` +
				`<math xmlns="http://www.w3.org/1998/Math/MathML"><ci>a</ci><ci>b</ci></math>` +
				`</dataGenerator></listOfDataGenerators>`),
			want: []sederr.Code{sederr.CodeInvalidMath},
		},
		{
			name: "unknown namespace",
			in:   `<sedML xmlns="urn:not-sedml" level="1" version="4"/>`,
			want: []sederr.Code{sederr.CodeInvalidNamespace},
		},
		{
			name: "wrong root",
			in:   `<sbml xmlns="http://www.sbml.org/sbml/level2/version4"/>`,
			want: []sederr.Code{sederr.CodeUnknownElement},
		},
		{
			name: "estimation model reference",
			in:   wrap(`<listOfTasks><parameterEstimationTask id="fit" modelReference="m1"/></listOfTasks>`),
		},
		{
			name: "missing estimation model reference",
			in:   wrap(`<listOfTasks><parameterEstimationTask id="fit"/></listOfTasks>`),
			want: []sederr.Code{sederr.CodeMissingAttribute},
		},
		{
			name: "malformed",
			in:   wrap(`<listOfModels><model id="m1" source="m.xml"></listOfModels>`),
			want: []sederr.Code{sederr.CodeXMLSyntax},
		},
		{
			name: "truncated",
			in:   `<sedML xmlns="http://sed-ml.org/sed-ml/level1/version4" level="1" version="4"><listOfModels>`,
			want: []sederr.Code{sederr.CodeXMLSyntax},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			d, err := ReadString(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, codes(d.Errors()), "%v", d.Errors().Errors())
		})
	}
}

func TestReadProblemPosition(t *testing.T) {
	check := assert.New(t)
	d, err := ReadString(`<sedML xmlns="http://sed-ml.org/sed-ml/level1/version4" level="1" version="4">
<listOfModels>
<model id="m1"/>
</listOfModels>
</sedML>`)
	require.NoError(t, err)
	require.Equal(t, 1, d.Errors().Len())
	problem := d.Errors().Get(0)
	check.Equal("source", problem.Attribute)
	check.Equal("model", problem.Element)
	check.Equal(3, problem.Line)
	check.Equal(sederr.SeverityError, problem.Severity)
	check.Error(d.Errors().Err())
}

func TestReadDefaultNamespaces(t *testing.T) {
	check := assert.New(t)
	d, err := ReadString(`<sedML xmlns="http://sed-ml.org/sed-ml/level1/version3" level="1" version="3"/>`)
	require.NoError(t, err)
	check.Zero(d.Errors().Len())
	check.Equal(3, d.Version())

	d, err = ReadString(`<sedML level="1" version="2"/>`, WithDefaultNamespaces(NewNamespaces(1, 2)))
	require.NoError(t, err)
	check.Equal(2, d.Version())
	check.Equal([]sederr.Code{sederr.CodeInvalidNamespace}, codes(d.Errors()))
}

func TestReadNumberOfPoints(t *testing.T) {
	const utc = `<listOfSimulations><uniformTimeCourse id="s" initialTime="0" outputStartTime="0" ` +
		`outputEndTime="10" %s="20"><algorithm kisaoID="KISAO:0000019"/></uniformTimeCourse></listOfSimulations>`
	for _, tc := range []struct {
		name    string
		version int
		attr    string
	}{
		{name: "version 3 points", version: 3, attr: "numberOfPoints"},
		{name: "version 4 steps", version: 4, attr: "numberOfSteps"},
		{name: "version 3 reads steps", version: 3, attr: "numberOfSteps"},
		{name: "version 4 reads points", version: 4, attr: "numberOfPoints"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			in := fmt.Sprintf(`<sedML xmlns="%s" level="1" version="%d">`, NamespaceURI(1, tc.version), tc.version) +
				strings.Replace(utc, "%s", tc.attr, 1) + `</sedML>`
			d, err := ReadString(in)
			require.NoError(t, err)
			assert.Zero(t, d.Errors().Len(), "%v", d.Errors().Errors())
			s := d.Simulations().Get(0).(*UniformTimeCourse)
			assert.Equal(t, 20, s.NumberOfSteps())
			assert.Equal(t, 20, s.NumberOfPoints())
		})
	}
}

func TestReadEstimationFile(t *testing.T) {
	check := assert.New(t)
	d, err := ReadFile("testdata/estimation.sedml")
	require.NoError(t, err)
	require.Zero(t, d.Errors().Len(), "%v", d.Errors().Errors())

	changes := d.Models().GetByID("model1").Changes()
	require.Equal(t, 2, changes.Len())
	add, ok := changes.Get(0).(*AddXML)
	require.True(t, ok)
	check.Equal("/sbml:sbml/sbml:model/sbml:listOfParameters", add.Target())
	check.Contains(add.NewXML().String(), `id="k3"`)
	change, ok := changes.Get(1).(*ChangeXML)
	require.True(t, ok)
	check.Contains(change.NewXML().String(), `value="3"`)

	_, ok = d.Simulations().GetByID("an1").(*Analysis)
	check.True(ok)

	scan, ok := d.Tasks().GetByID("scan").(*RepeatedTask)
	require.True(t, ok)
	fr, ok := scan.Ranges().GetByID("r1").(*FunctionalRange)
	require.True(t, ok)
	check.Equal("r2", fr.Range())
	check.Equal([]string{"p1", "r2"}, fr.Math().Identifiers())
	check.Equal(1, fr.Variables().Len())
	check.Equal(2.0, fr.Parameters().GetByID("p1").Value())
	dr, ok := scan.Ranges().GetByID("r2").(*DataRange)
	require.True(t, ok)
	check.Equal("obsX", dr.SourceRef())

	pe, ok := d.Tasks().GetByID("fit1").(*ParameterEstimationTask)
	require.True(t, ok)
	check.Equal("model1", pe.ModelReference())
	check.True(pe.HasRequiredAttributes())
	check.True(pe.HasRequiredElements())
	check.Equal("KISAO:0000514", pe.Algorithm().KisaoID())
	_, ok = pe.Objective().(*LeastSquareObjectiveFunction)
	check.True(ok)

	ap := pe.AdjustableParameters().GetByID("ap1")
	require.NotNil(t, ap)
	check.Equal(0.5, ap.InitialValue())
	check.Equal("model1", ap.ModelReference())
	require.True(t, ap.IsSetBounds())
	check.Equal(0.001, ap.Bounds().LowerBound())
	check.Equal(10.0, ap.Bounds().UpperBound())
	check.Equal(ScaleTypeLog10, ap.Bounds().Scale())
	require.Equal(t, 1, ap.ExperimentReferences().Len())
	check.Equal("exp1", ap.ExperimentReferences().Get(0).Experiment())

	fe := pe.FitExperiments().GetByID("exp1")
	require.NotNil(t, fe)
	check.Equal(ExperimentTypeTimeCourse, fe.Type())
	require.Equal(t, 2, fe.FitMappings().Len())
	fm := fe.FitMappings().Get(1)
	check.Equal(MappingTypeObservable, fm.Type())
	check.Equal("obsX", fm.DataSource())
	check.Equal("upper", fm.Target())
	check.Equal(0.5, fm.Weight())
	check.False(fm.IsSetPointWeight())

	dv, ok := d.DataGenerators().GetByID("rate").Variables().Get(0).(*DependentVariable)
	require.True(t, ok)
	check.Equal("urn:sedml:function:derivative", dv.Term())
	check.Equal("urn:sedml:symbol:time", dv.Symbol2())
	check.False(dv.IsSetTarget2())
	require.Equal(t, 1, dv.AppliedDimensions().Len())
	check.Equal("task1", dv.AppliedDimensions().Get(0).Target())
	check.Equal("time", dv.AppliedDimensions().Get(0).DimensionTarget())

	band, ok := d.Outputs().GetByID("band").(*Plot2D)
	require.True(t, ok)
	sa, ok := band.Curves().GetByID("sa1").(*ShadedArea)
	require.True(t, ok)
	check.Equal("dg", sa.XDataReference())
	check.Equal("lower", sa.YDataReferenceFrom())
	check.Equal("upper", sa.YDataReferenceTo())
	check.Equal("filled", sa.Style())

	surf, ok := d.Outputs().GetByID("surf").(*Plot3D)
	require.True(t, ok)
	check.False(surf.Legend())
	check.True(surf.IsSetLegend())
	require.True(t, surf.IsSetZAxis())
	check.Equal(AxisTypeLog10, surf.ZAxis().Type())
	check.True(surf.ZAxis().Reverse())
	s1 := surf.Surfaces().GetByID("s1")
	require.NotNil(t, s1)
	check.Equal("rate", s1.ZDataReference())
	check.Equal(SurfaceTypeHeatMap, s1.Type())
	check.True(s1.LogZ())
	check.False(s1.IsSetLogX())

	fig, ok := d.Outputs().GetByID("fig1").(*Figure)
	require.True(t, ok)
	check.Equal(1, fig.NumRows())
	check.Equal(2, fig.NumCols())
	require.Equal(t, 2, fig.SubPlots().Len())
	sp := fig.SubPlots().Get(1)
	check.Equal("surf", sp.Plot())
	check.Equal(2, sp.Col())
	check.Equal(1, sp.ColSpan())
	check.False(sp.IsSetRowSpan())

	fill := d.Styles().GetByID("filled").Fill()
	require.NotNil(t, fill)
	check.Equal("#ff000080", fill.Color())
}
