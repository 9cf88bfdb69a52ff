package sederr

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError(t *testing.T) {
	for _, tc := range []struct {
		err *Error

		error string
		xml   string
		json  string
	}{
		{
			err:   MissingAttribute("id", "dataGenerator"),
			error: "error missing-attribute element:dataGenerator attribute:id",
			xml:   `<problem code="missing-attribute" severity="error" element="dataGenerator" attribute="id"></problem>`,
			json:  `{"code":"missing-attribute","severity":"error","element":"dataGenerator","attribute":"id"}`,
		},

		{
			err:   UnknownAttribute("foo", "model", WithPosition(3, 14), WithMessage("bar")),
			error: "error unknown-attribute element:model attribute:foo at 3:14 bar",
			xml:   `<problem code="unknown-attribute" severity="error" element="model" attribute="foo" line="3" column="14">bar</problem>`,
			json:  `{"code":"unknown-attribute","severity":"error","element":"model","attribute":"foo","line":3,"column":14,"message":"bar"}`,
		},

		{
			err:   XMLSyntax(WithMessage("unexpected EOF")),
			error: "fatal xml-syntax unexpected EOF",
			xml:   `<problem code="xml-syntax" severity="fatal">unexpected EOF</problem>`,
			json:  `{"code":"xml-syntax","severity":"fatal","message":"unexpected EOF"}`,
		},

		{
			err:   DuplicateID("dg1", "dataGenerator"),
			error: `error duplicate-id element:dataGenerator attribute:id id "dg1" is already in use`,
			xml:   `<problem code="duplicate-id" severity="error" element="dataGenerator" attribute="id">id &#34;dg1&#34; is already in use</problem>`,
			json:  `{"code":"duplicate-id","severity":"error","element":"dataGenerator","attribute":"id","message":"id \"dg1\" is already in use"}`,
		},

		{
			err:   InvalidEnumValue("type", "xAxis", WithSeverity(SeverityWarning)),
			error: "warning invalid-enum-value element:xAxis attribute:type",
			xml:   `<problem code="invalid-enum-value" severity="warning" element="xAxis" attribute="type"></problem>`,
			json:  `{"code":"invalid-enum-value","severity":"warning","element":"xAxis","attribute":"type"}`,
		},

		{
			err:   MaxOccurs("math", "dataGenerator", 1),
			error: "error max-occurs element:math element <math> may occur at most 1 time(s) in <dataGenerator>",
		},

		{
			err:   InvalidNamespace("sedML", "urn:bogus"),
			error: `error invalid-namespace element:sedML unrecognised namespace "urn:bogus"`,
		},
	} {
		t.Run(fmt.Sprintf("%v", tc.err), func(t *testing.T) {
			check := assert.New(t)
			check.Equal(tc.error, tc.err.Error())
			if tc.xml == "" {
				return
			}
			bXML, _ := xml.Marshal(tc.err)
			bJSON, _ := json.Marshal(tc.err)
			check.Equal(tc.xml, string(bXML))
			check.Equal(tc.json, string(bJSON))

			// unmarshal the marshaled text and confirm marshaling the
			// new object reproduces the original
			ev := Error{}
			if check.NoError(xml.Unmarshal(bXML, &ev)) {
				evXML, _ := xml.Marshal(ev)
				check.Equal(tc.xml, string(evXML))
			}
			ev = Error{}
			if check.NoError(json.Unmarshal(bJSON, &ev)) {
				evJSON, _ := json.Marshal(ev)
				check.Equal(tc.json, string(evJSON))
			}
		})
	}
}

func TestCodeText(t *testing.T) {
	check := assert.New(t)
	for c := CodeXMLSyntax; c <= CodeInvalidNamespace; c++ {
		b, err := c.MarshalText()
		check.NoError(err)
		var got Code
		if check.NoError(got.UnmarshalText(b)) {
			check.Equal(c, got)
		}
	}
	check.Equal("Code(99)", Code(99).String())
	var c Code
	check.Error(c.UnmarshalText([]byte("bogus")))
}

func TestSeverityText(t *testing.T) {
	for _, tc := range []struct {
		text string
		want Severity
	}{
		{text: "info", want: SeverityInfo},
		{text: "warning", want: SeverityWarning},
		{text: " error ", want: SeverityError},
		{text: "fatal", want: SeverityFatal},
	} {
		t.Run(tc.text, func(t *testing.T) {
			check := assert.New(t)
			var s Severity
			if check.NoError(s.UnmarshalText([]byte(tc.text))) {
				check.Equal(tc.want, s)
			}
		})
	}
	var s Severity
	assert.Error(t, s.UnmarshalText([]byte("Error")))
	assert.True(t, SeverityInfo < SeverityWarning && SeverityWarning < SeverityError && SeverityError < SeverityFatal)
}
