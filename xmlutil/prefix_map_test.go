package xmlutil

import (
	"encoding/xml"
	"testing"

	"github.com/stretchr/testify/assert"
)

type strPair struct{ a, b string }

func TestPrefixMap(t *testing.T) {
	for _, tc := range []struct {
		attrs     []xml.Attr
		nsTest    []strPair
		pfxTest   []strPair
		sortAttrs []xml.Attr
	}{
		// test number #00: identity check (no tests to run and an empty sortAttrs is expected)
		{},

		// #01
		{
			attrs: []xml.Attr{
				{Name: XMLName("pfx-b", "xmlns"), Value: "val-b"},
				{Name: XMLName("pfx-a", "xmlns"), Value: "val-a"},
				{Name: XMLName("pfx-c", "xmlns"), Value: "val-c"},
			},
			nsTest: []strPair{
				{a: "pfx-a", b: "val-a"},
				{a: "pfx-b", b: "val-b"},
				{a: "pfx-c", b: "val-c"},
			},
			pfxTest: []strPair{
				{b: "pfx-a", a: "val-a"},
				{b: "pfx-b", a: "val-b"},
				{b: "pfx-c", a: "val-c"},
			},
			sortAttrs: []xml.Attr{
				{Name: XMLName("xmlns:pfx-a"), Value: "val-a"},
				{Name: XMLName("xmlns:pfx-b"), Value: "val-b"},
				{Name: XMLName("xmlns:pfx-c"), Value: "val-c"},
			},
		},

		// #02: default namespace and non-declaration attributes
		{
			attrs: []xml.Attr{
				{Name: XMLName("xmlns"), Value: "http://sed-ml.org/sed-ml/level1/version4"},
				{Name: XMLName("level"), Value: "1"},
				{Name: XMLName("sbml", "xmlns"), Value: "http://www.sbml.org/sbml/level3/version1/core"},
			},
			nsTest: []strPair{
				{a: "", b: "http://sed-ml.org/sed-ml/level1/version4"},
				{a: "level", b: ""},
			},
			pfxTest: []strPair{
				{a: "http://sed-ml.org/sed-ml/level1/version4", b: ""},
				{a: "http://www.sbml.org/sbml/level3/version1/core", b: "sbml"},
			},
			sortAttrs: []xml.Attr{
				{Name: XMLName("xmlns"), Value: "http://sed-ml.org/sed-ml/level1/version4"},
				{Name: XMLName("xmlns:sbml"), Value: "http://www.sbml.org/sbml/level3/version1/core"},
			},
		},
	} {
		t.Run("", func(t *testing.T) {
			a := assert.New(t)
			pmap := NewPrefixMap(tc.attrs...)
			for _, tt := range tc.nsTest {
				a.Equal(tt.b, pmap.Namespace(tt.a))
			}
			for _, tt := range tc.pfxTest {
				var pfx string
				if pfxes := pmap.Prefix(tt.a); pfxes != nil {
					pfx = pfxes[0]
				}
				a.Equal(tt.b, pfx)
			}
			a.Equal(tc.sortAttrs, pmap.Attr())
		})
	}
}

func TestPrefixMapClone(t *testing.T) {
	check := assert.New(t)
	m := PrefixMap{"a": "urn:a"}
	c := m.Clone()
	c["b"] = "urn:b"
	check.Len(m, 1)
	check.Len(c, 2)
	check.True(IsDeclaration(xml.Attr{Name: XMLName("xmlns")}))
	check.True(IsDeclaration(xml.Attr{Name: XMLName("p", "xmlns")}))
	check.False(IsDeclaration(xml.Attr{Name: XMLName("id")}))
}
