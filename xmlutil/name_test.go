package xmlutil

import (
	"encoding/xml"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestXMLName(t *testing.T) {
	for _, tc := range []struct {
		name   string
		local  string
		spaces []string
		want   xml.Name
	}{
		{name: "local", local: "listOfModels", want: xml.Name{Local: "listOfModels"}},
		{name: "qualified", local: "sbml:units", want: xml.Name{Local: "sbml:units"}},
		{name: "space", local: "math", spaces: []string{"http://www.w3.org/1998/Math/MathML"},
			want: xml.Name{Local: "math", Space: "http://www.w3.org/1998/Math/MathML"}},
		{name: "first space", local: "p", spaces: []string{"a", "b"}, want: xml.Name{Local: "p", Space: "a"}},
		{name: "empty", want: xml.Name{}},
	} {
		t.Run(tc.name, func(t *testing.T) { assert.New(t).Equal(tc.want, XMLName(tc.local, tc.spaces...)) })
	}
}

func TestQName(t *testing.T) {
	check := assert.New(t)
	check.Equal("ci", QName("", "ci"))
	check.Equal("sbml:units", QName("sbml", "units"))
}
