package stream

import (
	"bytes"
	"encoding/xml"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriter(t *testing.T) {
	check := assert.New(t)
	var buf bytes.Buffer
	w := NewWriter(&buf, "", "  ")
	w.Declaration()
	attrs := AttrList{}
	attrs.String("xmlns", "urn:sedml")
	attrs.Int("level", 1)
	attrs.Bool("logX", true)
	attrs.Float("min", 0.25)
	w.Start("sedML", attrs)
	w.Element("value", nil, "1")
	w.Start("m:math", AttrList{{Name: attrName("xmlns:m"), Value: "urn:m"}})
	w.End()
	w.End()
	check.NoError(w.Flush())
	check.Equal(`<?xml version="1.0" encoding="UTF-8"?>
<sedML xmlns="urn:sedml" level="1" logX="true" min="0.25">
  <value>1</value>
  <m:math xmlns:m="urn:m"/>
</sedML>`, buf.String())
}

func TestWriterEscaping(t *testing.T) {
	for _, tc := range []struct {
		name  string
		write func(w *Writer)
		want  string
	}{
		{
			name:  "empty element",
			write: func(w *Writer) { w.Start("a", nil); w.End() },
			want:  `<a/>`,
		},
		{
			name:  "empty text",
			write: func(w *Writer) { w.Element("a", nil, "") },
			want:  `<a/>`,
		},
		{
			name: "nested",
			write: func(w *Writer) {
				w.Start("a", nil)
				w.Start("b", AttrList{{Name: attrName("c"), Value: "d"}})
				w.End()
				w.End()
			},
			want: `<a><b c="d"/></a>`,
		},
		{
			name:  "text",
			write: func(w *Writer) { w.Element("a", nil, `it's "x" & <y>`) },
			want:  `<a>it's "x" &amp; &lt;y&gt;</a>`,
		},
		{
			name:  "literal reference",
			write: func(w *Writer) { w.Element("a", nil, "&#39;") },
			want:  `<a>&amp;#39;</a>`,
		},
		{
			name: "attribute",
			write: func(w *Writer) {
				w.Start("a", AttrList{{Name: attrName("target"), Value: `x[@id='k1' and @n="2"]`}})
				w.End()
			},
			want: `<a target="x[@id='k1' and @n=&#34;2&#34;]"/>`,
		},
		{
			name: "comment",
			write: func(w *Writer) {
				w.Start("a", nil)
				w.EncodeToken(xml.Comment("c"))
				w.End()
			},
			want: `<a><!--c--></a>`,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			w := NewWriter(&buf, "", "")
			tc.write(w)
			assert.NoError(t, w.Flush())
			assert.Equal(t, tc.want, buf.String())
		})
	}
}

func TestWriterStickyError(t *testing.T) {
	check := assert.New(t)
	var buf bytes.Buffer
	w := NewWriter(&buf, "", "")
	w.End()
	check.Error(w.Err())
	w.Start("a", nil)
	check.Error(w.Flush())
	check.Zero(buf.Len())
}

func attrName(local string) xml.Name { return xml.Name{Local: local} }
