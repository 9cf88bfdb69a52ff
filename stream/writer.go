package stream

import (
	"bytes"
	"encoding/xml"
	"io"

	"github.com/andaru/sedml/xmlutil"
	"github.com/pkg/errors"
)

// Writer writes a SED-ML document as XML.
//
// Elements without content are written as empty-element tags, and
// apostrophes are written unescaped.
//
// The first error encountered is kept and every later call becomes a
// no-op; check Err (or the result of Flush) once writing is complete.
type Writer struct {
	out      io.Writer
	buf      bytes.Buffer
	enc      *xml.Encoder
	names    []string
	bindings xmlutil.PrefixMap
	err      error
	open     int // len(buf) after the last start tag, or -1 once content followed
}

// NewWriter returns a Writer to w. An empty prefix and indent write the
// document on one line.
func NewWriter(w io.Writer, prefix, indent string) *Writer {
	sw := &Writer{out: w, bindings: xmlutil.PrefixMap{}, open: -1}
	sw.enc = xml.NewEncoder(&sw.buf)
	sw.enc.Indent(prefix, indent)
	return sw
}

// Declaration writes the XML declaration.
func (w *Writer) Declaration() {
	w.EncodeToken(xml.ProcInst{Target: "xml", Inst: []byte(`version="1.0" encoding="UTF-8"`)})
	w.EncodeToken(xml.CharData("\n"))
}

// Bind records namespace declarations written on the document root, making
// them visible to subtrees written later
func (w *Writer) Bind(m xmlutil.PrefixMap) { w.bindings.Merge(m) }

// Bindings returns the declarations recorded by Bind
func (w *Writer) Bindings() xmlutil.PrefixMap { return w.bindings }

// Start opens the element name
func (w *Writer) Start(name string, attrs []xml.Attr) {
	w.EncodeToken(xml.StartElement{Name: xmlutil.XMLName(name), Attr: attrs})
	w.names = append(w.names, name)
}

// End closes the most recently started element
func (w *Writer) End() {
	if len(w.names) == 0 {
		w.setErr(errors.New("stream: End without Start"))
		return
	}
	name := w.names[len(w.names)-1]
	w.names = w.names[:len(w.names)-1]
	w.EncodeToken(xml.EndElement{Name: xmlutil.XMLName(name)})
}

// Text writes character data
func (w *Writer) Text(s string) { w.EncodeToken(xml.CharData(s)) }

// Element writes the element name holding only the text s
func (w *Writer) Element(name string, attrs []xml.Attr, s string) {
	w.Start(name, attrs)
	w.Text(s)
	w.End()
}

// EncodeToken writes token, implementing the token encoder interface
// of captured subtrees.
func (w *Writer) EncodeToken(token xml.Token) error {
	if w.err != nil {
		return w.err
	}
	if _, ok := token.(xml.StartElement); ok {
		w.drain()
	}
	from := w.buf.Len()
	w.setErr(w.enc.EncodeToken(token))
	w.setErr(w.enc.Flush())
	if w.err != nil {
		return w.err
	}
	switch t := token.(type) {
	case xml.StartElement:
		unescape(&w.buf, from, aposRef)
		w.open = w.buf.Len()
	case xml.EndElement:
		if w.open >= 0 {
			// "<name ...></name>" becomes "<name .../>"
			w.buf.Truncate(w.open - 1)
			w.buf.WriteString("/>")
		}
		w.open = -1
	case xml.CharData:
		if len(t) > 0 {
			unescape(&w.buf, from, aposRef, quotRef)
			w.open = -1
		}
	default:
		w.open = -1
	}
	return nil
}

// drain moves buffered output to the destination writer
func (w *Writer) drain() {
	if w.buf.Len() == 0 {
		return
	}
	_, err := w.out.Write(w.buf.Bytes())
	w.setErr(err)
	w.buf.Reset()
	w.open = -1
}

var (
	aposRef = [2]string{"&#39;", "'"}
	quotRef = [2]string{"&#34;", `"`}
)

// unescape replaces the character references refs in buf from offset on.
// The encoder escapes every '&' it writes, so the references only arise
// from escaped characters.
func unescape(buf *bytes.Buffer, from int, refs ...[2]string) {
	tail := buf.Bytes()[from:]
	out := tail
	for _, ref := range refs {
		out = bytes.ReplaceAll(out, []byte(ref[0]), []byte(ref[1]))
	}
	if len(out) == len(tail) {
		return
	}
	out = append([]byte(nil), out...)
	buf.Truncate(from)
	buf.Write(out)
}

func (w *Writer) setErr(err error) {
	if w.err == nil && err != nil {
		w.err = errors.WithStack(err)
	}
}

// Err returns the first error encountered while writing
func (w *Writer) Err() error { return w.err }

// Flush flushes buffered output and returns the first error encountered.
func (w *Writer) Flush() error {
	if w.err == nil {
		w.setErr(w.enc.Flush())
		w.drain()
	}
	return w.err
}
