package stream

import (
	"bytes"
	"encoding/xml"
	"io"
	"strings"

	"github.com/andaru/sedml/sederr"
	"github.com/andaru/sedml/xmlutil"
	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// Reader is a SED-ML token reader
type Reader struct {
	d     *xml.Decoder
	log   *sederr.Log
	scope xmlutil.Scope
	line  int
	col   int
}

// NewReader returns a Reader consuming r, adding problems to log.
func NewReader(r io.Reader, log *sederr.Log) *Reader {
	if log == nil {
		log = &sederr.Log{}
	}
	return &Reader{d: xml.NewDecoder(r), log: log}
}

// Log returns the reader's problem log
func (r *Reader) Log() *sederr.Log { return r.log }

// Position returns the line and column following the last token read.
func (r *Reader) Position() (line, column int) { return r.line, r.col }

// Scope returns the namespace declarations in effect at the last token.
func (r *Reader) Scope() *xmlutil.Scope { return &r.scope }

// Add logs err at the reader's current position, unless err already
// carries a position.
func (r *Reader) Add(err *sederr.Error) {
	if err == nil {
		return
	}
	if err.Line == 0 {
		err.Line, err.Column = r.line, r.col
	}
	r.log.Add(err)
}

// next returns the next raw token. Start and end elements update the
// namespace scope. Malformed input is logged as a fatal problem and the
// decoder's error is returned.
func (r *Reader) next() (xml.Token, error) {
	// scope of an element is left once its end token has been handed out
	token, err := r.d.Token()
	r.line, r.col = r.d.InputPos()
	if err != nil {
		var syntax *xml.SyntaxError
		if errors.As(err, &syntax) {
			r.Add(sederr.XMLSyntax(
				sederr.WithMessage(syntax.Msg),
				sederr.WithPosition(syntax.Line, r.col)))
		}
		if err == io.EOF {
			return nil, err
		}
		return nil, errors.WithStack(err)
	}
	token = xml.CopyToken(token)
	switch t := token.(type) {
	case xml.StartElement:
		r.scope.Push(t.Attr)
	case xml.EndElement:
		r.scope.Pop()
	}
	return token, nil
}

// Token returns the next start element, end element or character data
// token. Comments, processing instructions and directives are skipped.
// io.EOF is returned at the end of input.
func (r *Reader) Token() (xml.Token, error) {
	for {
		token, err := r.next()
		if err != nil {
			return nil, err
		}
		switch token.(type) {
		case xml.StartElement, xml.EndElement, xml.CharData:
			return token, nil
		}
	}
}

// Skip consumes tokens up to and including the end element matching the
// most recent start element.
func (r *Reader) Skip() error {
	for depth := 1; depth > 0; {
		token, err := r.next()
		if err != nil {
			return unexpectedEOF(err)
		}
		switch token.(type) {
		case xml.StartElement:
			depth++
		case xml.EndElement:
			depth--
		}
	}
	return nil
}

// Text returns the character data content of the element started by the
// most recent start element, consuming its end. Child elements are logged
// as unknown and skipped.
func (r *Reader) Text(se xml.StartElement) (string, error) {
	var sb strings.Builder
	for {
		token, err := r.Token()
		if err != nil {
			return "", unexpectedEOF(err)
		}
		switch t := token.(type) {
		case xml.CharData:
			sb.Write(t)
		case xml.StartElement:
			r.Add(sederr.UnknownElement(t.Name.Local, sederr.WithMessage("in <"+se.Name.Local+">")))
			if err := r.Skip(); err != nil {
				return "", err
			}
		case xml.EndElement:
			return sb.String(), nil
		}
	}
}

// Capture consumes the subtree of se, which must be the most recent start
// element, and returns it as a standalone XML fragment. Element and
// attribute prefixes are kept, and the root of the fragment declares every
// namespace the subtree borrows from its ancestors.
func (r *Reader) Capture(se xml.StartElement) ([]byte, error) {
	outer := r.scope.Clone()
	outer.Pop()
	c := &capture{outer: outer, borrowed: xmlutil.PrefixMap{}}
	c.start(se)
	for depth := 1; depth > 0; {
		token, err := r.next()
		if err != nil {
			return nil, unexpectedEOF(err)
		}
		switch t := token.(type) {
		case xml.StartElement:
			depth++
			c.start(t)
		case xml.EndElement:
			depth--
			c.end()
		case xml.CharData, xml.Comment:
			c.tokens = append(c.tokens, t)
		}
	}
	glog.V(2).Infof("captured <%s> subtree (%d tokens)", se.Name.Local, len(c.tokens))
	return c.bytes()
}

func unexpectedEOF(err error) error {
	if err == io.EOF {
		return errors.WithStack(io.ErrUnexpectedEOF)
	}
	return err
}

// capture rewrites namespace-resolved tokens back into prefixed form
type capture struct {
	outer    *xmlutil.Scope
	inner    xmlutil.Scope
	borrowed xmlutil.PrefixMap
	tokens   []xml.Token
	names    []string
}

func (c *capture) start(se xml.StartElement) {
	c.inner.Push(se.Attr)
	out := xml.StartElement{Name: xml.Name{Local: c.qname(se.Name, true)}}
	for _, attr := range se.Attr {
		var local string
		switch {
		case attr.Name.Space == "xmlns":
			local = xmlutil.QName("xmlns", attr.Name.Local)
		case attr.Name.Space == "" && attr.Name.Local == "xmlns":
			local = "xmlns"
		default:
			local = c.qname(attr.Name, false)
		}
		out.Attr = append(out.Attr, xml.Attr{Name: xml.Name{Local: local}, Value: attr.Value})
	}
	c.names = append(c.names, out.Name.Local)
	c.tokens = append(c.tokens, out)
}

func (c *capture) end() {
	name := c.names[len(c.names)-1]
	c.names = c.names[:len(c.names)-1]
	c.tokens = append(c.tokens, xml.EndElement{Name: xml.Name{Local: name}})
	c.inner.Pop()
}

// qname maps a resolved name back to prefix:local
func (c *capture) qname(n xml.Name, element bool) string {
	if n.Space == "" {
		return n.Local
	}
	lookup := (*xmlutil.Scope).AttrPrefix
	if element {
		lookup = (*xmlutil.Scope).Prefix
	}
	if pfx, ok := lookup(&c.inner, n.Space); ok {
		return xmlutil.QName(pfx, n.Local)
	}
	if pfx, ok := lookup(c.outer, n.Space); ok {
		if _, shadowed := c.inner.Namespace(pfx); !shadowed || pfx == "xml" {
			if pfx != "xml" {
				c.borrowed[pfx] = n.Space
			}
			return xmlutil.QName(pfx, n.Local)
		}
	}
	// an undeclared prefix is left in place by the decoder
	return xmlutil.QName(n.Space, n.Local)
}

func (c *capture) bytes() ([]byte, error) {
	var buf bytes.Buffer
	if len(c.tokens) == 0 {
		return nil, nil
	}
	root := c.tokens[0].(xml.StartElement)
	declared := map[string]bool{}
	for _, attr := range root.Attr {
		declared[attr.Name.Local] = true
	}
	for _, attr := range c.borrowed.Attr() {
		if !declared[attr.Name.Local] {
			root.Attr = append(root.Attr, attr)
		}
	}
	c.tokens[0] = root
	enc := xml.NewEncoder(&buf)
	for _, token := range c.tokens {
		if err := enc.EncodeToken(token); err != nil {
			return nil, errors.WithStack(err)
		}
	}
	if err := enc.Flush(); err != nil {
		return nil, errors.WithStack(err)
	}
	return buf.Bytes(), nil
}
