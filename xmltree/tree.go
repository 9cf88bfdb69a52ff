// Package xmltree holds XML fragments which are carried through a SED-ML
// document without interpretation: notes, annotations, the new content
// of XML changes, data dimension descriptions and MathML expressions.
//
// A Tree is an antchfx/xmlquery document, so fragments may be inspected
// with compiled antchfx/xpath expressions.
package xmltree

import (
	"bytes"
	"encoding/xml"
	"strings"

	"github.com/andaru/sedml/xmlutil"
	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"
	"github.com/pkg/errors"
)

// TokenEncoder is the subset of xml.Encoder used to write a Tree
type TokenEncoder interface {
	EncodeToken(t xml.Token) error
}

// Tree is a standalone XML fragment with a single root element
type Tree struct {
	doc *xmlquery.Node
}

// Parse returns the Tree of the XML fragment b
func Parse(b []byte) (*Tree, error) {
	doc, err := xmlquery.Parse(bytes.NewReader(b))
	if err != nil {
		return nil, errors.Wrap(err, "xmltree")
	}
	t := &Tree{doc: doc}
	if t.Root() == nil {
		return nil, errors.New("xmltree: no root element")
	}
	return t, nil
}

// ParseString is Parse for a string
func ParseString(s string) (*Tree, error) { return Parse([]byte(s)) }

// Document returns the xmlquery document node
func (t *Tree) Document() *xmlquery.Node { return t.doc }

// Root returns the root element
func (t *Tree) Root() *xmlquery.Node {
	for n := t.doc.FirstChild; n != nil; n = n.NextSibling {
		if n.Type == xmlquery.ElementNode {
			return n
		}
	}
	return nil
}

// Name returns the local name of the root element
func (t *Tree) Name() string { return t.Root().Data }

// Namespace returns the namespace URI of the root element
func (t *Tree) Namespace() string { return t.Root().NamespaceURI }

// Query returns the nodes selected by expr
func (t *Tree) Query(expr *xpath.Expr) []*xmlquery.Node {
	return xmlquery.QuerySelectorAll(t.doc, expr)
}

// QueryOne returns the first node selected by expr, or nil
func (t *Tree) QueryOne(expr *xpath.Expr) *xmlquery.Node {
	return xmlquery.QuerySelector(t.doc, expr)
}

// Evaluate evaluates expr against the document, returning a float64,
// string, bool or node iterator as for xpath.Expr.Evaluate.
func (t *Tree) Evaluate(expr *xpath.Expr) interface{} {
	return expr.Evaluate(xmlquery.CreateXPathNavigator(t.doc))
}

// Clone returns a deep copy of t
func (t *Tree) Clone() *Tree {
	if t == nil {
		return nil
	}
	c, err := Parse(t.Bytes())
	if err != nil {
		// a tree always reparses from its own output
		panic(err)
	}
	return c
}

// Bytes returns the fragment as XML
func (t *Tree) Bytes() []byte {
	var buf bytes.Buffer
	enc := xml.NewEncoder(&buf)
	if err := t.EncodeTo(enc, nil); err == nil {
		enc.Flush()
	}
	return buf.Bytes()
}

func (t *Tree) String() string { return string(t.Bytes()) }

// EncodeTo writes the fragment to enc. Namespace declarations on the root
// which repeat a binding in inherited are left out. Whitespace-only text
// between elements is dropped, so the encoder's indentation applies.
func (t *Tree) EncodeTo(enc TokenEncoder, inherited xmlutil.PrefixMap) error {
	return encodeNode(enc, t.Root(), inherited, nil)
}

func encodeNode(enc TokenEncoder, n *xmlquery.Node, inherited xmlutil.PrefixMap, scope []*xmlquery.Node) error {
	switch n.Type {
	case xmlquery.TextNode, xmlquery.CharDataNode:
		if strings.TrimSpace(n.Data) == "" && hasElementSibling(n) {
			return nil
		}
		return enc.EncodeToken(xml.CharData(n.Data))
	case xmlquery.CommentNode:
		return enc.EncodeToken(xml.Comment(n.Data))
	case xmlquery.ElementNode:
	default:
		return nil
	}
	scope = append(scope, n)
	se := xml.StartElement{Name: xml.Name{Local: xmlutil.QName(elementPrefix(n, scope), n.Data)}}
	for _, attr := range n.Attr {
		name := attrName(attr)
		if inherited != nil && len(scope) == 1 {
			if pfx, ok := declaredPrefix(attr); ok {
				if uri, bound := inherited[pfx]; bound && uri == attr.Value {
					continue
				}
			}
		}
		se.Attr = append(se.Attr, xml.Attr{Name: xml.Name{Local: name}, Value: attr.Value})
	}
	if err := enc.EncodeToken(se); err != nil {
		return err
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if err := encodeNode(enc, c, inherited, scope); err != nil {
			return err
		}
	}
	return enc.EncodeToken(se.End())
}

func hasElementSibling(n *xmlquery.Node) bool {
	if n.Parent == nil {
		return false
	}
	for c := n.Parent.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == xmlquery.ElementNode {
			return true
		}
	}
	return false
}

// declaredPrefix returns the prefix declared by attr, "" for the default
// namespace
func declaredPrefix(attr xmlquery.Attr) (string, bool) {
	switch {
	case attr.Name.Space == "xmlns":
		return attr.Name.Local, true
	case attr.Name.Space == "" && attr.Name.Local == "xmlns":
		return "", true
	}
	return "", false
}

func attrName(attr xmlquery.Attr) string {
	switch attr.Name.Space {
	case "":
		return attr.Name.Local
	case xmlURL:
		return xmlutil.QName("xml", attr.Name.Local)
	}
	return xmlutil.QName(attr.Name.Space, attr.Name.Local)
}

const xmlURL = "http://www.w3.org/XML/1998/namespace"

// elementPrefix returns the prefix n was written with. Should the parser
// not have recorded one, the innermost declaration of n's namespace in
// scope is used.
func elementPrefix(n *xmlquery.Node, scope []*xmlquery.Node) string {
	if n.Prefix != "" || n.NamespaceURI == "" {
		return n.Prefix
	}
	for i := len(scope) - 1; i >= 0; i-- {
		for _, attr := range scope[i].Attr {
			if pfx, ok := declaredPrefix(attr); ok && attr.Value == n.NamespaceURI {
				return pfx
			}
		}
	}
	return ""
}
