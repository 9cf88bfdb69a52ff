// Package mathml carries MathML expressions embedded in SED-ML elements.
//
// An AST is held as the XML tree it was read from. The package gives it
// the few operations a SED-ML object model needs: deep copy, a
// structural well-formedness check, identifier inspection and renaming,
// and token-stream output. It does not evaluate expressions.
package mathml

import (
	"strconv"
	"strings"

	"github.com/andaru/sedml/xmltree"
	"github.com/andaru/sedml/xmlutil"
	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"
	"github.com/pkg/errors"
)

// Namespace is the MathML 2 namespace URI
const Namespace = "http://www.w3.org/1998/Math/MathML"

var (
	xpChildren   = xpath.MustCompile(`count(/*/*)`)
	xpEmptyApply = xpath.MustCompile(`//*[local-name()='apply'][not(*)]`)
	xpEmptyCI    = xpath.MustCompile(`//*[local-name()='ci'][normalize-space(.)='']`)
	xpCI         = xpath.MustCompile(`//*[local-name()='ci']`)
	xpCN         = xpath.MustCompile(`//*[local-name()='cn']`)
)

// AST is a MathML <math> element
type AST struct {
	tree *xmltree.Tree
}

// Parse reads a <math> element in the MathML namespace from b
func Parse(b []byte) (*AST, error) {
	tree, err := xmltree.Parse(b)
	if err != nil {
		return nil, errors.Wrap(err, "mathml")
	}
	if tree.Name() != "math" {
		return nil, errors.Errorf("mathml: root element is <%s>, not <math>", tree.Name())
	}
	if tree.Namespace() != Namespace {
		return nil, errors.Errorf("mathml: <math> in namespace %q", tree.Namespace())
	}
	return &AST{tree: tree}, nil
}

// ParseString is Parse for a string
func ParseString(s string) (*AST, error) { return Parse([]byte(s)) }

// MustParse is like ParseString but panics on error
func MustParse(s string) *AST {
	a, err := ParseString(s)
	if err != nil {
		panic(err)
	}
	return a
}

// Identifier returns the expression <math><ci>id</ci></math>
func Identifier(id string) *AST {
	var sb strings.Builder
	sb.WriteString(`<math xmlns="` + Namespace + `"><ci>`)
	xmlEscape(&sb, id)
	sb.WriteString(`</ci></math>`)
	return MustParse(sb.String())
}

// Tree returns the XML tree of the expression
func (a *AST) Tree() *xmltree.Tree { return a.tree }

// Clone returns a deep copy of a
func (a *AST) Clone() *AST {
	if a == nil {
		return nil
	}
	return &AST{tree: a.tree.Clone()}
}

// IsWellFormed reports whether a holds exactly one expression, every
// <apply> has an operator, every <ci> names an identifier and every plain
// <cn> holds a number.
func (a *AST) IsWellFormed() bool {
	if a == nil || a.tree == nil {
		return false
	}
	if n, ok := a.tree.Evaluate(xpChildren).(float64); !ok || n != 1 {
		return false
	}
	if a.tree.QueryOne(xpEmptyApply) != nil || a.tree.QueryOne(xpEmptyCI) != nil {
		return false
	}
	for _, cn := range a.tree.Query(xpCN) {
		if !isNumber(cn) {
			return false
		}
	}
	return true
}

func isNumber(cn *xmlquery.Node) bool {
	switch cn.SelectAttr("type") {
	case "e-notation", "rational", "complex-cartesian", "complex-polar":
		// parts are separated by <sep/>
		for c := cn.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != xmlquery.TextNode {
				continue
			}
			if _, err := strconv.ParseFloat(strings.TrimSpace(c.Data), 64); err != nil {
				return false
			}
		}
		return true
	case "integer":
		_, err := strconv.ParseInt(strings.TrimSpace(cn.InnerText()), 10, 64)
		return err == nil
	}
	_, err := strconv.ParseFloat(strings.TrimSpace(cn.InnerText()), 64)
	return err == nil
}

// Identifiers returns the names referenced by <ci> elements, in document
// order and without repeats.
func (a *AST) Identifiers() []string {
	var ids []string
	seen := map[string]bool{}
	for _, ci := range a.tree.Query(xpCI) {
		if id := strings.TrimSpace(ci.InnerText()); id != "" && !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	return ids
}

// RenameSIdRefs replaces every <ci> reference to oldID with newID
func (a *AST) RenameSIdRefs(oldID, newID string) {
	if a == nil || oldID == newID {
		return
	}
	for _, ci := range a.tree.Query(xpCI) {
		if strings.TrimSpace(ci.InnerText()) != oldID {
			continue
		}
		text := &xmlquery.Node{Type: xmlquery.TextNode, Data: newID, Parent: ci}
		ci.FirstChild, ci.LastChild = text, text
	}
}

// EncodeTo writes the <math> element to enc, leaving out namespace
// declarations already made by inherited.
func (a *AST) EncodeTo(enc xmltree.TokenEncoder, inherited xmlutil.PrefixMap) error {
	return a.tree.EncodeTo(enc, inherited)
}

func (a *AST) String() string { return a.tree.String() }

func xmlEscape(sb *strings.Builder, s string) {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	sb.WriteString(r.Replace(s))
}
