package sedml

import (
	"bytes"
	"encoding/xml"
	"io"
	"os"
	"strings"

	"github.com/andaru/sedml/mathml"
	"github.com/andaru/sedml/sederr"
	"github.com/andaru/sedml/stream"
	"github.com/andaru/sedml/xmltree"
	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// Read reads a SED-ML document from src.
//
// Problems in the document are not returned: they are added to the
// document's error log (see Document.Errors) and reading continues where
// it can. Malformed XML stops reading, which is logged as a fatal problem.
// The returned error is non-nil only for failures of src itself.
func Read(src io.Reader, opts ...Option) (*Document, error) {
	o := newOptions(opts)
	d := NewDocumentWithNamespaces(o.defaults)
	r := &reader{Reader: stream.NewReader(src, &d.log), ns: d.namespaceURI()}
	err := r.readDocument(d)
	var syntax *xml.SyntaxError
	switch {
	case err == nil, errors.As(err, &syntax):
	case errors.Is(err, io.ErrUnexpectedEOF):
		r.Add(sederr.XMLSyntax(sederr.WithMessage("unexpected end of input")))
	default:
		return nil, err
	}
	if err == nil {
		checkIDs(d)
	}
	glog.V(1).Infof("read SED-ML level %d version %d document: %d problem(s)", d.level, d.version, d.log.Len())
	return d, nil
}

// ReadString reads a SED-ML document from s
func ReadString(s string, opts ...Option) (*Document, error) {
	return Read(strings.NewReader(s), opts...)
}

// ReadBytes reads a SED-ML document from b
func ReadBytes(b []byte, opts ...Option) (*Document, error) {
	return Read(bytes.NewReader(b), opts...)
}

// ReadFile reads the SED-ML document stored at path
func ReadFile(path string, opts ...Option) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer f.Close()
	d, err := Read(f, opts...)
	return d, errors.Wrap(err, path)
}

// reader walks a document's tokens, dispatching each element to the
// object that reads it
type reader struct {
	*stream.Reader
	// ns is the SED-ML namespace of the document being read
	ns string
}

func (r *reader) readDocument(d *Document) error {
	for {
		token, err := r.Token()
		if err == io.EOF {
			r.Add(sederr.XMLSyntax(sederr.WithMessage("no <sedML> element")))
			return nil
		}
		if err != nil {
			return err
		}
		se, ok := token.(xml.StartElement)
		if !ok {
			continue
		}
		if se.Name.Local != "sedML" {
			r.Add(sederr.UnknownElement(se.Name.Local,
				sederr.WithSeverity(sederr.SeverityFatal),
				sederr.WithMessage("the document element must be <sedML>")))
			return r.Skip()
		}
		if level, version, known := LevelVersion(se.Name.Space); known {
			d.setLevelAndVersion(level, version)
		} else {
			r.Add(sederr.InvalidNamespace("sedML", se.Name.Space))
		}
		r.ns = se.Name.Space
		for _, attr := range se.Attr {
			if attr.Name.Space == "xmlns" {
				d.namespaces.Add(attr.Name.Local, attr.Value)
			}
		}
		return r.readElement(d, se)
	}
}

// readElement reads the element e from se up to its end element
func (r *reader) readElement(e Element, se xml.StartElement) error {
	b := e.sedBase()
	b.line, b.column = r.Position()
	attrs := r.Attributes(se)
	e.readAttributes(attrs)
	attrs.Unknown()
	for {
		token, err := r.Token()
		if err != nil {
			if err == io.EOF {
				err = errors.WithStack(io.ErrUnexpectedEOF)
			}
			return err
		}
		switch t := token.(type) {
		case xml.EndElement:
			return nil
		case xml.StartElement:
			ok, err := r.readChild(e, t)
			if err != nil {
				return err
			}
			if !ok {
				glog.V(2).Infof("skipping unknown element <%s> in <%s>", t.Name.Local, e.ElementName())
				r.Add(sederr.UnknownElement(t.Name.Local, sederr.WithMessage("not permitted in <"+e.ElementName()+">")))
				if err := r.Skip(); err != nil {
					return err
				}
			}
		}
	}
}

func (r *reader) readChild(e Element, se xml.StartElement) (bool, error) {
	switch se.Name.Space {
	case r.ns:
		b := e.sedBase()
		switch se.Name.Local {
		case "notes":
			return true, r.readTree(e, &b.notes, se)
		case "annotation":
			return true, r.readTree(e, &b.annotation, se)
		}
		return e.readChild(r, se)
	case mathml.Namespace:
		if me, ok := e.(mathElement); ok && se.Name.Local == "math" {
			return true, r.readMath(me, se)
		}
	}
	return false, nil
}

// maxOccurs logs a repeated single-valued child and skips it
func (r *reader) maxOccurs(parent Element, se xml.StartElement) error {
	r.Add(sederr.MaxOccurs(se.Name.Local, parent.ElementName(), 1))
	return r.Skip()
}

// readTree captures an opaque child element
func (r *reader) readTree(parent Element, slot **xmltree.Tree, se xml.StartElement) error {
	if *slot != nil {
		return r.maxOccurs(parent, se)
	}
	b, err := r.Capture(se)
	if err != nil {
		return err
	}
	t, err := xmltree.Parse(b)
	if err != nil {
		// captured bytes are well-formed
		return errors.WithStack(err)
	}
	*slot = t
	return nil
}

// mathElement is implemented by elements holding a MathML expression
type mathElement interface {
	Element
	mathRef() **mathml.AST
}

func (r *reader) readMath(e mathElement, se xml.StartElement) error {
	slot := e.mathRef()
	if *slot != nil {
		return r.maxOccurs(e, se)
	}
	line, column := r.Position()
	b, err := r.Capture(se)
	if err != nil {
		return err
	}
	ast, err := mathml.Parse(b)
	if err != nil {
		r.Add(sederr.InvalidMath(e.ElementName(), sederr.WithMessage(err.Error()), sederr.WithPosition(line, column)))
		return nil
	}
	if !ast.IsWellFormed() {
		r.Add(sederr.InvalidMath(e.ElementName(),
			sederr.WithMessage("the expression is not well-formed"),
			sederr.WithPosition(line, column)))
	}
	*slot = ast
	return nil
}

// readSingle reads a single-valued child element into slot
func readSingle[T Element](r *reader, parent Element, slot *T, se xml.StartElement, ctor func(level, version int) T) error {
	if !isNil(*slot) {
		return r.maxOccurs(parent, se)
	}
	pb := parent.sedBase()
	child := ctor(pb.level, pb.version)
	child.sedBase().parent = parent
	*slot = child
	return r.readElement(child, se)
}

// checkIDs logs ids used by more than one element of d. Variables and
// parameters are local to the element holding them and only need be
// unique there.
func checkIDs(d *Document) {
	global := map[string]bool{}
	local := map[Element]map[string]bool{}
	walk(d, func(e Element) {
		if e == Element(d) || !e.IsSetID() {
			return
		}
		seen := global
		switch e.(type) {
		case *Variable, *DependentVariable, *Parameter:
			scope := e.Parent()
			if scope != nil && scope.Parent() != nil {
				scope = scope.Parent()
			}
			if local[scope] == nil {
				local[scope] = map[string]bool{}
			}
			seen = local[scope]
		}
		if seen[e.ID()] {
			d.log.Add(sederr.DuplicateID(e.ID(), e.ElementName(), sederr.WithPosition(e.LineNumber(), e.ColumnNumber())))
			return
		}
		seen[e.ID()] = true
	})
}
