package sedml

import (
	"bytes"
	"io"
	"os"

	"github.com/andaru/sedml/mathml"
	"github.com/andaru/sedml/sederr"
	"github.com/andaru/sedml/stream"
	"github.com/andaru/sedml/xmltree"
	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// Write writes d to dst as SED-ML XML
func Write(dst io.Writer, d *Document, opts ...Option) error {
	if d == nil {
		return sederr.InvalidObject
	}
	ns := d.Namespaces()
	if ns.URI() == "" {
		return errors.Wrapf(sederr.InvalidObject, "no namespace for SED-ML level %d version %d", d.level, d.version)
	}
	o := newOptions(opts)
	w := &writer{Writer: stream.NewWriter(dst, o.prefix, o.indent)}
	if !o.noDecl {
		w.Declaration()
	}
	w.Bind(ns.bindings())
	w.element(d)
	if err := w.Flush(); err != nil {
		return err
	}
	glog.V(1).Infof("wrote SED-ML level %d version %d document", d.level, d.version)
	return nil
}

// WriteString returns d as SED-ML XML
func WriteString(d *Document, opts ...Option) (string, error) {
	var buf bytes.Buffer
	err := Write(&buf, d, opts...)
	return buf.String(), err
}

// WriteFile writes d to path, replacing any existing file.
func WriteFile(path string, d *Document, opts ...Option) error {
	var buf bytes.Buffer
	if err := Write(&buf, d, opts...); err != nil {
		return err
	}
	buf.WriteByte('\n')
	return errors.WithStack(os.WriteFile(path, buf.Bytes(), 0o644))
}

type writer struct {
	*stream.Writer
}

// element writes e with its attributes, notes, annotation and children
func (w *writer) element(e Element) {
	var attrs stream.AttrList
	e.writeAttributes(&attrs)
	w.Start(e.ElementName(), attrs)
	b := e.sedBase()
	w.tree(b.notes)
	w.tree(b.annotation)
	e.writeElements(w)
	w.End()
}

// single writes a single-valued child when present
func (w *writer) single(e Element) {
	if !isNil(e) {
		w.element(e)
	}
}

func (w *writer) tree(t *xmltree.Tree) {
	if t != nil {
		t.EncodeTo(w, w.Bindings())
	}
}

func (w *writer) math(a *mathml.AST) {
	if a != nil {
		a.EncodeTo(w, w.Bindings())
	}
}

// writeList writes l unless it is empty
func writeList[T Element](w *writer, l *ListOf[T]) {
	if l != nil && (l.Len() > 0 || l.notes != nil || l.annotation != nil) {
		w.element(l)
	}
}
