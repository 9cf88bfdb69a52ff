package sedml

import (
	"math"

	"github.com/andaru/sedml/sederr"
	"github.com/andaru/sedml/stream"
)

// Scalar attribute holders. The zero value of each is unset, and get
// returns the neutral value of an unset attribute.

type floatAttr struct {
	v   float64
	set bool
}

func (a floatAttr) get() float64 {
	if !a.set {
		return math.NaN()
	}
	return a.v
}

func (a *floatAttr) put(v float64) { *a = floatAttr{v: v, set: true} }

func (a *floatAttr) read(v float64, ok bool) {
	if ok {
		a.put(v)
	}
}

type intAttr struct {
	v   int
	set bool
}

func (a intAttr) get() int {
	if !a.set {
		return math.MaxInt32
	}
	return a.v
}

func (a *intAttr) put(v int) { *a = intAttr{v: v, set: true} }

func (a *intAttr) read(v int, ok bool) {
	if ok {
		a.put(v)
	}
}

type boolAttr struct {
	v   bool
	set bool
}

func (a boolAttr) get() bool { return a.set && a.v }

func (a *boolAttr) put(v bool) { *a = boolAttr{v: v, set: true} }

func (a *boolAttr) read(v bool, ok bool) {
	if ok {
		a.put(v)
	}
}

func (a floatAttr) write(l *stream.AttrList, name string) {
	if a.set {
		l.Float(name, a.v)
	}
}

func (a intAttr) write(l *stream.AttrList, name string) {
	if a.set {
		l.Int(name, a.v)
	}
}

func (a boolAttr) write(l *stream.AttrList, name string) {
	if a.set {
		l.Bool(name, a.v)
	}
}

func writeString(l *stream.AttrList, name, v string) {
	if v != "" {
		l.String(name, v)
	}
}

func writeEnum[E interface {
	~int
	String() string
}](l *stream.AttrList, name string, v E) {
	if v != 0 {
		l.String(name, v.String())
	}
}

// readEnum reads an enumerated attribute, logging lexemes parse does not
// recognise. Unknown lexemes yield the Invalid zero value.
func readEnum[E ~int](a *stream.Attributes, name string, required bool, parse func(string) E) E {
	s, ok := a.String(name, required)
	if !ok || s == "" {
		return 0
	}
	v := parse(s)
	if v == 0 {
		a.Enum(name, s)
	}
	return v
}

// setEnum stores v when it is a defined value. Otherwise the Invalid
// zero value is stored and InvalidAttributeValue returned.
func setEnum[E interface {
	~int
	IsValid() bool
}](dst *E, v E) error {
	if !v.IsValid() {
		*dst = 0
		return sederr.InvalidAttributeValue
	}
	*dst = v
	return nil
}
