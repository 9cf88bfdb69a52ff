package stream

import (
	"encoding/xml"
	"math"
	"strconv"
	"strings"

	"github.com/andaru/sedml/sederr"
	"github.com/andaru/sedml/syntax"
	"github.com/andaru/sedml/xmlutil"
)

// Attributes is the attribute set of one start element, read on behalf
// of the element named Element.
//
// Every lookup marks its attribute as consumed, and Unknown reports the
// rest. Only attributes in no namespace are SED-ML attributes; namespace
// declarations and attributes in other namespaces are never reported.
type Attributes struct {
	Element string

	attrs []xml.Attr
	used  []bool
	r     *Reader
}

// Attributes returns the attribute set of se, which must be the most
// recent start element.
func (r *Reader) Attributes(se xml.StartElement) *Attributes {
	return &Attributes{Element: se.Name.Local, attrs: se.Attr, used: make([]bool, len(se.Attr)), r: r}
}

// Add logs err against the element being read
func (a *Attributes) Add(err *sederr.Error) {
	if a.r != nil {
		a.r.Add(err)
	}
}

// Lookup returns the value of the attribute name.
func (a *Attributes) Lookup(name string) (string, bool) {
	for i, attr := range a.attrs {
		if attr.Name.Space == "" && attr.Name.Local == name {
			a.used[i] = true
			return attr.Value, true
		}
	}
	return "", false
}

// Has reports whether the attribute name is present, without consuming it.
func (a *Attributes) Has(name string) bool {
	for _, attr := range a.attrs {
		if attr.Name.Space == "" && attr.Name.Local == name {
			return true
		}
	}
	return false
}

// Required logs a missing attribute problem unless name is present.
func (a *Attributes) Required(name string) {
	if !a.Has(name) {
		a.Add(sederr.MissingAttribute(name, a.Element))
	}
}

// String returns the value of the attribute name. A required attribute
// which is absent, or any attribute present with an empty value, is
// logged.
func (a *Attributes) String(name string, required bool) (string, bool) {
	v, ok := a.Lookup(name)
	switch {
	case !ok && required:
		a.Add(sederr.MissingAttribute(name, a.Element))
	case ok && v == "":
		a.Add(sederr.EmptyAttribute(name, a.Element))
	}
	return v, ok
}

// SId is like String, and also logs values which are not valid SIds.
// Invalid values are still returned.
func (a *Attributes) SId(name string, required bool) (string, bool) {
	v, ok := a.String(name, required)
	if ok && v != "" && !syntax.IsValidSId(v) {
		a.Add(sederr.InvalidIDSyntax(name, a.Element, sederr.WithMessage(strconv.Quote(v)+" is not a valid SId")))
	}
	return v, ok
}

// UnitSId is like SId, for unit identifier references.
func (a *Attributes) UnitSId(name string, required bool) (string, bool) {
	v, ok := a.String(name, required)
	if ok && v != "" && !syntax.IsValidUnitSId(v) {
		a.Add(sederr.InvalidIDSyntax(name, a.Element, sederr.WithMessage(strconv.Quote(v)+" is not a valid UnitSId")))
	}
	return v, ok
}

// XMLID is like String, and also logs values which are not valid XML IDs.
func (a *Attributes) XMLID(name string, required bool) (string, bool) {
	v, ok := a.String(name, required)
	if ok && v != "" && !syntax.IsValidXMLID(v) {
		a.Add(sederr.InvalidIDSyntax(name, a.Element, sederr.WithMessage(strconv.Quote(v)+" is not a valid XML ID")))
	}
	return v, ok
}

// Float returns the attribute name parsed as an XML Schema double.
func (a *Attributes) Float(name string, required bool) (float64, bool) {
	v, ok := a.String(name, required)
	if !ok || v == "" {
		return math.NaN(), false
	}
	f, err := ParseFloat(v)
	if err != nil {
		a.Add(sederr.BadAttributeValue(name, a.Element, sederr.WithMessage(strconv.Quote(v)+" is not a double")))
		return math.NaN(), false
	}
	return f, true
}

// Int returns the attribute name parsed as an integer.
func (a *Attributes) Int(name string, required bool) (int, bool) {
	v, ok := a.String(name, required)
	if !ok || v == "" {
		return math.MaxInt32, false
	}
	i, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		a.Add(sederr.BadAttributeValue(name, a.Element, sederr.WithMessage(strconv.Quote(v)+" is not an integer")))
		return math.MaxInt32, false
	}
	return i, true
}

// Bool returns the attribute name parsed as an XML Schema boolean.
func (a *Attributes) Bool(name string, required bool) (bool, bool) {
	v, ok := a.String(name, required)
	if !ok || v == "" {
		return false, false
	}
	switch strings.TrimSpace(v) {
	case "true", "1":
		return true, true
	case "false", "0":
		return false, true
	}
	a.Add(sederr.BadAttributeValue(name, a.Element, sederr.WithMessage(strconv.Quote(v)+" is not a boolean")))
	return false, false
}

// Enum logs an invalid enumeration value for the attribute name. It is
// called by readers once a lexeme failed to match.
func (a *Attributes) Enum(name, value string) {
	a.Add(sederr.InvalidEnumValue(name, a.Element, sederr.WithMessage(strconv.Quote(value)+" is not a known value")))
}

// Unknown logs every attribute in no namespace that was never looked up.
func (a *Attributes) Unknown() {
	for i, attr := range a.attrs {
		if a.used[i] || attr.Name.Space != "" || xmlutil.IsDeclaration(attr) {
			continue
		}
		a.Add(sederr.UnknownAttribute(attr.Name.Local, a.Element))
	}
}

// ParseFloat parses an XML Schema double, which spells infinities INF and
// -INF and not-a-number NaN.
func ParseFloat(s string) (float64, error) {
	switch s = strings.TrimSpace(s); s {
	case "INF", "+INF":
		return math.Inf(1), nil
	case "-INF":
		return math.Inf(-1), nil
	case "NaN":
		return math.NaN(), nil
	}
	return strconv.ParseFloat(s, 64)
}

// FormatFloat formats f as an XML Schema double
func FormatFloat(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "INF"
	case math.IsInf(f, -1):
		return "-INF"
	case math.IsNaN(f):
		return "NaN"
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// AttrList builds the attributes of an element being written, in the
// order they are added.
type AttrList []xml.Attr

// String adds the attribute name with value v
func (l *AttrList) String(name, v string) {
	*l = append(*l, xml.Attr{Name: xml.Name{Local: name}, Value: v})
}

// Float adds the attribute name holding the double f
func (l *AttrList) Float(name string, f float64) { l.String(name, FormatFloat(f)) }

// Int adds the attribute name holding the integer i
func (l *AttrList) Int(name string, i int) { l.String(name, strconv.Itoa(i)) }

// Bool adds the attribute name holding the boolean b
func (l *AttrList) Bool(name string, b bool) { l.String(name, strconv.FormatBool(b)) }

// Attr add attributes verbatim
func (l *AttrList) Attr(attrs ...xml.Attr) { *l = append(*l, attrs...) }
