package sederr

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"github.com/pkg/errors"
)

// Code identifies the kind of problem found while reading a document
type Code int

const (
	// CodeXMLSyntax is a well-formedness failure in the XML input
	CodeXMLSyntax Code = iota
	// CodeUnknownElement is an element not permitted at its position
	CodeUnknownElement
	// CodeUnknownAttribute is an attribute the element does not define
	CodeUnknownAttribute
	// CodeMissingAttribute is an absent required attribute
	CodeMissingAttribute
	// CodeEmptyAttribute is a present attribute with an empty value
	CodeEmptyAttribute
	// CodeBadAttributeValue is an attribute whose value does not parse
	// as the attribute's data type
	CodeBadAttributeValue
	// CodeInvalidIDSyntax is an id or id reference failing the SId grammar
	CodeInvalidIDSyntax
	// CodeInvalidEnumValue is an enumerated attribute with an unknown lexeme
	CodeInvalidEnumValue
	// CodeDuplicateID is an id used by more than one element of a document
	CodeDuplicateID
	// CodeInvalidMath is a <math> element which could not be read
	CodeInvalidMath
	// CodeMaxOccurs is a repeated single-valued child element
	CodeMaxOccurs
	// CodeInvalidNamespace is a root namespace that does not match a
	// known SED-ML level and version
	CodeInvalidNamespace
)

var codeText = [...]string{
	CodeXMLSyntax:         "xml-syntax",
	CodeUnknownElement:    "unknown-element",
	CodeUnknownAttribute:  "unknown-attribute",
	CodeMissingAttribute:  "missing-attribute",
	CodeEmptyAttribute:    "empty-attribute",
	CodeBadAttributeValue: "bad-attribute-value",
	CodeInvalidIDSyntax:   "invalid-id-syntax",
	CodeInvalidEnumValue:  "invalid-enum-value",
	CodeDuplicateID:       "duplicate-id",
	CodeInvalidMath:       "invalid-math",
	CodeMaxOccurs:         "max-occurs",
	CodeInvalidNamespace:  "invalid-namespace",
}

func (c Code) String() string {
	if c >= 0 && int(c) < len(codeText) {
		return codeText[c]
	}
	return fmt.Sprintf("Code(%d)", int(c))
}

func (c Code) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

func (c *Code) UnmarshalText(b []byte) error {
	b = bytes.TrimSpace(b)
	for i, text := range codeText {
		if text == string(b) {
			*c = Code(i)
			return nil
		}
	}
	return errors.New("unknown value")
}

// Severity grades a problem. Severities are ordered, SeverityInfo lowest.
type Severity int

const (
	// SeverityInfo is an informational note
	SeverityInfo Severity = iota
	// SeverityWarning is a problem that does not invalidate the document
	SeverityWarning
	// SeverityError is a schema violation
	SeverityError
	// SeverityFatal is a problem after which reading stopped
	SeverityFatal
)

func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityFatal:
		return "fatal"
	default:
		return fmt.Sprintf("Severity(%d)", int(s))
	}
}

func (s Severity) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *Severity) UnmarshalText(b []byte) error {
	b = bytes.TrimSpace(b)
	switch string(b) {
	case "info":
		*s = SeverityInfo
	case "warning":
		*s = SeverityWarning
	case "error":
		*s = SeverityError
	case "fatal":
		*s = SeverityFatal
	default:
		return errors.New("unknown value")
	}
	return nil
}

// Error is a problem found in a SED-ML document.
//
// Element and Attribute name the offending XML element and attribute, where
// known. Line and Column are 1-based input positions, or zero for problems
// not tied to the input (such as objects built in memory).
type Error struct {
	XMLName   xml.Name `xml:"problem" json:"-" yaml:"-"`
	Code      Code     `xml:"code,attr" json:"code" yaml:"code"`
	Severity  Severity `xml:"severity,attr" json:"severity" yaml:"severity"`
	Element   string   `xml:"element,attr,omitempty" json:"element,omitempty" yaml:"element,omitempty"`
	Attribute string   `xml:"attribute,attr,omitempty" json:"attribute,omitempty" yaml:"attribute,omitempty"`
	Line      int      `xml:"line,attr,omitempty" json:"line,omitempty" yaml:"line,omitempty"`
	Column    int      `xml:"column,attr,omitempty" json:"column,omitempty" yaml:"column,omitempty"`
	Message   string   `xml:",chardata" json:"message,omitempty" yaml:"message,omitempty"`
}

func (e Error) Error() string {
	s := fmt.Sprintf("%s %s", e.Severity, e.Code)
	if e.Element != "" {
		s += " element:" + e.Element
	}
	if e.Attribute != "" {
		s += " attribute:" + e.Attribute
	}
	if e.Line > 0 {
		s += fmt.Sprintf(" at %d:%d", e.Line, e.Column)
	}
	if e.Message != "" {
		s += " " + e.Message
	}
	return s
}

func newError(code Code, element, attribute string, opts []Option) *Error {
	e := &Error{Code: code, Severity: SeverityError, Element: element, Attribute: attribute}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// XMLSyntax reports input that is not well-formed XML. Reading stops
// after such a problem, hence the fatal severity.
func XMLSyntax(opts ...Option) *Error {
	e := newError(CodeXMLSyntax, "", "", opts)
	e.Severity = SeverityFatal
	return e
}

func UnknownElement(elementName string, opts ...Option) *Error {
	return newError(CodeUnknownElement, elementName, "", opts)
}

func UnknownAttribute(attributeName, elementName string, opts ...Option) *Error {
	return newError(CodeUnknownAttribute, elementName, attributeName, opts)
}

func MissingAttribute(attributeName, elementName string, opts ...Option) *Error {
	return newError(CodeMissingAttribute, elementName, attributeName, opts)
}

func EmptyAttribute(attributeName, elementName string, opts ...Option) *Error {
	return newError(CodeEmptyAttribute, elementName, attributeName, opts)
}

func BadAttributeValue(attributeName, elementName string, opts ...Option) *Error {
	return newError(CodeBadAttributeValue, elementName, attributeName, opts)
}

func InvalidIDSyntax(attributeName, elementName string, opts ...Option) *Error {
	return newError(CodeInvalidIDSyntax, elementName, attributeName, opts)
}

func InvalidEnumValue(attributeName, elementName string, opts ...Option) *Error {
	return newError(CodeInvalidEnumValue, elementName, attributeName, opts)
}

// DuplicateID reports an id already used elsewhere in the document.
func DuplicateID(id, elementName string, opts ...Option) *Error {
	e := newError(CodeDuplicateID, elementName, "id", opts)
	if e.Message == "" {
		e.Message = fmt.Sprintf("id %q is already in use", id)
	}
	return e
}

func InvalidMath(elementName string, opts ...Option) *Error {
	return newError(CodeInvalidMath, elementName, "", opts)
}

// MaxOccurs reports a child element seen more times than its parent permits.
func MaxOccurs(elementName, parentName string, max int, opts ...Option) *Error {
	e := newError(CodeMaxOccurs, elementName, "", opts)
	if e.Message == "" {
		e.Message = fmt.Sprintf("element <%s> may occur at most %d time(s) in <%s>", elementName, max, parentName)
	}
	return e
}

func InvalidNamespace(elementName, namespace string, opts ...Option) *Error {
	e := newError(CodeInvalidNamespace, elementName, "", opts)
	if e.Message == "" {
		e.Message = fmt.Sprintf("unrecognised namespace %q", namespace)
	}
	return e
}
