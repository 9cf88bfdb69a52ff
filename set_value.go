package sedml

import (
	"github.com/andaru/sedml/mathml"
	"github.com/andaru/sedml/stream"
)

// SetValue changes a model quantity before each repetition of a
// RepeatedTask, to the value of an expression.
type SetValue struct {
	Base
	modelReference string
	symbol         string
	target         string
	rangeID        string
	math           *mathml.AST
}

func NewSetValue(level, version int) *SetValue {
	s := &SetValue{}
	s.init(s, level, version)
	return s
}

func (s *SetValue) Clone() *SetValue {
	c := *s
	c.Base = s.Base.cloned(&c)
	c.math = s.math.Clone()
	return &c
}

func (s *SetValue) cloneElement() Element { return s.Clone() }
func (s *SetValue) ElementName() string   { return "setValue" }
func (s *SetValue) TypeCode() TypeCode    { return TypeSetValue }

func (s *SetValue) ModelReference() string             { return s.modelReference }
func (s *SetValue) IsSetModelReference() bool          { return s.modelReference != "" }
func (s *SetValue) SetModelReference(ref string) error { return setSId(&s.modelReference, ref) }
func (s *SetValue) UnsetModelReference()               { s.modelReference = "" }
func (s *SetValue) Symbol() string                     { return s.symbol }
func (s *SetValue) IsSetSymbol() bool                  { return s.symbol != "" }
func (s *SetValue) SetSymbol(symbol string)            { s.symbol = symbol }
func (s *SetValue) UnsetSymbol()                       { s.symbol = "" }
func (s *SetValue) Target() string                     { return s.target }
func (s *SetValue) IsSetTarget() bool                  { return s.target != "" }
func (s *SetValue) SetTarget(target string)            { s.target = target }
func (s *SetValue) UnsetTarget()                       { s.target = "" }

// Range returns the id of the range whose current value the expression
// may refer to
func (s *SetValue) Range() string            { return s.rangeID }
func (s *SetValue) IsSetRange() bool         { return s.rangeID != "" }
func (s *SetValue) SetRange(id string) error { return setSId(&s.rangeID, id) }
func (s *SetValue) UnsetRange()              { s.rangeID = "" }

func (s *SetValue) Math() *mathml.AST              { return s.math }
func (s *SetValue) IsSetMath() bool                { return s.math != nil }
func (s *SetValue) SetMath(math *mathml.AST) error { return setMath(&s.math, math) }
func (s *SetValue) UnsetMath()                     { s.math = nil }
func (s *SetValue) mathRef() **mathml.AST          { return &s.math }

func (s *SetValue) HasRequiredAttributes() bool { return s.IsSetModelReference() }
func (s *SetValue) HasRequiredElements() bool   { return s.IsSetMath() }

func (s *SetValue) renameRefs(oldID, newID string) {
	renameRef(&s.modelReference, oldID, newID)
	renameRef(&s.rangeID, oldID, newID)
	s.math.RenameSIdRefs(oldID, newID)
}

func (s *SetValue) readAttributes(a *stream.Attributes) {
	s.Base.readAttributes(a)
	s.modelReference, _ = a.SId("modelReference", true)
	s.symbol, _ = a.String("symbol", false)
	s.target, _ = a.String("target", false)
	s.rangeID, _ = a.SId("range", false)
}

func (s *SetValue) writeAttributes(a *stream.AttrList) {
	s.Base.writeAttributes(a)
	writeString(a, "modelReference", s.modelReference)
	writeString(a, "symbol", s.symbol)
	writeString(a, "target", s.target)
	writeString(a, "range", s.rangeID)
}

func (s *SetValue) writeElements(w *writer) { w.math(s.math) }
