package sedml

import (
	"encoding/xml"

	"github.com/andaru/sedml/mathml"
	"github.com/andaru/sedml/sederr"
	"github.com/andaru/sedml/stream"
	"github.com/andaru/sedml/xmltree"
)

// Change is a modification of a model, applied to the part of the model
// selected by the XPath expression Target.
type Change interface {
	Element
	Target() string
	IsSetTarget() bool
	SetTarget(target string)
	UnsetTarget()
}

func changeFactory(name string, level, version int) (Change, bool) {
	switch name {
	case "addXML":
		return NewAddXML(level, version), true
	case "changeXML":
		return NewChangeXML(level, version), true
	case "removeXML":
		return NewRemoveXML(level, version), true
	case "changeAttribute":
		return NewChangeAttribute(level, version), true
	case "computeChange":
		return NewComputeChange(level, version), true
	}
	return nil, false
}

type changeBase struct {
	Base
	target string
}

func (c *changeBase) Target() string          { return c.target }
func (c *changeBase) IsSetTarget() bool       { return c.target != "" }
func (c *changeBase) SetTarget(target string) { c.target = target }
func (c *changeBase) UnsetTarget()            { c.target = "" }

func (c *changeBase) HasRequiredAttributes() bool { return c.IsSetTarget() }

func (c *changeBase) readAttributes(a *stream.Attributes) {
	c.Base.readAttributes(a)
	c.target, _ = a.String("target", true)
}

func (c *changeBase) writeAttributes(a *stream.AttrList) {
	c.Base.writeAttributes(a)
	writeString(a, "target", c.target)
}

// xmlChange is a change carrying new XML content
type xmlChange struct {
	changeBase
	newXML *xmltree.Tree
}

// NewXML returns the <newXML> element, or nil
func (c *xmlChange) NewXML() *xmltree.Tree { return c.newXML }
func (c *xmlChange) IsSetNewXML() bool     { return c.newXML != nil }

// SetNewXML stores a copy of t, wrapped in a <newXML> element as needed.
// A nil t unsets the content.
func (c *xmlChange) SetNewXML(t *xmltree.Tree) error {
	if t == nil {
		c.newXML = nil
		return nil
	}
	return c.SetNewXMLString(t.String())
}

// SetNewXMLString parses s as new XML content
func (c *xmlChange) SetNewXMLString(s string) error {
	t, err := wrapTree("newXML", c.namespaceURI(), s)
	if err != nil {
		return err
	}
	c.newXML = t
	return nil
}

func (c *xmlChange) UnsetNewXML() { c.newXML = nil }

func (c *xmlChange) HasRequiredElements() bool { return c.IsSetNewXML() }

func (c *xmlChange) readChild(r *reader, se xml.StartElement) (bool, error) {
	if se.Name.Local == "newXML" {
		return true, r.readTree(c.self, &c.newXML, se)
	}
	return false, nil
}

func (c *xmlChange) writeElements(w *writer) { w.tree(c.newXML) }

// AddXML inserts new XML as children of the target
type AddXML struct {
	xmlChange
}

func NewAddXML(level, version int) *AddXML {
	c := &AddXML{}
	c.init(c, level, version)
	return c
}

func (c *AddXML) Clone() *AddXML {
	x := *c
	x.Base = c.Base.cloned(&x)
	x.newXML = c.newXML.Clone()
	return &x
}

func (c *AddXML) cloneElement() Element { return c.Clone() }
func (c *AddXML) ElementName() string   { return "addXML" }
func (c *AddXML) TypeCode() TypeCode    { return TypeAddXML }

// ChangeXML replaces the target with new XML
type ChangeXML struct {
	xmlChange
}

func NewChangeXML(level, version int) *ChangeXML {
	c := &ChangeXML{}
	c.init(c, level, version)
	return c
}

func (c *ChangeXML) Clone() *ChangeXML {
	x := *c
	x.Base = c.Base.cloned(&x)
	x.newXML = c.newXML.Clone()
	return &x
}

func (c *ChangeXML) cloneElement() Element { return c.Clone() }
func (c *ChangeXML) ElementName() string   { return "changeXML" }
func (c *ChangeXML) TypeCode() TypeCode    { return TypeChangeXML }

// RemoveXML removes the target from the model
type RemoveXML struct {
	changeBase
}

func NewRemoveXML(level, version int) *RemoveXML {
	c := &RemoveXML{}
	c.init(c, level, version)
	return c
}

func (c *RemoveXML) Clone() *RemoveXML {
	x := *c
	x.Base = c.Base.cloned(&x)
	return &x
}

func (c *RemoveXML) cloneElement() Element { return c.Clone() }
func (c *RemoveXML) ElementName() string   { return "removeXML" }
func (c *RemoveXML) TypeCode() TypeCode    { return TypeRemoveXML }

// ChangeAttribute sets the value of the target attribute
type ChangeAttribute struct {
	changeBase
	newValue string
}

func NewChangeAttribute(level, version int) *ChangeAttribute {
	c := &ChangeAttribute{}
	c.init(c, level, version)
	return c
}

func (c *ChangeAttribute) Clone() *ChangeAttribute {
	x := *c
	x.Base = c.Base.cloned(&x)
	return &x
}

func (c *ChangeAttribute) cloneElement() Element { return c.Clone() }
func (c *ChangeAttribute) ElementName() string   { return "changeAttribute" }
func (c *ChangeAttribute) TypeCode() TypeCode    { return TypeChangeAttribute }

func (c *ChangeAttribute) NewValue() string     { return c.newValue }
func (c *ChangeAttribute) IsSetNewValue() bool  { return c.newValue != "" }
func (c *ChangeAttribute) SetNewValue(v string) { c.newValue = v }
func (c *ChangeAttribute) UnsetNewValue()       { c.newValue = "" }

func (c *ChangeAttribute) HasRequiredAttributes() bool {
	return c.changeBase.HasRequiredAttributes() && c.IsSetNewValue()
}

func (c *ChangeAttribute) readAttributes(a *stream.Attributes) {
	c.changeBase.readAttributes(a)
	c.newValue, _ = a.String("newValue", true)
}

func (c *ChangeAttribute) writeAttributes(a *stream.AttrList) {
	c.changeBase.writeAttributes(a)
	writeString(a, "newValue", c.newValue)
}

// ComputeChange sets the target to the value of a mathematical
// expression over variables and parameters.
type ComputeChange struct {
	changeBase
	math       *mathml.AST
	variables  *ListOf[AnyVariable]
	parameters *ListOf[*Parameter]
}

func NewComputeChange(level, version int) *ComputeChange {
	c := &ComputeChange{}
	c.init(c, level, version)
	c.variables = newVariableList(c)
	c.parameters = newParameterList(c)
	return c
}

func (c *ComputeChange) Clone() *ComputeChange {
	x := *c
	x.Base = c.Base.cloned(&x)
	x.math = c.math.Clone()
	x.variables = c.variables.cloned(&x)
	x.parameters = c.parameters.cloned(&x)
	return &x
}

func (c *ComputeChange) cloneElement() Element { return c.Clone() }
func (c *ComputeChange) ElementName() string   { return "computeChange" }
func (c *ComputeChange) TypeCode() TypeCode    { return TypeComputeChange }

func (c *ComputeChange) Math() *mathml.AST              { return c.math }
func (c *ComputeChange) IsSetMath() bool                { return c.math != nil }
func (c *ComputeChange) SetMath(math *mathml.AST) error { return setMath(&c.math, math) }
func (c *ComputeChange) UnsetMath()                     { c.math = nil }
func (c *ComputeChange) mathRef() **mathml.AST          { return &c.math }

func (c *ComputeChange) Variables() *ListOf[AnyVariable] { return c.variables }
func (c *ComputeChange) Parameters() *ListOf[*Parameter] { return c.parameters }
func (c *ComputeChange) CreateVariable() *Variable {
	return create(c.variables, NewVariable(c.level, c.version))
}
func (c *ComputeChange) CreateDependentVariable() *DependentVariable {
	return create(c.variables, NewDependentVariable(c.level, c.version))
}
func (c *ComputeChange) CreateParameter() *Parameter { return c.parameters.Create() }

func (c *ComputeChange) HasRequiredElements() bool { return c.IsSetMath() }

func (c *ComputeChange) children() []Element { return []Element{c.variables, c.parameters} }

func (c *ComputeChange) renameRefs(oldID, newID string) { c.math.RenameSIdRefs(oldID, newID) }

func (c *ComputeChange) readChild(r *reader, se xml.StartElement) (bool, error) {
	switch se.Name.Local {
	case "listOfVariables":
		return true, r.readElement(c.variables, se)
	case "listOfParameters":
		return true, r.readElement(c.parameters, se)
	}
	return false, nil
}

func (c *ComputeChange) writeElements(w *writer) {
	writeList(w, c.variables)
	writeList(w, c.parameters)
	w.math(c.math)
}

// setMath stores a copy of math in slot. A nil math unsets the slot;
// an expression which is not well-formed is rejected.
func setMath(slot **mathml.AST, math *mathml.AST) error {
	switch {
	case math == nil:
		*slot = nil
	case *slot == math:
	case !math.IsWellFormed():
		return sederr.InvalidObject
	default:
		*slot = math.Clone()
	}
	return nil
}
