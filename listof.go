package sedml

import (
	"encoding/xml"

	"github.com/andaru/sedml/sederr"
)

// factory constructs the list item for a child element name
type factory[T Element] func(name string, level, version int) (T, bool)

// only is the factory of a list holding one element kind
func only[T Element](elementName string, ctor func(level, version int) T) factory[T] {
	return func(name string, level, version int) (T, bool) {
		if name != elementName {
			var zero T
			return zero, false
		}
		return ctor(level, version), true
	}
}

// ListOf is an ordered container of child elements, owning its items.
//
// Items may be looked up by index or by id. Ids are compared by their
// exact string value and located by a linear scan.
type ListOf[T Element] struct {
	Base
	elementName string
	itemName    string
	factory     factory[T]
	items       []T
}

func newListOf[T Element](parent Element, elementName, itemName string, f factory[T]) *ListOf[T] {
	pb := parent.sedBase()
	l := &ListOf[T]{elementName: elementName, itemName: itemName, factory: f}
	l.init(l, pb.level, pb.version)
	l.parent = parent
	return l
}

// Clone returns a deep copy of l and its items
func (l *ListOf[T]) Clone() *ListOf[T] { return l.cloned(nil) }

func (l *ListOf[T]) cloned(parent Element) *ListOf[T] {
	c := *l
	c.Base = l.Base.cloned(&c)
	c.parent = parent
	c.items = make([]T, 0, len(l.items))
	for _, item := range l.items {
		c.own(item.cloneElement().(T))
	}
	return &c
}

func (l *ListOf[T]) cloneElement() Element { return l.Clone() }

func (l *ListOf[T]) ElementName() string { return l.elementName }
func (l *ListOf[T]) TypeCode() TypeCode  { return TypeListOf }

// ItemName returns the element name of the items Create makes, or an empty
// string for lists holding several element kinds.
func (l *ListOf[T]) ItemName() string { return l.itemName }

// Len returns the number of items
func (l *ListOf[T]) Len() int { return len(l.items) }

// Get returns the n'th item, or the zero T when n is out of range.
func (l *ListOf[T]) Get(n int) T {
	if n < 0 || n >= len(l.items) {
		var zero T
		return zero
	}
	return l.items[n]
}

// GetByID returns the first item with the given id, or the zero T.
func (l *ListOf[T]) GetByID(id string) T { return l.Get(l.index(id)) }

func (l *ListOf[T]) index(id string) int {
	if id == "" {
		return -1
	}
	for i, item := range l.items {
		if item.ID() == id {
			return i
		}
	}
	return -1
}

// Items returns the items in order. The slice is a copy, the items are not.
func (l *ListOf[T]) Items() []T { return append([]T(nil), l.items...) }

// Append adds a deep copy of item.
//
// It fails with InvalidAttributeValue for a nil item, InvalidObject for
// an item missing required attributes, LevelMismatch or VersionMismatch
// for an item of another schema version, and DuplicateObjectID when an
// item with the same id is present.
func (l *ListOf[T]) Append(item T) error {
	if err := l.check(item); err != nil {
		return err
	}
	l.own(item.cloneElement().(T))
	return nil
}

// AppendAndOwn adds item itself, making the list its owner. It makes the
// same checks as Append.
func (l *ListOf[T]) AppendAndOwn(item T) error {
	if err := l.check(item); err != nil {
		return err
	}
	if b := item.sedBase(); b.parent != nil {
		detach(b)
	}
	l.own(item)
	return nil
}

func (l *ListOf[T]) check(item T) error {
	switch {
	case isNil(item):
		return sederr.InvalidAttributeValue
	case !item.HasRequiredAttributes():
		return sederr.InvalidObject
	case item.Level() != l.level:
		return sederr.LevelMismatch
	case item.Version() != l.version:
		return sederr.VersionMismatch
	case item.IsSetID() && l.index(item.ID()) >= 0:
		return sederr.DuplicateObjectID
	}
	return nil
}

func (l *ListOf[T]) own(item T) {
	item.sedBase().parent = l
	l.items = append(l.items, item)
}

// Create appends a new default item and returns it. Lists holding several
// element kinds have no default and return the zero T; use the typed
// CreateX methods of the parent instead.
func (l *ListOf[T]) Create() T {
	item, ok := l.factory(l.itemName, l.level, l.version)
	if !ok || l.itemName == "" {
		var zero T
		return zero
	}
	l.own(item)
	return item
}

// Remove removes the n'th item and returns it, detached from the list.
// The zero T is returned when n is out of range.
func (l *ListOf[T]) Remove(n int) T {
	if n < 0 || n >= len(l.items) {
		var zero T
		return zero
	}
	item := l.items[n]
	l.items = append(l.items[:n], l.items[n+1:]...)
	item.sedBase().parent = nil
	return item
}

// RemoveByID removes the first item with the given id and returns it, or
// returns the zero T when no item has that id.
func (l *ListOf[T]) RemoveByID(id string) T { return l.Remove(l.index(id)) }

// Clear removes every item
func (l *ListOf[T]) Clear() {
	for _, item := range l.items {
		item.sedBase().parent = nil
	}
	l.items = nil
}

func (l *ListOf[T]) children() []Element {
	out := make([]Element, 0, len(l.items))
	for _, item := range l.items {
		out = append(out, item)
	}
	return out
}

func (l *ListOf[T]) readChild(r *reader, se xml.StartElement) (bool, error) {
	item, ok := l.factory(se.Name.Local, l.level, l.version)
	if !ok {
		return false, nil
	}
	l.own(item)
	return true, r.readElement(item, se)
}

func (l *ListOf[T]) writeElements(w *writer) {
	for _, item := range l.items {
		w.element(item)
	}
}

// remover is implemented by lists, letting an item be detached from
// whichever list holds it
type remover interface {
	removeItem(e Element)
}

func (l *ListOf[T]) removeItem(e Element) {
	for i, item := range l.items {
		if Element(item) == e {
			l.Remove(i)
			return
		}
	}
}

// detach removes an element from its current parent list
func detach(b *Base) {
	if r, ok := b.parent.(remover); ok {
		r.removeItem(b.self)
	}
	b.parent = nil
}

// create adds item to l and returns it with its concrete type
func create[T Element, E Element](l *ListOf[T], item E) E {
	l.own(any(item).(T))
	return item
}
