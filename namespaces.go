package sedml

import (
	"github.com/andaru/sedml/sederr"
	"github.com/andaru/sedml/xmlutil"
)

// SED-ML namespace URIs, by level and version
const (
	NamespaceL1V1 = "http://sed-ml.org/"
	NamespaceL1V2 = "http://sed-ml.org/sed-ml/level1/version2"
	NamespaceL1V3 = "http://sed-ml.org/sed-ml/level1/version3"
	NamespaceL1V4 = "http://sed-ml.org/sed-ml/level1/version4"
)

// The schema version of new documents
const (
	DefaultLevel   = 1
	DefaultVersion = 4
)

var namespaceURIs = map[[2]int]string{
	{1, 1}: NamespaceL1V1,
	{1, 2}: NamespaceL1V2,
	{1, 3}: NamespaceL1V3,
	{1, 4}: NamespaceL1V4,
}

// NamespaceURI returns the namespace of a SED-ML level and version, or an
// empty string for an unknown pair.
func NamespaceURI(level, version int) string { return namespaceURIs[[2]int{level, version}] }

// LevelVersion returns the SED-ML level and version of a namespace URI
func LevelVersion(uri string) (level, version int, ok bool) {
	for lv, u := range namespaceURIs {
		if u == uri {
			return lv[0], lv[1], true
		}
	}
	return 0, 0, false
}

// Namespaces is the schema version of a document together with the
// namespace prefixes declared on its root element.
type Namespaces struct {
	level    int
	version  int
	prefixes xmlutil.PrefixMap
}

// NewNamespaces returns the namespaces of a SED-ML level and version
func NewNamespaces(level, version int) *Namespaces {
	return &Namespaces{level: level, version: version, prefixes: xmlutil.PrefixMap{}}
}

func (n *Namespaces) Level() int   { return n.level }
func (n *Namespaces) Version() int { return n.version }

// URI returns the SED-ML namespace URI
func (n *Namespaces) URI() string { return NamespaceURI(n.level, n.version) }

// Add declares prefix for uri, replacing any declaration of prefix. The
// default namespace is always the SED-ML namespace, so prefix must not
// be empty.
func (n *Namespaces) Add(prefix, uri string) error {
	if prefix == "" || prefix == "xmlns" || prefix == "xml" || uri == "" {
		return sederr.InvalidAttributeValue
	}
	n.prefixes[prefix] = uri
	return nil
}

// Remove removes the declaration of prefix
func (n *Namespaces) Remove(prefix string) { delete(n.prefixes, prefix) }

// Namespace returns the URI bound to prefix
func (n *Namespaces) Namespace(prefix string) string { return n.prefixes.Namespace(prefix) }

// Prefixes returns a copy of the prefix declarations
func (n *Namespaces) Prefixes() xmlutil.PrefixMap { return n.prefixes.Clone() }

// Len returns the number of prefix declarations
func (n *Namespaces) Len() int { return len(n.prefixes) }

// Clone returns a copy of n
func (n *Namespaces) Clone() *Namespaces {
	return &Namespaces{level: n.level, version: n.version, prefixes: n.prefixes.Clone()}
}

// bindings returns every declaration of a document root, the SED-ML
// namespace as the default
func (n *Namespaces) bindings() xmlutil.PrefixMap {
	m := n.prefixes.Clone()
	m[""] = n.URI()
	return m
}
