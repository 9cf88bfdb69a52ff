package xmlutil

import (
	"encoding/xml"
	"sort"
)

// PrefixMap is a prefix to namespace URI map. The empty prefix holds the
// default namespace.
type PrefixMap map[string]string

// NewPrefixMap returns a PrefixMap containing the namespace declarations
// found in the passed XML attributes, as produced by xml.Decoder: xmlns:p
// declarations carry the "xmlns" space, default declarations are named
// xmlns with no space.
func NewPrefixMap(attrs ...xml.Attr) PrefixMap {
	pmap := PrefixMap{}
	for _, attr := range attrs {
		switch {
		case attr.Name.Space == "xmlns":
			pmap[attr.Name.Local] = attr.Value
		case attr.Name.Space == "" && attr.Name.Local == "xmlns":
			pmap[""] = attr.Value
		}
	}
	return pmap
}

// IsDeclaration reports whether attr declares a namespace
func IsDeclaration(attr xml.Attr) bool {
	return attr.Name.Space == "xmlns" || (attr.Name.Space == "" && attr.Name.Local == "xmlns")
}

// Attr returns the prefix map contents as a series of xmlns:<prefix>=<nsuri>
// attributes, sorted lexically by prefix, the default namespace first.
//
// Attribute names are flattened into the local part (xmlns:p), the form
// xml.Encoder writes verbatim.
func (m PrefixMap) Attr() (a []xml.Attr) {
	for k, v := range m {
		a = append(a, xml.Attr{Name: xml.Name{Local: QName("xmlns", k)}, Value: v})
		if k == "" {
			a[len(a)-1].Name.Local = "xmlns"
		}
	}
	if len(a) > 0 {
		// sort lexically by prefix; "xmlns" sorts before any "xmlns:p"
		sort.Slice(a, func(i int, j int) bool { return a[i].Name.Local < a[j].Name.Local })
	}
	return a
}

// Namespace returns the namespace URI for the given prefix
func (m PrefixMap) Namespace(prefix string) string { return m[prefix] }

// Prefix returns any prefixes found for the namespace URI, sorted lexically
func (m PrefixMap) Prefix(nsURI string) (pfxes []string) {
	for k, v := range m {
		if nsURI == v {
			pfxes = append(pfxes, k)
		}
	}
	sort.Strings(pfxes)
	return pfxes
}

// Merge copies the bindings of other into m, replacing existing prefixes.
func (m PrefixMap) Merge(other PrefixMap) {
	for k, v := range other {
		m[k] = v
	}
}

// Clone returns a copy of m
func (m PrefixMap) Clone() PrefixMap {
	c := make(PrefixMap, len(m))
	c.Merge(m)
	return c
}
