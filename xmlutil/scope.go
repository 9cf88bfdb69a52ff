package xmlutil

import "encoding/xml"

// xmlURL is the namespace bound to the reserved xml prefix
const xmlURL = "http://www.w3.org/XML/1998/namespace"

// Scope is the stack of namespace declarations in effect while walking an
// XML token stream. Push on each start element and Pop on each end element.
type Scope struct {
	maps []PrefixMap
}

// Push enters an element whose attributes are attrs.
func (s *Scope) Push(attrs []xml.Attr) { s.maps = append(s.maps, NewPrefixMap(attrs...)) }

// PushMap enters a scope with the bindings of m.
func (s *Scope) PushMap(m PrefixMap) { s.maps = append(s.maps, m) }

// Pop leaves the innermost element. Pop on an empty scope is a no-op.
func (s *Scope) Pop() {
	if len(s.maps) > 0 {
		s.maps = s.maps[:len(s.maps)-1]
	}
}

// Depth returns the number of pushed scopes
func (s *Scope) Depth() int { return len(s.maps) }

// Namespace resolves prefix to its innermost binding.
func (s *Scope) Namespace(prefix string) (string, bool) {
	if prefix == "xml" {
		return xmlURL, true
	}
	for i := len(s.maps) - 1; i >= 0; i-- {
		if uri, ok := s.maps[i][prefix]; ok {
			return uri, true
		}
	}
	return "", false
}

// Prefix returns a prefix bound to nsURI which is not shadowed by an inner
// declaration. The default namespace is preferred, reported as "".
func (s *Scope) Prefix(nsURI string) (string, bool) { return s.prefix(nsURI, true) }

// AttrPrefix is like Prefix but never returns the default namespace, which
// does not apply to attribute names.
func (s *Scope) AttrPrefix(nsURI string) (string, bool) { return s.prefix(nsURI, false) }

func (s *Scope) prefix(nsURI string, allowDefault bool) (string, bool) {
	if nsURI == xmlURL {
		return "xml", true
	}
	for i := len(s.maps) - 1; i >= 0; i-- {
		for _, pfx := range s.maps[i].Prefix(nsURI) {
			if pfx == "" && !allowDefault {
				continue
			}
			if uri, _ := s.Namespace(pfx); uri == nsURI {
				return pfx, true
			}
		}
	}
	return "", false
}

// Flatten returns every binding in effect, inner declarations winning.
func (s *Scope) Flatten() PrefixMap {
	m := PrefixMap{}
	for _, pm := range s.maps {
		m.Merge(pm)
	}
	return m
}

// Clone returns an independent copy of s
func (s *Scope) Clone() *Scope {
	c := &Scope{maps: make([]PrefixMap, len(s.maps))}
	for i, m := range s.maps {
		c.maps[i] = m.Clone()
	}
	return c
}
