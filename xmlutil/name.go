package xmlutil

import "encoding/xml"

// XMLName returns the xml.Name of local, in the first of spaces if one is
// given. Writers pass qualified names such as "sbml:units" as local alone.
func XMLName(local string, spaces ...string) xml.Name {
	n := xml.Name{Local: local}
	if len(spaces) > 0 {
		n.Space = spaces[0]
	}
	return n
}

// QName returns the qualified name prefix:local, or local alone when the
// prefix is empty.
func QName(prefix, local string) string {
	if prefix == "" {
		return local
	}
	return prefix + ":" + local
}
