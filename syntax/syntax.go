// Package syntax checks the identifier grammars used by SED-ML attributes.
package syntax

import "unicode"

// IsValidSId reports whether s matches the SId grammar:
//
//	letter ::= 'a'..'z' | 'A'..'Z'
//	digit  ::= '0'..'9'
//	idChar ::= letter | digit | '_'
//	SId    ::= ( letter | '_' ) idChar*
//
// The empty string is not a valid SId.
func IsValidSId(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '_', 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z':
		case '0' <= c && c <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// IsValidUnitSId reports whether s is a valid unit identifier. Unit
// identifiers share the SId grammar.
func IsValidUnitSId(s string) bool { return IsValidSId(s) }

// IsValidXMLID reports whether s is a valid XML ID (an NCName), the type
// of the metaid attribute.
func IsValidXMLID(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if i == 0 {
			if !isNameStart(r) {
				return false
			}
			continue
		}
		if !isNameStart(r) && !isNameChar(r) {
			return false
		}
	}
	return true
}

func isNameStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isNameChar(r rune) bool {
	switch {
	case r == '.', r == '-':
		return true
	case unicode.IsDigit(r), unicode.Is(unicode.Mn, r), unicode.Is(unicode.Mc, r),
		unicode.Is(unicode.Lm, r), r == 0xB7:
		return true
	}
	return false
}
