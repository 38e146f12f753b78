package typeinfo

import (
	"strings"
	"unicode"
)

// LowerCamel converts a Go identifier to lowerCamelCase.
// Leading acronyms are lowered as a whole (ID -> id, URLPath -> urlPath).
func LowerCamel(s string) string {
	runes := []rune(s)
	upper := 0
	for upper < len(runes) && unicode.IsUpper(runes[upper]) {
		upper++
	}
	switch {
	case upper == 0:
		return s
	case upper == 1, upper == len(runes):
		// Single leading capital or the whole identifier is an acronym.
	default:
		// The last capital of an acronym starts the next word, unless it's followed by a digit.
		if unicode.IsLower(runes[upper]) {
			upper--
		}
	}
	var result strings.Builder
	result.Grow(len(s))
	for i, r := range runes {
		if i < upper {
			r = unicode.ToLower(r)
		}
		result.WriteRune(r)
	}
	return result.String()
}
