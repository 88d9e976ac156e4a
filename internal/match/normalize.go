package match

import (
	"strings"
	"unicode"
)

// NormalizeKeyName normalizes a key name for fuzzy matching: it upper-cases
// the name and strips separators, so "number-1", "Number_1" and "NUMBER1"
// all compare equal.
func NormalizeKeyName(s string) string {
	var b strings.Builder

	b.Grow(len(s))

	for _, r := range s {
		if isSeparator(r) {
			continue
		}

		b.WriteRune(unicode.ToUpper(r))
	}

	return b.String()
}

// isSeparator returns true if the rune is a common separator.
func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' '
}
