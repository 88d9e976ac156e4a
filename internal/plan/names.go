package plan

import (
	"fmt"
	"strings"

	"zmk-locale-generator/internal/codepoints"
	"zmk-locale-generator/internal/common"
	"zmk-locale-generator/internal/keys"
)

// NameResolver builds constant names for characters.
type NameResolver struct {
	keys       *keys.Table
	codepoints *codepoints.Table
}

// NewNameResolver creates a NameResolver.
func NewNameResolver(table *keys.Table, names *codepoints.Table) *NameResolver {
	return &NameResolver{keys: table, codepoints: names}
}

// Names returns the constant names for char, prefixed with the upper-cased
// locale. The first name is the primary one. Key table aliases of the
// codepoint names follow the codepoint names. ok is false when the
// character has no codepoint name.
func (r *NameResolver) Names(locale, char string) (names []string, ok bool) {
	fragments, ok := r.codepoints.Names(char)
	if !ok {
		return nil, false
	}

	fragments = append(fragments, r.keys.AliasesOf(fragments)...)
	fragments = common.UniqueBy(fragments, func(s string) string { return s })

	prefix := Prefix(locale)

	names = make([]string, len(fragments))
	for i, f := range fragments {
		names[i] = prefix + f
	}

	return names, true
}

// Prefix returns the constant name prefix for a locale, e.g. "DE_".
func Prefix(locale string) string {
	return strings.ToUpper(locale) + "_"
}

// CodePoints formats the code points of s as "U+0041", space separated.
func CodePoints(s string) string {
	parts := make([]string, 0, len(s))
	for _, r := range s {
		parts = append(parts, fmt.Sprintf("U+%04X", r))
	}

	return strings.Join(parts, " ")
}
