package plan

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"

	"zmk-locale-generator/internal/common"
	"zmk-locale-generator/internal/hid"
)

// Reduce runs all deduplication passes in order and sorts the result.
func Reduce(defs []Definition) []Definition {
	defs = DedupeSameUsage(defs)
	defs = DedupeUppercase(defs)
	defs = DedupeSameChar(defs)
	SortByChar(defs)

	return defs
}

// DedupeSameUsage keeps only the first definition for each usage.
func DedupeSameUsage(defs []Definition) []Definition {
	return common.UniqueBy(defs, func(d Definition) hid.Usage { return d.Usage })
}

// DedupeUppercase removes shifted definitions that repeat an unmodified
// definition of the same key.
//
// A modified definition a is dropped when a holds a shift modifier and some
// unmodified definition b has the same usage once shift is removed from a,
// and the two characters are equal under Unicode case folding. Unmodified
// definitions are always kept. The result lists unmodified definitions
// first, then the surviving modified ones.
func DedupeUppercase(defs []Definition) []Definition {
	var base, modified []Definition

	for _, d := range defs {
		if d.Usage.Modifiers.IsEmpty() {
			base = append(base, d)
		} else {
			modified = append(modified, d)
		}
	}

	baseFolded := make(map[hid.Usage][]string, len(base))
	for _, b := range base {
		baseFolded[b.Usage] = append(baseFolded[b.Usage], caseFold(b.Char))
	}

	isDuplicateUppercase := func(a Definition) bool {
		if !a.Usage.Modifiers.HasShift() {
			return false
		}

		unshifted := a.Usage.Base().WithModifiers(a.Usage.Modifiers.WithoutShift())

		return slices.Contains(baseFolded[unshifted], caseFold(a.Char))
	}

	out := make([]Definition, 0, len(defs))
	out = append(out, base...)

	for _, d := range modified {
		if !isDuplicateUppercase(d) {
			out = append(out, d)
		}
	}

	return out
}

// DedupeSameChar keeps one definition per character: the one whose usage
// has the fewest modifiers. Ties go to the numerically smallest modifier
// set, then to the first definition seen. Characters keep the order of
// their first appearance.
func DedupeSameChar(defs []Definition) []Definition {
	best := make(map[string]int, len(defs))

	var order []string

	for i, d := range defs {
		j, seen := best[d.Char]
		if !seen {
			best[d.Char] = i
			order = append(order, d.Char)

			continue
		}

		if fewerModifiers(d.Usage.Modifiers, defs[j].Usage.Modifiers) {
			best[d.Char] = i
		}
	}

	out := make([]Definition, 0, len(order))
	for _, char := range order {
		out = append(out, defs[best[char]])
	}

	return out
}

func fewerModifiers(a, b hid.Modifiers) bool {
	if a.Len() != b.Len() {
		return a.Len() < b.Len()
	}

	return a < b
}

// SortByChar sorts definitions in place by lower-cased character. Characters
// that compare equal keep their relative order.
func SortByChar(defs []Definition) {
	slices.SortStableFunc(defs, func(a, b Definition) int {
		return strings.Compare(strings.ToLower(a.Char), strings.ToLower(b.Char))
	})
}

// caseFold applies Unicode case folding. Casers may keep state, so a new one
// is created per call.
func caseFold(s string) string {
	return cases.Fold().String(s)
}
