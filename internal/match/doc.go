// Package match provides fuzzy matching of key names.
//
// Key functions:
//   - NormalizeKeyName: normalizes key names for comparison
//   - Levenshtein: computes edit distance between strings
//   - Suggest: ranks known names that are close to an unknown one
package match
