// Package plan turns a locale layout into the list of constants written to
// its header.
//
// The pipeline is:
//
//  1. RawDefinitions resolves every (key, character) pair of every keymap
//     to a (usage, character) definition, folding in keymap modifiers.
//  2. DedupeSameUsage keeps the first definition for each usage.
//  3. DedupeUppercase drops shifted definitions of a character whose
//     unshifted key already produces it under the firmware's implicit
//     shift-to-uppercase behavior.
//  4. DedupeSameChar keeps one usage per character, preferring the fewest
//     modifiers.
//  5. SortByChar orders the result case-insensitively.
//  6. Each definition is named from the codepoint table, with key table
//     aliases appended as extra names.
//
// Each step is a pure function; their order matters and they are kept
// separate.
package plan
