// Package layout holds per-locale keyboard layouts: ordered keymaps that
// map key names to the characters they produce.
package layout

import (
	"strings"

	"zmk-locale-generator/internal/hid"
)

// Layout is one keyboard arrangement for a locale.
type Layout struct {
	// Names are human readable names of the layout, e.g. "German".
	Names []string
	// Keymaps are the layers of the layout in definition order.
	Keymaps []Keymap
}

// Keymap is a layer of a layout. Every key in it requires Modifiers to be
// held in addition to the key's own usage.
type Keymap struct {
	Modifiers hid.Modifiers
	Keys      []KeyChar
}

// KeyChar pairs a key name with the character it produces.
type KeyChar struct {
	Key  string
	Char string
}

// ZMKName converts a layout key name to the name used in the key table.
func ZMKName(key string) string {
	return strings.ToUpper(strings.TrimSpace(key))
}
