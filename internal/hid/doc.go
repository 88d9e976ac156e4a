// Package hid models HID key usages the way ZMK firmware addresses them:
// a usage page, a usage id and the set of modifiers that must be held.
//
// Usages are plain comparable values. Two usages are equal when page, id and
// modifiers are all equal, so they can be used directly as map keys.
//
// # Rendering
//
// Usage.String renders the firmware expression used in generated headers:
//
//	ZMK_HID_USAGE(0x07, 0x04)          // A
//	LS(ZMK_HID_USAGE(0x07, 0x04))      // shift + A
//	LC(RA(ZMK_HID_USAGE(0x07, 0x1F)))  // ctrl + right alt + 2
//
// Modifier macros wrap the call outermost-first in ascending bit order.
package hid
