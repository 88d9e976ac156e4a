// Package keys provides the key table used to turn layout key names into
// HID usages.
//
// A table maps each key name either to a usage or to an alias naming another
// key. Aliases may chain; Resolve follows them and reports missing names and
// cycles as errors. Table order is the order of definition, which keeps any
// output derived from it (such as alias lists) reproducible.
//
// # Sources
//
// Tables are loaded from YAML:
//
//	keys:
//	  A: {page: 0x07, id: 0x04}
//	  NUMBER_1: {page: 0x07, id: 0x1E}
//	  N1: NUMBER_1              # alias
//	  EXCL: {page: 0x07, id: 0x1E, modifiers: [LSHIFT]}
//	  EURO_SIGN: {alias: EURO}
//
// or from ZMK C headers, which use #define lines:
//
//	#define HID_USAGE_KEY 0x07
//	#define HID_USAGE_KEY_KEYBOARD_A 0x04
//	#define A (ZMK_HID_USAGE(HID_USAGE_KEY, HID_USAGE_KEY_KEYBOARD_A))
//	#define ESC (ESCAPE)
package keys
