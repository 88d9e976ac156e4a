// Package gen writes resolved locale plans as C headers for ZMK.
//
// Generation uses text/template. Output is deterministic for a given plan
// and year: one file per locale, named keys_<locale>.h, with one #define per
// constant and one per alias:
//
//	#define DE_Z (ZMK_HID_USAGE(0x07, 0x1C))
//
//	#define DE_EURO (RA(ZMK_HID_USAGE(0x07, 0x08)))
//	#define DE_EURO_SIGN (DE_EURO)
package gen
