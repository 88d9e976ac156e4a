package hid

import (
	"fmt"
	"math/bits"
	"strings"
)

//go:generate go tool stringer -type=Modifier -trimprefix=Mod -output=modifier_string.go

// Modifier is a single bit of the HID keyboard modifier byte.
type Modifier uint8

const (
	ModLCtrl  Modifier = 0x01
	ModLShift Modifier = 0x02
	ModLAlt   Modifier = 0x04
	ModLGui   Modifier = 0x08
	ModRCtrl  Modifier = 0x10
	ModRShift Modifier = 0x20
	ModRAlt   Modifier = 0x40
	ModRGui   Modifier = 0x80
)

// AllModifiers lists every modifier in ascending bit order.
var AllModifiers = []Modifier{
	ModLCtrl, ModLShift, ModLAlt, ModLGui,
	ModRCtrl, ModRShift, ModRAlt, ModRGui,
}

var modifierMacros = map[Modifier]string{
	ModLCtrl:  "LC",
	ModLShift: "LS",
	ModLAlt:   "LA",
	ModLGui:   "LG",
	ModRCtrl:  "RC",
	ModRShift: "RS",
	ModRAlt:   "RA",
	ModRGui:   "RG",
}

// modifierAliases maps the spellings used by ZMK headers and layout files.
var modifierAliases = map[string]Modifier{
	"LCTRL": ModLCtrl, "LCTL": ModLCtrl, "LC": ModLCtrl, "LEFT_CONTROL": ModLCtrl,
	"LSHIFT": ModLShift, "LSHFT": ModLShift, "LS": ModLShift, "LEFT_SHIFT": ModLShift,
	"LALT": ModLAlt, "LA": ModLAlt, "LEFT_ALT": ModLAlt,
	"LGUI": ModLGui, "LG": ModLGui, "LMETA": ModLGui, "LWIN": ModLGui, "LCMD": ModLGui, "LEFT_GUI": ModLGui,
	"RCTRL": ModRCtrl, "RCTL": ModRCtrl, "RC": ModRCtrl, "RIGHT_CONTROL": ModRCtrl,
	"RSHIFT": ModRShift, "RSHFT": ModRShift, "RS": ModRShift, "RIGHT_SHIFT": ModRShift,
	"RALT": ModRAlt, "RA": ModRAlt, "ALTGR": ModRAlt, "RIGHT_ALT": ModRAlt,
	"RGUI": ModRGui, "RG": ModRGui, "RMETA": ModRGui, "RWIN": ModRGui, "RCMD": ModRGui, "RIGHT_GUI": ModRGui,
}

// Macro returns the ZMK modifier function name (e.g. "LS") for m.
func (m Modifier) Macro() string {
	return modifierMacros[m]
}

// ParseModifier parses a modifier name. Matching is case-insensitive.
func ParseModifier(name string) (Modifier, error) {
	m, ok := modifierAliases[strings.ToUpper(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("unknown modifier %q", name)
	}

	return m, nil
}

// ModifierForMacro returns the modifier wrapped by a ZMK modifier macro name.
func ModifierForMacro(macro string) (Modifier, bool) {
	for m, name := range modifierMacros {
		if name == macro {
			return m, true
		}
	}

	return 0, false
}

// Modifiers is an unordered set of modifiers stored as the HID modifier byte.
type Modifiers uint8

// NoModifiers is the empty set.
const NoModifiers Modifiers = 0

const shiftMask = Modifiers(ModLShift) | Modifiers(ModRShift)

// NewModifiers builds a set from the given modifiers. Duplicates collapse.
func NewModifiers(mods ...Modifier) Modifiers {
	var s Modifiers
	for _, m := range mods {
		s |= Modifiers(m)
	}

	return s
}

// ParseModifiers parses a list of modifier names into a set.
func ParseModifiers(names []string) (Modifiers, error) {
	var s Modifiers

	for _, name := range names {
		m, err := ParseModifier(name)
		if err != nil {
			return 0, err
		}

		s |= Modifiers(m)
	}

	return s, nil
}

// Has reports whether m is in the set.
func (s Modifiers) Has(m Modifier) bool {
	return s&Modifiers(m) != 0
}

// Union returns the set of modifiers in s or o.
func (s Modifiers) Union(o Modifiers) Modifiers {
	return s | o
}

// Without returns s with every modifier of o removed.
func (s Modifiers) Without(o Modifiers) Modifiers {
	return s &^ o
}

// Len returns the number of modifiers in the set.
func (s Modifiers) Len() int {
	return bits.OnesCount8(uint8(s))
}

// IsEmpty reports whether the set has no modifiers.
func (s Modifiers) IsEmpty() bool {
	return s == 0
}

// HasShift reports whether either shift modifier is in the set.
func (s Modifiers) HasShift() bool {
	return s&shiftMask != 0
}

// WithoutShift returns s with both shift modifiers removed.
func (s Modifiers) WithoutShift() Modifiers {
	return s.Without(shiftMask)
}

// List returns the modifiers in ascending bit order.
func (s Modifiers) List() []Modifier {
	var out []Modifier

	for _, m := range AllModifiers {
		if s.Has(m) {
			out = append(out, m)
		}
	}

	return out
}

// String returns the modifiers joined with "+", or "none" for the empty set.
func (s Modifiers) String() string {
	if s == 0 {
		return "none"
	}

	names := make([]string, 0, s.Len())
	for _, m := range s.List() {
		names = append(names, m.String())
	}

	return strings.Join(names, "+")
}
