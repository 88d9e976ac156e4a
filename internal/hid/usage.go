package hid

import (
	"fmt"
	"strings"
)

// PageKeyboard is the HID Keyboard/Keypad usage page.
const PageKeyboard = 0x07

// Usage identifies a key press: a usage page and id plus the modifiers that
// must be held with it.
type Usage struct {
	Modifiers Modifiers
	Page      uint16
	ID        uint16
}

// NewUsage returns an unmodified usage.
func NewUsage(page, id uint16) Usage {
	return Usage{Page: page, ID: id}
}

// WithModifiers returns a copy of u whose modifier set is the union of u's
// modifiers and mods. Page and id are unchanged.
func (u Usage) WithModifiers(mods Modifiers) Usage {
	return Usage{
		Modifiers: u.Modifiers.Union(mods),
		Page:      u.Page,
		ID:        u.ID,
	}
}

// Base returns u with all modifiers removed.
func (u Usage) Base() Usage {
	return Usage{Page: u.Page, ID: u.ID}
}

// String renders u as a ZMK expression, e.g. "LS(ZMK_HID_USAGE(0x07, 0x04))".
func (u Usage) String() string {
	mods := u.Modifiers.List()

	var b strings.Builder
	for _, m := range mods {
		b.WriteString(m.Macro())
		b.WriteByte('(')
	}

	fmt.Fprintf(&b, "ZMK_HID_USAGE(0x%02X, 0x%02X)", u.Page, u.ID)
	b.WriteString(strings.Repeat(")", len(mods)))

	return b.String()
}
