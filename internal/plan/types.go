package plan

import (
	"zmk-locale-generator/internal/diagnostic"
	"zmk-locale-generator/internal/hid"
)

// Definition pairs a usage with the character it produces.
type Definition struct {
	Usage hid.Usage
	Char  string
}

// Constant is a named definition ready to be written to a header.
type Constant struct {
	// Name is the primary constant, bound to the usage value.
	Name string
	// Aliases are extra names bound to Name.
	Aliases []string
	// Usage is the value of the constant.
	Usage hid.Usage
	// Char is the character the usage produces.
	Char string
}

// Plan is the resolved output for one locale.
type Plan struct {
	// Locale is the locale code used as name prefix.
	Locale string
	// LayoutNames are the human readable names of the source layout.
	LayoutNames []string
	// Constants in emission order.
	Constants []Constant
	// Diagnostics contains notes collected during resolution.
	Diagnostics diagnostic.Diagnostics
}
