package diagnostic

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Severity ranks diagnostics. Higher values are more severe.
type Severity int

const (
	Info Severity = iota
	Warning
	Error
)

func (s Severity) String() string {
	switch s {
	case Info:
		return "info"
	case Warning:
		return "warning"
	case Error:
		return "error"
	}

	return "severity(" + strconv.Itoa(int(s)) + ")"
}

// Diagnostic is one note about a locale.
type Diagnostic struct {
	Severity Severity
	// Code groups diagnostics of the same kind, e.g. "unnamed_character".
	Code    string
	Locale  string
	Subject string // key name or code points; may be empty
	Message string
}

// String formats d as "warning [de] DE_A: duplicate_name: ...".
func (d Diagnostic) String() string {
	var b strings.Builder

	b.WriteString(d.Severity.String())

	if d.Locale != "" {
		fmt.Fprintf(&b, " [%s]", d.Locale)
	}

	if d.Subject != "" {
		b.WriteString(" " + d.Subject)
	}

	fmt.Fprintf(&b, ": %s: %s", d.Code, d.Message)

	return b.String()
}

// Diagnostics is a list of diagnostics in the order they were recorded.
type Diagnostics []Diagnostic

// Add records a diagnostic with a formatted message.
func (ds *Diagnostics) Add(sev Severity, code, locale, subject, format string, args ...any) {
	*ds = append(*ds, Diagnostic{
		Severity: sev,
		Code:     code,
		Locale:   locale,
		Subject:  subject,
		Message:  fmt.Sprintf(format, args...),
	})
}

// Count returns the number of diagnostics with the given code.
func (ds Diagnostics) Count(code string) int {
	n := 0

	for _, d := range ds {
		if d.Code == code {
			n++
		}
	}

	return n
}

// Filter returns the diagnostics of one severity.
func (ds Diagnostics) Filter(sev Severity) Diagnostics {
	var out Diagnostics

	for _, d := range ds {
		if d.Severity == sev {
			out = append(out, d)
		}
	}

	return out
}

// BySeverity returns a copy of ds with the most severe diagnostics first.
// Diagnostics of equal severity keep their order.
func (ds Diagnostics) BySeverity() Diagnostics {
	out := slices.Clone(ds)
	slices.SortStableFunc(out, func(a, b Diagnostic) int {
		return cmp.Compare(b.Severity, a.Severity)
	})

	return out
}
