package keys

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"zmk-locale-generator/internal/hid"
	"zmk-locale-generator/internal/match"
)

const maxSuggestions = 3

var (
	// ErrInvalidReference is returned when a key name is not in the table or
	// resolves to something that is neither a usage nor an alias.
	ErrInvalidReference = errors.New("invalid key reference")
	// ErrAliasCycle is returned when alias resolution revisits a name.
	ErrAliasCycle = errors.New("alias cycle")
)

// Entry is a key table value: either a Usage or an Alias.
type Entry interface {
	isEntry()
}

// Usage is a key bound directly to a HID usage.
type Usage struct {
	hid.Usage
}

// Alias is a key defined as another key name.
type Alias struct {
	Target string
}

func (Usage) isEntry() {}
func (Alias) isEntry() {}

// Table maps key names to entries. Insertion order is preserved.
type Table struct {
	entries map[string]Entry
	order   []string
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{entries: make(map[string]Entry)}
}

// Set adds or replaces an entry. A replaced entry keeps its original position.
func (t *Table) Set(name string, e Entry) {
	if _, exists := t.entries[name]; !exists {
		t.order = append(t.order, name)
	}

	t.entries[name] = e
}

// SetUsage binds name to a usage.
func (t *Table) SetUsage(name string, u hid.Usage) {
	t.Set(name, Usage{Usage: u})
}

// SetAlias binds name to another key name.
func (t *Table) SetAlias(name, target string) {
	t.Set(name, Alias{Target: target})
}

// Get returns the raw entry for name.
func (t *Table) Get(name string) (Entry, bool) {
	e, ok := t.entries[name]
	return e, ok
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.order)
}

// Names returns all key names in insertion order.
func (t *Table) Names() []string {
	return slices.Clone(t.order)
}

// Merge copies all entries of other into t. Entries in other win.
func (t *Table) Merge(other *Table) {
	for _, name := range other.order {
		t.Set(name, other.entries[name])
	}
}

// Resolve returns the usage for name, following aliases until a usage is
// reached. Missing names and alias cycles are errors.
func (t *Table) Resolve(name string) (hid.Usage, error) {
	var visited []string

	current := name
	for {
		if slices.Contains(visited, current) {
			chain := append(visited, current)
			return hid.Usage{}, fmt.Errorf("%w: %s", ErrAliasCycle, strings.Join(chain, " -> "))
		}

		visited = append(visited, current)

		e, ok := t.Get(current)
		if !ok {
			if current == name {
				return hid.Usage{}, fmt.Errorf("%w: key %q is not defined%s",
					ErrInvalidReference, name, t.didYouMean(name))
			}

			return hid.Usage{}, fmt.Errorf("%w: key %q aliases undefined key %q%s",
				ErrInvalidReference, name, current, t.didYouMean(current))
		}

		switch v := e.(type) {
		case Usage:
			return v.Usage, nil
		case Alias:
			current = v.Target
		default:
			return hid.Usage{}, fmt.Errorf("%w: invalid entry type %T for %q", ErrInvalidReference, e, current)
		}
	}
}

func (t *Table) didYouMean(name string) string {
	s := match.Suggest(name, t.Names(), maxSuggestions)
	if len(s) == 0 {
		return ""
	}

	return " (did you mean " + strings.Join(s, ", ") + "?)"
}

// AliasesOf returns, in table order, the names of alias entries whose
// target is one of targets.
func (t *Table) AliasesOf(targets []string) []string {
	var out []string

	for _, name := range t.order {
		a, ok := t.entries[name].(Alias)
		if !ok {
			continue
		}

		if slices.Contains(targets, a.Target) {
			out = append(out, name)
		}
	}

	return out
}
