package plan

import (
	"fmt"

	"zmk-locale-generator/internal/keys"
	"zmk-locale-generator/internal/layout"
)

// KeyError reports a layout key the key table could not resolve.
type KeyError struct {
	Keymap int
	Key    string
	Err    error
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("keymap %d: key %q: %v", e.Keymap, e.Key, e.Err)
}

func (e *KeyError) Unwrap() error {
	return e.Err
}

// RawDefinitions resolves every key of every keymap of l to a definition.
// Keymap modifiers are added to the key's own usage. Output order is keymap
// order, then key order within the keymap.
func RawDefinitions(l *layout.Layout, table *keys.Table) ([]Definition, error) {
	var defs []Definition

	for i, km := range l.Keymaps {
		for _, kc := range km.Keys {
			usage, err := table.Resolve(layout.ZMKName(kc.Key))
			if err != nil {
				return nil, &KeyError{Keymap: i, Key: kc.Key, Err: err}
			}

			if !km.Modifiers.IsEmpty() {
				usage = usage.WithModifiers(km.Modifiers)
			}

			defs = append(defs, Definition{Usage: usage, Char: kc.Char})
		}
	}

	return defs, nil
}
