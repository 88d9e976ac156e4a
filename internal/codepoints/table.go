// Package codepoints maps characters to the symbolic name fragments used to
// build constant names in generated headers.
package codepoints

import (
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// StringOrArray accepts either a single string or a list of strings in YAML.
type StringOrArray []string

// UnmarshalYAML implements custom YAML unmarshaling for StringOrArray.
func (s *StringOrArray) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var str string

		err := node.Decode(&str)
		if err != nil {
			return err
		}

		if str != "" {
			*s = StringOrArray{str}
		} else {
			*s = StringOrArray{}
		}

		return nil

	case yaml.SequenceNode:
		var arr []string

		err := node.Decode(&arr)
		if err != nil {
			return err
		}

		*s = arr

		return nil

	default:
		return fmt.Errorf("line %d: expected string or array, got %v", node.Line, node.Kind)
	}
}

// Table maps a character to one or more name fragments.
type Table struct {
	names map[string]StringOrArray
}

// NewTable builds a table from a character to names mapping.
func NewTable(names map[string][]string) *Table {
	t := &Table{names: make(map[string]StringOrArray, len(names))}
	for char, n := range names {
		t.names[char] = StringOrArray(slices.Clone(n))
	}

	return t
}

// LoadFile loads a codepoint name table from a YAML file.
func LoadFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read codepoint table %s: %w", path, err)
	}

	t, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return t, nil
}

// Parse parses YAML codepoint data of the form `"€": EURO` or
// `"@": [AT_SIGN, AT]`.
func Parse(data []byte) (*Table, error) {
	var names map[string]StringOrArray

	err := yaml.Unmarshal(data, &names)
	if err != nil {
		return nil, fmt.Errorf("failed to parse codepoint YAML: %w", err)
	}

	if names == nil {
		names = map[string]StringOrArray{}
	}

	return &Table{names: names}, nil
}

// Names returns a copy of the name fragments for char. ok is false when the
// character has no names.
func (t *Table) Names(char string) (names []string, ok bool) {
	n, found := t.names[char]
	if !found || len(n) == 0 {
		return nil, false
	}

	return slices.Clone(n), true
}

// Len returns the number of characters in the table.
func (t *Table) Len() int {
	return len(t.names)
}
