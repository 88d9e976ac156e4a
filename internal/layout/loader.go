package layout

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"zmk-locale-generator/internal/hid"
)

type yamlLayout struct {
	Names   []string     `yaml:"names"`
	Keymaps []yamlKeymap `yaml:"keymaps"`
}

type yamlKeymap struct {
	Modifiers []string  `yaml:"modifiers"`
	Keys      yaml.Node `yaml:"keys"`
}

// LoadFile loads a layout from a YAML file.
func LoadFile(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read layout file %s: %w", path, err)
	}

	l, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return l, nil
}

// Parse parses YAML layout data. Keys keep their document order.
func Parse(data []byte) (*Layout, error) {
	var yl yamlLayout

	err := yaml.Unmarshal(data, &yl)
	if err != nil {
		return nil, fmt.Errorf("failed to parse layout YAML: %w", err)
	}

	if len(yl.Keymaps) == 0 {
		return nil, errors.New("layout has no keymaps")
	}

	l := &Layout{Names: yl.Names}

	for i, ykm := range yl.Keymaps {
		km, err := convertKeymap(ykm)
		if err != nil {
			return nil, fmt.Errorf("keymap %d: %w", i, err)
		}

		l.Keymaps = append(l.Keymaps, km)
	}

	return l, nil
}

func convertKeymap(ykm yamlKeymap) (Keymap, error) {
	mods, err := hid.ParseModifiers(ykm.Modifiers)
	if err != nil {
		return Keymap{}, err
	}

	km := Keymap{Modifiers: mods}

	if ykm.Keys.Kind == 0 {
		return km, nil
	}

	if ykm.Keys.Kind != yaml.MappingNode {
		return Keymap{}, fmt.Errorf("line %d: keys must be a mapping", ykm.Keys.Line)
	}

	seen := make(map[string]struct{}, len(ykm.Keys.Content)/2)

	for i := 0; i+1 < len(ykm.Keys.Content); i += 2 {
		keyNode, charNode := ykm.Keys.Content[i], ykm.Keys.Content[i+1]

		if charNode.Kind != yaml.ScalarNode {
			return Keymap{}, fmt.Errorf("line %d: key %q must map to a character", keyNode.Line, keyNode.Value)
		}

		if _, dup := seen[keyNode.Value]; dup {
			return Keymap{}, fmt.Errorf("line %d: duplicate key %q", keyNode.Line, keyNode.Value)
		}

		seen[keyNode.Value] = struct{}{}

		if charNode.Value == "" {
			continue
		}

		// Unquoted ~, null, true and false are not characters.
		switch charNode.ShortTag() {
		case "!!null", "!!bool":
			return Keymap{}, fmt.Errorf("line %d: key %q: %s is not a character, quote it",
				charNode.Line, keyNode.Value, charNode.Value)
		}

		km.Keys = append(km.Keys, KeyChar{Key: keyNode.Value, Char: charNode.Value})
	}

	return km, nil
}
