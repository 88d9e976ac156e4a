package keys

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"zmk-locale-generator/internal/hid"
)

// Loader reads key tables from files. Constants defined by header files are
// shared between all files loaded through the same Loader.
type Loader struct {
	log    zerolog.Logger
	header *HeaderParser
}

// NewLoader creates a Loader that logs skipped definitions to log.
func NewLoader(log zerolog.Logger) *Loader {
	return &Loader{
		log:    log,
		header: NewHeaderParser(log),
	}
}

// LoadFiles loads and merges the given files in order. Later files override
// entries of earlier ones.
func (l *Loader) LoadFiles(paths []string) (*Table, error) {
	table := NewTable()

	for _, path := range paths {
		t, err := l.LoadFile(path)
		if err != nil {
			return nil, err
		}

		table.Merge(t)
	}

	return table, nil
}

// LoadFile loads a single key table file. The format is chosen by extension:
// .yaml/.yml for YAML tables and .h for C headers.
func (l *Loader) LoadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read key table %s: %w", path, err)
	}
	defer f.Close()

	var table *Table

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		data, rerr := io.ReadAll(f)
		if rerr != nil {
			return nil, fmt.Errorf("failed to read key table %s: %w", path, rerr)
		}

		table, err = ParseYAML(data)
	case ".h":
		table, err = l.header.Parse(f)
	default:
		return nil, fmt.Errorf("unsupported key table format %q (%s)", ext, path)
	}

	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	l.log.Debug().Str("path", path).Int("keys", table.Len()).Msg("loaded key table")

	return table, nil
}

type yamlKeyFile struct {
	Keys yaml.Node `yaml:"keys"`
}

type yamlKeyEntry struct {
	Page      *uint16  `yaml:"page"`
	ID        *uint16  `yaml:"id"`
	Modifiers []string `yaml:"modifiers"`
	Alias     string   `yaml:"alias"`
}

// ParseYAML parses a YAML key table. Entry order follows the document.
func ParseYAML(data []byte) (*Table, error) {
	var kf yamlKeyFile

	err := yaml.Unmarshal(data, &kf)
	if err != nil {
		return nil, fmt.Errorf("failed to parse key table YAML: %w", err)
	}

	table := NewTable()

	if kf.Keys.Kind == 0 {
		return table, nil
	}

	if kf.Keys.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: keys must be a mapping", kf.Keys.Line)
	}

	for i := 0; i+1 < len(kf.Keys.Content); i += 2 {
		nameNode, valueNode := kf.Keys.Content[i], kf.Keys.Content[i+1]

		entry, err := decodeYAMLEntry(valueNode)
		if err != nil {
			return nil, fmt.Errorf("line %d: key %q: %w", nameNode.Line, nameNode.Value, err)
		}

		table.Set(nameNode.Value, entry)
	}

	return table, nil
}

func decodeYAMLEntry(node *yaml.Node) (Entry, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Value == "" {
			return nil, errors.New("empty alias")
		}

		return Alias{Target: node.Value}, nil

	case yaml.MappingNode:
		var e yamlKeyEntry

		err := node.Decode(&e)
		if err != nil {
			return nil, err
		}

		if e.Alias != "" {
			if e.Page != nil || e.ID != nil || len(e.Modifiers) > 0 {
				return nil, errors.New("alias cannot be combined with page, id or modifiers")
			}

			return Alias{Target: e.Alias}, nil
		}

		if e.Page == nil || e.ID == nil {
			return nil, errors.New("usage requires both page and id")
		}

		mods, err := hid.ParseModifiers(e.Modifiers)
		if err != nil {
			return nil, err
		}

		return Usage{Usage: hid.NewUsage(*e.Page, *e.ID).WithModifiers(mods)}, nil

	default:
		return nil, fmt.Errorf("expected alias name or usage mapping, got %v", node.Kind)
	}
}
