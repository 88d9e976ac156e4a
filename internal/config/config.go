// Package config loads the generator's project file.
//
// The project file is TOML:
//
//	output_dir = "include/locale"
//	keys = ["keys/hid_usage_pages.h", "keys/hid_usage.h", "keys/keys.h"]
//	codepoints = "codepoints.yaml"
//	year = 2024
//	jobs = 4
//
//	[[locales]]
//	code = "de"
//	layout = "layouts/german.yaml"
//
// Relative paths are resolved against the directory of the project file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// FileName is the project file looked up in the working directory.
const FileName = "zmk-locale-generator.toml"

// ErrNotFound is returned when no project file can be located.
var ErrNotFound = errors.New("config file not found")

// Config is the project configuration.
type Config struct {
	OutputDir  string         `koanf:"output_dir"`
	Keys       []string       `koanf:"keys"`
	Codepoints string         `koanf:"codepoints"`
	Year       int            `koanf:"year"` // copyright year; 0 = current year
	Jobs       int            `koanf:"jobs"` // locales generated concurrently
	Locales    []LocaleConfig `koanf:"locales"`

	// Path is the file the configuration was loaded from.
	Path string `koanf:"-"`
}

// LocaleConfig describes one locale to generate.
type LocaleConfig struct {
	Code   string `koanf:"code"`
	Layout string `koanf:"layout"`
}

// Find returns the project file to use. An explicit path always wins; then
// ./zmk-locale-generator.toml; then $XDG_CONFIG_HOME/zmk-locale-generator/config.toml.
func Find(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}

	if _, err := os.Stat(FileName); err == nil {
		return FileName, nil
	}

	if path, err := xdg.SearchConfigFile(filepath.Join("zmk-locale-generator", "config.toml")); err == nil {
		return path, nil
	}

	return "", fmt.Errorf("%w: pass --config or create %s", ErrNotFound, FileName)
}

// Load reads, normalizes and validates the project file at path.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return nil, fmt.Errorf("loading config %s: %w", path, err)
	}

	cfg := &Config{
		OutputDir:  "include/locale",
		Codepoints: "codepoints.yaml",
		Jobs:       runtime.NumCPU(),
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("decoding config %s: %w", path, err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	cfg.Path = abs
	cfg.resolvePaths(filepath.Dir(abs))

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

func (c *Config) resolvePaths(base string) {
	c.OutputDir = resolvePath(base, c.OutputDir)
	c.Codepoints = resolvePath(base, c.Codepoints)

	for i := range c.Keys {
		c.Keys[i] = resolvePath(base, c.Keys[i])
	}

	for i := range c.Locales {
		c.Locales[i].Layout = resolvePath(base, c.Locales[i].Layout)
	}
}

func resolvePath(base, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}

	if path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}

	return filepath.Join(base, path)
}

// Validate checks the configuration for missing and duplicate entries.
func (c *Config) Validate() error {
	var errs []error

	if len(c.Keys) == 0 {
		errs = append(errs, errors.New("keys: at least one key table is required"))
	}

	if c.Codepoints == "" {
		errs = append(errs, errors.New("codepoints: path is required"))
	}

	if c.Jobs < 1 {
		errs = append(errs, fmt.Errorf("jobs: must be at least 1, got %d", c.Jobs))
	}

	seen := make(map[string]bool, len(c.Locales))

	for i, l := range c.Locales {
		switch {
		case l.Code == "":
			errs = append(errs, fmt.Errorf("locales[%d]: code is required", i))
		case seen[strings.ToLower(l.Code)]:
			errs = append(errs, fmt.Errorf("locales[%d]: duplicate locale %q", i, l.Code))
		}

		seen[strings.ToLower(l.Code)] = true

		if l.Layout == "" {
			errs = append(errs, fmt.Errorf("locales[%d]: layout is required", i))
		}
	}

	return errors.Join(errs...)
}

// SelectLocales returns the locales with the given codes in config order, or
// all locales when codes is empty. Unknown codes are an error.
func (c *Config) SelectLocales(codes []string) ([]LocaleConfig, error) {
	if len(codes) == 0 {
		return c.Locales, nil
	}

	var out []LocaleConfig

	for _, code := range codes {
		if !slices.ContainsFunc(c.Locales, func(l LocaleConfig) bool { return strings.EqualFold(l.Code, code) }) {
			return nil, fmt.Errorf("unknown locale %q", code)
		}
	}

	for _, l := range c.Locales {
		if slices.ContainsFunc(codes, func(code string) bool { return strings.EqualFold(l.Code, code) }) {
			out = append(out, l)
		}
	}

	return out, nil
}

// InputFiles lists every file generation reads, including the config itself.
func (c *Config) InputFiles() []string {
	files := []string{c.Path, c.Codepoints}
	files = append(files, c.Keys...)

	for _, l := range c.Locales {
		files = append(files, l.Layout)
	}

	return files
}
