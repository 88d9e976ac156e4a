package gen

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
	"time"

	"zmk-locale-generator/internal/plan"
)

// GeneratorConfig holds configuration for header generation.
type GeneratorConfig struct {
	// Program is named in the banner as the source to modify.
	Program string
	// Year is printed in the copyright line. Zero means the current year.
	Year int
	// Includes are the headers included by every generated file.
	Includes []string
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		Program: "zmk-locale-generator",
		Includes: []string{
			"dt-bindings/zmk/hid_usage.h",
			"dt-bindings/zmk/hid_usage_pages.h",
			"dt-bindings/zmk/modifiers.h",
		},
	}
}

// Generator renders plans to header files.
type Generator struct {
	config GeneratorConfig
	now    func() time.Time
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	return &Generator{config: config, now: time.Now}
}

// GeneratedFile represents a generated header.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "keys_de.h").
	Filename string
	// Content is the header text.
	Content []byte
}

type headerData struct {
	LayoutNames []string
	Year        int
	Program     string
	Includes    []string
	Constants   []plan.Constant
}

var headerTemplate = template.Must(template.New("header").
	Funcs(template.FuncMap{"join": strings.Join}).
	Parse(`/*
 * Localized Keys for {{ join .LayoutNames ", " }}
 *
 * Copyright (c) {{ .Year }} The ZMK Contributors
 *
 * SPDX-License-Identifier: MIT
 *
 * This file was generated by a script. Do not modify it directly.
 * Instead, modify {{ .Program }} and re-generate the file.
 */
#pragma once
{{ range .Includes }}
#include <{{ . }}>
{{- end }}
{{- range .Constants }}

#define {{ .Name }} ({{ .Usage }})
{{- $main := .Name }}
{{- range .Aliases }}
#define {{ . }} ({{ $main }})
{{- end }}
{{- end }}
`))

// Generate renders the header for one plan.
func (g *Generator) Generate(p *plan.Plan) (*GeneratedFile, error) {
	year := g.config.Year
	if year == 0 {
		year = g.now().Year()
	}

	names := p.LayoutNames
	if len(names) == 0 {
		names = []string{strings.ToUpper(p.Locale)}
	}

	data := headerData{
		LayoutNames: names,
		Year:        year,
		Program:     g.config.Program,
		Includes:    g.config.Includes,
		Constants:   p.Constants,
	}

	var buf bytes.Buffer
	if err := headerTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	return &GeneratedFile{
		Filename: Filename(p.Locale),
		Content:  buf.Bytes(),
	}, nil
}

// Filename returns the header file name for a locale, e.g. "keys_de_ch.h"
// for "de-CH".
func Filename(locale string) string {
	name := strings.ToLower(strings.ReplaceAll(locale, "-", "_"))
	return "keys_" + name + ".h"
}
