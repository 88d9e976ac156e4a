package plan

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"zmk-locale-generator/internal/codepoints"
	"zmk-locale-generator/internal/diagnostic"
	"zmk-locale-generator/internal/keys"
	"zmk-locale-generator/internal/layout"
)

// Diagnostic codes recorded by the resolver.
const (
	CodeDuplicateUsage     = "duplicate_usage"
	CodeDuplicateUppercase = "duplicate_uppercase"
	CodeDuplicateChar      = "duplicate_character"
	CodeUnnamedChar        = "unnamed_character"
	CodeDuplicateName      = "duplicate_name"
	CodeInvalidReference   = "invalid_reference"
)

// Resolver turns layouts into plans. It only reads its tables and may be
// used for several locales concurrently.
type Resolver struct {
	keys  *keys.Table
	names *NameResolver
	log   zerolog.Logger
}

// NewResolver creates a Resolver over the given key and codepoint tables.
func NewResolver(table *keys.Table, names *codepoints.Table, log zerolog.Logger) *Resolver {
	return &Resolver{
		keys:  table,
		names: NewNameResolver(table, names),
		log:   log,
	}
}

// Resolve builds the plan for one locale. An error means the layout refers to
// a key the key table can't resolve and nothing should be generated; the
// returned plan then holds no constants and an error diagnostic naming the key.
func (r *Resolver) Resolve(l *layout.Layout, locale string) (*Plan, error) {
	log := r.log.With().Str("locale", locale).Logger()

	p := &Plan{
		Locale:      locale,
		LayoutNames: l.Names,
	}

	raw, err := RawDefinitions(l, r.keys)
	if err != nil {
		var kerr *KeyError

		subject := ""
		if errors.As(err, &kerr) {
			subject = kerr.Key
		}

		p.Diagnostics.Add(diagnostic.Error, CodeInvalidReference, locale, subject, "%v", err)

		return p, fmt.Errorf("locale %s: %w", locale, err)
	}

	defs := r.reduce(raw, p)

	seenNames := make(map[string]string)

	for _, d := range defs {
		names, ok := r.names.Names(locale, d.Char)
		if !ok {
			log.Debug().Msgf("Skipped %s (%s) = %s", CodePoints(d.Char), d.Char, d.Usage)
			p.Diagnostics.Add(diagnostic.Info, CodeUnnamedChar, locale, CodePoints(d.Char),
				"no codepoint name for %q = %s", d.Char, d.Usage)

			continue
		}

		if other, taken := seenNames[names[0]]; taken {
			log.Warn().Str("name", names[0]).Str("char", d.Char).Str("other", other).
				Msg("constant name already used")
			p.Diagnostics.Add(diagnostic.Warning, CodeDuplicateName, locale, names[0],
				"name already used by %q", other)

			continue
		}

		for _, n := range names {
			if _, taken := seenNames[n]; !taken {
				seenNames[n] = d.Char
			}
		}

		p.Constants = append(p.Constants, Constant{
			Name:    names[0],
			Aliases: dropTaken(names[1:], seenNames, d.Char),
			Usage:   d.Usage,
			Char:    d.Char,
		})
	}

	log.Debug().Int("raw", len(raw)).Int("constants", len(p.Constants)).Msg("resolved layout")

	return p, nil
}

// reduce runs the deduplication passes, recording how many definitions each
// pass removed.
func (r *Resolver) reduce(raw []Definition, p *Plan) []Definition {
	passes := []struct {
		code string
		fn   func([]Definition) []Definition
	}{
		{CodeDuplicateUsage, DedupeSameUsage},
		{CodeDuplicateUppercase, DedupeUppercase},
		{CodeDuplicateChar, DedupeSameChar},
	}

	defs := raw
	for _, pass := range passes {
		before := len(defs)
		defs = pass.fn(defs)

		if removed := before - len(defs); removed > 0 {
			p.Diagnostics.Add(diagnostic.Info, pass.code, p.Locale, "", "removed %d definitions", removed)
		}
	}

	SortByChar(defs)

	return defs
}

// dropTaken removes aliases already claimed by a different character.
func dropTaken(aliases []string, seen map[string]string, char string) []string {
	var out []string

	for _, a := range aliases {
		if seen[a] == char {
			out = append(out, a)
		}
	}

	return out
}
