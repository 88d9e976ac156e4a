// Package app runs header generation for the locales of a project.
package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"zmk-locale-generator/internal/codepoints"
	"zmk-locale-generator/internal/config"
	"zmk-locale-generator/internal/diagnostic"
	"zmk-locale-generator/internal/gen"
	"zmk-locale-generator/internal/keys"
	"zmk-locale-generator/internal/layout"
	"zmk-locale-generator/internal/plan"
)

// Inputs are the tables shared by every locale. They are loaded once and only
// read afterwards.
type Inputs struct {
	Keys       *keys.Table
	Codepoints *codepoints.Table
}

// Result reports the outcome of a generation run.
type Result struct {
	// Plans holds the plans of locales that resolved, in config order.
	Plans []*plan.Plan
	// Written lists header files whose content changed.
	Written []string
	// Failed maps locale codes to the error that stopped them.
	Failed map[string]error
	// Diagnostics collects the diagnostics of every locale, failed ones
	// included, in config order.
	Diagnostics diagnostic.Diagnostics
}

// App generates headers for a project configuration.
type App struct {
	cfg       *config.Config
	log       zerolog.Logger
	generator *gen.Generator
}

// New creates an App.
func New(cfg *config.Config, log zerolog.Logger) *App {
	genCfg := gen.DefaultGeneratorConfig()
	genCfg.Year = cfg.Year

	return &App{
		cfg:       cfg,
		log:       log,
		generator: gen.NewGenerator(genCfg),
	}
}

// LoadInputs loads the key tables and the codepoint table.
func (a *App) LoadInputs() (*Inputs, error) {
	table, err := keys.NewLoader(a.log).LoadFiles(a.cfg.Keys)
	if err != nil {
		return nil, fmt.Errorf("loading key table: %w", err)
	}

	names, err := codepoints.LoadFile(a.cfg.Codepoints)
	if err != nil {
		return nil, fmt.Errorf("loading codepoints: %w", err)
	}

	a.log.Debug().Int("keys", table.Len()).Int("codepoints", names.Len()).Msg("loaded inputs")

	return &Inputs{Keys: table, Codepoints: names}, nil
}

// Plan loads the layout of one locale and resolves it. The plan is nil when
// the layout can't be loaded; when resolution fails it carries the error
// diagnostic.
func (a *App) Plan(in *Inputs, loc config.LocaleConfig) (*plan.Plan, error) {
	l, err := layout.LoadFile(loc.Layout)
	if err != nil {
		return nil, fmt.Errorf("locale %s: %w", loc.Code, err)
	}

	return plan.NewResolver(in.Keys, in.Codepoints, a.log).Resolve(l, loc.Code)
}

// Generate resolves the selected locales concurrently and writes their
// headers. A locale that fails is reported in Result.Failed and in the
// returned error; the other locales are still written.
func (a *App) Generate(ctx context.Context, codes []string) (*Result, error) {
	locales, err := a.cfg.SelectLocales(codes)
	if err != nil {
		return nil, err
	}

	in, err := a.LoadInputs()
	if err != nil {
		return nil, err
	}

	plans := make([]*plan.Plan, len(locales))
	files := make([]*gen.GeneratedFile, len(locales))
	errs := make([]error, len(locales))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(a.cfg.Jobs)

	for i, loc := range locales {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			p, err := a.Plan(in, loc)
			plans[i] = p

			if err != nil {
				errs[i] = err
				return nil
			}

			f, err := a.generator.Generate(p)
			if err != nil {
				errs[i] = fmt.Errorf("locale %s: %w", loc.Code, err)
				return nil
			}

			files[i] = f

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	res := &Result{Failed: make(map[string]error)}

	var out []gen.GeneratedFile

	for i, loc := range locales {
		p := plans[i]
		if p != nil {
			res.Diagnostics = append(res.Diagnostics, p.Diagnostics...)
		}

		if errs[i] != nil {
			res.Failed[loc.Code] = errs[i]
			a.log.Error().Err(errs[i]).Str("locale", loc.Code).Msg("generation failed")

			continue
		}

		res.Plans = append(res.Plans, p)
		out = append(out, *files[i])

		a.log.Info().
			Str("locale", loc.Code).
			Int("constants", len(p.Constants)).
			Int("skipped", p.Diagnostics.Count(plan.CodeUnnamedChar)).
			Msg("resolved")

		for _, d := range p.Diagnostics.Filter(diagnostic.Warning) {
			a.log.Warn().Str("locale", loc.Code).Str("subject", d.Subject).Msg(d.Message)
		}
	}

	written, err := gen.WriteFiles(out, a.cfg.OutputDir)
	res.Written = written

	if err != nil {
		return res, err
	}

	for _, name := range written {
		a.log.Info().Str("file", name).Str("dir", a.cfg.OutputDir).Msg("wrote header")
	}

	return res, errors.Join(errs...)
}
