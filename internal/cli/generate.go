package cli

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"zmk-locale-generator/internal/app"
	"zmk-locale-generator/internal/watch"
)

type generateOptions struct {
	*rootOptions

	outDir string
	jobs   int
	watch  bool
}

// run loads the project file, applies the flag overrides and generates the
// requested locales. It returns the input files of the loaded configuration,
// or nil when the configuration itself could not be loaded.
func (o *generateOptions) run(ctx context.Context, log zerolog.Logger, locales []string) ([]string, error) {
	cfg, err := o.loadConfig()
	if err != nil {
		return nil, err
	}

	if o.outDir != "" {
		cfg.OutputDir = o.outDir
	}

	if o.jobs > 0 {
		cfg.Jobs = o.jobs
	}

	_, err = app.New(cfg, log).Generate(ctx, locales)

	return cfg.InputFiles(), err
}

func generateCmd(root *rootOptions) *cobra.Command {
	opts := &generateOptions{rootOptions: root}

	c := &cobra.Command{
		Use:   "generate [locale...]",
		Short: "Generate headers for all or the given locales",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := opts.logger(cmd)

			files, err := opts.run(cmd.Context(), log, args)
			if !opts.watch || files == nil {
				return err
			}

			if err != nil {
				log.Error().Err(err).Msg("initial generation failed")
			}

			w, err := watch.New(files, log)
			if err != nil {
				return err
			}

			// Reload the project file on every change.
			return w.Run(cmd.Context(), func(ctx context.Context) ([]string, error) {
				return opts.run(ctx, log, args)
			})
		},
	}

	c.Flags().StringVarP(&opts.outDir, "out", "o", "", "output directory (overrides output_dir)")
	c.Flags().IntVarP(&opts.jobs, "jobs", "j", 0, "locales generated concurrently (overrides jobs)")
	c.Flags().BoolVarP(&opts.watch, "watch", "w", false, "regenerate when input files change")

	return c
}
