// Package cli implements the zmk-locale-generator command line.
package cli

import (
	"context"
	"os"
	"os/signal"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"zmk-locale-generator/internal/config"
	"zmk-locale-generator/internal/logging"
)

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1) //nolint:gocritic
	}
}

type rootOptions struct {
	configPath string
	debug      bool
	logJSON    bool
}

func (o *rootOptions) logger(cmd *cobra.Command) zerolog.Logger {
	return logging.New(logging.Config{
		Debug: o.debug,
		JSON:  o.logJSON,
		Out:   cmd.ErrOrStderr(),
	})
}

func (o *rootOptions) loadConfig() (*config.Config, error) {
	path, err := config.Find(o.configPath)
	if err != nil {
		return nil, err
	}

	return config.Load(path)
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "zmk-locale-generator",
		Short: "Generate ZMK locale headers from keyboard layouts",
		Long: `zmk-locale-generator turns per-locale keyboard layouts into C headers that
map characters to ZMK key usages, e.g. DE_Z for the key that types "z" on a
German layout.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "",
		"project file (default ./"+config.FileName+" or XDG config)")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable debug logging, including skipped characters")
	cmd.PersistentFlags().BoolVar(&opts.logJSON, "log-json", false, "log JSON lines instead of console output")

	cmd.AddCommand(generateCmd(opts), showCmd(opts))

	return cmd
}
