package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"zmk-locale-generator/internal/app"
	"zmk-locale-generator/internal/diagnostic"
	"zmk-locale-generator/internal/plan"
)

func showCmd(opts *rootOptions) *cobra.Command {
	var (
		dump        bool
		diagnostics bool
	)

	c := &cobra.Command{
		Use:   "show <locale>",
		Short: "Print the resolved constants of a locale without writing files",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}

			locales, err := cfg.SelectLocales(args)
			if err != nil {
				return err
			}

			a := app.New(cfg, opts.logger(cmd))

			in, err := a.LoadInputs()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			p, err := a.Plan(in, locales[0])
			if err != nil {
				if diagnostics && p != nil {
					printDiagnostics(out, p.Diagnostics)
				}

				return err
			}

			if dump {
				spew.Fdump(out, p)
				return nil
			}

			if err := printPlan(out, p); err != nil {
				return err
			}

			if diagnostics {
				printDiagnostics(out, p.Diagnostics)
			}

			return nil
		},
	}

	c.Flags().BoolVar(&dump, "dump", false, "dump the full resolved plan")
	c.Flags().BoolVar(&diagnostics, "diagnostics", false, "list skipped characters and removed duplicates")

	return c
}

func printPlan(w io.Writer, p *plan.Plan) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, "NAME\tCHAR\tUSAGE\tALIASES")

	for _, c := range p.Constants {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", c.Name, c.Char, c.Usage, strings.Join(c.Aliases, ", "))
	}

	return tw.Flush()
}

func printDiagnostics(w io.Writer, ds diagnostic.Diagnostics) {
	for _, d := range ds.BySeverity() {
		fmt.Fprintln(w, d)
	}
}
