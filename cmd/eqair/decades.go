package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/ansel1/merry"
	"github.com/fpawel/eqair/internal/air"
	"github.com/fpawel/eqair/internal/airlua"
	"github.com/fpawel/eqair/internal/pkg"
	"github.com/spf13/cobra"
)

func newDecadesCmd(a *app) *cobra.Command {
	var withCoefs bool
	cmd := &cobra.Command{
		Use:   "decades [property...]",
		Short: "Print temperature segments of the curve fit tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			xs, err := parseProperties(args)
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "property\tdecade\tlo, K\thi, K\tarity")
			for _, x := range xs {
				for _, s := range airlua.Segments(air.TableOf(x)) {
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d", x, s.Decade,
						pkg.FormatFloat(s.Lo, 0), pkg.FormatFloat(s.Hi, 0), s.Arity)
					if withCoefs {
						cs := make([]string, len(s.Coefs))
						for i, c := range s.Coefs {
							cs[i] = a.cfg.FormatValue(c)
						}
						fmt.Fprintf(w, "\t%s", strings.Join(cs, " "))
					}
					fmt.Fprintln(w)
				}
			}
			return merry.Wrap(w.Flush())
		},
	}
	cmd.Flags().BoolVar(&withCoefs, "coefs", false, "print polynomial coefficients")
	return cmd
}
