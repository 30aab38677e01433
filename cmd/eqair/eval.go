package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/ansel1/merry"
	"github.com/fpawel/eqair/internal/air"
	"github.com/fpawel/eqair/internal/pkg/must"
	"github.com/fpawel/eqair/internal/units"
	"github.com/spf13/cobra"
)

func newEvalCmd(a *app) *cobra.Command {
	var (
		p, t         float64
		pUnit, tUnit string
	)
	cmd := &cobra.Command{
		Use:   "eval [property...]",
		Short: "Evaluate properties at one state",
		Long: `Evaluate properties at pressure -p and temperature -t. All properties are
evaluated when none is given. Property names: h, cp, k, mu, z.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			xs, err := parseProperties(args)
			if err != nil {
				return err
			}
			if pUnit == "" {
				pUnit = a.cfg.Units.Pressure
			}
			if tUnit == "" {
				tUnit = a.cfg.Units.Temperature
			}
			pAtm, err := units.Pressure(p, pUnit)
			if err != nil {
				return err
			}
			tK, err := units.Temperature(t, tUnit)
			if err != nil {
				return err
			}
			log.Debug("eval", "p", pAtm, "t", tK)

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			failed := 0
			for _, x := range xs {
				v, err := air.Eval(x, pAtm, tK)
				if err != nil {
					failed++
					fmt.Fprintf(w, "%s\t%s\t%s\n", x, air.Kind(err), err)
					continue
				}
				fmt.Fprintf(w, "%s\t%s\t(%s nominal)\n", x, a.cfg.FormatValue(v), x.NominalUnit())
			}
			if err := w.Flush(); err != nil {
				return merry.Wrap(err)
			}
			if failed > 0 {
				return merry.Errorf("%d of %d properties failed at p=%v atm t=%v K", failed, len(xs), pAtm, tK)
			}
			return nil
		},
	}
	cmd.Flags().Float64VarP(&p, "pressure", "p", 0, "pressure")
	cmd.Flags().Float64VarP(&t, "temperature", "t", 0, "temperature")
	cmd.Flags().StringVar(&pUnit, "p-unit", "", "pressure unit: atm, Pa, kPa, MPa, hPa, bar, psi, mmHg, inHg")
	cmd.Flags().StringVar(&tUnit, "t-unit", "", "temperature unit: K, C, F, R")
	must.PanicIf(cmd.MarkFlagRequired("pressure"))
	must.PanicIf(cmd.MarkFlagRequired("temperature"))
	return cmd
}

// parseProperties returns all properties for empty args.
func parseProperties(args []string) ([]air.Property, error) {
	if len(args) == 0 {
		return air.Properties, nil
	}
	var xs []air.Property
	for _, s := range args {
		x, err := air.ParseProperty(s)
		if err != nil {
			return nil, err
		}
		xs = append(xs, x)
	}
	return xs, nil
}
