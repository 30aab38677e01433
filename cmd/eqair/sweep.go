package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/ansel1/merry"
	"github.com/fpawel/eqair/internal/air"
	"github.com/fpawel/eqair/internal/data"
	"github.com/fpawel/eqair/internal/pkg"
	"github.com/fpawel/eqair/internal/sweep"
	"github.com/fpawel/eqair/internal/units"
	"github.com/spf13/cobra"
)

func newSweepCmd(a *app) *cobra.Command {
	var (
		property     string
		pressures    []float64
		pUnit, tUnit string
		g            sweep.Grid
		workers      int
		save         bool
		note         string
	)
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Evaluate a property over a pressure and temperature grid",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			if g.Property, err = air.ParseProperty(property); err != nil {
				return err
			}
			if g.Pressures, err = convertPressures(pressures, orDefault(pUnit, a.cfg.Units.Pressure)); err != nil {
				return err
			}
			if g, err = convertTemperatures(g, orDefault(tUnit, a.cfg.Units.Temperature)); err != nil {
				return err
			}
			if workers < 1 {
				workers = a.cfg.Sweep.Workers
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			points, err := sweep.Run(ctx, g, workers, a.cfg.Sweep.MaxPoints)
			if err != nil {
				return err
			}
			if err := printPoints(cmd.OutOrStdout(), a, points); err != nil {
				return err
			}
			m := sweep.Summarize(points)
			log.Info("sweep", "property", g.Property, "points", len(points), "valid", m.Valid(), "failed", m.Failed())
			for _, k := range m.Kinds() {
				log.Debug("failed", "kind", k, "points", m[k])
			}
			if !save {
				return nil
			}
			db, err := a.openDB()
			if err != nil {
				return err
			}
			defer log.ErrIfFail(db.Close)
			id, err := data.SaveSweep(ctx, db, g, points, note)
			if err != nil {
				return merry.Prepend(err, "save sweep")
			}
			fmt.Fprintln(cmd.OutOrStdout(), "saved:", id)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&property, "property", "h", "property: h, cp, k, mu, z")
	f.Float64SliceVar(&pressures, "p", []float64{1}, "pressures")
	f.Float64Var(&g.TFrom, "t-from", 500, "first temperature")
	f.Float64Var(&g.TTo, "t-to", 30000, "last temperature")
	f.Float64Var(&g.TStep, "t-step", 500, "temperature step")
	f.StringVar(&pUnit, "p-unit", "", "pressure unit")
	f.StringVar(&tUnit, "t-unit", "", "temperature unit")
	f.IntVar(&workers, "workers", 0, "number of workers, config value when not set")
	f.BoolVar(&save, "save", false, "save the sweep to the database")
	f.StringVar(&note, "note", "", "note saved with the sweep")
	return cmd
}

func convertPressures(xs []float64, unit string) ([]float64, error) {
	r := make([]float64, len(xs))
	for i, p := range xs {
		v, err := units.Pressure(p, unit)
		if err != nil {
			return nil, err
		}
		r[i] = v
	}
	return r, nil
}

// convertTemperatures converts the temperature range of g to K. The step is a
// difference and is only scaled.
func convertTemperatures(g sweep.Grid, unit string) (sweep.Grid, error) {
	from, err := units.Temperature(g.TFrom, unit)
	if err != nil {
		return g, err
	}
	to, err := units.Temperature(g.TTo, unit)
	if err != nil {
		return g, err
	}
	if g.TTo != g.TFrom {
		g.TStep *= (to - from) / (g.TTo - g.TFrom)
	}
	g.TFrom, g.TTo = from, to
	return g, nil
}

func printPoints(w io.Writer, a *app, points []sweep.Point) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "p, atm\tT, K\tvalue")
	for _, x := range points {
		s := a.cfg.FormatValue(x.Value)
		if x.Err != nil {
			s = x.Kind()
		}
		fmt.Fprintf(tw, "%v\t%s\t%s\n", x.P, pkg.FormatFloat(x.T, 3), s)
	}
	return merry.Wrap(tw.Flush())
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
