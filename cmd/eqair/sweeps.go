package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/ansel1/merry"
	"github.com/fpawel/eqair/internal/data"
	"github.com/fpawel/eqair/internal/pkg"
	"github.com/spf13/cobra"
)

func newSweepsCmd(a *app) *cobra.Command {
	var del bool
	cmd := &cobra.Command{
		Use:   "sweeps [sweep id]",
		Short: "List saved sweeps or print the points of one sweep",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			db, err := a.openDB()
			if err != nil {
				return err
			}
			defer log.ErrIfFail(db.Close)

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			switch {
			case len(args) == 0:
				xs, err := data.ListSweeps(ctx, db)
				if err != nil {
					return err
				}
				fmt.Fprintln(w, "id\tcreated\tproperty\tT, K\tpoints\tfailed\tnote")
				for _, x := range xs {
					fmt.Fprintf(w, "%s\t%s\t%s\t%s..%s/%s\t%d\t%d\t%s\n",
						x.SweepID, x.CreatedAt.Format("2006-01-02 15:04:05"), x.Property,
						pkg.FormatFloat(x.TFrom, 3), pkg.FormatFloat(x.TTo, 3), pkg.FormatFloat(x.TStep, 3),
						x.Points, x.Failed, x.Note)
				}
			case del:
				if err := data.DeleteSweep(ctx, db, args[0]); err != nil {
					return err
				}
				fmt.Fprintln(w, "deleted:", args[0])
			default:
				if _, err := data.GetSweep(ctx, db, args[0]); err != nil {
					return err
				}
				xs, err := data.GetSweepPoints(ctx, db, args[0])
				if err != nil {
					return err
				}
				fmt.Fprintln(w, "p, atm\tT, K\tvalue")
				for _, x := range xs {
					s := x.Kind.String
					if x.Value.Valid {
						s = a.cfg.FormatValue(x.Value.Float64)
					}
					fmt.Fprintf(w, "%v\t%s\t%s\n", x.P, pkg.FormatFloat(x.T, 3), s)
				}
			}
			return merry.Wrap(w.Flush())
		},
	}
	cmd.Flags().BoolVar(&del, "delete", false, "delete the sweep")
	return cmd
}
