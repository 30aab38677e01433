package main

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/fpawel/eqair/internal/config"
	"github.com/fpawel/eqair/internal/metrics"
	"github.com/fpawel/eqair/internal/server"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
)

func newServeCmd(a *app) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve property queries over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if addr != "" {
				a.cfg.HTTP.Addr = addr
			}
			db, err := a.openDB()
			if err != nil {
				return err
			}
			defer log.ErrIfFail(db.Close)

			reg := prometheus.NewRegistry()
			reg.MustRegister(
				collectors.NewGoCollector(),
				collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			)
			srv := server.New(a.cfg, metrics.NewCollector(a.cfg.HTTP.MetricsNamespace, reg), db)

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			var wg sync.WaitGroup
			wg.Add(1)
			go func() {
				defer wg.Done()
				err := config.Watch(ctx, a.cfgFile, func(c config.Config) {
					a.setLogLevel(c)
					c.HTTP.Addr = srv.Config().HTTP.Addr
					srv.SetConfig(c)
				})
				if err != nil {
					log.PrintErr(err, "config", a.cfgFile)
				}
			}()
			defer wg.Wait()
			defer stop()

			return srv.Run(ctx)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address, config value when not set")
	return cmd
}
