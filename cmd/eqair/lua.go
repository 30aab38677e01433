package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/fpawel/eqair/internal/airlua"
	"github.com/spf13/cobra"
)

func newLuaCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "lua <file>",
		Short: "Run a Lua script with the air module",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return airlua.RunFile(ctx, args[0], airlua.Options{
				Workers:   a.cfg.Sweep.Workers,
				MaxPoints: a.cfg.Sweep.MaxPoints,
			})
		},
	}
}
