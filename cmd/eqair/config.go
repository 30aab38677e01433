package main

import (
	"fmt"

	"github.com/fpawel/eqair/internal/config"
	"github.com/fpawel/eqair/internal/pkg/must"
	"github.com/spf13/cobra"
)

func newConfigCmd(a *app) *cobra.Command {
	var write bool
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective config",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if write {
				return config.Save(a.cfgFile, a.cfg)
			}
			fmt.Fprint(cmd.OutOrStdout(), string(must.MarshalYaml(a.cfg)))
			return nil
		},
	}
	cmd.Flags().BoolVar(&write, "write", false, "write the effective config to the config file")
	return cmd
}
