package main

import (
	"os"
	"path/filepath"

	"github.com/ansel1/merry"
	"github.com/fpawel/eqair/internal/config"
	"github.com/fpawel/eqair/internal/data"
	"github.com/fpawel/eqair/internal/pkg"
	"github.com/fpawel/eqair/internal/pkg/cfgfile"
	"github.com/fpawel/eqair/internal/pkg/logfile"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
)

type app struct {
	cfgFile string
	verbose bool
	cfg     config.Config
	logFile *os.File
}

func newRootCmd() *cobra.Command {
	a := new(app)
	cmd := &cobra.Command{
		Use:   "eqair",
		Short: "Equilibrium air properties",
		Long: `eqair evaluates enthalpy, specific heat, thermal conductivity, viscosity and
compressibility of equilibrium air for pressures 1e-4..1e2 atm and temperatures
up to 30000 K.`,
		Version:           Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.init,
		PersistentPostRunE: func(*cobra.Command, []string) error {
			if a.logFile != nil {
				return a.logFile.Close()
			}
			return nil
		},
	}
	cmd.PersistentFlags().StringVarP(&a.cfgFile, "config", "c", config.DefaultFilename, "config file path")
	cmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")

	cmd.AddCommand(
		newEvalCmd(a),
		newDecadesCmd(a),
		newSweepCmd(a),
		newSweepsCmd(a),
		newLuaCmd(a),
		newServeCmd(a),
		newConfigCmd(a),
		newVersionCmd(),
	)
	return cmd
}

func (a *app) init(*cobra.Command, []string) error {
	c, err := config.Load(a.cfgFile)
	if err != nil {
		return merry.Prepend(err, "config")
	}
	if err := config.Set(c); err != nil {
		return err
	}
	a.cfg = c
	a.setLogLevel(c)
	if c.LogDir != "" {
		if a.logFile, err = logfile.New(exePath(c.LogDir), ".eqair"); err != nil {
			return merry.Prepend(err, "log file")
		}
		pkg.SetLogOutput(a.logFile)
	}
	log.Debug("config", "file", a.cfgFile)
	return nil
}

func (a *app) setLogLevel(c config.Config) {
	if a.verbose {
		pkg.SetLogLevel("dbg")
		return
	}
	pkg.SetLogLevel(c.LogLevel)
}

func (a *app) openDB() (*sqlx.DB, error) {
	filename := exePath(a.cfg.Database)
	log.Debug("open database", "file", filename)
	return data.Open(filename)
}

// exePath resolves a relative name against the directory of the executable.
func exePath(name string) string {
	if filepath.IsAbs(name) || name == ":memory:" {
		return name
	}
	return cfgfile.ExeDir(name)
}
