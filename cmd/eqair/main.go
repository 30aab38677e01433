// Command eqair evaluates thermodynamic and transport properties of
// equilibrium air.
//
// Usage:
//
//	eqair eval -p 1 -t 5000 h cp mu
//	eqair decades z
//	eqair sweep --property h --p 1e-2,1,10 --t-from 500 --t-to 30000 --t-step 500 --save
//	eqair sweeps
//	eqair lua script.lua
//	eqair serve
package main

import (
	"os"

	"github.com/fpawel/eqair/internal/pkg"
	"github.com/powerman/structlog"
)

var (
	Version   = "0.1.0"
	GitCommit string
	BuildDate string
)

func main() {
	pkg.InitLog()
	if err := newRootCmd().Execute(); err != nil {
		log.PrintErr(err)
		pkg.PrintMerryStacktrace(log, err)
		os.Exit(1)
	}
}

var log = structlog.New()
