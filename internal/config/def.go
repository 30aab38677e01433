package config

import (
	"runtime"
	"time"
)

func Default() Config {
	return Config{
		LogLevel:       "inf",
		LogDir:         "",
		FloatPrecision: 6,
		Units: Units{
			Pressure:    "atm",
			Temperature: "K",
		},
		Database: "eqair.sqlite",
		Sweep: Sweep{
			Workers:   runtime.NumCPU(),
			MaxPoints: 1000000,
		},
		HTTP: HTTP{
			Addr:             "127.0.0.1:8077",
			ReadTimeout:      5 * time.Second,
			WriteTimeout:     10 * time.Second,
			MetricsNamespace: "eqair",
		},
	}
}
