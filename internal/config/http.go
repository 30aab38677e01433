package config

import (
	"github.com/ansel1/merry"
	"net"
	"time"
)

type HTTP struct {
	Addr             string        `yaml:"addr"`
	ReadTimeout      time.Duration `yaml:"read_timeout"`
	WriteTimeout     time.Duration `yaml:"write_timeout"`
	MetricsNamespace string        `yaml:"metrics_namespace"`
}

func (c HTTP) Validate() error {
	if _, _, err := net.SplitHostPort(c.Addr); err != nil {
		return merry.Prependf(err, "addr %q", c.Addr)
	}
	if c.ReadTimeout < 0 || c.WriteTimeout < 0 {
		return merry.New("timeouts must not be negative")
	}
	return nil
}
