package config

import (
	"github.com/ansel1/merry"
	"github.com/fpawel/eqair/internal/pkg"
	"github.com/fpawel/eqair/internal/pkg/cfgfile"
	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"
	"os"
	"sync"
)

// DefaultFilename is the config file looked up next to the executable.
const DefaultFilename = "eqair.yaml"

type Config struct {
	LogLevel       string `yaml:"log_level"`
	LogDir         string `yaml:"log_dir"`
	FloatPrecision int    `yaml:"float_precision"`
	Units          Units  `yaml:"units"`
	Database       string `yaml:"database"`
	Sweep          Sweep  `yaml:"sweep"`
	HTTP           HTTP   `yaml:"http"`
}

func (c Config) Validate() error {
	var mErr *multierror.Error
	switch c.LogLevel {
	case "dbg", "inf", "wrn", "err":
	default:
		mErr = multierror.Append(mErr, merry.Errorf("log_level: %q, expected one of dbg, inf, wrn, err", c.LogLevel))
	}
	if c.FloatPrecision < 1 || c.FloatPrecision > 17 {
		mErr = multierror.Append(mErr, merry.Errorf("float_precision: %d, expected 1..17", c.FloatPrecision))
	}
	if c.Database == "" {
		mErr = multierror.Append(mErr, merry.New("database: file name must be set"))
	}
	for _, err := range []error{
		merry.Prepend(c.Units.Validate(), "units"),
		merry.Prepend(c.Sweep.Validate(), "sweep"),
		merry.Prepend(c.HTTP.Validate(), "http"),
	} {
		if err != nil {
			mErr = multierror.Append(mErr, err)
		}
	}
	return mErr.ErrorOrNil()
}

// FormatValue formats a property value with the configured precision.
func (c Config) FormatValue(v float64) string {
	return pkg.FormatValue(v, c.FloatPrecision)
}

// Load reads and validates the config file. A missing file yields Default.
func Load(filename string) (Config, error) {
	c := Default()
	err := file(filename).Get(&c)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return c, err
	}
	if err := c.Validate(); err != nil {
		return c, merry.Prepend(err, filename)
	}
	return c, nil
}

// Save validates c and writes it to filename.
func Save(filename string, c Config) error {
	if err := c.Validate(); err != nil {
		return err
	}
	return file(filename).Set(c)
}

func Get() Config {
	mu.Lock()
	defer mu.Unlock()
	return cfg
}

func Set(c Config) error {
	if err := c.Validate(); err != nil {
		return err
	}
	mu.Lock()
	defer mu.Unlock()
	cfg = c
	return nil
}

func file(filename string) *cfgfile.F {
	if filename == "" {
		filename = DefaultFilename
	}
	return cfgfile.New(filename, yaml.Marshal, yaml.Unmarshal)
}

var (
	mu  sync.Mutex
	cfg = Default()
)
