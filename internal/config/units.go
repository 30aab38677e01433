package config

import (
	"github.com/fpawel/eqair/internal/units"
	"github.com/hashicorp/go-multierror"
)

// Units are the default units of command line and http input.
type Units struct {
	Pressure    string `yaml:"pressure"`
	Temperature string `yaml:"temperature"`
}

func (c Units) Validate() error {
	var mErr *multierror.Error
	if _, err := units.Pressure(1, c.Pressure); err != nil {
		mErr = multierror.Append(mErr, err)
	}
	if _, err := units.Temperature(1, c.Temperature); err != nil {
		mErr = multierror.Append(mErr, err)
	}
	return mErr.ErrorOrNil()
}
