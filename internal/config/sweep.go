package config

import "github.com/ansel1/merry"

type Sweep struct {
	Workers   int `yaml:"workers"`
	MaxPoints int `yaml:"max_points"`
}

func (c Sweep) Validate() error {
	if c.Workers < 1 {
		return merry.Errorf("workers: %d, must be positive", c.Workers)
	}
	if c.MaxPoints < 1 {
		return merry.Errorf("max_points: %d, must be positive", c.MaxPoints)
	}
	return nil
}
