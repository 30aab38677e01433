package units

import (
	"sort"
	"testing"

	"github.com/ansel1/merry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPressure(t *testing.T) {
	for _, c := range []struct {
		v     float64
		u     string
		atm   float64
		delta float64
	}{
		{2, "", 2, 0},
		{2, "atm", 2, 0},
		{101325, "Pa", 1, 1e-12},
		{10.1325, "kPa", 0.1, 1e-12},
		{0.101325, "MPa", 1, 1e-12},
		{1.01325, "bar", 1, 1e-9},
		{1013.25, "hPa", 1, 1e-6},
		{14.69595, "psi", 1, 1e-3},
		{760, "mmHg", 1, 1e-3},
		{29.92, "inHg", 1, 1e-3},
	} {
		v, err := Pressure(c.v, c.u)
		require.NoError(t, err, c.u)
		assert.InDelta(t, c.atm, v, c.delta, "%v %s", c.v, c.u)
	}
	_, err := Pressure(1, "torr")
	assert.True(t, merry.Is(err, ErrUnknownUnit))
}

func TestTemperature(t *testing.T) {
	for _, c := range []struct {
		v float64
		u string
		k float64
	}{
		{1000, "", 1000},
		{1000, "K", 1000},
		{0, "C", 273.15},
		{26.85, "°C", 300},
		{32, "F", 273.15},
		{491.67, "R", 273.15},
	} {
		v, err := Temperature(c.v, c.u)
		require.NoError(t, err, c.u)
		assert.InDelta(t, c.k, v, 1e-6, "%v %s", c.v, c.u)
	}

	_, err := Temperature(1, "X")
	assert.True(t, merry.Is(err, ErrUnknownUnit))

	_, err = Temperature(-1, "K")
	assert.True(t, merry.Is(err, ErrBelowAbsoluteZero))

	_, err = Temperature(-300, "C")
	assert.True(t, merry.Is(err, ErrBelowAbsoluteZero))
}

func TestPressureUnits(t *testing.T) {
	xs := PressureUnits()
	assert.Contains(t, xs, "atm")
	assert.Contains(t, xs, "mmhg")
	assert.True(t, sort.StringsAreSorted(xs))
}
