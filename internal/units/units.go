// Package units converts user supplied pressure and temperature into atm and K.
package units

import (
	"github.com/ansel1/merry"
	"github.com/gehtsoft-usa/go_ballisticcalc/bmath/unit"
	"math"
	"sort"
	"strings"
)

const (
	PaPerAtm  = 101325.
	BarPerAtm = 1.01325
)

var (
	ErrUnknownUnit       = merry.New("unknown unit")
	ErrBelowAbsoluteZero = merry.New("temperature below absolute zero")
)

var pressureUnits = map[string]func(float64) (float64, error){
	"atm":  func(v float64) (float64, error) { return v, nil },
	"pa":   func(v float64) (float64, error) { return v / PaPerAtm, nil },
	"kpa":  func(v float64) (float64, error) { return v * 1000 / PaPerAtm, nil },
	"mpa":  func(v float64) (float64, error) { return v * 1e6 / PaPerAtm, nil },
	"hpa":  pressureVia(unit.PressureHP),
	"bar":  pressureVia(unit.PressureBar),
	"psi":  pressureVia(unit.PressurePSI),
	"mmhg": pressureVia(unit.PressureMmHg),
	"inhg": pressureVia(unit.PressureInHg),
}

var temperatureUnits = map[string]byte{
	"c": unit.TemperatureCelsius,
	"f": unit.TemperatureFahrenheit,
	"r": unit.TemperatureRankin,
}

// Pressure converts v given in unit u to atm. Empty u means atm.
func Pressure(v float64, u string) (float64, error) {
	k := normalize(u, "atm")
	f, ok := pressureUnits[k]
	if !ok {
		return 0, ErrUnknownUnit.Here().Appendf("pressure: %q, expected one of %s", u, strings.Join(PressureUnits(), ", "))
	}
	return f(v)
}

// Temperature converts v given in unit u to K. Empty u means K.
func Temperature(v float64, u string) (float64, error) {
	k := normalize(u, "k")
	var t float64
	if k == "k" {
		t = v
	} else {
		x, ok := temperatureUnits[k]
		if !ok {
			return 0, ErrUnknownUnit.Here().Appendf("temperature: %q, expected one of K, C, F, R", u)
		}
		tv, err := unit.CreateTemperature(v, x)
		if err != nil {
			return 0, merry.Prependf(err, "temperature %v %s", v, u)
		}
		t = tv.In(unit.TemperatureKelvin)
	}
	if t < 0 || math.IsNaN(t) {
		return 0, ErrBelowAbsoluteZero.Here().Appendf("%v %s", v, u)
	}
	return t, nil
}

// PressureUnits returns names of the supported pressure units.
func PressureUnits() []string {
	var xs []string
	for k := range pressureUnits {
		xs = append(xs, k)
	}
	sort.Strings(xs)
	return xs
}

func pressureVia(u byte) func(float64) (float64, error) {
	return func(v float64) (float64, error) {
		p, err := unit.CreatePressure(v, u)
		if err != nil {
			return 0, merry.Wrap(err)
		}
		return p.In(unit.PressureBar) / BarPerAtm, nil
	}
}

func normalize(u, def string) string {
	u = strings.ToLower(strings.TrimSpace(u))
	u = strings.TrimPrefix(u, "°")
	if u == "" {
		return def
	}
	return u
}
