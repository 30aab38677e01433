// Package air evaluates thermodynamic and transport properties of equilibrium
// air for pressures 1e-4..1e2 atm and temperatures up to 30000 K using the
// piecewise polynomial curve fits of Gupta, Lee, Thompson and Yos
// (NASA RP-1260, 1991).
//
// Fits are tabulated at seven pressure decades. At a decade pressure the fit
// of that decade is evaluated directly; between decades the values of the two
// bracketing decades are blended linearly in log10(P).
//
// Every function of the package is pure and safe for concurrent use. A query
// outside of the fitted domain returns one of ErrPressureOutOfRange,
// ErrTemperatureOutOfRange or ErrInterpolationGap, test with merry.Is.
package air

import "github.com/ansel1/merry"

// Enthalpy returns specific enthalpy at pressure p, atm, and temperature t, K.
func Enthalpy(p, t float64) (float64, error) {
	return hTable.Interpolate(p, t)
}

// SpecificHeat returns specific heat at constant pressure.
func SpecificHeat(p, t float64) (float64, error) {
	return cpTable.Interpolate(p, t)
}

// ThermalConductivity returns thermal conductivity.
func ThermalConductivity(p, t float64) (float64, error) {
	return kTable.Interpolate(p, t)
}

// Viscosity returns dynamic viscosity.
func Viscosity(p, t float64) (float64, error) {
	return muTable.Interpolate(p, t)
}

// Compressibility returns the compressibility factor.
func Compressibility(p, t float64) (float64, error) {
	return zTable.Interpolate(p, t)
}

// TableOf returns the coefficient table of property x, nil for unknown x.
func TableOf(x Property) *Table {
	switch x {
	case PropH:
		return hTable
	case PropCp:
		return cpTable
	case PropK:
		return kTable
	case PropMu:
		return muTable
	case PropZ:
		return zTable
	default:
		return nil
	}
}

// Eval returns the value of property x at pressure p, atm, and temperature t, K.
func Eval(x Property, p, t float64) (float64, error) {
	table := TableOf(x)
	if table == nil {
		return 0, merry.Errorf("unknown property %d", int(x))
	}
	return table.Interpolate(p, t)
}

// Query is a state to evaluate at: pressure P, atm, and temperature T, K.
type Query struct {
	P float64 `json:"p"`
	T float64 `json:"t"`
}

// Result holds either a value or the error of one evaluation.
type Result struct {
	Value float64
	Err   error
}

func (r Result) Valid() bool {
	return r.Err == nil
}

// EvalBatch evaluates property x at every query. Results follow the order of
// qs and a failed query does not stop the rest.
func EvalBatch(x Property, qs []Query) []Result {
	rs := make([]Result, len(qs))
	for i, q := range qs {
		rs[i].Value, rs[i].Err = Eval(x, q.P, q.T)
	}
	return rs
}

// EvalAll evaluates every property at the same state.
func EvalAll(p, t float64) map[Property]Result {
	m := make(map[Property]Result, len(Properties))
	for _, x := range Properties {
		var r Result
		r.Value, r.Err = Eval(x, p, t)
		m[x] = r
	}
	return m
}
