package air

import "math"

// DecadeTolerance is the distance in log10(P) within which a pressure is
// treated as lying exactly on a decade.
const DecadeTolerance = 1e-9

// EvalDecade evaluates the fit of decade d at temperature temp, K.
func (t *Table) EvalDecade(d Decade, temp float64) (float64, error) {
	if !d.Valid() {
		return 0, t.errPressure(math.Pow(10, float64(d)), temp)
	}
	return t.evalDecade(d, d.Pressure(), temp)
}

func (t *Table) evalDecade(d Decade, p, temp float64) (float64, error) {
	xs := t.decades[d.Index()]
	i, ok := xs.Locate(temp)
	if !ok {
		return 0, t.errTemperature(d, p, temp)
	}
	return xs[i].Coefs.Eval(temp), nil
}

// Interpolate returns the property value at pressure p, atm, and temperature
// temp, K. Between two decades the decade values are blended linearly in log10(p).
func (t *Table) Interpolate(p, temp float64) (float64, error) {
	lo, hi, ok := Bracket(p)
	if !ok {
		return 0, t.errPressure(p, temp)
	}
	if lo == hi {
		return t.evalDecade(lo, p, temp)
	}
	vLo, errLo := t.evalDecade(lo, p, temp)
	vHi, errHi := t.evalDecade(hi, p, temp)
	switch {
	case errLo != nil && errHi != nil:
		return 0, errLo
	case errLo != nil:
		return 0, t.errGap(hi, lo, p, temp)
	case errHi != nil:
		return 0, t.errGap(lo, hi, p, temp)
	}
	w := (math.Log10(p) - float64(lo)) / float64(hi-lo)
	return vLo + w*(vHi-vLo), nil
}

// Bracket returns the decades used for pressure p: the same decade twice when
// p lies on a decade, ok is false when p is out of range.
func Bracket(p float64) (lo, hi Decade, ok bool) {
	if !(p > 0) || math.IsInf(p, 0) {
		return 0, 0, false
	}
	lp := math.Log10(p)
	if lp < float64(MinDecade)-DecadeTolerance || lp > float64(MaxDecade)+DecadeTolerance {
		return 0, 0, false
	}
	if d, ok := decadeAt(lp); ok {
		return d, d, true
	}
	lo = Decade(math.Floor(lp))
	return lo, lo + 1, true
}

func decadeAt(lp float64) (Decade, bool) {
	r := math.Round(lp)
	if math.Abs(lp-r) > DecadeTolerance {
		return 0, false
	}
	d := Decade(r)
	return d, d.Valid()
}
