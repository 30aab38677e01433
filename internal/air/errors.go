package air

import "github.com/ansel1/merry"

var (
	// ErrPressureOutOfRange is returned for pressures outside of [1e-4, 1e2] atm.
	ErrPressureOutOfRange = merry.New("pressure out of range")

	// ErrTemperatureOutOfRange is returned when the temperature is outside of all
	// segments of the applicable decades.
	ErrTemperatureOutOfRange = merry.New("temperature out of range")

	// ErrInterpolationGap is returned when the temperature is covered by one of
	// the bracketing decades only.
	ErrInterpolationGap = merry.New("interpolation gap")
)

// Keys of the values attached to the returned errors, see merry.Value.
const (
	KeyProperty = "property"
	KeyPressure = "p"
	KeyTemp     = "t"
	KeyDecade   = "decade"
)

// Kind names of the errors.
const (
	KindPressureOutOfRange    = "pressure_out_of_range"
	KindTemperatureOutOfRange = "temperature_out_of_range"
	KindInterpolationGap      = "interpolation_gap"
)

// Kind returns the stable name of the failure err, or an empty string for
// nil and for errors not produced by this package.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case merry.Is(err, ErrPressureOutOfRange):
		return KindPressureOutOfRange
	case merry.Is(err, ErrTemperatureOutOfRange):
		return KindTemperatureOutOfRange
	case merry.Is(err, ErrInterpolationGap):
		return KindInterpolationGap
	default:
		return ""
	}
}

func (t *Table) errPressure(p, temp float64) error {
	return ErrPressureOutOfRange.Here().
		WithValue(KeyProperty, t.Property).
		WithValue(KeyPressure, p).
		WithValue(KeyTemp, temp).
		Appendf("%s: P=%g atm, expected %g..%g atm", t.Property, p, MinDecade.Pressure(), MaxDecade.Pressure())
}

func (t *Table) errTemperature(d Decade, p, temp float64) error {
	lo, hi := t.Range(d)
	return ErrTemperatureOutOfRange.Here().
		WithValue(KeyProperty, t.Property).
		WithValue(KeyPressure, p).
		WithValue(KeyTemp, temp).
		WithValue(KeyDecade, d).
		Appendf("%s: T=%g K, expected %g..%g K at %s atm", t.Property, temp, lo, hi, d)
}

func (t *Table) errGap(covered, uncovered Decade, p, temp float64) error {
	lo, hi := t.Range(uncovered)
	return ErrInterpolationGap.Here().
		WithValue(KeyProperty, t.Property).
		WithValue(KeyPressure, p).
		WithValue(KeyTemp, temp).
		WithValue(KeyDecade, uncovered).
		Appendf("%s: T=%g K is fitted at %s atm but not at %s atm (%g..%g K), P=%g atm",
			t.Property, temp, covered, uncovered, lo, hi, p)
}
