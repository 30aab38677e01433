package air

// Arity is the number of polynomial coefficients of a fit.
type Arity int

const (
	Arity5 Arity = 5
	Arity6 Arity = 6

	MaxArity = 6
)

func (n Arity) Valid() bool {
	return n == Arity5 || n == Arity6
}

// Coefs is a coefficient vector of a single fit. C[0] is the leading,
// highest-degree term, C[N-1] is the constant term; the rest of C is zero.
type Coefs struct {
	N Arity
	C [MaxArity]float64
}

// C5 makes the coefficients of a degree 4 polynomial.
func C5(a, b, c, d, e float64) Coefs {
	return Coefs{N: Arity5, C: [MaxArity]float64{a, b, c, d, e}}
}

// C6 makes the coefficients of a degree 5 polynomial.
func C6(a, b, c, d, e, f float64) Coefs {
	return Coefs{N: Arity6, C: [MaxArity]float64{a, b, c, d, e, f}}
}

func (c Coefs) Degree() int {
	return int(c.N) - 1
}

// Eval evaluates the polynomial at raw temperature x, K, by Horner's rule
// starting from the leading coefficient.
func (c Coefs) Eval(x float64) float64 {
	v := c.C[0]
	for i := 1; i < int(c.N); i++ {
		// explicit conversion forbids fused multiply-add so that
		// results are the same on every platform
		v = float64(v*x) + c.C[i]
	}
	return v
}
