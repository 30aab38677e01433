package air

import (
	"fmt"
	"github.com/ansel1/merry"
	"github.com/hashicorp/go-multierror"
	"math"
)

// FirstLo is the lower temperature bound of the first segment of every decade, K.
const FirstLo = 500.

// Fit is a table row as published: the upper temperature bound of a segment and
// its coefficients. The lower bound is that of the previous row, or FirstLo.
type Fit struct {
	Hi    float64
	Coefs Coefs
}

// Table holds the curve fits of one property for every decade. It is never
// mutated after construction and may be shared between goroutines.
type Table struct {
	Property Property
	Arity    Arity
	decades  [NumDecades]Segments
}

// NewTable builds a table from rows of every decade and checks its invariants.
func NewTable(x Property, arity Arity, fits [NumDecades][]Fit) (*Table, error) {
	t := &Table{
		Property: x,
		Arity:    arity,
	}
	for i, xs := range fits {
		lo := FirstLo
		segments := make(Segments, 0, len(xs))
		for _, f := range xs {
			segments = append(segments, Segment{Lo: lo, Hi: f.Hi, Coefs: f.Coefs})
			lo = f.Hi
		}
		t.decades[i] = segments
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

func mustTable(x Property, arity Arity, fits [NumDecades][]Fit) *Table {
	t, err := NewTable(x, arity, fits)
	if err != nil {
		panic(merry.Prependf(err, "%s table", x))
	}
	return t
}

// Validate reports every broken invariant: uniform arity, non empty
// decades, contiguous segments with increasing bounds.
func (t *Table) Validate() error {
	var mErr *multierror.Error
	if !t.Arity.Valid() {
		mErr = multierror.Append(mErr, merry.Errorf("%s: unsupported arity %d", t.Property, t.Arity))
	}
	for i, xs := range t.decades {
		d := Decades[i]
		if len(xs) == 0 {
			mErr = multierror.Append(mErr, merry.Errorf("%s %s atm: no segments", t.Property, d))
			continue
		}
		for j, s := range xs {
			where := fmt.Sprintf("%s %s atm segment %d [%g, %g)", t.Property, d, j, s.Lo, s.Hi)
			if s.Coefs.N != t.Arity {
				mErr = multierror.Append(mErr, merry.Errorf("%s: arity %d, table arity %d", where, s.Coefs.N, t.Arity))
			}
			if math.IsNaN(s.Lo) || math.IsNaN(s.Hi) || !(s.Lo < s.Hi) {
				mErr = multierror.Append(mErr, merry.Errorf("%s: empty interval", where))
			}
			if j > 0 && xs[j-1].Hi != s.Lo {
				mErr = multierror.Append(mErr, merry.Errorf("%s: gap or overlap with previous segment ending at %g",
					where, xs[j-1].Hi))
			}
		}
	}
	return mErr.ErrorOrNil()
}

// Segments returns a copy of the segments of decade d.
func (t *Table) Segments(d Decade) Segments {
	if !d.Valid() {
		return nil
	}
	return append(Segments(nil), t.decades[d.Index()]...)
}

// Range returns the temperature range covered at decade d, K.
func (t *Table) Range(d Decade) (lo, hi float64) {
	if !d.Valid() {
		return math.NaN(), math.NaN()
	}
	return t.decades[d.Index()].Range()
}

// Len returns the total number of segments of all decades.
func (t *Table) Len() (n int) {
	for _, xs := range t.decades {
		n += len(xs)
	}
	return
}
