package air

import (
	"math"
	"sort"
)

// NotFound is the segment index reported for a temperature outside of all segments.
const NotFound = -1

// Segment is a temperature interval [Lo, Hi) of one decade with its own fit.
type Segment struct {
	Lo, Hi float64
	Coefs  Coefs
}

func (s Segment) Contains(t float64) bool {
	return t >= s.Lo && t < s.Hi
}

func (s Segment) Mid() float64 {
	return (s.Lo + s.Hi) / 2
}

// Segments is the ordered, contiguous list of segments of one decade.
type Segments []Segment

// Locate returns the index of the segment containing t. A temperature lying
// exactly on a shared boundary belongs to the higher segment.
func (xs Segments) Locate(t float64) (int, bool) {
	if len(xs) == 0 || math.IsNaN(t) || t < xs[0].Lo || t >= xs[len(xs)-1].Hi {
		return NotFound, false
	}
	return sort.Search(len(xs), func(i int) bool {
		return t < xs[i].Hi
	}), true
}

// Range returns the lower bound of the first segment and the upper bound of the last one.
func (xs Segments) Range() (lo, hi float64) {
	if len(xs) == 0 {
		return math.NaN(), math.NaN()
	}
	return xs[0].Lo, xs[len(xs)-1].Hi
}
