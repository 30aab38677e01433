// Package sweep evaluates one property over a grid of pressures and temperatures.
package sweep

import (
	"context"
	"math"
	"sort"
	"sync"

	"github.com/ansel1/merry"
	"github.com/fpawel/eqair/internal/air"
	"github.com/hashicorp/go-multierror"
	"github.com/powerman/structlog"
)

var ErrTooManyPoints = merry.New("too many points")

type Grid struct {
	Property  air.Property `json:"property"`
	Pressures []float64    `json:"pressures"`
	TFrom     float64      `json:"t_from"`
	TTo       float64      `json:"t_to"`
	TStep     float64      `json:"t_step"`
}

func (g Grid) Validate() error {
	var mErr *multierror.Error
	if !g.Property.Valid() {
		mErr = multierror.Append(mErr, merry.Errorf("unknown property %d", int(g.Property)))
	}
	if len(g.Pressures) == 0 {
		mErr = multierror.Append(mErr, merry.New("no pressures"))
	}
	for _, p := range g.Pressures {
		if math.IsNaN(p) || math.IsInf(p, 0) {
			mErr = multierror.Append(mErr, merry.Errorf("pressure %v is not a finite number", p))
		}
	}
	switch {
	case math.IsNaN(g.TFrom) || math.IsNaN(g.TTo) || math.IsInf(g.TFrom, 0) || math.IsInf(g.TTo, 0):
		mErr = multierror.Append(mErr, merry.Errorf("temperature range %v..%v is not finite", g.TFrom, g.TTo))
	case g.TTo < g.TFrom:
		mErr = multierror.Append(mErr, merry.Errorf("t_to %v is less than t_from %v", g.TTo, g.TFrom))
	}
	if !(g.TStep > 0) || math.IsInf(g.TStep, 0) {
		mErr = multierror.Append(mErr, merry.Errorf("t_step %v must be positive", g.TStep))
	}
	return mErr.ErrorOrNil()
}

// MaxTemperatures bounds the number of temperatures of a grid.
const MaxTemperatures = math.MaxInt32

// Temperatures returns TFrom, TFrom+TStep, ... up to and including TTo, nil
// when the range is invalid or holds more than MaxTemperatures values.
// Values are computed from the step index so that errors do not accumulate.
func (g Grid) Temperatures() []float64 {
	n := g.numTemperatures()
	if n < 1 || n > MaxTemperatures {
		return nil
	}
	xs := make([]float64, int(n))
	for i := range xs {
		xs[i] = g.TFrom + float64(i)*g.TStep
	}
	return xs
}

// Len returns the number of grid points. It is computed without building the
// grid and may exceed the int range for a tiny step.
func (g Grid) Len() float64 {
	return float64(len(g.Pressures)) * g.numTemperatures()
}

// numTemperatures is zero for an invalid range and +Inf when the count
// overflows float64.
func (g Grid) numTemperatures() float64 {
	if !(g.TStep > 0) || math.IsInf(g.TStep, 0) || !(g.TTo >= g.TFrom) ||
		math.IsInf(g.TFrom, 0) || math.IsInf(g.TTo, 0) {
		return 0
	}
	return math.Floor((g.TTo-g.TFrom)/g.TStep+1e-9) + 1
}

type Point struct {
	P     float64 `json:"p"`
	T     float64 `json:"t"`
	Value float64 `json:"value"`
	Err   error   `json:"-"`
}

// Kind returns the failure kind of the point, empty for a valid point.
func (x Point) Kind() string {
	if x.Err == nil {
		return ""
	}
	if k := air.Kind(x.Err); k != "" {
		return k
	}
	return "error"
}

// Run evaluates every point of the grid with the given number of workers.
// Points are returned pressure-major in grid order. A cancelled ctx stops the
// evaluation and its error is returned together with nil points.
func Run(ctx context.Context, g Grid, workers, maxPoints int) ([]Point, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	if maxPoints <= 0 || maxPoints > MaxTemperatures {
		maxPoints = MaxTemperatures
	}
	if total := g.Len(); math.IsNaN(total) || total > float64(maxPoints) {
		return nil, ErrTooManyPoints.Here().Appendf("%g, at most %d allowed", total, maxPoints)
	}
	ts := g.Temperatures()
	n := len(g.Pressures) * len(ts)
	if workers < 1 {
		workers = 1
	}
	if workers > n {
		workers = n
	}
	table := air.TableOf(g.Property)
	points := make([]Point, n)
	for i := range points {
		points[i].P = g.Pressures[i/len(ts)]
		points[i].T = ts[i%len(ts)]
	}

	log.Debug("start", "property", g.Property, "points", n, "workers", workers)

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				x := &points[i]
				x.Value, x.Err = table.Interpolate(x.P, x.T)
			}
		}()
	}

	var err error
loop:
	for i := range points {
		select {
		case <-ctx.Done():
			err = merry.Prepend(ctx.Err(), "sweep interrupted")
			break loop
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()
	if err != nil {
		return nil, err
	}
	log.Debug("done", "property", g.Property, "points", n)
	return points, nil
}

// Stats counts points by failure kind, valid points under the empty kind.
type Stats map[string]int

func Summarize(points []Point) Stats {
	m := make(Stats)
	for _, x := range points {
		m[x.Kind()]++
	}
	return m
}

func (m Stats) Valid() int {
	return m[""]
}

// Failed returns the number of invalid points.
func (m Stats) Failed() (n int) {
	for k, v := range m {
		if k != "" {
			n += v
		}
	}
	return
}

// Kinds returns failure kinds present in m, sorted.
func (m Stats) Kinds() []string {
	var xs []string
	for k := range m {
		if k != "" {
			xs = append(xs, k)
		}
	}
	sort.Strings(xs)
	return xs
}

var log = structlog.New(structlog.KeyUnit, "sweep")
