package air

import (
	"fmt"
	"math"
)

// Decade is a pressure magnitude 10^Decade atm at which the curve fits are tabulated.
type Decade int

const (
	MinDecade Decade = -4
	MaxDecade Decade = 2

	NumDecades = int(MaxDecade-MinDecade) + 1
)

// Decades lists every tabulated decade in increasing order.
var Decades = [NumDecades]Decade{-4, -3, -2, -1, 0, 1, 2}

func (d Decade) Valid() bool {
	return d >= MinDecade && d <= MaxDecade
}

// Index returns the position of d in Decades.
func (d Decade) Index() int {
	return int(d - MinDecade)
}

// Pressure returns the decade pressure, atm.
func (d Decade) Pressure() float64 {
	return math.Pow(10, float64(d))
}

func (d Decade) String() string {
	return fmt.Sprintf("1e%d", int(d))
}
