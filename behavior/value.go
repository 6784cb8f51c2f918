package behavior

import (
	"errors"
	"fmt"
)

var ErrInvalidRange = errors.New("behavior: range min exceeds max")

// Value is a number that is either fixed or sampled uniformly from
// [Min, Max] on every Get. It keeps no state between queries.
type Value struct {
	Fixed  float64
	Random bool
	Min    float64
	Max    float64
}

func Fixed(v float64) Value {
	return Value{Fixed: v}
}

func Range(min, max float64) Value {
	return Value{Random: true, Min: min, Max: max}
}

// Get returns the fixed value or a fresh sample.
func (v Value) Get(r Rand) float64 {
	if !v.Random {
		return v.Fixed
	}
	if r == nil || v.Max == v.Min {
		return v.Min
	}
	return v.Min + r.Float64()*(v.Max-v.Min)
}

// Lowest is the smallest value Get can return.
func (v Value) Lowest() float64 {
	if v.Random {
		return v.Min
	}
	return v.Fixed
}

func (v Value) Validate() error {
	if v.Random && v.Min > v.Max {
		return fmt.Errorf("%w: [%g, %g]", ErrInvalidRange, v.Min, v.Max)
	}
	return nil
}

func (v Value) String() string {
	if v.Random {
		return fmt.Sprintf("[%g, %g]", v.Min, v.Max)
	}
	return fmt.Sprintf("%g", v.Fixed)
}
