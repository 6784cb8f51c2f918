package behavior

// Rand is the random source consumed by sampling and direction selection.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	Float64() float64
	IntN(n int) int
}
