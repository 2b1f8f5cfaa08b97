package drone

import (
	"math"

	"golang.org/x/exp/rand"
)

// Rand is the random source a controller draws headings and rolls from.
// Each controller owns its own so runs are reproducible from one seed.
type Rand interface {
	Float64() float64
	Uint64() uint64
}

func NewRand(seed uint64) Rand {
	return rand.New(rand.NewSource(seed))
}

// randomHeading returns a uniformly distributed angle in [0, 2π).
func randomHeading(rng Rand) float64 {
	return 2 * math.Pi * rng.Float64()
}

// child derives an independent source for a controller commissioned by
// the owner of rng.
func child(rng Rand) Rand {
	return NewRand(rng.Uint64())
}
