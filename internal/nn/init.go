package nn

import (
	"math"
	"math/rand/v2"

	"github.com/born-ml/snail/internal/matrix"
)

// Initializer creates the initial weight matrix of a layer with fanIn rows
// and fanOut columns.
type Initializer func(rng *rand.Rand, fanIn, fanOut int) *matrix.Matrix

// Uniform draws every weight from U(-1, 1). It is the default.
func Uniform(rng *rand.Rand, fanIn, fanOut int) *matrix.Matrix {
	return matrix.RandWith(rng, fanIn, fanOut)
}

// Xavier (Glorot) initialization for weights.
//
// Initializes weights with values drawn from a uniform distribution:
// U(-sqrt(6/(fan_in + fan_out)), sqrt(6/(fan_in + fan_out)))
func Xavier(rng *rand.Rand, fanIn, fanOut int) *matrix.Matrix {
	bound := math.Sqrt(6.0 / float64(fanIn+fanOut))
	m := matrix.RandWith(rng, fanIn, fanOut)
	m.Scale(bound)
	return m
}
