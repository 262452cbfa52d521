package gamemath

import "github.com/ojrac/opensimplex-go"

// Noise is a deterministic smooth noise field returning values in [0, 1).
type Noise interface {
	Eval2(x, y float64) float64
	Eval3(x, y, z float64) float64
}

// Uniform is a uniform random source over [0, 1).
type Uniform interface {
	Float64() float64
}

// NewSimplexNoise returns an OpenSimplex field normalized to [0, 1).
func NewSimplexNoise(seed int64) Noise {
	return opensimplex.NewNormalized(seed)
}

// RandRange returns a uniform value in [lo, hi).
func RandRange(u Uniform, lo, hi float64) float64 {
	return lo + u.Float64()*(hi-lo)
}
