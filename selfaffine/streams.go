package selfaffine

import "math/rand"

// Streams holds the four (N/2+1)×(N/2+1) random matrices consumed by
// [BuildSpectrum], stored row-major. Norm1 and Unif1 drive the first pass,
// Norm2 and Unif2 the interior pass.
type Streams struct {
	Side  int // N/2+1
	Norm1 []float64
	Norm2 []float64
	Unif1 []float64
	Unif2 []float64
}

// NewStreams draws Norm1, Norm2, Unif1 and Unif2 from rng, in that order,
// for an n×n spectrum.
func NewStreams(rng *rand.Rand, n int) Streams {
	side := n/2 + 1
	s := Streams{Side: side}
	s.Norm1 = normal(rng, side*side)
	s.Norm2 = normal(rng, side*side)
	s.Unif1 = uniform(rng, side*side)
	s.Unif2 = uniform(rng, side*side)
	return s
}

func (s Streams) at(m []float64, i, j int) float64 {
	return m[i*s.Side+j]
}

func normal(rng *rand.Rand, size int) []float64 {
	out := make([]float64, size)
	for i := range out {
		out[i] = rng.NormFloat64()
	}
	return out
}

func uniform(rng *rand.Rand, size int) []float64 {
	out := make([]float64, size)
	for i := range out {
		out[i] = rng.Float64()
	}
	return out
}
