package testutil

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"
)

// Mean returns the arithmetic mean of data.
func Mean(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	return floats.Sum(data) / float64(len(data))
}

// RMS returns the root-mean-square of data.
func RMS(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	return math.Sqrt(floats.Dot(data, data) / float64(len(data)))
}

// DeterministicField returns n*n row-major samples of uniform noise in
// [-amplitude, amplitude] drawn from a fixed seed.
func DeterministicField(seed int64, amplitude float64, n int) []float64 {
	out := make([]float64, n*n)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// DeterministicBins returns n*n complex bins with independent uniform real
// and imaginary parts in [-1, 1].
func DeterministicBins(seed int64, n int) []complex128 {
	out := make([]complex128, n*n)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = complex(rng.Float64()*2-1, rng.Float64()*2-1)
	}
	return out
}

// Plane returns n*n row-major samples of the plane offset + a*i + b*j.
func Plane(n int, offset, a, b float64) []float64 {
	out := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			out[i*n+j] = offset + a*float64(i) + b*float64(j)
		}
	}
	return out
}
