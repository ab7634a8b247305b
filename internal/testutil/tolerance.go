package testutil

import (
	"fmt"
	"math"
	"math/cmplx"
	"testing"

	"gonum.org/v1/gonum/floats"
)

// requireClose walks got and want in step and stops t at the first pair
// whose distance exceeds eps.
func requireClose[T any](t *testing.T, got, want []T, eps float64, dist func(a, b T) float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i, g := range got {
		if d := dist(g, want[i]); d > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, g, want[i], d, eps)
		}
	}
}

// RequireSliceNearlyEqual fails t unless got and want match element-wise
// within the absolute tolerance eps.
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	requireClose(t, got, want, eps, func(a, b float64) float64 { return math.Abs(a - b) })
}

// RequireComplexNearlyEqual compares complex bins by |got-want|.
func RequireComplexNearlyEqual(t *testing.T, got, want []complex128, eps float64) {
	t.Helper()
	requireClose(t, got, want, eps, func(a, b complex128) float64 { return cmplx.Abs(a - b) })
}

// RequireFinite stops t at the first NaN or Inf sample.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// MaxAbsDiff is the L-infinity distance between a and b.
func MaxAbsDiff(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	return floats.Distance(a, b, math.Inf(1)), nil
}

// MaxAbs returns max |x| over data, 0 for an empty slice.
func MaxAbs(data []float64) float64 {
	return floats.Norm(data, math.Inf(1))
}
