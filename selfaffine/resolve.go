package selfaffine

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-surface/core"
)

// MaxPowerOfTwo bounds the grid exponent; 2^14 squared complex bins already
// need 4 GiB.
const MaxPowerOfTwo = 14

// Resolved holds the scalars derived from the parameters and grid size.
// Frequencies are relative (cycles per sample).
type Resolved struct {
	N       int     // samples per side, 2^powerOfTwo
	L       float64 // side length
	Spacing float64 // L/N
	Hurst   float64
	HRMS    float64
	Power   float64 // -(hurst+1)
	QL      float64 // 2π/L, angular frequency of the fundamental
	FL      float64 // 1/N, relative frequency of the fundamental
	FD      float64 // sqrt(2·0.5²), relative frequency of the diagonal Nyquist bin
	F0      float64 // high-pass flattening bound
	F1      float64 // low-pass cutoff
}

// Resolve validates params and derives the synthesis scalars for a
// 2^powerOfTwo grid.
func Resolve(params core.SelfAffineParams, powerOfTwo int) (Resolved, error) {
	if powerOfTwo < 1 || powerOfTwo > MaxPowerOfTwo {
		return Resolved{}, fmt.Errorf("%w: power of two must be in [1,%d]: %d",
			ErrInvalidParameter, MaxPowerOfTwo, powerOfTwo)
	}
	if len(params.Dimensions) == 0 {
		return Resolved{}, fmt.Errorf("%w: dimensions must not be empty", ErrInvalidParameter)
	}

	l := params.Dimensions[0]
	if !(l > 0) || math.IsInf(l, 0) {
		return Resolved{}, fmt.Errorf("%w: side length must be finite and > 0: %v", ErrInvalidParameter, l)
	}
	if !core.IsFinite(params.Hurst) {
		return Resolved{}, fmt.Errorf("%w: hurst exponent must be finite: %v", ErrInvalidParameter, params.Hurst)
	}
	if params.HRMS < 0 || !core.IsFinite(params.HRMS) {
		return Resolved{}, fmt.Errorf("%w: target rms must be finite and >= 0: %v", ErrInvalidParameter, params.HRMS)
	}

	ratio0, ratio1 := params.Rolloff0(), params.Rolloff1()
	if math.IsNaN(ratio0) || math.IsNaN(ratio1) {
		return Resolved{}, fmt.Errorf("%w: rolloff ratios must not be NaN", ErrInvalidParameter)
	}
	if ratio0 <= 0 {
		return Resolved{}, fmt.Errorf("%w: short-wavelength rolloff must be > 0: %v", ErrInvalidParameter, ratio0)
	}
	if ratio0 > ratio1 {
		return Resolved{}, fmt.Errorf("%w: short-wavelength rolloff %v exceeds long-wavelength rolloff %v",
			ErrInvalidParameter, ratio0, ratio1)
	}
	if ratio1 < 1 {
		// Every non-zero mode has f >= 1/N > f1.
		return Resolved{}, fmt.Errorf("%w: long-wavelength rolloff %v removes every mode", ErrInvalidParameter, ratio1)
	}

	n := 1 << powerOfTwo
	r := Resolved{
		N:       n,
		L:       l,
		Spacing: l / float64(n),
		Hurst:   params.Hurst,
		HRMS:    params.HRMS,
		Power:   -(params.Hurst + 1),
		QL:      2 * math.Pi / l,
		FL:      1 / float64(n),
		FD:      math.Sqrt(2 * 0.5 * 0.5),
	}
	r.F0 = r.FL * ratio0
	r.F1 = r.FL * ratio1

	if !(r.F0 > 0) || math.IsInf(r.F0, 0) {
		return Resolved{}, fmt.Errorf("%w: flattening bound f0 must be finite and > 0: %v", ErrNumericOverflow, r.F0)
	}
	// Magnitudes are monotone in f, so the extremes sit at f0 and at the
	// diagonal Nyquist frequency.
	for _, f := range []float64{r.F0, r.FD} {
		if v := math.Pow(f, r.Power); !core.IsFinite(v) {
			return Resolved{}, fmt.Errorf("%w: %v^%v", ErrNumericOverflow, f, r.Power)
		}
	}
	// Flattened frequencies span [f0, max(f0, fd)]; if both ends vanish so does every mode.
	if math.Max(math.Pow(r.F0, r.Power), math.Pow(math.Max(r.F0, r.FD), r.Power)) == 0 {
		return Resolved{}, fmt.Errorf("%w: %v^%v underflows to zero", ErrNumericOverflow, r.F0, r.Power)
	}

	return r, nil
}
