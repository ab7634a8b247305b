package selfaffine

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-surface/fft2d"
)

// DefaultSymmetryTolerance bounds max|imag| relative to max|real| of the
// inverse transform.
const DefaultSymmetryTolerance = 1e-8

// HeightField inverse-transforms spec with backend and returns the real part,
// row-major. It fails with ErrSymmetryViolation if the imaginary residue
// exceeds tol relative to the field amplitude.
func HeightField(spec *Spectrum, backend fft2d.Backend, tol float64) ([]float64, error) {
	n := spec.n
	out := make([]complex128, n*n)
	if err := backend.Inverse(out, spec.bins, n); err != nil {
		return nil, fmt.Errorf("selfaffine: inverse transform (%s): %w", backend.Name(), err)
	}

	heights := make([]float64, n*n)
	var maxRe, maxIm float64
	for i, v := range out {
		heights[i] = real(v)
		maxRe = math.Max(maxRe, math.Abs(real(v)))
		maxIm = math.Max(maxIm, math.Abs(imag(v)))
	}

	if maxIm > tol*maxRe {
		return nil, fmt.Errorf("%w: max imaginary %g vs max real %g", ErrSymmetryViolation, maxIm, maxRe)
	}

	return heights, nil
}
