package surface

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"
)

// PropertyRMS names the root-mean-square height for [Surface.ScaleToProperty].
const PropertyRMS = "rms"

// Surface is an n×n height field stored row-major with uniform grid spacing.
type Surface struct {
	n       int
	spacing float64
	heights []float64
}

// New creates a surface from n*n row-major heights sampled at spacing.
func New(heights []float64, n int, spacing float64) (*Surface, error) {
	if err := validateShape(heights, n); err != nil {
		return nil, err
	}
	if !(spacing > 0) || math.IsInf(spacing, 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSpacing, spacing)
	}

	h := make([]float64, len(heights))
	copy(h, heights)

	return &Surface{n: n, spacing: spacing, heights: h}, nil
}

// Size returns the number of samples along one side.
func (s *Surface) Size() int { return s.n }

// Spacing returns the grid spacing.
func (s *Surface) Spacing() float64 { return s.spacing }

// Length returns the physical side length of the sampled domain.
func (s *Surface) Length() float64 { return float64(s.n) * s.spacing }

// At returns the height at row i, column j.
func (s *Surface) At(i, j int) float64 { return s.heights[i*s.n+j] }

// Heights returns a row-major copy of the samples.
func (s *Surface) Heights() []float64 {
	out := make([]float64, len(s.heights))
	copy(out, s.heights)
	return out
}

// Rows returns the samples as a freshly allocated matrix.
func (s *Surface) Rows() [][]float64 {
	out := make([][]float64, s.n)
	for i := range out {
		out[i] = make([]float64, s.n)
		copy(out[i], s.heights[i*s.n:(i+1)*s.n])
	}
	return out
}

// RMS returns the root-mean-square height.
func (s *Surface) RMS() float64 {
	return math.Sqrt(floats.Dot(s.heights, s.heights) / float64(len(s.heights)))
}

// Mean returns the mean height.
func (s *Surface) Mean() float64 {
	// Kahan summation keeps the zero-mean check tight on large grids.
	var sum, c float64
	for _, x := range s.heights {
		y := x - c
		t := sum + y
		c = (t - sum) - y
		sum = t
	}

	return sum / float64(len(s.heights))
}

// Property returns the value of a named property.
func (s *Surface) Property(name string) (float64, error) {
	switch name {
	case PropertyRMS:
		return s.RMS(), nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownProperty, name)
	}
}

// ScaleToProperty multiplies every sample by a single factor so that the
// named property equals target. The surface is modified in place.
func (s *Surface) ScaleToProperty(name string, target float64) error {
	if target < 0 || math.IsNaN(target) || math.IsInf(target, 0) {
		return fmt.Errorf("%w: %v", ErrNegativeTarget, target)
	}

	current, err := s.Property(name)
	if err != nil {
		return err
	}

	if current == 0 {
		if target == 0 {
			return nil
		}
		return fmt.Errorf("%w: %s", ErrZeroProperty, name)
	}

	vecmath.ScaleBlock(s.heights, s.heights, target/current)
	return nil
}

// ShiftToZeroMean subtracts the mean height from every sample.
func (s *Surface) ShiftToZeroMean() {
	floats.AddConst(-s.Mean(), s.heights)
}
