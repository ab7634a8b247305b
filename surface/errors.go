package surface

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyField      = errors.New("surface: empty height field")
	ErrShapeMismatch   = errors.New("surface: height count does not match grid size")
	ErrInvalidSpacing  = errors.New("surface: grid spacing must be finite and > 0")
	ErrUnknownProperty = errors.New("surface: unknown property")
	ErrZeroProperty    = errors.New("surface: cannot rescale a field whose property is zero")
	ErrNegativeTarget  = errors.New("surface: target must be finite and >= 0")
)

func validateShape(heights []float64, n int) error {
	if n <= 0 || len(heights) == 0 {
		return ErrEmptyField
	}
	if len(heights) != n*n {
		return fmt.Errorf("%w: got %d samples for %dx%d", ErrShapeMismatch, len(heights), n, n)
	}
	return nil
}
