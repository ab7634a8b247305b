package selfaffine

import "errors"

// Errors returned by synthesis. Resolution failures wrap ErrInvalidParameter
// or ErrNumericOverflow and are reported before any random draw.
var (
	ErrInvalidParameter  = errors.New("selfaffine: invalid parameter")
	ErrNumericOverflow   = errors.New("selfaffine: power-law magnitude overflows")
	ErrSymmetryViolation = errors.New("selfaffine: inverse transform is not real")
)
