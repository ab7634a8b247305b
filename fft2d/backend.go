package fft2d

import (
	"errors"
	"fmt"
	"sort"
)

// Errors returned by backends.
var (
	ErrInvalidSize     = errors.New("fft2d: size must be a power of two")
	ErrLengthMismatch  = errors.New("fft2d: buffer shorter than n*n")
	ErrUnknownBackend  = errors.New("fft2d: unknown backend")
	ErrTransformFailed = errors.New("fft2d: transform failed")
)

// Backend computes square 2D transforms. dst and src hold at least n*n
// row-major bins and may alias.
type Backend interface {
	Name() string
	Forward(dst, src []complex128, n int) error
	Inverse(dst, src []complex128, n int) error
}

// Registered backends.
var (
	AlgoFFT Backend = algoFFTBackend{}
	Gonum   Backend = gonumBackend{}
	GoDSP   Backend = goDSPBackend{}
)

var registry = map[string]Backend{
	AlgoFFT.Name(): AlgoFFT,
	Gonum.Name():   Gonum,
	GoDSP.Name():   GoDSP,
}

// Default returns the backend used when none is configured.
func Default() Backend {
	return AlgoFFT
}

// ByName looks up a backend by its Name.
func ByName(name string) (Backend, error) {
	b, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, name)
	}
	return b, nil
}

// Names lists registered backend names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func validate(dst, src []complex128, n int) error {
	if n <= 0 || n&(n-1) != 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSize, n)
	}
	size := n * n
	if len(dst) < size || len(src) < size {
		return fmt.Errorf("%w: dst=%d src=%d need=%d", ErrLengthMismatch, len(dst), len(src), size)
	}
	return nil
}

// columns applies fn to every column of the n×n grid in place, gathering
// each column into scratch first.
func columns(grid []complex128, n int, fn func(col []complex128) error) error {
	col := make([]complex128, n)
	for c := 0; c < n; c++ {
		for r := 0; r < n; r++ {
			col[r] = grid[r*n+c]
		}
		if err := fn(col); err != nil {
			return err
		}
		for r := 0; r < n; r++ {
			grid[r*n+c] = col[r]
		}
	}
	return nil
}
