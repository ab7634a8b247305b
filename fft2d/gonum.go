package fft2d

import (
	"gonum.org/v1/gonum/dsp/fourier"
)

type gonumBackend struct{}

func (gonumBackend) Name() string { return "gonum" }

func (b gonumBackend) Forward(dst, src []complex128, n int) error {
	return b.transform(dst, src, n, false)
}

func (b gonumBackend) Inverse(dst, src []complex128, n int) error {
	return b.transform(dst, src, n, true)
}

func (gonumBackend) transform(dst, src []complex128, n int, inverse bool) error {
	if err := validate(dst, src, n); err != nil {
		return err
	}

	fft := fourier.NewCmplxFFT(n)
	run := fft.Coefficients
	if inverse {
		// Sequence is unnormalised.
		run = fft.Sequence
	}

	size := n * n
	grid := dst[:size]
	copy(grid, src[:size])

	for r := 0; r < n; r++ {
		row := grid[r*n : (r+1)*n]
		run(row, row)
	}

	if err := columns(grid, n, func(col []complex128) error {
		run(col, col)
		return nil
	}); err != nil {
		return err
	}

	if inverse {
		scale := complex(1/float64(size), 0)
		for i := range grid {
			grid[i] *= scale
		}
	}

	return nil
}
