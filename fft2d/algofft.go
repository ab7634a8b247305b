package fft2d

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
)

type algoFFTBackend struct{}

func (algoFFTBackend) Name() string { return "algo-fft" }

func (b algoFFTBackend) Forward(dst, src []complex128, n int) error {
	return b.transform(dst, src, n, false)
}

func (b algoFFTBackend) Inverse(dst, src []complex128, n int) error {
	return b.transform(dst, src, n, true)
}

func (algoFFTBackend) transform(dst, src []complex128, n int, inverse bool) error {
	if err := validate(dst, src, n); err != nil {
		return err
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return fmt.Errorf("fft2d: failed to create FFT plan: %w", err)
	}

	// The plan's inverse already divides by n per axis.
	run := plan.Forward
	if inverse {
		run = plan.Inverse
	}

	size := n * n
	copy(dst[:size], src[:size])

	for r := 0; r < n; r++ {
		row := dst[r*n : (r+1)*n]
		if err := run(row, row); err != nil {
			return fmt.Errorf("%w: row %d: %w", ErrTransformFailed, r, err)
		}
	}

	return columns(dst[:size], n, func(col []complex128) error {
		if err := run(col, col); err != nil {
			return fmt.Errorf("%w: column: %w", ErrTransformFailed, err)
		}
		return nil
	})
}
