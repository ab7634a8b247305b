package fft2d

import (
	"github.com/mjibson/go-dsp/fft"
)

type goDSPBackend struct{}

func (goDSPBackend) Name() string { return "go-dsp" }

func (goDSPBackend) Forward(dst, src []complex128, n int) error {
	if err := validate(dst, src, n); err != nil {
		return err
	}
	scatter(dst, fft.FFT2(gather(src, n)), n)
	return nil
}

// Inverse uses fft.IFFT2, which normalises each axis.
func (goDSPBackend) Inverse(dst, src []complex128, n int) error {
	if err := validate(dst, src, n); err != nil {
		return err
	}
	scatter(dst, fft.IFFT2(gather(src, n)), n)
	return nil
}

func gather(src []complex128, n int) [][]complex128 {
	m := make([][]complex128, n)
	for r := range m {
		m[r] = make([]complex128, n)
		copy(m[r], src[r*n:(r+1)*n])
	}
	return m
}

func scatter(dst []complex128, m [][]complex128, n int) {
	for r := 0; r < n; r++ {
		copy(dst[r*n:(r+1)*n], m[r])
	}
}
