// Package fft2d provides two-dimensional discrete Fourier transforms over
// square, row-major []complex128 grids.
//
// The package does not implement an FFT itself. Each [Backend] runs
// one-dimensional transforms from an external library along rows and then
// columns. All backends share the numpy convention: Forward is unnormalised
// and Inverse divides by n², so Inverse(Forward(x)) == x.
//
// [AlgoFFT] is the default. [Gonum] and [GoDSP] exist to cross-check results
// and for callers that already depend on those libraries; they agree with
// the default within floating-point tolerance, not bit for bit.
package fft2d
