// Package selfaffine synthesises square height fields with the statistics
// of a self-affine (fractal) rough surface.
//
// Synthesis is spectral. A complex N×N spectrum is filled with power-law
// magnitudes |A(f)| ∝ z·f^-(H+1), where H is the Hurst exponent and z a
// standard normal draw, and uniformly random phases. Two relative-frequency
// cutoffs band-limit the spectrum: below f0 the magnitude is flattened to
// its value at f0, above f1 it is zero. The spectrum is Hermitian, so its
// inverse 2D transform is a real height field, which is finally rescaled to
// the target RMS height and shifted to zero mean.
//
// # Usage
//
//	params := core.NewSelfAffineParams(core.WithHurst(0.8), core.WithHRMS(1e-6))
//	s, err := selfaffine.Synthesize(params, 8, selfaffine.WithSeed(42))
//
// A [Generator] can be reused across calls. Generators configured with
// [WithSeed] or without any random source are safe for concurrent use; a
// generator built with [WithRand] consumes the caller's *rand.Rand and is
// only as safe as that generator.
//
// # Reproducibility
//
// The same seed yields bit-identical spectra. Height fields are
// bit-identical for the same seed and backend; different [fft2d.Backend]
// implementations agree within floating-point tolerance.
package selfaffine
