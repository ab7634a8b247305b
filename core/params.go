package core

import "math"

// SelfAffineParams describes the statistics of a self-affine rough surface.
//
// Only Dimensions[0], the side length of the square domain, is used by the
// synthesiser. Nil rolloff ratios mean "no rolloff": the short-wavelength
// ratio defaults to 1 and the long-wavelength ratio to [math.MaxFloat64].
type SelfAffineParams struct {
	Hurst      float64
	HRMS       float64
	Dimensions []float64

	// LambdaLOverLambda0 is the ratio of domain length to the short-wavelength
	// rolloff. Frequencies below it are flattened.
	LambdaLOverLambda0 *float64
	// LambdaLOverLambda1 is the ratio of domain length to the long-wavelength
	// rolloff. Frequencies above it are removed.
	LambdaLOverLambda1 *float64
}

// SelfAffineOption mutates a SelfAffineParams.
type SelfAffineOption func(*SelfAffineParams)

// DefaultSelfAffineParams returns a unit square with hurst 0.8, unit RMS
// height and no rolloffs.
func DefaultSelfAffineParams() SelfAffineParams {
	return SelfAffineParams{
		Hurst:      0.8,
		HRMS:       1,
		Dimensions: []float64{1, 1},
	}
}

// WithHurst sets the Hurst exponent.
func WithHurst(hurst float64) SelfAffineOption {
	return func(p *SelfAffineParams) {
		if IsFinite(hurst) {
			p.Hurst = hurst
		}
	}
}

// WithHRMS sets the target RMS height.
func WithHRMS(hrms float64) SelfAffineOption {
	return func(p *SelfAffineParams) {
		if hrms >= 0 && IsFinite(hrms) {
			p.HRMS = hrms
		}
	}
}

// WithSideLength sets a square domain of side length l.
func WithSideLength(l float64) SelfAffineOption {
	return func(p *SelfAffineParams) {
		if l > 0 && IsFinite(l) {
			p.Dimensions = []float64{l, l}
		}
	}
}

// WithRolloff0 sets the short-wavelength rolloff ratio λL/λ0.
func WithRolloff0(ratio float64) SelfAffineOption {
	return func(p *SelfAffineParams) {
		if ratio > 0 && !math.IsNaN(ratio) {
			r := ratio
			p.LambdaLOverLambda0 = &r
		}
	}
}

// WithRolloff1 sets the long-wavelength rolloff ratio λL/λ1.
func WithRolloff1(ratio float64) SelfAffineOption {
	return func(p *SelfAffineParams) {
		if ratio > 0 && !math.IsNaN(ratio) {
			r := ratio
			p.LambdaLOverLambda1 = &r
		}
	}
}

// NewSelfAffineParams applies zero or more options to the defaults.
func NewSelfAffineParams(opts ...SelfAffineOption) SelfAffineParams {
	p := DefaultSelfAffineParams()
	for _, opt := range opts {
		if opt != nil {
			opt(&p)
		}
	}
	return p
}

// Rolloff0 returns λL/λ0, or 1 when unset.
func (p SelfAffineParams) Rolloff0() float64 {
	if p.LambdaLOverLambda0 == nil {
		return 1
	}
	return *p.LambdaLOverLambda0
}

// Rolloff1 returns λL/λ1, or [math.MaxFloat64] when unset.
func (p SelfAffineParams) Rolloff1() float64 {
	if p.LambdaLOverLambda1 == nil {
		return math.MaxFloat64
	}
	return *p.LambdaLOverLambda1
}
