package selfaffine

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/cwbudde/algo-surface/core"
	"github.com/cwbudde/algo-surface/fft2d"
	"github.com/cwbudde/algo-surface/surface"
)

// Generator synthesises self-affine surfaces from a shared configuration.
type Generator struct {
	seed      int64
	seeded    bool
	rng       *rand.Rand
	backend   fft2d.Backend
	tolerance float64
	logger    *slog.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed makes every call draw from a fresh generator seeded with seed,
// so repeated calls return identical surfaces.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
		g.seeded = true
	}
}

// WithRand draws from rng instead of a per-call generator. Successive calls
// continue the same stream. Takes precedence over WithSeed.
func WithRand(rng *rand.Rand) Option {
	return func(g *Generator) {
		if rng != nil {
			g.rng = rng
		}
	}
}

// WithBackend selects the 2D inverse transform.
func WithBackend(b fft2d.Backend) Option {
	return func(g *Generator) {
		if b != nil {
			g.backend = b
		}
	}
}

// WithSymmetryTolerance sets the relative imaginary residue accepted after
// the inverse transform.
func WithSymmetryTolerance(tol float64) Option {
	return func(g *Generator) {
		if tol > 0 {
			g.tolerance = tol
		}
	}
}

// WithLogger sets the logger for synthesis diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// NewGenerator creates a generator. Without WithSeed or WithRand every call
// is seeded nondeterministically.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		backend:   fft2d.Default(),
		tolerance: DefaultSymmetryTolerance,
		logger:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Backend returns the configured transform backend.
func (g *Generator) Backend() fft2d.Backend {
	return g.backend
}

func (g *Generator) random() *rand.Rand {
	switch {
	case g.rng != nil:
		return g.rng
	case g.seeded:
		return rand.New(rand.NewSource(g.seed))
	default:
		// The package-level source is safe for concurrent use.
		return rand.New(rand.NewSource(rand.Int63()))
	}
}

func (g *Generator) resolve(params core.SelfAffineParams, powerOfTwo int) (Resolved, error) {
	r, err := Resolve(params, powerOfTwo)
	if err != nil {
		return Resolved{}, err
	}
	if r.Hurst <= 0 || r.Hurst >= 1 {
		g.logger.Warn("hurst exponent outside (0,1)", "hurst", r.Hurst)
	}
	return r, nil
}

// Spectrum builds the band-limited Hermitian spectrum for a 2^powerOfTwo grid.
func (g *Generator) Spectrum(params core.SelfAffineParams, powerOfTwo int) (*Spectrum, error) {
	r, err := g.resolve(params, powerOfTwo)
	if err != nil {
		return nil, err
	}
	return BuildSpectrum(r, NewStreams(g.random(), r.N))
}

// Generate synthesises a surface: spectrum, inverse transform, rescale to
// params.HRMS, then shift to zero mean.
//
// The shift follows the rescale, so the final RMS equals HRMS only up to the
// pre-shift mean. The origin bin is zero, which keeps that mean at rounding
// level.
func (g *Generator) Generate(params core.SelfAffineParams, powerOfTwo int) (*surface.Surface, error) {
	r, err := g.resolve(params, powerOfTwo)
	if err != nil {
		return nil, err
	}

	g.logger.Debug("synthesizing self-affine surface",
		"n", r.N, "hurst", r.Hurst, "hrms", r.HRMS,
		"f0", r.F0, "f1", r.F1, "backend", g.backend.Name())

	spec, err := BuildSpectrum(r, NewStreams(g.random(), r.N))
	if err != nil {
		return nil, err
	}

	heights, err := HeightField(spec, g.backend, g.tolerance)
	if err != nil {
		return nil, err
	}

	s, err := surface.New(heights, r.N, r.Spacing)
	if err != nil {
		return nil, fmt.Errorf("selfaffine: %w", err)
	}
	if err := s.ScaleToProperty(surface.PropertyRMS, r.HRMS); err != nil {
		return nil, fmt.Errorf("selfaffine: normalise: %w", err)
	}
	s.ShiftToZeroMean()

	return s, nil
}

// Synthesize generates a self-affine surface on a 2^powerOfTwo grid.
func Synthesize(params core.SelfAffineParams, powerOfTwo int, opts ...Option) (*surface.Surface, error) {
	return NewGenerator(opts...).Generate(params, powerOfTwo)
}
