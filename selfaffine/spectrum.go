package selfaffine

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-surface/core"
	"github.com/cwbudde/algo-vecmath"
)

// Spectrum is an immutable N×N Hermitian frequency-domain array stored
// row-major. Index i > N/2 along an axis stands for the negative frequency
// i-N.
type Spectrum struct {
	n    int
	bins []complex128
}

// contribution is a set of bins written by one synthesis pass.
type contribution struct {
	n   int
	idx []int
	val []complex128
}

func (c *contribution) set(i, j int, v complex128) {
	c.idx = append(c.idx, i*c.n+j)
	c.val = append(c.val, v)
}

// BuildSpectrum fills the spectrum for r from the random streams s.
//
// The axis pass covers i, j in [0, N/2] together with their mirrors; the
// interior pass covers the two remaining quadrants with independent draws.
// The passes write disjoint bins and are merged once.
func BuildSpectrum(r Resolved, s Streams) (*Spectrum, error) {
	if !core.IsPowerOfTwo(r.N) || r.N < 2 {
		return nil, fmt.Errorf("%w: grid size must be a power of two >= 2: %d", ErrInvalidParameter, r.N)
	}
	if s.Side != r.N/2+1 {
		return nil, fmt.Errorf("%w: random streams sized for %d, want %d", ErrInvalidParameter, s.Side, r.N/2+1)
	}

	axes := axisPass(r, s)
	interior := interiorPass(r, s)

	bins := make([]complex128, r.N*r.N)
	for _, c := range []contribution{axes, interior} {
		for k, idx := range c.idx {
			v := c.val[k]
			if cmplx.IsInf(v) || cmplx.IsNaN(v) {
				return nil, fmt.Errorf("%w: bin (%d,%d)", ErrNumericOverflow, idx/r.N, idx%r.N)
			}
			bins[idx] = v
		}
	}

	return &Spectrum{n: r.N, bins: bins}, nil
}

// amplitude returns the band-limited complex amplitude of one bin.
// The origin carries no energy; frequencies below F0 use F0, and
// frequencies above F1 are removed.
func (r Resolved) amplitude(i, j int, z, u float64) complex128 {
	phase := 2 * math.Pi * u
	f := RelativeFrequency(i, j, r.N)
	rad := 0.0
	if i != 0 || j != 0 {
		if f < r.F0 {
			f = r.F0
		}
		rad = z * math.Pow(f, r.Power)
	}
	if f > r.F1 {
		rad, phase = 0, 0
	}
	if rad == 0 {
		// 0·cos(phase) is -0 for half the phases.
		return 0
	}
	return complex(rad*math.Cos(phase), rad*math.Sin(phase))
}

func axisPass(r Resolved, s Streams) contribution {
	n, half := r.N, r.N/2
	c := contribution{n: n}
	for i := 0; i <= half; i++ {
		for j := 0; j <= half; j++ {
			v := r.amplitude(i, j, s.at(s.Norm1, i, j), s.at(s.Unif1, i, j))
			i0, j0 := MirrorIndex(i, n), MirrorIndex(j, n)
			if i0 == i && j0 == j {
				// (0,0), (N/2,0), (0,N/2) and (N/2,N/2) are their own mirror.
				c.set(i, j, complex(real(v), 0))
				continue
			}
			c.set(i, j, v)
			c.set(i0, j0, cmplx.Conj(v))
		}
	}
	return c
}

func interiorPass(r Resolved, s Streams) contribution {
	n, half := r.N, r.N/2
	c := contribution{n: n}
	for i := 1; i < half; i++ {
		for j := 1; j < half; j++ {
			v := r.amplitude(i, j, s.at(s.Norm2, i, j), s.at(s.Unif2, i, j))
			c.set(i, n-j, v)
			c.set(n-i, j, cmplx.Conj(v))
		}
	}
	return c
}

// Size returns N.
func (s *Spectrum) Size() int { return s.n }

// At returns the bin at row i, column j.
func (s *Spectrum) At(i, j int) complex128 { return s.bins[i*s.n+j] }

// Bins returns a row-major copy of the bins.
func (s *Spectrum) Bins() []complex128 {
	out := make([]complex128, len(s.bins))
	copy(out, s.bins)
	return out
}

// RelativeFrequency returns the relative frequency of bin (i, j).
func (s *Spectrum) RelativeFrequency(i, j int) float64 {
	return RelativeFrequency(i, j, s.n)
}

// Magnitude returns |A| for every bin, row-major.
func (s *Spectrum) Magnitude() []float64 {
	re, im := s.parts()
	out := make([]float64, len(s.bins))
	vecmath.Magnitude(out, re, im)
	return out
}

// Power returns |A|² for every bin, row-major.
func (s *Spectrum) Power() []float64 {
	re, im := s.parts()
	out := make([]float64, len(s.bins))
	vecmath.Power(out, re, im)
	return out
}

// MaxHermitianError returns max |A[i,j] - conj(A[-i,-j])| over all bins.
// It is exactly zero for spectra built by [BuildSpectrum].
func (s *Spectrum) MaxHermitianError() float64 {
	worst := 0.0
	for i := 0; i < s.n; i++ {
		for j := 0; j < s.n; j++ {
			mirror := s.At(MirrorIndex(i, s.n), MirrorIndex(j, s.n))
			if d := cmplx.Abs(s.At(i, j) - cmplx.Conj(mirror)); d > worst {
				worst = d
			}
		}
	}
	return worst
}

func (s *Spectrum) parts() (re, im []float64) {
	re = make([]float64, len(s.bins))
	im = make([]float64, len(s.bins))
	for i, v := range s.bins {
		re[i] = real(v)
		im[i] = imag(v)
	}
	return re, im
}
