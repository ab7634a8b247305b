package fft2d

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-surface/internal/testutil"
)

func allBackends() []Backend {
	return []Backend{AlgoFFT, Gonum, GoDSP}
}

func TestRoundTrip(t *testing.T) {
	for _, b := range allBackends() {
		for _, n := range []int{2, 4, 16, 64} {
			src := testutil.DeterministicBins(int64(n), n)
			freq := make([]complex128, n*n)
			back := make([]complex128, n*n)

			if err := b.Forward(freq, src, n); err != nil {
				t.Fatalf("%s n=%d: Forward error: %v", b.Name(), n, err)
			}
			if err := b.Inverse(back, freq, n); err != nil {
				t.Fatalf("%s n=%d: Inverse error: %v", b.Name(), n, err)
			}

			testutil.RequireComplexNearlyEqual(t, back, src, 1e-10)
		}
	}
}

func TestInverseOfDCIsConstant(t *testing.T) {
	const n = 8
	for _, b := range allBackends() {
		src := make([]complex128, n*n)
		src[0] = complex(float64(n*n), 0)
		dst := make([]complex128, n*n)

		if err := b.Inverse(dst, src, n); err != nil {
			t.Fatalf("%s: Inverse error: %v", b.Name(), err)
		}
		for i, v := range dst {
			if cmplx.Abs(v-1) > 1e-12 {
				t.Fatalf("%s: dst[%d]=%v want=1", b.Name(), i, v)
			}
		}
	}
}

func TestForwardOfImpulse(t *testing.T) {
	const n = 4
	for _, b := range allBackends() {
		src := make([]complex128, n*n)
		src[0] = 1
		dst := make([]complex128, n*n)

		if err := b.Forward(dst, src, n); err != nil {
			t.Fatalf("%s: Forward error: %v", b.Name(), err)
		}
		for i, v := range dst {
			if cmplx.Abs(v-1) > 1e-12 {
				t.Fatalf("%s: dst[%d]=%v want=1", b.Name(), i, v)
			}
		}
	}
}

func TestSingleModeInverse(t *testing.T) {
	// One bin at (1,2) inverts to exp(2πi(r+2c)/n)/n².
	const n = 8
	src := make([]complex128, n*n)
	src[1*n+2] = 1

	for _, b := range allBackends() {
		dst := make([]complex128, n*n)
		if err := b.Inverse(dst, src, n); err != nil {
			t.Fatalf("%s: Inverse error: %v", b.Name(), err)
		}
		for r := 0; r < n; r++ {
			for c := 0; c < n; c++ {
				phase := 2 * math.Pi * float64(r+2*c) / n
				want := cmplx.Rect(1/float64(n*n), phase)
				if cmplx.Abs(dst[r*n+c]-want) > 1e-12 {
					t.Fatalf("%s: (%d,%d)=%v want=%v", b.Name(), r, c, dst[r*n+c], want)
				}
			}
		}
	}
}

func TestBackendsAgree(t *testing.T) {
	const n = 32
	src := testutil.DeterministicBins(99, n)

	want := make([]complex128, n*n)
	if err := AlgoFFT.Inverse(want, src, n); err != nil {
		t.Fatalf("Inverse error: %v", err)
	}

	for _, b := range []Backend{Gonum, GoDSP} {
		got := make([]complex128, n*n)
		if err := b.Inverse(got, src, n); err != nil {
			t.Fatalf("%s: Inverse error: %v", b.Name(), err)
		}
		testutil.RequireComplexNearlyEqual(t, got, want, 1e-12)
	}
}

func TestInPlace(t *testing.T) {
	const n = 16
	for _, b := range allBackends() {
		src := testutil.DeterministicBins(5, n)
		buf := make([]complex128, n*n)
		copy(buf, src)

		if err := b.Forward(buf, buf, n); err != nil {
			t.Fatalf("%s: Forward error: %v", b.Name(), err)
		}
		if err := b.Inverse(buf, buf, n); err != nil {
			t.Fatalf("%s: Inverse error: %v", b.Name(), err)
		}
		testutil.RequireComplexNearlyEqual(t, buf, src, 1e-10)
	}
}

func TestValidation(t *testing.T) {
	for _, b := range allBackends() {
		buf := make([]complex128, 16)

		if err := b.Inverse(buf, buf, 3); !errors.Is(err, ErrInvalidSize) {
			t.Fatalf("%s: n=3 error = %v, want ErrInvalidSize", b.Name(), err)
		}
		if err := b.Inverse(buf, buf, 0); !errors.Is(err, ErrInvalidSize) {
			t.Fatalf("%s: n=0 error = %v, want ErrInvalidSize", b.Name(), err)
		}
		if err := b.Forward(buf, buf[:8], 4); !errors.Is(err, ErrLengthMismatch) {
			t.Fatalf("%s: short src error = %v, want ErrLengthMismatch", b.Name(), err)
		}
		if err := b.Inverse(buf[:15], buf, 4); !errors.Is(err, ErrLengthMismatch) {
			t.Fatalf("%s: short dst error = %v, want ErrLengthMismatch", b.Name(), err)
		}
	}
}

func TestByName(t *testing.T) {
	for _, name := range Names() {
		b, err := ByName(name)
		if err != nil {
			t.Fatalf("ByName(%q) error: %v", name, err)
		}
		if b.Name() != name {
			t.Fatalf("ByName(%q).Name() = %q", name, b.Name())
		}
	}

	if _, err := ByName("fftw"); !errors.Is(err, ErrUnknownBackend) {
		t.Fatalf("error = %v, want ErrUnknownBackend", err)
	}
	if Default() != AlgoFFT {
		t.Fatal("default backend should be algo-fft")
	}
	if got := Names(); len(got) != 3 || got[0] != "algo-fft" || got[1] != "go-dsp" || got[2] != "gonum" {
		t.Fatalf("Names() = %v", got)
	}
}

func TestColumnsStopsOnError(t *testing.T) {
	errStop := errors.New("stop")
	grid := []complex128{1, 2, 3, 4}
	calls := 0
	err := columns(grid, 2, func(col []complex128) error {
		calls++
		col[0] = 0
		return errStop
	})
	if !errors.Is(err, errStop) {
		t.Fatalf("columns error = %v, want %v", err, errStop)
	}
	if calls != 1 {
		t.Fatalf("columns ran %d callbacks after an error, want 1", calls)
	}
	if grid[0] != 1 {
		t.Fatalf("failed column was written back: %v", grid)
	}
}
