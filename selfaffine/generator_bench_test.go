package selfaffine

import (
	"fmt"
	"testing"

	"github.com/cwbudde/algo-surface/core"
)

func BenchmarkGenerate(b *testing.B) {
	p := core.DefaultSelfAffineParams()
	for _, power := range []int{6, 8, 10} {
		g := NewGenerator(WithSeed(1))
		b.Run(fmt.Sprintf("n=%d", 1<<power), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = g.Generate(p, power)
			}
		})
	}
}

func BenchmarkBuildSpectrum(b *testing.B) {
	r, _ := Resolve(core.DefaultSelfAffineParams(), 8)
	g := NewGenerator(WithSeed(1))
	s := NewStreams(g.random(), r.N)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = BuildSpectrum(r, s)
	}
}
