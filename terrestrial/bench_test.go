package terrestrial_test

import (
	"testing"

	"github.com/katalvlaran/lvlsofa/epoch"
	"github.com/katalvlaran/lvlsofa/nutation"
	"github.com/katalvlaran/lvlsofa/polar"
	"github.com/katalvlaran/lvlsofa/rotation"
	"github.com/katalvlaran/lvlsofa/terrestrial"
)

var sinkMatrix rotation.Matrix

func benchmarkMatrix(b *testing.B, opts ...terrestrial.Option) {
	tt := epoch.FromMJD(53736)
	pole := polar.Motion{Xp: 2.55060238e-7, Yp: 1.860359247e-6}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		r, err := terrestrial.Matrix(tt, tt, pole, opts...)
		if err != nil {
			b.Fatal(err)
		}
		sinkMatrix = r
	}
}

func BenchmarkMatrix_CIO06A(b *testing.B) { benchmarkMatrix(b) }

func BenchmarkMatrix_Equinox06A(b *testing.B) {
	benchmarkMatrix(b, terrestrial.WithMethod(terrestrial.EquinoxBased))
}

func BenchmarkMatrix_CIO00B(b *testing.B) {
	benchmarkMatrix(b, terrestrial.WithModel(nutation.IAU2000B))
}
