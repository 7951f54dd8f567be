package fundarg_test

import (
	"testing"

	"github.com/katalvlaran/lvlsofa/fundarg"
)

var sinkArgs fundarg.Args

func BenchmarkEvaluate(b *testing.B) {
	for i := 0; i < b.N; i++ {
		sinkArgs = fundarg.Evaluate(0.06)
	}
}
