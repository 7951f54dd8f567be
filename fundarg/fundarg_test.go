package fundarg_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlsofa/fundarg"
)

func TestArguments_PublishedValues(t *testing.T) {
	const tt = 0.80
	cases := []struct {
		name string
		fn   func(float64) float64
		want float64
	}{
		{"L", fundarg.L, 5.132369751108684150},
		{"Lp", fundarg.Lp, 6.226797973505507345},
		{"F", fundarg.F, 0.2597711366745499518},
		{"D", fundarg.D, 1.946709205396925672},
		{"Om", fundarg.Om, -5.973618440951302183},
		{"Me", fundarg.Me, 5.417338184297289661},
		{"Ve", fundarg.Ve, 3.424900460533758000},
		{"E", fundarg.E, 1.744713738913081846},
		{"Ma", fundarg.Ma, 3.275506840277781492},
		{"Ju", fundarg.Ju, 5.275711665202481138},
		{"Sa", fundarg.Sa, 5.371574539440827046},
		{"Ur", fundarg.Ur, 5.180636450180413523},
		{"Ne", fundarg.Ne, 2.079343830860413523},
		{"Pa", fundarg.Pa, 0.1950884762240000000e-1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.InDelta(t, tc.want, tc.fn(tt), 1e-12)
		})
	}
}

func TestEvaluate_MatchesIndividualFunctions(t *testing.T) {
	const tt = -0.37
	a := fundarg.Evaluate(tt)
	assert.Equal(t, fundarg.L(tt), a.L)
	assert.Equal(t, fundarg.Lp(tt), a.Lp)
	assert.Equal(t, fundarg.F(tt), a.F)
	assert.Equal(t, fundarg.D(tt), a.D)
	assert.Equal(t, fundarg.Om(tt), a.Om)
	assert.Equal(t, fundarg.Me(tt), a.Me)
	assert.Equal(t, fundarg.Ve(tt), a.Ve)
	assert.Equal(t, fundarg.E(tt), a.E)
	assert.Equal(t, fundarg.Ma(tt), a.Ma)
	assert.Equal(t, fundarg.Ju(tt), a.Ju)
	assert.Equal(t, fundarg.Sa(tt), a.Sa)
	assert.Equal(t, fundarg.Ur(tt), a.Ur)
	assert.Equal(t, fundarg.Ne(tt), a.Ne)
	assert.Equal(t, fundarg.Pa(tt), a.Pa)
}

func TestReducedArguments_StayWithinOneTurn(t *testing.T) {
	for _, tt := range []float64{-50, -1, 0, 0.5, 3, 50} {
		a := fundarg.Evaluate(tt)
		for _, v := range []float64{a.L, a.Lp, a.F, a.D, a.Om, a.Me, a.Ve, a.E, a.Ma, a.Ju, a.Sa, a.Ur, a.Ne} {
			assert.Less(t, math.Abs(v), 2*math.Pi, "t=%v", tt)
		}
	}
}

func TestPa_ZeroAtJ2000(t *testing.T) {
	assert.Equal(t, 0.0, fundarg.Pa(0))
}
