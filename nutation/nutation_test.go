package nutation_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	meeusnut "github.com/soniakeys/meeus/v3/nutation"

	"github.com/katalvlaran/lvlsofa/epoch"
	"github.com/katalvlaran/lvlsofa/internal/refvec"
	"github.com/katalvlaran/lvlsofa/nutation"
	"github.com/katalvlaran/lvlsofa/precession"
	"github.com/katalvlaran/lvlsofa/rotation"
)

func vector(t *testing.T, name string) refvec.Vector {
	t.Helper()
	set, err := refvec.LoadFile("testdata/nutation.yaml")
	require.NoError(t, err)
	v, err := set.Get(name)
	require.NoError(t, err)

	return v
}

func TestNut00a(t *testing.T) {
	v := vector(t, "nut00a")
	a := nutation.Nut00a(v.Epoch())
	refvec.RequireValue(t, v, "dpsi", a.Dpsi)
	refvec.RequireValue(t, v, "deps", a.Deps)
}

// TestNut00a_PublishedScenario pins the published value independently of
// the fixture file, at its published tolerance.
func TestNut00a_PublishedScenario(t *testing.T) {
	a := nutation.Nut00a(epoch.New(2400000.5, 53736.0))
	assert.InDelta(t, -0.9630909107115518431e-5, a.Dpsi, 1e-13)
	assert.InDelta(t, 0.4063239174001678710e-4, a.Deps, 1e-13)
}

func TestNut00b(t *testing.T) {
	v := vector(t, "nut00b")
	a := nutation.Nut00b(v.Epoch())
	refvec.RequireValue(t, v, "dpsi", a.Dpsi)
	refvec.RequireValue(t, v, "deps", a.Deps)
}

func TestNut06a(t *testing.T) {
	v := vector(t, "nut06a")
	a := nutation.Nut06a(v.Epoch())
	refvec.RequireValue(t, v, "dpsi", a.Dpsi)
	refvec.RequireValue(t, v, "deps", a.Deps)
}

func TestNut06a_IsScaledNut00a(t *testing.T) {
	d := epoch.FromMJD(53736)
	a00 := nutation.Nut00a(d)
	a06 := nutation.Nut06a(d)
	// The adjustment is a few parts in 10⁷.
	assert.InDelta(t, a00.Dpsi, a06.Dpsi, 1e-6*math.Abs(a00.Dpsi))
	assert.InDelta(t, a00.Deps, a06.Deps, 1e-6*math.Abs(a00.Deps))
	assert.NotEqual(t, a00, a06)
}

func TestModels_DistinctButWithinOneMas(t *testing.T) {
	const mas = rotation.MilliarcsecToRad
	for _, mjd := range []float64{49718, 51544.5, 53736, 58849, 62502} {
		d := epoch.FromMJD(mjd)
		a := nutation.Nut00a(d)
		b := nutation.Nut00b(d)
		assert.NotEqual(t, a, b, "mjd %v", mjd)
		assert.LessOrEqual(t, math.Abs(a.Dpsi-b.Dpsi), mas, "Δψ mjd %v", mjd)
		assert.LessOrEqual(t, math.Abs(a.Deps-b.Deps), mas, "Δε mjd %v", mjd)
	}
}

func TestCompute(t *testing.T) {
	d := epoch.FromMJD(53736)
	cases := []struct {
		model nutation.Model
		want  nutation.Angles
	}{
		{nutation.IAU2000A, nutation.Nut00a(d)},
		{nutation.IAU2000B, nutation.Nut00b(d)},
		{nutation.IAU2006A, nutation.Nut06a(d)},
	}
	for _, tc := range cases {
		t.Run(tc.model.String(), func(t *testing.T) {
			got, err := nutation.Compute(tc.model, d)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	_, err := nutation.Compute(nutation.Model(7), d)
	require.ErrorIs(t, err, nutation.ErrUnknownModel)
}

func TestParseModel(t *testing.T) {
	for in, want := range map[string]nutation.Model{
		"2000A":     nutation.IAU2000A,
		"iau2000b":  nutation.IAU2000B,
		" 2006a ":   nutation.IAU2006A,
		"IAU2006A":  nutation.IAU2006A,
	} {
		got, err := nutation.ParseModel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := nutation.ParseModel("1980")
	require.ErrorIs(t, err, nutation.ErrUnknownModel)
	assert.False(t, nutation.Model(-1).Valid())
}

func TestMatrix(t *testing.T) {
	v := vector(t, "numat")
	in := func(k string) float64 {
		x, err := v.Input(k)
		require.NoError(t, err)

		return x
	}
	got := nutation.Matrix(in("epsa"), nutation.Angles{Dpsi: in("dpsi"), Deps: in("deps")})
	refvec.RequireNamedMatrix(t, v, "rmatn", got)
}

func TestNutationMatrices(t *testing.T) {
	for name, fn := range map[string]func(epoch.Date) rotation.Matrix{
		"num00a": nutation.Num00a,
		"num00b": nutation.Num00b,
		"num06a": nutation.Num06a,
	} {
		t.Run(name, func(t *testing.T) {
			v := vector(t, name)
			got := fn(v.Epoch())
			refvec.RequireNamedMatrix(t, v, "rmatn", got)
			assert.Less(t, rotation.Orthonormality(got), 1e-12)
		})
	}
}

// TestNut00a_AgreesWithMeeus compares against the IAU 1980 theory as
// implemented by soniakeys/meeus. The theories differ by a few tens of
// milliarcseconds at most.
func TestNut00a_AgreesWithMeeus(t *testing.T) {
	const tol = 2.5e-7
	for _, mjd := range []float64{47892, 51544.5, 53736, 57000} {
		d := epoch.FromMJD(mjd)
		a := nutation.Nut00a(d)
		dpsi, deps := meeusnut.Nutation(d.JD())
		assert.InDelta(t, dpsi.Rad(), a.Dpsi, tol, "Δψ mjd %v", mjd)
		assert.InDelta(t, deps.Rad(), a.Deps, tol, "Δε mjd %v", mjd)
	}
}

func TestObl80_AgreesWithMeeus(t *testing.T) {
	d := epoch.FromMJD(54388)
	assert.InDelta(t, meeusnut.MeanObliquity(d.JD()).Rad(), precession.Obl80(d), 1e-12)
}

func TestSeriesLengths(t *testing.T) {
	ls, pl := nutation.TermCounts()
	assert.Equal(t, 678, ls, "IERS 2003 Table 5.3a")
	assert.Equal(t, 687, pl, "IERS 2003 Table 5.3b")
	assert.True(t, nutation.Complete())
}
