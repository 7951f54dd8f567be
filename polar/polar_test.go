package polar_test

import (
	"testing"

	"github.com/soniakeys/unit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlsofa/epoch"
	"github.com/katalvlaran/lvlsofa/internal/refvec"
	"github.com/katalvlaran/lvlsofa/polar"
	"github.com/katalvlaran/lvlsofa/rotation"
)

func vector(t *testing.T, name string) refvec.Vector {
	t.Helper()
	set, err := refvec.LoadFile("testdata/polar.yaml")
	require.NoError(t, err)
	v, err := set.Get(name)
	require.NoError(t, err)

	return v
}

func input(t *testing.T, v refvec.Vector, key string) float64 {
	t.Helper()
	x, err := v.Input(key)
	require.NoError(t, err)

	return x
}

func TestSp00(t *testing.T) {
	v := vector(t, "sp00")
	refvec.RequireValue(t, v, "sp", polar.Sp00(v.Epoch()))
}

func TestSp00_ZeroAtJ2000(t *testing.T) {
	assert.Equal(t, 0.0, polar.Sp00(epoch.New(epoch.J2000, 0)))
}

func TestPom00(t *testing.T) {
	v := vector(t, "pom00")
	got := polar.Pom00(input(t, v, "xp"), input(t, v, "yp"), input(t, v, "sp"))
	refvec.RequireNamedMatrix(t, v, "rpom", got)
	require.NoError(t, rotation.Validate(got, 1e-12))
}

func TestPom00_NoMotion(t *testing.T) {
	assert.Equal(t, rotation.Identity(), polar.Pom00(0, 0, 0))
}

func TestMotion_Matrix(t *testing.T) {
	// Pole offsets as IERS bulletins publish them, in arcseconds.
	m := polar.Motion{
		Xp: unit.AngleFromSec(0.0526).Rad(),
		Yp: unit.AngleFromSec(0.3837).Rad(),
	}
	tt := epoch.FromMJD(53736)

	refvec.RequireMatrix(t, polar.Pom00(m.Xp, m.Yp, polar.Sp00(tt)), m.Matrix(tt, true), 0, "with s'")
	refvec.RequireMatrix(t, polar.Pom00(m.Xp, m.Yp, 0), m.Matrix(tt, false), 0, "without s'")
	assert.Greater(t, rotation.Distance(m.Matrix(tt, true), m.Matrix(tt, false)), 0.0)
}
