package terrestrial_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlsofa/epoch"
	"github.com/katalvlaran/lvlsofa/internal/refvec"
	"github.com/katalvlaran/lvlsofa/nutation"
	"github.com/katalvlaran/lvlsofa/polar"
	"github.com/katalvlaran/lvlsofa/rotation"
	"github.com/katalvlaran/lvlsofa/terrestrial"
)

func vector(t *testing.T, name string) refvec.Vector {
	t.Helper()
	set, err := refvec.LoadFile("testdata/terrestrial.yaml")
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

func matrix(t *testing.T, v refvec.Vector, key string) rotation.Matrix {
	t.Helper()
	m, err := v.Matrix(key)
	require.NoError(t, err)

	return m
}

func TestC2tcio(t *testing.T) {
	v := vector(t, "c2tcio")
	got := terrestrial.C2tcio(matrix(t, v, "rc2i"), input(t, v, "era"), matrix(t, v, "rpom"))
	refvec.RequireNamedMatrix(t, v, "rc2t", got)
}

func TestC2teqx(t *testing.T) {
	v := vector(t, "c2teqx")
	got := terrestrial.C2teqx(matrix(t, v, "rbpn"), input(t, v, "gst"), matrix(t, v, "rpom"))
	refvec.RequireNamedMatrix(t, v, "rc2t", got)
}

func TestC2tPipelines(t *testing.T) {
	for name, fn := range map[string]func(tt, ut1 epoch.Date, xp, yp float64) rotation.Matrix{
		"c2t00a": terrestrial.C2t00a,
		"c2t00b": terrestrial.C2t00b,
		"c2t06a": terrestrial.C2t06a,
	} {
		t.Run(name, func(t *testing.T) {
			v := vector(t, name)
			got := fn(v.Epoch(), v.Epoch2(), input(t, v, "xp"), input(t, v, "yp"))
			refvec.RequireNamedMatrix(t, v, "rc2t", got)
		})
	}
}

func TestC2tpe(t *testing.T) {
	v := vector(t, "c2tpe")
	got := terrestrial.C2tpe(v.Epoch(), v.Epoch2(),
		input(t, v, "dpsi"), input(t, v, "deps"), input(t, v, "xp"), input(t, v, "yp"))
	refvec.RequireNamedMatrix(t, v, "rc2t", got)
}

func TestC2txy(t *testing.T) {
	v := vector(t, "c2txy")
	got := terrestrial.C2txy(v.Epoch(), v.Epoch2(),
		input(t, v, "x"), input(t, v, "y"), input(t, v, "xp"), input(t, v, "yp"))
	refvec.RequireNamedMatrix(t, v, "rc2t", got)
}

func TestMatrix_SelectsPipeline(t *testing.T) {
	tt := epoch.FromMJD(53736)
	ut1 := epoch.New(epoch.MJDZero, 53736-64.8/epoch.SecondsPerDay)
	m := polar.Motion{Xp: 2.55060238e-7, Yp: 1.860359247e-6}

	got, err := terrestrial.Matrix(tt, ut1, m)
	require.NoError(t, err)
	assert.Equal(t, terrestrial.C2t06a(tt, ut1, m.Xp, m.Yp), got)

	got, err = terrestrial.Matrix(tt, ut1, m, terrestrial.WithModel(nutation.IAU2000A))
	require.NoError(t, err)
	assert.Equal(t, terrestrial.C2t00a(tt, ut1, m.Xp, m.Yp), got)

	got, err = terrestrial.Matrix(tt, ut1, m,
		terrestrial.WithModel(nutation.IAU2000B), terrestrial.WithTIOLocator(false))
	require.NoError(t, err)
	assert.Equal(t, terrestrial.C2t00b(tt, ut1, m.Xp, m.Yp), got)
}

func TestOptions(t *testing.T) {
	o := terrestrial.DefaultOptions()
	assert.Equal(t, nutation.IAU2006A, o.Model)
	assert.Equal(t, terrestrial.CIOBased, o.Method)
	assert.True(t, o.TIOLocator)

	for _, fn := range []terrestrial.Option{
		terrestrial.WithModel(nutation.IAU2000B),
		terrestrial.WithMethod(terrestrial.EquinoxBased),
		terrestrial.WithTIOLocator(false),
	} {
		fn(&o)
	}
	assert.Equal(t, terrestrial.Options{
		Model:      nutation.IAU2000B,
		Method:     terrestrial.EquinoxBased,
		TIOLocator: false,
	}, o)
}

func TestParseMethod(t *testing.T) {
	for _, m := range terrestrial.Methods {
		got, err := terrestrial.ParseMethod(" " + m.String() + " ")
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}
	got, err := terrestrial.ParseMethod("EQUINOX")
	require.NoError(t, err)
	assert.Equal(t, terrestrial.EquinoxBased, got)

	_, err = terrestrial.ParseMethod("tio")
	require.ErrorIs(t, err, terrestrial.ErrUnknownMethod)
	assert.Equal(t, "Method(7)", terrestrial.Method(7).String())
}
