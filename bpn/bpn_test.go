package bpn_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlsofa/bpn"
	"github.com/katalvlaran/lvlsofa/epoch"
	"github.com/katalvlaran/lvlsofa/internal/refvec"
	"github.com/katalvlaran/lvlsofa/nutation"
	"github.com/katalvlaran/lvlsofa/precession"
	"github.com/katalvlaran/lvlsofa/rotation"
)

func vector(t *testing.T, name string) refvec.Vector {
	t.Helper()
	set, err := refvec.LoadFile("testdata/bpn.yaml")
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

func requirePN(t *testing.T, v refvec.Vector, pn bpn.PN) {
	t.Helper()
	refvec.RequireValue(t, v, "epsa", pn.Epsa)
	refvec.RequireNamedMatrix(t, v, "rb", pn.Rb)
	refvec.RequireNamedMatrix(t, v, "rp", pn.Rp)
	refvec.RequireNamedMatrix(t, v, "rbp", pn.Rbp)
	refvec.RequireNamedMatrix(t, v, "rn", pn.Rn)
	refvec.RequireNamedMatrix(t, v, "rbpn", pn.Rbpn)
}

func TestPn00(t *testing.T) {
	v := vector(t, "pn00")
	requirePN(t, v, bpn.Pn00(v.Epoch(), input(t, v, "dpsi"), input(t, v, "deps")))
}

func TestPn06(t *testing.T) {
	v := vector(t, "pn06")
	requirePN(t, v, bpn.Pn06(v.Epoch(), input(t, v, "dpsi"), input(t, v, "deps")))
}

func TestPnModels(t *testing.T) {
	for name, fn := range map[string]func(epoch.Date) bpn.PN{
		"pn00a": bpn.Pn00a,
		"pn00b": bpn.Pn00b,
		"pn06a": bpn.Pn06a,
	} {
		t.Run(name, func(t *testing.T) {
			v := vector(t, name)
			pn := fn(v.Epoch())
			refvec.RequireValue(t, v, "dpsi", pn.Nutation.Dpsi)
			refvec.RequireValue(t, v, "deps", pn.Nutation.Deps)
			requirePN(t, v, pn)
		})
	}
}

func TestPnm(t *testing.T) {
	for name, fn := range map[string]func(epoch.Date) rotation.Matrix{
		"pnm00a": bpn.Pnm00a,
		"pnm00b": bpn.Pnm00b,
		"pnm06a": bpn.Pnm06a,
	} {
		t.Run(name, func(t *testing.T) {
			v := vector(t, name)
			got := fn(v.Epoch())
			refvec.RequireNamedMatrix(t, v, "rbpn", got)
			require.NoError(t, rotation.Validate(got, 1e-12))
		})
	}
}

func TestPnm06a_MatchesPn06a(t *testing.T) {
	d := epoch.FromMJD(58849)
	refvec.RequireMatrix(t, bpn.Pn06a(d).Rbpn, bpn.Pnm06a(d), 1e-15, "Rbpn")
}

func TestCompose(t *testing.T) {
	d := epoch.FromMJD(53736)
	pn := bpn.Pn00b(d)
	// Rn·Rbp, not Rbp·Rn.
	assert.Equal(t, rotation.Mul(pn.Rn, pn.Rbp), bpn.Compose(pn.Rbp, pn.Rn))
	assert.Greater(t, rotation.Distance(bpn.Compose(pn.Rbp, pn.Rn), rotation.Mul(pn.Rbp, pn.Rn)), 1e-12)
	assert.Equal(t, precession.Compose(pn.Rb, pn.Rp), pn.Rbp)
}

func TestBpn2xy(t *testing.T) {
	v := vector(t, "bpn2xy")
	p := bpn.Bpn2xy(matrix(t, v, "rbpn"))
	refvec.RequireValue(t, v, "x", p.X)
	refvec.RequireValue(t, v, "y", p.Y)
}

func TestC2ixys(t *testing.T) {
	v := vector(t, "c2ixys")
	got := bpn.C2ixys(input(t, v, "x"), input(t, v, "y"), input(t, v, "s"))
	refvec.RequireNamedMatrix(t, v, "rc2i", got)
}

func TestC2ixys_Pole(t *testing.T) {
	// No pole offset and no CIO offset: the identity.
	assert.Equal(t, rotation.Identity(), bpn.C2ixys(0, 0, 0))

	// With only s the matrix is R3(−s).
	refvec.RequireMatrix(t, rotation.Identity().Rz(-1e-8), bpn.C2ixys(0, 0, 1e-8), 1e-20, "R3(-s)")
}

func TestC2ixy(t *testing.T) {
	v := vector(t, "c2ixy")
	got := bpn.C2ixy(v.Epoch(), input(t, v, "x"), input(t, v, "y"))
	refvec.RequireNamedMatrix(t, v, "rc2i", got)
}

func TestC2ibpn(t *testing.T) {
	v := vector(t, "c2ibpn")
	got := bpn.C2ibpn(v.Epoch(), matrix(t, v, "rbpn"))
	refvec.RequireNamedMatrix(t, v, "rc2i", got)
}

func TestC2i(t *testing.T) {
	for name, fn := range map[string]func(epoch.Date) rotation.Matrix{
		"c2i00a": bpn.C2i00a,
		"c2i00b": bpn.C2i00b,
		"c2i06a": bpn.C2i06a,
	} {
		t.Run(name, func(t *testing.T) {
			v := vector(t, name)
			got := fn(v.Epoch())
			refvec.RequireNamedMatrix(t, v, "rc2i", got)
			assert.Less(t, rotation.Orthonormality(got), 1e-12)
		})
	}
}

func TestXys(t *testing.T) {
	for name, fn := range map[string]func(epoch.Date) bpn.PoleLocator{
		"xys00a": bpn.Xys00a,
		"xys00b": bpn.Xys00b,
		"xys06a": bpn.Xys06a,
	} {
		t.Run(name, func(t *testing.T) {
			v := vector(t, name)
			l := fn(v.Epoch())
			refvec.RequireValue(t, v, "x", l.X)
			refvec.RequireValue(t, v, "y", l.Y)
			refvec.RequireValue(t, v, "s", l.S)
		})
	}
}

func TestS(t *testing.T) {
	for name, fn := range map[string]func(epoch.Date) float64{
		"s00a": bpn.S00a,
		"s00b": bpn.S00b,
		"s06a": bpn.S06a,
	} {
		t.Run(name, func(t *testing.T) {
			v := vector(t, name)
			refvec.RequireValue(t, v, "s", fn(v.Epoch()))
		})
	}
}

func TestSelectors(t *testing.T) {
	d := epoch.FromMJD(53736)
	for _, m := range nutation.Models {
		t.Run(m.String(), func(t *testing.T) {
			r, err := bpn.Matrix(m, d)
			require.NoError(t, err)
			c, err := bpn.Intermediate(m, d)
			require.NoError(t, err)
			l, err := bpn.Locate(m, d)
			require.NoError(t, err)

			// The intermediate matrix shares its bottom row (the CIP) with Rbpn.
			assert.Equal(t, bpn.Bpn2xy(r), l.Pole)
			assert.InDelta(t, r[2][0], c[2][0], 1e-15)
			assert.InDelta(t, r[2][1], c[2][1], 1e-15)
		})
	}

	bad := nutation.Model(42)
	_, err := bpn.Matrix(bad, d)
	require.ErrorIs(t, err, nutation.ErrUnknownModel)
	_, err = bpn.Intermediate(bad, d)
	require.ErrorIs(t, err, nutation.ErrUnknownModel)
	_, err = bpn.Locate(bad, d)
	require.ErrorIs(t, err, nutation.ErrUnknownModel)
}
