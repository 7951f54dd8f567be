// SPDX-License-Identifier: MIT

package sidereal

import (
	"math"

	"github.com/katalvlaran/lvlsofa/bpn"
	"github.com/katalvlaran/lvlsofa/cio"
	"github.com/katalvlaran/lvlsofa/epoch"
	"github.com/katalvlaran/lvlsofa/fundarg"
	"github.com/katalvlaran/lvlsofa/nutation"
	"github.com/katalvlaran/lvlsofa/precession"
	"github.com/katalvlaran/lvlsofa/rotation"
)

// Ee00 returns the equation of the equinoxes (IAU 2000) given the mean
// obliquity epsa and nutation in longitude dpsi: Δψ·cos ε_A plus the
// complementary terms.
func Ee00(tt epoch.Date, epsa, dpsi float64) float64 {
	return dpsi*math.Cos(epsa) + Eect00(tt)
}

// Ee00a returns the equation of the equinoxes using IAU 2000A nutation.
func Ee00a(tt epoch.Date) float64 {
	epsa := precession.Obl80(tt) + precession.Pr00(tt).Depspr

	return Ee00(tt, epsa, nutation.Nut00a(tt).Dpsi)
}

// Ee00b returns the equation of the equinoxes using IAU 2000B nutation.
func Ee00b(tt epoch.Date) float64 {
	epsa := precession.Obl80(tt) + precession.Pr00(tt).Depspr

	return Ee00(tt, epsa, nutation.Nut00b(tt).Dpsi)
}

// Ee06a returns the equation of the equinoxes consistent with IAU 2006
// precession and 2000A nutation, as GST − GMST in [−π, +π).
func Ee06a(tt epoch.Date) float64 {
	ut := epoch.New(0, 0)

	return rotation.Anpm(Gst06a(ut, tt) - Gmst06(ut, tt))
}

// Eo06a returns the equation of the origins, ERA − GST, IAU 2006/2000A.
func Eo06a(tt epoch.Date) float64 {
	r := bpn.Pnm06a(tt)
	p := bpn.Bpn2xy(r)

	return cio.Eors(r, cio.S06(tt, p.X, p.Y))
}

// Eect00 returns the complementary terms of the equation of the equinoxes
// (IERS Conventions 2003), in radians.
func Eect00(tt epoch.Date) float64 {
	t := tt.Centuries()
	fa := [8]float64{
		fundarg.L(t),
		fundarg.Lp(t),
		fundarg.F(t),
		fundarg.D(t),
		fundarg.Om(t),
		fundarg.Ve(t),
		fundarg.E(t),
		fundarg.Pa(t),
	}

	var s0, s1 float64
	for i := len(eectT0) - 1; i >= 0; i-- {
		s0 += eectT0[i].evaluate(&fa)
	}
	for i := len(eectT1) - 1; i >= 0; i-- {
		s1 += eectT1[i].evaluate(&fa)
	}

	return (s0 + s1*t) * rotation.ArcsecToRad
}
