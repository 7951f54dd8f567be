// SPDX-License-Identifier: MIT

package terrestrial

import (
	"github.com/katalvlaran/lvlsofa/bpn"
	"github.com/katalvlaran/lvlsofa/epoch"
	"github.com/katalvlaran/lvlsofa/polar"
	"github.com/katalvlaran/lvlsofa/rotation"
	"github.com/katalvlaran/lvlsofa/sidereal"
)

// C2tcio assembles the celestial-to-terrestrial matrix from the
// celestial-to-intermediate matrix rc2i, the Earth rotation angle era and
// the polar-motion matrix rpom: W · R3(ERA) · C.
func C2tcio(rc2i rotation.Matrix, era float64, rpom rotation.Matrix) rotation.Matrix {
	return rotation.Mul(rpom, rc2i.Rz(era))
}

// C2teqx assembles the celestial-to-terrestrial matrix from the
// bias-precession-nutation matrix rbpn, Greenwich apparent sidereal time
// gst and the polar-motion matrix rpom: W · R3(GST) · Rbpn.
func C2teqx(rbpn rotation.Matrix, gst float64, rpom rotation.Matrix) rotation.Matrix {
	return rotation.Mul(rpom, rbpn.Rz(gst))
}

// C2t00a returns the celestial-to-terrestrial matrix, IAU 2000A, CIO-based,
// given TT, UT1 and the pole coordinates xp, yp.
func C2t00a(tt, ut1 epoch.Date, xp, yp float64) rotation.Matrix {
	return C2tcio(bpn.C2i00a(tt), sidereal.Era00(ut1), polar.Pom00(xp, yp, polar.Sp00(tt)))
}

// C2t00b returns the celestial-to-terrestrial matrix, IAU 2000B, CIO-based.
// s′ is not included.
func C2t00b(tt, ut1 epoch.Date, xp, yp float64) rotation.Matrix {
	return C2tcio(bpn.C2i00b(tt), sidereal.Era00(ut1), polar.Pom00(xp, yp, 0))
}

// C2t06a returns the celestial-to-terrestrial matrix, IAU 2006/2000A,
// CIO-based.
func C2t06a(tt, ut1 epoch.Date, xp, yp float64) rotation.Matrix {
	return C2tcio(bpn.C2i06a(tt), sidereal.Era00(ut1), polar.Pom00(xp, yp, polar.Sp00(tt)))
}

// C2tpe returns the celestial-to-terrestrial matrix, equinox-based, from
// caller-supplied nutation angles dpsi, deps (IAU 2000 precession).
//
// Stage 1: Rbpn and the mean obliquity from the supplied nutation.
// Stage 2: GST = GMST (2000) + equation of the equinoxes.
// Stage 3: W with s′, then W · R3(GST) · Rbpn.
func C2tpe(tt, ut1 epoch.Date, dpsi, deps, xp, yp float64) rotation.Matrix {
	// Stage 1
	pn := bpn.Pn00(tt, dpsi, deps)

	// Stage 2
	gst := sidereal.Gmst00(ut1, tt) + sidereal.Ee00(tt, pn.Epsa, dpsi)

	// Stage 3
	return C2teqx(pn.Rbpn, gst, polar.Pom00(xp, yp, polar.Sp00(tt)))
}

// C2txy returns the celestial-to-terrestrial matrix, CIO-based, from
// caller-supplied CIP coordinates x, y (s from the IAU 2000 series).
func C2txy(tt, ut1 epoch.Date, x, y, xp, yp float64) rotation.Matrix {
	return C2tcio(bpn.C2ixy(tt, x, y), sidereal.Era00(ut1), polar.Pom00(xp, yp, polar.Sp00(tt)))
}
