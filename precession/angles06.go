// SPDX-License-Identifier: MIT

package precession

import (
	"math"

	"github.com/katalvlaran/lvlsofa/epoch"
	"github.com/katalvlaran/lvlsofa/rotation"
)

// Pfw06 returns the Fukushima-Williams precession angles of the IAU 2006
// model at TT date. Combined with nutation (ψ̄+Δψ, ε_A+Δε) they give the
// full bias-precession-nutation matrix through Fw2m.
func Pfw06(date epoch.Date) FWAngles {
	t := date.Centuries()

	gamb := (-0.052928 +
		(10.556378 +
			(0.4932044 +
				(-0.00031238 +
					(-0.000002788 +
						(0.0000000260)*t)*t)*t)*t)*t) * rotation.ArcsecToRad
	phib := (84381.412819 +
		(-46.811016 +
			(0.0511268 +
				(0.00053289 +
					(-0.000000440 +
						(-0.0000000176)*t)*t)*t)*t)*t) * rotation.ArcsecToRad
	psib := (-0.041775 +
		(5038.481484 +
			(1.5584175 +
				(-0.00018522 +
					(-0.000026452 +
						(-0.0000000148)*t)*t)*t)*t)*t) * rotation.ArcsecToRad

	return FWAngles{Gamb: gamb, Phib: phib, Psib: psib, Epsa: Obl06(date)}
}

// Fw2m forms the rotation matrix from Fukushima-Williams angles:
//
//	R = R1(−ε)·R3(−ψ)·R1(φ)·R3(γ)
//
// With bias-precession angles it yields Rbp; with nutation added to ψ and
// ε it yields Rbpn.
func Fw2m(gamb, phib, psi, eps float64) rotation.Matrix {
	return rotation.Identity().
		Rz(gamb).
		Rx(phib).
		Rz(-psi).
		Rx(-eps)
}

// Fw2xy returns the CIP X, Y coordinates implied by Fukushima-Williams
// angles: the bottom row of Fw2m.
func Fw2xy(gamb, phib, psi, eps float64) (x, y float64) {
	r := Fw2m(gamb, phib, psi, eps)

	return r[2][0], r[2][1]
}

// Pb06 returns the classical ζ, z, θ equatorial precession angles that
// reproduce the IAU 2006 bias-precession matrix. The ±π ambiguity in z is
// resolved by keeping ζ and z small.
func Pb06(date epoch.Date) EulerAngles {
	r := Pmat06(date)

	// Solve for z, choosing the ±π alternative.
	y := r[1][2]
	x := -r[0][2]
	if x < 0 {
		y = -y
		x = -x
	}
	z := atan2OrZero(y, x)

	// Derotate it out of the matrix.
	r = r.Rz(z)

	// Solve for the remaining two angles.
	theta := atan2OrZero(r[0][2], r[2][2])
	zeta := atan2OrZero(-r[1][0], r[1][1])

	return EulerAngles{Zeta: zeta, Z: z, Theta: theta}
}

// atan2OrZero returns −atan2(y, x), or zero when both are zero.
func atan2OrZero(y, x float64) float64 {
	if x == 0 && y == 0 {
		return 0
	}

	return -math.Atan2(y, x)
}

// P06e returns the full set of IAU 2006 precession angles at TT date
// (Capitaine et al. 2003, Hilton et al. 2006).
func P06e(date epoch.Date) Angles06 {
	const das2r = rotation.ArcsecToRad
	t := date.Centuries()

	eps0 := 84381.406 * das2r

	var a Angles06
	a.Eps0 = eps0
	a.Psia = (5038.481507 +
		(-1.0790069 +
			(-0.00114045 +
				(0.000132851 +
					(-0.0000000951)*t)*t)*t)*t) * t * das2r
	a.Oma = eps0 + (-0.025754+
		(0.0512623+
			(-0.00772503+
				(-0.000000467+
					(0.0000003337)*t)*t)*t)*t)*t*das2r
	a.Bpa = (4.199094 +
		(0.1939873 +
			(-0.00022466 +
				(-0.000000912 +
					(0.0000000120)*t)*t)*t)*t) * t * das2r
	a.Bqa = (-46.811015 +
		(0.0510283 +
			(0.00052413 +
				(-0.000000646 +
					(-0.0000000172)*t)*t)*t)*t) * t * das2r
	a.Pia = (46.998973 +
		(-0.0334926 +
			(-0.00012559 +
				(0.000000113 +
					(-0.0000000022)*t)*t)*t)*t) * t * das2r
	a.Bpia = (629546.7936 +
		(-867.95758 +
			(0.157992 +
				(-0.0005371 +
					(-0.00004797 +
						(0.000000072)*t)*t)*t)*t)*t) * das2r
	a.Epsa = Obl06(date)
	a.Chia = (10.556403 +
		(-2.3814292 +
			(-0.00121197 +
				(0.000170663 +
					(-0.0000000560)*t)*t)*t)*t) * t * das2r
	a.Za = (-2.650545 +
		(2306.077181 +
			(1.0927348 +
				(0.01826837 +
					(-0.000028596 +
						(-0.0000002904)*t)*t)*t)*t)*t) * das2r
	a.Zetaa = (2.650545 +
		(2306.083227 +
			(0.2988499 +
				(0.01801828 +
					(-0.000005971 +
						(-0.0000003173)*t)*t)*t)*t)*t) * das2r
	a.Thetaa = (2004.191903 +
		(-0.4294934 +
			(-0.04182264 +
				(-0.000007089 +
					(-0.0000001274)*t)*t)*t)*t) * t * das2r
	a.Pa = (5028.796195 +
		(1.1054348 +
			(0.00007964 +
				(-0.000023857 +
					(-0.0000000383)*t)*t)*t)*t) * t * das2r
	a.Gam = (10.556403 +
		(0.4932044 +
			(-0.00031238 +
				(-0.000002788 +
					(0.0000000260)*t)*t)*t)*t) * t * das2r
	a.Phi = eps0 + (-46.811015+
		(0.0511269+
			(0.00053289+
				(-0.000000440+
					(-0.0000000176)*t)*t)*t)*t)*t*das2r
	a.Psi = (5038.481507 +
		(1.5584176 +
			(-0.00018522 +
				(-0.000026452 +
					(-0.0000000148)*t)*t)*t)*t) * t * das2r

	return a
}
