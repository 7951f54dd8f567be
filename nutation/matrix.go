// SPDX-License-Identifier: MIT

package nutation

import (
	"github.com/katalvlaran/lvlsofa/epoch"
	"github.com/katalvlaran/lvlsofa/precession"
	"github.com/katalvlaran/lvlsofa/rotation"
)

// Matrix forms the nutation matrix from the mean obliquity epsa and the
// nutation angles a:
//
//	Rn = R1(−(ε_A + Δε)) · R3(−Δψ) · R1(ε_A)
//
// Rn transforms mean-of-date to true-of-date coordinates.
func Matrix(epsa float64, a Angles) rotation.Matrix {
	return rotation.Identity().
		Rx(epsa).
		Rz(-a.Dpsi).
		Rx(-(epsa + a.Deps))
}

// meanObliquity00 is the IAU 1980 mean obliquity corrected by the IAU 2000
// precession-rate adjustment, as used with the 2000 nutation models.
func meanObliquity00(date epoch.Date) float64 {
	return precession.Obl80(date) + precession.Pr00(date).Depspr
}

// Num00a returns the IAU 2000A nutation matrix at TT date.
func Num00a(date epoch.Date) rotation.Matrix {
	return Matrix(meanObliquity00(date), Nut00a(date))
}

// Num00b returns the IAU 2000B nutation matrix at TT date.
func Num00b(date epoch.Date) rotation.Matrix {
	return Matrix(meanObliquity00(date), Nut00b(date))
}

// Num06a returns the IAU 2006/2000A nutation matrix at TT date.
func Num06a(date epoch.Date) rotation.Matrix {
	return Matrix(precession.Obl06(date), Nut06a(date))
}
