// SPDX-License-Identifier: MIT

package polar

import (
	"github.com/katalvlaran/lvlsofa/epoch"
	"github.com/katalvlaran/lvlsofa/rotation"
)

// spRate is the secular drift of s′ in arcseconds per Julian century.
const spRate = -47e-6

// Pom00 forms the polar-motion matrix from the pole coordinates xp, yp and
// the TIO locator sp, all in radians.
func Pom00(xp, yp, sp float64) rotation.Matrix {
	return rotation.Identity().
		Rz(sp).
		Ry(-xp).
		Rx(-yp)
}

// Sp00 returns the TIO locator s′ at TT date, in radians.
func Sp00(tt epoch.Date) float64 {
	return spRate * tt.Centuries() * rotation.ArcsecToRad
}

// Matrix returns W for m at TT date, including s′ when tio is set.
func (m Motion) Matrix(tt epoch.Date, tio bool) rotation.Matrix {
	sp := 0.0
	if tio {
		sp = Sp00(tt)
	}

	return Pom00(m.Xp, m.Yp, sp)
}
