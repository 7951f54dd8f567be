// SPDX-License-Identifier: MIT

package sidereal

import (
	"github.com/katalvlaran/lvlsofa/epoch"
	"github.com/katalvlaran/lvlsofa/rotation"
)

// Gmst00 returns Greenwich mean sidereal time consistent with IAU 2000
// precession, from UT1 (for ERA) and TT (for the precession polynomial).
func Gmst00(ut1, tt epoch.Date) float64 {
	t := tt.Centuries()

	return rotation.Anp(Era00(ut1) +
		(0.014506+(4612.15739966+(1.39667721+(-0.00009344+0.00001882*t)*t)*t)*t)*rotation.ArcsecToRad)
}

// Gmst06 returns Greenwich mean sidereal time consistent with IAU 2006
// precession.
func Gmst06(ut1, tt epoch.Date) float64 {
	t := tt.Centuries()

	return rotation.Anp(Era00(ut1) +
		(0.014506+
			(4612.156534+
				(1.3915817+
					(-0.00000044+
						(-0.000029956+
							(-0.0000000368)*t)*t)*t)*t)*t)*rotation.ArcsecToRad)
}
