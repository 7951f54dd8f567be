// SPDX-License-Identifier: MIT

package sidereal

import (
	"math"

	"github.com/katalvlaran/lvlsofa/epoch"
	"github.com/katalvlaran/lvlsofa/rotation"
)

// Era00 returns the Earth rotation angle (IAU 2000) at UT1 date, in
// radians in [0, 2π).
//
// The fractional days of both parts are summed separately from the whole
// elapsed time so the large part of the date never swamps the fraction.
func Era00(ut1 epoch.Date) float64 {
	d1, d2 := ut1.D1, ut1.D2
	if d1 > d2 {
		d1, d2 = d2, d1
	}
	t := d1 + (d2 - epoch.J2000)
	f := math.Mod(d1, 1) + math.Mod(d2, 1)

	return rotation.Anp(rotation.TwoPi * (f + 0.7790572732640 + 0.00273781191135448*t))
}
