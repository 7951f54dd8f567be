// SPDX-License-Identifier: MIT

package precession

import (
	"github.com/katalvlaran/lvlsofa/epoch"
	"github.com/katalvlaran/lvlsofa/rotation"
)

// Obl80 returns the IAU 1980 mean obliquity of the ecliptic at TT date.
// The 2000 pipeline still uses it as the base for its obliquity.
func Obl80(date epoch.Date) float64 {
	t := date.Centuries()

	return rotation.ArcsecToRad * (84381.448 +
		(-46.8150+
			(-0.00059+
				0.001813*t)*t)*t)
}

// Obl06 returns the IAU 2006 mean obliquity of the ecliptic at TT date.
func Obl06(date epoch.Date) float64 {
	t := date.Centuries()

	return (84381.406 +
		(-46.836769+
			(-0.0001831+
				(0.00200340+
					(-0.000000576+
						(-0.0000000434)*t)*t)*t)*t)*t) * rotation.ArcsecToRad
}
