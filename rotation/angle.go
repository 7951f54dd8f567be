// SPDX-License-Identifier: MIT

package rotation

import "math"

// Angle units.
const (
	// TwoPi is 2π.
	TwoPi = 6.283185307179586476925287

	// ArcsecToRad converts arcseconds to radians.
	ArcsecToRad = 4.848136811095359935899141e-6

	// MilliarcsecToRad converts milliarcseconds to radians.
	MilliarcsecToRad = ArcsecToRad / 1e3

	// TenthMicroarcsecToRad converts units of 0.1 microarcsecond to radians.
	TenthMicroarcsecToRad = ArcsecToRad / 1e7

	// TurnArcsec is the number of arcseconds in a full circle.
	TurnArcsec = 1296000.0
)

// Anp normalizes angle a into the range [0, 2π).
func Anp(a float64) float64 {
	w := math.Mod(a, TwoPi)
	if w < 0 {
		w += TwoPi
	}

	return w
}

// Anpm normalizes angle a into the range [-π, +π).
func Anpm(a float64) float64 {
	w := math.Mod(a, TwoPi)
	if math.Abs(w) >= math.Pi {
		w -= math.Copysign(TwoPi, a)
	}

	return w
}
