// SPDX-License-Identifier: MIT

package fundarg

import (
	"math"

	"github.com/katalvlaran/lvlsofa/rotation"
)

// delaunay evaluates a quartic in t (arcseconds), reduces it modulo one
// turn and converts it to radians. Coefficients are c0..c4.
func delaunay(t, c0, c1, c2, c3, c4 float64) float64 {
	return math.Mod(c0+t*(c1+t*(c2+t*(c3+t*c4))), rotation.TurnArcsec) * rotation.ArcsecToRad
}

// L returns the mean anomaly of the Moon.
func L(t float64) float64 {
	return delaunay(t, 485868.249036, 1717915923.2178, 31.8792, 0.051635, -0.00024470)
}

// Lp returns the mean anomaly of the Sun.
func Lp(t float64) float64 {
	return delaunay(t, 1287104.793048, 129596581.0481, -0.5532, 0.000136, -0.00001149)
}

// F returns the mean longitude of the Moon minus that of the ascending node.
func F(t float64) float64 {
	return delaunay(t, 335779.526232, 1739527262.8478, -12.7512, -0.001037, 0.00000417)
}

// D returns the mean elongation of the Moon from the Sun.
func D(t float64) float64 {
	return delaunay(t, 1072260.703692, 1602961601.2090, -6.3706, 0.006593, -0.00003169)
}

// Om returns the mean longitude of the Moon's ascending node.
func Om(t float64) float64 {
	return delaunay(t, 450160.398036, -6962890.5431, 7.4722, 0.007702, -0.00005939)
}

// Me returns the mean heliocentric longitude of Mercury.
func Me(t float64) float64 { return math.Mod(4.402608842+2608.7903141574*t, rotation.TwoPi) }

// Ve returns the mean heliocentric longitude of Venus.
func Ve(t float64) float64 { return math.Mod(3.176146697+1021.3285546211*t, rotation.TwoPi) }

// E returns the mean heliocentric longitude of the Earth.
func E(t float64) float64 { return math.Mod(1.753470314+628.3075849991*t, rotation.TwoPi) }

// Ma returns the mean heliocentric longitude of Mars.
func Ma(t float64) float64 { return math.Mod(6.203480913+334.0612426700*t, rotation.TwoPi) }

// Ju returns the mean heliocentric longitude of Jupiter.
func Ju(t float64) float64 { return math.Mod(0.599546497+52.9690962641*t, rotation.TwoPi) }

// Sa returns the mean heliocentric longitude of Saturn.
func Sa(t float64) float64 { return math.Mod(0.874016757+21.3299104960*t, rotation.TwoPi) }

// Ur returns the mean heliocentric longitude of Uranus.
func Ur(t float64) float64 { return math.Mod(5.481293872+7.4781598567*t, rotation.TwoPi) }

// Ne returns the mean heliocentric longitude of Neptune.
func Ne(t float64) float64 { return math.Mod(5.311886287+3.8133035638*t, rotation.TwoPi) }

// Pa returns the general accumulated precession in longitude (not reduced).
func Pa(t float64) float64 { return (0.024381750 + 0.00000538691*t) * t }

// Evaluate returns all fourteen arguments at t.
func Evaluate(t float64) Args {
	return Args{
		L:  L(t),
		Lp: Lp(t),
		F:  F(t),
		D:  D(t),
		Om: Om(t),
		Me: Me(t),
		Ve: Ve(t),
		E:  E(t),
		Ma: Ma(t),
		Ju: Ju(t),
		Sa: Sa(t),
		Ur: Ur(t),
		Ne: Ne(t),
		Pa: Pa(t),
	}
}
