// Package fundarg evaluates the fundamental arguments of the IERS
// Conventions 2003 nutation theory.
//
// What & Why:
//
//	Every nutation and CIO-locator series is a sum of trigonometric terms
//	whose arguments are integer combinations of a small set of slowly
//	varying angles: the five Delaunay arguments of the Moon and Sun, the
//	mean heliocentric longitudes of the eight planets, and the general
//	accumulated precession in longitude. This package evaluates them.
//
// Input:
//
//	t is TDB in Julian centuries since J2000.0. TT may be used instead;
//	the difference is far below the accuracy of the models.
//
// Reduction:
//
//	Delaunay arguments (L, Lp, F, D, Om) are evaluated in arcseconds,
//	reduced modulo one turn and converted to radians, so they lie in
//	(-2π, 2π). Planetary longitudes are reduced modulo 2π in radians.
//	Pa is returned unreduced. Nothing is clamped: any t extrapolates.
//
// Complexity: every function is O(1) with no allocation.
package fundarg
