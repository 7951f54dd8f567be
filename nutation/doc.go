// Package nutation evaluates the IAU 2000A, 2000B and 2006A nutation models
// and builds the corresponding nutation matrices.
//
// What & Why:
//
//	Nutation is the short-period wobble of the Earth's axis superimposed on
//	precession. It is expressed as two small angles: Δψ in longitude and Δε
//	in obliquity, both referred to the mean equator and equinox of date.
//
// Models:
//
//	IAU2000A  MHB2000 series: 678 luni-solar + 687 planetary terms.
//	          Accuracy about 0.1 mas.
//	IAU2000B  77 luni-solar terms with constant planetary offsets.
//	          Within 1 mas of 2000A between 1995 and 2050.
//	IAU2006A  IAU2000A with the P03 adjustments for the secular change of
//	          J2 and the obliquity rate, for use with IAU 2006 precession.
//
// Numeric policy:
//
//	Series are summed from the last (smallest) term to the first so results
//	agree bit-for-bit with the published reference values. Tables are
//	read-only package arrays; there is no mutable state and every function
//	is safe for concurrent use.
//
// Input epoch:
//
//	All routines take TT as an epoch.Date. Only Compute returns an error,
//	and only for an unknown Model.
package nutation
