// Package cio evaluates the CIO locator s and the equation of the origins.
//
// The CIO locator positions the Celestial Intermediate Origin on the
// equator of the Celestial Intermediate Pole. It is the difference of the
// right ascensions of one node of the equator measured from the GCRS
// origin and from the CIO, minus x·y/2 where (x, y) are the CIP
// coordinates. S00 uses the IAU 2000 series, S06 the IAU 2006 one.
//
// Eors recovers the equation of the origins (ERA − GST) from a
// bias-precession-nutation matrix and s.
package cio
