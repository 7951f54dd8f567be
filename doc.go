// Package lvlsofa is a pure-Go implementation of the IAU celestial-to-
// terrestrial reference frame pipeline: the rotation matrix that takes a
// GCRS vector to the ITRS at a given TT/UT1 instant.
//
// What is in the box?
//
//	epoch/        two-part Julian Dates and time constants
//	rotation/     3×3 rotation matrices: Rx/Ry/Rz, products, transposes
//	fundarg/      Delaunay and planetary fundamental arguments (IERS 2003)
//	nutation/     IAU 2000A/2000B nutation and the 2006 adjustment
//	precession/   frame bias, IAU 2000 rate corrections, Fukushima–Williams angles
//	cio/          CIO locator s and the X, Y, s series
//	bpn/          bias-precession-nutation matrices and CIP coordinates
//	sidereal/     Earth rotation angle, GMST, GST, equation of the equinoxes/origins
//	polar/        polar-motion matrix and the TIO locator s'
//	terrestrial/  composing W·R·Q by the CIO-based or the equinox-based route
//
// The pipeline in one call:
//
//	tt := epoch.New(2400000.5, 53736.0)
//	ut1 := epoch.New(2400000.5, 53735.99925)
//	pole := polar.Motion{Xp: 2.55e-7, Yp: 1.86e-6}
//	rc2t, err := terrestrial.Matrix(tt, ut1, pole)
//
// Every function is a pure computation: there is no shared state, and all
// of them are safe for concurrent use.
//
// The lvlsofa command (cmd/lvlsofa) exposes the same operations on the
// command line, with text or yaml output and a yaml batch mode.
package lvlsofa
