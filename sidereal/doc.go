// Package sidereal computes the Earth rotation angle, Greenwich mean and
// apparent sidereal time, and the equations of the equinoxes and origins.
//
// What & Why:
//
//	The Earth's spin about the CIP is measured two ways. The CIO-based
//	route uses the Earth rotation angle (ERA), a linear function of UT1.
//	The equinox-based route uses Greenwich sidereal time (GST), which is
//	ERA plus the accumulated precession and nutation in right ascension.
//	The two are tied by the equation of the origins: GST = ERA − EO.
//
// Time scales:
//
//	ERA depends on UT1 only. GMST and GST take UT1 for the rotation and TT
//	for the precession-nutation terms; Gst00b uses UT1 for both, which is
//	within the accuracy of the 2000B model.
//
// Results:
//
//	ERA, GMST and GST are in [0, 2π). The equations of the equinoxes and
//	origins are small signed angles, returned unnormalized except for
//	Ee06a, which is reduced to [−π, +π).
package sidereal
