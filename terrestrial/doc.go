// Package terrestrial composes the celestial-to-terrestrial matrix that
// carries GCRS coordinates into the ITRS.
//
// What & Why:
//
//	The transformation is the product of three rotations:
//
//	  [ITRS] = W · R · Q · [GCRS]
//
//	where Q is precession-nutation-bias, R is the Earth's spin about the
//	CIP and W is polar motion. The package offers both IAU-sanctioned
//	factorings of Q and R:
//
//	  CIOBased      Q = C (celestial-to-intermediate), R = R3(ERA)
//	  EquinoxBased  Q = Rbpn (true equator and equinox), R = R3(GST)
//
//	For a given nutation model the two agree to well below a
//	microarcsecond. CIO-based is the IAU 2006 recommendation and the
//	default here.
//
// Entry points:
//
//	C2tcio, C2teqx       the two fixed compositions from precomputed parts
//	C2t00a, C2t00b,      CIO-based pipelines for each nutation model
//	C2t06a
//	C2tpe, C2txy         pipelines from supplied nutation angles or CIP X, Y
//	Matrix               model and method chosen at run time via options
//
// Time scales:
//
//	TT drives precession-nutation and s′; UT1 drives ERA and GST. Pole
//	coordinates are in radians. Every function is pure and safe for
//	concurrent use.
package terrestrial
