// Package bpn composes frame bias, precession and nutation into the
// bias-precession-nutation matrix and derives from it the quantities of the
// CIO-based transformation: the CIP coordinates X, Y, the CIO locator s and
// the celestial-to-intermediate matrix.
//
// Models:
//
//	00A  IAU 2000 precession with IAU 2000A nutation.
//	00B  IAU 2000 precession with IAU 2000B nutation.
//	06A  IAU 2006 precession with IAU 2000A nutation adjusted for 2006.
//
// Composition order:
//
//	Rbpn = Rn · Rp · Rb
//
// Compose is the one place where Rn·Rbp is formed for the 2000 models; the
// 2006 models build Rbpn directly from Fukushima-Williams angles.
//
// Intermediate frame:
//
//	C2ixys(X, Y, s) = R3(−(E+s)) · R2(d) · R3(E),  E = atan2(Y, X),
//	                  d = atan(√((X²+Y²)/(1−X²−Y²)))
//
// Matrix and Intermediate select the model explicitly and return an error
// wrapping nutation.ErrUnknownModel for values outside the enum. Every other
// function is a pure evaluation that cannot fail.
package bpn
