// Package precession builds the frame-bias and precession rotations of the
// IAU 2000 and IAU 2006 models, together with the mean obliquity and the
// angle sets that parameterize them.
//
// What & Why:
//
//	The GCRS is not aligned with the dynamical mean equator and equinox of
//	J2000.0; the frame bias B is the small fixed rotation between them.
//	Precession P then carries the J2000.0 mean frame to the mean frame of
//	date. Their product Rbp = P·B is the input to every later stage.
//
// Models:
//
//	IAU 2000  Lieske et al. (1977) precession with the IAU 2000 rate
//	          corrections, the 1980 obliquity, and the Chapront et al.
//	          (2002) frame bias. Built as a classical Euler sequence.
//	IAU 2006  Capitaine et al. (2003) P03 precession, expressed through
//	          the four Fukushima-Williams angles, which include the bias.
//
// Composition:
//
//	Compose is the single place where Rbp = Rp·Rb is formed, so no caller
//	can transpose the order.
//
// Input epoch:
//
//	All routines take TT as an epoch.Date. Only BiasPrecession returns an
//	error, and only for an unknown Generation.
package precession
