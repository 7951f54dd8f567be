// Package polar builds the polar-motion matrix W and evaluates the TIO
// locator s'.
//
// The CIP wanders on the Earth's crust by a few tenths of an arcsecond;
// the IERS publishes its coordinates (xp, yp) in the ITRS. W carries the
// terrestrial intermediate reference system (TIRS) into the ITRS:
//
//	[ITRS] = W · [TIRS],  W = R1(−yp) · R2(−xp) · R3(s′)
//
// s′ positions the terrestrial intermediate origin and is below
// 0.1 milliarcsecond for the next century; callers may pass zero.
package polar
