// Package epoch represents Julian Dates split into two parts for precision.
//
// What & Why:
//
//	Every routine in lvlsofa takes its epoch as a Date: two float64 values
//	whose sum is the Julian Date in the time scale the routine documents
//	(TT, TDB or UT1, never mixed). Splitting keeps sub-millisecond resolution
//	that a single float64 JD cannot carry.
//
//	Callers may split arbitrarily:
//	  - (2451545.0, -1421.3)  J2000-relative
//	  - (2400000.5, 50123.2)  MJD form
//	  - (2450123.5, 0.2)      date + fraction of day
//	No normalization is ever performed; D1 and D2 are used exactly as given.
//
// Time scales:
//
//	The package does not convert between time scales. A Date built from a
//	time.Time through FromTime carries the calendar reading of that value;
//	whether it is UTC, TT or UT1 is up to the caller.
package epoch
