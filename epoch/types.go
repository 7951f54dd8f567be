// SPDX-License-Identifier: MIT

package epoch

// Reference epochs and calendar constants.
const (
	// J2000 is the Julian Date of the reference epoch J2000.0 (TT).
	J2000 = 2451545.0

	// MJDZero is the Julian Date of Modified Julian Date zero.
	MJDZero = 2400000.5

	// MJDJ2000 is the Modified Julian Date of J2000.0.
	MJDJ2000 = 51544.5

	// DaysPerCentury is the length of a Julian century in days.
	DaysPerCentury = 36525.0

	// SecondsPerDay is the number of SI seconds in a day.
	SecondsPerDay = 86400.0
)

// Date is a Julian Date split into two parts, D1+D2 = JD.
// The split is opaque: no field is privileged and no normalization is done.
type Date struct {
	D1 float64 // first part, typically the larger one
	D2 float64 // second part
}
