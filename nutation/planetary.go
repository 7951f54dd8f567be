// SPDX-License-Identifier: MIT

package nutation

// planetary is the IAU 2000A planetary nutation series (MHB2000,
// IERS Conventions 2003 Table 5.3b), largest terms first.
//
// TODO: transcribe rows 4-687 of Table 5.3b; see TermCounts.
var planetary = [...]planetaryTerm{
	{0, 0, 0, 0, 0, 0, 8, -16, 4, 5, 0, 0, 0, 1440, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, -8, 16, -4, -5, 0, 0, 2, 56, -117, -42, -40},
	{0, 0, 0, 0, 0, 0, 8, -16, 4, 5, 0, 0, 2, 125, -43, 0, -54},
}

// Full IAU 2000A table sizes.
const (
	lunisolarTerms00A = 678
	planetaryTerms00A = 687
	lunisolarTerms00B = 77
)

// TermCounts returns the number of luni-solar and planetary terms the
// IAU 2000A evaluator currently sums.
func TermCounts() (lunisolarTerms, planetaryTerms int) {
	return len(lunisolar), len(planetary)
}

// Complete reports whether both IAU 2000A tables hold every published term.
func Complete() bool {
	ls, pl := TermCounts()

	return ls == lunisolarTerms00A && pl == planetaryTerms00A
}
