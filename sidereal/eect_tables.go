// SPDX-License-Identifier: MIT

package sidereal

import "math"

// eectTerm is one row of a complementary-terms series: multipliers of
// l, l', F, D, Ω, L_Ve, L_E, p_A and the sine, cosine amplitudes (arcsec).
type eectTerm struct {
	nfa  [8]int8
	s, c float64
}

func (e *eectTerm) evaluate(fa *[8]float64) float64 {
	a := 0.0
	for j, n := range e.nfa {
		a += float64(n) * fa[j]
	}

	return e.s*math.Sin(a) + e.c*math.Cos(a)
}

// Terms of order t⁰.
var eectT0 = []eectTerm{
	// 1-10
	{[8]int8{0, 0, 0, 0, 1, 0, 0, 0}, 2640.96e-6, -0.39e-6},
	{[8]int8{0, 0, 0, 0, 2, 0, 0, 0}, 63.52e-6, -0.02e-6},
	{[8]int8{0, 0, 2, -2, 3, 0, 0, 0}, 11.75e-6, 0.01e-6},
	{[8]int8{0, 0, 2, -2, 1, 0, 0, 0}, 11.21e-6, 0.01e-6},
	{[8]int8{0, 0, 2, -2, 2, 0, 0, 0}, -4.55e-6, 0.00e-6},
	{[8]int8{0, 0, 2, 0, 3, 0, 0, 0}, 2.02e-6, 0.00e-6},
	{[8]int8{0, 0, 2, 0, 1, 0, 0, 0}, 1.98e-6, 0.00e-6},
	{[8]int8{0, 0, 0, 0, 3, 0, 0, 0}, -1.72e-6, 0.00e-6},
	{[8]int8{0, 1, 0, 0, 1, 0, 0, 0}, -1.41e-6, -0.01e-6},
	{[8]int8{0, 1, 0, 0, -1, 0, 0, 0}, -1.26e-6, -0.01e-6},

	// 11-20
	{[8]int8{1, 0, 0, 0, -1, 0, 0, 0}, -0.63e-6, 0.00e-6},
	{[8]int8{1, 0, 0, 0, 1, 0, 0, 0}, -0.63e-6, 0.00e-6},
	{[8]int8{0, 1, 2, -2, 3, 0, 0, 0}, 0.46e-6, 0.00e-6},
	{[8]int8{0, 1, 2, -2, 1, 0, 0, 0}, 0.45e-6, 0.00e-6},
	{[8]int8{0, 0, 4, -4, 4, 0, 0, 0}, 0.36e-6, 0.00e-6},
	{[8]int8{0, 0, 1, -1, 1, -8, 12, 0}, -0.24e-6, -0.12e-6},
	{[8]int8{0, 0, 2, 0, 0, 0, 0, 0}, 0.32e-6, 0.00e-6},
	{[8]int8{0, 0, 2, 0, 2, 0, 0, 0}, 0.28e-6, 0.00e-6},
	{[8]int8{1, 0, 2, 0, 3, 0, 0, 0}, 0.27e-6, 0.00e-6},
	{[8]int8{1, 0, 2, 0, 1, 0, 0, 0}, 0.26e-6, 0.00e-6},

	// 21-30
	{[8]int8{0, 0, 2, -2, 0, 0, 0, 0}, -0.21e-6, 0.00e-6},
	{[8]int8{0, 1, -2, 2, -3, 0, 0, 0}, 0.19e-6, 0.00e-6},
	{[8]int8{0, 1, -2, 2, -1, 0, 0, 0}, 0.18e-6, 0.00e-6},
	{[8]int8{0, 0, 0, 0, 0, 8, -13, -1}, -0.10e-6, 0.05e-6},
	{[8]int8{0, 0, 0, 2, 0, 0, 0, 0}, 0.15e-6, 0.00e-6},
	{[8]int8{2, 0, -2, 0, -1, 0, 0, 0}, -0.14e-6, 0.00e-6},
	{[8]int8{1, 0, 0, -2, 1, 0, 0, 0}, 0.14e-6, 0.00e-6},
	{[8]int8{0, 1, 2, -2, 2, 0, 0, 0}, -0.14e-6, 0.00e-6},
	{[8]int8{1, 0, 0, -2, -1, 0, 0, 0}, 0.14e-6, 0.00e-6},
	{[8]int8{0, 0, 4, -2, 4, 0, 0, 0}, 0.13e-6, 0.00e-6},

	// 31-33
	{[8]int8{0, 0, 2, -2, 4, 0, 0, 0}, -0.11e-6, 0.00e-6},
	{[8]int8{1, 0, -2, 0, -3, 0, 0, 0}, 0.11e-6, 0.00e-6},
	{[8]int8{1, 0, -2, 0, -1, 0, 0, 0}, 0.11e-6, 0.00e-6},
}

// Terms of order t¹.
var eectT1 = []eectTerm{
	{[8]int8{0, 0, 0, 0, 1, 0, 0, 0}, -0.87e-6, 0.00e-6},
}
