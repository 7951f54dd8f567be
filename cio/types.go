// SPDX-License-Identifier: MIT

package cio

// term is one row of a CIO locator series: the multipliers of the
// fundamental arguments (l, l', F, D, Ω, L_Ve, L_E, pA) and the sine and
// cosine amplitudes in arcseconds.
type term struct {
	nfa  [8]int8
	s, c float64
}

// model gathers the polynomial part and the five Poisson series (t⁰..t⁴)
// of one CIO locator development.
type model struct {
	poly   [6]float64
	series [5][]term
}
