// SPDX-License-Identifier: MIT

package cio

import (
	"math"

	"github.com/katalvlaran/lvlsofa/epoch"
	"github.com/katalvlaran/lvlsofa/fundarg"
	"github.com/katalvlaran/lvlsofa/rotation"
)

// evaluate computes s for the development m at TT date, given the CIP
// coordinates x, y.
//
// Stage 1: the eight fundamental arguments (IERS 2003).
// Stage 2: each Poisson series, smallest term first, added to the
// coefficient of the matching power of t.
// Stage 3: the polynomial in t, converted to radians, minus x·y/2.
func (m *model) evaluate(date epoch.Date, x, y float64) float64 {
	t := date.Centuries()

	// Stage 1
	fa := [8]float64{
		fundarg.L(t),
		fundarg.Lp(t),
		fundarg.F(t),
		fundarg.D(t),
		fundarg.Om(t),
		fundarg.Ve(t),
		fundarg.E(t),
		fundarg.Pa(t),
	}

	// Stage 2
	w := m.poly
	for k, series := range m.series {
		for i := len(series) - 1; i >= 0; i-- {
			a := 0.0
			for j, n := range series[i].nfa {
				a += float64(n) * fa[j]
			}
			w[k] += series[i].s*math.Sin(a) + series[i].c*math.Cos(a)
		}
	}

	// Stage 3
	return (w[0]+(w[1]+(w[2]+(w[3]+(w[4]+w[5]*t)*t)*t)*t)*t)*rotation.ArcsecToRad - x*y/2
}

// S00 returns the CIO locator s (radians) at TT date, using the IAU 2000
// development and the CIP coordinates x, y.
func S00(date epoch.Date, x, y float64) float64 {
	return s00Model.evaluate(date, x, y)
}

// S06 returns the CIO locator s (radians) at TT date, using the IAU 2006
// development and the CIP coordinates x, y.
func S06(date epoch.Date, x, y float64) float64 {
	return s06Model.evaluate(date, x, y)
}

// Eors returns the equation of the origins, ERA − GST, given the
// bias-precession-nutation matrix rnpb and the CIO locator s.
//
// The CIO is located on the CIP equator from s; the equinox is read off
// the matrix; the result is the angle between the two.
func Eors(rnpb rotation.Matrix, s float64) float64 {
	x := rnpb[2][0]
	ax := x / (1 + rnpb[2][2])
	xs := 1 - ax*x
	ys := -ax * rnpb[2][1]
	zs := -x
	p := rnpb[0][0]*xs + rnpb[0][1]*ys + rnpb[0][2]*zs
	q := rnpb[1][0]*xs + rnpb[1][1]*ys + rnpb[1][2]*zs
	if p == 0 && q == 0 {
		return s
	}

	return s - math.Atan2(q, p)
}
