// SPDX-License-Identifier: MIT

package bpn

import (
	"fmt"

	"github.com/katalvlaran/lvlsofa/epoch"
	"github.com/katalvlaran/lvlsofa/nutation"
	"github.com/katalvlaran/lvlsofa/precession"
	"github.com/katalvlaran/lvlsofa/rotation"
)

// Compose returns Rbpn = Rn·Rbp: bias-precession first, then nutation.
func Compose(rbp, rn rotation.Matrix) rotation.Matrix {
	return rotation.Mul(rn, rbp)
}

// Pn00 returns the IAU 2000 bias-precession-nutation bundle at TT date for
// caller-supplied nutation angles.
//
// Stage 1: mean obliquity, IAU 1980 corrected by the 2000 rate adjustment.
// Stage 2: frame bias and precession matrices.
// Stage 3: nutation matrix and the composed Rbpn.
func Pn00(date epoch.Date, dpsi, deps float64) PN {
	// Stage 1
	epsa := precession.Obl80(date) + precession.Pr00(date).Depspr

	// Stage 2
	b := precession.Bp00(date)

	// Stage 3
	a := nutation.Angles{Dpsi: dpsi, Deps: deps}
	rn := nutation.Matrix(epsa, a)

	return PN{
		Nutation: a,
		Epsa:     epsa,
		Rb:       b.Rb,
		Rp:       b.Rp,
		Rbp:      b.Rbp,
		Rn:       rn,
		Rbpn:     Compose(b.Rbp, rn),
	}
}

// Pn00a is Pn00 with IAU 2000A nutation.
func Pn00a(date epoch.Date) PN {
	a := nutation.Nut00a(date)

	return Pn00(date, a.Dpsi, a.Deps)
}

// Pn00b is Pn00 with IAU 2000B nutation.
func Pn00b(date epoch.Date) PN {
	a := nutation.Nut00b(date)

	return Pn00(date, a.Dpsi, a.Deps)
}

// Pn06 returns the IAU 2006 bias-precession-nutation bundle at TT date for
// caller-supplied nutation angles. All matrices come from
// Fukushima-Williams angles; Rp and Rn are recovered by removing the
// preceding factor.
func Pn06(date epoch.Date, dpsi, deps float64) PN {
	b := precession.Bp06(date)
	fw := precession.Pfw06(date)
	rbpn := precession.Fw2m(fw.Gamb, fw.Phib, fw.Psib+dpsi, fw.Epsa+deps)

	return PN{
		Nutation: nutation.Angles{Dpsi: dpsi, Deps: deps},
		Epsa:     fw.Epsa,
		Rb:       b.Rb,
		Rp:       b.Rp,
		Rbp:      b.Rbp,
		Rn:       rotation.Mul(rbpn, b.Rbp.T()),
		Rbpn:     rbpn,
	}
}

// Pn06a is Pn06 with IAU 2006/2000A nutation.
func Pn06a(date epoch.Date) PN {
	a := nutation.Nut06a(date)

	return Pn06(date, a.Dpsi, a.Deps)
}

// Pnm00a returns the IAU 2000A bias-precession-nutation matrix at TT date.
func Pnm00a(date epoch.Date) rotation.Matrix {
	return Pn00a(date).Rbpn
}

// Pnm00b returns the IAU 2000B bias-precession-nutation matrix at TT date.
func Pnm00b(date epoch.Date) rotation.Matrix {
	return Pn00b(date).Rbpn
}

// Pnm06a returns the IAU 2006/2000A bias-precession-nutation matrix at TT
// date.
func Pnm06a(date epoch.Date) rotation.Matrix {
	fw := precession.Pfw06(date)
	a := nutation.Nut06a(date)

	return precession.Fw2m(fw.Gamb, fw.Phib, fw.Psib+a.Dpsi, fw.Epsa+a.Deps)
}

// Matrix returns the bias-precession-nutation matrix of model m at TT date.
func Matrix(m nutation.Model, date epoch.Date) (rotation.Matrix, error) {
	switch m {
	case nutation.IAU2000A:
		return Pnm00a(date), nil
	case nutation.IAU2000B:
		return Pnm00b(date), nil
	case nutation.IAU2006A:
		return Pnm06a(date), nil
	default:
		return rotation.Matrix{}, fmt.Errorf("bpn.Matrix(%v): %w", m, nutation.ErrUnknownModel)
	}
}
