// SPDX-License-Identifier: MIT

package bpn

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlsofa/cio"
	"github.com/katalvlaran/lvlsofa/epoch"
	"github.com/katalvlaran/lvlsofa/nutation"
	"github.com/katalvlaran/lvlsofa/rotation"
)

// Bpn2xy extracts the CIP X, Y from a bias-precession-nutation matrix:
// they are the first two elements of its bottom row.
func Bpn2xy(rbpn rotation.Matrix) Pole {
	return Pole{X: rbpn[2][0], Y: rbpn[2][1]}
}

// C2ixys forms the celestial-to-intermediate matrix from the CIP X, Y and
// the CIO locator s.
func C2ixys(x, y, s float64) rotation.Matrix {
	r2 := x*x + y*y
	e := 0.0
	if r2 > 0 {
		e = math.Atan2(y, x)
	}
	d := math.Atan(math.Sqrt(r2 / (1 - r2)))

	return rotation.Identity().
		Rz(e).
		Ry(d).
		Rz(-(e + s))
}

// C2ixy forms the celestial-to-intermediate matrix at TT date from the CIP
// X, Y, evaluating s with the IAU 2000 series.
func C2ixy(date epoch.Date, x, y float64) rotation.Matrix {
	return C2ixys(x, y, cio.S00(date, x, y))
}

// C2ibpn forms the celestial-to-intermediate matrix at TT date from an
// IAU 2000 bias-precession-nutation matrix.
func C2ibpn(date epoch.Date, rbpn rotation.Matrix) rotation.Matrix {
	p := Bpn2xy(rbpn)

	return C2ixy(date, p.X, p.Y)
}

// C2i00a returns the IAU 2000A celestial-to-intermediate matrix at TT date.
func C2i00a(date epoch.Date) rotation.Matrix {
	return C2ibpn(date, Pnm00a(date))
}

// C2i00b returns the IAU 2000B celestial-to-intermediate matrix at TT date.
func C2i00b(date epoch.Date) rotation.Matrix {
	return C2ibpn(date, Pnm00b(date))
}

// C2i06a returns the IAU 2006/2000A celestial-to-intermediate matrix at TT
// date.
func C2i06a(date epoch.Date) rotation.Matrix {
	l := Xys06a(date)

	return C2ixys(l.X, l.Y, l.S)
}

// locate reads the CIP off rbpn and evaluates s with the given series.
func locate(date epoch.Date, rbpn rotation.Matrix, s func(epoch.Date, float64, float64) float64) PoleLocator {
	p := Bpn2xy(rbpn)

	return PoleLocator{Pole: p, S: s(date, p.X, p.Y)}
}

// Xys00a returns the IAU 2000A CIP X, Y and CIO locator s at TT date.
func Xys00a(date epoch.Date) PoleLocator { return locate(date, Pnm00a(date), cio.S00) }

// Xys00b returns the IAU 2000B CIP X, Y and CIO locator s at TT date.
func Xys00b(date epoch.Date) PoleLocator { return locate(date, Pnm00b(date), cio.S00) }

// Xys06a returns the IAU 2006/2000A CIP X, Y and CIO locator s at TT date.
func Xys06a(date epoch.Date) PoleLocator { return locate(date, Pnm06a(date), cio.S06) }

// S00a returns the CIO locator s at TT date, IAU 2000A model.
func S00a(date epoch.Date) float64 { return Xys00a(date).S }

// S00b returns the CIO locator s at TT date, IAU 2000B model.
func S00b(date epoch.Date) float64 { return Xys00b(date).S }

// S06a returns the CIO locator s at TT date, IAU 2006/2000A model.
func S06a(date epoch.Date) float64 { return Xys06a(date).S }

// Intermediate returns the celestial-to-intermediate matrix of model m at
// TT date.
func Intermediate(m nutation.Model, date epoch.Date) (rotation.Matrix, error) {
	switch m {
	case nutation.IAU2000A:
		return C2i00a(date), nil
	case nutation.IAU2000B:
		return C2i00b(date), nil
	case nutation.IAU2006A:
		return C2i06a(date), nil
	default:
		return rotation.Matrix{}, fmt.Errorf("bpn.Intermediate(%v): %w", m, nutation.ErrUnknownModel)
	}
}

// Locate returns the CIP X, Y and CIO locator s of model m at TT date.
func Locate(m nutation.Model, date epoch.Date) (PoleLocator, error) {
	switch m {
	case nutation.IAU2000A:
		return Xys00a(date), nil
	case nutation.IAU2000B:
		return Xys00b(date), nil
	case nutation.IAU2006A:
		return Xys06a(date), nil
	default:
		return PoleLocator{}, fmt.Errorf("bpn.Locate(%v): %w", m, nutation.ErrUnknownModel)
	}
}
