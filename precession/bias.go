// SPDX-License-Identifier: MIT

package precession

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlsofa/epoch"
	"github.com/katalvlaran/lvlsofa/rotation"
)

// J2000.0 obliquity used by the IAU 1976 precession (radians).
const eps0J2000 = 84381.448 * rotation.ArcsecToRad

// Bi00 returns the frame bias of the IAU 2000 precession-nutation model
// (Chapront, Chapront-Touzé & Francou 2002).
func Bi00() FrameBias {
	return FrameBias{
		Dpsibi: -0.041775 * rotation.ArcsecToRad,
		Depsbi: -0.0068192 * rotation.ArcsecToRad,
		Dra:    -0.0146 * rotation.ArcsecToRad,
	}
}

// Pr00 returns the IAU 2000 precession-rate adjustments at TT date.
func Pr00(date epoch.Date) RateCorrections {
	const (
		precor = -0.29965 * rotation.ArcsecToRad
		oblcor = -0.02524 * rotation.ArcsecToRad
	)
	t := date.Centuries()

	return RateCorrections{Dpsipr: precor * t, Depspr: oblcor * t}
}

// Compose returns Rbp = Rp·Rb: frame bias applied first, then precession.
func Compose(rb, rp rotation.Matrix) rotation.Matrix {
	return rotation.Mul(rp, rb)
}

// Bp00 returns the IAU 2000 frame-bias and precession matrices at TT date.
//
// Stage 1 (Bias): Rb = R1(−Δε_B)·R2(Δψ_B sin ε0)·R3(dα0).
// Stage 2 (Precession): IAU 1976 ψ, ω, χ with the IAU 2000 rate
// corrections; Rp = R3(χ)·R1(−ω)·R3(−ψ)·R1(ε0).
// Stage 3: Rbp = Rp·Rb.
func Bp00(date epoch.Date) Bias {
	t := date.Centuries()

	// Stage 1: frame bias.
	fb := Bi00()
	rb := rotation.Identity().
		Rz(fb.Dra).
		Ry(fb.Dpsibi * math.Sin(eps0J2000)).
		Rx(-fb.Depsbi)

	// Stage 2: precession angles (Lieske et al. 1977) plus corrections.
	psia77 := (5038.7784 + (-1.07259+(-0.001147)*t)*t) * t * rotation.ArcsecToRad
	oma77 := eps0J2000 + ((0.05127+(-0.007726)*t)*t)*t*rotation.ArcsecToRad
	chia := (10.5526 + (-2.38064+(-0.001125)*t)*t) * t * rotation.ArcsecToRad

	pr := Pr00(date)
	psia := psia77 + pr.Dpsipr
	oma := oma77 + pr.Depspr

	rp := rotation.Identity().
		Rx(eps0J2000).
		Rz(-psia).
		Rx(-oma).
		Rz(chia)

	// Stage 3: composition.
	return Bias{Rb: rb, Rp: rp, Rbp: Compose(rb, rp)}
}

// Bp06 returns the IAU 2006 frame-bias and precession matrices at TT date.
// The bias is the Fukushima-Williams matrix at J2000.0; the precession is
// recovered as Rp = Rbp·Rbᵀ.
func Bp06(date epoch.Date) Bias {
	b := Pfw06(epoch.FromMJD(epoch.MJDJ2000))
	rb := Fw2m(b.Gamb, b.Phib, b.Psib, b.Epsa)
	rbp := Pmat06(date)

	return Bias{Rb: rb, Rp: rotation.Mul(rbp, rb.T()), Rbp: rbp}
}

// Pmat00 returns the IAU 2000 bias-precession matrix Rbp at TT date.
func Pmat00(date epoch.Date) rotation.Matrix {
	return Bp00(date).Rbp
}

// Pmat06 returns the IAU 2006 bias-precession matrix Rbp at TT date.
func Pmat06(date epoch.Date) rotation.Matrix {
	fw := Pfw06(date)

	return Fw2m(fw.Gamb, fw.Phib, fw.Psib, fw.Epsa)
}

// BiasPrecession evaluates the bias-precession bundle for generation gen.
func BiasPrecession(gen Generation, date epoch.Date) (Bias, error) {
	switch gen {
	case IAU2000:
		return Bp00(date), nil
	case IAU2006:
		return Bp06(date), nil
	default:
		return Bias{}, fmt.Errorf("BiasPrecession(%v): %w", gen, ErrUnknownGeneration)
	}
}
