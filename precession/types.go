// SPDX-License-Identifier: MIT

package precession

import (
	"fmt"

	"github.com/katalvlaran/lvlsofa/rotation"
)

// Generation selects the IAU precession model family.
type Generation int

const (
	// IAU2000 is the IAU 2000 precession-nutation framework.
	IAU2000 Generation = iota
	// IAU2006 is the IAU 2006 (P03) precession.
	IAU2006
)

// String returns "IAU2000" or "IAU2006".
func (g Generation) String() string {
	switch g {
	case IAU2000:
		return "IAU2000"
	case IAU2006:
		return "IAU2006"
	default:
		return fmt.Sprintf("Generation(%d)", int(g))
	}
}

// FrameBias holds the IAU 2000 frame-bias components (radians).
type FrameBias struct {
	Dpsibi float64 // longitude correction
	Depsbi float64 // obliquity correction
	Dra    float64 // ICRS RA of the J2000.0 mean equinox
}

// RateCorrections holds the IAU 2000 corrections to the IAU 1976
// precession rates, accumulated to the epoch (radians).
type RateCorrections struct {
	Dpsipr float64 // precession in longitude
	Depspr float64 // obliquity
}

// Bias bundles the frame-bias matrix, the precession matrix and their
// product Rbp = Rp·Rb.
type Bias struct {
	Rb  rotation.Matrix // GCRS → J2000.0 mean
	Rp  rotation.Matrix // J2000.0 mean → mean of date
	Rbp rotation.Matrix // GCRS → mean of date
}

// EulerAngles are the classical ζ, z, θ precession angles (radians), here
// including the frame bias.
type EulerAngles struct {
	Zeta  float64
	Z     float64
	Theta float64
}

// FWAngles are the Fukushima-Williams bias-precession angles (radians).
type FWAngles struct {
	Gamb float64 // F-W angle γ̄
	Phib float64 // F-W angle φ̄
	Psib float64 // F-W angle ψ̄
	Epsa float64 // mean obliquity ε_A
}

// Angles06 is the complete set of IAU 2006 precession angles (radians).
type Angles06 struct {
	Eps0   float64 // ε0: obliquity at J2000.0
	Psia   float64 // ψA: luni-solar precession
	Oma    float64 // ωA: inclination of equator wrt J2000.0 ecliptic
	Bpa    float64 // P_A: ecliptic pole x, J2000.0 ecliptic triad
	Bqa    float64 // Q_A: ecliptic pole -y, J2000.0 ecliptic triad
	Pia    float64 // πA: angle between moving and J2000.0 ecliptics
	Bpia   float64 // ΠA: longitude of ascending node of the ecliptic
	Epsa   float64 // εA: obliquity of the ecliptic
	Chia   float64 // χA: planetary precession
	Za     float64 // zA: equatorial precession, -3rd 323 Euler angle
	Zetaa  float64 // ζA: equatorial precession, -1st 323 Euler angle
	Thetaa float64 // θA: equatorial precession, 2nd 323 Euler angle
	Pa     float64 // pA: general precession
	Gam    float64 // γ̄_J2000: F-W angle
	Phi    float64 // φ̄_J2000: F-W angle
	Psi    float64 // ψ̄_J2000: F-W angle
}
