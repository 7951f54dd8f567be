// SPDX-License-Identifier: MIT

package bpn

import (
	"github.com/katalvlaran/lvlsofa/nutation"
	"github.com/katalvlaran/lvlsofa/rotation"
)

// Pole holds the coordinates of the Celestial Intermediate Pole in the
// GCRS (radians, dimensionless direction-cosine components).
type Pole struct {
	X float64
	Y float64
}

// PoleLocator is the CIP together with the CIO locator s.
type PoleLocator struct {
	Pole
	S float64 // CIO locator (radians)
}

// PN is the full bias-precession-nutation bundle.
type PN struct {
	Nutation nutation.Angles // Δψ, Δε
	Epsa     float64         // mean obliquity of date
	Rb       rotation.Matrix // frame bias
	Rp       rotation.Matrix // precession
	Rbp      rotation.Matrix // bias-precession
	Rn       rotation.Matrix // nutation
	Rbpn     rotation.Matrix // GCRS → true equator and equinox of date
}
