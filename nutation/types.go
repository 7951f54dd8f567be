// SPDX-License-Identifier: MIT

package nutation

import (
	"fmt"
	"strings"
)

// Angles holds the nutation components in radians.
type Angles struct {
	Dpsi float64 // nutation in longitude
	Deps float64 // nutation in obliquity
}

// Model selects a nutation theory.
type Model int

const (
	// IAU2000A is the full MHB2000 series.
	IAU2000A Model = iota
	// IAU2000B is the truncated 77-term series.
	IAU2000B
	// IAU2006A is IAU2000A adjusted to be consistent with IAU 2006 precession.
	IAU2006A
)

// Models lists every defined Model in declaration order.
var Models = []Model{IAU2000A, IAU2000B, IAU2006A}

// String returns the conventional short name ("2000A", "2000B", "2006A").
func (m Model) String() string {
	switch m {
	case IAU2000A:
		return "2000A"
	case IAU2000B:
		return "2000B"
	case IAU2006A:
		return "2006A"
	default:
		return fmt.Sprintf("Model(%d)", int(m))
	}
}

// Valid reports whether m is one of the defined models.
func (m Model) Valid() bool {
	return m >= IAU2000A && m <= IAU2006A
}

// ParseModel accepts "2000A", "IAU2000A" and friends, case-insensitively.
func ParseModel(s string) (Model, error) {
	name := strings.TrimPrefix(strings.ToUpper(strings.TrimSpace(s)), "IAU")
	for _, m := range Models {
		if m.String() == name {
			return m, nil
		}
	}

	return 0, fmt.Errorf("ParseModel(%q): %w", s, ErrUnknownModel)
}

// lunisolarTerm is one row of a luni-solar series. Multipliers apply to
// l, l', F, D, Ω. Amplitudes are in units of 0.1 microarcsecond; the t
// coefficients are per Julian century.
type lunisolarTerm struct {
	nl, nlp, nf, nd, nom int8

	sp, spt, cp float64 // longitude: sin, t·sin, cos
	ce, cet, se float64 // obliquity: cos, t·cos, sin
}

// planetaryTerm is one row of the planetary series. Multipliers apply to
// l, F, D, Ω, the eight planetary longitudes and pA. Amplitudes are in
// units of 0.1 microarcsecond.
type planetaryTerm struct {
	nl, nf, nd, nom                        int8
	nme, nve, nea, nma, nju, nsa, nur, nne int8
	npa                                    int8

	sp, cp int32 // longitude: sin, cos
	se, ce int32 // obliquity: sin, cos
}
