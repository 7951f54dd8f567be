// SPDX-License-Identifier: MIT

package sidereal

import (
	"github.com/katalvlaran/lvlsofa/bpn"
	"github.com/katalvlaran/lvlsofa/cio"
	"github.com/katalvlaran/lvlsofa/epoch"
	"github.com/katalvlaran/lvlsofa/rotation"
)

// Gst00a returns Greenwich apparent sidereal time, IAU 2000A:
// GMST (2000) plus the 2000A equation of the equinoxes.
func Gst00a(ut1, tt epoch.Date) float64 {
	return rotation.Anp(Gmst00(ut1, tt) + Ee00a(tt))
}

// Gst00b returns Greenwich apparent sidereal time, IAU 2000B. UT1 stands
// in for TT throughout.
func Gst00b(ut1 epoch.Date) float64 {
	return rotation.Anp(Gmst00(ut1, ut1) + Ee00b(ut1))
}

// Gst06 returns Greenwich apparent sidereal time given a
// bias-precession-nutation matrix rnpb (IAU 2006 CIO locator).
//
// Stage 1: CIP X, Y from rnpb and s from the 2006 series.
// Stage 2: GST = ERA − EO.
func Gst06(ut1, tt epoch.Date, rnpb rotation.Matrix) float64 {
	// Stage 1
	p := bpn.Bpn2xy(rnpb)
	s := cio.S06(tt, p.X, p.Y)

	// Stage 2
	return rotation.Anp(Era00(ut1) - cio.Eors(rnpb, s))
}

// Gst06a returns Greenwich apparent sidereal time, IAU 2006/2000A.
func Gst06a(ut1, tt epoch.Date) float64 {
	return Gst06(ut1, tt, bpn.Pnm06a(tt))
}
