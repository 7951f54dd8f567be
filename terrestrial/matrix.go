// SPDX-License-Identifier: MIT

package terrestrial

import (
	"fmt"

	"github.com/katalvlaran/lvlsofa/bpn"
	"github.com/katalvlaran/lvlsofa/epoch"
	"github.com/katalvlaran/lvlsofa/nutation"
	"github.com/katalvlaran/lvlsofa/polar"
	"github.com/katalvlaran/lvlsofa/rotation"
	"github.com/katalvlaran/lvlsofa/sidereal"
)

// Matrix returns the celestial-to-terrestrial matrix at TT and UT1 for the
// pole position m, with the model and method taken from opts.
//
// Stage 1: resolve options; reject unknown models and methods.
// Stage 2: W from the pole, with or without s′.
// Stage 3: the Q and R factors for the chosen method, then W · R · Q.
//
// Errors:
//   - nutation.ErrUnknownModel (wrapped) for a Model outside the enum.
//   - ErrUnknownMethod (wrapped) for a Method outside the enum.
func Matrix(tt, ut1 epoch.Date, m polar.Motion, opts ...Option) (rotation.Matrix, error) {
	// Stage 1
	o := gatherOptions(opts)
	if !o.Model.Valid() {
		return rotation.Matrix{}, fmt.Errorf("terrestrial.Matrix(%v): %w", o.Model, nutation.ErrUnknownModel)
	}

	// Stage 2
	rpom := m.Matrix(tt, o.TIOLocator)

	// Stage 3
	switch o.Method {
	case CIOBased:
		rc2i, err := bpn.Intermediate(o.Model, tt)
		if err != nil {
			return rotation.Matrix{}, fmt.Errorf("terrestrial.Matrix: %w", err)
		}

		return C2tcio(rc2i, sidereal.Era00(ut1), rpom), nil
	case EquinoxBased:
		rbpn, err := bpn.Matrix(o.Model, tt)
		if err != nil {
			return rotation.Matrix{}, fmt.Errorf("terrestrial.Matrix: %w", err)
		}

		return C2teqx(rbpn, apparentSiderealTime(o.Model, tt, ut1, rbpn), rpom), nil
	default:
		return rotation.Matrix{}, fmt.Errorf("terrestrial.Matrix(%v): %w", o.Method, ErrUnknownMethod)
	}
}

// apparentSiderealTime returns GST consistent with model and its matrix
// rbpn. The 2000B value uses TT for the precession terms, unlike Gst00b.
func apparentSiderealTime(model nutation.Model, tt, ut1 epoch.Date, rbpn rotation.Matrix) float64 {
	switch model {
	case nutation.IAU2000A:
		return sidereal.Gst00a(ut1, tt)
	case nutation.IAU2000B:
		return rotation.Anp(sidereal.Gmst00(ut1, tt) + sidereal.Ee00b(tt))
	default:
		return sidereal.Gst06(ut1, tt, rbpn)
	}
}
