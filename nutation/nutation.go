// SPDX-License-Identifier: MIT

package nutation

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlsofa/epoch"
	"github.com/katalvlaran/lvlsofa/fundarg"
	"github.com/katalvlaran/lvlsofa/rotation"
)

// Series units.
const (
	// tenthMicroarcsec converts table amplitudes to radians.
	tenthMicroarcsec = rotation.TenthMicroarcsecToRad

	// Fixed planetary offsets used by IAU 2000B in place of the planetary
	// series (milliarcseconds).
	dpsiPlanetary00B = -0.135 * rotation.MilliarcsecToRad
	depsPlanetary00B = 0.388 * rotation.MilliarcsecToRad
)

// arcsecTurn reduces an angle given in arcseconds modulo one turn and
// returns radians.
func arcsecTurn(as float64) float64 {
	return math.Mod(as, rotation.TurnArcsec) * rotation.ArcsecToRad
}

// sumLunisolar evaluates terms[len-1] .. terms[0] for the given Delaunay
// arguments and returns the sums in radians.
func sumLunisolar(terms []lunisolarTerm, t, el, elp, f, d, om float64) Angles {
	var dp, de float64
	for i := len(terms) - 1; i >= 0; i-- {
		x := &terms[i]
		arg := math.Mod(float64(x.nl)*el+
			float64(x.nlp)*elp+
			float64(x.nf)*f+
			float64(x.nd)*d+
			float64(x.nom)*om, rotation.TwoPi)
		sarg := math.Sin(arg)
		carg := math.Cos(arg)

		dp += (x.sp+x.spt*t)*sarg + x.cp*carg
		de += (x.ce+x.cet*t)*carg + x.se*sarg
	}

	return Angles{Dpsi: dp * tenthMicroarcsec, Deps: de * tenthMicroarcsec}
}

// Nut00a returns the IAU 2000A nutation at TT date.
//
// Stage 1 (Luni-solar): Delaunay arguments from the IERS 2003 polynomials
// (MHB2000 values for l' and D), series summed smallest term first.
// Stage 2 (Planetary): the MHB2000 linear arguments for l, F, D, Ω and
// Neptune, the IERS 2003 ones for the other planets and pA.
// Stage 3: the two contributions are added.
func Nut00a(date epoch.Date) Angles {
	t := date.Centuries()

	// Stage 1: luni-solar nutation.
	el := fundarg.L(t)
	elp := arcsecTurn(1287104.79305 + t*(129596581.0481+t*(-0.5532+t*(0.000136+t*(-0.00001149)))))
	f := fundarg.F(t)
	d := arcsecTurn(1072260.70369 + t*(1602961601.2090+t*(-6.3706+t*(0.006593+t*(-0.00003169)))))
	om := fundarg.Om(t)
	ls := sumLunisolar(lunisolar[:], t, el, elp, f, d, om)

	// Stage 2: planetary nutation.
	al := math.Mod(2.35555598+8328.6914269554*t, rotation.TwoPi)
	af := math.Mod(1.627905234+8433.466158131*t, rotation.TwoPi)
	ad := math.Mod(5.198466741+7771.3771468121*t, rotation.TwoPi)
	aom := math.Mod(2.18243920-33.757045*t, rotation.TwoPi)
	apa := fundarg.Pa(t)
	alme := fundarg.Me(t)
	alve := fundarg.Ve(t)
	alea := fundarg.E(t)
	alma := fundarg.Ma(t)
	alju := fundarg.Ju(t)
	alsa := fundarg.Sa(t)
	alur := fundarg.Ur(t)
	alne := math.Mod(5.321159000+3.8127774000*t, rotation.TwoPi)

	var dp, de float64
	for i := len(planetary) - 1; i >= 0; i-- {
		x := &planetary[i]
		arg := math.Mod(float64(x.nl)*al+
			float64(x.nf)*af+
			float64(x.nd)*ad+
			float64(x.nom)*aom+
			float64(x.nme)*alme+
			float64(x.nve)*alve+
			float64(x.nea)*alea+
			float64(x.nma)*alma+
			float64(x.nju)*alju+
			float64(x.nsa)*alsa+
			float64(x.nur)*alur+
			float64(x.nne)*alne+
			float64(x.npa)*apa, rotation.TwoPi)
		sarg := math.Sin(arg)
		carg := math.Cos(arg)

		dp += float64(x.sp)*sarg + float64(x.cp)*carg
		de += float64(x.se)*sarg + float64(x.ce)*carg
	}

	// Stage 3: total.
	return Angles{
		Dpsi: ls.Dpsi + dp*tenthMicroarcsec,
		Deps: ls.Deps + de*tenthMicroarcsec,
	}
}

// Nut00b returns the IAU 2000B nutation at TT date: the 77 largest
// luni-solar terms with linear Delaunay arguments, plus constant offsets
// standing in for the planetary series.
func Nut00b(date epoch.Date) Angles {
	t := date.Centuries()

	el := arcsecTurn(485868.249036 + 1717915923.2178*t)
	elp := arcsecTurn(1287104.79305 + 129596581.0481*t)
	f := arcsecTurn(335779.526232 + 1739527262.8478*t)
	d := arcsecTurn(1072260.70369 + 1602961601.2090*t)
	om := arcsecTurn(450160.398036 - 6962890.5431*t)

	ls := sumLunisolar(lunisolar[:lunisolarTerms00B], t, el, elp, f, d, om)

	return Angles{
		Dpsi: ls.Dpsi + dpsiPlanetary00B,
		Deps: ls.Deps + depsPlanetary00B,
	}
}

// Nut06a returns the IAU 2000A nutation with the IAU 2006 adjustments:
// a rate factor for the secular decrease of J2 and the P03 scaling of Δψ.
func Nut06a(date epoch.Date) Angles {
	t := date.Centuries()
	fj2 := -2.7774e-6 * t

	a := Nut00a(date)

	return Angles{
		Dpsi: a.Dpsi + a.Dpsi*(0.4697e-6+fj2),
		Deps: a.Deps + a.Deps*fj2,
	}
}

// Compute evaluates the nutation model m at TT date.
// It returns ErrUnknownModel for values outside the defined set.
func Compute(m Model, date epoch.Date) (Angles, error) {
	switch m {
	case IAU2000A:
		return Nut00a(date), nil
	case IAU2000B:
		return Nut00b(date), nil
	case IAU2006A:
		return Nut06a(date), nil
	default:
		return Angles{}, fmt.Errorf("Compute(%v): %w", m, ErrUnknownModel)
	}
}
