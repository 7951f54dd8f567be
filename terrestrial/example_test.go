package terrestrial_test

import (
	"fmt"

	"github.com/katalvlaran/lvlsofa/epoch"
	"github.com/katalvlaran/lvlsofa/nutation"
	"github.com/katalvlaran/lvlsofa/polar"
	"github.com/katalvlaran/lvlsofa/rotation"
	"github.com/katalvlaran/lvlsofa/terrestrial"
)

func ExampleMatrix() {
	tt := epoch.FromMJD(53736)
	ut1 := epoch.FromMJD(53736)
	pole := polar.Motion{Xp: 2.55060238e-7, Yp: 1.860359247e-6}

	r, err := terrestrial.Matrix(tt, ut1, pole,
		terrestrial.WithModel(nutation.IAU2000B),
		terrestrial.WithTIOLocator(false))
	if err != nil {
		fmt.Println(err)
		return
	}

	// Unit vector toward the GCRS pole, expressed in the ITRS.
	z := r.Apply(rotation.Vector{0, 0, 1})
	fmt.Printf("%.6f %.6f %.6f\n", z[0], z[1], z[2])
	// Output:
	// 0.000066 0.000575 1.000000
}

func ExampleC2teqx() {
	r := terrestrial.C2teqx(rotation.Identity(), 0, rotation.Identity())
	fmt.Println(r == rotation.Identity())
	// Output:
	// true
}
