package precession_test

import (
	"fmt"

	"github.com/katalvlaran/lvlsofa/epoch"
	"github.com/katalvlaran/lvlsofa/precession"
	"github.com/katalvlaran/lvlsofa/rotation"
)

func ExampleObl06() {
	eps := precession.Obl06(epoch.FromJD(epoch.J2000))
	fmt.Printf("%.10f\n", eps)
	// Output:
	// 0.4090926006
}

func ExampleBiasPrecession() {
	b, err := precession.BiasPrecession(precession.IAU2006, epoch.FromJD(epoch.J2000))
	if err != nil {
		fmt.Println(err)
		return
	}
	// At J2000.0 precession is the identity and Rbp reduces to the bias.
	fmt.Println(rotation.Distance(b.Rp, rotation.Identity()) < 1e-15)
	// Output:
	// true
}
