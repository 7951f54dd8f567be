package sidereal_test

import (
	"fmt"

	"github.com/katalvlaran/lvlsofa/epoch"
	"github.com/katalvlaran/lvlsofa/sidereal"
)

func ExampleEra00() {
	fmt.Printf("%.12f\n", sidereal.Era00(epoch.FromMJD(54388)))
	// Output:
	// 0.402283724003
}

func ExampleGst00b() {
	fmt.Printf("%.9f\n", sidereal.Gst00b(epoch.FromMJD(53736)))
	// Output:
	// 1.754166137
}
