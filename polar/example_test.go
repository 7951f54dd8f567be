package polar_test

import (
	"fmt"

	"github.com/katalvlaran/lvlsofa/epoch"
	"github.com/katalvlaran/lvlsofa/polar"
)

func ExampleSp00() {
	fmt.Printf("%.6e\n", polar.Sp00(epoch.FromMJD(52541)))
	// Output:
	// -6.216698e-12
}
