package rotation_test

import (
	"fmt"

	"github.com/katalvlaran/lvlsofa/rotation"
)

// ExampleMatrix_Rz shows frame rotation: turning the frame by +90° about z
// makes the old x-axis appear along -y.
func ExampleMatrix_Rz() {
	r := rotation.Identity().Rz(rotation.TwoPi / 4)
	v := r.Apply(rotation.Vector{1, 0, 0})
	fmt.Printf("%.3f %.3f %.3f\n", v[0], v[1], v[2])
	// Output:
	// 0.000 -1.000 0.000
}
