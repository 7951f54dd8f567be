// SPDX-License-Identifier: MIT

package rotation

import (
	"fmt"
	"math"
	"strings"
)

// Identity returns the 3×3 identity matrix.
func Identity() Matrix {
	return Matrix{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

// Rx rotates the reference frame about the x-axis by phi (radians) and
// returns R1(phi)·r. The receiver is not modified.
//
//	R1(φ) = ( 1    0      0   )
//	        ( 0  +cosφ  +sinφ )
//	        ( 0  -sinφ  +cosφ )
func (r Matrix) Rx(phi float64) Matrix {
	s, c := math.Sincos(phi)
	var out Matrix
	out[0] = r[0]
	for j := 0; j < 3; j++ {
		out[1][j] = c*r[1][j] + s*r[2][j]
		out[2][j] = -s*r[1][j] + c*r[2][j]
	}

	return out
}

// Ry rotates the reference frame about the y-axis by theta (radians) and
// returns R2(theta)·r.
//
//	R2(θ) = ( +cosθ  0  -sinθ )
//	        (   0    1    0   )
//	        ( +sinθ  0  +cosθ )
func (r Matrix) Ry(theta float64) Matrix {
	s, c := math.Sincos(theta)
	var out Matrix
	out[1] = r[1]
	for j := 0; j < 3; j++ {
		out[0][j] = c*r[0][j] - s*r[2][j]
		out[2][j] = s*r[0][j] + c*r[2][j]
	}

	return out
}

// Rz rotates the reference frame about the z-axis by psi (radians) and
// returns R3(psi)·r.
//
//	R3(ψ) = ( +cosψ  +sinψ  0 )
//	        ( -sinψ  +cosψ  0 )
//	        (   0      0    1 )
func (r Matrix) Rz(psi float64) Matrix {
	s, c := math.Sincos(psi)
	var out Matrix
	out[2] = r[2]
	for j := 0; j < 3; j++ {
		out[0][j] = c*r[0][j] + s*r[1][j]
		out[1][j] = -s*r[0][j] + c*r[1][j]
	}

	return out
}

// Mul returns the product a·b.
// Each element is summed in the fixed order k = 0, 1, 2.
func Mul(a, b Matrix) Matrix {
	var out Matrix
	var i, j, k int
	for i = 0; i < 3; i++ {
		for j = 0; j < 3; j++ {
			w := 0.0
			for k = 0; k < 3; k++ {
				w += a[i][k] * b[k][j]
			}
			out[i][j] = w
		}
	}

	return out
}

// T returns the transpose of r. For a rotation matrix this is its inverse.
func (r Matrix) T() Matrix {
	var out Matrix
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = r[j][i]
		}
	}

	return out
}

// Apply returns r·v.
func (r Matrix) Apply(v Vector) Vector {
	var out Vector
	for j := 0; j < 3; j++ {
		w := 0.0
		for i := 0; i < 3; i++ {
			w += r[j][i] * v[i]
		}
		out[j] = w
	}

	return out
}

// TApply returns rᵀ·v, the inverse transformation for a rotation matrix.
func (r Matrix) TApply(v Vector) Vector {
	return r.T().Apply(v)
}

// Distance returns the largest absolute element-wise difference between a and b.
// Complexity: O(1) (nine comparisons).
func Distance(a, b Matrix) float64 {
	worst := 0.0
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if d := math.Abs(a[i][j] - b[i][j]); d > worst {
				worst = d
			}
		}
	}

	return worst
}

// String implements fmt.Stringer with full float64 precision.
func (r Matrix) String() string {
	var sb strings.Builder
	for i := 0; i < 3; i++ {
		sb.WriteString("[")
		for j := 0; j < 3; j++ {
			sb.WriteString(fmt.Sprintf("%+.19e", r[i][j]))
			if j < 2 {
				sb.WriteString(", ")
			}
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
