// SPDX-License-Identifier: MIT

package rotation

// Matrix is a 3×3 row-major matrix: Matrix[i][j] is row i, column j.
type Matrix [3][3]float64

// Vector is a 3-component column vector.
type Vector [3]float64
