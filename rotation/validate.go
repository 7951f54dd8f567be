// SPDX-License-Identifier: MIT

package rotation

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Dense copies r into a new gonum *mat.Dense for use with general
// linear-algebra routines.
func (r Matrix) Dense() *mat.Dense {
	return mat.NewDense(3, 3, []float64{
		r[0][0], r[0][1], r[0][2],
		r[1][0], r[1][1], r[1][2],
		r[2][0], r[2][1], r[2][2],
	})
}

// FromDense copies a 3×3 gonum matrix into a Matrix.
// It panics if m is not 3×3 (programmer error).
func FromDense(m mat.Matrix) Matrix {
	rows, cols := m.Dims()
	if rows != 3 || cols != 3 {
		panic(fmt.Sprintf("rotation: FromDense: want 3x3, got %dx%d", rows, cols))
	}
	var out Matrix
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = m.At(i, j)
		}
	}

	return out
}

// Orthonormality returns max|RᵀR − I|, the largest deviation of r from
// an orthonormal matrix.
func Orthonormality(r Matrix) float64 {
	d := r.Dense()
	var p mat.Dense
	p.Mul(d.T(), d)

	worst := 0.0
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			e := p.At(i, j)
			if i == j {
				e -= 1
			}
			worst = math.Max(worst, math.Abs(e))
		}
	}

	return worst
}

// Validate reports whether r is a proper rotation within eps.
//
// Stage 1 (Validate): eps must be finite and ≥ 0.
// Stage 2 (Orthonormality): max|RᵀR − I| ≤ eps, else ErrNotOrthonormal.
// Stage 3 (Handedness): det(R) > 0, else ErrImproper.
//
// The pipeline never calls Validate itself; it is offered to callers who
// accept matrices from outside lvlsofa.
func Validate(r Matrix, eps float64) error {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		return ErrBadTolerance
	}
	if dev := Orthonormality(r); dev > eps {
		return fmt.Errorf("Validate: deviation %.3e > %.3e: %w", dev, eps, ErrNotOrthonormal)
	}
	if mat.Det(r.Dense()) <= 0 {
		return ErrImproper
	}

	return nil
}
