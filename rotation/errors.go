// SPDX-License-Identifier: MIT
// Package rotation: sentinel errors.
// Only validation helpers return errors; the primitives themselves are total.

package rotation

import "errors"

var (
	// ErrNotOrthonormal is returned by Validate when RᵀR deviates from I by more than eps.
	ErrNotOrthonormal = errors.New("rotation: matrix is not orthonormal within eps")

	// ErrImproper is returned by Validate when det(R) is negative (a reflection).
	ErrImproper = errors.New("rotation: matrix is not a proper rotation")

	// ErrBadTolerance is returned when a tolerance is negative, NaN or Inf.
	ErrBadTolerance = errors.New("rotation: tolerance must be finite and non-negative")
)
