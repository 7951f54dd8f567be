// SPDX-License-Identifier: MIT
// Package refvec: sentinel errors.

package refvec

import "errors"

var (
	// ErrNotFound is returned when a named vector is absent from a Set.
	ErrNotFound = errors.New("refvec: vector not found")

	// ErrDuplicate is returned when a fixture repeats a vector name.
	ErrDuplicate = errors.New("refvec: duplicate vector name")

	// ErrBadMatrix is returned when a fixture matrix is not 3×3.
	ErrBadMatrix = errors.New("refvec: matrix must be 3x3")

	// ErrMissingKey is returned when a vector lacks a requested value.
	ErrMissingKey = errors.New("refvec: missing key")
)
