// SPDX-License-Identifier: MIT
// Package nutation: sentinel errors.

package nutation

import "errors"

var (
	// ErrUnknownModel is returned when a Model value outside the defined set
	// is passed to a strategy entry point.
	ErrUnknownModel = errors.New("nutation: unknown model")
)
