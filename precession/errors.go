// SPDX-License-Identifier: MIT
// Package precession: sentinel errors.

package precession

import "errors"

var (
	// ErrUnknownGeneration is returned when a Generation outside the defined
	// set is passed to BiasPrecession.
	ErrUnknownGeneration = errors.New("precession: unknown model generation")
)
