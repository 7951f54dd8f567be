// SPDX-License-Identifier: MIT
// Package terrestrial: sentinel errors.

package terrestrial

import "errors"

var (
	// ErrUnknownMethod is returned when a Method value outside the defined
	// set is requested.
	ErrUnknownMethod = errors.New("terrestrial: unknown method")
)
