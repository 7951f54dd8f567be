// SPDX-License-Identifier: MIT

package polar

// Motion holds the CIP coordinates with respect to the ITRS, in radians.
type Motion struct {
	Xp float64
	Yp float64
}
