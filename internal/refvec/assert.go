// SPDX-License-Identifier: MIT

package refvec

import (
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlsofa/rotation"
)

// RequireMatrix fails t unless every element of got is within tol of want.
func RequireMatrix(t require.TestingT, want, got rotation.Matrix, tol float64, label string) {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			require.InDeltaf(t, want[i][j], got[i][j], tol, "%s[%d][%d]", label, i, j)
		}
	}
}

// RequireValue fails t unless got is within v.Tol of v.Values[key].
func RequireValue(t require.TestingT, v Vector, key string, got float64) {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	want, err := v.Value(key)
	require.NoError(t, err)
	require.InDeltaf(t, want, got, v.Tol, "%s.%s", v.Name, key)
}

// RequireNamedMatrix fails t unless got matches v.Matrices[key] within v.Tol.
func RequireNamedMatrix(t require.TestingT, v Vector, key string, got rotation.Matrix) {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	want, err := v.Matrix(key)
	require.NoError(t, err)
	RequireMatrix(t, want, got, v.Tol, v.Name+"."+key)
}
