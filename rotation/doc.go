// Package rotation provides the fixed-size 3×3 matrix and 3-vector
// primitives the lvlsofa pipeline composes.
//
// What & Why:
//
//	Every output of the celestial-to-terrestrial pipeline is a rotation
//	matrix. Matrix is a plain [3][3]float64 value: it is copied on
//	assignment, needs no allocation and is safe to share between goroutines.
//
// Conventions (fixed for the whole module):
//
//	A Matrix M transforms a column vector expressed in frame A into frame B:
//	    v_B = M · v_A
//	Composition therefore reads right to left: "apply R1 then R2" is R2·R1.
//	Rx, Ry and Rz rotate the REFERENCE FRAME, so Identity().Rz(ψ) is the
//	matrix R3(ψ) of the classical literature, with a positive angle rotating
//	the frame anticlockwise as seen from the positive axis.
//
// Numeric policy:
//
//	Arithmetic follows a fixed summation order (k = 0, 1, 2) so results are
//	reproducible to the last bit on a given platform. gonum/mat is used only
//	for validation (orthonormality, determinant), never inside the pipeline.
//
// Complexity: every operation is O(1).
package rotation
