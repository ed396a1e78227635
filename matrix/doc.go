// Package matrix offers the dense storage used for one-electron integral matrices.
//
// The matrix package provides:
//
//   - Dense: a row-major float64 matrix with error-returning At/Set and a
//     per-instance numeric policy (optional NaN/Inf rejection).
//   - MirrorUpper: completes a matrix whose strict upper triangle was filled,
//     making M[i,j] == M[j,i] bit-for-bit.
//   - Validators (ValidateSquare, ValidateSymmetric) and AllClose for tests and
//     pre-diagonalisation checks.
//   - Add and AddScaled for superposing integral matrices.
//   - ToSymDense to hand a symmetric matrix to gonum's eigen-solvers.
//
// Integral matrices are small (N ≤ a few hundred) and dense, so O(N²) memory
// is always acceptable.
package matrix
