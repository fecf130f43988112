// Package lu implements Gaussian elimination with partial pivoting, producing
// a packed LU factorization of a square matrix: P·A = L·U with L unit lower
// triangular and U upper triangular, both stored in one n×n buffer.
//
// This is the single elimination primitive of the kernel — the general linear
// solve, determinant, inverse and condition-number routines in package solve
// all consume it rather than re-deriving elimination.
//
// The permutation sign is tracked exactly: a ±1 flag flipped on every actual
// row swap during elimination, never reconstructed from the permutation
// afterwards. Displacement-count parity is wrong for cycles longer than two;
// the tracked sign is not.
package lu
