// Package tridiagonal solves tridiagonal linear systems with the Thomas
// algorithm: a specialized O(n) forward sweep plus back substitution that
// never materializes the full matrix. Independent of the triangular solvers;
// the three diagonals are passed as separate vectors.
package tridiagonal
