// Package cholesky factors a symmetric positive-definite matrix as
// A = L·Lᵀ with L lower triangular, via the standard column-by-column
// recurrence. Symmetry of the input is trusted, not verified — only the
// lower half is read. Positive definiteness is what the algorithm itself
// detects: a non-positive diagonal accumulation aborts with
// ErrNotPositiveDefinite.
package cholesky
