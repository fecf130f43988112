// Package dense provides the shared flat-buffer primitives every other
// densolve package is built on: matrix multiplication, transpose, identity,
// element-wise combination, vector and matrix norms, and the definitional
// products (dot, cross, outer, Kronecker).
//
// Conventions (package-wide):
//
//   - A matrix is a row-major []float64 of length rows*cols; the element
//     (i, j) lives at a[i*cols+j]. Shape travels alongside as explicit ints.
//   - Inputs are read-only; every routine allocates and returns fresh output.
//   - Shape violations fail fast with ErrBadShape / ErrDimensionMismatch /
//     ErrNilBuffer sentinels. Numerical breakdown is ErrSingular, shared by
//     the factorization packages via errors.Is.
//
// Matrices are dense by design; sparse specializations are out of scope.
package dense
