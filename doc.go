// Package densolve is a direct dense linear-algebra kernel: triangular and
// tridiagonal solvers, LU/QR/Cholesky factorizations, the derived quantities
// built on them, and a QR-iteration Schur decomposition.
//
// 🚀 What is densolve?
//
//	A deterministic, allocation-disciplined kernel that brings together:
//		• Triangular solvers: forward/backward substitution, unit-diagonal,
//		  multi-RHS, banded variants, triangular inverse & determinant
//		• Tridiagonal solver: the Thomas algorithm
//		• LU factorization: partial pivoting, packed storage, exact sign tracking
//		• QR factorization: Householder reflections, least-squares solve
//		• Cholesky factorization: A = L·Lᵀ for symmetric positive-definite input
//		• Derived operations: determinant, inverse, norms, rank, condition number
//		• Schur decomposition: repeated QR with a convergence loop
//
// ✨ Why choose densolve?
//
//   - Flat buffers – every routine takes row-major []float64 plus explicit dims
//   - Pure functions – inputs are never mutated, outputs are freshly allocated
//   - Unified failures – singularity is always ErrSingular, matched via errors.Is
//   - Pure Go – no cgo, no hidden deps
//
// Under the hood, everything is organized per algorithm family:
//
//	dense/       — shared flat-buffer primitives: multiply, norms, products
//	triangular/  — forward/backward substitution and triangular helpers
//	tridiagonal/ — Thomas algorithm
//	lu/          — partial-pivoted LU: factorize, solve, determinant
//	qr/          — Householder QR and least-squares solve
//	cholesky/    — symmetric positive-definite factorization
//	solve/       — determinant, inverse, linear solve, rank, condition number
//	schur/       — QR-iteration Schur form A = U·T·Uᵀ
//
// Data flows one way: callers hand in buffers and dimensions, each routine
// returns new buffers plus an error. Nothing here parses, dispatches on
// operand types, or owns matrix metadata — that belongs to the caller.
//
//	go get github.com/katalvlaran/densolve
package densolve
