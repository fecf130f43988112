// Package schur computes the real Schur decomposition A = U·T·Uᵀ by the
// unshifted QR algorithm: repeatedly factor the iterate as Q·R, re-multiply
// in reverse order, and accumulate the orthogonal factors until successive
// iterates stop moving in the Frobenius norm.
//
// T converges to upper quasi-triangular form (2×2 bumps may remain for
// complex eigenvalue pairs). Tolerance and iteration cap are functional
// options; hitting the cap above tolerance returns ErrNotConverged together
// with the last iterate, so "converged" and "gave up" are distinguishable.
package schur
