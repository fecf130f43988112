// Package qr implements Householder-reflection QR factorization of an m×n
// buffer: A = Q·R with Q orthogonal (m×m) and R upper trapezoidal (m×n).
// Q is accumulated as the product of the reflections themselves, so A = Q·R
// holds directly without a transpose pass.
//
// Rank-deficient columns (norm below dense.PivotTol over the remaining rows)
// are skipped silently rather than reported: rank deficiency is a legitimate
// state for QR, unlike a broken elimination. SolveLS builds on the
// factorization for least-squares systems with m ≥ n.
package qr
