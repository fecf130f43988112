// Package triangular solves lower- and upper-triangular linear systems by
// forward and backward substitution, with unit-diagonal, multiple
// right-hand-side, and banded variants, plus the triangular helpers built on
// the same access pattern: triangular matrix–vector product, triangular
// inverse, and triangular determinant.
//
// Every routine reads only the triangular half it needs and trusts the
// caller that the buffer is actually triangular — the other half is never
// inspected. Shapes are validated fail-fast; triangularity is not.
//
// A diagonal magnitude below dense.PivotTol makes the system unsolvable and
// surfaces as ErrSingular. LsolveHasSolution / UsolveHasSolution let callers
// pre-check the diagonal without paying for a solve.
package triangular
