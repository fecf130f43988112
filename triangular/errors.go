// SPDX-License-Identifier: MIT
// Package triangular: sentinel aliases.
// The kernel-wide sentinels live in dense; they are aliased here so call
// sites can write triangular.ErrSingular while errors.Is still matches
// dense.ErrSingular across package boundaries.

package triangular

import (
	"fmt"

	"github.com/katalvlaran/densolve/dense"
)

// ErrSingular is returned when a diagonal entry magnitude is below
// dense.PivotTol during substitution or triangular inversion.
var ErrSingular = dense.ErrSingular

// ErrBadShape is returned for non-positive dimensions or a negative bandwidth.
var ErrBadShape = dense.ErrBadShape

// ErrDimensionMismatch is returned when a buffer disagrees with its declared shape.
var ErrDimensionMismatch = dense.ErrDimensionMismatch

// ErrNilBuffer is returned when a nil buffer is passed where data is required.
var ErrNilBuffer = dense.ErrNilBuffer

// Operation name constants for unified error wrapping.
const (
	opLsolve         = "Lsolve"
	opUsolve         = "Usolve"
	opLsolveUnit     = "LsolveUnit"
	opUsolveUnit     = "UsolveUnit"
	opLsolveMultiple = "LsolveMultiple"
	opUsolveMultiple = "UsolveMultiple"
	opLsolveBanded   = "LsolveBanded"
	opUsolveBanded   = "UsolveBanded"
	opLowerMatVec    = "LowerMatVec"
	opUpperMatVec    = "UpperMatVec"
	opLowerInverse   = "LowerInverse"
	opUpperInverse   = "UpperInverse"
	opDet            = "Det"
	opHasSolution    = "HasSolution"
)

// triErrorf wraps err with an operation tag, preserving the sentinel via %w.
// Use only when err != nil.
func triErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
