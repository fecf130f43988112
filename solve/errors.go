// SPDX-License-Identifier: MIT
// Package solve: sentinel aliases and operation tags.

package solve

import (
	"fmt"

	"github.com/katalvlaran/densolve/dense"
)

// ErrSingular is the kernel-wide singularity sentinel, aliased from dense so
// errors.Is matches across package boundaries.
var ErrSingular = dense.ErrSingular

// ErrBadShape is returned for non-positive dimensions or a negative tolerance.
var ErrBadShape = dense.ErrBadShape

// Operation name constants for unified error wrapping.
const (
	opDet     = "Det"
	opInverse = "Inverse"
	opLinear  = "Linear"
	opRank    = "Rank"
	opCond    = "Cond"
)

// solveErrorf wraps err with an operation tag, preserving the sentinel via %w.
// Use only when err != nil.
func solveErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
