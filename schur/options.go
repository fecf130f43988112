// SPDX-License-Identifier: MIT
// Package schur: functional configuration for the QR iteration.
// WithX constructors panic on nonsensical values (programmer error); data
// errors always travel through the error return of Decompose.

package schur

import "math"

// Iteration defaults (single source of truth).
const (
	// DefaultTolerance is the Frobenius-norm threshold on the difference of
	// successive iterates below which the iteration is declared converged.
	DefaultTolerance = 1e-4

	// DefaultMaxIterations caps the QR sweeps.
	DefaultMaxIterations = 100
)

// Option configures Decompose. Use with Decompose(a, n, opts...).
type Option func(*options)

// options holds the configurable iteration parameters.
type options struct {
	tol     float64 // convergence threshold on ‖Aₖ₊₁ − Aₖ‖F
	maxIter int     // sweep cap
}

// defaultOptions returns the documented defaults.
func defaultOptions() options {
	return options{
		tol:     DefaultTolerance,
		maxIter: DefaultMaxIterations,
	}
}

// WithTolerance returns an Option that sets the convergence threshold.
// Panics on a non-positive or NaN tolerance.
func WithTolerance(tol float64) Option {
	if tol <= 0 || math.IsNaN(tol) {
		panic("schur: WithTolerance requires a positive tolerance")
	}

	return func(o *options) {
		o.tol = tol
	}
}

// WithMaxIterations returns an Option that sets the sweep cap.
// Panics on a non-positive cap.
func WithMaxIterations(maxIter int) Option {
	if maxIter <= 0 {
		panic("schur: WithMaxIterations requires a positive cap")
	}

	return func(o *options) {
		o.maxIter = maxIter
	}
}
