// Package solve provides the derived scalar/matrix quantities of the kernel:
// determinant, inverse, general linear solve, rank estimation, and
// condition-number estimates.
//
// Determinant and inverse use closed forms for the 1×1–3×3 cases (direct
// formula, Sarrus' rule, cofactors) and elimination beyond that. The general
// linear solve delegates to the single LU primitive in package lu — there is
// exactly one elimination implementation in this kernel, and every derived
// operation consumes it.
//
// Failures follow the kernel-wide convention: singularity is ErrSingular via
// errors.Is. The one exception is the condition number, which returns +Inf
// for a singular matrix — that is the condition number's value, not a
// failure.
package solve
