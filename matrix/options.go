// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for numeric tolerances.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the singularity threshold: Inverse fails when |det| ≤ eps.
	DefaultEpsilon = 1e-10

	// DefaultEigenTolerance bounds the largest off-diagonal magnitude at
	// convergence, relative to the Frobenius norm of the input.
	DefaultEigenTolerance = 1e-12

	// DefaultMaxIterations = 0 selects an automatic Jacobi rotation budget of
	// eigenIterPerCell·n² (at least eigenMinIter).
	DefaultMaxIterations = 0
)

const (
	eigenIterPerCell = 50
	eigenMinIter     = 100
)

const (
	panicEpsilonInvalid  = "matrix: WithEpsilon: eps must be finite and >= 0"
	panicEigenTolInvalid = "matrix: WithEigenTolerance: tol must be finite and > 0"
	panicMaxIterInvalid  = "matrix: WithMaxIterations: n must be >= 1"
)

// Option mutates Options. Safe to apply repeatedly (last writer wins).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	eps      float64 // singular threshold for Inverse
	eigenTol float64 // relative convergence tolerance for Eigen
	maxIter  int     // Jacobi rotation budget; 0 means automatic
}

// WithEpsilon sets the singularity threshold used by Inverse.
// Panics with a stable message when eps is NaN, ±Inf or negative.
func WithEpsilon(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithEigenTolerance sets the relative off-diagonal tolerance at which the
// Jacobi sweep is considered converged. Also bounds the symmetry check.
func WithEigenTolerance(tol float64) Option {
	if isNonFinite(tol) || tol <= 0 {
		panic(panicEigenTolInvalid)
	}

	return func(o *Options) { o.eigenTol = tol }
}

// WithMaxIterations caps the number of Jacobi rotations.
func WithMaxIterations(n int) Option {
	if n < 1 {
		panic(panicMaxIterInvalid)
	}

	return func(o *Options) { o.maxIter = n }
}

// gatherOptions applies user-provided setters on top of the defaults.
// Nil setters are skipped.
func gatherOptions(user ...Option) Options {
	o := Options{
		eps:      DefaultEpsilon,
		eigenTol: DefaultEigenTolerance,
		maxIter:  DefaultMaxIterations,
	}
	for _, opt := range user {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// eigenBudget resolves the automatic rotation budget for an n×n input.
func (o Options) eigenBudget(n int) int {
	if o.maxIter > 0 {
		return o.maxIter
	}

	return max(eigenMinIter, eigenIterPerCell*n*n)
}

// isNonFinite reports whether x is NaN or ±Inf.
func isNonFinite(x float64) bool {
	return math.IsNaN(x) || math.IsInf(x, 0)
}
