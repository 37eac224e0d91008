// Package featlib: sentinel error set. All libraries MUST return these
// sentinels (optionally wrapped with context) and tests match them via
// errors.Is. Configuration checkable without data is rejected at
// construction; only data-dependent ranges wait for Fit or Transform.
package featlib

import "errors"

var (
	// ErrNotFitted is returned by Transform/FeatureNames before Fit.
	ErrNotFitted = errors.New("featlib: library is not fitted")

	// ErrNotImplemented is returned by the abstract BaseLibrary.
	ErrNotImplemented = errors.New("featlib: not implemented on the base library")

	// ErrShapeMismatch indicates input whose variable count (or, for
	// grid-bound libraries, row count) disagrees with what Fit recorded
	// or the configured grids imply.
	ErrShapeMismatch = errors.New("featlib: input shape mismatch")

	// ErrEmptyInput indicates a sample matrix with zero rows or columns.
	ErrEmptyInput = errors.New("featlib: empty input")

	// ErrNoFunctions indicates that no library functions were supplied
	// where at least one is required.
	ErrNoFunctions = errors.New("featlib: no library functions supplied")

	// ErrMismatchedNames indicates function and naming sequences of
	// different lengths.
	ErrMismatchedNames = errors.New("featlib: function and name counts differ")

	// ErrBadFunction indicates a library function with a nil evaluator
	// or non-positive arity.
	ErrBadFunction = errors.New("featlib: invalid library function")

	// ErrBadDegree indicates a negative polynomial degree.
	ErrBadDegree = errors.New("featlib: polynomial degree must be non-negative")

	// ErrBadFrequencies indicates a Fourier frequency count < 1.
	ErrBadFrequencies = errors.New("featlib: frequency count must be positive")

	// ErrNoFeatureSource indicates configuration that disables every
	// feature source (no sin and no cos, or interaction-only without
	// interactions).
	ErrNoFeatureSource = errors.New("featlib: all feature sources disabled")

	// ErrBadEnsembleIndex indicates negative or duplicate ensemble
	// column indices at construction, or out-of-range ones at
	// transform.
	ErrBadEnsembleIndex = errors.New("featlib: invalid ensemble index")

	// ErrBadNames indicates caller-supplied input feature names whose
	// count differs from the fitted variable count.
	ErrBadNames = errors.New("featlib: input feature names count differs from fitted variables")

	// ErrNoLibraries indicates a concatenation of fewer than two
	// libraries.
	ErrNoLibraries = errors.New("featlib: concatenation needs at least two libraries")

	// ErrMissingGrid indicates a PDE library without a spatial grid.
	ErrMissingGrid = errors.New("featlib: spatial grid required")

	// ErrBadOrder indicates a derivative order < 1 for a PDE library.
	ErrBadOrder = errors.New("featlib: derivative order must be positive")

	// ErrMissingTemporalGrid indicates weak form (or ẋ construction)
	// without a temporal grid.
	ErrMissingTemporalGrid = errors.New("featlib: temporal grid required")

	// ErrBadSubdomainCount indicates a weak-form sub-domain count < 1.
	ErrBadSubdomainCount = errors.New("featlib: sub-domain count must be positive")

	// ErrBadHalfWidth indicates a weak-form half-width outside
	// (0, extent/2] for its axis.
	ErrBadHalfWidth = errors.New("featlib: invalid sub-domain half-width")

	// ErrBadSmoothing indicates a smoothing degree p < 1 or smaller
	// than the derivative order.
	ErrBadSmoothing = errors.New("featlib: invalid smoothing degree")

	// ErrBadPointsPerDomain indicates too few sample points per
	// sub-domain axis to hold one derivative stencil.
	ErrBadPointsPerDomain = errors.New("featlib: too few points per sub-domain")

	// ErrBadModelSubset indicates negative, duplicate or out-of-range
	// model subset indices.
	ErrBadModelSubset = errors.New("featlib: invalid model subset")

	// ErrBadVariables indicates spatiotemporal variables that are
	// missing, of unequal shape, or too many.
	ErrBadVariables = errors.New("featlib: invalid spatiotemporal variables")
)
