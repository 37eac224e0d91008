package grid

import "errors"

var (
	// ErrDimension indicates a spatial dimensionality outside 1..3.
	ErrDimension = errors.New("grid: spatial dimensionality must be 1, 2 or 3")

	// ErrAxisLength indicates an axis with fewer than 2 points.
	ErrAxisLength = errors.New("grid: axis needs at least 2 points")

	// ErrNotIncreasing indicates axis coordinates that are not strictly
	// increasing.
	ErrNotIncreasing = errors.New("grid: axis coordinates must be strictly increasing")

	// ErrMeshShape indicates a meshgrid tensor whose trailing axis size
	// does not match its dimensionality.
	ErrMeshShape = errors.New("grid: mesh trailing axis must equal dimensionality")

	// ErrMeshInconsistent indicates a meshgrid tensor whose coordinate
	// component varies along a foreign axis (not a tensor-product grid).
	ErrMeshInconsistent = errors.New("grid: mesh is not a tensor-product grid")

	// ErrTemporalShape indicates a temporal grid that is not a 1-D
	// vector.
	ErrTemporalShape = errors.New("grid: temporal grid must be one-dimensional")

	// ErrBadCount indicates a sub-domain count K < 1.
	ErrBadCount = errors.New("grid: sub-domain count must be positive")

	// ErrBadHalfWidth indicates a half-width outside (0, extent/2].
	ErrBadHalfWidth = errors.New("grid: half-width must be in (0, extent/2]")

	// ErrBadPoints indicates fewer than 2 sample points per sub-domain
	// axis.
	ErrBadPoints = errors.New("grid: points per domain must be at least 2")

	// ErrNilRand indicates that no random source was supplied for
	// sub-domain placement.
	ErrNilRand = errors.New("grid: nil random source")

	// ErrShapeMismatch indicates gridded values whose shape does not
	// match the axes they are claimed to be sampled on.
	ErrShapeMismatch = errors.New("grid: values shape does not match axes")

	// ErrBadQuery indicates an interpolation query point of the wrong
	// dimensionality.
	ErrBadQuery = errors.New("grid: query point dimensionality mismatch")

	// ErrIndexRange indicates an axis or sub-domain index out of range.
	ErrIndexRange = errors.New("grid: index out of range")
)
