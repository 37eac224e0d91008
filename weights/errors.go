package weights

import "errors"

var (
	// ErrDegree indicates a smoothing degree p < 1.
	ErrDegree = errors.New("weights: smoothing degree must be positive")

	// ErrDerivOrder indicates a derivative order outside [0, p]; above
	// p the kernel no longer vanishes at the sub-domain boundary and
	// integration by parts breaks down.
	ErrDerivOrder = errors.New("weights: derivative order must be in [0, p]")

	// ErrHalfWidth indicates a non-positive sub-domain half-width.
	ErrHalfWidth = errors.New("weights: half-width must be positive")

	// ErrArgMismatch indicates per-axis argument slices of differing
	// lengths.
	ErrArgMismatch = errors.New("weights: per-axis argument lengths differ")
)
