package deriv

import "errors"

var (
	// ErrBadOrder indicates a derivative order < 0 where enumerating,
	// or < 1 where differentiating.
	ErrBadOrder = errors.New("deriv: invalid derivative order")

	// ErrBadAxisCount indicates a multi-index axis count outside 1..3
	// (+ optional time axis handled by callers).
	ErrBadAxisCount = errors.New("deriv: invalid axis count")

	// ErrBadAxis indicates an axis argument outside the tensor rank.
	ErrBadAxis = errors.New("deriv: axis out of range")

	// ErrTooFewPoints indicates an axis shorter than the stencil the
	// requested order needs.
	ErrTooFewPoints = errors.New("deriv: not enough grid points for stencil")

	// ErrLengthMismatch indicates coordinates whose length differs from
	// the tensor extent along the differentiated axis.
	ErrLengthMismatch = errors.New("deriv: coordinate length does not match axis extent")

	// ErrSingularStencil indicates degenerate stencil offsets (e.g.
	// repeated coordinates) for which no weights exist.
	ErrSingularStencil = errors.New("deriv: singular stencil system")

	// ErrIndexMismatch indicates a multi-index whose length differs
	// from the number of supplied axes.
	ErrIndexMismatch = errors.New("deriv: multi-index length does not match axes")
)
