package tensor

import "errors"

var (
	// ErrBadShape indicates a requested shape with rank 0 or a
	// non-positive extent.
	ErrBadShape = errors.New("tensor: invalid shape")

	// ErrBadLength indicates backing data whose length does not equal
	// the product of the requested extents.
	ErrBadLength = errors.New("tensor: data length does not match shape")

	// ErrOutOfRange indicates a multi-index outside the tensor bounds or
	// of the wrong rank.
	ErrOutOfRange = errors.New("tensor: index out of range")

	// ErrBadAxis indicates an axis argument outside [0, rank).
	ErrBadAxis = errors.New("tensor: axis out of range")

	// ErrShapeMismatch indicates two operands whose shapes differ where
	// equal shapes are required.
	ErrShapeMismatch = errors.New("tensor: shape mismatch")

	// ErrShortAxis indicates an axis with fewer points than the
	// operation requires (e.g. trapezoidal reduction needs at least 2).
	ErrShortAxis = errors.New("tensor: axis too short")
)
