package deriv

import (
	"github.com/katalvlaran/sindykit/tensor"
)

// Partial differentiates u along one axis to the given order, using the
// axis coordinates coords. Every lane of u along the axis is treated as
// samples of a function of those coordinates; the result has the same
// shape as u, evaluated at every original sample location.
//
// uniform marks the axis as evenly spaced: interior stencil weights are
// then computed once (the symmetric central stencil) and reused across
// evaluation points. Non-uniform axes solve the generalized weight
// system at every point.
//
// Errors: ErrBadOrder (order < 1), ErrBadAxis, ErrLengthMismatch,
// ErrTooFewPoints, ErrSingularStencil.
func Partial(u *tensor.Dense, axis int, coords []float64, order int, uniform bool) (*tensor.Dense, error) {
	if order < 1 {
		return nil, ErrBadOrder
	}
	if axis < 0 || axis >= u.Rank() {
		return nil, ErrBadAxis
	}
	n, err := u.Dim(axis)
	if err != nil {
		return nil, ErrBadAxis
	}
	if len(coords) != n {
		return nil, ErrLengthMismatch
	}
	w := stencilWidth(order)
	if n < w {
		return nil, ErrTooFewPoints
	}

	// Precompute the per-position stencil table; it is shared by every
	// lane since all lanes run over the same coordinates.
	los := make([]int, n)
	wtab := make([][]float64, n)
	var interior []float64
	offsets := make([]float64, w)
	for i := 0; i < n; i++ {
		lo, hi := window(i, n, w)
		los[i] = lo
		centered := lo == i-w/2
		if uniform && centered && interior != nil {
			wtab[i] = interior
			continue
		}
		for j := lo; j < hi; j++ {
			offsets[j-lo] = coords[j] - coords[i]
		}
		ws, err := StencilWeights(offsets, order)
		if err != nil {
			return nil, err
		}
		wtab[i] = ws
		if uniform && centered {
			interior = ws
		}
	}

	return u.EachLane(axis, func(lane, out []float64) {
		for i := 0; i < n; i++ {
			acc := 0.0
			lo := los[i]
			for j, wj := range wtab[i] {
				acc += wj * lane[lo+j]
			}
			out[i] = acc
		}
	})
}

// Mixed applies the derivative multi-index idx across the given tensor
// axes sequentially: axis axes[k] is differentiated idx[k] times against
// coords[k]. Axes with idx[k] == 0 are untouched; an all-zero index
// returns a copy of u.
//
// Mixed partials commute for smooth fields, so the application order
// (ascending k) is a fixed convention, not a semantic choice.
func Mixed(u *tensor.Dense, axes []int, coords [][]float64, idx MultiIndex, uniform bool) (*tensor.Dense, error) {
	if len(idx) != len(axes) || len(coords) != len(axes) {
		return nil, ErrIndexMismatch
	}
	cur := u
	for k, d := range idx {
		if d == 0 {
			continue
		}
		next, err := Partial(cur, axes[k], coords[k], d, uniform)
		if err != nil {
			return nil, err
		}
		cur = next
	}
	if cur == u {
		return u.Clone(), nil
	}
	return cur, nil
}
