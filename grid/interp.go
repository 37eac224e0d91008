package grid

import (
	"sort"

	"github.com/katalvlaran/sindykit/tensor"
)

// InterpN evaluates a multilinear interpolant of values sampled on the
// tensor-product grid spanned by axes, at each query point in pts.
//
// axes holds one strictly increasing coordinate vector per dimension;
// values must have exactly one axis per coordinate vector with matching
// extents. Query coordinates outside the grid hull are clamped to the
// boundary (sub-domain sampling keeps queries inside the hull, so the
// clamp only absorbs floating-point spill at the edges).
//
// Time complexity: O(len(pts) × 2^d) for d axes.
// Returns ErrDimension, ErrNotIncreasing/ErrAxisLength,
// ErrShapeMismatch or ErrBadQuery.
func InterpN(axes [][]float64, values *tensor.Dense, pts [][]float64) ([]float64, error) {
	d := len(axes)
	if d < 1 {
		return nil, ErrDimension
	}
	for _, ax := range axes {
		if err := checkAxis(ax); err != nil {
			return nil, err
		}
	}
	shape := values.Shape()
	if len(shape) != d {
		return nil, ErrShapeMismatch
	}
	for i, ax := range axes {
		if shape[i] != len(ax) {
			return nil, ErrShapeMismatch
		}
	}

	out := make([]float64, len(pts))
	lowIdx := make([]int, d)
	frac := make([]float64, d)
	corner := make([]int, d)
	for p, q := range pts {
		if len(q) != d {
			return nil, ErrBadQuery
		}
		// Bracket the query along every axis.
		for i, ax := range axes {
			lowIdx[i], frac[i] = bracket(ax, q[i])
		}
		// Blend the 2^d surrounding corners.
		sum := 0.0
		for mask := 0; mask < 1<<d; mask++ {
			w := 1.0
			for i := 0; i < d; i++ {
				if mask&(1<<i) != 0 {
					corner[i] = lowIdx[i] + 1
					w *= frac[i]
				} else {
					corner[i] = lowIdx[i]
					w *= 1 - frac[i]
				}
			}
			if w == 0 {
				continue
			}
			v, err := values.At(corner...)
			if err != nil {
				return nil, err
			}
			sum += w * v
		}
		out[p] = sum
	}
	return out, nil
}

// bracket locates x within ax, returning the lower bracket index and
// the fractional position inside the cell. Out-of-hull x clamps to the
// nearest boundary cell.
func bracket(ax []float64, x float64) (int, float64) {
	n := len(ax)
	i := sort.SearchFloat64s(ax, x)
	switch {
	case i <= 0:
		i = 1
	case i >= n:
		i = n - 1
	}
	lo := i - 1
	f := (x - ax[lo]) / (ax[i] - ax[lo])
	if f < 0 {
		f = 0
	} else if f > 1 {
		f = 1
	}
	return lo, f
}
