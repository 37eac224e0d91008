package deriv

import (
	"gonum.org/v1/gonum/mat"
)

// StencilWeights solves the local Taylor (Vandermonde) system for the
// weights w such that Σ w_j f(x+offset_j) ≈ f^(order)(x), exact for
// polynomials up to degree len(offsets)-1.
//
// The system is Σ_j w_j offset_j^m / m! = δ(m, order) for
// m = 0..len(offsets)-1. Offsets must be distinct; a repeated offset
// makes the system singular (ErrSingularStencil). order must be ≥ 1 and
// < len(offsets) (ErrBadOrder / ErrTooFewPoints).
func StencilWeights(offsets []float64, order int) ([]float64, error) {
	n := len(offsets)
	if order < 1 {
		return nil, ErrBadOrder
	}
	if n <= order {
		return nil, ErrTooFewPoints
	}

	a := mat.NewDense(n, n, nil)
	b := mat.NewVecDense(n, nil)
	fact := 1.0
	for m := 0; m < n; m++ {
		if m > 0 {
			fact *= float64(m)
		}
		for j, off := range offsets {
			a.Set(m, j, powInt(off, m)/fact)
		}
		if m == order {
			b.SetVec(m, 1)
		}
	}

	var lu mat.LU
	lu.Factorize(a)
	w := mat.NewVecDense(n, nil)
	if err := lu.SolveVecTo(w, false, b); err != nil {
		return nil, ErrSingularStencil
	}
	return w.RawVector().Data, nil
}

// powInt computes x^m for small non-negative m by repeated product;
// math.Pow rounding would leak into the weight solve.
func powInt(x float64, m int) float64 {
	p := 1.0
	for i := 0; i < m; i++ {
		p *= x
	}
	return p
}

// stencilWidth returns the number of stencil points used for a
// derivative of the given order: the symmetric width 2⌈order/2⌉+1.
func stencilWidth(order int) int {
	half := (order + 1) / 2
	return 2*half + 1
}

// window returns the [lo, hi) index window of width w centered on i
// within an axis of n points, shifting one-sided at the boundary.
func window(i, n, w int) (int, int) {
	lo := i - w/2
	if lo < 0 {
		lo = 0
	}
	if lo+w > n {
		lo = n - w
	}
	return lo, lo + w
}
