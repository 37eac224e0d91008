package weights

import (
	"github.com/katalvlaran/sindykit/tensor"
)

// Bump evaluates the d-th derivative of the degree-p bump kernel
// supported on [center−halfWidth, center+halfWidth] at each coordinate
// in xs. d = 0 evaluates the kernel itself. Outside the support the
// result is exactly zero.
//
// The closed form follows from Leibniz: with l, r the support ends,
//
//	dʲ/dxʲ (x−l)^p = p!/(p−j)! (x−l)^(p−j)
//	dʲ/dxʹ (r−x)^p = (−1)ʲ p!/(p−j)! (r−x)^(p−j)
//
// so w^(d) = Σ_j C(d,j) · [dʲ(x−l)^p] · [d^(d−j)(r−x)^p].
//
// Returns ErrDegree (p < 1), ErrDerivOrder (d < 0 or d > p) or
// ErrHalfWidth (halfWidth ≤ 0).
func Bump(xs []float64, center, halfWidth float64, p, d int) ([]float64, error) {
	if p < 1 {
		return nil, ErrDegree
	}
	if d < 0 || d > p {
		return nil, ErrDerivOrder
	}
	if halfWidth <= 0 {
		return nil, ErrHalfWidth
	}

	l := center - halfWidth
	r := center + halfWidth
	out := make([]float64, len(xs))
	for i, x := range xs {
		if x < l || x > r {
			continue
		}
		sum := 0.0
		for j := 0; j <= d; j++ {
			left := falling(p, j) * powInt(x-l, p-j)
			right := falling(p, d-j) * powInt(r-x, p-(d-j))
			if (d-j)%2 == 1 {
				right = -right
			}
			sum += binom(d, j) * left * right
		}
		out[i] = sum
	}
	return out, nil
}

// TensorProduct builds the separable N-D weight tensor for one
// sub-domain: axis k contributes Bump(axes[k], centers[k], halves[k],
// p, orders[k]), and the result at a grid point is the product of the
// per-axis values. The output shape is the per-axis sample counts.
//
// Returns ErrArgMismatch when the per-axis slices disagree in length,
// or any Bump validation error.
func TensorProduct(axes [][]float64, centers, halves []float64, p int, orders []int) (*tensor.Dense, error) {
	n := len(axes)
	if n == 0 || len(centers) != n || len(halves) != n || len(orders) != n {
		return nil, ErrArgMismatch
	}

	vecs := make([][]float64, n)
	shape := make([]int, n)
	for k := range axes {
		v, err := Bump(axes[k], centers[k], halves[k], p, orders[k])
		if err != nil {
			return nil, err
		}
		vecs[k] = v
		shape[k] = len(v)
	}

	out, err := tensor.New(shape...)
	if err != nil {
		return nil, err
	}
	data := out.Data()
	idx := make([]int, n)
	for pos := range data {
		v := 1.0
		for k := range idx {
			v *= vecs[k][idx[k]]
		}
		data[pos] = v
		for k := n - 1; k >= 0; k-- {
			idx[k]++
			if idx[k] < shape[k] {
				break
			}
			idx[k] = 0
		}
	}
	return out, nil
}

// falling computes the falling factorial p·(p−1)···(p−j+1), i.e.
// p!/(p−j)!; zero when j > p.
func falling(p, j int) float64 {
	if j > p {
		return 0
	}
	f := 1.0
	for i := 0; i < j; i++ {
		f *= float64(p - i)
	}
	return f
}

// binom computes the binomial coefficient C(n, k) for small arguments.
func binom(n, k int) float64 {
	if k < 0 || k > n {
		return 0
	}
	c := 1.0
	for i := 1; i <= k; i++ {
		c = c * float64(n-k+i) / float64(i)
	}
	return c
}

// powInt computes x^m for non-negative m by repeated product.
func powInt(x float64, m int) float64 {
	p := 1.0
	for i := 0; i < m; i++ {
		p *= x
	}
	return p
}
