// Package deriv enumerates derivative multi-indices and computes
// finite-difference derivatives of gridded data along arbitrary axes.
//
// Multi-indices: Indices(axes, maxOrder) lists every per-axis derivative
// order tuple with total order 1..maxOrder, in graded order (total order
// ascending, first axis descending within a grade). The order is fixed,
// so feature layouts built on it are reproducible across calls.
//
// Derivatives: Partial differentiates one tensor axis; Mixed applies a
// multi-index across several axes sequentially. Stencil weights come
// from the local Taylor (Vandermonde) system solved per evaluation
// point with gonum's LU — the generalized finite-difference
// construction, valid on uniform and non-uniform axes alike. On a
// uniform axis the interior weights collapse to the standard symmetric
// central stencil; the uniform flag lets Partial compute them once and
// reuse them.
//
// A derivative of order d uses a stencil of width 2⌈d/2⌉+1, shifted
// one-sided near the boundary; axes shorter than the stencil are
// rejected.
package deriv
