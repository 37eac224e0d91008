// Package weights builds the compactly supported polynomial test
// functions used by weak-form PDE feature libraries.
//
// The one-dimensional kernel on a sub-domain [l, r] is the bump
//
//	w(x) = (x − l)^p (r − x)^p,  zero outside [l, r],
//
// whose derivatives up to order p−1 vanish at both endpoints. That
// vanishing is the whole point: integrating data against w^(d) and
// integrating the d-th data derivative against w differ only by
// boundary terms, and those boundary terms are identically zero. A
// noisy field therefore never needs to be differentiated — the
// derivative is shifted onto the analytically known weight.
//
// Derivatives are evaluated in closed form via the Leibniz rule with
// falling factorials (Bump); multi-dimensional weights are separable
// products across the sub-domain axes (TensorProduct). Every weight
// tensor depends only on its own sub-domain's local coordinates, so
// sub-domains can be processed independently and in any order.
package weights
