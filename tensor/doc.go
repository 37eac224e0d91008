// Package tensor provides a minimal N-dimensional strided array over a
// flat float64 backing slice, sized for the needs of gridded PDE data:
// multi-index access, reshaping, lane-wise application along one axis,
// elementwise products, and trapezoidal reduction of a single axis.
//
// It is deliberately small. Rank-2 work belongs in gonum's mat package;
// tensor exists because sampled fields over 1–3 spatial dimensions plus
// time plus a trailing variable axis are rank 3–5, which no 2-D matrix
// type can express.
//
// All public entry points validate their inputs and return sentinel
// errors (see errors.go); they never panic on user-triggered conditions.
package tensor
