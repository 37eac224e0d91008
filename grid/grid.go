package grid

import (
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/sindykit/tensor"
)

// MaxDims is the highest supported spatial dimensionality.
const MaxDims = 3

// Spatial is an immutable 1–3 dimensional rectilinear sampling grid.
// Each axis is a strictly increasing coordinate vector; the full grid is
// their tensor product.
type Spatial struct {
	axes [][]float64
}

// NewSpatial builds a Spatial grid from per-axis coordinate vectors.
// Stage 1 (Validate): 1..MaxDims axes, each with ≥2 strictly increasing
// coordinates. Stage 2 (Finalize): copy axes and wrap.
// Returns ErrDimension, ErrAxisLength or ErrNotIncreasing.
func NewSpatial(axes ...[]float64) (*Spatial, error) {
	if len(axes) < 1 || len(axes) > MaxDims {
		return nil, ErrDimension
	}
	cp := make([][]float64, len(axes))
	for i, ax := range axes {
		if err := checkAxis(ax); err != nil {
			return nil, err
		}
		cp[i] = append([]float64(nil), ax...)
	}
	return &Spatial{axes: cp}, nil
}

// NewSpatialFromMesh parses a meshgrid-like tensor into a Spatial grid.
//
// Accepted layouts:
//   - rank 1: a single coordinate vector (1-D grid);
//   - rank d+1 with trailing extent d (d = 2..3): element
//     (i1,...,id, c) holds coordinate component c at grid point
//     (i1,...,id), as produced by stacking d meshgrid arrays along a
//     trailing axis.
//
// The mesh must be a tensor product: component c may vary only along
// axis c. Returns ErrMeshShape, ErrDimension, ErrMeshInconsistent, or
// the axis validation errors of NewSpatial.
func NewSpatialFromMesh(mesh *tensor.Dense) (*Spatial, error) {
	shape := mesh.Shape()
	if len(shape) == 1 {
		return NewSpatial(mesh.Data())
	}
	d := len(shape) - 1
	if d < 1 || d > MaxDims {
		return nil, ErrDimension
	}
	if shape[d] != d {
		return nil, ErrMeshShape
	}

	// Extract axis c by walking index c with all other indices at 0.
	axes := make([][]float64, d)
	idx := make([]int, d+1)
	for c := 0; c < d; c++ {
		ax := make([]float64, shape[c])
		for i := range idx {
			idx[i] = 0
		}
		idx[d] = c
		for j := 0; j < shape[c]; j++ {
			idx[c] = j
			v, err := mesh.At(idx...)
			if err != nil {
				return nil, err
			}
			ax[j] = v
		}
		axes[c] = ax
	}

	s, err := NewSpatial(axes...)
	if err != nil {
		return nil, err
	}

	// Verify the tensor-product property over the full mesh.
	if err := verifyMesh(mesh, s); err != nil {
		return nil, err
	}
	return s, nil
}

// verifyMesh checks that every mesh entry equals the coordinate implied
// by its own axis index. O(points × dims).
func verifyMesh(mesh *tensor.Dense, s *Spatial) error {
	shape := mesh.Shape()
	d := s.Dims()
	idx := make([]int, d+1)
	var walk func(axis int) error
	walk = func(axis int) error {
		if axis == d {
			for c := 0; c < d; c++ {
				idx[d] = c
				v, err := mesh.At(idx...)
				if err != nil {
					return err
				}
				if v != s.axes[c][idx[c]] {
					return ErrMeshInconsistent
				}
			}
			return nil
		}
		for j := 0; j < shape[axis]; j++ {
			idx[axis] = j
			if err := walk(axis + 1); err != nil {
				return err
			}
		}
		return nil
	}
	return walk(0)
}

// checkAxis validates one coordinate vector.
func checkAxis(ax []float64) error {
	if len(ax) < 2 {
		return ErrAxisLength
	}
	for i := 1; i < len(ax); i++ {
		if ax[i] <= ax[i-1] {
			return ErrNotIncreasing
		}
	}
	return nil
}

// Dims returns the spatial dimensionality (1..3).
func (s *Spatial) Dims() int { return len(s.axes) }

// Shape returns the per-axis extents.
func (s *Spatial) Shape() []int {
	sh := make([]int, len(s.axes))
	for i, ax := range s.axes {
		sh[i] = len(ax)
	}
	return sh
}

// NumPoints returns the total number of grid points.
func (s *Spatial) NumPoints() int {
	n := 1
	for _, ax := range s.axes {
		n *= len(ax)
	}
	return n
}

// Axis returns a copy of the coordinates along axis i.
func (s *Spatial) Axis(i int) ([]float64, error) {
	if i < 0 || i >= len(s.axes) {
		return nil, ErrIndexRange
	}
	return append([]float64(nil), s.axes[i]...), nil
}

// axis returns the backing slice for internal read-only use.
func (s *Spatial) axis(i int) []float64 { return s.axes[i] }

// Temporal is an immutable strictly increasing time axis.
type Temporal struct {
	ts []float64
}

// NewTemporal builds a Temporal grid from a coordinate vector.
// Returns ErrAxisLength or ErrNotIncreasing.
func NewTemporal(ts []float64) (*Temporal, error) {
	if err := checkAxis(ts); err != nil {
		return nil, err
	}
	return &Temporal{ts: append([]float64(nil), ts...)}, nil
}

// NewTemporalFromTensor builds a Temporal grid from a rank-1 tensor.
// Any higher rank is a shape error (ErrTemporalShape), matching the
// contract that temporal grids must be one-dimensional.
func NewTemporalFromTensor(d *tensor.Dense) (*Temporal, error) {
	if d.Rank() != 1 {
		return nil, ErrTemporalShape
	}
	return NewTemporal(d.Data())
}

// Len returns the number of time samples.
func (t *Temporal) Len() int { return len(t.ts) }

// Points returns a copy of the time coordinates.
func (t *Temporal) Points() []float64 {
	return append([]float64(nil), t.ts...)
}

// points returns the backing slice for internal read-only use.
func (t *Temporal) points() []float64 { return t.ts }

// Linspace returns n evenly spaced values from lo to hi inclusive.
// n must be ≥ 2; callers validate.
func Linspace(lo, hi float64, n int) []float64 {
	return floats.Span(make([]float64, n), lo, hi)
}
