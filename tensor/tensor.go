package tensor

import (
	"gonum.org/v1/gonum/integrate"
)

// Dense is an N-dimensional array backed by a flat, row-major float64
// slice. The zero value is not usable; construct via New or FromSlice.
type Dense struct {
	shape  []int
	stride []int
	data   []float64
}

// New allocates a zero-filled tensor with the given extents.
// Returns ErrBadShape if no extents are given or any extent is < 1.
func New(shape ...int) (*Dense, error) {
	n, err := checkShape(shape)
	if err != nil {
		return nil, err
	}
	return &Dense{
		shape:  append([]int(nil), shape...),
		stride: strides(shape),
		data:   make([]float64, n),
	}, nil
}

// FromSlice wraps data (without copying) in a tensor of the given shape.
// Returns ErrBadShape on an invalid shape and ErrBadLength when
// len(data) != product of extents.
func FromSlice(data []float64, shape ...int) (*Dense, error) {
	n, err := checkShape(shape)
	if err != nil {
		return nil, err
	}
	if len(data) != n {
		return nil, ErrBadLength
	}
	return &Dense{
		shape:  append([]int(nil), shape...),
		stride: strides(shape),
		data:   data,
	}, nil
}

// checkShape validates extents and returns the total element count.
func checkShape(shape []int) (int, error) {
	if len(shape) == 0 {
		return 0, ErrBadShape
	}
	n := 1
	for _, s := range shape {
		if s < 1 {
			return 0, ErrBadShape
		}
		n *= s
	}
	return n, nil
}

// strides computes row-major strides for shape.
func strides(shape []int) []int {
	st := make([]int, len(shape))
	acc := 1
	for i := len(shape) - 1; i >= 0; i-- {
		st[i] = acc
		acc *= shape[i]
	}
	return st
}

// Rank returns the number of axes.
func (d *Dense) Rank() int { return len(d.shape) }

// Len returns the total number of elements.
func (d *Dense) Len() int { return len(d.data) }

// Shape returns a copy of the extents.
func (d *Dense) Shape() []int { return append([]int(nil), d.shape...) }

// Dim returns the extent along axis, or ErrBadAxis.
func (d *Dense) Dim(axis int) (int, error) {
	if axis < 0 || axis >= len(d.shape) {
		return 0, ErrBadAxis
	}
	return d.shape[axis], nil
}

// Data exposes the backing slice. Mutating it mutates the tensor;
// callers needing isolation should Clone first.
func (d *Dense) Data() []float64 { return d.data }

// offset translates a full multi-index to a flat position.
func (d *Dense) offset(idx []int) (int, error) {
	if len(idx) != len(d.shape) {
		return 0, ErrOutOfRange
	}
	pos := 0
	for i, j := range idx {
		if j < 0 || j >= d.shape[i] {
			return 0, ErrOutOfRange
		}
		pos += j * d.stride[i]
	}
	return pos, nil
}

// At returns the element at the given multi-index.
func (d *Dense) At(idx ...int) (float64, error) {
	pos, err := d.offset(idx)
	if err != nil {
		return 0, err
	}
	return d.data[pos], nil
}

// Set stores v at the given multi-index.
func (d *Dense) Set(v float64, idx ...int) error {
	pos, err := d.offset(idx)
	if err != nil {
		return err
	}
	d.data[pos] = v
	return nil
}

// Clone returns a deep copy.
func (d *Dense) Clone() *Dense {
	cp := &Dense{
		shape:  append([]int(nil), d.shape...),
		stride: append([]int(nil), d.stride...),
		data:   make([]float64, len(d.data)),
	}
	copy(cp.data, d.data)
	return cp
}

// Reshape returns a view with new extents sharing the backing slice.
// The element count must be preserved (ErrBadLength otherwise).
func (d *Dense) Reshape(shape ...int) (*Dense, error) {
	n, err := checkShape(shape)
	if err != nil {
		return nil, err
	}
	if n != len(d.data) {
		return nil, ErrBadLength
	}
	return &Dense{
		shape:  append([]int(nil), shape...),
		stride: strides(shape),
		data:   d.data,
	}, nil
}

// Apply returns a new tensor with fn applied to every element.
func (d *Dense) Apply(fn func(float64) float64) *Dense {
	out := d.Clone()
	for i, v := range out.data {
		out.data[i] = fn(v)
	}
	return out
}

// MulElem returns the elementwise product with other.
// Returns ErrShapeMismatch when shapes differ.
func (d *Dense) MulElem(other *Dense) (*Dense, error) {
	if !sameShape(d.shape, other.shape) {
		return nil, ErrShapeMismatch
	}
	out := d.Clone()
	for i := range out.data {
		out.data[i] *= other.data[i]
	}
	return out, nil
}

func sameShape(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// EachLane applies fn to every 1-D lane running along axis and collects
// the results into a new tensor of identical shape. fn receives the lane
// values in a scratch slice and writes its output into out (same
// length); the scratch contents are overwritten between invocations.
//
// Time complexity: O(Len) plus whatever fn costs per lane.
func (d *Dense) EachLane(axis int, fn func(lane, out []float64)) (*Dense, error) {
	if axis < 0 || axis >= len(d.shape) {
		return nil, ErrBadAxis
	}
	res := d.Clone()
	n := d.shape[axis]
	lane := make([]float64, n)
	out := make([]float64, n)
	step := d.stride[axis]
	for _, base := range laneOffsets(d.shape, d.stride, axis) {
		for j := 0; j < n; j++ {
			lane[j] = d.data[base+j*step]
		}
		fn(lane, out)
		for j := 0; j < n; j++ {
			res.data[base+j*step] = out[j]
		}
	}
	return res, nil
}

// ReduceTrapz integrates along axis with trapezoidal quadrature over the
// coordinates xs, producing a tensor of rank one lower. Rank-1 input
// reduces to a scalar wrapped in a rank-1, length-1 tensor.
// Returns ErrBadAxis, ErrShortAxis (axis < 2 points) or ErrBadLength
// (len(xs) != extent of axis).
func (d *Dense) ReduceTrapz(axis int, xs []float64) (*Dense, error) {
	if axis < 0 || axis >= len(d.shape) {
		return nil, ErrBadAxis
	}
	n := d.shape[axis]
	if n < 2 {
		return nil, ErrShortAxis
	}
	if len(xs) != n {
		return nil, ErrBadLength
	}

	outShape := make([]int, 0, len(d.shape)-1)
	for i, s := range d.shape {
		if i != axis {
			outShape = append(outShape, s)
		}
	}
	if len(outShape) == 0 {
		outShape = []int{1}
	}
	out, err := New(outShape...)
	if err != nil {
		return nil, err
	}

	lane := make([]float64, n)
	step := d.stride[axis]
	pos := 0
	for _, base := range laneOffsets(d.shape, d.stride, axis) {
		for j := 0; j < n; j++ {
			lane[j] = d.data[base+j*step]
		}
		out.data[pos] = integrate.Trapezoidal(xs, lane)
		pos++
	}
	return out, nil
}

// laneOffsets lists the flat offset of the first element of every lane
// along axis, in row-major order of the remaining axes.
func laneOffsets(shape, stride []int, axis int) []int {
	count := 1
	for i, s := range shape {
		if i != axis {
			count *= s
		}
	}
	offs := make([]int, 0, count)
	idx := make([]int, len(shape))
	for {
		pos := 0
		for i, j := range idx {
			pos += j * stride[i]
		}
		offs = append(offs, pos)
		// advance the multi-index, skipping axis
		i := len(shape) - 1
		for ; i >= 0; i-- {
			if i == axis {
				continue
			}
			idx[i]++
			if idx[i] < shape[i] {
				break
			}
			idx[i] = 0
		}
		if i < 0 {
			return offs
		}
	}
}
