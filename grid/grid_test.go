package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sindykit/grid"
	"github.com/katalvlaran/sindykit/tensor"
)

// TestNewSpatial_Dimensionality rejects 0 and ≥4 axes, accepts 1..3.
func TestNewSpatial_Dimensionality(t *testing.T) {
	ax := []float64{0, 1, 2}

	_, err := grid.NewSpatial()
	assert.ErrorIs(t, err, grid.ErrDimension, "0-D grid must be rejected")

	_, err = grid.NewSpatial(ax, ax, ax, ax)
	assert.ErrorIs(t, err, grid.ErrDimension, "4-D grid must be rejected")

	for d := 1; d <= 3; d++ {
		axes := make([][]float64, d)
		for i := range axes {
			axes[i] = ax
		}
		s, err := grid.NewSpatial(axes...)
		require.NoError(t, err)
		assert.Equal(t, d, s.Dims())
	}
}

// TestNewSpatial_AxisValidation checks short and non-monotonic axes.
func TestNewSpatial_AxisValidation(t *testing.T) {
	_, err := grid.NewSpatial([]float64{1})
	assert.ErrorIs(t, err, grid.ErrAxisLength)

	_, err = grid.NewSpatial([]float64{0, 2, 1})
	assert.ErrorIs(t, err, grid.ErrNotIncreasing)

	_, err = grid.NewSpatial([]float64{0, 0, 1})
	assert.ErrorIs(t, err, grid.ErrNotIncreasing, "repeated coordinate")
}

// TestSpatial_Accessors checks Shape/NumPoints/Axis and the axis copy
// guarantee (fitted grids are immutable).
func TestSpatial_Accessors(t *testing.T) {
	s, err := grid.NewSpatial([]float64{0, 1, 2}, []float64{0, 0.5, 1, 1.5})
	require.NoError(t, err)

	assert.Equal(t, []int{3, 4}, s.Shape())
	assert.Equal(t, 12, s.NumPoints())

	ax, err := s.Axis(1)
	require.NoError(t, err)
	ax[0] = 99
	again, _ := s.Axis(1)
	assert.Equal(t, 0.0, again[0], "Axis must return a copy")

	_, err = s.Axis(2)
	assert.ErrorIs(t, err, grid.ErrIndexRange)
}

// TestNewSpatialFromMesh_2D builds a 2-D grid from a stacked meshgrid
// tensor of shape (nx, ny, 2).
func TestNewSpatialFromMesh_2D(t *testing.T) {
	xs := []float64{0, 1, 2}
	ys := []float64{10, 20}
	mesh, err := tensor.New(3, 2, 2)
	require.NoError(t, err)
	for i, x := range xs {
		for j, y := range ys {
			require.NoError(t, mesh.Set(x, i, j, 0))
			require.NoError(t, mesh.Set(y, i, j, 1))
		}
	}

	s, err := grid.NewSpatialFromMesh(mesh)
	require.NoError(t, err)
	assert.Equal(t, 2, s.Dims())

	gotX, _ := s.Axis(0)
	gotY, _ := s.Axis(1)
	assert.Equal(t, xs, gotX)
	assert.Equal(t, ys, gotY)
}

// TestNewSpatialFromMesh_Errors covers trailing-axis and consistency
// violations.
func TestNewSpatialFromMesh_Errors(t *testing.T) {
	// trailing axis 3 but only 2 leading axes
	bad, err := tensor.New(3, 2, 3)
	require.NoError(t, err)
	_, err = grid.NewSpatialFromMesh(bad)
	assert.ErrorIs(t, err, grid.ErrMeshShape)

	// rank 5 mesh would be a 4-D grid
	big, err := tensor.New(2, 2, 2, 2, 4)
	require.NoError(t, err)
	_, err = grid.NewSpatialFromMesh(big)
	assert.ErrorIs(t, err, grid.ErrDimension)

	// a mesh whose x-component varies along y is not a tensor product
	warped, err := tensor.New(2, 2, 2)
	require.NoError(t, err)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			require.NoError(t, warped.Set(float64(i+j), i, j, 0))
			require.NoError(t, warped.Set(float64(10*(j+1)), i, j, 1))
		}
	}
	_, err = grid.NewSpatialFromMesh(warped)
	assert.ErrorIs(t, err, grid.ErrMeshInconsistent)
}

// TestNewSpatialFromMesh_Vector accepts a rank-1 tensor as a 1-D grid.
func TestNewSpatialFromMesh_Vector(t *testing.T) {
	v, err := tensor.FromSlice([]float64{0, 1, 2, 3}, 4)
	require.NoError(t, err)
	s, err := grid.NewSpatialFromMesh(v)
	require.NoError(t, err)
	assert.Equal(t, 1, s.Dims())
	assert.Equal(t, []int{4}, s.Shape())
}

// TestNewTemporal validates the time axis and its tensor form.
func TestNewTemporal(t *testing.T) {
	tg, err := grid.NewTemporal([]float64{0, 0.1, 0.2})
	require.NoError(t, err)
	assert.Equal(t, 3, tg.Len())

	_, err = grid.NewTemporal([]float64{0, 0, 1})
	assert.ErrorIs(t, err, grid.ErrNotIncreasing)

	mat2d, _ := tensor.New(10, 3)
	_, err = grid.NewTemporalFromTensor(mat2d)
	assert.ErrorIs(t, err, grid.ErrTemporalShape, "2-D temporal grid must be rejected")

	vec, _ := tensor.FromSlice([]float64{0, 1, 2}, 3)
	tg, err = grid.NewTemporalFromTensor(vec)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 2}, tg.Points())
}

// TestLinspace checks endpoints and spacing.
func TestLinspace(t *testing.T) {
	xs := grid.Linspace(0, 1, 5)
	assert.Equal(t, []float64{0, 0.25, 0.5, 0.75, 1}, xs)
}
