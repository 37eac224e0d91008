package featlib_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/sindykit/featlib"
	"github.com/katalvlaran/sindykit/grid"
)

// implicitFns is the canonical three-function state side: x, x·y, x².
func implicitFns() []featlib.Function {
	return []featlib.Function{
		identityFn(),
		featlib.Binary(
			func(a, b float64) float64 { return a * b },
			func(a, b string) string { return a + " " + b },
		),
		featlib.Unary(
			func(v float64) float64 { return v * v },
			func(a string) string { return a + "^2" },
		),
	}
}

// TestSINDyPI_CountIdentity: 3 variables with the canonical function
// sets produce 1 + 9 + 3 + 27 = 40 features.
func TestSINDyPI_CountIdentity(t *testing.T) {
	ts := grid.Linspace(0, 1, 5)
	lib, err := featlib.NewSINDyPILibrary(implicitFns(), []featlib.Function{identityFn()}, ts)
	require.NoError(t, err)

	x := mat.NewDense(5, 3, make([]float64, 15))
	require.NoError(t, lib.Fit(x))
	assert.Equal(t, 40, lib.NumOutputFeatures(),
		"bias + 9 state terms + 3 derivative terms + 27 products")

	names, err := lib.FeatureNames(nil)
	require.NoError(t, err)
	require.Len(t, names, 40)
	assert.Equal(t, "1", names[0])
	assert.Equal(t, "x0", names[1])
	assert.Equal(t, "x0 x1", names[4])
	assert.Equal(t, "x0^2", names[7])
	assert.Equal(t, "x0_dot", names[10])
	assert.Equal(t, "x0 x0_dot", names[13])
}

// TestSINDyPI_DerivativeValues: x(t) = t² has ẋ = 2t exactly under
// the three-point stencils.
func TestSINDyPI_DerivativeValues(t *testing.T) {
	ts := grid.Linspace(0, 1, 11)
	data := make([]float64, len(ts))
	for i, tv := range ts {
		data[i] = tv * tv
	}
	lib, err := featlib.NewSINDyPILibrary(
		[]featlib.Function{identityFn()},
		[]featlib.Function{identityFn()},
		ts,
	)
	require.NoError(t, err)

	xp, err := lib.FitTransform(mat.NewDense(len(ts), 1, data))
	require.NoError(t, err)

	assert.Equal(t, 4, lib.NumOutputFeatures(), "bias + x + ẋ + x·ẋ")
	for i, tv := range ts {
		assert.InDelta(t, 1, xp.At(i, 0), 1e-12, "bias")
		assert.InDelta(t, tv*tv, xp.At(i, 1), 1e-12, "state")
		assert.InDelta(t, 2*tv, xp.At(i, 2), 1e-9, "derivative at t=%v", tv)
		assert.InDelta(t, tv*tv*2*tv, xp.At(i, 3), 1e-8, "state × derivative")
	}
}

// TestSINDyPI_ConstructionErrors walks the guard matrix.
func TestSINDyPI_ConstructionErrors(t *testing.T) {
	ts := grid.Linspace(0, 1, 5)

	_, err := featlib.NewSINDyPILibrary(nil, []featlib.Function{identityFn()}, ts)
	assert.ErrorIs(t, err, featlib.ErrNoFunctions)

	_, err = featlib.NewSINDyPILibrary([]featlib.Function{identityFn()}, nil, ts)
	assert.ErrorIs(t, err, featlib.ErrNoFunctions)

	_, err = featlib.NewSINDyPILibrary(
		[]featlib.Function{identityFn()},
		[]featlib.Function{identityFn()},
		ts,
		featlib.WithFunctionNames([]func(args ...string) string{
			func(args ...string) string { return args[0] },
		}),
	)
	assert.ErrorIs(t, err, featlib.ErrMismatchedNames,
		"names must cover state and derivative functions")

	_, err = featlib.NewSINDyPILibrary(
		[]featlib.Function{identityFn()},
		[]featlib.Function{identityFn()},
		[]float64{1, 1, 2},
	)
	assert.Error(t, err, "sample times must increase strictly")

	_, err = featlib.NewSINDyPILibrary(
		[]featlib.Function{identityFn()},
		[]featlib.Function{identityFn()},
		ts,
		featlib.WithModelSubset([]int{-1}),
	)
	assert.ErrorIs(t, err, featlib.ErrBadModelSubset)

	_, err = featlib.NewSINDyPILibrary(
		[]featlib.Function{identityFn()},
		[]featlib.Function{identityFn()},
		ts,
		featlib.WithModelSubset([]int{1, 1}),
	)
	assert.ErrorIs(t, err, featlib.ErrBadModelSubset, "duplicate subset entry")
}

// TestSINDyPI_ModelSubset: range checking happens at fit; the subset
// survives for the optimizer boundary.
func TestSINDyPI_ModelSubset(t *testing.T) {
	ts := grid.Linspace(0, 1, 5)
	x := mat.NewDense(5, 1, []float64{0, 1, 2, 3, 4})

	lib, err := featlib.NewSINDyPILibrary(
		[]featlib.Function{identityFn()},
		[]featlib.Function{identityFn()},
		ts,
		featlib.WithModelSubset([]int{0, 3}),
	)
	require.NoError(t, err)
	require.NoError(t, lib.Fit(x))
	assert.Equal(t, []int{0, 3}, lib.ModelSubset())

	subset := lib.ModelSubset()
	subset[0] = 99
	assert.Equal(t, []int{0, 3}, lib.ModelSubset(), "accessor returns a copy")

	wide, err := featlib.NewSINDyPILibrary(
		[]featlib.Function{identityFn()},
		[]featlib.Function{identityFn()},
		ts,
		featlib.WithModelSubset([]int{7}),
	)
	require.NoError(t, err)
	assert.ErrorIs(t, wide.Fit(x), featlib.ErrBadModelSubset,
		"subset index beyond the fitted feature count")
}

// TestSINDyPI_RowGuard: samples and times must align.
func TestSINDyPI_RowGuard(t *testing.T) {
	ts := grid.Linspace(0, 1, 5)
	lib, err := featlib.NewSINDyPILibrary(
		[]featlib.Function{identityFn()},
		[]featlib.Function{identityFn()},
		ts,
	)
	require.NoError(t, err)

	err = lib.Fit(mat.NewDense(4, 1, make([]float64, 4)))
	assert.ErrorIs(t, err, featlib.ErrShapeMismatch)
}
