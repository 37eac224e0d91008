package featlib_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/sindykit/featlib"
)

// TestFourier_DefaultCount: one frequency over 3 variables, sin and
// cos, is 6 features.
func TestFourier_DefaultCount(t *testing.T) {
	lib, err := featlib.NewFourierLibrary()
	require.NoError(t, err)

	require.NoError(t, lib.Fit(threeVarSample()))
	assert.Equal(t, 6, lib.NumOutputFeatures())

	names, err := lib.FeatureNames(nil)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"sin(1 x0)", "cos(1 x0)",
		"sin(1 x1)", "cos(1 x1)",
		"sin(1 x2)", "cos(1 x2)",
	}, names)
}

// TestFourier_Values evaluates two frequencies on one variable.
func TestFourier_Values(t *testing.T) {
	lib, err := featlib.NewFourierLibrary(featlib.WithNFrequencies(2))
	require.NoError(t, err)

	x := mat.NewDense(1, 1, []float64{0.5})
	xp, err := lib.FitTransform(x)
	require.NoError(t, err)

	_, cols := xp.Dims()
	require.Equal(t, 4, cols)
	assert.InDelta(t, math.Sin(0.5), xp.At(0, 0), 1e-12)
	assert.InDelta(t, math.Cos(0.5), xp.At(0, 1), 1e-12)
	assert.InDelta(t, math.Sin(1.0), xp.At(0, 2), 1e-12)
	assert.InDelta(t, math.Cos(1.0), xp.At(0, 3), 1e-12)
}

// TestFourier_SinOnly halves the feature set.
func TestFourier_SinOnly(t *testing.T) {
	lib, err := featlib.NewFourierLibrary(featlib.WithCos(false))
	require.NoError(t, err)

	require.NoError(t, lib.Fit(threeVarSample()))
	assert.Equal(t, 3, lib.NumOutputFeatures())

	names, err := lib.FeatureNames(nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"sin(1 x0)", "sin(1 x1)", "sin(1 x2)"}, names)
}

// TestFourier_ConstructionErrors: the bad-option matrix.
func TestFourier_ConstructionErrors(t *testing.T) {
	_, err := featlib.NewFourierLibrary(featlib.WithNFrequencies(0))
	assert.ErrorIs(t, err, featlib.ErrBadFrequencies)

	_, err = featlib.NewFourierLibrary(featlib.WithSin(false), featlib.WithCos(false))
	assert.ErrorIs(t, err, featlib.ErrNoFeatureSource)
}

// TestIdentity_PassThrough: features are the inputs themselves.
func TestIdentity_PassThrough(t *testing.T) {
	lib, err := featlib.NewIdentityLibrary()
	require.NoError(t, err)

	x := threeVarSample()
	xp, err := lib.FitTransform(x)
	require.NoError(t, err)

	assert.Equal(t, 3, lib.NumOutputFeatures())
	rows, cols := xp.Dims()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			assert.Equal(t, x.At(i, j), xp.At(i, j))
		}
	}

	names, err := lib.FeatureNames([]string{"u", "v", "w"})
	require.NoError(t, err)
	assert.Equal(t, []string{"u", "v", "w"}, names)
}

// TestBaseLibrary_NotImplemented: the abstract base fails loudly.
func TestBaseLibrary_NotImplemented(t *testing.T) {
	var base featlib.BaseLibrary

	assert.ErrorIs(t, base.Fit(threeVarSample()), featlib.ErrNotImplemented)
	_, err := base.Transform(threeVarSample())
	assert.ErrorIs(t, err, featlib.ErrNotImplemented)
	_, err = base.FitTransform(threeVarSample())
	assert.ErrorIs(t, err, featlib.ErrNotImplemented)
	_, err = base.FeatureNames(nil)
	assert.ErrorIs(t, err, featlib.ErrNotImplemented)
	assert.Zero(t, base.NumOutputFeatures())
	assert.Zero(t, base.Size())
}
