package grid_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sindykit/grid"
)

func testGrid1D(t *testing.T) (*grid.Spatial, *grid.Temporal) {
	t.Helper()
	s, err := grid.NewSpatial(grid.Linspace(0, 10, 21))
	require.NoError(t, err)
	tg, err := grid.NewTemporal(grid.Linspace(0, 5, 11))
	require.NoError(t, err)
	return s, tg
}

// TestPlaceSubdomains_Validation covers every parameter guard.
func TestPlaceSubdomains_Validation(t *testing.T) {
	s, tg := testGrid1D(t)
	rng := rand.New(rand.NewSource(1))
	half := []float64{0.5, 0.5}

	_, err := grid.PlaceSubdomains(s, tg, 0, half, 10, rng)
	assert.ErrorIs(t, err, grid.ErrBadCount, "K must be positive")

	_, err = grid.PlaceSubdomains(s, tg, 3, half, 1, rng)
	assert.ErrorIs(t, err, grid.ErrBadPoints, "need at least 2 points per axis")

	_, err = grid.PlaceSubdomains(s, tg, 3, half, 10, nil)
	assert.ErrorIs(t, err, grid.ErrNilRand)

	_, err = grid.PlaceSubdomains(s, tg, 3, []float64{0.5}, 10, rng)
	assert.ErrorIs(t, err, grid.ErrBadHalfWidth, "one half-width per axis incl. time")

	_, err = grid.PlaceSubdomains(s, tg, 3, []float64{-1, 0.5}, 10, rng)
	assert.ErrorIs(t, err, grid.ErrBadHalfWidth, "negative Hx")

	_, err = grid.PlaceSubdomains(s, tg, 3, []float64{6, 0.5}, 10, rng)
	assert.ErrorIs(t, err, grid.ErrBadHalfWidth, "Hx wider than half the domain")

	_, err = grid.PlaceSubdomains(s, tg, 3, []float64{0.5, 3}, 10, rng)
	assert.ErrorIs(t, err, grid.ErrBadHalfWidth, "Ht wider than half the time span")
}

// TestPlaceSubdomains_Geometry checks that every sub-domain lies inside
// the grid hull and spans exactly 2H per axis.
func TestPlaceSubdomains_Geometry(t *testing.T) {
	s, tg := testGrid1D(t)
	rng := rand.New(rand.NewSource(7))
	half := []float64{0.8, 0.4}

	set, err := grid.PlaceSubdomains(s, tg, 5, half, 12, rng)
	require.NoError(t, err)
	require.Equal(t, 5, set.K())
	assert.Equal(t, 1, set.Dims())
	assert.Equal(t, 12, set.PointsPerAxis())

	for k := 0; k < set.K(); k++ {
		dom, err := set.Domain(k)
		require.NoError(t, err)
		require.Equal(t, 2, dom.NumAxes(), "one spatial axis plus time")

		for i := 0; i < 2; i++ {
			ax, err := dom.Axis(i)
			require.NoError(t, err)
			require.Len(t, ax, 12)
			c, _ := dom.Center(i)
			h, _ := dom.HalfWidth(i)
			assert.InDelta(t, c-h, ax[0], 1e-12)
			assert.InDelta(t, c+h, ax[len(ax)-1], 1e-12)
		}

		// hull containment
		xs, _ := dom.Axis(0)
		assert.GreaterOrEqual(t, xs[0], 0.0)
		assert.LessOrEqual(t, xs[len(xs)-1], 10.0)
		ts, _ := dom.Axis(1)
		assert.GreaterOrEqual(t, ts[0], 0.0)
		assert.LessOrEqual(t, ts[len(ts)-1], 5.0)
	}

	_, err = set.Domain(5)
	assert.ErrorIs(t, err, grid.ErrIndexRange)
}

// TestPlaceSubdomains_Reproducible verifies that a fixed seed yields a
// fixed placement and different seeds differ.
func TestPlaceSubdomains_Reproducible(t *testing.T) {
	s, tg := testGrid1D(t)
	half := []float64{0.5, 0.5}

	a, err := grid.PlaceSubdomains(s, tg, 4, half, 8, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	b, err := grid.PlaceSubdomains(s, tg, 4, half, 8, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	c, err := grid.PlaceSubdomains(s, tg, 4, half, 8, rand.New(rand.NewSource(43)))
	require.NoError(t, err)

	da, _ := a.Domain(0)
	db, _ := b.Domain(0)
	dc, _ := c.Domain(0)
	axA, _ := da.Axis(0)
	axB, _ := db.Axis(0)
	axC, _ := dc.Axis(0)
	assert.Equal(t, axA, axB, "same seed, same placement")
	assert.NotEqual(t, axA, axC, "different seed, different placement")
}
