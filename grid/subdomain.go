package grid

import (
	"math/rand"
)

// Subdomain is one axis-aligned weak-form integration box: per-axis
// sample coordinates spanning [center−H, center+H], with the time axis
// stored last. Subdomains are immutable once placed.
type Subdomain struct {
	axes     [][]float64 // spatial sample axes, then time
	centers  []float64
	halfSpan []float64
}

// SubdomainSet holds the K sub-domains placed for one weak-form fit.
type SubdomainSet struct {
	domains []Subdomain
	dims    int // spatial dimensionality (time axis excluded)
	pts     int
}

// PlaceSubdomains draws K sub-domain centers uniformly inside the
// shrunken box [lo+H, hi−H] per axis (spatial axes of s, then the time
// axis of tg) and samples each sub-domain on a pts-point linspace per
// axis.
//
// Stage 1 (Validate): K ≥ 1, pts ≥ 2, one half-width per axis, each in
// (0, extent/2], non-nil rng.
// Stage 2 (Execute): draw centers, build local axes.
//
// Placement consumes exactly K×(dims+1) uniform draws from rng, so a
// fixed seed reproduces the placement. Sub-domains are independent of
// one another; no state is shared between them.
// Returns ErrBadCount, ErrBadPoints, ErrBadHalfWidth or ErrNilRand.
func PlaceSubdomains(s *Spatial, tg *Temporal, k int, half []float64, pts int, rng *rand.Rand) (*SubdomainSet, error) {
	if k < 1 {
		return nil, ErrBadCount
	}
	if pts < 2 {
		return nil, ErrBadPoints
	}
	if rng == nil {
		return nil, ErrNilRand
	}

	dims := s.Dims()
	if len(half) != dims+1 {
		return nil, ErrBadHalfWidth
	}
	lo := make([]float64, dims+1)
	hi := make([]float64, dims+1)
	for i := 0; i < dims; i++ {
		ax := s.axis(i)
		lo[i], hi[i] = ax[0], ax[len(ax)-1]
	}
	ts := tg.points()
	lo[dims], hi[dims] = ts[0], ts[len(ts)-1]
	for i, h := range half {
		if h <= 0 || h > (hi[i]-lo[i])/2 {
			return nil, ErrBadHalfWidth
		}
	}

	set := &SubdomainSet{
		domains: make([]Subdomain, k),
		dims:    dims,
		pts:     pts,
	}
	for d := 0; d < k; d++ {
		centers := make([]float64, dims+1)
		axes := make([][]float64, dims+1)
		for i := 0; i <= dims; i++ {
			span := (hi[i] - half[i]) - (lo[i] + half[i])
			centers[i] = lo[i] + half[i] + rng.Float64()*span
			axes[i] = Linspace(centers[i]-half[i], centers[i]+half[i], pts)
		}
		set.domains[d] = Subdomain{
			axes:     axes,
			centers:  centers,
			halfSpan: append([]float64(nil), half...),
		}
	}
	return set, nil
}

// K returns the number of sub-domains.
func (set *SubdomainSet) K() int { return len(set.domains) }

// Dims returns the spatial dimensionality of the sub-domains.
func (set *SubdomainSet) Dims() int { return set.dims }

// PointsPerAxis returns the per-axis sample count.
func (set *SubdomainSet) PointsPerAxis() int { return set.pts }

// Domain returns sub-domain k, or ErrIndexRange.
func (set *SubdomainSet) Domain(k int) (*Subdomain, error) {
	if k < 0 || k >= len(set.domains) {
		return nil, ErrIndexRange
	}
	return &set.domains[k], nil
}

// NumAxes returns the number of sample axes (spatial dims + time).
func (d *Subdomain) NumAxes() int { return len(d.axes) }

// Axis returns a copy of the sample coordinates along axis i; the time
// axis is last.
func (d *Subdomain) Axis(i int) ([]float64, error) {
	if i < 0 || i >= len(d.axes) {
		return nil, ErrIndexRange
	}
	return append([]float64(nil), d.axes[i]...), nil
}

// Center returns the sub-domain center along axis i.
func (d *Subdomain) Center(i int) (float64, error) {
	if i < 0 || i >= len(d.centers) {
		return 0, ErrIndexRange
	}
	return d.centers[i], nil
}

// HalfWidth returns the sub-domain half-width along axis i.
func (d *Subdomain) HalfWidth(i int) (float64, error) {
	if i < 0 || i >= len(d.halfSpan) {
		return 0, ErrIndexRange
	}
	return d.halfSpan[i], nil
}

// axis returns the backing slice for internal read-only use.
func (d *Subdomain) axis(i int) []float64 { return d.axes[i] }

// Axes returns copies of all sample axes, time last.
func (d *Subdomain) Axes() [][]float64 {
	out := make([][]float64, len(d.axes))
	for i := range d.axes {
		out[i] = append([]float64(nil), d.axes[i]...)
	}
	return out
}
