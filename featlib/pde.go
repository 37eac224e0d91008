package featlib

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/sindykit/deriv"
	"github.com/katalvlaran/sindykit/grid"
	"github.com/katalvlaran/sindykit/tensor"
	"github.com/katalvlaran/sindykit/weights"
)

// axisLetters name the spatial axes in derivative feature suffixes.
var axisLetters = [3]string{"x", "y", "z"}

// PDELibrary expands spatiotemporal field samples into PDE candidate
// terms: library functions of the field, spatial derivatives of the
// field, and their products.
//
// Input layout: rows enumerate grid points in row-major (spatial axes
// first, time last) order, columns are field variables, so a sample
// matrix has prod(spatial extents) × nt rows.
//
// Pointwise (strong) mode differentiates with finite differences and
// returns one output row per input row. Weak mode instead integrates
// against smooth compactly supported test functions over K randomly
// placed sub-domains and returns K output rows; derivatives are moved
// onto the test function by integration by parts, so noisy data is
// never differentiated. Peak weak-form memory scales as
// K × pointsPerDomain^(dims+1) × number of derivative indices.
type PDELibrary struct {
	state

	fns         []Function
	derivOrder  int
	spatial     *grid.Spatial
	temporal    *grid.Temporal
	uniform     bool
	includeBias bool

	weak bool
	k    int
	pts  int
	p    int
	half []float64 // per axis incl. time; resolved at construction

	// fitted
	indices []deriv.MultiIndex
	terms   []functionTerm
	nt      int
	subs    *grid.SubdomainSet
	wcache  [][]*tensor.Dense // [subdomain][0=plain, 1+i=indices[i]]
}

// NewPDELibrary constructs a PDE library over the given functions.
//
// Required: a spatial grid (ErrMissingGrid) and a derivative order ≥ 1
// (ErrBadOrder) small enough for the grid's shortest axis to hold one
// finite-difference stencil. Weak form additionally requires a
// temporal grid (ErrMissingTemporalGrid), K ≥ 1
// (ErrBadSubdomainCount), enough points per domain for the stencil
// (ErrBadPointsPerDomain), smoothing degree p ≥ derivative order
// (ErrBadSmoothing) and half-widths within (0, extent/2]
// (ErrBadHalfWidth); unset half-widths default to a tenth of the axis
// extent.
func NewPDELibrary(fns []Function, opts ...Option) (*PDELibrary, error) {
	o := gatherOptions(opts)
	normalized, err := validateFunctions(fns, o.functionNames)
	if err != nil {
		return nil, err
	}
	if o.spatialGrid == nil {
		return nil, ErrMissingGrid
	}
	if o.derivativeOrder < 1 {
		return nil, ErrBadOrder
	}

	s := o.spatialGrid
	width := 2*((o.derivativeOrder+1)/2) + 1
	for _, extent := range s.Shape() {
		if extent < width {
			return nil, fmt.Errorf("grid axis of %d points cannot hold a %d-point stencil: %w",
				extent, width, ErrBadOrder)
		}
	}

	l := &PDELibrary{
		fns:         normalized,
		derivOrder:  o.derivativeOrder,
		spatial:     s,
		temporal:    o.temporalGrid,
		uniform:     o.isUniform,
		includeBias: o.bias(false),
		weak:        o.weakForm,
	}
	if o.weakForm {
		if err := l.configureWeak(&o); err != nil {
			return nil, err
		}
	}

	st, err := initState(o)
	if err != nil {
		return nil, err
	}
	l.state = st
	return l, nil
}

// configureWeak validates the weak-form knobs and resolves half-widths
// against the grid extents.
func (l *PDELibrary) configureWeak(o *Options) error {
	if l.temporal == nil {
		return ErrMissingTemporalGrid
	}
	if o.k < 1 {
		return ErrBadSubdomainCount
	}
	width := 2*((l.derivOrder+1)/2) + 1
	if o.pointsPerDomain < width {
		return ErrBadPointsPerDomain
	}
	if o.smoothingDegree < 1 || o.smoothingDegree < l.derivOrder {
		return ErrBadSmoothing
	}

	dims := l.spatial.Dims()
	half := make([]float64, dims+1)
	for i := 0; i < dims; i++ {
		ax, err := l.spatial.Axis(i)
		if err != nil {
			return err
		}
		h, err := resolveHalfWidth(o.halfWidths[i], ax[0], ax[len(ax)-1])
		if err != nil {
			return err
		}
		half[i] = h
	}
	ts := l.temporal.Points()
	h, err := resolveHalfWidth(o.halfWidths[3], ts[0], ts[len(ts)-1])
	if err != nil {
		return err
	}
	half[dims] = h

	l.k = o.k
	l.pts = o.pointsPerDomain
	l.p = o.smoothingDegree
	l.half = half
	return nil
}

// resolveHalfWidth validates a configured half-width against the axis
// extent, or derives the default when unset (zero).
func resolveHalfWidth(h, lo, hi float64) (float64, error) {
	extent := hi - lo
	if h == 0 {
		return DefaultHalfWidthFraction * extent, nil
	}
	if h < 0 || h > extent/2 {
		return 0, ErrBadHalfWidth
	}
	return h, nil
}

// Fit fixes the feature set: (function × combination) terms, the
// derivative multi-index set, and, in weak form, the sub-domain
// placement and weight tensors.
//
// Feature order (stable): bias; function terms (function outer,
// combination inner); derivative terms (multi-index outer, variable
// inner); products (multi-index outer, variable next, function term
// inner).
func (l *PDELibrary) Fit(x mat.Matrix) error {
	rows, cols, err := checkInput(x)
	if err != nil {
		return err
	}
	nt, err := l.factorRows(rows)
	if err != nil {
		return err
	}

	indices, err := deriv.Indices(l.spatial.Dims(), l.derivOrder)
	if err != nil {
		return err
	}
	terms := enumerateTerms(l.fns, cols)

	names := make([]nameFn, 0)
	if l.includeBias {
		names = append(names, constName("1"))
	}
	names = append(names, termNames(terms)...)
	for _, m := range indices {
		for v := 0; v < cols; v++ {
			m, v := m, v
			names = append(names, func(vars []string) string {
				return vars[v] + "_" + derivSuffix(m)
			})
		}
	}
	for _, m := range indices {
		for v := 0; v < cols; v++ {
			for _, t := range terms {
				m, v, t := m, v, t
				names = append(names, func(vars []string) string {
					return t.name(vars) + " " + vars[v] + "_" + derivSuffix(m)
				})
			}
		}
	}

	if l.weak {
		if err := l.placeAndWeigh(indices); err != nil {
			return err
		}
	}

	l.indices = indices
	l.terms = terms
	l.nt = nt
	l.markFitted(cols, names)
	return nil
}

// factorRows checks that the sample count matches the grid: rows must
// equal prod(spatial extents) × nt. Weak form pins nt to the temporal
// grid; strong mode infers it (and cross-checks a configured temporal
// grid).
func (l *PDELibrary) factorRows(rows int) (int, error) {
	n := l.spatial.NumPoints()
	if l.weak {
		nt := l.temporal.Len()
		if rows != n*nt {
			return 0, ErrShapeMismatch
		}
		return nt, nil
	}
	if rows%n != 0 {
		return 0, ErrShapeMismatch
	}
	nt := rows / n
	if l.temporal != nil && nt != l.temporal.Len() {
		return 0, ErrShapeMismatch
	}
	return nt, nil
}

// placeAndWeigh draws the K sub-domains and precomputes their weight
// tensors: the plain kernel and one tensor per derivative multi-index
// (spatial orders from the index, time order zero). Each sub-domain's
// tensors depend only on its own local axes.
func (l *PDELibrary) placeAndWeigh(indices []deriv.MultiIndex) error {
	subs, err := grid.PlaceSubdomains(l.spatial, l.temporal, l.k, l.half, l.pts, l.rngSrc)
	if err != nil {
		return err
	}
	dims := l.spatial.Dims()
	cache := make([][]*tensor.Dense, subs.K())
	for k := 0; k < subs.K(); k++ {
		dom, err := subs.Domain(k)
		if err != nil {
			return err
		}
		axes := dom.Axes()
		centers := make([]float64, dims+1)
		for i := range centers {
			centers[i], _ = dom.Center(i)
		}

		cache[k] = make([]*tensor.Dense, 1+len(indices))
		zero := make([]int, dims+1)
		w0, err := weights.TensorProduct(axes, centers, l.half, l.p, zero)
		if err != nil {
			return err
		}
		cache[k][0] = w0
		for mi, m := range indices {
			orders := make([]int, dims+1)
			copy(orders, m)
			wm, err := weights.TensorProduct(axes, centers, l.half, l.p, orders)
			if err != nil {
				return err
			}
			cache[k][1+mi] = wm
		}
	}
	l.subs = subs
	l.wcache = cache
	return nil
}

// FitTransform runs Fit then Transform.
func (l *PDELibrary) FitTransform(x mat.Matrix) (*mat.Dense, error) {
	if err := l.Fit(x); err != nil {
		return nil, err
	}
	return l.Transform(x)
}

// FeatureNames renders names like "1", "f0(x0)", "x0_xx",
// "f0(x0) x0_xx".
func (l *PDELibrary) FeatureNames(inputFeatures []string) ([]string, error) {
	return l.featureNames(inputFeatures)
}

// WeakForm reports whether the library integrates instead of
// differentiating.
func (l *PDELibrary) WeakForm() bool { return l.weak }

// DerivativeIndices returns a copy of the fitted multi-index set.
func (l *PDELibrary) DerivativeIndices() ([]deriv.MultiIndex, error) {
	if err := l.checkFitted(); err != nil {
		return nil, err
	}
	out := make([]deriv.MultiIndex, len(l.indices))
	for i, m := range l.indices {
		out[i] = m.Clone()
	}
	return out, nil
}

// SubdomainCount returns the fitted weak-form sub-domain count.
func (l *PDELibrary) SubdomainCount() (int, error) {
	if err := l.checkFitted(); err != nil {
		return 0, err
	}
	if l.subs == nil {
		return 0, nil
	}
	return l.subs.K(), nil
}

// SubdomainAxis returns a copy of sub-domain k's sample coordinates
// along axis (time last), preserving the immutability of fitted state.
func (l *PDELibrary) SubdomainAxis(k, axis int) ([]float64, error) {
	if err := l.checkFitted(); err != nil {
		return nil, err
	}
	if l.subs == nil {
		return nil, ErrNotFitted
	}
	dom, err := l.subs.Domain(k)
	if err != nil {
		return nil, err
	}
	return dom.Axis(axis)
}

// SmoothWeight evaluates sub-domain k's test-function tensor for an
// arbitrary per-axis derivative order (time last). Regression drivers
// use it to build their target integrals, e.g. time order 1 for the
// left-hand side.
func (l *PDELibrary) SmoothWeight(k int, orders ...int) (*tensor.Dense, error) {
	if err := l.checkFitted(); err != nil {
		return nil, err
	}
	if l.subs == nil {
		return nil, ErrNotFitted
	}
	dom, err := l.subs.Domain(k)
	if err != nil {
		return nil, err
	}
	dims := l.spatial.Dims()
	centers := make([]float64, dims+1)
	for i := range centers {
		centers[i], _ = dom.Center(i)
	}
	return weights.TensorProduct(dom.Axes(), centers, l.half, l.p, orders)
}

// derivSuffix renders a multi-index as repeated axis letters: (2,1)
// becomes "xxy".
func derivSuffix(m deriv.MultiIndex) string {
	s := ""
	for axis, d := range m {
		for i := 0; i < d; i++ {
			s += axisLetters[axis]
		}
	}
	return s
}
