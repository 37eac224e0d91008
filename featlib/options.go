// Package featlib: functional configuration shared by all library
// constructors. Option setters only record values; every constructor
// validates the subset of options it consumes and returns a
// construction error for anything out of range. Options that a library
// does not consume are ignored by it.
package featlib

import (
	"math/rand"

	"github.com/katalvlaran/sindykit/grid"
)

// Defaults — single source of truth for zero-configuration behavior.
const (
	// DefaultDegree is the polynomial degree.
	DefaultDegree = 2

	// DefaultNFrequencies is the Fourier frequency count.
	DefaultNFrequencies = 1

	// DefaultK is the weak-form sub-domain count.
	DefaultK = 100

	// DefaultPointsPerDomain is the per-axis sample count inside one
	// weak-form sub-domain.
	DefaultPointsPerDomain = 100

	// DefaultSmoothingDegree is the weak-form test-function degree p.
	DefaultSmoothingDegree = 4

	// DefaultHalfWidthFraction sizes an unset half-width as this
	// fraction of the axis extent.
	DefaultHalfWidthFraction = 0.1

	// DefaultSeed seeds the injected random source, so sub-domain
	// placement and ensembling are reproducible out of the box.
	DefaultSeed = 1
)

// Option mutates the option record. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	functionNames []func(args ...string) string

	// polynomial / fourier / shared
	degree             int
	includeBias        bool
	biasSet            bool // tracks WithBias: per-library defaults differ
	includeInteraction bool
	interactionOnly    bool
	nFrequencies       int
	includeSin         bool
	includeCos         bool

	// PDE
	derivativeOrder int
	spatialGrid     *grid.Spatial
	temporalGrid    *grid.Temporal
	isUniform       bool
	weakForm        bool
	k               int
	halfWidths      [4]float64 // Hx, Hy, Hz, Ht; 0 = unset (derived)
	smoothingDegree int
	pointsPerDomain int

	// SINDyPI
	modelSubset []int

	// ensembling & randomness
	libraryEnsemble bool
	ensembleIndices []int
	seed            int64
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		degree:             DefaultDegree,
		includeInteraction: true,
		nFrequencies:       DefaultNFrequencies,
		includeSin:         true,
		includeCos:         true,
		isUniform:          true,
		k:                  DefaultK,
		smoothingDegree:    DefaultSmoothingDegree,
		pointsPerDomain:    DefaultPointsPerDomain,
		seed:               DefaultSeed,
	}
}

// gatherOptions applies setters over the defaults.
func gatherOptions(opts []Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// rng builds the injected random source for one library instance.
func (o *Options) rng() *rand.Rand {
	return rand.New(rand.NewSource(o.seed))
}

// bias resolves the include-bias flag against a per-library default.
func (o *Options) bias(def bool) bool {
	if o.biasSet {
		return o.includeBias
	}
	return def
}

// WithFunctionNames supplies naming callbacks parallel to the library
// functions (and, for SINDyPI, the ẋ functions appended after them).
// Length mismatches are a construction error.
func WithFunctionNames(names []func(args ...string) string) Option {
	return func(o *Options) { o.functionNames = names }
}

// WithDegree sets the polynomial degree (≥ 0; 0 is bias-only).
func WithDegree(d int) Option {
	return func(o *Options) { o.degree = d }
}

// WithBias toggles the constant "1" feature column.
func WithBias(on bool) Option {
	return func(o *Options) { o.includeBias = on; o.biasSet = true }
}

// WithInteraction toggles cross-variable monomials.
func WithInteraction(on bool) Option {
	return func(o *Options) { o.includeInteraction = on }
}

// WithInteractionOnly restricts monomials to distinct-variable
// products; requires interactions to stay enabled.
func WithInteractionOnly(on bool) Option {
	return func(o *Options) { o.interactionOnly = on }
}

// WithNFrequencies sets the Fourier frequency count (≥ 1).
func WithNFrequencies(n int) Option {
	return func(o *Options) { o.nFrequencies = n }
}

// WithSin toggles sine features.
func WithSin(on bool) Option {
	return func(o *Options) { o.includeSin = on }
}

// WithCos toggles cosine features.
func WithCos(on bool) Option {
	return func(o *Options) { o.includeCos = on }
}

// WithDerivativeOrder bounds the mixed-partial order of PDE features.
func WithDerivativeOrder(d int) Option {
	return func(o *Options) { o.derivativeOrder = d }
}

// WithSpatialGrid attaches the spatial sampling grid.
func WithSpatialGrid(s *grid.Spatial) Option {
	return func(o *Options) { o.spatialGrid = s }
}

// WithTemporalGrid attaches the time axis (required in weak form).
func WithTemporalGrid(t *grid.Temporal) Option {
	return func(o *Options) { o.temporalGrid = t }
}

// WithUniform declares the spatial grid evenly spaced, enabling the
// symmetric central stencils.
func WithUniform(on bool) Option {
	return func(o *Options) { o.isUniform = on }
}

// WithWeakForm switches the PDE library from pointwise derivatives to
// sub-domain integrals against smooth test functions.
func WithWeakForm(on bool) Option {
	return func(o *Options) { o.weakForm = on }
}

// WithSubdomainCount sets the number of weak-form sub-domains K.
func WithSubdomainCount(k int) Option {
	return func(o *Options) { o.k = k }
}

// WithHx sets the sub-domain half-width along the first spatial axis.
func WithHx(h float64) Option {
	return func(o *Options) { o.halfWidths[0] = h }
}

// WithHy sets the sub-domain half-width along the second spatial axis.
func WithHy(h float64) Option {
	return func(o *Options) { o.halfWidths[1] = h }
}

// WithHz sets the sub-domain half-width along the third spatial axis.
func WithHz(h float64) Option {
	return func(o *Options) { o.halfWidths[2] = h }
}

// WithHt sets the sub-domain half-width along the time axis.
func WithHt(h float64) Option {
	return func(o *Options) { o.halfWidths[3] = h }
}

// WithSmoothingDegree sets the test-function polynomial degree p.
func WithSmoothingDegree(p int) Option {
	return func(o *Options) { o.smoothingDegree = p }
}

// WithPointsPerDomain sets the per-axis sample count inside one
// sub-domain.
func WithPointsPerDomain(n int) Option {
	return func(o *Options) { o.pointsPerDomain = n }
}

// WithModelSubset restricts which implicit models the downstream
// SINDyPI optimizer solves; stored and exposed, not applied here.
func WithModelSubset(idx []int) Option {
	return func(o *Options) { o.modelSubset = append([]int(nil), idx...) }
}

// WithLibraryEnsemble enables dropping one randomly chosen feature
// column at transform time.
func WithLibraryEnsemble(on bool) Option {
	return func(o *Options) { o.libraryEnsemble = on }
}

// WithEnsembleIndices drops the given feature columns at transform
// time. Takes precedence over WithLibraryEnsemble when both are set.
func WithEnsembleIndices(idx []int) Option {
	return func(o *Options) { o.ensembleIndices = append([]int(nil), idx...) }
}

// WithRandSeed seeds the library's injected random source.
func WithRandSeed(seed int64) Option {
	return func(o *Options) { o.seed = seed }
}
