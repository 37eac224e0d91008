// Package featlib implements SINDy feature libraries: transformers that
// expand raw state samples into a matrix of candidate basis functions
// for sparse regression.
//
// Every library shares one lifecycle, the Library interface:
//
//	Fit(x)           — validate shapes, fix the feature set and count
//	Transform(x)     — evaluate every feature; (rows × NumOutputFeatures)
//	FitTransform(x)  — the two in sequence
//	FeatureNames(fs) — one name per output column
//
// Transform and FeatureNames before Fit return ErrNotFitted; changing
// the number of input variables between Fit and Transform returns
// ErrShapeMismatch. Invalid configuration is rejected at construction,
// never deferred.
//
// Available libraries:
//
//	BaseLibrary           — the abstract contract; every method returns
//	                        ErrNotImplemented
//	IdentityLibrary       — passthrough columns
//	PolynomialLibrary     — monomials up to a degree, with bias and
//	                        interaction toggles
//	FourierLibrary        — sin/cos of each variable per frequency
//	CustomLibrary         — user-supplied functions with naming callbacks
//	PDELibrary            — function × spatial-derivative features, in
//	                        pointwise (finite-difference) or weak
//	                        (integral) form
//	SpatiotemporalLibrary — functions of the space-time coordinates
//	SINDyPILibrary        — implicit-dynamics features pairing state
//	                        functions with ẋ terms
//	ConcatLibrary         — two or more libraries side by side, built
//	                        with Concat
//
// Ensembling: transform-time column subsampling for bootstrap-style
// robustness analysis. WithLibraryEnsemble drops one column chosen by
// the injected random source; WithEnsembleIndices drops the given
// columns. When both are set the explicit indices win. Neither changes
// NumOutputFeatures.
//
// All randomness (ensembling, weak-form sub-domain placement) flows
// through WithRandSeed, so every run is reproducible.
package featlib
