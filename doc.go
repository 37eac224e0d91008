// Package sindykit is a toolbox of feature libraries for sparse
// identification of nonlinear dynamics (SINDy): transformers that expand
// raw state measurements (and, for PDE discovery, their spatial and
// temporal derivatives) into a matrix of candidate basis functions ready
// for sparse regression.
//
// 🚀 What is sindykit?
//
//	A deterministic, gonum-powered library that brings together:
//		• Simple libraries: Identity, Polynomial, Fourier, Custom functions
//		• PDE libraries: finite-difference (strong) and weak-form features
//		  over 1D/2D/3D spatial grids, uniform or non-uniform
//		• SINDyPI libraries: implicit-dynamics feature sets pairing state
//		  functions with ẋ terms
//		• Composition: concatenate fitted libraries side by side
//		• Ensembling: reproducible column subsampling at transform time
//
// ✨ Why choose sindykit?
//
//   - Predictable API – every library shares one Fit/Transform contract
//   - Rock-solid guarantees – sentinel errors, validated construction,
//     immutable fitted state
//   - Reproducible – all randomness flows through an injected seed
//   - Built on gonum – dense linear algebra and quadrature done right
//
// Under the hood, everything is organized into five subpackages:
//
//	tensor/   — minimal N-dimensional strided arrays for gridded data
//	grid/     — spatial/temporal grid validation, sub-domain placement,
//	            multilinear interpolation
//	deriv/    — derivative multi-indices & finite-difference engine
//	weights/  — compactly supported polynomial test functions (weak form)
//	featlib/  — the feature libraries and the transformer contract
//
// Quick sketch:
//
//	lib, _ := featlib.NewPolynomialLibrary(featlib.WithDegree(2))
//	theta, _ := lib.FitTransform(x)     // (n samples × 10 features)
//	names, _ := lib.FeatureNames(nil)   // ["1", "x0", ..., "x2^2"]
//
// The regression driver and sparse optimizers live outside this module;
// they consume the transformed matrix unchanged.
//
//	go get github.com/katalvlaran/sindykit/featlib
package sindykit
