// Package grid describes the spatial and temporal sampling grids that
// PDE feature libraries differentiate and integrate over.
//
// A Spatial grid holds 1–3 strictly increasing coordinate axes. It can
// be built from plain coordinate vectors (NewSpatial) or parsed out of a
// meshgrid-like tensor whose trailing axis enumerates the coordinate
// components (NewSpatialFromMesh). A Temporal grid is a single strictly
// increasing axis, needed only by the weak formulation.
//
// The package also places weak-form sub-domains — K axis-aligned boxes
// of half-width H per axis, each sampled on its own local linspace grid
// (PlaceSubdomains) — and interpolates gridded samples onto arbitrary
// points with a multilinear blend (InterpN). Sub-domain placement draws
// from an injected *rand.Rand, so placements are reproducible under a
// fixed seed.
//
// Dimensionality outside 1–3 is rejected at construction; nothing in
// this package defers a validation to fit/transform time.
package grid
