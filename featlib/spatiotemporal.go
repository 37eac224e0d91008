package featlib

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/sindykit/tensor"
)

// maxSpatiotemporalVars caps the coordinate meshes at three spatial
// axes plus time.
const maxSpatiotemporalVars = 4

// SpatiotemporalLibrary evaluates library functions of the measurement
// coordinates rather than the measurements: each feature is a function
// term over the flattened coordinate meshes, so the expansion captures
// explicit space and time dependence of the dynamics. Sample values
// only fix the expected row count; they never enter the features.
type SpatiotemporalLibrary struct {
	state

	fns         []Function
	meshes      []*tensor.Dense
	includeBias bool

	terms []functionTerm
}

// NewSpatiotemporalLibrary constructs the library over 1 to 4
// coordinate meshes of identical shape (ErrBadVariables otherwise).
// Mesh data is captured by reference; callers must not mutate it after
// construction.
func NewSpatiotemporalLibrary(fns []Function, meshes []*tensor.Dense, opts ...Option) (*SpatiotemporalLibrary, error) {
	o := gatherOptions(opts)
	normalized, err := validateFunctions(fns, o.functionNames)
	if err != nil {
		return nil, err
	}
	if len(meshes) < 1 || len(meshes) > maxSpatiotemporalVars {
		return nil, ErrBadVariables
	}
	shape := meshes[0].Shape()
	for _, m := range meshes[1:] {
		if !shapeEqual(shape, m.Shape()) {
			return nil, ErrBadVariables
		}
	}
	st, err := initState(o)
	if err != nil {
		return nil, err
	}
	return &SpatiotemporalLibrary{
		state:       st,
		fns:         normalized,
		meshes:      append([]*tensor.Dense(nil), meshes...),
		includeBias: o.bias(false),
	}, nil
}

func shapeEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Fit enumerates the (function × coordinate combination) terms. The
// sample row count must equal the flattened mesh size
// (ErrShapeMismatch).
func (l *SpatiotemporalLibrary) Fit(x mat.Matrix) error {
	rows, cols, err := checkInput(x)
	if err != nil {
		return err
	}
	if rows != l.meshes[0].Len() {
		return ErrShapeMismatch
	}
	terms := enumerateTerms(l.fns, len(l.meshes))

	// Features name the coordinates, not the input variables, so the
	// naming callbacks close over fixed coordinate tokens.
	coordVars := defaultVars(len(l.meshes))
	names := make([]nameFn, 0, len(terms)+1)
	if l.includeBias {
		names = append(names, constName("1"))
	}
	for _, t := range terms {
		t := t
		names = append(names, func([]string) string { return t.name(coordVars) })
	}

	l.terms = terms
	l.markFitted(cols, names)
	return nil
}

// Transform evaluates every coordinate term at each flattened mesh
// position.
func (l *SpatiotemporalLibrary) Transform(x mat.Matrix) (*mat.Dense, error) {
	rows, err := l.checkTransformInput(x)
	if err != nil {
		return nil, err
	}
	if rows != l.meshes[0].Len() {
		return nil, ErrShapeMismatch
	}
	out := mat.NewDense(rows, l.nOutput, nil)
	coords := make([]float64, len(l.meshes))
	for i := 0; i < rows; i++ {
		for v, m := range l.meshes {
			coords[v] = m.Data()[i]
		}
		j := 0
		if l.includeBias {
			out.Set(i, j, 1)
			j++
		}
		for _, t := range l.terms {
			out.Set(i, j, t.eval(coords))
			j++
		}
	}
	return l.applyEnsemble(out)
}

// FitTransform runs Fit then Transform.
func (l *SpatiotemporalLibrary) FitTransform(x mat.Matrix) (*mat.Dense, error) {
	if err := l.Fit(x); err != nil {
		return nil, err
	}
	return l.Transform(x)
}

// FeatureNames renders the coordinate term names. The inputFeatures
// argument is validated against the fitted variable count for contract
// parity but the names themselves use coordinate tokens.
func (l *SpatiotemporalLibrary) FeatureNames(inputFeatures []string) ([]string, error) {
	return l.featureNames(inputFeatures)
}
