package featlib

import (
	"gonum.org/v1/gonum/mat"
)

// IdentityLibrary passes the input variables through unchanged: one
// output feature per input column. Useful as a building block in
// concatenations and as the simplest exercise of the contract.
type IdentityLibrary struct {
	state
}

// NewIdentityLibrary constructs an identity library. Only the shared
// ensembling/seed options are consulted.
func NewIdentityLibrary(opts ...Option) (*IdentityLibrary, error) {
	st, err := initState(gatherOptions(opts))
	if err != nil {
		return nil, err
	}
	return &IdentityLibrary{state: st}, nil
}

// Fit records the variable count; the feature set is the variables
// themselves.
func (l *IdentityLibrary) Fit(x mat.Matrix) error {
	_, cols, err := checkInput(x)
	if err != nil {
		return err
	}
	names := make([]nameFn, cols)
	for j := 0; j < cols; j++ {
		j := j
		names[j] = func(vars []string) string { return vars[j] }
	}
	l.markFitted(cols, names)
	return nil
}

// Transform copies the input columns (densifying whatever backing x
// has) and applies ensembling.
func (l *IdentityLibrary) Transform(x mat.Matrix) (*mat.Dense, error) {
	rows, err := l.checkTransformInput(x)
	if err != nil {
		return nil, err
	}
	out := mat.NewDense(rows, l.nInput, nil)
	for i := 0; i < rows; i++ {
		for j := 0; j < l.nInput; j++ {
			out.Set(i, j, x.At(i, j))
		}
	}
	return l.applyEnsemble(out)
}

// FitTransform runs Fit then Transform.
func (l *IdentityLibrary) FitTransform(x mat.Matrix) (*mat.Dense, error) {
	if err := l.Fit(x); err != nil {
		return nil, err
	}
	return l.Transform(x)
}

// FeatureNames returns the variable tokens themselves.
func (l *IdentityLibrary) FeatureNames(inputFeatures []string) ([]string, error) {
	return l.featureNames(inputFeatures)
}
