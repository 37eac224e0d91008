package featlib

import (
	"gonum.org/v1/gonum/mat"
)

// ConcatLibrary combines two or more libraries side by side: Fit
// delegates to every child on the same input, Transform horizontally
// concatenates their matrices, and FeatureNames concatenates their
// names. Children keep their own fitted state; the composite only
// aggregates read-only views of it.
type ConcatLibrary struct {
	state

	children []Library
}

// Concat builds the composite. At least two libraries are required
// (ErrNoLibraries).
func Concat(libs ...Library) (*ConcatLibrary, error) {
	if len(libs) < 2 {
		return nil, ErrNoLibraries
	}
	st, err := initState(gatherOptions(nil))
	if err != nil {
		return nil, err
	}
	return &ConcatLibrary{
		state:    st,
		children: append([]Library(nil), libs...),
	}, nil
}

// Fit fits every child on the same samples, failing on the first child
// error. The composite feature count is the sum over children.
func (l *ConcatLibrary) Fit(x mat.Matrix) error {
	_, cols, err := checkInput(x)
	if err != nil {
		return err
	}
	total := 0
	for _, ch := range l.children {
		if err := ch.Fit(x); err != nil {
			return err
		}
		total += ch.NumOutputFeatures()
	}

	// Names delegate to the children at render time, so custom input
	// features flow through unchanged.
	names := make([]nameFn, 0, total)
	for _, ch := range l.children {
		ch := ch
		n := ch.NumOutputFeatures()
		for k := 0; k < n; k++ {
			k := k
			names = append(names, func(vars []string) string {
				childNames, err := ch.FeatureNames(vars)
				if err != nil || k >= len(childNames) {
					return ""
				}
				return childNames[k]
			})
		}
	}
	l.markFitted(cols, names)
	return nil
}

// Transform stacks the children's transformed matrices column-wise.
func (l *ConcatLibrary) Transform(x mat.Matrix) (*mat.Dense, error) {
	rows, err := l.checkTransformInput(x)
	if err != nil {
		return nil, err
	}
	out := mat.NewDense(rows, l.nOutput, nil)
	col := 0
	for _, ch := range l.children {
		part, err := ch.Transform(x)
		if err != nil {
			return nil, err
		}
		pr, pc := part.Dims()
		if pr != rows {
			return nil, ErrShapeMismatch
		}
		for j := 0; j < pc; j++ {
			for i := 0; i < rows; i++ {
				out.Set(i, col+j, part.At(i, j))
			}
		}
		col += pc
	}
	// Children with their own ensembling may return fewer columns than
	// fitted; trim the unused tail in that case.
	if col < l.nOutput {
		out = out.Slice(0, rows, 0, col).(*mat.Dense)
	}
	return l.applyEnsemble(out)
}

// FitTransform runs Fit then Transform.
func (l *ConcatLibrary) FitTransform(x mat.Matrix) (*mat.Dense, error) {
	if err := l.Fit(x); err != nil {
		return nil, err
	}
	return l.Transform(x)
}

// FeatureNames concatenates the children's names in child order.
func (l *ConcatLibrary) FeatureNames(inputFeatures []string) ([]string, error) {
	return l.featureNames(inputFeatures)
}
