package featlib

import (
	"gonum.org/v1/gonum/mat"
)

// CustomLibrary evaluates user-supplied functions on every combination
// of input variables matching each function's arity. Names come from
// the paired naming callbacks (or generated "fK(...)" names).
type CustomLibrary struct {
	state

	fns         []Function
	includeBias bool

	terms []functionTerm
}

// NewCustomLibrary constructs a custom library from the function
// sequence. WithFunctionNames must match the function count
// (ErrMismatchedNames); at least one function is required
// (ErrNoFunctions).
func NewCustomLibrary(fns []Function, opts ...Option) (*CustomLibrary, error) {
	o := gatherOptions(opts)
	normalized, err := validateFunctions(fns, o.functionNames)
	if err != nil {
		return nil, err
	}
	st, err := initState(o)
	if err != nil {
		return nil, err
	}
	return &CustomLibrary{
		state:       st,
		fns:         normalized,
		includeBias: o.bias(false),
	}, nil
}

// Fit enumerates the (function × combination) terms for the input
// width.
func (l *CustomLibrary) Fit(x mat.Matrix) error {
	_, cols, err := checkInput(x)
	if err != nil {
		return err
	}
	terms := enumerateTerms(l.fns, cols)

	names := make([]nameFn, 0, len(terms)+1)
	if l.includeBias {
		names = append(names, constName("1"))
	}
	names = append(names, termNames(terms)...)

	l.terms = terms
	l.markFitted(cols, names)
	return nil
}

// Transform evaluates every term per sample row.
func (l *CustomLibrary) Transform(x mat.Matrix) (*mat.Dense, error) {
	rows, err := l.checkTransformInput(x)
	if err != nil {
		return nil, err
	}
	out := mat.NewDense(rows, l.nOutput, nil)
	buf := make([]float64, l.nInput)
	for i := 0; i < rows; i++ {
		row := rowBuffer(x, i, l.nInput, buf)
		j := 0
		if l.includeBias {
			out.Set(i, j, 1)
			j++
		}
		for _, t := range l.terms {
			out.Set(i, j, t.eval(row))
			j++
		}
	}
	return l.applyEnsemble(out)
}

// FitTransform runs Fit then Transform.
func (l *CustomLibrary) FitTransform(x mat.Matrix) (*mat.Dense, error) {
	if err := l.Fit(x); err != nil {
		return nil, err
	}
	return l.Transform(x)
}

// FeatureNames renders the term names over the variable tokens.
func (l *CustomLibrary) FeatureNames(inputFeatures []string) ([]string, error) {
	return l.featureNames(inputFeatures)
}
