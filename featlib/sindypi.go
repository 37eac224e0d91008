package featlib

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/sindykit/deriv"
	"github.com/katalvlaran/sindykit/grid"
	"github.com/katalvlaran/sindykit/tensor"
)

// SINDyPILibrary builds the implicit-ODE candidate set: library
// functions of the state, library functions of the state derivative,
// and their pairwise products, so an implicit model
// g(x, ẋ) = 0 can be regressed without isolating ẋ. The derivative is
// computed internally by finite differences over the temporal grid.
//
// Feature order (stable): bias; f(x) terms (function outer,
// combination inner); g(ẋ) terms likewise; f×g products (f outer,
// g inner). Derivative-side names carry the "_dot" suffix.
type SINDyPILibrary struct {
	state

	xFns        []Function
	xdotFns     []Function
	temporal    *grid.Temporal
	includeBias bool
	modelSubset []int

	xTerms    []functionTerm
	xdotTerms []functionTerm
}

// NewSINDyPILibrary constructs the library from state functions,
// derivative functions and the sample times. WithFunctionNames, when
// given, must cover both function sequences in order: state names
// first, derivative names after (ErrMismatchedNames on any other
// length). At least one function is required on each side
// (ErrNoFunctions). A model subset from WithModelSubset must be free
// of negatives and duplicates (ErrBadModelSubset); range checking
// waits for Fit.
func NewSINDyPILibrary(xFns, xdotFns []Function, t []float64, opts ...Option) (*SINDyPILibrary, error) {
	o := gatherOptions(opts)

	var xNames, dotNames []func(args ...string) string
	if o.functionNames != nil {
		if len(o.functionNames) != len(xFns)+len(xdotFns) {
			return nil, ErrMismatchedNames
		}
		xNames = o.functionNames[:len(xFns)]
		dotNames = o.functionNames[len(xFns):]
	}
	normX, err := validateFunctions(xFns, xNames)
	if err != nil {
		return nil, err
	}
	normDot, err := validateFunctions(xdotFns, dotNames)
	if err != nil {
		return nil, err
	}

	temporal, err := grid.NewTemporal(t)
	if err != nil {
		return nil, err
	}
	if err := checkModelSubset(o.modelSubset); err != nil {
		return nil, err
	}

	st, err := initState(o)
	if err != nil {
		return nil, err
	}
	return &SINDyPILibrary{
		state:       st,
		xFns:        normX,
		xdotFns:     normDot,
		temporal:    temporal,
		includeBias: o.bias(true),
		modelSubset: append([]int(nil), o.modelSubset...),
	}, nil
}

// checkModelSubset rejects negative or duplicate entries.
func checkModelSubset(subset []int) error {
	seen := map[int]struct{}{}
	for _, i := range subset {
		if i < 0 {
			return ErrBadModelSubset
		}
		if _, dup := seen[i]; dup {
			return ErrBadModelSubset
		}
		seen[i] = struct{}{}
	}
	return nil
}

// Fit enumerates both term sets and their products. The sample row
// count must equal the temporal grid length (ErrShapeMismatch); a
// configured model subset must index fitted features
// (ErrBadModelSubset).
func (l *SINDyPILibrary) Fit(x mat.Matrix) error {
	rows, cols, err := checkInput(x)
	if err != nil {
		return err
	}
	if rows != l.temporal.Len() {
		return ErrShapeMismatch
	}
	xTerms := enumerateTerms(l.xFns, cols)
	xdotTerms := enumerateTerms(l.xdotFns, cols)

	names := make([]nameFn, 0)
	if l.includeBias {
		names = append(names, constName("1"))
	}
	names = append(names, termNames(xTerms)...)
	for _, g := range xdotTerms {
		g := g
		names = append(names, func(vars []string) string {
			return g.name(dotVars(vars))
		})
	}
	for _, f := range xTerms {
		for _, g := range xdotTerms {
			f, g := f, g
			names = append(names, func(vars []string) string {
				return f.name(vars) + " " + g.name(dotVars(vars))
			})
		}
	}

	for _, i := range l.modelSubset {
		if i >= len(names) {
			return ErrBadModelSubset
		}
	}

	l.xTerms = xTerms
	l.xdotTerms = xdotTerms
	l.markFitted(cols, names)
	return nil
}

// dotVars appends the derivative suffix to every variable token.
func dotVars(vars []string) []string {
	out := make([]string, len(vars))
	for i, v := range vars {
		out[i] = v + "_dot"
	}
	return out
}

// Transform differentiates each state column over the sample times and
// evaluates the fitted terms row by row.
func (l *SINDyPILibrary) Transform(x mat.Matrix) (*mat.Dense, error) {
	rows, err := l.checkTransformInput(x)
	if err != nil {
		return nil, err
	}
	if rows != l.temporal.Len() {
		return nil, ErrShapeMismatch
	}

	ts := l.temporal.Points()
	xdot := make([][]float64, l.nInput)
	col := make([]float64, rows)
	for v := 0; v < l.nInput; v++ {
		for i := 0; i < rows; i++ {
			col[i] = x.At(i, v)
		}
		u, err := tensor.FromSlice(append([]float64(nil), col...), rows)
		if err != nil {
			return nil, err
		}
		du, err := deriv.Partial(u, 0, ts, 1, false)
		if err != nil {
			return nil, err
		}
		xdot[v] = du.Data()
	}

	out := mat.NewDense(rows, l.nOutput, nil)
	row := make([]float64, l.nInput)
	dotRow := make([]float64, l.nInput)
	for i := 0; i < rows; i++ {
		rowBuffer(x, i, l.nInput, row)
		for v := 0; v < l.nInput; v++ {
			dotRow[v] = xdot[v][i]
		}
		j := 0
		if l.includeBias {
			out.Set(i, j, 1)
			j++
		}
		for _, f := range l.xTerms {
			out.Set(i, j, f.eval(row))
			j++
		}
		for _, g := range l.xdotTerms {
			out.Set(i, j, g.eval(dotRow))
			j++
		}
		for _, f := range l.xTerms {
			fv := f.eval(row)
			for _, g := range l.xdotTerms {
				out.Set(i, j, fv*g.eval(dotRow))
				j++
			}
		}
	}
	return l.applyEnsemble(out)
}

// FitTransform runs Fit then Transform.
func (l *SINDyPILibrary) FitTransform(x mat.Matrix) (*mat.Dense, error) {
	if err := l.Fit(x); err != nil {
		return nil, err
	}
	return l.Transform(x)
}

// FeatureNames renders names like "1", "x0", "x0_dot", "x0 x0_dot".
func (l *SINDyPILibrary) FeatureNames(inputFeatures []string) ([]string, error) {
	return l.featureNames(inputFeatures)
}

// ModelSubset returns a copy of the configured implicit-model row
// subset for the optimizer boundary.
func (l *SINDyPILibrary) ModelSubset() []int {
	return append([]int(nil), l.modelSubset...)
}
