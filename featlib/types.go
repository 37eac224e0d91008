package featlib

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Library is the transformer contract shared by every feature library.
// A library is constructed, fitted once on sample data, and then
// transforms further samples into its feature matrix. Fitted state is
// immutable; re-fitting replaces it wholesale.
type Library interface {
	// Fit validates the sample shape and fixes the feature set.
	Fit(x mat.Matrix) error

	// Transform evaluates every feature on x, returning a matrix of
	// shape (rows-or-subdomains × NumOutputFeatures), possibly with
	// columns dropped by ensembling. ErrNotFitted before Fit.
	Transform(x mat.Matrix) (*mat.Dense, error)

	// FitTransform runs Fit then Transform on the same samples.
	FitTransform(x mat.Matrix) (*mat.Dense, error)

	// FeatureNames returns one name per output column. inputFeatures
	// replaces the default x0, x1, … variable tokens; nil keeps the
	// defaults. ErrNotFitted before Fit.
	FeatureNames(inputFeatures []string) ([]string, error)

	// NumOutputFeatures reports the fitted output column count
	// (0 before Fit). Ensembling never changes it.
	NumOutputFeatures() int

	// Size is a read-only alias of NumOutputFeatures.
	Size() int
}

// Function is one user-supplied library element: a pure evaluator over
// Arity scalar arguments paired with a naming callback over the operand
// names. Functions are plain records, not an inheritance hierarchy.
type Function struct {
	// Arity is the number of scalar arguments Eval consumes (≥ 1).
	Arity int

	// Eval maps operand values to the feature value. It must be pure:
	// transform results are cached per fitted feature set.
	Eval func(args ...float64) float64

	// Name maps operand names to the feature name. Nil means a
	// generated "fK(x0,…)" name.
	Name func(args ...string) string
}

// Unary wraps a one-argument function.
func Unary(eval func(float64) float64, name func(string) string) Function {
	f := Function{
		Arity: 1,
		Eval:  func(args ...float64) float64 { return eval(args[0]) },
	}
	if name != nil {
		f.Name = func(args ...string) string { return name(args[0]) }
	}
	return f
}

// Binary wraps a two-argument function.
func Binary(eval func(float64, float64) float64, name func(string, string) string) Function {
	f := Function{
		Arity: 2,
		Eval:  func(args ...float64) float64 { return eval(args[0], args[1]) },
	}
	if name != nil {
		f.Name = func(args ...string) string { return name(args[0], args[1]) }
	}
	return f
}

// validateFunctions checks a function sequence and resolves naming:
// an optional parallel names sequence must match in length
// (ErrMismatchedNames); functions left nameless get generated names.
// The input slice is not mutated; a normalized copy is returned.
func validateFunctions(fns []Function, names []func(args ...string) string) ([]Function, error) {
	if len(fns) == 0 {
		return nil, ErrNoFunctions
	}
	if names != nil && len(names) != len(fns) {
		return nil, ErrMismatchedNames
	}
	out := make([]Function, len(fns))
	for i, f := range fns {
		if f.Eval == nil || f.Arity < 1 {
			return nil, ErrBadFunction
		}
		out[i] = f
		if names != nil {
			out[i].Name = names[i]
		}
		if out[i].Name == nil {
			out[i].Name = autoName(i)
		}
	}
	return out, nil
}

// autoName generates the default "fK(a,b)" naming callback.
func autoName(k int) func(args ...string) string {
	return func(args ...string) string {
		return fmt.Sprintf("f%d(%s)", k, strings.Join(args, ","))
	}
}

// nameFn renders one output feature name from the variable tokens.
type nameFn func(vars []string) string

// defaultVars builds the x0, x1, … token list.
func defaultVars(n int) []string {
	vs := make([]string, n)
	for i := range vs {
		vs[i] = fmt.Sprintf("x%d", i)
	}
	return vs
}

// constName returns a nameFn ignoring the variable tokens.
func constName(s string) nameFn {
	return func([]string) string { return s }
}
