package featlib

import (
	"gonum.org/v1/gonum/stat/combin"
)

// functionTerm couples one library function with the variable indices
// it consumes. The set of terms for a library is fixed at Fit and
// drives both evaluation and naming.
type functionTerm struct {
	fn   Function
	vars []int
}

// enumerateTerms expands (function × variable combination) pairs in the
// documented order: function outer loop; combinations of that
// function's arity over the input variables (without replacement,
// lexicographic) inner loop. Functions whose arity exceeds the variable
// count contribute nothing.
func enumerateTerms(fns []Function, cols int) []functionTerm {
	var terms []functionTerm
	for _, f := range fns {
		if f.Arity > cols {
			continue
		}
		for _, c := range combin.Combinations(cols, f.Arity) {
			terms = append(terms, functionTerm{fn: f, vars: c})
		}
	}
	return terms
}

// eval applies the term to one sample row.
func (t functionTerm) eval(row []float64) float64 {
	args := make([]float64, len(t.vars))
	for i, v := range t.vars {
		args[i] = row[v]
	}
	return t.fn.Eval(args...)
}

// name renders the term over the given variable tokens.
func (t functionTerm) name(vars []string) string {
	args := make([]string, len(t.vars))
	for i, v := range t.vars {
		args[i] = vars[v]
	}
	return t.fn.Name(args...)
}

// termNames converts terms into naming callbacks.
func termNames(terms []functionTerm) []nameFn {
	out := make([]nameFn, len(terms))
	for i, t := range terms {
		t := t
		out[i] = func(vars []string) string { return t.name(vars) }
	}
	return out
}

// rowBuffer extracts row i of a matrix into buf.
func rowBuffer(x interface{ At(i, j int) float64 }, i, cols int, buf []float64) []float64 {
	for j := 0; j < cols; j++ {
		buf[j] = x.At(i, j)
	}
	return buf
}
