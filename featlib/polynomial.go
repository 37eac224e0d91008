package featlib

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/combin"
)

// PolynomialLibrary expands the input into all monomials up to a
// degree: bias (optional), the variables, and their products/powers.
// With interactions disabled only pure powers x_j^d survive; with
// interaction-only, only products of distinct variables.
type PolynomialLibrary struct {
	state

	degree          int
	includeBias     bool
	includeInteract bool
	interactionOnly bool

	// fitted monomials, one index multiset per feature (bias excluded)
	monomials [][]int
}

// NewPolynomialLibrary constructs a polynomial library.
// Construction errors: ErrBadDegree (negative degree; the degree is an
// int, so fractional degrees cannot even be expressed) and
// ErrNoFeatureSource (interaction-only with interactions disabled).
func NewPolynomialLibrary(opts ...Option) (*PolynomialLibrary, error) {
	o := gatherOptions(opts)
	if o.degree < 0 {
		return nil, ErrBadDegree
	}
	if o.interactionOnly && !o.includeInteraction {
		return nil, ErrNoFeatureSource
	}
	st, err := initState(o)
	if err != nil {
		return nil, err
	}
	return &PolynomialLibrary{
		state:           st,
		degree:          o.degree,
		includeBias:     o.bias(true),
		includeInteract: o.includeInteraction,
		interactionOnly: o.interactionOnly,
	}, nil
}

// Fit enumerates the monomial index multisets for the input width.
// Order is fixed: degree ascending, lexicographic within one degree.
func (l *PolynomialLibrary) Fit(x mat.Matrix) error {
	_, cols, err := checkInput(x)
	if err != nil {
		return err
	}

	var monos [][]int
	for d := 1; d <= l.degree; d++ {
		switch {
		case l.interactionOnly:
			if d <= cols {
				monos = append(monos, combin.Combinations(cols, d)...)
			}
		case !l.includeInteract:
			for j := 0; j < cols; j++ {
				m := make([]int, d)
				for i := range m {
					m[i] = j
				}
				monos = append(monos, m)
			}
		default:
			monos = append(monos, combosWithReplacement(cols, d)...)
		}
	}

	names := make([]nameFn, 0, len(monos)+1)
	if l.includeBias {
		names = append(names, constName("1"))
	}
	for _, m := range monos {
		m := m
		names = append(names, func(vars []string) string {
			return monomialName(m, vars)
		})
	}

	l.monomials = monos
	l.markFitted(cols, names)
	return nil
}

// Transform evaluates every monomial per sample row.
func (l *PolynomialLibrary) Transform(x mat.Matrix) (*mat.Dense, error) {
	rows, err := l.checkTransformInput(x)
	if err != nil {
		return nil, err
	}
	out := mat.NewDense(rows, l.nOutput, nil)
	for i := 0; i < rows; i++ {
		j := 0
		if l.includeBias {
			out.Set(i, j, 1)
			j++
		}
		for _, m := range l.monomials {
			v := 1.0
			for _, idx := range m {
				v *= x.At(i, idx)
			}
			out.Set(i, j, v)
			j++
		}
	}
	return l.applyEnsemble(out)
}

// FitTransform runs Fit then Transform.
func (l *PolynomialLibrary) FitTransform(x mat.Matrix) (*mat.Dense, error) {
	if err := l.Fit(x); err != nil {
		return nil, err
	}
	return l.Transform(x)
}

// FeatureNames returns monomial names like "1", "x0", "x0 x1", "x2^2".
func (l *PolynomialLibrary) FeatureNames(inputFeatures []string) ([]string, error) {
	return l.featureNames(inputFeatures)
}

// monomialName renders an index multiset with exponent notation.
func monomialName(m []int, vars []string) string {
	var parts []string
	for i := 0; i < len(m); {
		j := i
		for j < len(m) && m[j] == m[i] {
			j++
		}
		if exp := j - i; exp == 1 {
			parts = append(parts, vars[m[i]])
		} else {
			parts = append(parts, fmt.Sprintf("%s^%d", vars[m[i]], exp))
		}
		i = j
	}
	return strings.Join(parts, " ")
}

// combosWithReplacement lists all non-decreasing index tuples of length
// k over n variables, lexicographically. (combin covers the
// without-replacement case; the with-replacement variant is this short
// recursion.)
func combosWithReplacement(n, k int) [][]int {
	var out [][]int
	cur := make([]int, k)
	var rec func(pos, min int)
	rec = func(pos, min int) {
		if pos == k {
			out = append(out, append([]int(nil), cur...))
			return
		}
		for v := min; v < n; v++ {
			cur[pos] = v
			rec(pos+1, v)
		}
	}
	rec(0, 0)
	return out
}
