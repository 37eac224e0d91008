package featlib

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// FourierLibrary expands each variable into sin(k·x) and cos(k·x) for
// frequencies k = 1..n. Feature order: frequency outer, variable next,
// sine before cosine.
type FourierLibrary struct {
	state

	nFrequencies int
	includeSin   bool
	includeCos   bool
}

// NewFourierLibrary constructs a Fourier library.
// Construction errors: ErrBadFrequencies (n < 1) and ErrNoFeatureSource
// (both sine and cosine disabled).
func NewFourierLibrary(opts ...Option) (*FourierLibrary, error) {
	o := gatherOptions(opts)
	if o.nFrequencies < 1 {
		return nil, ErrBadFrequencies
	}
	if !o.includeSin && !o.includeCos {
		return nil, ErrNoFeatureSource
	}
	st, err := initState(o)
	if err != nil {
		return nil, err
	}
	return &FourierLibrary{
		state:        st,
		nFrequencies: o.nFrequencies,
		includeSin:   o.includeSin,
		includeCos:   o.includeCos,
	}, nil
}

// Fit fixes the (frequency × variable × sin/cos) feature set.
func (l *FourierLibrary) Fit(x mat.Matrix) error {
	_, cols, err := checkInput(x)
	if err != nil {
		return err
	}
	var names []nameFn
	for k := 1; k <= l.nFrequencies; k++ {
		for j := 0; j < cols; j++ {
			k, j := k, j
			if l.includeSin {
				names = append(names, func(vars []string) string {
					return fmt.Sprintf("sin(%d %s)", k, vars[j])
				})
			}
			if l.includeCos {
				names = append(names, func(vars []string) string {
					return fmt.Sprintf("cos(%d %s)", k, vars[j])
				})
			}
		}
	}
	l.markFitted(cols, names)
	return nil
}

// Transform evaluates the trigonometric features per sample row.
func (l *FourierLibrary) Transform(x mat.Matrix) (*mat.Dense, error) {
	rows, err := l.checkTransformInput(x)
	if err != nil {
		return nil, err
	}
	out := mat.NewDense(rows, l.nOutput, nil)
	for i := 0; i < rows; i++ {
		c := 0
		for k := 1; k <= l.nFrequencies; k++ {
			for j := 0; j < l.nInput; j++ {
				v := float64(k) * x.At(i, j)
				if l.includeSin {
					out.Set(i, c, math.Sin(v))
					c++
				}
				if l.includeCos {
					out.Set(i, c, math.Cos(v))
					c++
				}
			}
		}
	}
	return l.applyEnsemble(out)
}

// FitTransform runs Fit then Transform.
func (l *FourierLibrary) FitTransform(x mat.Matrix) (*mat.Dense, error) {
	if err := l.Fit(x); err != nil {
		return nil, err
	}
	return l.Transform(x)
}

// FeatureNames returns names like "sin(1 x0)", "cos(2 x1)".
func (l *FourierLibrary) FeatureNames(inputFeatures []string) ([]string, error) {
	return l.featureNames(inputFeatures)
}
