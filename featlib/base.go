package featlib

import (
	"math/rand"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// state is the fitted-state record embedded by every concrete library:
// input dimensionality, output feature count, naming callbacks, and the
// ensembling configuration. It is created by Fit and read-only
// afterwards; ensembling toggles live beside it because they never
// affect the fitted feature set, only the returned matrix.
type state struct {
	opts   Options
	rngSrc *rand.Rand

	fitted  bool
	nInput  int
	nOutput int
	names   []nameFn
}

// initState validates the option subset every library shares and
// prepares the random source.
func initState(o Options) (state, error) {
	if err := checkEnsembleIndices(o.ensembleIndices); err != nil {
		return state{}, err
	}
	return state{opts: o, rngSrc: o.rng()}, nil
}

// checkEnsembleIndices rejects negative or duplicate indices;
// out-of-range indices are caught at transform, when the fitted count
// is known.
func checkEnsembleIndices(idx []int) error {
	seen := map[int]struct{}{}
	for _, i := range idx {
		if i < 0 {
			return ErrBadEnsembleIndex
		}
		if _, dup := seen[i]; dup {
			return ErrBadEnsembleIndex
		}
		seen[i] = struct{}{}
	}
	return nil
}

// markFitted installs the fitted record.
func (s *state) markFitted(nInput int, names []nameFn) {
	s.fitted = true
	s.nInput = nInput
	s.nOutput = len(names)
	s.names = names
}

// checkFitted gates the post-fit operations.
func (s *state) checkFitted() error {
	if !s.fitted {
		return ErrNotFitted
	}
	return nil
}

// checkInput validates raw sample dimensions.
func checkInput(x mat.Matrix) (rows, cols int, err error) {
	rows, cols = x.Dims()
	if rows == 0 || cols == 0 {
		return 0, 0, ErrEmptyInput
	}
	return rows, cols, nil
}

// checkTransformInput additionally matches the fitted variable count.
func (s *state) checkTransformInput(x mat.Matrix) (rows int, err error) {
	if err := s.checkFitted(); err != nil {
		return 0, err
	}
	rows, cols, err := checkInput(x)
	if err != nil {
		return 0, err
	}
	if cols != s.nInput {
		return 0, ErrShapeMismatch
	}
	return rows, nil
}

// NumOutputFeatures reports the fitted feature count (0 before Fit).
func (s *state) NumOutputFeatures() int { return s.nOutput }

// Size is a read-only alias of NumOutputFeatures.
func (s *state) Size() int { return s.nOutput }

// NumInputFeatures reports the fitted variable count (0 before Fit).
func (s *state) NumInputFeatures() int { return s.nInput }

// LibraryEnsemble reports whether the single-column random drop is
// enabled.
func (s *state) LibraryEnsemble() bool { return s.opts.libraryEnsemble }

// SetLibraryEnsemble toggles the single-column random drop.
func (s *state) SetLibraryEnsemble(on bool) { s.opts.libraryEnsemble = on }

// EnsembleIndices returns a copy of the configured drop indices.
func (s *state) EnsembleIndices() []int {
	return append([]int(nil), s.opts.ensembleIndices...)
}

// SetEnsembleIndices replaces the drop indices, with the same
// validation as construction.
func (s *state) SetEnsembleIndices(idx []int) error {
	if err := checkEnsembleIndices(idx); err != nil {
		return err
	}
	s.opts.ensembleIndices = append([]int(nil), idx...)
	return nil
}

// featureNames renders the fitted names, substituting caller-supplied
// variable tokens for the default x0, x1, … scheme.
func (s *state) featureNames(inputFeatures []string) ([]string, error) {
	if err := s.checkFitted(); err != nil {
		return nil, err
	}
	vars := inputFeatures
	if vars == nil {
		vars = defaultVars(s.nInput)
	} else if len(vars) != s.nInput {
		return nil, ErrBadNames
	}
	out := make([]string, len(s.names))
	for i, fn := range s.names {
		out[i] = fn(vars)
	}
	return out, nil
}

// applyEnsemble subsamples the transformed columns. Explicit indices
// win over the random single-column drop; with neither enabled the
// matrix passes through. The fitted NumOutputFeatures is untouched.
func (s *state) applyEnsemble(xp *mat.Dense) (*mat.Dense, error) {
	rows, cols := xp.Dims()
	drop := s.opts.ensembleIndices
	if len(drop) == 0 {
		if !s.opts.libraryEnsemble {
			return xp, nil
		}
		drop = []int{s.rngSrc.Intn(cols)}
	}
	if len(drop) >= cols {
		return nil, ErrBadEnsembleIndex
	}
	for _, i := range drop {
		if i >= cols {
			return nil, ErrBadEnsembleIndex
		}
	}

	dropSet := make(map[int]struct{}, len(drop))
	for _, i := range drop {
		dropSet[i] = struct{}{}
	}
	keep := make([]int, 0, cols-len(drop))
	for i := 0; i < cols; i++ {
		if _, gone := dropSet[i]; !gone {
			keep = append(keep, i)
		}
	}
	sort.Ints(keep)
	out := mat.NewDense(rows, len(keep), nil)
	for j, src := range keep {
		for i := 0; i < rows; i++ {
			out.Set(i, j, xp.At(i, src))
		}
	}
	return out, nil
}

// BaseLibrary is the abstract transformer: it documents the contract
// and fails loudly when used directly. Concrete libraries do not embed
// it; they embed the unexported fitted state instead.
type BaseLibrary struct{}

// Fit always returns ErrNotImplemented.
func (BaseLibrary) Fit(mat.Matrix) error { return ErrNotImplemented }

// Transform always returns ErrNotImplemented.
func (BaseLibrary) Transform(mat.Matrix) (*mat.Dense, error) {
	return nil, ErrNotImplemented
}

// FitTransform always returns ErrNotImplemented.
func (BaseLibrary) FitTransform(mat.Matrix) (*mat.Dense, error) {
	return nil, ErrNotImplemented
}

// FeatureNames always returns ErrNotImplemented.
func (BaseLibrary) FeatureNames([]string) ([]string, error) {
	return nil, ErrNotImplemented
}

// NumOutputFeatures is always 0 on the base library.
func (BaseLibrary) NumOutputFeatures() int { return 0 }

// Size is always 0 on the base library.
func (BaseLibrary) Size() int { return 0 }
