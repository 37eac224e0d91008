package featlib

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/sindykit/deriv"
	"github.com/katalvlaran/sindykit/grid"
	"github.com/katalvlaran/sindykit/tensor"
)

// Transform expands the samples into the fitted candidate terms: one
// output row per input row in strong mode, one per sub-domain in weak
// mode.
func (l *PDELibrary) Transform(x mat.Matrix) (*mat.Dense, error) {
	rows, err := l.checkTransformInput(x)
	if err != nil {
		return nil, err
	}
	nt, err := l.factorRows(rows)
	if err != nil {
		return nil, err
	}

	var out *mat.Dense
	if l.weak {
		out, err = l.transformWeak(x, nt)
	} else {
		out, err = l.transformStrong(x, rows, nt)
	}
	if err != nil {
		return nil, err
	}
	return l.applyEnsemble(out)
}

// fieldTensors splits the sample matrix into one tensor per variable,
// shaped (spatial extents..., nt). Column data is shared with the
// returned tensors only through the freshly copied slices.
func (l *PDELibrary) fieldTensors(x mat.Matrix, nt int) ([]*tensor.Dense, error) {
	shape := append(l.spatial.Shape(), nt)
	rows, _ := x.Dims()
	fields := make([]*tensor.Dense, l.nInput)
	for v := 0; v < l.nInput; v++ {
		col := make([]float64, rows)
		for i := 0; i < rows; i++ {
			col[i] = x.At(i, v)
		}
		t, err := tensor.FromSlice(col, shape...)
		if err != nil {
			return nil, err
		}
		fields[v] = t
	}
	return fields, nil
}

// spatialCoords collects the grid's coordinate vectors, one per
// spatial axis.
func (l *PDELibrary) spatialCoords() ([][]float64, error) {
	dims := l.spatial.Dims()
	coords := make([][]float64, dims)
	for i := 0; i < dims; i++ {
		ax, err := l.spatial.Axis(i)
		if err != nil {
			return nil, err
		}
		coords[i] = ax
	}
	return coords, nil
}

// transformStrong differentiates the fields with finite differences
// and assembles the pointwise feature matrix.
func (l *PDELibrary) transformStrong(x mat.Matrix, rows, nt int) (*mat.Dense, error) {
	fields, err := l.fieldTensors(x, nt)
	if err != nil {
		return nil, err
	}
	coords, err := l.spatialCoords()
	if err != nil {
		return nil, err
	}
	dims := l.spatial.Dims()
	axes := make([]int, dims)
	for i := range axes {
		axes[i] = i
	}

	// The tensors flatten back in the same row-major order the rows
	// arrived in, so derivative columns read straight off Data.
	derivs := make([][][]float64, len(l.indices))
	for mi, m := range l.indices {
		derivs[mi] = make([][]float64, l.nInput)
		for v, u := range fields {
			du, err := deriv.Mixed(u, axes, coords, m, l.uniform)
			if err != nil {
				return nil, err
			}
			derivs[mi][v] = du.Data()
		}
	}

	termVals := make([][]float64, len(l.terms))
	buf := make([]float64, l.nInput)
	for ti, t := range l.terms {
		vals := make([]float64, rows)
		for i := 0; i < rows; i++ {
			vals[i] = t.eval(rowBuffer(x, i, l.nInput, buf))
		}
		termVals[ti] = vals
	}

	out := mat.NewDense(rows, l.nOutput, nil)
	for i := 0; i < rows; i++ {
		j := 0
		if l.includeBias {
			out.Set(i, j, 1)
			j++
		}
		for ti := range l.terms {
			out.Set(i, j, termVals[ti][i])
			j++
		}
		for mi := range l.indices {
			for v := 0; v < l.nInput; v++ {
				out.Set(i, j, derivs[mi][v][i])
				j++
			}
		}
		for mi := range l.indices {
			for v := 0; v < l.nInput; v++ {
				for ti := range l.terms {
					out.Set(i, j, termVals[ti][i]*derivs[mi][v][i])
					j++
				}
			}
		}
	}
	return out, nil
}

// transformWeak integrates the candidate terms against the cached test
// functions: row k holds sub-domain k's integrals. Plain derivative
// features use integration by parts, so the field itself is never
// differentiated; product features differentiate the interpolated
// field on the sub-domain's own uniform lattice.
func (l *PDELibrary) transformWeak(x mat.Matrix, nt int) (*mat.Dense, error) {
	fields, err := l.fieldTensors(x, nt)
	if err != nil {
		return nil, err
	}
	coords, err := l.spatialCoords()
	if err != nil {
		return nil, err
	}
	globalAxes := append(coords, l.temporal.Points())
	dims := l.spatial.Dims()
	spatialAxes := make([]int, dims)
	for i := range spatialAxes {
		spatialAxes[i] = i
	}

	out := mat.NewDense(l.subs.K(), l.nOutput, nil)
	for k := 0; k < l.subs.K(); k++ {
		dom, err := l.subs.Domain(k)
		if err != nil {
			return nil, err
		}
		local := dom.Axes()
		queries := cartesianQueries(local)
		shape := make([]int, len(local))
		for i, ax := range local {
			shape[i] = len(ax)
		}

		// Resample every field onto the sub-domain lattice.
		locFields := make([]*tensor.Dense, len(fields))
		for v, u := range fields {
			vals, err := grid.InterpN(globalAxes, u, queries)
			if err != nil {
				return nil, err
			}
			locFields[v], err = tensor.FromSlice(vals, shape...)
			if err != nil {
				return nil, err
			}
		}

		termTensors := make([]*tensor.Dense, len(l.terms))
		for ti, t := range l.terms {
			termTensors[ti] = evalTermTensor(t, locFields, shape)
		}

		j := 0
		if l.includeBias {
			val, err := weighted(l.wcache[k][0], nil, local)
			if err != nil {
				return nil, err
			}
			out.Set(k, j, val)
			j++
		}
		for ti := range l.terms {
			val, err := weighted(l.wcache[k][0], termTensors[ti], local)
			if err != nil {
				return nil, err
			}
			out.Set(k, j, val)
			j++
		}
		for mi, m := range l.indices {
			sign := 1.0
			if m.Total()%2 == 1 {
				sign = -1
			}
			for v := range locFields {
				val, err := weighted(l.wcache[k][1+mi], locFields[v], local)
				if err != nil {
					return nil, err
				}
				out.Set(k, j, sign*val)
				j++
			}
		}
		localCoords := local[:dims]
		for _, m := range l.indices {
			for v := range locFields {
				du, err := deriv.Mixed(locFields[v], spatialAxes, localCoords, m, true)
				if err != nil {
					return nil, err
				}
				for ti := range l.terms {
					prod, err := termTensors[ti].MulElem(du)
					if err != nil {
						return nil, err
					}
					val, err := weighted(l.wcache[k][0], prod, local)
					if err != nil {
						return nil, err
					}
					out.Set(k, j, val)
					j++
				}
			}
		}
	}
	return out, nil
}

// weighted integrates w·f over the sub-domain lattice; a nil f
// integrates the weight alone.
func weighted(w, f *tensor.Dense, axes [][]float64) (float64, error) {
	integrand := w
	if f != nil {
		var err error
		integrand, err = w.MulElem(f)
		if err != nil {
			return 0, err
		}
	}
	return integrateND(integrand, axes)
}

// integrateND reduces every axis with trapezoidal quadrature, last
// axis first so the remaining axes keep their coordinate vectors.
func integrateND(t *tensor.Dense, axes [][]float64) (float64, error) {
	cur := t
	for i := len(axes) - 1; i >= 0; i-- {
		next, err := cur.ReduceTrapz(cur.Rank()-1, axes[i])
		if err != nil {
			return 0, err
		}
		cur = next
	}
	return cur.Data()[0], nil
}

// evalTermTensor applies one function term elementwise across the
// variable tensors (all sharing shape).
func evalTermTensor(t functionTerm, fields []*tensor.Dense, shape []int) *tensor.Dense {
	n := fields[0].Len()
	data := make([]float64, n)
	args := make([]float64, len(t.vars))
	for i := 0; i < n; i++ {
		for a, v := range t.vars {
			args[a] = fields[v].Data()[i]
		}
		data[i] = t.fn.Eval(args...)
	}
	out, _ := tensor.FromSlice(data, shape...)
	return out
}

// cartesianQueries lists every lattice point of the axes in row-major
// order, matching the flattening order of the sub-domain tensors.
func cartesianQueries(axes [][]float64) [][]float64 {
	total := 1
	for _, ax := range axes {
		total *= len(ax)
	}
	out := make([][]float64, total)
	idx := make([]int, len(axes))
	for p := 0; p < total; p++ {
		q := make([]float64, len(axes))
		for i, j := range idx {
			q[i] = axes[i][j]
		}
		out[p] = q
		for i := len(axes) - 1; i >= 0; i-- {
			idx[i]++
			if idx[i] < len(axes[i]) {
				break
			}
			idx[i] = 0
		}
	}
	return out
}
