package deriv

// MultiIndex gives the derivative order to apply along each axis.
type MultiIndex []int

// Total returns the summed derivative order.
func (m MultiIndex) Total() int {
	t := 0
	for _, d := range m {
		t += d
	}
	return t
}

// Clone returns a copy of the multi-index.
func (m MultiIndex) Clone() MultiIndex {
	return append(MultiIndex(nil), m...)
}

// Indices enumerates every multi-index over the given number of axes
// with total order in [1, maxOrder]. Ordering is graded: total order
// ascending, and within one grade the leading axis order descends (so
// for two axes and maxOrder 2: (1,0), (0,1), (2,0), (1,1), (0,2)).
//
// maxOrder 0 yields an empty set; a negative maxOrder is ErrBadOrder,
// axes outside 1..3 is ErrBadAxisCount.
func Indices(axes, maxOrder int) ([]MultiIndex, error) {
	if axes < 1 || axes > 3 {
		return nil, ErrBadAxisCount
	}
	if maxOrder < 0 {
		return nil, ErrBadOrder
	}
	var out []MultiIndex
	cur := make(MultiIndex, axes)
	for total := 1; total <= maxOrder; total++ {
		compose(cur, 0, total, &out)
	}
	return out, nil
}

// compose fills cur[from:] with every composition of rem, leading axis
// descending, appending complete tuples to out.
func compose(cur MultiIndex, from, rem int, out *[]MultiIndex) {
	if from == len(cur)-1 {
		cur[from] = rem
		*out = append(*out, cur.Clone())
		return
	}
	for d := rem; d >= 0; d-- {
		cur[from] = d
		compose(cur, from+1, rem-d, out)
	}
}
