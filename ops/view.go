// SPDX-License-Identifier: MIT

package ops

import "github.com/katalvlaran/sparsegen/sparse"

// view is a read-only snapshot of a CSR's three arrays, taken once per
// operand so kernels can index rows without per-row copies.
type view struct {
	shape   sparse.Shape
	values  []float64
	indices []int
	indptr  []int
}

func snapshot(m *sparse.CSR) view {
	return view{shape: m.Shape(), values: m.Values(), indices: m.Indices(), indptr: m.Indptr()}
}

// row returns the half-open slot window of row r.
func (v view) row(r int) (lo, hi int) {
	return v.indptr[r], v.indptr[r+1]
}
