// SPDX-License-Identifier: MIT
// Package: ops

package ops

import (
	"github.com/katalvlaran/sparsegen/sparse"
)

// Transpose returns Aᵀ, re-deriving indptr and indices with a counting pass.
//
// Implementation:
//   - Stage 1: count slots per column of A → row sizes of Aᵀ.
//   - Stage 2: prefix-sum the counts into Aᵀ's indptr.
//   - Stage 3: walk A row by row; slot (r, c, v) goes to Aᵀ row c at its cursor.
//
// Because source rows are visited in ascending order, every output row lists
// its columns ascending. Transpose(Transpose(A)) equals A whenever A is canonical.
//
// Errors: sparse.ErrNilMatrix.
// Complexity: O(rows + cols + nnz).
func Transpose(a *sparse.CSR) (*sparse.CSR, error) {
	if err := sparse.ValidateNotNil(a); err != nil {
		return nil, opErrorf(opTranspose, err)
	}
	va := snapshot(a)
	shape := va.shape.T()
	nnz := len(va.values)

	indptr := make([]int, shape.Rows+1)
	for _, c := range va.indices {
		indptr[c+1]++
	}
	for r := 0; r < shape.Rows; r++ {
		indptr[r+1] += indptr[r]
	}

	cursor := make([]int, shape.Rows)
	copy(cursor, indptr[:shape.Rows])
	values := make([]float64, nnz)
	indices := make([]int, nnz)
	for r := 0; r < va.shape.Rows; r++ {
		lo, hi := va.row(r)
		for s := lo; s < hi; s++ {
			c := va.indices[s]
			k := cursor[c]
			values[k] = va.values[s]
			indices[k] = r
			cursor[c]++
		}
	}

	out, err := sparse.NewCSR(shape, values, indices, indptr)
	if err != nil {
		return nil, opErrorf(opTranspose, err)
	}

	return out, nil
}
