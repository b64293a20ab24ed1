// SPDX-License-Identifier: MIT
// Package: ops
//
// Sparse × sparse product (row-by-row accumulation, Gustavson's scheme).
//
// For output row i:
//   for every slot (k, a) of A's row i, in stored order
//     for every slot (j, b) of B's row k, in stored order
//       sums[j] += a*b
// The contributing columns are then emitted in ascending order.
// Floating-point sums therefore depend on the stored order of the operands,
// which is why operands are NOT canonicalised here.

package ops

import (
	"slices"

	"github.com/katalvlaran/sparsegen/sparse"
)

// MatMul computes C = A · B for A (p×k) and B (k×q). Sums that cancel to
// exactly 0 are dropped unless WithKeepZeros() is given.
// Errors: sparse.ErrNilMatrix, sparse.ErrShapeMismatch.
// Complexity: O(p + flops + Σ_i cols_i log cols_i) time, O(q) scratch.
func MatMul(a, b *sparse.CSR, opts ...Option) (*sparse.CSR, error) {
	o := gatherOptions(opts...)
	if err := sparse.ValidateMulCompatible(a, b); err != nil {
		return nil, opErrorf(opMatMul, err)
	}
	va, vb := snapshot(a), snapshot(b)
	shape := sparse.Shape{Rows: va.shape.Rows, Cols: vb.shape.Cols}

	asm, err := sparse.NewAssembler(shape)
	if err != nil {
		return nil, opErrorf(opMatMul, err)
	}

	sums := make([]float64, shape.Cols)
	seen := make([]bool, shape.Cols)
	cols := make([]int, 0, shape.Cols)
	for i := 0; i < shape.Rows; i++ {
		cols = cols[:0]
		lo, hi := va.row(i)
		for s := lo; s < hi; s++ {
			k, av := va.indices[s], va.values[s]
			blo, bhi := vb.row(k)
			for t := blo; t < bhi; t++ {
				j := vb.indices[t]
				if !seen[j] {
					seen[j] = true
					cols = append(cols, j)
				}
				sums[j] += av * vb.values[t]
			}
		}
		slices.Sort(cols)
		for _, j := range cols {
			if o.keep(sums[j], true) {
				if err = asm.Append(j, sums[j]); err != nil {
					return nil, opErrorf(opMatMul, err)
				}
			}
			sums[j], seen[j] = 0, false // reset scratch for the next row
		}
		asm.EndRow()
	}

	out, err := asm.CSR()
	if err != nil {
		return nil, opErrorf(opMatMul, err)
	}

	return out, nil
}
