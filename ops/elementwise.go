// SPDX-License-Identifier: MIT
// Package: ops
//
// Elementwise kernels. Both operands are canonicalised first (rows sorted,
// duplicate columns summed), then each row pair is merged with two cursors.
//
//   - Add / Sub: union of stored positions, value a ± b (missing side is 0).
//   - MulElem:   intersection of stored positions, value a * b.
//
// Determinism: rows ascending, columns ascending, one pass per row.
// Complexity: O(rows + nnzA + nnzB) after canonicalisation.

package ops

import (
	"github.com/katalvlaran/sparsegen/sparse"
)

// Add computes C = A + B.
// Errors: sparse.ErrNilMatrix, sparse.ErrShapeMismatch.
func Add(a, b *sparse.CSR, opts ...Option) (*sparse.CSR, error) {
	return union(a, b, +1, opAdd, gatherOptions(opts...))
}

// Sub computes C = A - B.
// Errors: sparse.ErrNilMatrix, sparse.ErrShapeMismatch.
func Sub(a, b *sparse.CSR, opts ...Option) (*sparse.CSR, error) {
	return union(a, b, -1, opSub, gatherOptions(opts...))
}

// union merges canonical rows of a and sign*b.
//
// Implementation:
//   - Stage 1 (Validate): non-nil, same shape.
//   - Stage 2 (Prepare): canonicalise both operands.
//   - Stage 3 (Execute): per row, two-cursor merge by column.
func union(a, b *sparse.CSR, sign float64, tag string, o options) (*sparse.CSR, error) {
	if err := sparse.ValidateSameShape(a, b); err != nil {
		return nil, opErrorf(tag, err)
	}
	va, vb := snapshot(a.Canonical()), snapshot(b.Canonical())

	asm, err := sparse.NewAssembler(va.shape)
	if err != nil {
		return nil, opErrorf(tag, err)
	}
	emit := func(col int, v float64) error {
		if !o.keep(v, false) {
			return nil
		}
		return asm.Append(col, v)
	}

	for r := 0; r < va.shape.Rows; r++ {
		i, iEnd := va.row(r)
		j, jEnd := vb.row(r)
		for i < iEnd || j < jEnd {
			switch {
			case j == jEnd || (i < iEnd && va.indices[i] < vb.indices[j]):
				err = emit(va.indices[i], va.values[i]) // only in A
				i++
			case i == iEnd || vb.indices[j] < va.indices[i]:
				err = emit(vb.indices[j], sign*vb.values[j]) // only in B
				j++
			default:
				err = emit(va.indices[i], va.values[i]+sign*vb.values[j])
				i++
				j++
			}
			if err != nil {
				return nil, opErrorf(tag, err)
			}
		}
		asm.EndRow()
	}

	out, err := asm.CSR()
	if err != nil {
		return nil, opErrorf(tag, err)
	}

	return out, nil
}

// MulElem computes the Hadamard product C = A ∘ B. Only positions stored in
// both operands appear in C.
// Errors: sparse.ErrNilMatrix, sparse.ErrShapeMismatch.
func MulElem(a, b *sparse.CSR, opts ...Option) (*sparse.CSR, error) {
	o := gatherOptions(opts...)
	if err := sparse.ValidateSameShape(a, b); err != nil {
		return nil, opErrorf(opMulElem, err)
	}
	va, vb := snapshot(a.Canonical()), snapshot(b.Canonical())

	asm, err := sparse.NewAssembler(va.shape)
	if err != nil {
		return nil, opErrorf(opMulElem, err)
	}
	for r := 0; r < va.shape.Rows; r++ {
		i, iEnd := va.row(r)
		j, jEnd := vb.row(r)
		for i < iEnd && j < jEnd {
			switch ca, cb := va.indices[i], vb.indices[j]; {
			case ca < cb:
				i++
			case cb < ca:
				j++
			default:
				if v := va.values[i] * vb.values[j]; o.keep(v, false) {
					if err = asm.Append(ca, v); err != nil {
						return nil, opErrorf(opMulElem, err)
					}
				}
				i++
				j++
			}
		}
		asm.EndRow()
	}

	out, err := asm.CSR()
	if err != nil {
		return nil, opErrorf(opMulElem, err)
	}

	return out, nil
}
