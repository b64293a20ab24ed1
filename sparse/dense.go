// SPDX-License-Identifier: MIT
// Package: sparse
//
// Bridges to gonum's dense matrices. Dense forms are used only where the
// reference semantics are defined densely (inversion) and by tests.

package sparse

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

const (
	opToDense   = "ToDense"
	opFromDense = "FromDense"
)

// ToDense materialises m as a gonum *mat.Dense; duplicate slots are summed.
// Complexity: O(rows*cols + nnz) time and O(rows*cols) memory.
func ToDense(m *CSR) (*mat.Dense, error) {
	if m == nil {
		return nil, sparseErrorf(opToDense, ErrNilMatrix)
	}
	d := mat.NewDense(m.shape.Rows, m.shape.Cols, nil)
	for r := 0; r < m.shape.Rows; r++ {
		for k := m.indptr[r]; k < m.indptr[r+1]; k++ {
			c := m.indices[k]
			d.Set(r, c, d.At(r, c)+m.values[k])
		}
	}

	return d, nil
}

// FromDense compacts d into canonical CSR keeping exactly the cells != 0,
// rows in order and columns ascending.
// Errors: ErrNilMatrix, ErrInvalidArgument (empty dense).
func FromDense(d mat.Matrix) (*CSR, error) {
	if d == nil {
		return nil, sparseErrorf(opFromDense, ErrNilMatrix)
	}
	rows, cols := d.Dims()
	shape, err := NewShape(rows, cols)
	if err != nil {
		return nil, sparseErrorf(opFromDense, err)
	}
	asm := newAssembler(shape, 0)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if v := d.At(r, c); v != 0 {
				asm.values = append(asm.values, v)
				asm.indices = append(asm.indices, c)
			}
		}
		asm.EndRow()
	}

	return asm.csr(), nil
}

// FromRows is a literal constructor for small matrices written as nested
// slices; every row must have the same length.
func FromRows(rows [][]float64) (*CSR, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, sparseErrorf("FromRows", fmt.Errorf("empty literal: %w", ErrInvalidArgument))
	}
	cols := len(rows[0])
	data := make([]float64, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, sparseErrorf("FromRows", fmt.Errorf("row %d has %d cols, want %d: %w", i, len(row), cols, ErrInvalidArgument))
		}
		data = append(data, row...)
	}

	return FromDense(mat.NewDense(len(rows), cols, data))
}
