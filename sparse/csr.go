// SPDX-License-Identifier: MIT

package sparse

import (
	"fmt"
	"math"
	"slices"
	"strings"
)

// CSR is a compressed-sparse-row matrix.
//
// Invariants (checked by NewCSR):
//   - len(indptr) == rows+1, indptr[0] == 0, indptr[rows] == nnz, non-decreasing.
//   - len(values) == len(indices) == nnz and every index lies in [0, cols).
//
// Rows are NOT required to be canonical: OrderPreservingCSR yields rows in COO
// scan order and may keep duplicate columns. IsCanonical reports the property.
type CSR struct {
	shape   Shape
	values  []float64
	indices []int
	indptr  []int
}

// NewCSR validates the three parallel sequences and returns a CSR owning
// copies of them.
// Errors: ErrInvalidArgument (shape, lengths, indptr), ErrOutOfRange (column index).
// Complexity: O(rows + nnz).
func NewCSR(shape Shape, values []float64, indices, indptr []int) (*CSR, error) {
	if err := shape.Validate(); err != nil {
		return nil, sparseErrorf("NewCSR", err)
	}
	if err := checkCSR(shape, values, indices, indptr); err != nil {
		return nil, sparseErrorf("NewCSR", err)
	}

	return &CSR{
		shape:   shape,
		values:  slices.Clone(values),
		indices: slices.Clone(indices),
		indptr:  slices.Clone(indptr),
	}, nil
}

// NewEmptyCSR returns an nnz=0 matrix of the given shape.
func NewEmptyCSR(shape Shape) (*CSR, error) {
	if err := shape.Validate(); err != nil {
		return nil, sparseErrorf("NewEmptyCSR", err)
	}

	return &CSR{
		shape:   shape,
		values:  []float64{},
		indices: []int{},
		indptr:  make([]int, shape.Rows+1),
	}, nil
}

// checkCSR enforces the structural invariants listed on CSR.
func checkCSR(shape Shape, values []float64, indices, indptr []int) error {
	if len(indptr) != shape.Rows+1 {
		return fmt.Errorf("len(indptr)=%d want %d: %w", len(indptr), shape.Rows+1, ErrInvalidArgument)
	}
	if len(values) != len(indices) {
		return fmt.Errorf("len(values)=%d len(indices)=%d: %w", len(values), len(indices), ErrInvalidArgument)
	}
	if indptr[0] != 0 || indptr[shape.Rows] != len(values) {
		return fmt.Errorf("indptr bounds [%d..%d] for nnz=%d: %w", indptr[0], indptr[shape.Rows], len(values), ErrInvalidArgument)
	}
	for r := 0; r < shape.Rows; r++ {
		if indptr[r] > indptr[r+1] {
			return fmt.Errorf("indptr decreases at row %d: %w", r, ErrInvalidArgument)
		}
	}
	for k, c := range indices {
		if c < 0 || c >= shape.Cols {
			return fmt.Errorf("indices[%d]=%d in %s: %w", k, c, shape, ErrOutOfRange)
		}
	}

	return nil
}

// Shape returns the matrix shape.
func (m *CSR) Shape() Shape { return m.shape }

// NNZ returns the number of stored slots.
func (m *CSR) NNZ() int { return len(m.values) }

// Values returns a copy of the stored values.
func (m *CSR) Values() []float64 { return slices.Clone(m.values) }

// Indices returns a copy of the column index of every stored value.
func (m *CSR) Indices() []int { return slices.Clone(m.indices) }

// Indptr returns a copy of the row-pointer sequence (length rows+1).
func (m *CSR) Indptr() []int { return slices.Clone(m.indptr) }

// RowNNZ returns the number of stored slots in row r, or 0 if r is out of range.
func (m *CSR) RowNNZ(r int) int {
	if r < 0 || r >= m.shape.Rows {
		return 0
	}

	return m.indptr[r+1] - m.indptr[r]
}

// Row returns copies of the column indices and values stored in row r,
// in stored order.
func (m *CSR) Row(r int) ([]int, []float64, error) {
	if r < 0 || r >= m.shape.Rows {
		return nil, nil, sparseErrorf("CSR.Row", fmt.Errorf("row %d in %s: %w", r, m.shape, ErrOutOfRange))
	}
	lo, hi := m.indptr[r], m.indptr[r+1]

	return slices.Clone(m.indices[lo:hi]), slices.Clone(m.values[lo:hi]), nil
}

// At returns the value at (row, col), summing duplicate slots; absent cells are 0.
func (m *CSR) At(row, col int) (float64, error) {
	if !m.shape.Contains(row, col) {
		return 0, sparseErrorf("CSR.At", fmt.Errorf("(%d,%d) in %s: %w", row, col, m.shape, ErrOutOfRange))
	}
	var sum float64
	for k := m.indptr[row]; k < m.indptr[row+1]; k++ {
		if m.indices[k] == col {
			sum += m.values[k]
		}
	}

	return sum, nil
}

// IsCanonical reports whether every row has strictly ascending column indices.
func (m *CSR) IsCanonical() bool {
	for r := 0; r < m.shape.Rows; r++ {
		for k := m.indptr[r] + 1; k < m.indptr[r+1]; k++ {
			if m.indices[k-1] >= m.indices[k] {
				return false
			}
		}
	}

	return true
}

// slot pairs a column index with its value while reordering a row.
type slot struct {
	col int
	val float64
}

// SortIndices returns a copy whose rows are stably sorted by column index.
// Duplicate columns stay separate, in their original relative order.
// Complexity: O(nnz log nnz) worst case.
func (m *CSR) SortIndices() *CSR {
	out := m.clone()
	buf := make([]slot, 0)
	for r := 0; r < m.shape.Rows; r++ {
		lo, hi := out.indptr[r], out.indptr[r+1]
		buf = buf[:0]
		for k := lo; k < hi; k++ {
			buf = append(buf, slot{col: out.indices[k], val: out.values[k]})
		}
		slices.SortStableFunc(buf, func(a, b slot) int { return a.col - b.col })
		for i, s := range buf {
			out.indices[lo+i] = s.col
			out.values[lo+i] = s.val
		}
	}

	return out
}

// Canonical returns the canonical form: rows sorted by column and duplicate
// columns summed in stored order. Stored zeros are kept.
func (m *CSR) Canonical() *CSR {
	sorted := m.SortIndices()
	asm := newAssembler(m.shape, sorted.NNZ())
	for r := 0; r < m.shape.Rows; r++ {
		lo, hi := sorted.indptr[r], sorted.indptr[r+1]
		for k := lo; k < hi; k++ {
			if k > lo && sorted.indices[k] == sorted.indices[k-1] {
				asm.values[len(asm.values)-1] += sorted.values[k] // coalesce
				continue
			}
			asm.values = append(asm.values, sorted.values[k])
			asm.indices = append(asm.indices, sorted.indices[k])
		}
		asm.EndRow()
	}

	return asm.csr()
}

// Equal reports exact equality: same shape, same slots in the same order,
// values compared bit for bit.
func (m *CSR) Equal(o *CSR) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.shape != o.shape || !slices.Equal(m.indptr, o.indptr) || !slices.Equal(m.indices, o.indices) {
		return false
	}
	for i, v := range m.values {
		if math.Float64bits(v) != math.Float64bits(o.values[i]) {
			return false
		}
	}

	return true
}

// String renders one line per row as "r: c=v c=v".
func (m *CSR) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "CSR %s nnz=%d\n", m.shape, m.NNZ())
	for r := 0; r < m.shape.Rows; r++ {
		fmt.Fprintf(&sb, "%d:", r)
		for k := m.indptr[r]; k < m.indptr[r+1]; k++ {
			fmt.Fprintf(&sb, " %d=%g", m.indices[k], m.values[k])
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

func (m *CSR) clone() *CSR {
	return &CSR{
		shape:   m.shape,
		values:  slices.Clone(m.values),
		indices: slices.Clone(m.indices),
		indptr:  slices.Clone(m.indptr),
	}
}

// Assembler builds a CSR row by row. Append adds a slot to the current row,
// EndRow closes it; CSR fails unless exactly Rows rows were closed.
// Operator kernels use it so every result passes through one construction path.
type Assembler struct {
	shape   Shape
	values  []float64
	indices []int
	indptr  []int
	done    bool
}

// NewAssembler starts an empty matrix of the given shape.
func NewAssembler(shape Shape) (*Assembler, error) {
	if err := shape.Validate(); err != nil {
		return nil, sparseErrorf("NewAssembler", err)
	}

	return newAssembler(shape, 0), nil
}

func newAssembler(shape Shape, capHint int) *Assembler {
	indptr := make([]int, 1, shape.Rows+1)
	return &Assembler{
		shape:   shape,
		values:  make([]float64, 0, capHint),
		indices: make([]int, 0, capHint),
		indptr:  indptr,
	}
}

// Append stores (col, v) in the current row.
func (a *Assembler) Append(col int, v float64) error {
	if col < 0 || col >= a.shape.Cols {
		return sparseErrorf("Assembler.Append", fmt.Errorf("column %d in %s: %w", col, a.shape, ErrOutOfRange))
	}
	if a.done || len(a.indptr) > a.shape.Rows {
		return sparseErrorf("Assembler.Append", fmt.Errorf("all %d rows closed: %w", a.shape.Rows, ErrOutOfRange))
	}
	a.values = append(a.values, v)
	a.indices = append(a.indices, col)

	return nil
}

// EndRow closes the current row. Extra calls past the last row are ignored.
func (a *Assembler) EndRow() {
	if a.done || len(a.indptr) > a.shape.Rows {
		return
	}
	a.indptr = append(a.indptr, len(a.values))
}

// CSR returns the assembled matrix. The assembler is finished afterwards.
func (a *Assembler) CSR() (*CSR, error) {
	if len(a.indptr) != a.shape.Rows+1 {
		return nil, sparseErrorf("Assembler.CSR",
			fmt.Errorf("%d of %d rows closed: %w", len(a.indptr)-1, a.shape.Rows, ErrInvalidArgument))
	}

	return a.csr(), nil
}

// csr hands the buffers over without copying and finishes the assembler.
func (a *Assembler) csr() *CSR {
	a.done = true
	return &CSR{shape: a.shape, values: a.values, indices: a.indices, indptr: a.indptr}
}
