// SPDX-License-Identifier: MIT
// Package: sparse
//
// COO <-> CSR conversions.
//
//   - ToCSR: canonical construction (rows ascending, columns ascending,
//     duplicate positions summed in COO sequence order).
//   - ToCOO: row-major expansion of a CSR in stored slot order.
//   - OrderPreservingCSR: the stress variant. Row capacities come from the
//     canonical prefix sum of per-row entry counts; entries are then written
//     by per-row cursors in COO sequence order, so every row mirrors the
//     relative order of its entries in the (possibly permuted) COO stream.
//     Nothing is coalesced: a duplicated (row, col) occupies two slots.
//
// Determinism: every pass walks the COO sequence once, front to back.

package sparse

import "fmt"

const (
	opToCSR              = "ToCSR"
	opToCOO              = "ToCOO"
	opOrderPreservingCSR = "OrderPreservingCSR"
)

// rowPointers returns the prefix sum of per-row entry counts (len rows+1).
// Duplicates count once per stored triplet.
func rowPointers(m *COO) []int {
	indptr := make([]int, m.shape.Rows+1)
	for _, t := range m.entries {
		indptr[t.Row+1]++
	}
	for r := 0; r < m.shape.Rows; r++ {
		indptr[r+1] += indptr[r]
	}

	return indptr
}

// scatter places every COO entry into its row window using per-row cursors.
// Stage 1: indptr from counts. Stage 2: cursor[r] starts at indptr[r].
// Stage 3: one pass over entries in sequence order.
// Complexity: O(rows + nnz).
func scatter(m *COO) *CSR {
	indptr := rowPointers(m)
	nnz := len(m.entries)
	values := make([]float64, nnz)
	indices := make([]int, nnz)

	cursor := make([]int, m.shape.Rows)
	copy(cursor, indptr[:m.shape.Rows])
	for _, t := range m.entries {
		k := cursor[t.Row] // next free slot of row t.Row
		values[k] = t.Value
		indices[k] = t.Col
		cursor[t.Row]++
	}

	return &CSR{shape: m.shape, values: values, indices: indices, indptr: indptr}
}

// ToCSR converts m to canonical CSR: ascending columns per row, duplicate
// positions summed in COO sequence order. Sums equal to zero stay stored.
// Errors: ErrNilMatrix.
func ToCSR(m *COO) (*CSR, error) {
	if m == nil {
		return nil, sparseErrorf(opToCSR, ErrNilMatrix)
	}

	return scatter(m).Canonical(), nil
}

// OrderPreservingCSR converts m to CSR keeping, within each row, the order in
// which entries appear in the COO sequence. indptr equals the one ToCSR
// would produce for duplicate-free input.
// Errors: ErrNilMatrix.
func OrderPreservingCSR(m *COO) (*CSR, error) {
	if m == nil {
		return nil, sparseErrorf(opOrderPreservingCSR, ErrNilMatrix)
	}

	return scatter(m), nil
}

// ToCOO expands m into triplets, row by row, in stored slot order.
// Errors: ErrNilMatrix.
func ToCOO(m *CSR) (*COO, error) {
	if m == nil {
		return nil, sparseErrorf(opToCOO, ErrNilMatrix)
	}
	entries := make([]Triplet, 0, m.NNZ())
	for r := 0; r < m.shape.Rows; r++ {
		for k := m.indptr[r]; k < m.indptr[r+1]; k++ {
			entries = append(entries, Triplet{Row: r, Col: m.indices[k], Value: m.values[k]})
		}
	}

	return &COO{shape: m.shape, entries: entries}, nil
}

// MustCSR is a test and example helper: it panics if err is non-nil.
func MustCSR(m *CSR, err error) *CSR {
	if err != nil {
		panic(fmt.Sprintf("sparse: MustCSR: %v", err))
	}

	return m
}
