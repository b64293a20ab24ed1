// SPDX-License-Identifier: MIT

package sparse

import (
	"fmt"
	"math"
)

// COO is a coordinate-form sparse matrix: a shape plus an ordered sequence of
// triplets. The order is significant (order-preserving conversion reads it)
// and duplicate positions are legal.
type COO struct {
	shape   Shape
	entries []Triplet
}

// NewCOO validates the shape and every triplet position, then returns a COO
// owning a copy of entries.
// Errors: ErrInvalidArgument (shape), ErrOutOfRange (triplet position).
// Complexity: O(nnz).
func NewCOO(shape Shape, entries []Triplet) (*COO, error) {
	if err := shape.Validate(); err != nil {
		return nil, sparseErrorf("NewCOO", err)
	}
	for i, t := range entries {
		if !shape.Contains(t.Row, t.Col) {
			return nil, sparseErrorf("NewCOO", fmt.Errorf("entry %d at (%d,%d) in %s: %w", i, t.Row, t.Col, shape, ErrOutOfRange))
		}
	}
	cp := make([]Triplet, len(entries))
	copy(cp, entries)

	return &COO{shape: shape, entries: cp}, nil
}

// NewCOOFromArrays builds a COO from the three parallel sequences used by
// fixture formats (row indices, column indices, values).
func NewCOOFromArrays(shape Shape, rows, cols []int, values []float64) (*COO, error) {
	if len(rows) != len(cols) || len(rows) != len(values) {
		return nil, sparseErrorf("NewCOOFromArrays",
			fmt.Errorf("lengths rows=%d cols=%d values=%d: %w", len(rows), len(cols), len(values), ErrInvalidArgument))
	}
	entries := make([]Triplet, len(rows))
	for i := range rows {
		entries[i] = Triplet{Row: rows[i], Col: cols[i], Value: values[i]}
	}

	return NewCOO(shape, entries)
}

// Shape returns the matrix shape.
func (m *COO) Shape() Shape { return m.shape }

// NNZ returns the number of stored triplets (duplicates counted separately).
func (m *COO) NNZ() int { return len(m.entries) }

// Entry returns the i-th stored triplet.
func (m *COO) Entry(i int) (Triplet, error) {
	if i < 0 || i >= len(m.entries) {
		return Triplet{}, sparseErrorf("COO.Entry", fmt.Errorf("%d of %d: %w", i, len(m.entries), ErrOutOfRange))
	}

	return m.entries[i], nil
}

// Entries returns a copy of the triplet sequence.
func (m *COO) Entries() []Triplet {
	out := make([]Triplet, len(m.entries))
	copy(out, m.entries)

	return out
}

// RowIndices returns the row of every triplet, in sequence order.
func (m *COO) RowIndices() []int {
	out := make([]int, len(m.entries))
	for i, t := range m.entries {
		out[i] = t.Row
	}

	return out
}

// ColIndices returns the column of every triplet, in sequence order.
func (m *COO) ColIndices() []int {
	out := make([]int, len(m.entries))
	for i, t := range m.entries {
		out[i] = t.Col
	}

	return out
}

// Values returns the value of every triplet, in sequence order.
func (m *COO) Values() []float64 {
	out := make([]float64, len(m.entries))
	for i, t := range m.entries {
		out[i] = t.Value
	}

	return out
}

// HasDuplicates reports whether any (row, col) position is stored twice.
func (m *COO) HasDuplicates() bool {
	seen := make(map[[2]int]struct{}, len(m.entries))
	for _, t := range m.entries {
		k := [2]int{t.Row, t.Col}
		if _, ok := seen[k]; ok {
			return true
		}
		seen[k] = struct{}{}
	}

	return false
}

// Equal reports exact equality: same shape, same triplets in the same order,
// values compared bit for bit.
func (m *COO) Equal(o *COO) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.shape != o.shape || len(m.entries) != len(o.entries) {
		return false
	}
	for i, t := range m.entries {
		u := o.entries[i]
		if t.Row != u.Row || t.Col != u.Col || math.Float64bits(t.Value) != math.Float64bits(u.Value) {
			return false
		}
	}

	return true
}
