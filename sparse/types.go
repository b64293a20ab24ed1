// SPDX-License-Identifier: MIT

package sparse

import "fmt"

// Shape is the (rows, cols) pair of a matrix. Both must be positive.
type Shape struct {
	Rows int // number of rows, > 0
	Cols int // number of columns, > 0
}

// NewShape validates and returns a Shape.
func NewShape(rows, cols int) (Shape, error) {
	s := Shape{Rows: rows, Cols: cols}
	if err := s.Validate(); err != nil {
		return Shape{}, err
	}

	return s, nil
}

// Validate returns ErrInvalidArgument unless Rows > 0 and Cols > 0.
func (s Shape) Validate() error {
	if s.Rows <= 0 || s.Cols <= 0 {
		return fmt.Errorf("shape %dx%d: %w", s.Rows, s.Cols, ErrInvalidArgument)
	}

	return nil
}

// T returns the transposed shape (cols × rows).
func (s Shape) T() Shape {
	return Shape{Rows: s.Cols, Cols: s.Rows}
}

// Size is the number of cells of the dense equivalent.
func (s Shape) Size() int {
	return s.Rows * s.Cols
}

// Contains reports whether (row, col) addresses a cell inside s.
func (s Shape) Contains(row, col int) bool {
	return row >= 0 && row < s.Rows && col >= 0 && col < s.Cols
}

// String renders the shape as "RxC".
func (s Shape) String() string {
	return fmt.Sprintf("%dx%d", s.Rows, s.Cols)
}

// Triplet is one stored COO entry.
type Triplet struct {
	Row   int
	Col   int
	Value float64
}
