// SPDX-License-Identifier: MIT
// Package sparse: sentinel error set.
//
// Every message is prefixed with "sparse: ..." for easy grepping. Operations
// attach context with fmt.Errorf("<Op>: %w", ErrX) at the boundary; callers
// still branch with errors.Is.
//
// ERROR PRIORITY (enforced in validators and tests):
// nil -> shape -> index range -> structural (indptr) -> operand compatibility.

package sparse

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned for malformed shapes, out-of-range
	// densities and structurally invalid CSR/COO input.
	ErrInvalidArgument = errors.New("sparse: invalid argument")

	// ErrShapeMismatch indicates incompatible dimensions between operands,
	// e.g. Add of different shapes or MatMul where a.Cols != b.Rows.
	ErrShapeMismatch = errors.New("sparse: shape mismatch")

	// ErrOutOfRange indicates that a row or column index lies outside the shape.
	ErrOutOfRange = errors.New("sparse: index out of range")

	// ErrNilMatrix indicates that a nil *COO or *CSR was passed in.
	ErrNilMatrix = errors.New("sparse: nil matrix")
)

// sparseErrorf wraps err with an operation tag, preserving it for errors.Is.
// Only call it with a non-nil err.
func sparseErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
