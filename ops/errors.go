// SPDX-License-Identifier: MIT
// Package: ops
//
// The operators reuse the sparse sentinel set (ErrNilMatrix, ErrShapeMismatch).
// opErrorf only attaches the operation tag.

package ops

import "fmt"

// Operation tags for error wrapping.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMulElem   = "MulElem"
	opMatMul    = "MatMul"
	opTranspose = "Transpose"
	opInverse   = "Inverse"
	opDivide    = "Divide"
)

// opErrorf wraps err with an operation tag, preserving it for errors.Is.
// Only call it with a non-nil err.
func opErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
