// SPDX-License-Identifier: MIT
// Package: ops
//
// Inverse and Divide.
//
// Inversion is dense: the CSR is materialised as a gonum *mat.Dense and
// inverted with LU factorisation (mat.Dense.Inverse). The two failure
// classes of gonum are told apart:
//   - exactly singular (zero pivot): gonum reports Condition(+Inf). This is
//     the only case treated as singular.
//   - ill-conditioned: gonum still computes the inverse and reports a finite
//     Condition. The inverse is accepted.
// A singular or non-square input yields an empty matrix of the transposed
// shape (cols×rows) tagged OutcomeSingular. No error is returned for it.

package ops

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/sparsegen/sparse"
)

// Outcome tags the branch an inversion took.
type Outcome int

const (
	// OutcomeInverted means Result.Matrix holds a computed inverse (or product).
	OutcomeInverted Outcome = iota
	// OutcomeSingular means the inversion failed and Result.Matrix is the
	// empty sentinel of transposed shape.
	OutcomeSingular
)

// String returns "inverted" or "singular".
func (o Outcome) String() string {
	switch o {
	case OutcomeInverted:
		return "inverted"
	case OutcomeSingular:
		return "singular"
	default:
		return "unknown"
	}
}

// Result is the tagged result of Inverse and Divide.
type Result struct {
	Matrix  *sparse.CSR
	Outcome Outcome
}

// Singular reports whether the inversion fell back to the empty sentinel.
func (r Result) Singular() bool { return r.Outcome == OutcomeSingular }

// Inverse computes A⁻¹.
//
// Implementation:
//   - Stage 1 (Validate): non-nil; non-square goes straight to the sentinel.
//   - Stage 2 (Prepare): densify via sparse.ToDense.
//   - Stage 3 (Execute): mat.Dense.Inverse.
//   - Stage 4 (Finalize): compact the non-zero cells into canonical CSR.
//
// Errors: sparse.ErrNilMatrix only.
// Complexity: O(n³) time, O(n²) memory.
func Inverse(a *sparse.CSR) (Result, error) {
	if err := sparse.ValidateNotNil(a); err != nil {
		return Result{}, opErrorf(opInverse, err)
	}
	shape := a.Shape()
	if shape.Rows != shape.Cols {
		return singular(shape)
	}

	d, err := sparse.ToDense(a)
	if err != nil {
		return Result{}, opErrorf(opInverse, err)
	}
	var inv mat.Dense
	if err = inv.Inverse(d); err != nil && !illConditioned(err) {
		return singular(shape)
	}

	m, err := sparse.FromDense(&inv)
	if err != nil {
		return Result{}, opErrorf(opInverse, err)
	}

	return Result{Matrix: m, Outcome: OutcomeInverted}, nil
}

// illConditioned reports whether err is a finite gonum Condition, i.e. the
// inverse was computed but may be inaccurate.
func illConditioned(err error) bool {
	var cond mat.Condition
	if !errors.As(err, &cond) {
		return false
	}

	return !math.IsInf(float64(cond), 1)
}

func singular(shape sparse.Shape) (Result, error) {
	empty, err := sparse.NewEmptyCSR(shape.T())
	if err != nil {
		return Result{}, opErrorf(opInverse, err)
	}

	return Result{Matrix: empty, Outcome: OutcomeSingular}, nil
}

// Divide computes A / B := A · B⁻¹ for A (p×k) and B (k×k), then sorts each
// row of the product by column. The Outcome is inherited from Inverse(B): a
// singular B yields the empty p×k product tagged OutcomeSingular.
// Errors: sparse.ErrNilMatrix, sparse.ErrShapeMismatch.
func Divide(a, b *sparse.CSR, opts ...Option) (Result, error) {
	if err := sparse.ValidateNotNil(a, b); err != nil {
		return Result{}, opErrorf(opDivide, err)
	}
	if err := sparse.ValidateSquare(b); err != nil {
		return Result{}, opErrorf(opDivide, err)
	}
	if err := sparse.ValidateMulCompatible(a, b); err != nil {
		return Result{}, opErrorf(opDivide, err)
	}

	inv, err := Inverse(b)
	if err != nil {
		return Result{}, opErrorf(opDivide, err)
	}
	prod, err := MatMul(a, inv.Matrix, opts...)
	if err != nil {
		return Result{}, opErrorf(opDivide, err)
	}

	return Result{Matrix: prod.SortIndices(), Outcome: inv.Outcome}, nil
}
