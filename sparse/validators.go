// SPDX-License-Identifier: MIT
// Package: sparse
//
// Purpose:
//   - Single source of truth for nil/shape/compatibility checks used by the
//     conversions here and by the operator kernels in package ops.
//   - Return sentinels wrapped with the validator tag; call sites add the
//     operation tag on top.
//
// Each composite validator runs in a fixed order: NotNil -> Shape.

package sparse

// ValidateNotNil ensures every given CSR is non-nil.
// Complexity: O(len(ms)).
func ValidateNotNil(ms ...*CSR) error {
	for _, m := range ms {
		if m == nil {
			return sparseErrorf("ValidateNotNil", ErrNilMatrix)
		}
	}

	return nil
}

// ValidateSameShape ensures a and b are non-nil and have equal dimensions.
// Used by the elementwise kernels (Add/Sub/MulElem).
func ValidateSameShape(a, b *CSR) error {
	if err := ValidateNotNil(a, b); err != nil {
		return err
	}
	if a.shape != b.shape {
		return sparseErrorf("ValidateSameShape "+a.shape.String()+" vs "+b.shape.String(), ErrShapeMismatch)
	}

	return nil
}

// ValidateMulCompatible ensures a (p×k) and b (k×q) can be multiplied.
func ValidateMulCompatible(a, b *CSR) error {
	if err := ValidateNotNil(a, b); err != nil {
		return err
	}
	if a.shape.Cols != b.shape.Rows {
		return sparseErrorf("ValidateMulCompatible "+a.shape.String()+" · "+b.shape.String(), ErrShapeMismatch)
	}

	return nil
}

// ValidateSquare ensures m is non-nil and square.
func ValidateSquare(m *CSR) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.shape.Rows != m.shape.Cols {
		return sparseErrorf("ValidateSquare "+m.shape.String(), ErrShapeMismatch)
	}

	return nil
}
