// SPDX-License-Identifier: MIT
// Package builder provides validation helpers for the generator parameters.
//
// Each function returns a formatted error via invalidf when its precondition
// is violated.
package builder

import "math"

// validateDims ensures rows and cols are both ≥ MinDim.
// Complexity: O(1).
func validateDims(method string, rows, cols int) error {
	if rows < MinDim || cols < MinDim {
		return invalidf(method, ErrBadSize, "rows=%d cols=%d, both must be ≥ %d", rows, cols, MinDim)
	}

	return nil
}

// validateProbability ensures p ∈ [MinProbability, MaxProbability]. NaN fails.
// Complexity: O(1).
func validateProbability(method string, p float64) error {
	if math.IsNaN(p) || p < MinProbability || p > MaxProbability {
		return invalidf(method, ErrInvalidProbability, "p=%v not in [%.1f,%.1f]", p, MinProbability, MaxProbability)
	}

	return nil
}
