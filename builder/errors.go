// SPDX-License-Identifier: MIT
// Package: builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Context is attached with %w at the constructor boundary.
//   • Size and probability errors carry sparse.ErrInvalidArgument as well, so a
//     caller that only knows the sparse taxonomy can still classify them.
//   • Algorithms never panic; validation panics are confined to WithX options.

package builder

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/sparsegen/sparse"
)

// ErrBadSize indicates a non-positive row or column count.
// Usage: if errors.Is(err, ErrBadSize) { /* fix rows/cols */ }.
var ErrBadSize = errors.New("builder: invalid size")

// ErrInvalidProbability indicates a density outside the closed interval [0,1]
// (NaN included).
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor ran without an
// entropy source (WithSeed or WithSource must be set).
var ErrNeedRandSource = errors.New("builder: entropy source is required")

// ErrConstructFailed indicates a programmer error in Build, such as a nil
// constructor.
var ErrConstructFailed = errors.New("builder: construction failed")

// builderErrorf returns "<Method>: <formatted message>: <sentinel>".
//
// Complexity: O(len(format) + Σlen(args)).
func builderErrorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}

// invalidf is builderErrorf for validation failures: the result matches both
// sentinel and sparse.ErrInvalidArgument.
func invalidf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w (%w)", method, fmt.Sprintf(format, args...), sentinel, sparse.ErrInvalidArgument)
}
