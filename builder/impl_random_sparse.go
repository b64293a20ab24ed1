// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_random_sparse.go - implementation of the Sparse(rows, cols, d) constructor.
//
// Canonical model:
//   - Every cell is an independent product magnitude*mask, where magnitude is
//     U[0,1) and mask is 1 with probability d.
//   - Only products != 0 are stored. A cell whose mask is 1 but whose
//     magnitude is exactly 0.0 is therefore absent.
//
// Draw contract (numpy legacy RandomState, row-major):
//   1. rows*cols magnitudes  ≡ np.random.rand(rows, cols)
//   2. rows*cols mask draws  ≡ np.random.choice(2, (rows, cols), p=[1-d, d])
//      where choice normalises the CDF to [1-d, 1] and searches side='right':
//      mask = 1  ⇔  u ≥ (1-d) / ((1-d) + d).
//   Even d ∈ {0, 1} consumes both batches, keeping later draws aligned.
//
// Complexity:
//   - Time: O(rows*cols) draws.
//   - Space: O(rows*cols) for the magnitude batch, O(nnz) for the result.

package builder

import (
	"github.com/katalvlaran/sparsegen/entropy"
	"github.com/katalvlaran/sparsegen/sparse"
)

// Sparse returns a Constructor drawing a rows×cols matrix with independent
// non-zero probability density.
func Sparse(rows, cols int, density float64) Constructor {
	return func(cfg builderConfig) (*sparse.CSR, error) {
		// 1) Validate (no entropy consumed on failure).
		if err := validateDims(MethodRandomSparse, rows, cols); err != nil {
			return nil, err
		}
		if err := validateProbability(MethodRandomSparse, density); err != nil {
			return nil, err
		}
		if cfg.src == nil {
			return nil, builderErrorf(MethodRandomSparse, ErrNeedRandSource, "no source configured")
		}

		// 2) Draw both batches in numpy order.
		n := rows * cols
		magnitudes := entropy.Uniform(cfg.src, n)
		threshold := maskThreshold(density)

		// 3) Assemble row by row; the mask batch is consumed in the same scan.
		shape := sparse.Shape{Rows: rows, Cols: cols}
		asm, err := sparse.NewAssembler(shape)
		if err != nil {
			return nil, builderErrorf(MethodRandomSparse, err, "assembler")
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := cfg.src.Float64()
				if u < threshold {
					continue // mask 0
				}
				if v := magnitudes[r*cols+c]; v != 0 {
					if err = asm.Append(c, v); err != nil {
						return nil, builderErrorf(MethodRandomSparse, err, "append (%d,%d)", r, c)
					}
				}
			}
			asm.EndRow()
		}

		m, err := asm.CSR()
		if err != nil {
			return nil, builderErrorf(MethodRandomSparse, err, "finish")
		}

		return m, nil
	}
}

// maskThreshold is the normalised CDF boundary of choice(2, p=[1-d, d]).
func maskThreshold(d float64) float64 {
	lo := 1 - d
	return lo / (lo + d)
}
