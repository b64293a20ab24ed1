// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_permute.go - uniformly random reordering of a COO sequence.
//
// The permutation is numpy's legacy np.random.permutation(nnz): Fisher–Yates
// from the last position down, j drawn by masked rejection in [0, i].
// Entry i of the result is entry perm[i] of the input; the shape and the
// multiset of triplets are preserved.

package builder

import (
	"github.com/katalvlaran/sparsegen/entropy"
	"github.com/katalvlaran/sparsegen/sparse"
)

// Permute returns coo with its entries reordered by a random permutation.
// Errors: sparse.ErrNilMatrix, ErrNeedRandSource.
// Complexity: O(nnz) time and space.
func Permute(coo *sparse.COO, opts ...BuilderOption) (*sparse.COO, error) {
	if coo == nil {
		return nil, builderErrorf(MethodPermute, sparse.ErrNilMatrix, "input")
	}
	cfg := newBuilderConfig(opts...)
	if cfg.src == nil {
		return nil, builderErrorf(MethodPermute, ErrNeedRandSource, "no source configured")
	}

	entries := coo.Entries()
	perm := entropy.Permutation(cfg.src, len(entries))
	shuffled := make([]sparse.Triplet, len(entries))
	for i, p := range perm {
		shuffled[i] = entries[p]
	}

	out, err := sparse.NewCOO(coo.Shape(), shuffled)
	if err != nil {
		return nil, builderErrorf(MethodPermute, err, "rebuild")
	}

	return out, nil
}
