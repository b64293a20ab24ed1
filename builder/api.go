// SPDX-License-Identifier: MIT
// Package: builder
//
// api.go - thin public entry points for the builder package.
//
// Design contract:
//   - One orchestrator: Build(bopts, cons...). Resolves cfg once, runs cons in
//     order, so every constructor continues the same entropy stream.
//   - Functional options (BuilderOption) resolve into a builderConfig value.
//   - Determinism: same seed and constructor order ⇒ identical matrices.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"github.com/katalvlaran/sparsegen/sparse"
)

// Constructor draws one matrix from the resolved builderConfig.
// Constructors MUST validate parameters before consuming any entropy, so a
// failed call leaves the shared stream untouched.
type Constructor func(cfg builderConfig) (*sparse.CSR, error)

// Build resolves the builder configuration from bopts and applies all
// constructors in order against the same source. The i-th result belongs to
// the i-th constructor. The first error aborts the build.
//
// Complexity: Σ cost of each constructor; wrapper overhead O(K).
//
// Errors:
//   - ErrConstructFailed for a nil constructor.
//   - Constructor errors, wrapped as "Build: %w".
func Build(bopts []BuilderOption, cons ...Constructor) ([]*sparse.CSR, error) {
	cfg := newBuilderConfig(bopts...)

	out := make([]*sparse.CSR, 0, len(cons))
	for i, fn := range cons {
		if fn == nil {
			return nil, builderErrorf(MethodBuild, ErrConstructFailed, "nil constructor at index %d", i)
		}
		m, err := fn(cfg)
		if err != nil {
			return nil, builderErrorf(MethodBuild, err, "constructor %d", i)
		}
		out = append(out, m)
	}

	return out, nil
}

// RandomSparse draws a single rows×cols matrix with the given density.
// It is shorthand for Build(opts, Sparse(rows, cols, density))[0].
func RandomSparse(rows, cols int, density float64, opts ...BuilderOption) (*sparse.CSR, error) {
	return Sparse(rows, cols, density)(newBuilderConfig(opts...))
}
