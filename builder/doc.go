// SPDX-License-Identifier: MIT

// Package builder generates the random operands of a fixture.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:  a function that mutates builderConfig before use.
//     – builderConfig:  holds the entropy source shared by every constructor.
//   - Generators:
//     – RandomSparse:   one rows×cols CSR with a given non-zero density.
//     – Sparse + Build: several matrices drawn in order from one source.
//     – Permute:        a uniformly random reordering of a COO sequence.
//
// Guarantees:
//
//   - Determinism: the same seed and call order yield identical matrices,
//     bit for bit, and the draw sequence matches numpy's legacy RandomState
//     (rand(rows, cols) followed by choice(2, size, p=[1-d, d])).
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Runtime errors are sentinels wrapped with the constructor name; size and
//     probability errors also match sparse.ErrInvalidArgument.
package builder
