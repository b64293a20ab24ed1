// SPDX-License-Identifier: MIT

// Package ops is the reference operator set used to compute expected fixture
// outputs: Add, Sub, MulElem, MatMul, Transpose, Inverse and Divide over
// sparse.CSR operands.
//
// Every operator returns a fresh matrix; operands are never mutated. Results
// are canonical (ascending unique columns per row) whenever the operands are.
//
// Stored zeros: a computed slot can cancel to exactly 0.0. Add, Sub and
// MulElem keep such zeros by default; MatMul and Divide drop them, the way a
// sparse matmat kernel only emits non-zero sums. WithPruneZeros() and
// WithKeepZeros() override the default of any operator.
//
// Singular inversion is not an error: Inverse and Divide return a Result
// whose Outcome tells the caller which branch it is on.
package ops
