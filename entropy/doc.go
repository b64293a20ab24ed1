// SPDX-License-Identifier: MIT

// Package entropy provides the explicit, seeded random source threaded through
// every stochastic step of fixture generation.
//
// There is no package-level generator: callers create one MT19937 per run and
// pass it to each generation/permutation call, so the order of draws is
// visible in the code and stable across runs.
//
// The draw contract is bit-compatible with numpy's legacy RandomState seeded
// with an integer (numpy.random.seed(s)):
//
//   - Float64: two 32-bit outputs a, b → ((a>>5)*2^26 + (b>>6)) / 2^53.
//   - Interval(max): masked rejection on 32-bit outputs.
//   - Permutation(n): Fisher–Yates from the end, j = Interval(i).
//
// Fixtures generated here can therefore be cross-checked against fixtures
// produced by the numpy/scipy scripts they replace.
package entropy
