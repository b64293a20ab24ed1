// Package sparsegen generates deterministic test fixtures for sparse-matrix
// libraries: random CSR operands, the results of reference operators on them,
// and the source text (C++ or Kotlin) that embeds both in a unit test.
//
// Everything is organized under six subpackages:
//
//	sparse/   - COO and CSR types, validation, conversions, dense views
//	entropy/  - the seeded MT19937 stream every fixture is drawn from
//	builder/  - random sparse matrices and COO permutations
//	ops/      - reference add, sub, elementwise product, matmul, transpose, inverse, divide
//	emit/     - C++, Kotlin and table renderers
//	fixture/  - the scenarios, batch manifests and the Generator that runs them
//
// The sparsegen command (cmd/sparsegen) exposes one subcommand per scenario:
//
//	sparsegen addsubtimes -p 3 -q 3 -z 0.5 -s 0
//
// Identical parameters and seed always produce byte-identical output.
package sparsegen
