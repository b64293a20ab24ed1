// SPDX-License-Identifier: MIT

// Package emit serialises fixture matrices as source literals.
//
// A fixture is a list of Sections. Each Section picks one Dialect and lists
// Blocks (a CSR, a COO or a batch of COO matrices with a title and a
// variable-name suffix). Render writes every section bracketed by its marker
// line, for example:
//
//	----CPP format----
//	//input A:
//	DimensionType rowsA = 3, colsA = 3;
//	...
//	----CPP format----
//
// Dialects:
//   - CPP:    CSR as rows/cols + values/inner/outer vectors, COO as
//     shape + rowsIndex/colsIndex/values arrays.
//   - Kotlin: SparseFloatTensor literals for COO and 3-D COO batches,
//     shape + floatArrayOf/intArrayOf for CSR.
//   - Table:  a dense preview rendered with go-pretty, for humans.
//
// Floating-point values are written with FormatFloat, which follows Python's
// repr rules so output is byte-identical to fixtures produced with NumPy.
package emit
