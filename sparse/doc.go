// SPDX-License-Identifier: MIT

// Package sparse provides the two value types used to describe test-scale
// sparse matrices and the conversions between them.
//
// The package offers:
//
//   - COO (coordinate form): an ordered sequence of (row, col, value) triplets.
//     Duplicate positions are legal and are coalesced only by canonical conversion.
//   - CSR (compressed sparse row): values, column indices and a row-pointer
//     array. Rows may be canonical (ascending unique columns) or, when produced
//     by OrderPreservingCSR, follow the scan order of the source COO.
//   - Canonical and order-preserving COO→CSR conversion, CSR→COO expansion and
//     dense bridges to gonum's mat.Dense.
//
// Matrices are immutable values: every constructor copies its inputs and every
// accessor returns a copy, so an operator result can be handed to an emitter
// without another copy.
//
// Errors are package-level sentinels (errors.go); match them with errors.Is.
package sparse
