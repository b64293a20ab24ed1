// SPDX-License-Identifier: MIT

// Package fixture turns a scenario name and a Params set into rendered test
// fixtures.
//
// A scenario draws its operands from one seeded entropy stream, in a fixed
// order, computes the expected outputs with package ops and describes the
// result as emit.Sections. The scenarios are:
//
//	addsubtimes  A, B → A+B, A-B, A∘B          (CPP CSR, Kotlin COO)
//	matmul       A, B → A·B                    (CPP CSR, Kotlin COO)
//	matmul3d     batched A_i·B_i               (Kotlin 3-D COO)
//	matdiv       A, B → A·B⁻¹                  (CPP CSR, Kotlin COO)
//	inverse      A → A⁻¹                       (CPP CSR)
//	transpose    A → Aᵀ                        (CPP CSR)
//	cootocsr     A as COO → CSR                (CPP COO + CSR)
//	invoke2d     A as COO → order-kept CSR     (Kotlin COO + CSR)
//	testall      every binary operator, p×p    (CPP CSR)
//
// A Manifest (YAML) lists several cases; Generator.Batch renders them in order.
package fixture
