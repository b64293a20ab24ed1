// SPDX-License-Identifier: MIT
// Package: fixture
//
// Scenario results. Every result knows how to lay itself out as emitter
// sections; the block titles and identifier suffixes are part of the fixture
// format consumed by the downstream test suites and must not change.

package fixture

import (
	"github.com/katalvlaran/sparsegen/emit"
	"github.com/katalvlaran/sparsegen/ops"
	"github.com/katalvlaran/sparsegen/sparse"
)

// Result is a generated fixture.
type Result interface {
	// Sections returns the fixture in emission order.
	Sections() []emit.Section
}

// cooOf expands a CSR produced by this package; m is never nil here.
func cooOf(m *sparse.CSR) *sparse.COO {
	c, _ := sparse.ToCOO(m)
	return c
}

// AddSubTimes holds A, B and their elementwise sum, difference and product.
type AddSubTimes struct {
	A, B, Add, Sub, Times *sparse.CSR
}

// Sections emits A, B and the three elementwise results in CPP, then again
// in Kotlin with t1/t2 naming the inputs.
func (r *AddSubTimes) Sections() []emit.Section {
	return []emit.Section{
		{Dialect: emit.CPP, Blocks: []emit.Block{
			emit.CSRBlock("input A", "A", r.A),
			emit.CSRBlock("input B", "B", r.B),
			emit.CSRBlock("expected add output", "Add", r.Add),
			emit.CSRBlock("expected sub output", "Sub", r.Sub),
			emit.CSRBlock("expected times output", "Times", r.Times),
		}},
		{Dialect: emit.Kotlin, Blocks: []emit.Block{
			emit.COOBlock("input left", "t1", cooOf(r.A)),
			emit.COOBlock("input right", "t2", cooOf(r.B)),
			emit.COOBlock("expected add output", "Add", cooOf(r.Add)),
			emit.COOBlock("expected sub output", "Sub", cooOf(r.Sub)),
			emit.COOBlock("expected times output", "Times", cooOf(r.Times)),
		}},
	}
}

// MatMul holds A (p×k), B (k×q) and A·B.
type MatMul struct {
	A, B, Product *sparse.CSR
}

// Sections emits A, B and A·B in CPP, then in Kotlin.
func (r *MatMul) Sections() []emit.Section {
	return []emit.Section{
		{Dialect: emit.CPP, Blocks: []emit.Block{
			emit.CSRBlock("input A", "A", r.A),
			emit.CSRBlock("input B", "B", r.B),
			emit.CSRBlock("expected matmul output", "Matmul", r.Product),
		}},
		{Dialect: emit.Kotlin, Blocks: []emit.Block{
			emit.COOBlock("input left", "t1", cooOf(r.A)),
			emit.COOBlock("input right", "t2", cooOf(r.B)),
			emit.COOBlock("expected matmul output", "Matmul", cooOf(r.Product)),
		}},
	}
}

// MatMul3D holds a batch of products C[i] = A[i]·B[i].
type MatMul3D struct {
	A, B, C []*sparse.CSR
}

// Sections emits the batch as Kotlin tensors t1, t2 and outExp.
func (r *MatMul3D) Sections() []emit.Section {
	batch := func(ms []*sparse.CSR) []*sparse.COO {
		out := make([]*sparse.COO, len(ms))
		for i, m := range ms {
			out[i] = cooOf(m)
		}
		return out
	}

	return []emit.Section{
		{Dialect: emit.Kotlin, Blocks: []emit.Block{
			emit.BatchBlock("input left", "t1", batch(r.A)),
			emit.BatchBlock("input right", "t2", batch(r.B)),
			emit.BatchBlock("expected output", "outExp", batch(r.C)),
		}},
	}
}

// MatDiv holds A (p×k), B (k×k) and A·B⁻¹ with the inversion outcome.
type MatDiv struct {
	A, B, Quotient *sparse.CSR
	Outcome        ops.Outcome
}

// Sections emits A, B and the quotient in CPP (Div) and Kotlin (outExp).
// A singular B still emits its empty quotient block.
func (r *MatDiv) Sections() []emit.Section {
	return []emit.Section{
		{Dialect: emit.CPP, Blocks: []emit.Block{
			emit.CSRBlock("input A", "A", r.A),
			emit.CSRBlock("input B", "B", r.B),
			emit.CSRBlock("expected output", "Div", r.Quotient),
		}},
		{Dialect: emit.Kotlin, Blocks: []emit.Block{
			emit.COOBlock("input left", "t1", cooOf(r.A)),
			emit.COOBlock("input right", "t2", cooOf(r.B)),
			emit.COOBlock("expected output", "outExp", cooOf(r.Quotient)),
		}},
	}
}

// Inverse holds A and A⁻¹ (or the empty cols×rows sentinel).
type Inverse struct {
	A, Inv  *sparse.CSR
	Outcome ops.Outcome
}

// Sections emits A and its inverse (Inv) in CPP.
func (r *Inverse) Sections() []emit.Section {
	return []emit.Section{
		{Dialect: emit.CPP, Blocks: []emit.Block{
			emit.CSRBlock("input", "", r.A),
			emit.CSRBlock("expected output", "Inv", r.Inv),
		}},
	}
}

// Transpose holds A and Aᵀ.
type Transpose struct {
	A, T *sparse.CSR
}

// Sections emits A and Aᵀ (E) in CPP.
func (r *Transpose) Sections() []emit.Section {
	return []emit.Section{
		{Dialect: emit.CPP, Blocks: []emit.Block{
			emit.CSRBlock("CSR Input", "", r.A),
			emit.CSRBlock("CSR Expected", "E", r.T),
		}},
	}
}

// COOToCSR holds a COO input (row-major or permuted) and the CSR the
// conversion under test must produce.
type COOToCSR struct {
	Input    *sparse.COO
	Expected *sparse.CSR
	Permuted bool
}

// Sections emits the COO input and the expected CSR (E) in CPP.
func (r *COOToCSR) Sections() []emit.Section {
	return []emit.Section{
		{Dialect: emit.CPP, Blocks: []emit.Block{
			emit.COOBlock("COO Input", "", r.Input),
			emit.CSRBlock("CSR Expected", "E", r.Expected),
		}},
	}
}

// Invoke2D holds a COO tensor literal and its order-preserving CSR.
type Invoke2D struct {
	Input    *sparse.COO
	Expected *sparse.CSR
	Permuted bool
}

// Sections emits the COO input as a Kotlin tensor (t1) and the expected
// CSR (Exp).
func (r *Invoke2D) Sections() []emit.Section {
	return []emit.Section{
		{Dialect: emit.Kotlin, Blocks: []emit.Block{
			emit.COOBlock("input", "t1", r.Input),
			emit.CSRBlock("expected output", "Exp", r.Expected),
		}},
	}
}

// TestAll holds square A, B and every binary operator's result.
type TestAll struct {
	A, B, Add, Sub, Times, Product, Quotient *sparse.CSR
	Outcome                                  ops.Outcome
}

// Sections emits A, B and all five operator results in one CPP section.
func (r *TestAll) Sections() []emit.Section {
	return []emit.Section{
		{Dialect: emit.CPP, Blocks: []emit.Block{
			emit.CSRBlock("input A", "A", r.A),
			emit.CSRBlock("input B", "B", r.B),
			emit.CSRBlock("expected add output", "Add", r.Add),
			emit.CSRBlock("expected sub output", "Sub", r.Sub),
			emit.CSRBlock("expected times output", "Times", r.Times),
			emit.CSRBlock("expected matmul output", "Matmul", r.Product),
			emit.CSRBlock("expected matdiv output", "Matdiv", r.Quotient),
		}},
	}
}

// Preview re-renders the blocks of r's first section as a Table section.
func Preview(r Result, style string) emit.Section {
	secs := r.Sections()
	sec := emit.Section{Dialect: emit.Table, TableStyle: style}
	if len(secs) > 0 {
		sec.Blocks = secs[0].Blocks
	}

	return sec
}
