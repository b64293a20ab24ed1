// SPDX-License-Identifier: MIT
// Package: fixture
//
// Scenario registry and implementations.
//
// Draw order is part of the fixture contract: changing which matrix is drawn
// first changes every generated value. The orders below are the historical
// ones (B before A in the two-operand scenarios).

package fixture

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/sparsegen/builder"
	"github.com/katalvlaran/sparsegen/ops"
	"github.com/katalvlaran/sparsegen/sparse"
)

// Scenario names, as accepted by Run and used as CLI subcommands.
const (
	NameAddSubTimes = "addsubtimes" // A+B, A-B and A∘B
	NameMatMul      = "matmul"      // A·B
	NameMatMul3D    = "matmul3d"    // batched A_i·B_i, Kotlin only
	NameMatDiv      = "matdiv"      // A·B⁻¹
	NameInverse     = "inverse"     // A⁻¹
	NameTranspose   = "transpose"   // Aᵀ, CPP only
	NameCOOToCSR    = "cootocsr"    // COO input with its CSR, CPP only
	NameInvoke2D    = "invoke2d"    // COO tensor with its CSR, Kotlin only
	NameTestAll     = "testall"     // every binary operator on square A, B
)

type scenario struct {
	summary  string
	defaults func() Params
	run      func(g *Generator, p Params) (Result, error)
}

var registry = map[string]scenario{
	NameAddSubTimes: {"A, B (p×q) with A+B, A-B and A∘B", standard, func(g *Generator, p Params) (Result, error) { return g.AddSubTimes(p) }},
	NameMatMul:      {"A (p×k), B (k×q) with A·B", standard, func(g *Generator, p Params) (Result, error) { return g.MatMul(p) }},
	NameMatMul3D:    {"a batch of A_i (p×k), B_i (k×q) with A_i·B_i", batch, func(g *Generator, p Params) (Result, error) { return g.MatMul3D(p) }},
	NameMatDiv:      {"A (p×k), B (k×q) with A·B⁻¹", standard, func(g *Generator, p Params) (Result, error) { return g.MatDiv(p) }},
	NameInverse:     {"A (r×c) with A⁻¹", standard, func(g *Generator, p Params) (Result, error) { return g.Inverse(p) }},
	NameTranspose:   {"A (r×c) with Aᵀ", standard, func(g *Generator, p Params) (Result, error) { return g.Transpose(p) }},
	NameCOOToCSR:    {"A (r×c) as COO with its CSR", standard, func(g *Generator, p Params) (Result, error) { return g.COOToCSR(p) }},
	NameInvoke2D:    {"A (r×c) as a Kotlin tensor with its order-preserving CSR", standard, func(g *Generator, p Params) (Result, error) { return g.Invoke2D(p) }},
	NameTestAll:     {"square A, B with every binary operator", standard, func(g *Generator, p Params) (Result, error) { return g.TestAll(p) }},
}

func standard() Params { return baseDefaults(DefaultDensity) }
func batch() Params    { return baseDefaults(DefaultBatchDensity) }

// Scenarios lists the registered scenario names in sorted order.
func Scenarios() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Summary returns the one-line description of a scenario.
func Summary(name string) (string, error) {
	sc, err := lookup(name)
	if err != nil {
		return "", err
	}

	return sc.summary, nil
}

func lookup(name string) (scenario, error) {
	sc, ok := registry[name]
	if !ok {
		return scenario{}, fixtureErrorf("lookup", fmt.Errorf("%q: %w", name, ErrUnknownScenario))
	}

	return sc, nil
}

// Run executes the named scenario. Zero-valued fields of p take the
// scenario defaults, as in the per-scenario methods.
func (g *Generator) Run(name string, p Params) (Result, error) {
	sc, err := lookup(name)
	if err != nil {
		return nil, err
	}
	res, err := sc.run(g, p)
	if err != nil {
		return nil, fixtureErrorf(name, err)
	}

	return res, nil
}

// AddSubTimes draws B (p×q, dA) then A (p×q, dB).
func (g *Generator) AddSubTimes(p Params) (*AddSubTimes, error) {
	p = p.withDefaults(standard())
	r := g.start(NameAddSubTimes, p.Seed)
	dA, dB := r.densities(p.Densities)
	ms, err := r.draw([]string{"B", "A"},
		builder.Sparse(p.Rows, p.Cols, dA),
		builder.Sparse(p.Rows, p.Cols, dB))
	if err != nil {
		return nil, err
	}
	res := &AddSubTimes{A: ms[1], B: ms[0]}
	if res.Add, res.Sub, res.Times, err = g.elementwise(res.A, res.B); err != nil {
		return nil, err
	}

	return res, nil
}

func (g *Generator) elementwise(a, b *sparse.CSR) (add, sub, times *sparse.CSR, err error) {
	if add, err = ops.Add(a, b, g.opOpts...); err != nil {
		return nil, nil, nil, err
	}
	if sub, err = ops.Sub(a, b, g.opOpts...); err != nil {
		return nil, nil, nil, err
	}
	if times, err = ops.MulElem(a, b, g.opOpts...); err != nil {
		return nil, nil, nil, err
	}

	return add, sub, times, nil
}

// MatMul draws B (k×q, dA) then A (p×k, dB).
func (g *Generator) MatMul(p Params) (*MatMul, error) {
	p = p.withDefaults(standard())
	r := g.start(NameMatMul, p.Seed)
	dA, dB := r.densities(p.Densities)
	ms, err := r.draw([]string{"B", "A"},
		builder.Sparse(p.Inner, p.Cols, dA),
		builder.Sparse(p.Rows, p.Inner, dB))
	if err != nil {
		return nil, err
	}
	res := &MatMul{A: ms[1], B: ms[0]}
	if res.Product, err = ops.MatMul(res.A, res.B, g.opOpts...); err != nil {
		return nil, err
	}

	return res, nil
}

// MatMul3D draws, for each batch member i, A_i (p×k, dA[i]) then B_i (k×q, dB[i]).
func (g *Generator) MatMul3D(p Params) (*MatMul3D, error) {
	p = p.withDefaults(batch())
	if p.Batch < 1 {
		return nil, invalidParams("batch=%d, must be ≥ 1", p.Batch)
	}
	r := g.start(NameMatMul3D, p.Seed)
	dAs, dBs, ok := ProcessList(p.Densities, p.Batch, DefaultBatchDensity)
	if !ok {
		r.fallback(p.Densities, DefaultBatchDensity)
	}

	res := &MatMul3D{}
	for i := 0; i < p.Batch; i++ {
		ms, err := r.draw([]string{fmt.Sprintf("A[%d]", i), fmt.Sprintf("B[%d]", i)},
			builder.Sparse(p.Rows, p.Inner, dAs[i]),
			builder.Sparse(p.Inner, p.Cols, dBs[i]))
		if err != nil {
			return nil, err
		}
		c, err := ops.MatMul(ms[0], ms[1], g.opOpts...)
		if err != nil {
			return nil, err
		}
		res.A = append(res.A, ms[0])
		res.B = append(res.B, ms[1])
		res.C = append(res.C, c)
	}

	return res, nil
}

// MatDiv draws B (k×q, dB) then A (p×k, dA). B must be square (k == q).
func (g *Generator) MatDiv(p Params) (*MatDiv, error) {
	p = p.withDefaults(standard())
	r := g.start(NameMatDiv, p.Seed)
	dA, dB := r.densities(p.Densities)
	ms, err := r.draw([]string{"B", "A"},
		builder.Sparse(p.Inner, p.Cols, dB),
		builder.Sparse(p.Rows, p.Inner, dA))
	if err != nil {
		return nil, err
	}
	res := &MatDiv{A: ms[1], B: ms[0]}
	q, err := ops.Divide(res.A, res.B, g.opOpts...)
	if err != nil {
		return nil, err
	}
	if q.Singular() {
		r.singular("B", res.B.Shape())
	}
	res.Quotient, res.Outcome = q.Matrix, q.Outcome

	return res, nil
}

// Inverse draws A (r×c, d). Non-square or singular A yields the empty
// c×r sentinel and a WARN record.
func (g *Generator) Inverse(p Params) (*Inverse, error) {
	p = p.withDefaults(standard())
	r := g.start(NameInverse, p.Seed)
	ms, err := r.draw([]string{"A"}, builder.Sparse(p.Rows, p.Cols, r.density(p.Densities)))
	if err != nil {
		return nil, err
	}
	inv, err := ops.Inverse(ms[0])
	if err != nil {
		return nil, err
	}
	if inv.Singular() {
		r.singular("A", ms[0].Shape())
	}

	return &Inverse{A: ms[0], Inv: inv.Matrix, Outcome: inv.Outcome}, nil
}

// Transpose draws A (r×c, d).
func (g *Generator) Transpose(p Params) (*Transpose, error) {
	p = p.withDefaults(standard())
	r := g.start(NameTranspose, p.Seed)
	ms, err := r.draw([]string{"A"}, builder.Sparse(p.Rows, p.Cols, r.density(p.Densities)))
	if err != nil {
		return nil, err
	}
	t, err := ops.Transpose(ms[0])
	if err != nil {
		return nil, err
	}

	return &Transpose{A: ms[0], T: t}, nil
}

// COOToCSR draws A (r×c, d). Without Permute the expected CSR is A itself
// and the COO is its row-major expansion. With Permute the COO is shuffled
// with the same stream and the expected CSR keeps the shuffled order per row.
func (g *Generator) COOToCSR(p Params) (*COOToCSR, error) {
	p = p.withDefaults(standard())
	r := g.start(NameCOOToCSR, p.Seed)
	coo, a, err := r.cooInput(p)
	if err != nil {
		return nil, err
	}
	res := &COOToCSR{Input: coo, Expected: a, Permuted: p.Permute}
	if p.Permute {
		if res.Expected, err = sparse.OrderPreservingCSR(coo); err != nil {
			return nil, err
		}
	}

	return res, nil
}

// Invoke2D draws A (r×c, d); the expected CSR is always the order-preserving
// conversion of the (optionally shuffled) COO.
func (g *Generator) Invoke2D(p Params) (*Invoke2D, error) {
	p = p.withDefaults(standard())
	r := g.start(NameInvoke2D, p.Seed)
	coo, _, err := r.cooInput(p)
	if err != nil {
		return nil, err
	}
	csr, err := sparse.OrderPreservingCSR(coo)
	if err != nil {
		return nil, err
	}

	return &Invoke2D{Input: coo, Expected: csr, Permuted: p.Permute}, nil
}

// cooInput draws A and returns its COO form, shuffled when p.Permute is set.
func (r *run) cooInput(p Params) (*sparse.COO, *sparse.CSR, error) {
	ms, err := r.draw([]string{"A"}, builder.Sparse(p.Rows, p.Cols, r.density(p.Densities)))
	if err != nil {
		return nil, nil, err
	}
	coo, err := sparse.ToCOO(ms[0])
	if err != nil {
		return nil, nil, err
	}
	if p.Permute {
		if coo, err = builder.Permute(coo, builder.WithSource(r.src)); err != nil {
			return nil, nil, err
		}
	}

	return coo, ms[0], nil
}

// TestAll draws B (p×p, dA) then A (p×p, dB) and applies every binary operator.
func (g *Generator) TestAll(p Params) (*TestAll, error) {
	p = p.withDefaults(standard())
	r := g.start(NameTestAll, p.Seed)
	dA, dB := r.densities(p.Densities)
	ms, err := r.draw([]string{"B", "A"},
		builder.Sparse(p.Rows, p.Rows, dA),
		builder.Sparse(p.Rows, p.Rows, dB))
	if err != nil {
		return nil, err
	}
	res := &TestAll{A: ms[1], B: ms[0]}
	if res.Add, res.Sub, res.Times, err = g.elementwise(res.A, res.B); err != nil {
		return nil, err
	}
	if res.Product, err = ops.MatMul(res.A, res.B, g.opOpts...); err != nil {
		return nil, err
	}
	q, err := ops.Divide(res.A, res.B, g.opOpts...)
	if err != nil {
		return nil, err
	}
	if q.Singular() {
		r.singular("B", res.B.Shape())
	}
	res.Quotient, res.Outcome = q.Matrix, q.Outcome

	return res, nil
}
