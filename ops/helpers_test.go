// SPDX-License-Identifier: MIT
package ops_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/sparsegen/builder"
	"github.com/katalvlaran/sparsegen/sparse"
)

// tol bounds round-off in identities such as (A+B)-B == A.
const tol = 1e-12

// mustRows builds a canonical CSR from a dense literal.
func mustRows(t *testing.T, rows [][]float64) *sparse.CSR {
	t.Helper()
	m, err := sparse.FromRows(rows)
	require.NoError(t, err)
	return m
}

// randomPair draws two matrices of the same shape from one seeded stream.
func randomPair(t *testing.T, seed uint32, rows, cols int, da, db float64) (*sparse.CSR, *sparse.CSR) {
	t.Helper()
	ms, err := builder.Build([]builder.BuilderOption{builder.WithSeed(seed)},
		builder.Sparse(rows, cols, da), builder.Sparse(rows, cols, db))
	require.NoError(t, err)
	return ms[0], ms[1]
}

// requireDenseClose compares two CSR matrices through their dense forms.
func requireDenseClose(t *testing.T, want, got *sparse.CSR) {
	t.Helper()
	require.Equal(t, want.Shape(), got.Shape())
	dw, err := sparse.ToDense(want)
	require.NoError(t, err)
	dg, err := sparse.ToDense(got)
	require.NoError(t, err)
	require.True(t, mat.EqualApprox(dw, dg, tol), "want\n%v\ngot\n%v", mat.Formatted(dw), mat.Formatted(dg))
}

// positions lists the stored (row, col) pairs of m.
func positions(t *testing.T, m *sparse.CSR) map[[2]int]bool {
	t.Helper()
	out := make(map[[2]int]bool, m.NNZ())
	for r := 0; r < m.Shape().Rows; r++ {
		cols, _, err := m.Row(r)
		require.NoError(t, err)
		for _, c := range cols {
			out[[2]int{r, c}] = true
		}
	}
	return out
}
