// SPDX-License-Identifier: MIT
package ops_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sparsegen/ops"
	"github.com/katalvlaran/sparsegen/sparse"
)

func TestInverseKnown(t *testing.T) {
	a := mustRows(t, [][]float64{{4, 7}, {2, 6}})
	res, err := ops.Inverse(a)
	require.NoError(t, err)
	require.False(t, res.Singular())
	require.Equal(t, ops.OutcomeInverted, res.Outcome)
	require.True(t, res.Matrix.IsCanonical())
	requireDenseClose(t, mustRows(t, [][]float64{{0.6, -0.7}, {-0.2, 0.4}}), res.Matrix)
}

func TestInverseSingularSentinel(t *testing.T) {
	tests := []struct {
		name string
		rows [][]float64
		want sparse.Shape
	}{
		{"all zero", [][]float64{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}}, sparse.Shape{Rows: 3, Cols: 3}},
		{"zero row", [][]float64{{1, 2, 3}, {0, 0, 0}, {4, 5, 6}}, sparse.Shape{Rows: 3, Cols: 3}},
		{"rank deficient", [][]float64{{1, 2}, {2, 4}}, sparse.Shape{Rows: 2, Cols: 2}},
		{"non-square", [][]float64{{1, 2, 3}, {4, 5, 6}}, sparse.Shape{Rows: 3, Cols: 2}},
		{"1x1 zero", [][]float64{{0}}, sparse.Shape{Rows: 1, Cols: 1}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res, err := ops.Inverse(mustRows(t, tc.rows))
			require.NoError(t, err)
			require.True(t, res.Singular())
			require.Equal(t, "singular", res.Outcome.String())
			require.Equal(t, tc.want, res.Matrix.Shape())
			require.Zero(t, res.Matrix.NNZ())
		})
	}
}

func TestInverseIllConditionedAccepted(t *testing.T) {
	eps := 2.220446049250313e-16
	res, err := ops.Inverse(mustRows(t, [][]float64{{1, 1}, {1, 1 + eps}}))
	require.NoError(t, err)
	require.False(t, res.Singular())
	require.Equal(t, 4, res.Matrix.NNZ())
}

func TestInverseNil(t *testing.T) {
	_, err := ops.Inverse(nil)
	require.ErrorIs(t, err, sparse.ErrNilMatrix)
}

func TestDivide(t *testing.T) {
	a := mustRows(t, [][]float64{{1, 2}, {0, 3}, {4, 0}})
	id := mustRows(t, [][]float64{{1, 0}, {0, 1}})

	res, err := ops.Divide(a, id)
	require.NoError(t, err)
	require.False(t, res.Singular())
	require.True(t, res.Matrix.Equal(a))

	b := mustRows(t, [][]float64{{4, 7}, {2, 6}})
	res, err = ops.Divide(a, b)
	require.NoError(t, err)
	requireDenseClose(t, mustRows(t, [][]float64{
		{1*0.6 + 2*-0.2, 1*-0.7 + 2*0.4},
		{3 * -0.2, 3 * 0.4},
		{4 * 0.6, 4 * -0.7},
	}), res.Matrix)
	require.True(t, res.Matrix.IsCanonical())
}

func TestDivideDropsCancelledSums(t *testing.T) {
	a := mustRows(t, [][]float64{{1, 1}})
	b := mustRows(t, [][]float64{{1, 0}, {1, 1}}) // inverse is {{1, 0}, {-1, 1}}

	res, err := ops.Divide(a, b)
	require.NoError(t, err)
	require.Equal(t, []int{1}, res.Matrix.Indices())
	require.Equal(t, []float64{1}, res.Matrix.Values())

	kept, err := ops.Divide(a, b, ops.WithKeepZeros())
	require.NoError(t, err)
	require.Equal(t, []int{0, 1}, kept.Matrix.Indices())
	require.Equal(t, []float64{0, 1}, kept.Matrix.Values())
}

func TestDivideSingular(t *testing.T) {
	a := mustRows(t, [][]float64{{1, 2}, {3, 4}, {5, 6}})
	z := mustRows(t, [][]float64{{0, 0}, {0, 0}})

	res, err := ops.Divide(a, z)
	require.NoError(t, err)
	require.True(t, res.Singular())
	require.Equal(t, sparse.Shape{Rows: 3, Cols: 2}, res.Matrix.Shape())
	require.Zero(t, res.Matrix.NNZ())
}

func TestDivideShapeErrors(t *testing.T) {
	a := mustRows(t, [][]float64{{1, 2, 3}})
	nonSquare := mustRows(t, [][]float64{{1, 2}, {3, 4}, {5, 6}})
	_, err := ops.Divide(a, nonSquare)
	require.ErrorIs(t, err, sparse.ErrShapeMismatch)

	square := mustRows(t, [][]float64{{1, 0}, {0, 1}})
	_, err = ops.Divide(a, square)
	require.ErrorIs(t, err, sparse.ErrShapeMismatch)

	_, err = ops.Divide(nil, square)
	require.ErrorIs(t, err, sparse.ErrNilMatrix)
}
