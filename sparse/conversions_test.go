package sparse_test

import (
	"testing"

	"github.com/katalvlaran/sparsegen/sparse"
	"github.com/stretchr/testify/require"
)

// permutedFixture is a 3×4 COO whose entries are deliberately out of
// row-major order.
func permutedFixture(t *testing.T) *sparse.COO {
	t.Helper()
	m, err := sparse.NewCOO(sparse.Shape{Rows: 3, Cols: 4}, []sparse.Triplet{
		{Row: 2, Col: 3, Value: 0.7},
		{Row: 0, Col: 2, Value: 0.1},
		{Row: 2, Col: 0, Value: 0.5},
		{Row: 0, Col: 0, Value: 0.3},
		{Row: 2, Col: 1, Value: 0.9},
	})
	require.NoError(t, err)

	return m
}

// TestNewCOOOutOfRange ensures triplet positions are validated.
func TestNewCOOOutOfRange(t *testing.T) {
	_, err := sparse.NewCOO(sparse.Shape{Rows: 2, Cols: 2}, []sparse.Triplet{{Row: 2, Col: 0, Value: 1}})
	require.ErrorIs(t, err, sparse.ErrOutOfRange)

	_, err = sparse.NewCOOFromArrays(sparse.Shape{Rows: 2, Cols: 2}, []int{0}, []int{0, 1}, []float64{1})
	require.ErrorIs(t, err, sparse.ErrInvalidArgument)
}

// TestToCSRCanonical checks canonical ordering regardless of input order.
func TestToCSRCanonical(t *testing.T) {
	m, err := sparse.ToCSR(permutedFixture(t))
	require.NoError(t, err)
	require.True(t, m.IsCanonical())
	require.Equal(t, []int{0, 2, 2, 5}, m.Indptr())
	require.Equal(t, []int{0, 2, 0, 1, 3}, m.Indices())
	require.Equal(t, []float64{0.3, 0.1, 0.5, 0.9, 0.7}, m.Values())
}

// TestOrderPreservingCSR checks that rows mirror the COO scan order and that
// indptr matches the canonical one.
func TestOrderPreservingCSR(t *testing.T) {
	coo := permutedFixture(t)
	op, err := sparse.OrderPreservingCSR(coo)
	require.NoError(t, err)
	canon, err := sparse.ToCSR(coo)
	require.NoError(t, err)

	require.Equal(t, canon.Indptr(), op.Indptr())         // identical row windows
	require.Equal(t, []int{2, 0, 3, 0, 1}, op.Indices())   // row 0: 2,0 ; row 2: 3,0,1
	require.Equal(t, []float64{0.1, 0.3, 0.7, 0.5, 0.9}, op.Values())
	require.False(t, op.IsCanonical())
	require.True(t, op.SortIndices().Equal(canon))
}

// TestOrderPreservingDuplicates pins the duplicate policy: no coalescing,
// one slot per stored triplet, in sequence order.
func TestOrderPreservingDuplicates(t *testing.T) {
	coo, err := sparse.NewCOO(sparse.Shape{Rows: 2, Cols: 2}, []sparse.Triplet{
		{Row: 1, Col: 1, Value: 2},
		{Row: 0, Col: 1, Value: 1},
		{Row: 1, Col: 1, Value: 3},
	})
	require.NoError(t, err)
	require.True(t, coo.HasDuplicates())

	op, err := sparse.OrderPreservingCSR(coo)
	require.NoError(t, err)
	require.Equal(t, 3, op.NNZ())
	require.Equal(t, []int{0, 1, 3}, op.Indptr())
	require.Equal(t, []int{1, 1, 1}, op.Indices())
	require.Equal(t, []float64{1, 2, 3}, op.Values())

	canon, err := sparse.ToCSR(coo)
	require.NoError(t, err)
	require.Equal(t, 2, canon.NNZ())
	require.Equal(t, []float64{1, 5}, canon.Values()) // coalesced
}

// TestCOORoundTrip checks COO→CSR→COO on duplicate-free row-major input.
func TestCOORoundTrip(t *testing.T) {
	csr, err := sparse.ToCSR(permutedFixture(t))
	require.NoError(t, err)
	coo, err := sparse.ToCOO(csr)
	require.NoError(t, err)
	again, err := sparse.ToCSR(coo)
	require.NoError(t, err)
	require.True(t, csr.Equal(again))

	// multiset of triplets preserved
	require.ElementsMatch(t, permutedFixture(t).Entries(), coo.Entries())
}

// TestConversionsNil ensures nil inputs surface ErrNilMatrix.
func TestConversionsNil(t *testing.T) {
	_, err := sparse.ToCSR(nil)
	require.ErrorIs(t, err, sparse.ErrNilMatrix)
	_, err = sparse.OrderPreservingCSR(nil)
	require.ErrorIs(t, err, sparse.ErrNilMatrix)
	_, err = sparse.ToCOO(nil)
	require.ErrorIs(t, err, sparse.ErrNilMatrix)
}
