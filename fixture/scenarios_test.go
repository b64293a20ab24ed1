// SPDX-License-Identifier: MIT
package fixture_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/sparsegen/builder"
	"github.com/katalvlaran/sparsegen/fixture"
	"github.com/katalvlaran/sparsegen/ops"
	"github.com/katalvlaran/sparsegen/sparse"
)

func csr(t *testing.T, values []float64, indices, indptr []int) *sparse.CSR {
	t.Helper()
	m, err := sparse.NewCSR(sparse.Shape{Rows: 3, Cols: 3}, values, indices, indptr)
	require.NoError(t, err)
	return m
}

// seedZero is the first 3×3, density 0.5 matrix drawn after seed(0).
func seedZero(t *testing.T) *sparse.CSR {
	t.Helper()
	return csr(t,
		[]float64{0.7151893663724195, 0.6027633760716439, 0.5448831829968969, 0.4236547993389047, 0.9636627605010293},
		[]int{1, 2, 0, 1, 2},
		[]int{0, 2, 4, 5})
}

// seedZeroNext is the second 3×3, density 0.5 matrix of the seed(0) stream.
func seedZeroNext(t *testing.T) *sparse.CSR {
	t.Helper()
	return csr(t,
		[]float64{0.7781567509498505, 0.8700121482468192, 0.46147936225293185, 0.11827442586893322, 0.1433532874090464},
		[]int{0, 1, 1, 0, 2},
		[]int{0, 2, 3, 5})
}

func logCapture() (*fixture.Generator, *bytes.Buffer) {
	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return fixture.NewGenerator(fixture.WithLogger(l)), &buf
}

func TestAddSubTimesSeedZero(t *testing.T) {
	res, err := fixture.NewGenerator().AddSubTimes(fixture.Params{})
	require.NoError(t, err)

	// B is drawn first, A continues the stream.
	require.True(t, res.B.Equal(seedZero(t)), "B:\n%s", res.B)
	require.True(t, res.A.Equal(seedZeroNext(t)), "A:\n%s", res.A)

	add := csr(t,
		[]float64{0.7781567509498505, 1.5852015146192386, 0.6027633760716439, 0.5448831829968969, 0.8851341615918366, 0.11827442586893322, 1.1070160479100757},
		[]int{0, 1, 2, 0, 1, 0, 2},
		[]int{0, 3, 5, 7})
	sub := csr(t,
		[]float64{0.7781567509498505, 0.15482278187439968, -0.6027633760716439, -0.5448831829968969, 0.03782456291402714, 0.11827442586893322, -0.8203094730919829},
		[]int{0, 1, 2, 0, 1, 0, 2},
		[]int{0, 3, 5, 7})
	times := csr(t,
		[]float64{0.6222234370409501, 0.19550794661431156, 0.1381442246714991},
		[]int{1, 1, 2},
		[]int{0, 1, 2, 3})
	require.True(t, res.Add.Equal(add), "add:\n%s", res.Add)
	require.True(t, res.Sub.Equal(sub), "sub:\n%s", res.Sub)
	require.True(t, res.Times.Equal(times), "times:\n%s", res.Times)
}

func TestMatMulSeedZero(t *testing.T) {
	res, err := fixture.NewGenerator().MatMul(fixture.Params{})
	require.NoError(t, err)
	require.True(t, res.B.Equal(seedZero(t)))
	require.True(t, res.A.Equal(seedZeroNext(t)))

	want := csr(t,
		[]float64{0.4740549885826949, 0.9251142557381598, 0.46904439031547324, 0.2514523437917555, 0.19550794661431156, 0.08458861169526405, 0.20943571691119264},
		[]int{0, 1, 2, 0, 1, 1, 2},
		[]int{0, 3, 5, 7})
	require.True(t, res.Product.Equal(want), "product:\n%s", res.Product)
}

func TestTestAllGolden(t *testing.T) {
	g := fixture.NewGenerator()
	out, err := g.Render(fixture.NameTestAll, fixture.Params{}, false, "")
	require.NoError(t, err)

	// Everything up to the matdiv block is exact.
	want := `----CPP format----
//input A:
DimensionType rowsA = 3, colsA = 3;
std::vector<DataType> valuesA = {
0.7781567509498505,0.8700121482468192,0.46147936225293185,0.11827442586893322,0.1433532874090464
};
std::vector<DimensionType> innerA = {
0,1,1,0,2
};
std::vector<OrdinalType> outerA = {
0,2,3,5
};
//input B:
DimensionType rowsB = 3, colsB = 3;
std::vector<DataType> valuesB = {
0.7151893663724195,0.6027633760716439,0.5448831829968969,0.4236547993389047,0.9636627605010293
};
std::vector<DimensionType> innerB = {
1,2,0,1,2
};
std::vector<OrdinalType> outerB = {
0,2,4,5
};
//expected add output:
DimensionType rowsAdd = 3, colsAdd = 3;
std::vector<DataType> valuesAdd = {
0.7781567509498505,1.5852015146192386,0.6027633760716439,0.5448831829968969,0.8851341615918366,
0.11827442586893322,1.1070160479100757
};
std::vector<DimensionType> innerAdd = {
0,1,2,0,1,
0,2
};
std::vector<OrdinalType> outerAdd = {
0,3,5,7
};
//expected sub output:
DimensionType rowsSub = 3, colsSub = 3;
std::vector<DataType> valuesSub = {
0.7781567509498505,0.15482278187439968,-0.6027633760716439,-0.5448831829968969,0.03782456291402714,
0.11827442586893322,-0.8203094730919829
};
std::vector<DimensionType> innerSub = {
0,1,2,0,1,
0,2
};
std::vector<OrdinalType> outerSub = {
0,3,5,7
};
//expected times output:
DimensionType rowsTimes = 3, colsTimes = 3;
std::vector<DataType> valuesTimes = {
0.6222234370409501,0.19550794661431156,0.1381442246714991
};
std::vector<DimensionType> innerTimes = {
1,1,2
};
std::vector<OrdinalType> outerTimes = {
0,1,2,3
};
//expected matmul output:
DimensionType rowsMatmul = 3, colsMatmul = 3;
std::vector<DataType> valuesMatmul = {
0.4740549885826949,0.9251142557381598,0.46904439031547324,0.2514523437917555,0.19550794661431156,
0.08458861169526405,0.20943571691119264
};
std::vector<DimensionType> innerMatmul = {
0,1,2,0,1,
1,2
};
std::vector<OrdinalType> outerMatmul = {
0,3,5,7
};
//expected matdiv output:
`
	require.True(t, strings.HasPrefix(string(out), want), "got:\n%s", out)
	require.True(t, strings.HasSuffix(string(out), "};\n----CPP format----\n"))

	// The quotient goes through LAPACK-style LU, so it is compared with a tolerance.
	res, err := g.TestAll(fixture.Params{})
	require.NoError(t, err)
	require.Equal(t, ops.OutcomeInverted, res.Outcome)
	d, err := sparse.ToDense(res.Quotient)
	require.NoError(t, err)
	quotient := mat.NewDense(3, 3, []float64{
		0.3705084052207931, 1.4281166591890984, -0.23175005442535979,
		0.6452547869855022, 0, -0.40360172642507686,
		-0.12858151139371485, 0.21706382131012988, 0.2291854810310278,
	})
	require.True(t, mat.EqualApprox(d, quotient, 1e-12), "matdiv:\n%v", mat.Formatted(d))
}

func TestRenderDeterministic(t *testing.T) {
	g := fixture.NewGenerator()
	for _, name := range fixture.Scenarios() {
		p := fixture.Params{Seed: 0, Permute: true}
		first, err := g.Render(name, p, false, "")
		require.NoError(t, err, name)
		second, err := g.Render(name, p, false, "")
		require.NoError(t, err, name)
		require.Equal(t, first, second, name)
		require.NotEmpty(t, first, name)
	}
}

func TestTransposeGolden(t *testing.T) {
	out, err := fixture.NewGenerator().Render(fixture.NameTranspose, fixture.Params{}, false, "")
	require.NoError(t, err)

	want := `----CPP format----
//CSR Input:
DimensionType rows = 3, cols = 3;
std::vector<DataType> values = {
0.7151893663724195,0.6027633760716439,0.5448831829968969,0.4236547993389047,0.9636627605010293
};
std::vector<DimensionType> inner = {
1,2,0,1,2
};
std::vector<OrdinalType> outer = {
0,2,4,5
};
//CSR Expected:
DimensionType rowsE = 3, colsE = 3;
std::vector<DataType> valuesE = {
0.5448831829968969,0.7151893663724195,0.4236547993389047,0.6027633760716439,0.9636627605010293
};
std::vector<DimensionType> innerE = {
1,0,1,0,2
};
std::vector<OrdinalType> outerE = {
0,1,3,5
};
----CPP format----
`
	require.Equal(t, want, string(out))
}

func TestInvoke2DGolden(t *testing.T) {
	out, err := fixture.NewGenerator().Render(fixture.NameInvoke2D, fixture.Params{}, false, "")
	require.NoError(t, err)

	want := `----Kotlin format----
//input:
val t1 = SparseFloatTensor(Shape(3, 3), listOf(
Pair(intArrayOf(0, 1), 0.7151893663724195f),
Pair(intArrayOf(0, 2), 0.6027633760716439f),
Pair(intArrayOf(1, 0), 0.5448831829968969f),
Pair(intArrayOf(1, 1), 0.4236547993389047f),
Pair(intArrayOf(2, 2), 0.9636627605010293f)))
//expected output:
val shapeExp = Shape(3, 3)
val valuesExp = floatArrayOf(
0.7151893663724195f,0.6027633760716439f,0.5448831829968969f,0.4236547993389047f,0.9636627605010293f
)
val innerExp = intArrayOf(
1,2,0,1,2
)
val outerExp = intArrayOf(
0,2,4,5
)
----Kotlin format----
`
	require.Equal(t, want, string(out))
}

func TestCOOToCSRPermuted(t *testing.T) {
	g := fixture.NewGenerator()
	plain, err := g.COOToCSR(fixture.Params{Rows: 6, Cols: 5, Seed: 4})
	require.NoError(t, err)
	require.True(t, plain.Expected.IsCanonical())
	back, err := sparse.ToCOO(plain.Expected)
	require.NoError(t, err)
	require.True(t, back.Equal(plain.Input))

	perm, err := g.COOToCSR(fixture.Params{Rows: 6, Cols: 5, Seed: 4, Permute: true})
	require.NoError(t, err)
	require.True(t, perm.Permuted)
	require.Equal(t, 17, perm.Input.NNZ())
	require.Equal(t, []int{3, 3, 0, 5, 5, 0, 2, 1, 2, 3, 1, 0, 1, 1, 4, 3, 4}, perm.Input.RowIndices())
	require.Equal(t, []int{3, 1, 1, 3, 1, 0, 2, 4, 1, 4, 0, 2, 1, 2, 0, 0, 2}, perm.Input.ColIndices())
	require.Equal(t, []float64{
		0.044160057931499574, 0.008986097667554982, 0.5472322491757223, 0.7333801675105699,
		0.6007427213777693, 0.9670298390136767, 0.8629932355992223, 0.4347915324044458,
		0.19768507460025309, 0.9566529677142359, 0.21608949558037638, 0.9726843599648843,
		0.9762744547762418, 0.006230255204589863, 0.43614664687979765, 0.5973339439328592,
		0.786305985935061,
	}, perm.Input.Values())
	require.Equal(t, plain.Expected.Indptr(), perm.Expected.Indptr())
	require.ElementsMatch(t, plain.Input.Entries(), perm.Input.Entries())

	// each row lists its columns in the order they appear in the shuffled COO
	for r := 0; r < 6; r++ {
		var want []int
		for _, e := range perm.Input.Entries() {
			if e.Row == r {
				want = append(want, e.Col)
			}
		}
		got, _, err := perm.Expected.Row(r)
		require.NoError(t, err)
		if len(want) == 0 {
			require.Empty(t, got)
			continue
		}
		require.Equal(t, want, got)
	}

	canon, err := sparse.ToCSR(perm.Input)
	require.NoError(t, err)
	require.True(t, canon.Equal(plain.Expected))
}

func TestInverseScenario(t *testing.T) {
	g := fixture.NewGenerator()
	res, err := g.Inverse(fixture.Params{})
	require.NoError(t, err)
	require.Equal(t, ops.OutcomeInverted, res.Outcome)
	require.True(t, res.A.Equal(seedZero(t)))

	prod, err := ops.MatMul(res.A, res.Inv)
	require.NoError(t, err)
	d, err := sparse.ToDense(prod)
	require.NoError(t, err)
	id := mat.NewDiagDense(3, []float64{1, 1, 1})
	require.True(t, mat.EqualApprox(d, id, 1e-12))
}

func TestInverseSingularWarns(t *testing.T) {
	g, logs := logCapture()
	res, err := g.Inverse(fixture.Params{Densities: []float64{0}})
	require.NoError(t, err)
	require.Equal(t, ops.OutcomeSingular, res.Outcome)
	require.Zero(t, res.Inv.NNZ())
	require.Contains(t, logs.String(), "level=WARN")
	require.Contains(t, logs.String(), "not invertible")

	nonSquare, err := g.Inverse(fixture.Params{Rows: 2, Cols: 4})
	require.NoError(t, err)
	require.Equal(t, sparse.Shape{Rows: 4, Cols: 2}, nonSquare.Inv.Shape())
}

func TestMatMul3D(t *testing.T) {
	g, logs := logCapture()
	res, err := g.MatMul3D(fixture.Params{Batch: 3, Rows: 2, Inner: 4, Cols: 3, Densities: []float64{0.5, 0.6}})
	require.NoError(t, err)
	require.Len(t, res.A, 3)
	for i := range res.C {
		require.Equal(t, sparse.Shape{Rows: 2, Cols: 4}, res.A[i].Shape())
		require.Equal(t, sparse.Shape{Rows: 4, Cols: 3}, res.B[i].Shape())
		want, err := ops.MatMul(res.A[i], res.B[i])
		require.NoError(t, err)
		require.True(t, res.C[i].Equal(want))
	}
	require.NotContains(t, logs.String(), "level=WARN")

	_, err = g.MatMul3D(fixture.Params{Batch: 2, Densities: []float64{0.1, 0.2, 0.3}})
	require.NoError(t, err)
	require.Contains(t, logs.String(), "density list length does not fit")

	_, err = g.MatMul3D(fixture.Params{Batch: -1})
	require.ErrorIs(t, err, fixture.ErrInvalidParams)
	require.ErrorIs(t, err, sparse.ErrInvalidArgument)
}

func TestMatDivShapes(t *testing.T) {
	g := fixture.NewGenerator()
	res, err := g.MatDiv(fixture.Params{Rows: 2, Inner: 3, Cols: 3})
	require.NoError(t, err)
	require.Equal(t, sparse.Shape{Rows: 2, Cols: 3}, res.Quotient.Shape())

	_, err = g.MatDiv(fixture.Params{Rows: 2, Inner: 3, Cols: 4})
	require.ErrorIs(t, err, sparse.ErrShapeMismatch)
}

func TestTestAllMatchesParts(t *testing.T) {
	g := fixture.NewGenerator()
	all, err := g.TestAll(fixture.Params{Rows: 4, Seed: 5})
	require.NoError(t, err)
	parts, err := g.AddSubTimes(fixture.Params{Rows: 4, Cols: 4, Seed: 5})
	require.NoError(t, err)
	require.True(t, all.A.Equal(parts.A))
	require.True(t, all.Add.Equal(parts.Add))

	mm, err := ops.MatMul(all.A, all.B)
	require.NoError(t, err)
	require.True(t, all.Product.Equal(mm))
	require.Len(t, all.Sections(), 1)
	require.Len(t, all.Sections()[0].Blocks, 7)
}

func TestRunErrors(t *testing.T) {
	g := fixture.NewGenerator()
	_, err := g.Run("nope", fixture.Params{})
	require.ErrorIs(t, err, fixture.ErrUnknownScenario)

	_, err = g.Run(fixture.NameMatMul, fixture.Params{Rows: -2})
	require.ErrorIs(t, err, builder.ErrBadSize)
	require.ErrorIs(t, err, sparse.ErrInvalidArgument)

	_, err = g.Run(fixture.NameAddSubTimes, fixture.Params{Densities: []float64{1.5}})
	require.ErrorIs(t, err, builder.ErrInvalidProbability)
}

func TestPruneZerosOption(t *testing.T) {
	g := fixture.NewGenerator(fixture.WithOpOptions(ops.WithPruneZeros()))
	res, err := g.AddSubTimes(fixture.Params{Rows: 5, Cols: 5, Seed: 2})
	require.NoError(t, err)
	for _, v := range res.Sub.Values() {
		require.NotZero(t, v)
	}
}

func TestPreviewSection(t *testing.T) {
	out, err := fixture.NewGenerator().Render(fixture.NameMatMul, fixture.Params{}, true, "light")
	require.NoError(t, err)
	require.Contains(t, string(out), "----Table format----")
	require.Contains(t, string(out), "----Kotlin format----")
}

func TestDefaultParams(t *testing.T) {
	p, err := fixture.DefaultParams(fixture.NameMatMul3D)
	require.NoError(t, err)
	require.Equal(t, []float64{fixture.DefaultBatchDensity}, p.Densities)
	require.Equal(t, fixture.DefaultBatch, p.Batch)

	_, err = fixture.DefaultParams("x")
	require.ErrorIs(t, err, fixture.ErrUnknownScenario)
}
