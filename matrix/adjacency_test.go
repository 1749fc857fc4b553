// Package matrix_test exercises the dense adjacency views, using
// compressed-graph/builder fixtures and table-driven, parallel tests.
package matrix_test

import (
	"math"
	"testing"

	"github.com/ornata/compressed-graph/builder"
	"github.com/ornata/compressed-graph/core"
	"github.com/ornata/compressed-graph/matrix"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// V is the default fixture size.
const V = 8

// TestToSymDense_RoundTrip checks ToSymDense -> FromMatrix reproduces the graph.
func TestToSymDense_RoundTrip(t *testing.T) {
	t.Parallel()
	g, err := builder.BuildGraph(V, []builder.BuilderOption{builder.WithSeed(3)}, builder.RandomSparse(V, 0.5))
	require.NoError(t, err)

	a, err := matrix.ToSymDense(g)
	require.NoError(t, err)
	require.Equal(t, V, a.SymmetricDim())
	for u := 0; u < V; u++ {
		for v := 0; v < V; v++ {
			want := 0.0
			if g.IsEdge(u, v) {
				want = 1
			}
			require.Equal(t, want, a.At(u, v), "A[%d][%d]", u, v)
		}
	}

	back, err := matrix.FromMatrix(a)
	require.NoError(t, err)
	require.True(t, back.Equal(g))
}

// TestToSymDense_Errors checks nil and empty graphs.
func TestToSymDense_Errors(t *testing.T) {
	t.Parallel()
	_, err := matrix.ToSymDense(nil)
	require.ErrorIs(t, err, matrix.ErrGraphNil)
	_, err = matrix.ToSymDense(core.NewGraph(0))
	require.ErrorIs(t, err, matrix.ErrBadShape)
	_, err = matrix.Laplacian(nil)
	require.ErrorIs(t, err, matrix.ErrGraphNil)
}

// TestFromMatrix_Validation covers every rejection sentinel.
func TestFromMatrix_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		m    mat.Matrix
		want error
	}{
		{"NonSquare", mat.NewDense(2, 3, nil), matrix.ErrNonSquare},
		{"NaN", mat.NewDense(2, 2, []float64{0, math.NaN(), 0, 0}), matrix.ErrNaNInf},
		{"Inf", mat.NewDense(2, 2, []float64{0, math.Inf(1), math.Inf(1), 0}), matrix.ErrNaNInf},
		{"Weighted", mat.NewDense(2, 2, []float64{0, 2, 2, 0}), matrix.ErrNonBinary},
		{"Loop", mat.NewDense(2, 2, []float64{1, 0, 0, 0}), matrix.ErrNonZeroDiagonal},
		{"Directed", mat.NewDense(2, 2, []float64{0, 1, 0, 0}), matrix.ErrAsymmetry},
		{"Nil", nil, matrix.ErrBadShape},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := matrix.FromMatrix(tc.m)
			require.Nil(t, g)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

// TestLaplacian_RowSums checks that every Laplacian row sums to zero and the
// diagonal carries the degrees.
func TestLaplacian_RowSums(t *testing.T) {
	t.Parallel()
	g, err := builder.BuildGraph(V, nil, builder.Wheel(V))
	require.NoError(t, err)

	l, err := matrix.Laplacian(g)
	require.NoError(t, err)
	for u := 0; u < V; u++ {
		sum := 0.0
		for v := 0; v < V; v++ {
			sum += l.At(u, v)
		}
		require.Zero(t, sum, "row %d", u)
		require.Equal(t, float64(g.Degree(u)), l.At(u, u))
	}
}
