package matrix_test

import (
	"testing"

	"github.com/ornata/compressed-graph/builder"
	"github.com/ornata/compressed-graph/core"
	"github.com/ornata/compressed-graph/matrix"
	"github.com/stretchr/testify/require"
)

const eps = 1e-9

func requireSpectrum(t *testing.T, want, got []float64) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		require.InDelta(t, want[i], got[i], eps, "eigenvalue %d", i)
	}
}

// TestSpectrum_Complete checks spectrum(K_n) = {-1^(n-1), n-1}.
func TestSpectrum_Complete(t *testing.T) {
	t.Parallel()
	g, err := builder.BuildGraph(5, nil, builder.Complete(5))
	require.NoError(t, err)

	got, err := matrix.Spectrum(g)
	require.NoError(t, err)
	requireSpectrum(t, []float64{-1, -1, -1, -1, 4}, got)
}

// TestSpectrum_Cycle checks spectrum(C_4) = {-2, 0, 0, 2}.
func TestSpectrum_Cycle(t *testing.T) {
	t.Parallel()
	g, err := builder.BuildGraph(4, nil, builder.Cycle(4))
	require.NoError(t, err)

	got, err := matrix.Spectrum(g)
	require.NoError(t, err)
	requireSpectrum(t, []float64{-2, 0, 0, 2}, got)
}

// TestLaplacianSpectrum_Components checks the zero multiplicity on two
// disjoint edges.
func TestLaplacianSpectrum_Components(t *testing.T) {
	t.Parallel()
	g := core.NewGraph(4)
	g.AddEdge(0, 1)
	g.AddEdge(2, 3)

	got, err := matrix.LaplacianSpectrum(g)
	require.NoError(t, err)
	requireSpectrum(t, []float64{0, 0, 2, 2}, got)

	_, err = matrix.Spectrum(core.NewGraph(0))
	require.ErrorIs(t, err, matrix.ErrBadShape)
}
