package separation_test

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sixdegrees/graph"
)

// buildAdjacency symmetrizes the given undirected edges and builds the list.
func buildAdjacency(t testing.TB, edges [][3]float64) graph.AdjacencyList {
	t.Helper()
	g := &graph.WeightedGraph{}
	for _, e := range edges {
		require.NoError(t, g.AddUndirected(int(e[0]), int(e[1]), e[2]))
	}
	adj, err := graph.NewAdjacencyList(g)
	require.NoError(t, err)

	return adj
}

// starChain is the 7-vertex fixture: hub 0 joined to 1..6 at length 1, plus
// a chain of length-5 edges among 1..6.
func starChain(t testing.TB) graph.AdjacencyList {
	return buildAdjacency(t, [][3]float64{
		{0, 1, 1}, {0, 2, 1}, {0, 3, 1}, {0, 4, 1}, {0, 5, 1}, {0, 6, 1},
		{1, 2, 5}, {2, 3, 5}, {2, 4, 5}, {3, 4, 5}, {3, 5, 5}, {4, 5, 5}, {4, 6, 5}, {5, 6, 5},
	})
}

// discardLogger keeps run summaries out of example output.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
