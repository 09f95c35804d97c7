package importance_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sixdegrees/importance"
	"github.com/katalvlaran/sixdegrees/separation"
)

// starChainTable is the aggregation of the 7-vertex star-plus-chain graph
// for max degree 6.
func starChainTable() separation.Table {
	zero := make([]separation.Reach, 7)
	return separation.Table{
		{{6, 1}, {1, 1}, {1, 1}, {1, 1}, {1, 1}, {1, 1}, {1, 1}},
		{{0, 0}, {5, 2}, {5, 2}, {5, 2}, {5, 2}, {5, 2}, {5, 2}},
		zero, zero, zero, zero,
	}
}

func TestSelect_StarChain(t *testing.T) {
	got := importance.Select(starChainTable())
	require.Len(t, got, 6)

	want := []*importance.Profile{
		{Degree: 1, Vertex: 0, Reach: []separation.Reach{{6, 1}, {0, 0}, {0, 0}, {0, 0}, {0, 0}, {0, 0}}},
		{Degree: 2, Vertex: 1, Reach: []separation.Reach{{1, 1}, {5, 2}, {0, 0}, {0, 0}, {0, 0}, {0, 0}}},
		nil, nil, nil, nil,
	}
	assert.Equal(t, want, got)
	assert.Equal(t, separation.Reach{Count: 5, AvgDistance: 2}, got[1].At())
}

// TestSelect_WindowPrefersShorterDistance: with 20 sources the window holds
// two entries, and the shorter average beats the larger reach.
func TestSelect_WindowPrefersShorterDistance(t *testing.T) {
	row := make([]separation.Reach, 20)
	row[0] = separation.Reach{Count: 10, AvgDistance: 5}
	row[1] = separation.Reach{Count: 9, AvgDistance: 1}
	row[2] = separation.Reach{Count: 3, AvgDistance: 0.5}

	p := importance.SelectDegree(separation.Table{row}, 1)
	require.NotNil(t, p)
	assert.Equal(t, 1, p.Vertex)

	// A quarter window also admits zero-reach sources, whose average of 0
	// wins and leaves the hop count without an important node.
	assert.Nil(t, importance.SelectDegree(separation.Table{row}, 1, importance.WithCutoffFraction(0.25)))
}

func TestSelect_FullWindow(t *testing.T) {
	row := []separation.Reach{{10, 5}, {9, 1}, {3, 0.5}}

	p := importance.SelectDegree(separation.Table{row}, 1)
	require.NotNil(t, p)
	assert.Equal(t, 0, p.Vertex)

	p = importance.SelectDegree(separation.Table{row}, 1, importance.WithCutoffFraction(1))
	require.NotNil(t, p)
	assert.Equal(t, 2, p.Vertex)
}

// TestSelect_EqualAverageKeepsRankOrder: inside the window an equal average
// does not displace the earlier, higher-reach entry.
func TestSelect_EqualAverageKeepsRankOrder(t *testing.T) {
	row := make([]separation.Reach, 20)
	row[0] = separation.Reach{Count: 10, AvgDistance: 2}
	row[1] = separation.Reach{Count: 9, AvgDistance: 2}

	p := importance.SelectDegree(separation.Table{row}, 1)
	require.NotNil(t, p)
	assert.Equal(t, 0, p.Vertex)
	assert.Equal(t, separation.Reach{Count: 10, AvgDistance: 2}, p.At())

	// Reversed positions: the larger reach still wins and is reported at 1.
	row[0], row[1] = row[1], row[0]
	p = importance.SelectDegree(separation.Table{row}, 1)
	require.NotNil(t, p)
	assert.Equal(t, 1, p.Vertex)
}

// TestSelect_LowestIndexWinsIdenticalPairs: the reported vertex is the first
// position holding the winning pair.
func TestSelect_LowestIndexWinsIdenticalPairs(t *testing.T) {
	row := []separation.Reach{{1, 4}, {3, 2}, {2, 1}, {3, 2}}

	p := importance.SelectDegree(separation.Table{row}, 1)
	require.NotNil(t, p)
	assert.Equal(t, 1, p.Vertex)
}

// TestSelect_ZeroCountWinnerIsAbsent: the shortest average in the window
// belongs to a zero-reach source, so the hop count has no important node.
func TestSelect_ZeroCountWinnerIsAbsent(t *testing.T) {
	row := make([]separation.Reach, 20)
	row[5] = separation.Reach{Count: 4, AvgDistance: 3}

	assert.Nil(t, importance.SelectDegree(separation.Table{row}, 1))
}

func TestSelect_Degenerate(t *testing.T) {
	assert.Empty(t, importance.Select(separation.Table{}))

	got := importance.Select(separation.Table{{}, {}})
	assert.Equal(t, []*importance.Profile{nil, nil}, got)

	assert.Nil(t, importance.SelectDegree(starChainTable(), 0))
	assert.Nil(t, importance.SelectDegree(starChainTable(), 7))
}

func TestSelect_PresentProfilesHavePositiveReach(t *testing.T) {
	for _, p := range importance.Select(starChainTable()) {
		if p == nil {
			continue
		}
		assert.Positive(t, p.At().Count)
		assert.Len(t, p.Reach, 6)
	}
}

func TestCutoff(t *testing.T) {
	tests := []struct {
		n    int
		f    float64
		want int
	}{
		{0, 0.1, 1},
		{1, 0.1, 1},
		{7, 0.1, 1},
		{10, 0.1, 1},
		{11, 0.1, 2},
		{20, 0.1, 2},
		{20, 0.5, 10},
		{3, 1, 3},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, importance.Cutoff(tc.n, tc.f), "n=%d f=%g", tc.n, tc.f)
	}
}

type ctxKey struct{}

func TestWithContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), ctxKey{}, "run-7")

	o := importance.DefaultOptions()
	importance.WithContext(ctx)(&o)
	assert.Equal(t, "run-7", o.Ctx.Value(ctxKey{}))

	importance.WithContext(nil)(&o)
	assert.Equal(t, "run-7", o.Ctx.Value(ctxKey{}))

	got := importance.Select(starChainTable(), importance.WithContext(ctx))
	require.Len(t, got, 6)
	assert.Equal(t, 0, got[0].Vertex)
}

func TestWithCutoffFraction_Panics(t *testing.T) {
	assert.Panics(t, func() { importance.WithCutoffFraction(0) })
	assert.Panics(t, func() { importance.WithCutoffFraction(1.5) })
	assert.NotPanics(t, func() { importance.WithCutoffFraction(0.25) })
}
