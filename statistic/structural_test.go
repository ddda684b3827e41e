package statistic_test

import (
	"testing"

	"github.com/katalvlaran/ergm/graph"
	"github.com/katalvlaran/ergm/statistic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArcAndReciprocityDirected(t *testing.T) {
	g := graph.NewDirected(3)
	assert.Equal(t, float64(1), statistic.Arc(g, 0, 1, false))
	assert.Equal(t, float64(0), statistic.Reciprocity(g, 0, 1, false))

	require.NoError(t, g.InsertArc(1, 0))
	assert.Equal(t, float64(1), statistic.Reciprocity(g, 0, 1, false))
}

func TestIsolatesDirected(t *testing.T) {
	g := graph.NewDirected(3)
	// all three nodes isolated; adding 0->1 removes both from the set.
	assert.Equal(t, float64(-2), statistic.Isolates(g, 0, 1, false))

	require.NoError(t, g.InsertArc(0, 1))
	// node 2 remains isolated, 0 and 1 are not; adding 1->2 only removes 2.
	assert.Equal(t, float64(-1), statistic.Isolates(g, 1, 2, false))
}

func TestEdgeAndIsolateEdgesUndirected(t *testing.T) {
	g := graph.NewUndirected(3)
	assert.Equal(t, float64(1), statistic.Edge(g, 0, 1, false))
	assert.Equal(t, float64(-2), statistic.IsolateEdges(g, 0, 1, false))
}

func TestTriangleClosingTwoPath(t *testing.T) {
	// 0-1, 1-2 already present; closing 0-2 completes a triangle, and the
	// two-path count between 0 and 2 should read 1 just before closing.
	g := graph.NewUndirected(3)
	require.NoError(t, g.InsertEdge(0, 1))
	require.NoError(t, g.InsertEdge(1, 2))
	assert.Equal(t, 1, g.TwoPath(0, 2))

	altK := statistic.NewAltKTriangles(2.0)
	delta := altK(g, 0, 2, false)
	assert.Greater(t, delta, 0.0)
}

func TestBipartiteFourCycle(t *testing.T) {
	// a0-b0, a0-b1, a1-b0 present; closing a1-b1 closes a 4-cycle through
	// the shared A-side neighbour a0 (BipartiteAltKCycles keys off ATwoPath).
	g := graph.NewBipartite(4, 2) // 0,1 side A; 2,3 side B
	require.NoError(t, g.InsertEdge(0, 2))
	require.NoError(t, g.InsertEdge(0, 3))
	require.NoError(t, g.InsertEdge(1, 2))

	altCycles := statistic.NewBipartiteAltKCycles(2.0)
	delta := altCycles(g, 1, 3, false)
	assert.Greater(t, delta, 0.0)
}
