package graph_test

import (
	"testing"

	"github.com/katalvlaran/ergm/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectedArcLifecycle(t *testing.T) {
	g := graph.NewDirected(4)

	require.NoError(t, g.InsertArc(0, 1))
	assert.True(t, g.IsArc(0, 1))
	assert.False(t, g.IsArc(1, 0))
	assert.Equal(t, 1, g.ArcCount())
	assert.Equal(t, 1, g.OutDegree(0))
	assert.Equal(t, 1, g.InDegree(1))

	assert.ErrorIs(t, g.InsertArc(0, 1), graph.ErrArcExists)

	require.NoError(t, g.RemoveArc(0, 1))
	assert.False(t, g.IsArc(0, 1))
	assert.Equal(t, 0, g.ArcCount())
	assert.ErrorIs(t, g.RemoveArc(0, 1), graph.ErrArcNotFound)
}

func TestDirectedLoopsRequireOption(t *testing.T) {
	g := graph.NewDirected(3)
	assert.ErrorIs(t, g.InsertArc(1, 1), graph.ErrLoopNotAllowed)

	gl := graph.NewDirected(3, graph.WithLoops())
	require.NoError(t, gl.InsertArc(1, 1))
	assert.True(t, gl.IsArc(1, 1))
}

func TestUndirectedEdgeSymmetry(t *testing.T) {
	g := graph.NewUndirected(3)
	require.NoError(t, g.InsertEdge(0, 2))
	assert.True(t, g.IsEdge(0, 2))
	assert.True(t, g.IsEdge(2, 0))
	assert.Equal(t, 1, g.Degree(0))
	assert.Equal(t, 1, g.Degree(2))

	assert.ErrorIs(t, g.InsertEdge(2, 0), graph.ErrEdgeExists)
	require.NoError(t, g.RemoveEdge(2, 0))
	assert.Equal(t, 0, g.EdgeCount())
}

func TestBipartiteRejectsIntraModeEdge(t *testing.T) {
	g := graph.NewBipartite(5, 2) // nodes 0,1 side A; 2,3,4 side B
	require.NoError(t, g.InsertEdge(0, 2))
	assert.ErrorIs(t, g.InsertEdge(0, 1), graph.ErrIntraModeEdge)
	assert.ErrorIs(t, g.InsertEdge(2, 3), graph.ErrIntraModeEdge)
}

func TestDirectedTwoPathMaintenance(t *testing.T) {
	// 0->1, 1->2: a transitive two-path 0~2 via 1.
	g := graph.NewDirected(3)
	require.NoError(t, g.InsertArc(0, 1))
	require.NoError(t, g.InsertArc(1, 2))
	assert.Equal(t, 1, g.Mix2P(0, 2))

	require.NoError(t, g.RemoveArc(1, 2))
	assert.Equal(t, 0, g.Mix2P(0, 2))
}

func TestUndirectedTwoPathMaintenance(t *testing.T) {
	g := graph.NewUndirected(3)
	require.NoError(t, g.InsertEdge(0, 1))
	require.NoError(t, g.InsertEdge(1, 2))
	assert.Equal(t, 1, g.TwoPath(0, 2))

	require.NoError(t, g.RemoveEdge(0, 1))
	assert.Equal(t, 0, g.TwoPath(0, 2))
}

func TestReciprocityForbidden(t *testing.T) {
	g := graph.NewDirected(2, graph.WithReciprocityForbidden())
	assert.True(t, g.ForbidReciprocity())
}

func TestDyadCount(t *testing.T) {
	gd := graph.NewDirected(4)
	assert.Equal(t, 4*3, gd.DyadCount())

	gu := graph.NewUndirected(4)
	assert.Equal(t, 4*3/2, gu.DyadCount())

	gb := graph.NewBipartite(5, 2)
	assert.Equal(t, 2*3, gb.DyadCount())
}
