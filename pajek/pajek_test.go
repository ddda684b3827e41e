package pajek_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/katalvlaran/ergm/graph"
	"github.com/katalvlaran/ergm/pajek"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDirected = `*vertices 3
1 "1"
2 "2"
3 "3"
*arcs
1 2
2 3
`

func TestReadDirectedConvertsToZeroBased(t *testing.T) {
	g, err := pajek.Read(strings.NewReader(sampleDirected), graph.Directed)
	require.NoError(t, err)
	assert.Equal(t, 3, g.N())
	arcs := g.AllArcs()
	require.Len(t, arcs, 2)
	assert.True(t, g.IsArc(0, 1))
	assert.True(t, g.IsArc(1, 2))
}

func TestReadMissingVerticesFails(t *testing.T) {
	_, err := pajek.Read(strings.NewReader("*arcs\n1 2\n"), graph.Directed)
	assert.ErrorIs(t, err, pajek.ErrMissingVertices)
}

func TestReadBipartiteUsesSecondCount(t *testing.T) {
	src := "*vertices 4 2\n*edges\n1 3\n2 4\n"
	g, err := pajek.Read(strings.NewReader(src), graph.Bipartite)
	require.NoError(t, err)
	assert.Equal(t, 4, g.N())
	assert.Equal(t, 2, g.NA())
}

func TestVertexCountReadsHeaderOnly(t *testing.T) {
	n, nA, err := pajek.VertexCount(strings.NewReader(sampleDirected))
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, 0, nA)
}

func TestWriteReadRoundTrip(t *testing.T) {
	g := graph.NewDirected(3)
	require.NoError(t, g.InsertArc(0, 1))
	require.NoError(t, g.InsertArc(1, 2))

	var buf bytes.Buffer
	require.NoError(t, pajek.Write(&buf, g))

	g2, err := pajek.Read(&buf, graph.Directed)
	require.NoError(t, err)
	assert.Equal(t, g.N(), g2.N())
	assert.True(t, g2.IsArc(0, 1))
	assert.True(t, g2.IsArc(1, 2))
}
