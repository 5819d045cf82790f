package topogen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arbor-graph/arbor/core"
	"github.com/arbor-graph/arbor/topogen"
)

func ampleCap() core.BidiCapacity {
	return core.BidiCapacity{Ingress: core.Range{Min: 0, Max: 10}, Egress: core.Range{Min: 0, Max: 10}}
}

func TestLine_HasThreeVerticesTwoEdges(t *testing.T) {
	g, edges := topogen.Line(ampleCap())
	assert.Equal(t, 3, g.VertexCount())
	require.Len(t, edges, 2)
	assert.Equal(t, "A", edges[0].From)
	assert.Equal(t, "B", edges[0].To)
	assert.Equal(t, "B", edges[1].From)
	assert.Equal(t, "C", edges[1].To)
}

func TestParallelEdges_DistinctCosts(t *testing.T) {
	g, edges := topogen.ParallelEdges(1, 2, ampleCap())
	assert.Equal(t, 2, g.VertexCount())
	require.Len(t, edges, 2)
	assert.Equal(t, 1.0, edges[0].Cost)
	assert.Equal(t, 2.0, edges[1].Cost)
	assert.NotSame(t, edges[0], edges[1])
}

func TestTriangle_ThreeEdgesCycle(t *testing.T) {
	g, edges := topogen.Triangle(ampleCap(), ampleCap(), ampleCap())
	assert.Equal(t, 3, g.VertexCount())
	require.Len(t, edges, 3)
}

func TestChainWithShortcut_ChainLengthMatchesN(t *testing.T) {
	g, chain, shortcut := topogen.ChainWithShortcut(2, ampleCap(), 1.5, ampleCap())
	assert.Equal(t, 4, g.VertexCount()) // A, xa, xb, B
	require.Len(t, chain, 3)            // A-xa, xa-xb, xb-B
	assert.Equal(t, "A", chain[0].From)
	assert.Equal(t, "B", chain[len(chain)-1].To)
	assert.Equal(t, 1.5, shortcut.Cost)
	assert.Equal(t, "A", shortcut.From)
	assert.Equal(t, "B", shortcut.To)
}
