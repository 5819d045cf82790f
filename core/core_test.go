package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arbor-graph/arbor/core"
)

func unitCap() core.BidiCapacity {
	return core.BidiCapacity{
		Ingress: core.Range{Min: 0, Max: 10},
		Egress:  core.Range{Min: 0, Max: 10},
	}
}

func TestAddVertex_EmptyID(t *testing.T) {
	g := core.NewGraph()
	require.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)
}

func TestAddVertex_Idempotent(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddVertex("A"))
	assert.Equal(t, 1, g.VertexCount())
}

func TestAddEdge_BadCost(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("A", "B", 0, unitCap())
	require.ErrorIs(t, err, core.ErrBadCost)
}

func TestAddEdge_BadRange(t *testing.T) {
	g := core.NewGraph()
	bad := core.BidiCapacity{Ingress: core.Range{Min: 5, Max: 1}, Egress: core.Range{Min: 0, Max: 1}}
	_, err := g.AddEdge("A", "B", 1, bad)
	require.ErrorIs(t, err, core.ErrBadRange)
}

func TestAddEdge_LoopRejectedByDefault(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("A", "A", 1, unitCap())
	require.ErrorIs(t, err, core.ErrLoopNotAllowed)
}

func TestAddEdge_LoopAllowedWithOption(t *testing.T) {
	g := core.NewGraph(core.WithLoops())
	e, err := g.AddEdge("A", "A", 1, unitCap())
	require.NoError(t, err)
	assert.Equal(t, "A", e.From)
	assert.Equal(t, "A", e.To)
}

func TestAddEdge_ParallelEdgesAreDistinct(t *testing.T) {
	g := core.NewGraph()
	e1, err := g.AddEdge("A", "B", 1, unitCap())
	require.NoError(t, err)
	e2, err := g.AddEdge("A", "B", 2, unitCap())
	require.NoError(t, err)

	assert.NotSame(t, e1, e2)
	assert.Equal(t, 2, g.EdgeCount())
}

func TestNeighbors_BidirectionalAndSorted(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("A", "B", 3, unitCap())
	require.NoError(t, err)
	_, err = g.AddEdge("B", "A", 1, unitCap())
	require.NoError(t, err)

	neighA, err := g.Neighbors("A")
	require.NoError(t, err)
	require.Len(t, neighA, 2)
	assert.Less(t, neighA[0].Index, neighA[1].Index)

	neighB, err := g.Neighbors("B")
	require.NoError(t, err)
	assert.Len(t, neighB, 2)
}

func TestNeighbors_UnknownVertex(t *testing.T) {
	g := core.NewGraph()
	_, err := g.Neighbors("nope")
	require.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestEdges_DeterministicOrder(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 1, unitCap())
	_, _ = g.AddEdge("B", "C", 1, unitCap())
	_, _ = g.AddEdge("C", "A", 1, unitCap())

	edges := g.Edges()
	require.Len(t, edges, 3)
	for i := 1; i < len(edges); i++ {
		assert.Less(t, edges[i-1].Index, edges[i].Index)
	}
}

func TestClone_IsIndependent(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("A", "B", 1, unitCap())
	require.NoError(t, err)

	clone := g.Clone()
	_, err = g.AddEdge("B", "C", 1, unitCap())
	require.NoError(t, err)

	assert.Equal(t, 2, g.EdgeCount())
	assert.Equal(t, 1, clone.EdgeCount())
}

func TestCloneEmpty_PreservesVerticesNotEdges(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("A", "B", 1, unitCap())
	require.NoError(t, err)

	clone := g.CloneEmpty()
	assert.Equal(t, 2, clone.VertexCount())
	assert.Equal(t, 0, clone.EdgeCount())
}

func TestFromEdges_PreservesIdentityAndBuildsAdjacency(t *testing.T) {
	src := core.NewGraph()
	eAB, err := src.AddEdge("A", "B", 1, unitCap())
	require.NoError(t, err)
	eBC, err := src.AddEdge("B", "C", 2, unitCap())
	require.NoError(t, err)

	g := core.FromEdges([]*core.Edge{eAB, eBC})

	assert.Equal(t, 3, g.VertexCount())
	assert.Equal(t, 2, g.EdgeCount())

	neighborsB, err := g.Neighbors("B")
	require.NoError(t, err)
	require.Len(t, neighborsB, 2)
	assert.Same(t, eAB, neighborsB[0])
	assert.Same(t, eBC, neighborsB[1])
}

func TestFromEdges_NextIndexContinuesPastMax(t *testing.T) {
	src := core.NewGraph()
	_, err := src.AddEdge("A", "B", 1, unitCap())
	require.NoError(t, err)
	eBC, err := src.AddEdge("B", "C", 1, unitCap())
	require.NoError(t, err)

	g := core.FromEdges([]*core.Edge{eBC})
	added, err := g.AddEdge("C", "D", 1, unitCap())
	require.NoError(t, err)
	assert.Greater(t, added.Index, eBC.Index)
}
