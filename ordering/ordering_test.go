package ordering_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arbor-graph/arbor/core"
	"github.com/arbor-graph/arbor/goalset"
	"github.com/arbor-graph/arbor/ordering"
)

func fullModes(k int) *goalset.ModeBits {
	top := goalset.Mode(goalset.FullMask(k))
	mb := goalset.NewModeBits(k)
	for m := goalset.Mode(1); m < top; m++ {
		mb.Set(m)
	}

	return mb
}

func TestOrder_LineGraph(t *testing.T) {
	g := core.NewGraph()
	cap_ := core.BidiCapacity{Ingress: core.Range{Min: 0, Max: 10}, Egress: core.Range{Min: 0, Max: 10}}
	eAB, err := g.AddEdge("A", "B", 1, cap_)
	require.NoError(t, err)
	eBC, err := g.AddEdge("B", "C", 1, cap_)
	require.NoError(t, err)

	modes := map[*core.Edge]*goalset.ModeBits{eAB: fullModes(2), eBC: fullModes(2)}

	order, err := ordering.Order(g, []string{"A", "C"}, modes)
	require.NoError(t, err)
	assert.Equal(t, []*core.Edge{eBC, eAB}, order)
}

func TestOrder_ChainPutsGoalAdjacentEdgesLast(t *testing.T) {
	g := core.NewGraph()
	cap_ := core.BidiCapacity{Ingress: core.Range{Min: 0, Max: 10}, Egress: core.Range{Min: 0, Max: 10}}
	eAx1, err := g.AddEdge("A", "x1", 1, cap_)
	require.NoError(t, err)
	eX1X2, err := g.AddEdge("x1", "x2", 1, cap_)
	require.NoError(t, err)
	eX2B, err := g.AddEdge("x2", "B", 1, cap_)
	require.NoError(t, err)

	modes := map[*core.Edge]*goalset.ModeBits{eAx1: fullModes(2), eX1X2: fullModes(2), eX2B: fullModes(2)}

	order, err := ordering.Order(g, []string{"A", "B"}, modes)
	require.NoError(t, err)
	assert.Equal(t, []*core.Edge{eX1X2, eX2B, eAx1}, order)
}

func TestOrder_DisconnectedEdgeSortsFirst(t *testing.T) {
	g := core.NewGraph()
	cap_ := core.BidiCapacity{Ingress: core.Range{Min: 0, Max: 10}, Egress: core.Range{Min: 0, Max: 10}}
	eAB, err := g.AddEdge("A", "B", 1, cap_)
	require.NoError(t, err)
	eXY, err := g.AddEdge("X", "Y", 1, cap_)
	require.NoError(t, err)

	modes := map[*core.Edge]*goalset.ModeBits{eAB: fullModes(2), eXY: fullModes(2)}

	order, err := ordering.Order(g, []string{"A"}, modes)
	require.NoError(t, err)
	require.Len(t, order, 2)
	assert.Equal(t, eXY, order[0])
	assert.Equal(t, eAB, order[1])
}

func TestOrder_RejectsDuplicateAndMissingGoal(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("A"))

	_, err := ordering.Order(g, []string{"A", "A"}, nil)
	require.ErrorIs(t, err, ordering.ErrDuplicateGoal)

	_, err = ordering.Order(g, []string{"missing"}, nil)
	require.ErrorIs(t, err, ordering.ErrGoalNotFound)
}
