package translator_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/arbor-graph/arbor/core"
	"github.com/arbor-graph/arbor/demand"
	"github.com/arbor-graph/arbor/edgemode"
	"github.com/arbor-graph/arbor/goalset"
	"github.com/arbor-graph/arbor/ordering"
	"github.com/arbor-graph/arbor/translator"
)

func ampleCap() core.BidiCapacity {
	return core.BidiCapacity{Ingress: core.Range{Min: 0, Max: 10}, Egress: core.Range{Min: 0, Max: 10}}
}

func TestTranslate_LineGraph(t *testing.T) {
	g := core.NewGraph()
	eAB, err := g.AddEdge("A", "B", 1, ampleCap())
	require.NoError(t, err)
	eBC, err := g.AddEdge("B", "C", 1, ampleCap())
	require.NoError(t, err)

	want := core.Range{Min: 1, Max: 1}
	dem := demand.NewFlat(2, want)
	goals := edgemode.GoalIndex{"A": 0, "C": 1}

	modes, err := edgemode.Enumerate(g.Edges(), dem, goals)
	require.NoError(t, err)

	order, err := ordering.Order(g, []string{"A", "C"}, modes)
	require.NoError(t, err)

	digits := make([]int, len(order))
	for i := range order {
		digits[i] = 1
	}

	result, err := translator.Translate(order, modes, dem, digits)
	require.NoError(t, err)

	wantResult := map[*core.Edge]core.BidiCapacity{
		eAB: {Ingress: want, Egress: want},
		eBC: {Ingress: want, Egress: want},
	}
	if diff := cmp.Diff(wantResult, result); diff != "" {
		t.Fatalf("translate mismatch (-want +got):\n%s", diff)
	}
}

func TestTranslate_UnusedEdgeOmittedFromResult(t *testing.T) {
	g := core.NewGraph()
	eAB, err := g.AddEdge("A", "B", 1, ampleCap())
	require.NoError(t, err)
	eBC, err := g.AddEdge("B", "C", 1, ampleCap())
	require.NoError(t, err)

	dem := demand.NewFlat(2, core.Range{Min: 1, Max: 1})
	goals := edgemode.GoalIndex{"A": 0, "C": 1}

	modes, err := edgemode.Enumerate(g.Edges(), dem, goals)
	require.NoError(t, err)

	order, err := ordering.Order(g, []string{"A", "C"}, modes)
	require.NoError(t, err)

	digits := make([]int, len(order))

	for i, e := range order {
		if e == eAB {
			digits[i] = 1
		}
		// eBC stays at digit 0: unused
	}

	result, err := translator.Translate(order, modes, dem, digits)
	require.NoError(t, err)

	_, hasAB := result[eAB]
	_, hasBC := result[eBC]
	require.True(t, hasAB)
	require.False(t, hasBC)
}

func TestTranslate_RejectsMismatchedDigitLength(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("A", "B", 1, ampleCap())
	require.NoError(t, err)

	dem := demand.NewFlat(2, core.Range{Min: 1, Max: 1})
	goals := edgemode.GoalIndex{"A": 0, "B": 1}

	modes, err := edgemode.Enumerate(g.Edges(), dem, goals)
	require.NoError(t, err)

	order, err := ordering.Order(g, []string{"A", "B"}, modes)
	require.NoError(t, err)

	_, err = translator.Translate(order, modes, dem, []int{})
	require.ErrorIs(t, err, translator.ErrDigitVectorLength)
}

func TestTranslate_EmptyModeBitsIgnored(t *testing.T) {
	// A sanity check that an edge with no surviving modes can never be
	// assigned a nonzero digit by a correctly-built enumerator, but
	// Translate should not panic if asked to translate digit 0 for it.
	g := core.NewGraph()
	eAB, err := g.AddEdge("A", "B", 1, ampleCap())
	require.NoError(t, err)

	modes := map[*core.Edge]*goalset.ModeBits{eAB: goalset.NewModeBits(2)}
	dem := demand.NewFlat(2, core.Range{Min: 1, Max: 1})

	result, err := translator.Translate([]*core.Edge{eAB}, modes, dem, []int{0})
	require.NoError(t, err)
	require.Empty(t, result)
}
