package topogen

import "github.com/arbor-graph/arbor/core"

func mustAddEdge(g *core.Graph, from, to string, cost float64, capacity core.BidiCapacity) *core.Edge {
	e, err := g.AddEdge(from, to, cost, capacity)
	if err != nil {
		panic("topogen: " + err.Error())
	}

	return e
}

// Line builds the three-vertex path A-B-C with unit edge costs, spec §8
// scenario 1's graph. Returns the graph and its two edges in A-B, B-C
// order.
func Line(capacity core.BidiCapacity) (*core.Graph, []*core.Edge) {
	g := core.NewGraph()
	eAB := mustAddEdge(g, "A", "B", 1, capacity)
	eBC := mustAddEdge(g, "B", "C", 1, capacity)

	return g, []*core.Edge{eAB, eBC}
}

// ParallelEdges builds two vertices A, B joined by two distinct edges of
// the given costs, spec §8 scenario 2's graph. Returns the graph and the
// two edges in (cost1, cost2) order.
func ParallelEdges(cost1, cost2 float64, capacity core.BidiCapacity) (*core.Graph, []*core.Edge) {
	g := core.NewGraph()
	e1 := mustAddEdge(g, "A", "B", cost1, capacity)
	e2 := mustAddEdge(g, "A", "B", cost2, capacity)

	return g, []*core.Edge{e1, e2}
}

// Triangle builds three vertices A, B, C joined pairwise by unit-cost
// edges, spec §8 scenario 3's graph (also the base for scenario 4's
// capacity-starvation variant — pass a tight capacity for the edge under
// test and ample capacity for the other two). Returns the graph and its
// edges in A-B, B-C, C-A order.
func Triangle(capAB, capBC, capCA core.BidiCapacity) (*core.Graph, []*core.Edge) {
	g := core.NewGraph()
	eAB := mustAddEdge(g, "A", "B", 1, capAB)
	eBC := mustAddEdge(g, "B", "C", 1, capBC)
	eCA := mustAddEdge(g, "C", "A", 1, capCA)

	return g, []*core.Edge{eAB, eBC, eCA}
}

// ChainWithShortcut builds the long chain A-x1-x2-...-xn-B (n intermediate
// vertices, unit edge costs) plus a single shortcut edge A-B of the given
// cost, spec §8 scenario 5's graph. Returns the graph, the chain edges in
// A-to-B order, and the shortcut edge.
func ChainWithShortcut(n int, chainCapacity core.BidiCapacity, shortcutCost float64, shortcutCapacity core.BidiCapacity) (*core.Graph, []*core.Edge, *core.Edge) {
	if n < 1 {
		panic("topogen: ChainWithShortcut requires n >= 1 intermediate vertex")
	}

	g := core.NewGraph()
	chain := make([]*core.Edge, 0, n+1)

	prev := "A"
	for i := 1; i <= n; i++ {
		next := intermediateID(i)
		chain = append(chain, mustAddEdge(g, prev, next, 1, chainCapacity))
		prev = next
	}
	chain = append(chain, mustAddEdge(g, prev, "B", 1, chainCapacity))

	shortcut := mustAddEdge(g, "A", "B", shortcutCost, shortcutCapacity)

	return g, chain, shortcut
}

func intermediateID(i int) string {
	const letters = "abcdefghijklmnopqrstuvwxyz"
	if i-1 < len(letters) {
		return "x" + string(letters[i-1])
	}

	return "x" + string(rune('0'+i))
}
