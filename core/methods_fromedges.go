package core

// FromEdges builds a Graph whose adjacency view indexes the given edges
// directly, preserving their identity (the same *Edge pointers are stored,
// never copied or recreated). This is the bridge between a flat,
// caller-owned edge list — the plotter's external contract — and the
// Neighbors/HasVertex-based traversal the rest of the package relies on.
//
// Unlike AddEdge, FromEdges does not validate cost, capacity, or the
// self-loop policy: the edges are assumed already well-formed, since they
// are the caller's own long-lived objects rather than ones this package
// is being asked to construct.
func FromEdges(edges []*Edge, opts ...GraphOption) *Graph {
	g := NewGraph(opts...)
	for _, e := range edges {
		_ = g.AddVertex(e.From)
		_ = g.AddVertex(e.To)
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	maxIndex := -1
	for _, e := range edges {
		g.edges = append(g.edges, e)
		g.adjacency[e.From] = append(g.adjacency[e.From], e)
		if e.To != e.From {
			g.adjacency[e.To] = append(g.adjacency[e.To], e)
		}
		if e.Index > maxIndex {
			maxIndex = e.Index
		}
	}
	g.nextIndex = maxIndex + 1

	return g
}
