package core

// AddEdge creates a new edge between from and to with the given cost and
// capacity. Both endpoints are created if absent (AddVertex is idempotent).
// Parallel edges between the same pair are always allowed; the returned
// *Edge is the identity callers key result maps on.
//
// Returns ErrEmptyVertexID, ErrBadCost (cost <= 0), ErrBadRange (an
// Ingress/Egress range with Min > Max or Min < 0), or ErrLoopNotAllowed
// (from == to and the graph was not built WithLoops()).
func (g *Graph) AddEdge(from, to string, cost float64, capacity BidiCapacity) (*Edge, error) {
	if from == "" || to == "" {
		return nil, ErrEmptyVertexID
	}
	if cost <= 0 {
		return nil, ErrBadCost
	}
	if !capacity.Ingress.Valid() || !capacity.Egress.Valid() {
		return nil, ErrBadRange
	}
	if from == to && !g.Looped() {
		return nil, ErrLoopNotAllowed
	}

	if err := g.AddVertex(from); err != nil {
		return nil, err
	}
	if err := g.AddVertex(to); err != nil {
		return nil, err
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	e := &Edge{
		Index:    g.nextIndex,
		From:     from,
		To:       to,
		Cost:     cost,
		Capacity: capacity,
	}
	g.nextIndex++
	g.edges = append(g.edges, e)
	g.adjacency[from] = append(g.adjacency[from], e)
	if to != from {
		g.adjacency[to] = append(g.adjacency[to], e)
	}

	return e, nil
}

// HasEdge reports whether at least one edge links from and to (in either
// direction, since the graph is bidirectional).
func (g *Graph) HasEdge(from, to string) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	for _, e := range g.adjacency[from] {
		if other(e, from) == to {
			return true
		}
	}

	return false
}

// Edges returns every edge in insertion order, which for a graph built by
// AddEdge is Index ascending; a graph built by FromEdges keeps the order of
// the slice it was given (spec §9 forbids ordering by textual rendering).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]*Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// other returns the endpoint of e that is not v. If e is a self-loop,
// other returns v itself.
func other(e *Edge, v string) string {
	if e.From == v {
		return e.To
	}

	return e.From
}
