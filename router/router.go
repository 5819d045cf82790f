package router

import (
	"math"

	"github.com/arbor-graph/arbor/core"
	"github.com/arbor-graph/arbor/goalset"
)

// Prune runs the shortest-path bias pruner (spec §4.3) to a fixpoint,
// shrinking modes in place and removing edges whose viable-mode set
// becomes empty. goalOrder assigns goal i to goalOrder[i]; every vertex
// named there must exist in graph and appear at most once.
//
// modes is mutated: callers should treat the returned map as the only
// valid view afterward, and must not reuse the map passed in.
func Prune(graph *core.Graph, goalOrder []string, modes map[*core.Edge]*goalset.ModeBits, opts ...Option) (map[*core.Edge]*goalset.ModeBits, error) {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	seen := make(map[string]bool, len(goalOrder))
	for _, v := range goalOrder {
		if seen[v] {
			return nil, ErrDuplicateGoal
		}
		seen[v] = true
		if !graph.HasVertex(v) {
			return nil, ErrGoalNotFound
		}
	}

	k := len(goalOrder)
	s := newState(graph, goalOrder, modes, cfg.Threshold, k)
	s.run()

	return s.modes, nil
}

type state struct {
	graph     *core.Graph
	goals     []string
	modes     map[*core.Edge]*goalset.ModeBits
	threshold float64
	k         int

	dist    map[vertexGoal]float64
	hasDist map[vertexGoal]bool

	distQueue  []vertexGoal
	distQueued map[vertexGoal]bool

	edgeQueue  []edgeGoal
	edgeQueued map[edgeGoal]bool
}

func newState(graph *core.Graph, goals []string, modes map[*core.Edge]*goalset.ModeBits, threshold float64, k int) *state {
	return &state{
		graph:      graph,
		goals:      goals,
		modes:      modes,
		threshold:  threshold,
		k:          k,
		dist:       make(map[vertexGoal]float64),
		hasDist:    make(map[vertexGoal]bool),
		distQueued: make(map[vertexGoal]bool),
		edgeQueued: make(map[edgeGoal]bool),
	}
}

func (s *state) run() {
	for gi, gv := range s.goals {
		s.setDist(vertexGoal{vertex: gv, goal: gi}, 0)

		neighbors, _ := s.graph.Neighbors(gv)
		for _, e := range neighbors {
			other := otherEndpoint(e, gv)
			s.enqueueDist(vertexGoal{vertex: other, goal: gi})
		}
	}

	for len(s.distQueue) > 0 || len(s.edgeQueue) > 0 {
		for len(s.distQueue) > 0 {
			vg := s.popDist()
			s.relax(vg)
		}
		if len(s.edgeQueue) > 0 {
			eg := s.popEdge()
			s.pruneEdgeGoal(eg)
		}
	}
}

// relax recomputes dist(v,g) from incident edges still admissible for goal
// g, and propagates the change to neighbours and incident edges.
func (s *state) relax(vg vertexGoal) {
	if s.goals[vg.goal] == vg.vertex {
		return // the goal's own distance to itself is a fixed root, never re-derived
	}

	neighbors, err := s.graph.Neighbors(vg.vertex)
	if err != nil {
		return
	}

	best := math.Inf(1)
	found := false
	for _, e := range neighbors {
		mb, ok := s.modes[e]
		if !ok || mb.Empty() {
			continue
		}
		if !s.admitsGoalFromVertex(e, mb, vg.vertex, vg.goal) {
			continue
		}

		other := otherEndpoint(e, vg.vertex)
		od, ok := s.getDist(vertexGoal{vertex: other, goal: vg.goal})
		if !ok {
			continue
		}
		cand := od + e.Cost
		if cand < best {
			best = cand
			found = true
		}
	}

	oldVal, hadOld := s.getDist(vg)
	changed := found != hadOld
	if found && hadOld && math.Abs(best-oldVal) > epsilon {
		changed = true
	}
	if !changed {
		return
	}

	if found {
		s.setDist(vg, best)
	} else {
		s.clearDist(vg)
	}

	for _, e := range neighbors {
		other := otherEndpoint(e, vg.vertex)
		s.enqueueDist(vertexGoal{vertex: other, goal: vg.goal})
		s.enqueueEdge(edgeGoal{edge: e, goal: vg.goal})
	}
}

// admitsGoalFromVertex reports whether edge e, in at least one of its
// remaining modes, places goal g on the side reached by crossing e away
// from v and continuing beyond its far endpoint. Leaving through the Start
// endpoint reaches the from-set (goals "beyond finish"); leaving through
// Finish reaches the to-set (goals "beyond start").
func (s *state) admitsGoalFromVertex(e *core.Edge, mb *goalset.ModeBits, v string, g int) bool {
	viaFromSet := v == e.From
	for _, m := range mb.Modes() {
		reachable := goalset.ExternalAt(m, viaFromSet, s.k)
		if goalset.HasBit(reachable, g) {
			return true
		}
	}

	return false
}

func (s *state) pruneEdgeGoal(eg edgeGoal) {
	mb, ok := s.modes[eg.edge]
	if !ok || mb.Empty() {
		return
	}

	dStart, hasStart := s.getDist(vertexGoal{vertex: eg.edge.From, goal: eg.goal})
	dFinish, hasFinish := s.getDist(vertexGoal{vertex: eg.edge.To, goal: eg.goal})
	if !hasStart || !hasFinish {
		s.dropAllModes(eg.edge)
		return
	}

	u := (dStart - dFinish) / eg.edge.Cost

	// By the triangle inequality u ranges over [-1, 1]: u = 1 means this
	// edge lies on the unique shortest path from Start to g through
	// Finish, so any mode leaving g off the from-set (bit clear) is
	// inconsistent with the measured distances and gets dropped; u = -1
	// is the mirror case for the to-set (bit set).
	var removed bool
	switch {
	case u > s.threshold:
		removed = s.removeModesWithBit(mb, eg.goal, false)
	case u < -s.threshold:
		removed = s.removeModesWithBit(mb, eg.goal, true)
	}

	if removed {
		s.enqueueDist(vertexGoal{vertex: eg.edge.From, goal: eg.goal})
		s.enqueueDist(vertexGoal{vertex: eg.edge.To, goal: eg.goal})
	}

	if mb.Empty() {
		delete(s.modes, eg.edge)
	}
}

// removeModesWithBit clears every mode in mb whose goal-g bit matches want,
// reporting whether anything was removed.
func (s *state) removeModesWithBit(mb *goalset.ModeBits, g int, want bool) bool {
	removed := false
	for _, m := range mb.Modes() {
		if goalset.HasBit(goalset.Subset(m), g) == want {
			mb.Clear(m)
			removed = true
		}
	}

	return removed
}

func (s *state) dropAllModes(e *core.Edge) {
	delete(s.modes, e)
}

func (s *state) getDist(vg vertexGoal) (float64, bool) {
	d, ok := s.hasDist[vg]
	if !ok {
		return 0, false
	}

	return s.dist[vg], d
}

func (s *state) setDist(vg vertexGoal, d float64) {
	s.dist[vg] = d
	s.hasDist[vg] = true
}

func (s *state) clearDist(vg vertexGoal) {
	delete(s.dist, vg)
	delete(s.hasDist, vg)
}

func (s *state) enqueueDist(vg vertexGoal) {
	if s.distQueued[vg] {
		return
	}
	s.distQueued[vg] = true
	s.distQueue = append(s.distQueue, vg)
}

func (s *state) popDist() vertexGoal {
	vg := s.distQueue[0]
	s.distQueue = s.distQueue[1:]
	delete(s.distQueued, vg)

	return vg
}

func (s *state) enqueueEdge(eg edgeGoal) {
	if s.edgeQueued[eg] {
		return
	}
	s.edgeQueued[eg] = true
	s.edgeQueue = append(s.edgeQueue, eg)
}

func (s *state) popEdge() edgeGoal {
	eg := s.edgeQueue[0]
	s.edgeQueue = s.edgeQueue[1:]
	delete(s.edgeQueued, eg)

	return eg
}

func otherEndpoint(e *core.Edge, v string) string {
	if e.From == v {
		return e.To
	}

	return e.From
}
