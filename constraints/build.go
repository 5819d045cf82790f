package constraints

import (
	"github.com/arbor-graph/arbor/core"
	"github.com/arbor-graph/arbor/edgemode"
	"github.com/arbor-graph/arbor/goalset"
)

// Build synthesises the per-vertex constraint families of spec §4.5 for
// every vertex touched by order. order must be the edge sequence produced
// by package ordering, so Slot.Position matches digit positions exactly;
// modes gives each edge's surviving ModeBits. goals maps goal vertex IDs
// to their bit position; k is the goal count.
//
// The result maps digit position i to the constraints anchored there.
// Build returns ErrGoalUnreachable when some goal has no incident edge in
// order, whether it never had one or pruning removed them all.
func Build(order []*core.Edge, modes map[*core.Edge]*goalset.ModeBits, goals edgemode.GoalIndex, k int) (map[int][]Constraint, error) {
	slotOf := make(map[*core.Edge]Slot, len(order))
	for i, e := range order {
		slotOf[e] = Slot{Edge: e, Position: i, Modes: modes[e].Modes()}
	}

	incidentAt := make(map[string][]Slot)
	for _, e := range order {
		s := slotOf[e]
		incidentAt[e.From] = append(incidentAt[e.From], s)
		if e.To != e.From {
			incidentAt[e.To] = append(incidentAt[e.To], s)
		}
	}

	result := make(map[int][]Constraint)
	add := func(c Constraint) {
		result[c.Anchor()] = append(result[c.Anchor()], c)
	}

	for g := range goals {
		if _, ok := incidentAt[g]; !ok {
			return nil, ErrGoalUnreachable
		}
	}

	for v, incident := range incidentAt {
		for i := 0; i < len(incident); i++ {
			for j := i + 1; j < len(incident); j++ {
				add(newNonOverlap(v, incident[i], incident[j], k))
			}
		}

		if bit, isGoal := goals[v]; isGoal {
			add(newCompleteUnionExceptSelf(v, bit, incident, k))
		} else {
			add(newCompleteUnion(v, incident, k))
		}
	}

	return result, nil
}
