// Package edgemode implements the Edge-Mode Enumeration component (spec
// §4.2): for every edge and every non-trivial mode, decide whether the
// edge may carry that mode given its capacities and the goal placement of
// its endpoints. Edges left with no viable mode are dropped entirely.
//
// The capacity check follows flow's aggregate-then-filter idiom
// (flow/utils.go's buildCapMap): compute the demand for a candidate
// subset once, then compare against the edge's own capacity minimums.
package edgemode

import (
	"github.com/arbor-graph/arbor/core"
	"github.com/arbor-graph/arbor/demand"
	"github.com/arbor-graph/arbor/goalset"
)

// Options configures Enumerate.
type Options struct {
	// AllModes, if true, skips the capacity filter (checks 1-2 of spec
	// §4.2) and retains every mode consistent with goal placement. This is
	// the "all_edge_modes" ground-truth oracle from spec §6.
	AllModes bool
}

// Option is a functional option for Enumerate.
type Option func(*Options)

// WithAllModes enables the all_edge_modes ground-truth oracle.
func WithAllModes() Option {
	return func(o *Options) { o.AllModes = true }
}

// GoalIndex maps a vertex ID to its goal bit position for every vertex
// that is a goal. Vertices absent from the map are not goals.
type GoalIndex map[string]int

// Enumerate computes the viable-mode bitset for every edge, given a demand
// function and the goal placement of vertices. Edges with no viable mode
// are omitted from the result (spec §4.2 rule 4).
func Enumerate(edges []*core.Edge, dem demand.Function, goals GoalIndex, opts ...Option) (map[*core.Edge]*goalset.ModeBits, error) {
	cfg := Options{}
	for _, opt := range opts {
		opt(&cfg)
	}

	k := dem.Degree()
	top := goalset.Mode(goalset.FullMask(k))
	out := make(map[*core.Edge]*goalset.ModeBits, len(edges))

	for _, e := range edges {
		startGoal, startIsGoal := goals[e.From]
		finishGoal, finishIsGoal := goals[e.To]

		viable := goalset.NewModeBits(k)
		for m := goalset.Mode(1); m < top; m++ {
			if startIsGoal && goalset.HasBit(goalset.Subset(m), startGoal) {
				continue // start is goal g: bit g must be clear
			}
			if finishIsGoal && !goalset.HasBit(goalset.Subset(m), finishGoal) {
				continue // finish is goal g: bit g must be set
			}

			if !cfg.AllModes {
				ingress, egress, err := dem.GetPair(goalset.FromSet(m))
				if err != nil {
					return nil, err
				}
				if ingress.Min > e.Capacity.Ingress.Min {
					continue
				}
				if egress.Min > e.Capacity.Egress.Min {
					continue
				}
			}

			viable.Set(m)
		}

		if viable.Empty() {
			continue
		}
		out[e] = viable
	}

	return out, nil
}
