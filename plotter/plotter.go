package plotter

import (
	"errors"
	"fmt"

	"github.com/arbor-graph/arbor/constraints"
	"github.com/arbor-graph/arbor/core"
	"github.com/arbor-graph/arbor/demand"
	"github.com/arbor-graph/arbor/edgemode"
	"github.com/arbor-graph/arbor/goalset"
	"github.com/arbor-graph/arbor/mixedradix"
	"github.com/arbor-graph/arbor/ordering"
	"github.com/arbor-graph/arbor/router"
	"github.com/arbor-graph/arbor/translator"
)

// Plot validates its inputs, runs the pruning and constraint-synthesis
// pipeline once, and returns a lazy Enumeration over every capacity
// assignment consistent with goalOrder, dem, and edges.
//
// Preconditions, checked in order and returned as plain errors (spec §7
// kind 1 — no element is ever produced on failure): len(goalOrder) must
// equal dem.Degree(); no vertex may repeat in goalOrder; every goal vertex
// must be an endpoint of at least one edge.
//
// A nil error with a non-nil Enumeration does not guarantee a non-empty
// sequence: pruning or constraint synthesis may still eliminate every
// tree, which is infeasibility (spec §7 kind 2) and is signalled by an
// Enumeration whose Next immediately returns false.
func Plot(goalOrder []string, dem demand.Function, edges []*core.Edge, opts ...Option) (*Enumeration, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	k := dem.Degree()
	if len(goalOrder) != k {
		return nil, ErrDegreeMismatch
	}

	goals := make(edgemode.GoalIndex, len(goalOrder))
	for i, v := range goalOrder {
		if _, dup := goals[v]; dup {
			return nil, ErrDuplicateGoal
		}
		goals[v] = i
	}

	endpoints := make(map[string]bool, 2*len(edges))
	for _, e := range edges {
		endpoints[e.From] = true
		endpoints[e.To] = true
	}
	for _, v := range goalOrder {
		if !endpoints[v] {
			return nil, ErrGoalVertexAbsent
		}
	}

	graph := core.FromEdges(edges)

	var edgemodeOpts []edgemode.Option
	if cfg.AllEdgeModes {
		edgemodeOpts = append(edgemodeOpts, edgemode.WithAllModes())
	}

	modes, err := edgemode.Enumerate(edges, dem, goals, edgemodeOpts...)
	if err != nil {
		return nil, fmt.Errorf("plotter: edge-mode enumeration: %w", err)
	}

	pruned, err := router.Prune(graph, goalOrder, modes, router.WithThreshold(cfg.BiasThreshold))
	if err != nil {
		return nil, fmt.Errorf("plotter: %w", err)
	}

	order, err := ordering.Order(graph, goalOrder, pruned)
	if err != nil {
		return nil, fmt.Errorf("plotter: %w", err)
	}

	cs, err := constraints.Build(order, pruned, goals, k)
	if errors.Is(err, constraints.ErrGoalUnreachable) {
		// Pruning eliminated every edge incident to some goal. Every
		// precondition above already held, so this is infeasibility (spec
		// §7 kind 2), signalled as an empty sequence rather than an error.
		return &Enumeration{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("plotter: %w", err)
	}

	return &Enumeration{
		order: order,
		modes: pruned,
		dem:   dem,
		enum:  mixedradix.New(order, pruned, cs),
	}, nil
}

// Enumeration is a lazy, single-use, single-threaded sequence of capacity
// assignments. Its zero value is a valid, already-exhausted sequence.
type Enumeration struct {
	order []*core.Edge
	modes map[*core.Edge]*goalset.ModeBits
	dem   demand.Function
	enum  *mixedradix.Enumerator
}

// Next advances the sequence and translates the next valid digit vector,
// or returns (nil, false) once the sequence is exhausted.
func (en *Enumeration) Next() (map[*core.Edge]core.BidiCapacity, bool) {
	if en.enum == nil {
		return nil, false
	}

	digits, ok := en.enum.NextValid()
	if !ok {
		return nil, false
	}

	result, err := translator.Translate(en.order, en.modes, en.dem, digits)
	if err != nil {
		// mixedradix only ever yields digit vectors consistent with the
		// same order/modes passed to it, so Translate cannot fail here;
		// treat it as exhaustion rather than letting an impossible error
		// propagate as a panic.
		return nil, false
	}

	return result, true
}

// All drains the Enumeration into a slice. Convenience sugar for callers
// that do not need streaming access; do not call alongside Next on the
// same Enumeration.
func (en *Enumeration) All() []map[*core.Edge]core.BidiCapacity {
	var out []map[*core.Edge]core.BidiCapacity
	for {
		m, ok := en.Next()
		if !ok {
			return out
		}
		out = append(out, m)
	}
}
