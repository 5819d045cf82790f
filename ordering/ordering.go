package ordering

import (
	"errors"
	"sort"

	"github.com/arbor-graph/arbor/core"
	"github.com/arbor-graph/arbor/goalset"
)

// ErrDuplicateGoal indicates the same vertex ID appears twice in goalOrder.
var ErrDuplicateGoal = errors.New("ordering: duplicate goal vertex")

// ErrGoalNotFound indicates a goal vertex is absent from the graph.
var ErrGoalNotFound = errors.New("ordering: goal vertex not present in graph")

// Order returns the retained edges of modes in digit-position order:
// index 0 is the least significant digit (changes most frequently), the
// last index is the most significant. Edges reachable from the goal set
// are ordered by reversed BFS-discovery distance (closer to a goal ⇒ more
// significant); any edge left unreachable from every goal under the
// current modes (fully disconnected by §4.3 pruning) sorts before all of
// those, by Edge.Index, as the least significant digits of all.
func Order(graph *core.Graph, goalOrder []string, modes map[*core.Edge]*goalset.ModeBits) ([]*core.Edge, error) {
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

	visited := make(map[string]bool, len(goalOrder))
	queue := make([]string, 0, len(goalOrder))
	for _, g := range goalOrder {
		if !visited[g] {
			visited[g] = true
			queue = append(queue, g)
		}
	}

	discoveredEdge := make(map[*core.Edge]bool, len(modes))
	discovered := make([]*core.Edge, 0, len(modes))

	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]

		neighbors, err := graph.Neighbors(v)
		if err != nil {
			return nil, err
		}

		for _, e := range neighbors {
			if _, ok := modes[e]; !ok {
				continue // pruned away by an earlier stage
			}
			if discoveredEdge[e] {
				continue
			}
			discoveredEdge[e] = true
			discovered = append(discovered, e)

			other := otherEndpoint(e, v)
			if !visited[other] {
				visited[other] = true
				queue = append(queue, other)
			}
		}
	}

	leftover := make([]*core.Edge, 0)
	for e := range modes {
		if !discoveredEdge[e] {
			leftover = append(leftover, e)
		}
	}
	sort.Slice(leftover, func(i, j int) bool { return leftover[i].Index < leftover[j].Index })

	result := make([]*core.Edge, 0, len(modes))
	result = append(result, leftover...)
	for i := len(discovered) - 1; i >= 0; i-- {
		result = append(result, discovered[i])
	}

	return result, nil
}

func otherEndpoint(e *core.Edge, v string) string {
	if e.From == v {
		return e.To
	}

	return e.From
}
