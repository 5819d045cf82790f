package router

import (
	"errors"

	"github.com/arbor-graph/arbor/core"
)

// epsilon bounds floating-point distance comparisons. Two distances within
// epsilon of each other are treated as unchanged, avoiding the endless
// requeue an exact IEEE-754 equality check would risk on accumulated costs.
const epsilon = 1e-9

// ErrDuplicateGoal indicates the same vertex ID appears twice in the goal
// order handed to Prune.
var ErrDuplicateGoal = errors.New("router: duplicate goal vertex")

// ErrGoalNotFound indicates a goal vertex is absent from the graph.
var ErrGoalNotFound = errors.New("router: goal vertex not present in graph")

// Options configures Prune.
type Options struct {
	// Threshold is the bias threshold θ ∈ (0,1) from spec §4.3. A value
	// ≥ 1 disables pruning entirely (no unsuitability ratio can exceed it).
	Threshold float64
}

// Option is a functional option for Prune.
type Option func(*Options)

// WithThreshold sets the bias threshold. Default is 0.99.
func WithThreshold(theta float64) Option {
	return func(o *Options) { o.Threshold = theta }
}

func defaultOptions() Options {
	return Options{Threshold: 0.99}
}

// vertexGoal keys the per-(vertex, goal) distance table and distance queue.
type vertexGoal struct {
	vertex string
	goal   int
}

// edgeGoal keys the invalid-edge-goal queue.
type edgeGoal struct {
	edge *core.Edge
	goal int
}
