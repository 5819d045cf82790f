package plotter

import "errors"

// Sentinel errors for contract violations (spec §7 kind 1). These are
// returned by Plot itself, before any element is produced.
var (
	// ErrDegreeMismatch indicates len(goalOrder) != demand.Degree().
	ErrDegreeMismatch = errors.New("plotter: goal count does not match demand function degree")

	// ErrDuplicateGoal indicates the same vertex appears twice in goalOrder.
	ErrDuplicateGoal = errors.New("plotter: duplicate goal vertex")

	// ErrGoalVertexAbsent indicates a goal vertex is not an endpoint of any
	// supplied edge.
	ErrGoalVertexAbsent = errors.New("plotter: goal vertex is not an endpoint of any edge")
)

// Options configures Plot.
type Options struct {
	// BiasThreshold is the §4.3 pruning strictness, in (0, +inf). Values
	// at or above 1 disable pruning entirely (u never exceeds 1 in
	// magnitude). Default 0.99.
	BiasThreshold float64

	// AllEdgeModes, if set, retains every structurally consistent mode for
	// every edge regardless of capacity (spec §6's ground-truth oracle).
	AllEdgeModes bool
}

// Option is a functional option for Plot.
type Option func(*Options)

// DefaultOptions returns Plot's default configuration.
func DefaultOptions() Options {
	return Options{BiasThreshold: 0.99}
}

// WithBiasThreshold sets the §4.3 pruning threshold. Panics if theta <= 0.
func WithBiasThreshold(theta float64) Option {
	if theta <= 0 {
		panic("plotter: WithBiasThreshold requires theta > 0")
	}

	return func(o *Options) { o.BiasThreshold = theta }
}

// WithAllEdgeModes enables the all_edge_modes ground-truth oracle.
func WithAllEdgeModes() Option {
	return func(o *Options) { o.AllEdgeModes = true }
}
