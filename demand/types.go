package demand

import (
	"errors"

	"github.com/arbor-graph/arbor/core"
	"github.com/arbor-graph/arbor/goalset"
)

// Epsilon is the default tolerance used when a canonical demand form must
// decide whether an aggregated bandwidth contribution is effectively zero.
// Mirrors flow's FlowOptions.Epsilon default.
const Epsilon = 1e-9

// ErrBadDegree indicates a demand Function was constructed or queried with
// a degree inconsistent with its configuration.
var ErrBadDegree = errors.New("demand: degree mismatch")

// ErrTrivialSubset indicates Get/GetPair was called with the empty or
// full goal subset, which is outside the demand function's domain.
var ErrTrivialSubset = errors.New("demand: subset must be non-empty and non-full")

// Function is the external demand-function contract (spec §4.1).
type Function interface {
	// Degree returns k, the number of goals this function was built for.
	Degree() int

	// Get returns the one-direction bandwidth range required on an edge
	// carrying traffic for exactly the goals in subset.
	Get(subset goalset.Subset) (core.Range, error)

	// GetPair returns (ingress, egress) for subset; egress(subset) is
	// defined to equal ingress(complement(subset)).
	GetPair(subset goalset.Subset) (ingress, egress core.Range, err error)
}

func validateSubset(k int, s goalset.Subset) error {
	if goalset.IsTrivial(s, k) {
		return ErrTrivialSubset
	}

	return nil
}
