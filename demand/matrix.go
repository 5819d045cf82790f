package demand

import (
	"github.com/arbor-graph/arbor/core"
	"github.com/arbor-graph/arbor/goalset"
)

// FlowPair names a directed traffic requirement between two goals by their
// index position in the goal order, with a fixed rate.
type FlowPair struct {
	Src, Dst int
	Rate     float64
}

// Matrix is the per-(source,destination) canonical demand form: bandwidth
// on a cut equals the sum of every FlowPair whose source and destination
// lie on opposite sides of the cut, aggregated the way flow.buildCapMap
// aggregates parallel edges (sum, then drop near-zero totals below
// Epsilon).
type Matrix struct {
	degree int
	pairs  []FlowPair
}

// NewMatrix builds a Matrix demand function. Returns ErrNegativeRate for a
// negative rate and ErrBadDegree if any Src/Dst index is out of [0, degree).
func NewMatrix(degree int, pairs []FlowPair) (*Matrix, error) {
	for _, p := range pairs {
		if p.Rate < 0 {
			return nil, ErrNegativeRate
		}
		if p.Src < 0 || p.Src >= degree || p.Dst < 0 || p.Dst >= degree {
			return nil, ErrBadDegree
		}
	}
	cp := make([]FlowPair, len(pairs))
	copy(cp, pairs)

	return &Matrix{degree: degree, pairs: cp}, nil
}

// Degree implements Function.
func (m *Matrix) Degree() int { return m.degree }

// Get implements Function, returning the ingress range for subset.
func (m *Matrix) Get(subset goalset.Subset) (core.Range, error) {
	ingress, _, err := m.GetPair(subset)

	return ingress, err
}

// GetPair implements Function.
func (m *Matrix) GetPair(subset goalset.Subset) (core.Range, core.Range, error) {
	if err := validateSubset(m.degree, subset); err != nil {
		return core.Range{}, core.Range{}, err
	}

	var ingressSum, egressSum float64
	for _, p := range m.pairs {
		srcIn := goalset.HasBit(subset, p.Src)
		dstIn := goalset.HasBit(subset, p.Dst)
		if srcIn == dstIn {
			continue // does not cross the cut
		}
		if !srcIn && dstIn {
			ingressSum += p.Rate // flows from outside the subset into it
		} else {
			egressSum += p.Rate // flows from inside the subset out
		}
	}
	if ingressSum <= Epsilon {
		ingressSum = 0
	}
	if egressSum <= Epsilon {
		egressSum = 0
	}

	return core.Range{Min: ingressSum, Max: ingressSum}, core.Range{Min: egressSum, Max: egressSum}, nil
}
