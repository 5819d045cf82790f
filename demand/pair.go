package demand

import (
	"errors"

	"github.com/arbor-graph/arbor/core"
	"github.com/arbor-graph/arbor/goalset"
)

// ErrNegativeRate indicates a produce or consume rate was negative.
var ErrNegativeRate = errors.New("demand: produce/consume rate must be >= 0")

// Endpoint is one goal's produce/consume rate pair in a Pair demand
// function: Produce is how much this goal originates, Consume is how much
// it sinks.
type Endpoint struct {
	Produce float64
	Consume float64
}

// Pair is the "each goal has an endpoint pair" canonical demand form.
// For a cut described by subset S (the from-set, reached via an edge's
// Finish side):
//
//	ingress(S) = min(sum of Produce over goals outside S, sum of Consume over goals in S)
//	egress(S)  = min(sum of Produce over goals in S,      sum of Consume over goals outside S)
//
// egress(S) is by construction ingress(complement(S)), satisfying the
// Function.GetPair contract.
type Pair struct {
	degree    int
	endpoints []Endpoint // len == degree, indexed by goal position
}

// NewPair builds a Pair demand function from one Endpoint per goal.
// Returns ErrNegativeRate if any rate is negative.
func NewPair(endpoints []Endpoint) (*Pair, error) {
	for _, e := range endpoints {
		if e.Produce < 0 || e.Consume < 0 {
			return nil, ErrNegativeRate
		}
	}
	cp := make([]Endpoint, len(endpoints))
	copy(cp, endpoints)

	return &Pair{degree: len(cp), endpoints: cp}, nil
}

// Degree implements Function.
func (p *Pair) Degree() int { return p.degree }

// Get implements Function, returning the ingress range for subset.
func (p *Pair) Get(subset goalset.Subset) (core.Range, error) {
	ingress, _, err := p.GetPair(subset)

	return ingress, err
}

// GetPair implements Function.
func (p *Pair) GetPair(subset goalset.Subset) (core.Range, core.Range, error) {
	if err := validateSubset(p.degree, subset); err != nil {
		return core.Range{}, core.Range{}, err
	}

	var produceIn, produceOut, consumeIn, consumeOut float64
	for g := 0; g < p.degree; g++ {
		ep := p.endpoints[g]
		if goalset.HasBit(subset, g) {
			produceIn += ep.Produce
			consumeIn += ep.Consume
		} else {
			produceOut += ep.Produce
			consumeOut += ep.Consume
		}
	}

	ingressVal := min(produceOut, consumeIn)
	egressVal := min(produceIn, consumeOut)

	return core.Range{Min: ingressVal, Max: ingressVal}, core.Range{Min: egressVal, Max: egressVal}, nil
}
