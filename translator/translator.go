package translator

import (
	"errors"
	"fmt"

	"github.com/arbor-graph/arbor/core"
	"github.com/arbor-graph/arbor/demand"
	"github.com/arbor-graph/arbor/goalset"
)

// ErrDigitVectorLength indicates a digit vector whose length does not
// match the edge ordering it is being translated against.
var ErrDigitVectorLength = errors.New("translator: digit vector length does not match edge order")

// Translate converts one valid digit vector, produced by mixedradix over
// order, into the per-edge capacity assignment a caller receives: edges
// left at digit 0 (unused) are absent from the result; every other edge
// maps to the BidiCapacity its selected mode requires.
func Translate(order []*core.Edge, modes map[*core.Edge]*goalset.ModeBits, dem demand.Function, digits []int) (map[*core.Edge]core.BidiCapacity, error) {
	if len(digits) != len(order) {
		return nil, ErrDigitVectorLength
	}

	result := make(map[*core.Edge]core.BidiCapacity, len(order))

	for i, e := range order {
		d := digits[i]
		if d == 0 {
			continue
		}

		mb := modes[e]
		edgeModes := mb.Modes()
		if d-1 >= len(edgeModes) {
			return nil, fmt.Errorf("translator: digit %d out of range for edge %s->%s with %d modes", d, e.From, e.To, len(edgeModes))
		}
		m := edgeModes[d-1]

		fromSet := goalset.FromSet(m)
		ingress, egress, err := dem.GetPair(fromSet)
		if err != nil {
			return nil, fmt.Errorf("translator: edge %s->%s: %w", e.From, e.To, err)
		}

		result[e] = core.BidiCapacity{Ingress: ingress, Egress: egress}
	}

	return result, nil
}
