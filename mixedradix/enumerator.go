package mixedradix

import (
	"github.com/arbor-graph/arbor/constraints"
	"github.com/arbor-graph/arbor/core"
	"github.com/arbor-graph/arbor/goalset"
)

// Enumerator is a single-use, single-threaded lazy sequence of valid
// digit vectors. It holds interior mutable state and must not be shared
// across goroutines; restart by constructing a fresh Enumerator.
type Enumerator struct {
	order       []*core.Edge
	radix       []int
	anchored    map[int][]constraints.Constraint
	digits      []int
	invalidated int
	started     bool
	exhausted   bool
}

// New builds an Enumerator over order (the digit-position-ordered edge
// list from package ordering), modes (each edge's surviving ModeBits, for
// its radix), and cs (the constraint sets from package constraints,
// keyed by anchor position).
func New(order []*core.Edge, modes map[*core.Edge]*goalset.ModeBits, cs map[int][]constraints.Constraint) *Enumerator {
	radix := make([]int, len(order))
	for i, e := range order {
		radix[i] = modes[e].Count() + 1
	}

	return &Enumerator{
		order:       order,
		radix:       radix,
		anchored:    cs,
		digits:      make([]int, len(order)),
		invalidated: len(order),
	}
}

// NextValid advances to the next digit vector satisfying every
// constraint, returning a fresh copy and true, or nil and false once the
// search space is exhausted.
func (e *Enumerator) NextValid() ([]int, bool) {
	if e.exhausted {
		return nil, false
	}

	if e.started {
		if !e.incrementAt(0) {
			e.exhausted = true
			return nil, false
		}
	} else {
		e.started = true
	}

	for e.invalidated > 0 {
		i := e.invalidated - 1
		e.invalidated--

		if e.constraintsHold(i) {
			continue
		}

		for j := 0; j < i; j++ {
			e.digits[j] = 0
		}
		if !e.incrementAt(i) {
			e.exhausted = true
			return nil, false
		}
	}

	out := make([]int, len(e.digits))
	copy(out, e.digits)

	return out, true
}

func (e *Enumerator) constraintsHold(i int) bool {
	for _, c := range e.anchored[i] {
		if !c.Satisfied(e.digits) {
			return false
		}
	}

	return true
}

// incrementAt increments digit i, carrying upward through positions whose
// radix is exceeded. Returns false if the carry overflows past the most
// significant digit (search space exhausted). On success, invalidated is
// advanced to cover every position touched by the carry.
func (e *Enumerator) incrementAt(i int) bool {
	for i < len(e.digits) {
		e.digits[i]++
		if e.digits[i] < e.radix[i] {
			if i+1 > e.invalidated {
				e.invalidated = i + 1
			}

			return true
		}
		e.digits[i] = 0
		i++
	}

	return false
}
