package demand

import (
	"github.com/arbor-graph/arbor/core"
	"github.com/arbor-graph/arbor/goalset"
)

// Flat is the simplest canonical demand form: every edge, regardless of
// which goals lie on which side, requires the same bandwidth range in both
// directions (spec §3: "a single range on every edge"). Because Get
// ignores its subset argument entirely, a single stored range is the only
// construction that can satisfy GetPair(s).egress == Get(complement(s)):
// with one range for both directions, both sides of that equation collapse
// to the same constant by construction, for any subset. A constructor that
// took independent ingress/egress ranges could not make that promise.
type Flat struct {
	degree int
	r      core.Range
}

// NewFlat builds a Flat demand function of the given degree with a single
// range applied, in both directions, to every cut.
func NewFlat(degree int, r core.Range) *Flat {
	return &Flat{degree: degree, r: r}
}

// Degree implements Function.
func (f *Flat) Degree() int { return f.degree }

// Get implements Function. For Flat, the result never depends on subset
// beyond validating it is in-domain.
func (f *Flat) Get(subset goalset.Subset) (core.Range, error) {
	if err := validateSubset(f.degree, subset); err != nil {
		return core.Range{}, err
	}

	return f.r, nil
}

// GetPair implements Function. Flat's range is the same constant for every
// subset and direction, which trivially satisfies egress(s) == ingress(~s).
func (f *Flat) GetPair(subset goalset.Subset) (core.Range, core.Range, error) {
	if err := validateSubset(f.degree, subset); err != nil {
		return core.Range{}, core.Range{}, err
	}

	return f.r, f.r, nil
}
