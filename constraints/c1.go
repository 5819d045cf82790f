package constraints

// nonOverlap is a C1 constraint for one pair of edges incident to the
// same vertex: primary.Position < other.Position, anchored at primary's
// position. compatible[j][l] caches whether primary's (j+1)-th mode's
// external set is disjoint from other's (l+1)-th mode's external set.
type nonOverlap struct {
	primary, other Slot
	compatible     [][]bool
}

// newNonOverlap builds the compatibility cache for a pair of incident
// edges at vertex v under degree k.
func newNonOverlap(v string, primary, other Slot, k int) *nonOverlap {
	compat := make([][]bool, len(primary.Modes))
	for j, pm := range primary.Modes {
		row := make([]bool, len(other.Modes))
		pExt := externalAt(primary, v, pm, k)
		for l, om := range other.Modes {
			oExt := externalAt(other, v, om, k)
			row[l] = pExt&oExt == 0
		}
		compat[j] = row
	}

	return &nonOverlap{primary: primary, other: other, compatible: compat}
}

func (c *nonOverlap) Anchor() int {
	if c.primary.Position < c.other.Position {
		return c.primary.Position
	}

	return c.other.Position
}

func (c *nonOverlap) Satisfied(digits []int) bool {
	dp := digits[c.primary.Position]
	do := digits[c.other.Position]
	if dp == 0 || do == 0 {
		return true // a constraint between externals only binds when both edges are in use
	}

	return c.compatible[dp-1][do-1]
}
