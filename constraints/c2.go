package constraints

import "github.com/arbor-graph/arbor/goalset"

// completeUnion is a C2 constraint for a non-goal vertex: the union of
// external sets of its in-use incident edges must equal the full goal
// set, or none of them are in use.
type completeUnion struct {
	vertex   string
	k        int
	incident []Slot
	anchor   int
}

func newCompleteUnion(vertex string, incident []Slot, k int) *completeUnion {
	return &completeUnion{vertex: vertex, k: k, incident: incident, anchor: minPosition(incident)}
}

func (c *completeUnion) Anchor() int { return c.anchor }

func (c *completeUnion) Satisfied(digits []int) bool {
	var union goalset.Subset
	used := false
	for _, s := range c.incident {
		d := digits[s.Position]
		if d == 0 {
			continue
		}
		used = true
		union |= externalAt(s, c.vertex, s.Modes[d-1], c.k)
	}
	if !used {
		return true
	}

	return union == goalset.FullMask(c.k)
}

// completeUnionExceptSelf is a C2' constraint for a goal vertex: the
// union of external sets, augmented by the vertex's own goal bit, must
// equal the full goal set, and at least one incident edge must be in use.
type completeUnionExceptSelf struct {
	vertex   string
	goalBit  int
	k        int
	incident []Slot
	anchor   int
}

func newCompleteUnionExceptSelf(vertex string, goalBit int, incident []Slot, k int) *completeUnionExceptSelf {
	return &completeUnionExceptSelf{vertex: vertex, goalBit: goalBit, k: k, incident: incident, anchor: minPosition(incident)}
}

func (c *completeUnionExceptSelf) Anchor() int { return c.anchor }

func (c *completeUnionExceptSelf) Satisfied(digits []int) bool {
	union := goalset.Subset(1) << uint(c.goalBit)
	used := false
	for _, s := range c.incident {
		d := digits[s.Position]
		if d == 0 {
			continue
		}
		used = true
		union |= externalAt(s, c.vertex, s.Modes[d-1], c.k)
	}
	if !used {
		return false
	}

	return union == goalset.FullMask(c.k)
}

func minPosition(slots []Slot) int {
	m := slots[0].Position
	for _, s := range slots[1:] {
		if s.Position < m {
			m = s.Position
		}
	}

	return m
}
