package constraints

import (
	"errors"

	"github.com/arbor-graph/arbor/core"
	"github.com/arbor-graph/arbor/goalset"
)

// ErrGoalUnreachable indicates a goal vertex has no surviving incident
// edge in the supplied order — the engine cannot synthesise C2' for it.
// It is detected before any enumeration begins. The plotter checks goal
// endpoints itself before pruning, so when it sees this error pruning has
// removed every edge at some goal, and it returns an empty Enumeration.
var ErrGoalUnreachable = errors.New("constraints: goal vertex has no incident edge")

// Slot is one edge's position in the mixed-radix digit vector, together
// with its viable modes in ascending order: digit value j (1-indexed)
// selects Modes[j-1].
type Slot struct {
	Edge     *core.Edge
	Position int
	Modes    []goalset.Mode
}

// externalAt returns the external set of the edge in slot s as seen from
// vertex v under mode m: the goals reachable by crossing the edge away
// from v and continuing beyond its far endpoint. Leaving through Start
// reaches the from-set ("beyond Finish"); leaving through Finish reaches
// the to-set ("beyond Start"). See the router bit-removal Open Question
// decision in DESIGN.md for why this is the opposite of a literal reading
// of spec §4.5's inward/outward prose.
func externalAt(s Slot, v string, m goalset.Mode, k int) goalset.Subset {
	return goalset.ExternalAt(m, s.Edge.From == v, k)
}

// Constraint is a single check a digit vector must pass. Anchor is the
// lowest digit position it references; Satisfied may read any position of
// the full digit vector (values are always defined, since the enumerator
// keeps a complete vector at every step — "anchor" only governs when a
// constraint is worth re-checking, not which values it may read).
type Constraint interface {
	Anchor() int
	Satisfied(digits []int) bool
}
