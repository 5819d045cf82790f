// Package mixedradix implements the constraint-pruned mixed-radix
// enumerator of spec §4.6: a digit vector, one per retained edge, where
// digit 0 means "edge unused" and digit j selects the edge's j-th viable
// mode. NextValid advances to the next digit assignment that satisfies
// every synthesised constraint, skipping whole subtrees of the search
// space by jumping straight to the next candidate whenever a constraint
// fails, rather than walking them one increment at a time.
//
// The source's own documented history contains three revisions of this
// enumerator; this package implements the latest, corrected one: carry
// propagation terminates the moment the most significant digit itself
// would need to roll over, instead of looping endlessly.
package mixedradix
