// Package constraints synthesises, for every vertex, the checks a valid
// mixed-radix digit assignment must satisfy (spec §4.5): non-overlapping
// external sets among an edge list's suffixes (C1), complete external
// union at non-goal vertices (C2), and complete union augmented by the
// vertex's own goal bit at goal vertices (C2'). Each constraint is
// anchored at the lowest digit position it references, matching the
// mixed-radix enumerator's high-to-low validation sweep.
//
// The C1 compatibility cache — for a pair of incident edges, which mode of
// one is disjoint from which mode of the other — follows matrix's
// row-major dense-table allocation idiom: allocate once at construction,
// index by mode position rather than by Mode value.
package constraints
