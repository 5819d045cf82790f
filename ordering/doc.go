// Package ordering assigns each retained edge a digit position in the
// mixed-radix search vector (spec §4.4): a breadth-first search seeded at
// the goal vertices discovers edges in reachability order, and the
// sequence is reversed so that goal-adjacent edges land on the most
// significant (highest) digit positions, where their already-small mode
// sets change least often.
//
// The traversal itself follows the same shape as bfs: a FIFO frontier,
// visited-set, and — since core.Graph.Neighbors already returns edges
// sorted by Index — deterministic edge discovery order for free.
package ordering
