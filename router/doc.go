// Package router implements the shortest-path bias pruner (spec §4.3): a
// per-(vertex, goal) worklist relaxation that eliminates edge modes routing
// a goal against strong topological bias, iterated to a fixpoint.
//
// The worklist/queue shape follows a runner struct carrying mutable
// distance state plus work queues, the way dijkstra does, but the
// algorithm itself is not single-source Dijkstra: it tracks one distance
// per (vertex, goal) pair and alternates between two queues rather than a
// single priority queue, because edge admissibility itself changes as
// modes are pruned.
package router
