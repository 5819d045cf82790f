// Package arbor enumerates every capacitated tree that can carry a given
// set of goal vertices' traffic across a graph, subject to per-edge
// bandwidth capacities and a shortest-path bias filter.
//
// The engine is a pipeline of seven small components, each its own
// subpackage:
//
//	core/        — the capacitated bidirectional graph: Vertex, Edge, BidiCapacity
//	goalset/     — goal-subset and edge-mode bit arithmetic
//	demand/      — the external demand-function contract and its three canonical forms
//	edgemode/    — per-edge viable-mode enumeration against capacity and goal placement
//	router/      — the shortest-path bias pruner
//	ordering/    — assigns each edge a digit position via goal-seeded BFS
//	constraints/ — synthesises the per-vertex non-overlap and full-coverage rules
//	mixedradix/  — the constraint-pruned digit-vector enumerator
//	translator/  — turns a digit vector back into a capacity assignment
//	plotter/     — the single external entry point, Plot, composing all of the above
//
// Callers only ever need package plotter:
//
//	enum, err := plotter.Plot(goalOrder, demandFn, edges)
//	for tree, ok := enum.Next(); ok; tree, ok = enum.Next() {
//	    // tree is a map[*core.Edge]core.BidiCapacity
//	}
//
// See DESIGN.md for how each component maps to its design source.
package arbor
