// Package core defines the capacitated, bidirectional graph that the
// plotter operates on: Vertex, Edge, Range, BidiCapacity, and the Graph
// store itself.
//
// A Graph here is always undirected in topology (every edge links two
// vertices symmetrically) but each edge carries two independent bandwidth
// ranges — Ingress (start→finish) and Egress (finish→start) — so traffic
// in the two directions can have different requirements. Parallel edges
// between the same pair of vertices are always permitted: edge identity is
// the *Edge pointer (its Index makes it orderable), never the (From, To)
// pair.
//
// All mutating operations take a write lock on the relevant catalog
// (vertices or edges+adjacency); read-only queries take the matching read
// lock. This lets a caller build or extend a Graph from multiple
// goroutines. plotter.Plot takes a slice of edges, indexes them into its
// own Graph with FromEdges, and never modifies the edges — it treats them
// as immutable for the lifetime of the returned enumeration (spec: plotter
// never mutates its inputs).
package core
