// Package plotter implements the engine's single external entry point
// (spec §6): Plot validates its contract, then composes edgemode, router,
// ordering, constraints, and mixedradix into a lazy Enumeration of
// per-edge capacity assignments, translating each digit vector on demand
// via package translator.
//
// Contract violations (inconsistent goal count, duplicate goals, a goal
// vertex absent from every edge) are returned as an error from Plot itself
// before any element is produced, per spec §7 kind 1. Infeasibility —
// pruning or constraint synthesis eliminating every tree — is never an
// error; it surfaces as an Enumeration that yields nothing, per §7 kind 2.
//
// Grounded on dijkstra.Dijkstra's validate-then-construct-then-run shape:
// functional options applied and validated first, then every precondition
// checked before any algorithmic work begins. Plays the composing role
// that a top-level algorithms package once played over bfs/dfs/dijkstra/
// prim_kruskal on top of core, composing edgemode/router/ordering/
// constraints/mixedradix/translator instead.
package plotter
