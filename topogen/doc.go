// Package topogen builds the small, fixed-shape graphs used by the
// plotter end-to-end scenario tests (spec §8): a line, a parallel-edge
// pair, a triangle, and a chain with a shortcut. Each constructor returns
// the graph alongside its edges by name, so a test can both feed the
// edges into Plot and assert on which of them survive pruning.
//
// Grounded on builder's deterministic ID scheme (sequential
// letters/indices, never randomly generated) and its
// panic-only-on-structural-misuse policy (bad vertex counts here are a
// test-author error, not a runtime condition Plot's caller can hit).
package topogen
