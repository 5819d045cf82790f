// Package translator implements the result translator of spec §4.7: it
// turns one valid digit vector from package mixedradix back into the
// caller-facing shape, a map from edge to the bidirectional capacity that
// edge must carry in this particular tree.
//
// Grounded on the "assemble and return" tail shared by every algorithm
// entry point in this module — collect intermediate state into the
// public result type just before returning, and nowhere else.
package translator
