// Package demand implements the Demand Function collaborator (spec §4.1)
// and its three canonical forms: Flat, Pair, and Matrix.
//
// A demand Function maps any non-empty, non-full goal subset to the
// bandwidth required on an edge that carries traffic for exactly that
// subset on one side. The plotter never calls Get/GetPair with the empty
// or full subset; implementations are free to panic on that misuse since
// it can only be a caller/plotter bug, never a reachable runtime state.
//
// Matrix follows the epsilon-aware aggregation idiom flow uses to build
// residual capacity maps: sum the contributions that cross a cut, then
// compare against a small epsilon rather than exact floating-point
// equality. Flat and Pair return their values without an epsilon check.
package demand
