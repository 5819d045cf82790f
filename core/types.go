package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided Vertex has an empty ID.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrBadCost indicates a non-positive edge cost (spec: cost > 0).
	ErrBadCost = errors.New("core: edge cost must be > 0")

	// ErrBadRange indicates a Range with Min > Max or a negative Min.
	ErrBadRange = errors.New("core: bandwidth range has Min > Max or Min < 0")
)

// Range is a closed bandwidth interval [Min, Max], Min <= Max, both >= 0.
type Range struct {
	Min float64
	Max float64
}

// Valid reports whether r is a well-formed, non-negative range.
func (r Range) Valid() bool {
	return r.Min >= 0 && r.Min <= r.Max
}

// BidiCapacity is the per-direction bandwidth capacity of an Edge.
// Ingress applies to traffic start→finish; Egress applies to finish→start.
type BidiCapacity struct {
	Ingress Range
	Egress  Range
}

// Vertex is a node in the graph, identified by ID.
//
// Metadata stores arbitrary user data and is shared (not deep-copied) on
// Clone, the usual convention for auxiliary, non-identity vertex data.
type Vertex struct {
	ID       string
	Metadata map[string]interface{}
}

// Edge is a bidirectional link between two vertices with a scalar cost and
// a BidiCapacity.
//
// Index is the edge's stable position of insertion and is its identity for
// ordering purposes (spec §9: sort by an explicit stable key, never by
// textual rendering). Two distinct Edge values between the same vertex
// pair are different edges — identity is reference identity (the *Edge
// pointer), Index merely makes that identity orderable.
type Edge struct {
	Index    int
	From     string
	To       string
	Cost     float64
	Capacity BidiCapacity
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithLoops permits self-loop edges (an edge whose endpoints are equal).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is the in-memory, capacitated bidirectional graph.
//
// muVert guards vertices; muEdgeAdj guards edges and adjacency. The two
// locks are never held at once in the same direction (read-then-read is
// fine) to avoid lock-ordering hazards.
type Graph struct {
	muVert    sync.RWMutex
	muEdgeAdj sync.RWMutex

	allowLoops bool

	nextIndex int
	vertices  map[string]*Vertex
	edges     []*Edge

	// adjacency[v] holds every edge incident to v, regardless of which
	// endpoint v is (the graph is bidirectional).
	adjacency map[string][]*Edge
}

// NewGraph creates an empty Graph. By default self-loops are rejected.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[string]*Vertex),
		adjacency: make(map[string][]*Edge),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
