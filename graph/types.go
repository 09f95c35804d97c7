// Package graph defines the Vertex, Distance, WeightedEdge, WeightedGraph and
// AdjacencyList types shared by every other package, plus sentinel errors.
//
// Errors:
//
//	ErrNilGraph          - graph pointer is nil.
//	ErrVertexOutOfRange  - an edge endpoint or query vertex is not in [0, n).
//	ErrNegativeWeight    - an edge length is below zero.
//	ErrInvalidWeight     - an edge length is NaN or infinite.
package graph

import "errors"

// Sentinel errors for graph construction and validation.
var (
	// ErrNilGraph indicates that a nil *WeightedGraph was passed.
	ErrNilGraph = errors.New("graph: graph is nil")

	// ErrVertexOutOfRange indicates a vertex id outside [0, n).
	ErrVertexOutOfRange = errors.New("graph: vertex out of range")

	// ErrNegativeWeight indicates an edge length below zero.
	ErrNegativeWeight = errors.New("graph: negative edge length")

	// ErrInvalidWeight indicates an edge length that is NaN or ±Inf.
	ErrInvalidWeight = errors.New("graph: edge length is not a finite number")
)

// Vertex is a dense, non-negative vertex identifier in [0, n).
type Vertex = int

// Distance is an edge length or an accumulated path length.
// Values are finite and non-negative by precondition.
type Distance = float64

// WeightedEdge is one directed half of an undirected edge: From→To with Length.
type WeightedEdge struct {
	From   Vertex
	To     Vertex
	Length Distance
}

// WeightedGraph is the flat edge list produced by the loader or the builder.
//
// N is one plus the largest vertex id seen; Edges is already symmetrized when
// filled through AddUndirected.
type WeightedGraph struct {
	Edges []WeightedEdge
	N     int
}

// Neighbor is one entry of a vertex's adjacency: the neighbor id and the
// length of the connecting edge.
type Neighbor struct {
	To     Vertex
	Length Distance
}

// AdjacencyList maps each vertex to its ordered neighbor list.
// It is built once by NewAdjacencyList and read-only afterward.
type AdjacencyList [][]Neighbor
