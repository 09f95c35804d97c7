package graph

import (
	"fmt"
	"math"
)

// AddEdge appends the directed half-edge u→v with the given length and grows
// N so that both endpoints are valid vertex ids. Negative ids are rejected.
//
// Complexity: O(1) amortized.
func (g *WeightedGraph) AddEdge(u, v Vertex, length Distance) error {
	if g == nil {
		return ErrNilGraph
	}
	if u < 0 || v < 0 {
		return fmt.Errorf("%w: edge %d→%d", ErrVertexOutOfRange, u, v)
	}

	g.Edges = append(g.Edges, WeightedEdge{From: u, To: v, Length: length})
	if u >= g.N {
		g.N = u + 1
	}
	if v >= g.N {
		g.N = v + 1
	}

	return nil
}

// AddUndirected inserts both u→v and v→u with the same length, the way every
// accepted input line is expanded.
//
// Complexity: O(1) amortized.
func (g *WeightedGraph) AddUndirected(u, v Vertex, length Distance) error {
	if err := g.AddEdge(u, v, length); err != nil {
		return err
	}

	return g.AddEdge(v, u, length)
}

// NewAdjacencyList builds an AdjacencyList of size g.N. For every edge
// (u, v, length), in input order, (v, length) is appended to u's list.
// No deduplication, no sorting and no weight validation is performed;
// parallel edges survive as separate entries.
//
// Returns ErrNilGraph for a nil graph and ErrVertexOutOfRange when an edge
// references a vertex outside [0, g.N).
//
// Complexity: O(V + E) time and space.
func NewAdjacencyList(g *WeightedGraph) (AdjacencyList, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	adj := make(AdjacencyList, g.N)
	for i, e := range g.Edges {
		if e.From < 0 || e.From >= g.N || e.To < 0 || e.To >= g.N {
			return nil, fmt.Errorf("%w: edge #%d %d→%d with n=%d", ErrVertexOutOfRange, i, e.From, e.To, g.N)
		}
		adj[e.From] = append(adj[e.From], Neighbor{To: e.To, Length: e.Length})
	}

	return adj, nil
}

// Len returns the number of vertices n.
func (a AdjacencyList) Len() int { return len(a) }

// Neighbors returns v's neighbor list. The slice is shared; callers must not
// modify it.
func (a AdjacencyList) Neighbors(v Vertex) ([]Neighbor, error) {
	if v < 0 || v >= len(a) {
		return nil, fmt.Errorf("%w: %d with n=%d", ErrVertexOutOfRange, v, len(a))
	}

	return a[v], nil
}

// EdgeCount returns the number of directed entries across all lists.
func (a AdjacencyList) EdgeCount() int {
	total := 0
	for _, nbrs := range a {
		total += len(nbrs)
	}

	return total
}

// Validate scans every entry once and fails fast on the first neighbor id
// outside [0, n), NaN or infinite length, or negative length. Search
// ordering is undefined for such inputs, so callers run this before any
// traversal.
//
// Complexity: O(V + E).
func (a AdjacencyList) Validate() error {
	n := len(a)
	for u, nbrs := range a {
		for _, nb := range nbrs {
			if nb.To < 0 || nb.To >= n {
				return fmt.Errorf("%w: edge %d→%d with n=%d", ErrVertexOutOfRange, u, nb.To, n)
			}
			if math.IsNaN(nb.Length) || math.IsInf(nb.Length, 0) {
				return fmt.Errorf("%w: edge %d→%d length=%g", ErrInvalidWeight, u, nb.To, nb.Length)
			}
			if nb.Length < 0 {
				return fmt.Errorf("%w: edge %d→%d length=%g", ErrNegativeWeight, u, nb.To, nb.Length)
			}
		}
	}

	return nil
}
