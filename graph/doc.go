// Package graph provides the immutable graph model used by the degree
// analysis: a flat, symmetrized edge list (WeightedGraph) and the adjacency
// representation built from it once (AdjacencyList).
//
// Vertices are dense integer ids in [0, n). Every undirected input edge is
// stored as two directed half-edges so that the adjacency is symmetric:
//
//	g := &graph.WeightedGraph{}
//	_ = g.AddUndirected(0, 1, 1.5) // appends 0→1 and 1→0
//	adj, err := graph.NewAdjacencyList(g)
//
// Guarantees:
//
//   - Neighbor lists keep input order; nothing is sorted or deduplicated.
//   - Parallel edges between the same pair stay as separate entries.
//   - NewAdjacencyList never checks weights; AdjacencyList.Validate does,
//     and the analysis runs it before searching.
//
// Complexity:
//
//   - NewAdjacencyList: O(V + E) time and space.
//   - Validate:         O(V + E) time, O(1) space.
//
// Thread safety:
//
//	An AdjacencyList is never mutated after construction, so any number of
//	goroutines may read it concurrently without locks.
package graph
