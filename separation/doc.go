// Package separation computes, for every vertex of a weighted undirected
// graph, how many other vertices sit at each of a bounded number of hops
// ("degrees of separation") and the average shortest-path distance to them.
//
// Overview:
//
//   - Search runs a Dijkstra-style search from one source that never relaxes
//     an edge past the hop ceiling maxDegree. It records, per vertex, the best
//     distance found and the hop count that produced it.
//   - Summarize turns one search into per-degree cells (count, mean distance).
//   - Aggregate / Analyze collect the cells of every source into a Table
//     indexed [degree-1][source].
//
// Relaxation semantics:
//
//	Only distance decides whether a neighbor is updated; the hop count rides
//	along with the winning distance. A vertex reachable in one expensive hop
//	and in two cheap hops is recorded at two hops. Entries popped after their
//	vertex has improved are still expanded with their own (distance, hops).
//
// Concurrency:
//
//	Per-source searches share nothing but the read-only adjacency list.
//	WithWorkers(w) runs up to w of them at once through an errgroup; each
//	writes only its own table column, so results never depend on completion
//	order.
//
// Complexity:
//
//   - Search:  O(E log E) time, O(V + E) space.
//   - Analyze: O(V · E log E) time, O(V · maxDegree) space for the Table.
//
// Errors:
//
//   - ErrNilAdjacency, ErrSourceOutOfRange, ErrBadMaxDegree, ErrOptionViolation.
//   - graph.ErrNegativeWeight / graph.ErrInvalidWeight / graph.ErrVertexOutOfRange
//     wrapped from the upfront validation in Analyze.
//
// Example:
//
//	table, err := separation.Analyze(adj, 6, separation.WithWorkers(4))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	cell, _ := table.At(1, 0) // degree 1, source 0
package separation
