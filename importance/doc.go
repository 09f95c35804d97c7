// Package importance reduces a separation.Table to one "important node" per
// hop count: the source with the broadest, closest reach.
//
// Ranking, per hop count k:
//
//  1. Sort the sources' (count, average distance) cells by count descending,
//     then average ascending.
//  2. Keep the top max(1, ceil(0.1·n)) entries (WithCutoffFraction changes 0.1).
//  3. Among those, choose the smallest average distance; the first one wins ties.
//  4. If the winner reaches nobody, k has no important node (nil).
//  5. Otherwise the winner is the lowest source id holding that exact pair,
//     and its Profile lists its cells at every hop count.
//
// Step 3 deliberately re-ranks inside the window: with n ≥ 20 the window
// holds several entries, and a source with slightly lower reach but shorter
// distance can beat the top-ranked one.
//
// Example:
//
//	table, _ := separation.Analyze(adj, 6)
//	for _, p := range importance.Select(table) {
//	    if p == nil {
//	        continue
//	    }
//	    fmt.Println(p.Degree, p.Vertex, p.At())
//	}
package importance
