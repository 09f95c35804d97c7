// Package sixdegrees measures how far influence spreads through a weighted
// undirected graph, one hop at a time.
//
// 🚀 What is sixdegrees?
//
//	For every vertex, a hop-bounded Dijkstra search records the shortest
//	distance to every other vertex together with the hop count of that
//	path. The results are folded into a table of
//		(reachable count, average distance)
//	per source and per hop count k = 1..max degree, and for every k the
//	most important node is picked: broadest reach first, then closest.
//
// ✨ Layout
//
//	graph/       — Vertex, Distance, WeightedGraph and AdjacencyList
//	separation/  — hop-bounded search, aggregation, parallel Analyze
//	importance/  — top-decile, closest-average node selection
//	loader/      — `<label> <u> <v> <weight>` edge list reader and writer
//	builder/     — synthetic topologies (star, path, grid, G(n,p), …)
//	report/      — text, JSON and YAML reports
//	cmd/         — the `sixdegrees analyze|generate` CLI
//
// Quick ASCII example:
//
//	    0───1───2───3      (unit lengths)
//
//	degree 1: vertex 1 reaches {0, 2} at average 1.00
//	degree 2: vertex 0 reaches {2}    at average 2.00
//
//	go install github.com/katalvlaran/sixdegrees/cmd/sixdegrees@latest
package sixdegrees
