// Package builder generates synthetic weighted undirected graphs for
// separation analysis: benchmarks, fixtures, and the `generate` command.
//
// The package is built from three pieces:
//
//   - Constructors (Star, Path, Cycle, Wheel, Complete, Grid, RandomSparse)
//     append one topology each to a *graph.WeightedGraph.
//   - BuilderOption values (WithSeed, WithRand, WithWeightFn and the
//     WithXWeight shorthands) resolve into an immutable config before any
//     constructor runs.
//   - WeightFn distributions produce finite, non-negative edge lengths.
//
// Guarantees:
//
//   - Determinism: the same options, seed and constructor order produce the
//     same edge list.
//   - Option constructors panic on meaningless arguments; constructors never
//     panic and return sentinel errors wrapped with context.
//   - Every edge is emitted through graph.AddUndirected, so the result can go
//     straight into graph.NewAdjacencyList.
//
// Example:
//
//	g, err := builder.BuildGraph(
//		[]builder.BuilderOption{builder.WithSeed(7), builder.WithUniformWeight(1, 10)},
//		builder.RandomSparse(500, 0.01),
//	)
package builder
