// SPDX-License-Identifier: MIT
// Package: sixdegrees/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Topology factories live in impl_*.go.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig.
//   - Determinism: same options/seed and constructor order ⇒ identical edge lists.
//   - Never panic at build time; constructors return sentinel errors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/sixdegrees/graph"
)

// Constructor appends a topology to g using the resolved builderConfig.
// Every undirected edge is emitted through graph.AddUndirected, so the
// result is already symmetrized for graph.NewAdjacencyList.
type Constructor func(g *graph.WeightedGraph, cfg builderConfig) error

// BuildGraph creates an empty WeightedGraph, resolves the builder
// configuration from bopts, and applies all constructors in order. Vertex
// ids of different constructors overlap (each starts at 0), so composing
// constructors overlays topologies on the same vertices.
//
// Errors are wrapped as "BuildGraph: %w"; branch with errors.Is against
// ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource, ErrConstructFailed.
//
// Complexity: O(len(bopts)) plus the cost of each constructor.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*graph.WeightedGraph, error) {
	g := &graph.WeightedGraph{}
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// ensureVertices grows g.N to at least n so isolated vertices still count.
func ensureVertices(g *graph.WeightedGraph, n int) {
	if g.N < n {
		g.N = n
	}
}

// link emits one undirected edge u—v with a weight drawn from cfg.
func link(method string, g *graph.WeightedGraph, cfg builderConfig, u, v graph.Vertex) error {
	w := cfg.weightFn(cfg.rng)
	if err := g.AddUndirected(u, v, w); err != nil {
		return fmt.Errorf("%s: AddUndirected(%d—%d, w=%g): %w", method, u, v, w, err)
	}

	return nil
}
