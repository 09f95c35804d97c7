// SPDX-License-Identifier: MIT
// Package: sixdegrees/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Erdős–Rényi G(n,p): each unordered pair {i,j}, i<j, is included
// independently with probability p.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil (else ErrNeedRandSource), even for p∈{0,1}.
//   - g.N is raised to n, so isolated vertices are still counted.
//
// Complexity: O(n²) Bernoulli trials, O(1) extra space.
//
// Determinism: trial order is i asc, j asc; the same seed yields the same
// edge list and weights.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/sixdegrees/graph"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples a G(n,p) random graph.
func RandomSparse(n int, p float64) Constructor {
	return func(g *graph.WeightedGraph, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if math.IsNaN(p) || p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%g not in [%g,%g]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}
		ensureVertices(g, n)

		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if cfg.rng.Float64() >= p {
					continue
				}
				if err := link(methodRandomSparse, g, cfg, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
