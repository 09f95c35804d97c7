// SPDX-License-Identifier: MIT
// Package: sixdegrees/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Hub is vertex 0; leaves are 1..n-1.
//   - Emits spokes 0—i in increasing leaf order.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/sixdegrees/graph"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a star topology with n vertices:
// hub 0 and n-1 leaves.
func Star(n int) Constructor {
	return func(g *graph.WeightedGraph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		ensureVertices(g, n)

		for i := 1; i < n; i++ {
			if err := link(methodStar, g, cfg, 0, i); err != nil {
				return err
			}
		}

		return nil
	}
}
