// SPDX-License-Identifier: MIT
// Package: sixdegrees/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Emits i—(i+1) for i = 0..n-2.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/sixdegrees/graph"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds a simple chain 0—1—…—(n-1).
// Chains are the natural fixture for hop bounds: vertex i sits exactly
// i hops from vertex 0.
func Path(n int) Constructor {
	return func(g *graph.WeightedGraph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		ensureVertices(g, n)

		for i := 0; i+1 < n; i++ {
			if err := link(methodPath, g, cfg, i, i+1); err != nil {
				return err
			}
		}

		return nil
	}
}
