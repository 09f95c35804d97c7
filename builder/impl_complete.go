// SPDX-License-Identifier: MIT
// Package: sixdegrees/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - Emits every unordered pair i—j with i<j, i asc then j asc.
//
// Complexity: O(n²) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/sixdegrees/graph"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds K_n. With n=1 the graph has a
// single isolated vertex.
func Complete(n int) Constructor {
	return func(g *graph.WeightedGraph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		ensureVertices(g, n)

		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := link(methodComplete, g, cfg, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
