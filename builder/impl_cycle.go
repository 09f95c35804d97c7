// SPDX-License-Identifier: MIT
// Package: sixdegrees/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Emits i—(i+1 mod n) for i = 0..n-1.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/sixdegrees/graph"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds a simple ring C_n.
func Cycle(n int) Constructor {
	return func(g *graph.WeightedGraph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		ensureVertices(g, n)

		for i := 0; i < n; i++ {
			if err := link(methodCycle, g, cfg, i, (i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}
