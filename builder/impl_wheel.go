// SPDX-License-Identifier: MIT
// Package: sixdegrees/builder
//
// impl_wheel.go - implementation of Wheel(n) constructor.
//
// Contract:
//   - n ≥ 4 (else ErrTooFewVertices): hub plus a rim cycle of at least 3.
//   - Hub is vertex 0; rim vertices are 1..n-1.
//   - Emits rim edges first (i—i+1, closing (n-1)—1), then spokes 0—i.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/sixdegrees/graph"
)

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4
)

// Wheel returns a Constructor that builds W_n: a cycle on n-1 rim vertices
// plus a hub joined to every rim vertex.
func Wheel(n int) Constructor {
	return func(g *graph.WeightedGraph, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		ensureVertices(g, n)

		for i := 1; i < n; i++ {
			next := i + 1
			if next == n {
				next = 1
			}
			if err := link(methodWheel, g, cfg, i, next); err != nil {
				return err
			}
		}
		for i := 1; i < n; i++ {
			if err := link(methodWheel, g, cfg, 0, i); err != nil {
				return err
			}
		}

		return nil
	}
}
