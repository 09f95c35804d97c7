// SPDX-License-Identifier: MIT
// Package: sixdegrees/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Contract:
//   - rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   - Cell (r,c) is vertex r*cols + c.
//   - 4-neighborhood: emits right neighbor then down neighbor, row-major.
//
// Complexity: O(rows·cols) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/sixdegrees/graph"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that builds a rows×cols lattice.
func Grid(rows, cols int) Constructor {
	return func(g *graph.WeightedGraph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d cols=%d < min=%d: %w", methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		ensureVertices(g, rows*cols)

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				id := r*cols + c
				if c+1 < cols {
					if err := link(methodGrid, g, cfg, id, id+1); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := link(methodGrid, g, cfg, id, id+cols); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
