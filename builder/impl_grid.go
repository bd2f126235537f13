// SPDX-License-Identifier: MIT
// Package: pathdist/builder
//
// impl_grid.go - Grid(rows, cols) constructor.
//
// Contract:
//   - rows, cols ≥ 1.
//   - Point index r*cols+c, coordinates X=c, Y=r, registered row-major.
//   - For each (r,c) emit Right then Bottom connection if present.
//
// Complexity: O(rows·cols) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathdist/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		idx := func(r, c int) int { return r*cols + c }
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				g.AddPoint(core.Point{ID: cfg.idFn(idx(r, c)), X: int64(c), Y: int64(r)})
			}
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					connect(g, cfg, idx(r, c), idx(r, c+1))
				}
				if r+1 < rows {
					connect(g, cfg, idx(r, c), idx(r+1, c))
				}
			}
		}

		return nil
	}
}
