// SPDX-License-Identifier: MIT
// Package: pathdist/builder
//
// impl_star.go - Star(n) and Complete(n) constructors.
//
// Contract:
//   - Star: n ≥ 2; index 0 is the hub, connections 0—i for i=1..n-1.
//   - Complete: n ≥ 1; connections i—j for every i<j, i asc then j asc.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathdist/core"
)

const (
	methodStar       = "Star"
	methodComplete   = "Complete"
	minStarNodes     = 2
	minCompleteNodes = 1
)

// Star returns a Constructor that builds a star with hub index 0.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		addLine(g, cfg, n)
		for i := 1; i < n; i++ {
			connect(g, cfg, 0, i)
		}

		return nil
	}
}

// Complete returns a Constructor that builds the complete graph K_n.
// Complexity: O(n²).
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		addLine(g, cfg, n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				connect(g, cfg, i, j)
			}
		}

		return nil
	}
}
