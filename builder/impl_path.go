// SPDX-License-Identifier: MIT
// Package: pathdist/builder
//
// impl_path.go - Path(n) and Cycle(n) constructors.
//
// Contract:
//   - Path: n ≥ 2; connections (i-1)—i for i=1..n-1 in increasing order.
//   - Cycle: n ≥ 3; the path plus (n-1)—0.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathdist/core"
)

const (
	methodPath    = "Path"
	methodCycle   = "Cycle"
	minPathNodes  = 2
	minCycleNodes = 3
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		addLine(g, cfg, n)
		for i := 1; i < n; i++ {
			connect(g, cfg, i-1, i)
		}

		return nil
	}
}

// Cycle returns a Constructor that builds a simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		addLine(g, cfg, n)
		for i := 1; i < n; i++ {
			connect(g, cfg, i-1, i)
		}
		connect(g, cfg, n-1, 0)

		return nil
	}
}
