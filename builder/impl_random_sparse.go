// SPDX-License-Identifier: MIT
// Package: pathdist/builder
//
// impl_random_sparse.go - RandomSparse(n, p) constructor.
//
// Contract:
//   - n ≥ 1, p ∈ [0,1]; RNG required when 0 < p < 1.
//   - Unordered pairs {i,j}, i<j, each included with probability p,
//     trials in i asc, j asc order.
//
// Complexity: O(n²) Bernoulli trials.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathdist/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples an Erdős–Rényi-like graph
// over n points with independent connection probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		addLine(g, cfg, n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				switch {
				case p == probMin:
					continue
				case p == probMax:
					connect(g, cfg, i, j)
				case cfg.rng.Float64() < p:
					connect(g, cfg, i, j)
				}
			}
		}

		return nil
	}
}
