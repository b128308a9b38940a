// SPDX-License-Identifier: MIT
// Package: wgraph/builder
//
// impl_path.go: implementation of Path(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Adds keys 0..n-1 (plus offset) and edges {i-1, i} for i = 1..n-1.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import "github.com/katalvlaran/wgraph/core"

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds the simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return tooFew(methodPath, n, minPathNodes)
		}
		if err := addVertices(g, cfg, methodPath, n); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := connect(g, cfg, methodPath, i-1, i); err != nil {
				return err
			}
		}

		return nil
	}
}
