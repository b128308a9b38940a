// SPDX-License-Identifier: MIT
// Package: wgraph/builder
//
// impl_star.go: implementation of Star(n) constructor.
//
// Contract:
//   • n ≥ 2: one hub plus at least one leaf.
//   • Hub is local index 0; leaves 1..n-1 are joined to it in ascending order.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import "github.com/katalvlaran/wgraph/core"

const (
	methodStar   = "Star"
	minStarNodes = 2
	hubIndex     = 0
)

// Star returns a Constructor that builds the star K_{1,n-1}.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return tooFew(methodStar, n, minStarNodes)
		}
		if err := addVertices(g, cfg, methodStar, n); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := connect(g, cfg, methodStar, hubIndex, i); err != nil {
				return err
			}
		}

		return nil
	}
}
