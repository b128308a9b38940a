// SPDX-License-Identifier: MIT
// Package: wgraph/builder
//
// impl_wheel.go: implementation of Wheel(n) constructor.
//
// Contract:
//   • n ≥ 4: a hub at local index 0 plus a rim cycle over 1..n-1 (rim size ≥ 3).
//   • Rim edges are emitted first, then spokes in ascending rim order.
//
// Complexity: O(n) time, 2(n-1) edges.

package builder

import "github.com/katalvlaran/wgraph/core"

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4
)

// Wheel returns a Constructor that builds the wheel W_n.
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minWheelNodes {
			return tooFew(methodWheel, n, minWheelNodes)
		}
		if err := addVertices(g, cfg, methodWheel, n); err != nil {
			return err
		}
		rim := n - 1
		for i := 0; i < rim; i++ {
			if err := connect(g, cfg, methodWheel, 1+i, 1+(i+1)%rim); err != nil {
				return err
			}
		}
		for i := 1; i < n; i++ {
			if err := connect(g, cfg, methodWheel, hubIndex, i); err != nil {
				return err
			}
		}

		return nil
	}
}
