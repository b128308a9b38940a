// SPDX-License-Identifier: MIT
// Package: wgraph/builder
//
// helpers.go: shared vertex and edge emission for constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/wgraph/core"
)

// addVertices inserts keys cfg.key(0..n-1). An existing key is a collision:
// constructors never silently merge into foreign vertices.
// Complexity: O(n).
func addVertices(g *core.Graph, cfg builderConfig, method string, n int) error {
	for i := 0; i < n; i++ {
		k := cfg.key(i)
		if err := g.TryAddVertex(k); err != nil {
			return fmt.Errorf("%s: AddVertex(%d): %w: %w", method, k, ErrConstructFailed, err)
		}
	}

	return nil
}

// connect joins the vertices at local indices i and j with the next weight.
func connect(g *core.Graph, cfg builderConfig, method string, i, j int) error {
	u, v := cfg.key(i), cfg.key(j)
	w := cfg.weight()
	if err := g.TryConnect(u, v, w); err != nil {
		return fmt.Errorf("%s: Connect(%d-%d, w=%g): %w", method, u, v, w, err)
	}

	return nil
}

// tooFew formats the standard minimum-size violation.
func tooFew(method string, n, min int) error {
	return fmt.Errorf("%s: n=%d < min=%d: %w", method, n, min, ErrTooFewVertices)
}
