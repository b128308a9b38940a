// SPDX-License-Identifier: MIT
//
// File: gonumgraph.go
// Role: Read-only view of *core.Graph as a gonum graph.WeightedUndirected.
// Policy:
//   - Vertex keys map to node IDs one-to-one (int <-> int64).
//   - Missing nodes and edges are reported as untyped nil, as gonum expects.
//   - Neighbor iteration is ordered by key so gonum algorithms are deterministic.
//   - The adapter holds no copy: mutating the wrapped graph is visible immediately,
//     and must not happen while a gonum algorithm is running.

// Package gonumgraph lets gonum's graph algorithms run directly on a core.Graph.
//
//	u := gonumgraph.New(g)
//	sp := path.DijkstraFrom(u.Node(1), u)
//	nodes, dist := sp.To(4)
//
// FromGonum goes the other way and copies any gonum weighted graph into a
// fresh core.Graph.
package gonumgraph

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/iterator"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/wgraph/core"
)

var (
	_ graph.WeightedUndirected = (*Undirected)(nil)
	_ graph.Undirected         = (*Undirected)(nil)
	_ graph.Node               = Node{}
)

// Node is a graph.Node backed by a live vertex record.
type Node struct {
	*core.Vertex
}

// ID returns the vertex key as a gonum node ID.
func (n Node) ID() int64 { return int64(n.Key()) }

// Undirected adapts *core.Graph to graph.WeightedUndirected.
type Undirected struct {
	g      *core.Graph
	self   float64
	absent float64
}

// Option configures an Undirected adapter.
type Option func(*Undirected)

// WithSelf sets the weight reported for a node to itself. Default 0.
func WithSelf(w float64) Option {
	return func(u *Undirected) { u.self = w }
}

// WithAbsent sets the weight reported for a missing edge. Default +Inf.
func WithAbsent(w float64) Option {
	return func(u *Undirected) { u.absent = w }
}

// New wraps g. It panics on a nil graph.
func New(g *core.Graph, opts ...Option) *Undirected {
	if g == nil {
		panic("gonumgraph: New(nil graph)")
	}
	u := &Undirected{g: g, self: 0, absent: math.Inf(1)}
	for _, opt := range opts {
		opt(u)
	}

	return u
}

// Graph returns the wrapped graph.
func (u *Undirected) Graph() *core.Graph { return u.g }

// Node returns the node with the given ID, or nil.
func (u *Undirected) Node(id int64) graph.Node {
	v, ok := u.g.Vertex(int(id))
	if !ok {
		return nil
	}

	return Node{v}
}

// Nodes returns all nodes ordered by ID.
func (u *Undirected) Nodes() graph.Nodes {
	vs := u.g.Vertices()
	if len(vs) == 0 {
		return graph.Empty
	}

	return iterator.NewOrderedNodes(toNodes(vs))
}

// From returns the neighbors of id ordered by ID.
func (u *Undirected) From(id int64) graph.Nodes {
	keys := u.g.NeighborKeys(int(id))
	if len(keys) == 0 {
		return graph.Empty
	}
	nodes := make([]graph.Node, len(keys))
	for i, k := range keys {
		v, _ := u.g.Vertex(k)
		nodes[i] = Node{v}
	}

	return iterator.NewOrderedNodes(nodes)
}

// HasEdgeBetween reports whether an edge joins xid and yid.
func (u *Undirected) HasEdgeBetween(xid, yid int64) bool {
	return u.g.HasEdge(int(xid), int(yid))
}

// Edge returns the edge from uid to vid, or nil.
func (u *Undirected) Edge(uid, vid int64) graph.Edge {
	return u.WeightedEdgeBetween(uid, vid)
}

// EdgeBetween returns the edge between xid and yid, or nil.
func (u *Undirected) EdgeBetween(xid, yid int64) graph.Edge {
	return u.WeightedEdgeBetween(xid, yid)
}

// WeightedEdge returns the weighted edge from uid to vid, or nil.
func (u *Undirected) WeightedEdge(uid, vid int64) graph.WeightedEdge {
	return u.WeightedEdgeBetween(uid, vid)
}

// WeightedEdgeBetween returns the weighted edge between xid and yid, or nil.
// The returned edge is oriented from xid to yid.
func (u *Undirected) WeightedEdgeBetween(xid, yid int64) graph.WeightedEdge {
	w, ok := u.g.Weight(int(xid), int(yid))
	if !ok {
		return nil
	}
	x, _ := u.g.Vertex(int(xid))
	y, _ := u.g.Vertex(int(yid))

	return simple.WeightedEdge{F: Node{x}, T: Node{y}, W: w}
}

// Weight returns the weight of the edge between xid and yid.
// A node paired with itself reports the self weight; a missing edge reports
// the absent weight with ok=false.
func (u *Undirected) Weight(xid, yid int64) (w float64, ok bool) {
	if xid == yid && u.g.HasVertex(int(xid)) {
		return u.self, true
	}
	if w, ok := u.g.Weight(int(xid), int(yid)); ok {
		return w, true
	}

	return u.absent, false
}

func toNodes(vs []*core.Vertex) []graph.Node {
	nodes := make([]graph.Node, len(vs))
	for i, v := range vs {
		nodes[i] = Node{v}
	}

	return nodes
}

// FromGonum copies src into a new core.Graph. Node IDs become vertex keys.
// Self-loops are skipped. When src reports different weights for the two
// directions of a pair, the first one seen in node order wins.
// A negative weight aborts the copy with core.ErrNegativeWeight.
func FromGonum(src graph.Weighted, opts ...core.GraphOption) (*core.Graph, error) {
	if src == nil {
		return nil, fmt.Errorf("gonumgraph: FromGonum: nil source")
	}
	g := core.NewGraph(opts...)
	ids := graph.NodesOf(src.Nodes())
	for _, n := range ids {
		g.AddVertex(int(n.ID()))
	}
	for _, n := range ids {
		uid := n.ID()
		to := src.From(uid)
		for to.Next() {
			vid := to.Node().ID()
			if vid == uid || g.HasEdge(int(uid), int(vid)) {
				continue
			}
			w, ok := src.Weight(uid, vid)
			if !ok {
				continue
			}
			if err := g.TryConnect(int(uid), int(vid), w); err != nil {
				return nil, fmt.Errorf("gonumgraph: FromGonum: edge %d-%d: %w", uid, vid, err)
			}
		}
	}

	return g, nil
}
