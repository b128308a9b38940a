// SPDX-License-Identifier: MIT
//
// File: tagqueue.go
// Role: Min-priority queue of vertices keyed by (tag, key), backed by a B-tree.
// Policy:
//   - The priority is captured at Push/Update time; writing Vertex.SetTag directly
//     on a queued vertex does not reorder it. Use Update.
//   - A key is queued at most once. Push of a queued key behaves like Update.
//   - Ties on tag break by ascending key, so PopMin order is deterministic.

// Package tagqueue orders graph vertices by their scratch tag.
//
// Shortest-path and spanning-tree style algorithms keep a tentative distance
// in Vertex.Tag and repeatedly extract the smallest one. Queue supports that
// pattern with decrease-key (Update) and removal by key, all O(log n).
package tagqueue

import (
	"cmp"

	"github.com/tidwall/btree"

	"github.com/katalvlaran/wgraph/core"
)

type entry struct {
	tag float64
	key int
	v   *core.Vertex
}

func entryLess(a, b entry) bool {
	if c := cmp.Compare(a.tag, b.tag); c != 0 {
		return c < 0
	}

	return a.key < b.key
}

// Queue is a tag-ordered set of vertices. Not safe for concurrent use.
type Queue struct {
	tree  *btree.BTreeG[entry]
	index map[int]entry
}

// New returns an empty queue.
func New() *Queue {
	return &Queue{
		tree:  btree.NewBTreeG[entry](entryLess),
		index: make(map[int]entry),
	}
}

// FromGraph returns a queue holding every vertex of g at its current tag.
func FromGraph(g *core.Graph) *Queue {
	q := New()
	for _, v := range g.Vertices() {
		q.Push(v)
	}

	return q
}

// Push queues v at v.Tag(). A nil vertex is ignored.
func (q *Queue) Push(v *core.Vertex) {
	if v == nil {
		return
	}
	if old, ok := q.index[v.Key()]; ok {
		q.tree.Delete(old)
	}
	e := entry{tag: v.Tag(), key: v.Key(), v: v}
	q.tree.Set(e)
	q.index[e.key] = e
}

// Update writes tag into v and moves it to its new position, queueing it if absent.
func (q *Queue) Update(v *core.Vertex, tag float64) {
	if v == nil {
		return
	}
	v.SetTag(tag)
	q.Push(v)
}

// PopMin removes and returns the vertex with the smallest (tag, key).
func (q *Queue) PopMin() (*core.Vertex, bool) {
	e, ok := q.tree.PopMin()
	if !ok {
		return nil, false
	}
	delete(q.index, e.key)

	return e.v, true
}

// Min returns the vertex PopMin would return, without removing it.
func (q *Queue) Min() (*core.Vertex, bool) {
	e, ok := q.tree.Min()
	if !ok {
		return nil, false
	}

	return e.v, true
}

// Remove drops key from the queue and reports whether it was queued.
func (q *Queue) Remove(key int) bool {
	e, ok := q.index[key]
	if !ok {
		return false
	}
	q.tree.Delete(e)
	delete(q.index, key)

	return true
}

// Contains reports whether key is queued.
func (q *Queue) Contains(key int) bool {
	_, ok := q.index[key]

	return ok
}

// Len returns the number of queued vertices.
func (q *Queue) Len() int { return q.tree.Len() }

// Keys returns the queued keys in pop order.
func (q *Queue) Keys() []int {
	out := make([]int, 0, q.tree.Len())
	q.tree.Scan(func(e entry) bool {
		out = append(out, e.key)
		return true
	})

	return out
}
