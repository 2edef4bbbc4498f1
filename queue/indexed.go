// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package queue provides identifier-indexed priority queues: every
// entry is addressed by a stable arena identifier, so the priority of
// any entry can be updated or the entry removed in O(log n) regardless
// of where heap maintenance has moved it. T is the untyped core; Min
// and Max bind it to an identifier domain with natural ordering.
package queue

import (
	"iter"
	"slices"

	"cloudeng.io/entity/arena"
	"cloudeng.io/entity/component"
)

// arity is the branching factor of the heap.
const arity = 8

// T is an identifier-indexed priority queue over values of type V,
// implemented as an 8-ary heap ordered by a caller supplied comparison
// function. The root is the entry whose value compares less than all
// others. Heap positions are 32 bits wide, so a queue holds at most
// 2^32 - 1 identifiers at a time.
//
// A queue is not safe for concurrent use: callers must serialize
// mutations externally. Read-only operations may run concurrently with
// each other but not with a mutation.
type T[V any] struct {
	less      func(a, b V) bool
	values    *component.Map[V]
	positions *component.Map[uint32]
	inverse   []arena.Raw
}

// New creates a new, empty queue ordered by less.
func New[V any](less func(a, b V) bool, opts ...Option) *T[V] {
	var o options
	for _, fn := range opts {
		fn(&o)
	}
	return &T[V]{
		less:      less,
		values:    component.New[V](o.sliceCap),
		positions: component.New[uint32](o.sliceCap),
		inverse:   make([]arena.Raw, 0, o.sliceCap),
	}
}

// Len returns the number of identifiers currently in the queue.
func (q *T[V]) Len() int {
	return len(q.inverse)
}

// Empty reports whether the queue is empty.
func (q *T[V]) Empty() bool {
	return len(q.inverse) == 0
}

// Clear removes all entries, retaining the backing storage.
func (q *T[V]) Clear() {
	q.values.Reset()
	q.positions.Reset()
	q.inverse = q.inverse[:0]
}

// Insert adds id with the supplied value. If id is already present its
// value is overwritten and heap order restored; the queue never holds
// more than one entry per identifier.
func (q *T[V]) Insert(id arena.Raw, v V) {
	q.values.Insert(id, v)
	if p, ok := q.positions.Lookup(id); ok {
		q.sink(int(p))
		q.swim(int(p))
		return
	}
	p := len(q.inverse)
	q.positions.Insert(id, uint32(p)) //nolint:gosec // bounded by the 2^32-1 capacity
	q.inverse = append(q.inverse, id)
	q.swim(p)
}

// Remove removes id from the queue, returning it with its value. It
// returns false, changing nothing, if id is not present.
func (q *T[V]) Remove(id arena.Raw) (arena.Raw, V, bool) {
	p, ok := q.positions.Lookup(id)
	if !ok {
		var zero V
		return arena.Raw{}, zero, false
	}
	return q.removeAt(int(p))
}

// RemovePosition removes the entry at heap position p, returning its
// identifier and value. It returns false if p is out of range.
func (q *T[V]) RemovePosition(p int) (arena.Raw, V, bool) {
	if p < 0 || p >= len(q.inverse) {
		var zero V
		return arena.Raw{}, zero, false
	}
	return q.removeAt(p)
}

func (q *T[V]) removeAt(p int) (arena.Raw, V, bool) {
	last := len(q.inverse) - 1
	q.swap(p, last)
	id := q.inverse[last]
	q.inverse = q.inverse[:last]
	v, _ := q.values.Delete(id)
	q.positions.Delete(id)
	if p < last {
		// The position now holds the former last entry and may
		// violate heap order in either direction.
		q.sink(p)
		q.swim(p)
	}
	return id, v, true
}

// Pop removes and returns the root entry. It returns false if the
// queue is empty.
func (q *T[V]) Pop() (arena.Raw, V, bool) {
	return q.RemovePosition(0)
}

// Peek returns the value at the root without mutating the queue. It
// returns false if the queue is empty.
func (q *T[V]) Peek() (V, bool) {
	return q.Position(0)
}

// PeekID is like Peek but also returns the root identifier.
func (q *T[V]) PeekID() (arena.Raw, V, bool) {
	return q.PositionID(0)
}

// Position returns the value at heap position p. It returns false if
// p is out of range.
func (q *T[V]) Position(p int) (V, bool) {
	if p < 0 || p >= len(q.inverse) {
		var zero V
		return zero, false
	}
	return q.values.Lookup(q.inverse[p])
}

// PositionID is like Position but also returns the identifier occupying
// the position.
func (q *T[V]) PositionID(p int) (arena.Raw, V, bool) {
	if p < 0 || p >= len(q.inverse) {
		var zero V
		return arena.Raw{}, zero, false
	}
	id := q.inverse[p]
	v, _ := q.values.Lookup(id)
	return id, v, true
}

// Value returns the value currently associated with id. It returns
// false if id is not present.
func (q *T[V]) Value(id arena.Raw) (V, bool) {
	return q.values.Lookup(id)
}

// Decrease lowers id's value to v only if v compares less than the
// current value, then restores heap order. Calls for an absent id or a
// value that does not compare less are no-ops; this is the decrease-key
// primitive of shortest-path search, not a general reorder.
func (q *T[V]) Decrease(id arena.Raw, v V) {
	cur, ok := q.values.Lookup(id)
	if !ok {
		return
	}
	p, ok := q.positions.Lookup(id)
	if !ok {
		return
	}
	if q.less(v, cur) {
		q.values.Insert(id, v)
		q.swim(int(p))
	}
}

// Increase raises id's value to v only if the current value compares
// less than v, then restores heap order. Calls for an absent id or a
// value that does not compare greater are no-ops.
func (q *T[V]) Increase(id arena.Raw, v V) {
	cur, ok := q.values.Lookup(id)
	if !ok {
		return
	}
	p, ok := q.positions.Lookup(id)
	if !ok {
		return
	}
	if q.less(cur, v) {
		q.values.Insert(id, v)
		q.sink(int(p))
	}
}

// All returns an iterator over (identifier, value) pairs in heap-array
// order. This is not fully sorted order: only the root is guaranteed
// to come first. The iterator is restartable but must not be used
// across mutations.
func (q *T[V]) All() iter.Seq2[arena.Raw, V] {
	return func(yield func(arena.Raw, V) bool) {
		for _, id := range q.inverse {
			v, _ := q.values.Lookup(id)
			if !yield(id, v) {
				return
			}
		}
	}
}

// Clone returns a deep copy of the queue sharing no state with the
// original.
func (q *T[V]) Clone() *T[V] {
	return &T[V]{
		less:      q.less,
		values:    q.values.Clone(),
		positions: q.positions.Clone(),
		inverse:   slices.Clone(q.inverse),
	}
}

func (q *T[V]) valueAt(p int) V {
	v, _ := q.values.Lookup(q.inverse[p])
	return v
}

func (q *T[V]) sink(p int) {
	for {
		c, ok := q.minChild(p)
		if !ok {
			return
		}
		if !q.less(q.valueAt(c), q.valueAt(p)) {
			return
		}
		q.swap(p, c)
		p = c
	}
}

// minChild returns the child of p whose value compares least, the
// lowest child index winning ties. It returns false if p has no
// children.
func (q *T[V]) minChild(p int) (int, bool) {
	lo, hi := childRange(p, len(q.inverse))
	if lo >= hi {
		return 0, false
	}
	m, mv := lo, q.valueAt(lo)
	for c := lo + 1; c < hi; c++ {
		if cv := q.valueAt(c); q.less(cv, mv) {
			m, mv = c, cv
		}
	}
	return m, true
}

func (q *T[V]) swim(p int) {
	for {
		parent, ok := parentOf(p)
		if !ok {
			return
		}
		if !q.less(q.valueAt(p), q.valueAt(parent)) {
			return
		}
		q.swap(p, parent)
		p = parent
	}
}

// swap exchanges heap positions a and b together with the two
// occupants' position map entries. Out of range positions make it a
// no-op.
func (q *T[V]) swap(a, b int) {
	if a < 0 || b < 0 || a >= len(q.inverse) || b >= len(q.inverse) {
		return
	}
	q.positions.Swap(q.inverse[a], q.inverse[b])
	q.inverse[a], q.inverse[b] = q.inverse[b], q.inverse[a]
}

// parentOf returns the heap position of p's parent; false if p is the
// root.
func parentOf(p int) (int, bool) {
	if p == 0 {
		return 0, false
	}
	return (p - 1) / arity, true
}

// childRange returns the half-open range of child positions of p in a
// heap of n entries.
func childRange(p, n int) (int, int) {
	lo := p*arity + 1
	return lo, min(lo+arity, n)
}
