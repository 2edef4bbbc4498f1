// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package queue

import (
	"cmp"
	"iter"

	"cloudeng.io/entity/arena"
)

// Min is a min-ordered identifier-indexed priority queue bound to the
// identifier domain A: the root is always the smallest value. Binding
// the domain at the type level prevents identifiers minted by
// unrelated arenas from being intermixed. Every operation delegates to
// the untyped core.
type Min[A any, V cmp.Ordered] struct {
	q *T[V]
}

// NewMin creates a new, empty min-queue for the domain A.
func NewMin[A any, V cmp.Ordered](opts ...Option) *Min[A, V] {
	return &Min[A, V]{q: New(cmp.Less[V], opts...)}
}

// Len returns the number of identifiers currently in the queue.
func (m *Min[A, V]) Len() int {
	return m.q.Len()
}

// Empty reports whether the queue is empty.
func (m *Min[A, V]) Empty() bool {
	return m.q.Empty()
}

// Clear removes all entries, retaining the backing storage.
func (m *Min[A, V]) Clear() {
	m.q.Clear()
}

// Insert adds id with the supplied value, overwriting the value and
// restoring heap order if id is already present.
func (m *Min[A, V]) Insert(id arena.ID[A], v V) {
	m.q.Insert(id.Raw(), v)
}

// Remove removes id from the queue, returning it with its value; false
// if id is not present.
func (m *Min[A, V]) Remove(id arena.ID[A]) (arena.ID[A], V, bool) {
	r, v, ok := m.q.Remove(id.Raw())
	return arena.FromRaw[A](r), v, ok
}

// RemovePosition removes the entry at heap position p; false if p is
// out of range.
func (m *Min[A, V]) RemovePosition(p int) (arena.ID[A], V, bool) {
	r, v, ok := m.q.RemovePosition(p)
	return arena.FromRaw[A](r), v, ok
}

// Pop removes and returns the minimum entry; false if the queue is
// empty.
func (m *Min[A, V]) Pop() (arena.ID[A], V, bool) {
	r, v, ok := m.q.Pop()
	return arena.FromRaw[A](r), v, ok
}

// Peek returns the minimum value without mutating the queue; false if
// the queue is empty.
func (m *Min[A, V]) Peek() (V, bool) {
	return m.q.Peek()
}

// PeekID is like Peek but also returns the minimum entry's identifier.
func (m *Min[A, V]) PeekID() (arena.ID[A], V, bool) {
	r, v, ok := m.q.PeekID()
	return arena.FromRaw[A](r), v, ok
}

// Position returns the value at heap position p; false if p is out of
// range.
func (m *Min[A, V]) Position(p int) (V, bool) {
	return m.q.Position(p)
}

// PositionID is like Position but also returns the identifier occupying
// the position.
func (m *Min[A, V]) PositionID(p int) (arena.ID[A], V, bool) {
	r, v, ok := m.q.PositionID(p)
	return arena.FromRaw[A](r), v, ok
}

// Value returns the value currently associated with id; false if id is
// not present.
func (m *Min[A, V]) Value(id arena.ID[A]) (V, bool) {
	return m.q.Value(id.Raw())
}

// Decrease lowers id's value to v only if v is less than the current
// value. Calls for an absent id or a value that is not lower are
// no-ops.
func (m *Min[A, V]) Decrease(id arena.ID[A], v V) {
	m.q.Decrease(id.Raw(), v)
}

// Increase raises id's value to v only if v is greater than the
// current value. Calls for an absent id or a value that is not higher
// are no-ops.
func (m *Min[A, V]) Increase(id arena.ID[A], v V) {
	m.q.Increase(id.Raw(), v)
}

// All returns an iterator over (identifier, value) pairs in heap-array
// order; only the root is guaranteed to come first.
func (m *Min[A, V]) All() iter.Seq2[arena.ID[A], V] {
	return func(yield func(arena.ID[A], V) bool) {
		for r, v := range m.q.All() {
			if !yield(arena.FromRaw[A](r), v) {
				return
			}
		}
	}
}

// Clone returns a deep copy of the queue sharing no state with the
// original.
func (m *Min[A, V]) Clone() *Min[A, V] {
	return &Min[A, V]{q: m.q.Clone()}
}
