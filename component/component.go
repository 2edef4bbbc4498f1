// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package component provides dense, identifier-indexed storage for
// per-entity values.
package component

import (
	"iter"
	"slices"

	"cloudeng.io/entity/arena"
	"cloudeng.io/entity/bitset"
)

// Map is a dense mapping from identifiers to optional values of type V,
// addressed by identifier index and grown on demand. Generations are
// not checked: a Map trusts the identifiers it is given and leaves
// liveness to the arena, so a stale identifier addresses the same slot
// as its live successor. The zero value is an empty map ready for use.
type Map[V any] struct {
	vals    []V
	present bitset.T
	n       int
}

// New creates a Map presized to hold entries for all identifier indices
// below size without further allocation.
func New[V any](size int) *Map[V] {
	return &Map[V]{
		vals:    make([]V, size),
		present: bitset.New(size),
	}
}

func (m *Map[V]) grow(size int) {
	c := max(2*len(m.vals), size)
	vals := make([]V, c)
	copy(vals, m.vals)
	m.vals = vals
	m.present = m.present.Grow(c)
}

// Insert sets the value for the identifier's slot, overwriting any
// existing value and growing the backing storage as needed. Growth at
// least doubles the current capacity.
func (m *Map[V]) Insert(r arena.Raw, v V) {
	i := int(r.Index())
	if i >= len(m.vals) {
		m.grow(i + 1)
	}
	if !m.present.IsSetUnsafe(i) {
		m.present.SetUnsafe(i)
		m.n++
	}
	m.vals[i] = v
}

// Lookup returns the value for the identifier's slot. It returns false
// for slots that were never inserted or have been deleted.
func (m *Map[V]) Lookup(r arena.Raw) (V, bool) {
	i := int(r.Index())
	if i >= len(m.vals) || !m.present.IsSetUnsafe(i) {
		var zero V
		return zero, false
	}
	return m.vals[i], true
}

// Delete clears the identifier's slot, returning the value it held.
// It returns false if the slot was already empty.
func (m *Map[V]) Delete(r arena.Raw) (V, bool) {
	i := int(r.Index())
	if i >= len(m.vals) || !m.present.IsSetUnsafe(i) {
		var zero V
		return zero, false
	}
	v := m.vals[i]
	var zero V
	m.vals[i] = zero
	m.present.ClearUnsafe(i)
	m.n--
	return v, true
}

// Swap exchanges the contents, including presence, of the two
// identifiers' slots.
func (m *Map[V]) Swap(a, b arena.Raw) {
	ai, bi := int(a.Index()), int(b.Index())
	if ai == bi {
		return
	}
	if n := max(ai, bi) + 1; n > len(m.vals) {
		m.grow(n)
	}
	m.vals[ai], m.vals[bi] = m.vals[bi], m.vals[ai]
	ap, bp := m.present.IsSetUnsafe(ai), m.present.IsSetUnsafe(bi)
	if ap == bp {
		return
	}
	if ap {
		m.present.ClearUnsafe(ai)
		m.present.SetUnsafe(bi)
		return
	}
	m.present.SetUnsafe(ai)
	m.present.ClearUnsafe(bi)
}

// Reset clears all slots, retaining the backing storage.
func (m *Map[V]) Reset() {
	clear(m.vals)
	clear(m.present)
	m.n = 0
}

// Clone returns a deep copy of the map sharing no state with the
// original.
func (m *Map[V]) Clone() *Map[V] {
	return &Map[V]{
		vals:    slices.Clone(m.vals),
		present: slices.Clone(m.present),
		n:       m.n,
	}
}

// Len returns the number of present entries.
func (m *Map[V]) Len() int {
	return m.n
}

// All returns an iterator over the present entries in increasing index
// order.
func (m *Map[V]) All() iter.Seq2[arena.Index, V] {
	return func(yield func(arena.Index, V) bool) {
		for i := range m.present.NextSet(0, len(m.vals)) {
			if !yield(arena.Index(i), m.vals[i]) {
				return
			}
		}
	}
}
