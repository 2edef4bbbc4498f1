// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package arena

import (
	"iter"

	"cloudeng.io/entity/bitset"
)

// T is an identifier allocator for the domain A. Freed slots are reused
// in FIFO order with their generation incremented so that stale
// identifiers can be detected via Live. The zero value is an empty
// allocator ready for use.
type T[A any] struct {
	gens  []Generation
	live  bitset.T
	free  ring
	count int
}

// New creates a new, empty allocator for the domain A.
func New[A any]() *T[A] {
	return &T[A]{}
}

// NewID mints a live identifier, reusing the oldest freed slot if one
// is available and extending the dense index range otherwise.
func (a *T[A]) NewID() ID[A] {
	if i, ok := a.free.pop(); ok {
		a.live.SetUnsafe(int(i))
		a.count++
		return ID[A]{raw: Raw{index: i, gen: a.gens[i]}}
	}
	i := Index(len(a.gens))
	a.gens = append(a.gens, 0)
	a.live = a.live.Grow(len(a.gens))
	a.live.SetUnsafe(int(i))
	a.count++
	return ID[A]{raw: Raw{index: i}}
}

// Free retires a live identifier, making its slot available for reuse.
// It returns false, changing nothing, if the identifier is stale or was
// never minted by this allocator.
func (a *T[A]) Free(id ID[A]) bool {
	r := id.raw
	if !a.liveRaw(r) {
		return false
	}
	a.live.ClearUnsafe(int(r.index))
	a.gens[r.index]++
	a.free.push(r.index)
	a.count--
	return true
}

// Live reports whether the identifier is currently live, that is, its
// slot has not been freed since the identifier was minted.
func (a *T[A]) Live(id ID[A]) bool {
	return a.liveRaw(id.raw)
}

func (a *T[A]) liveRaw(r Raw) bool {
	i := int(r.index)
	return i < len(a.gens) && a.live.IsSetUnsafe(i) && a.gens[i] == r.gen
}

// All returns an iterator over the currently live identifiers in
// increasing index order.
func (a *T[A]) All() iter.Seq[ID[A]] {
	return func(yield func(ID[A]) bool) {
		for i := range a.live.NextSet(0, len(a.gens)) {
			if !yield(ID[A]{raw: Raw{index: Index(i), gen: a.gens[i]}}) {
				return
			}
		}
	}
}

// Len returns the number of currently live identifiers.
func (a *T[A]) Len() int {
	return a.count
}

// Cap returns the size of the dense index range, that is, one past the
// highest index ever minted. It is the capacity a component map needs
// to hold an entry for every identifier from this arena.
func (a *T[A]) Cap() int {
	return len(a.gens)
}
