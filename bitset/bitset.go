// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package bitset provides a compact bit vector used to track slot
// occupancy in dense, index-addressed containers.
package bitset

import "iter"

// T is a bitset represented as a slice of uint64. The zero value is an
// empty set; use Grow to extend it. Callers that care about a logical
// size must track it themselves since the capacity is always rounded up
// to a multiple of 64 bits.
type T []uint64

// New creates a new bitset with capacity for at least size bits. A size
// of zero or less returns nil.
func New(size int) T {
	if size <= 0 {
		return nil
	}
	return make(T, (size+63)/64)
}

// Grow returns a bitset with capacity for at least size bits, retaining
// all currently set bits. The receiver is returned unchanged if it is
// already large enough.
func (b T) Grow(size int) T {
	if size <= len(b)*64 {
		return b
	}
	n := make(T, (size+63)/64)
	copy(n, b)
	return n
}

// Set sets the bit at index i. If i is out of bounds it does nothing.
func (b T) Set(i int) {
	if i < 0 || i >= len(b)*64 {
		return
	}
	b.SetUnsafe(i)
}

// SetUnsafe sets the bit at index i without bounds checking.
func (b T) SetUnsafe(i int) {
	b[i/64] |= 1 << (i % 64)
}

// Clear clears the bit at index i. If i is out of bounds it does nothing.
func (b T) Clear(i int) {
	if i < 0 || i >= len(b)*64 {
		return
	}
	b.ClearUnsafe(i)
}

// ClearUnsafe clears the bit at index i without bounds checking.
func (b T) ClearUnsafe(i int) {
	b[i/64] &^= 1 << (i % 64)
}

// IsSet reports whether the bit at index i is set. If i is out of bounds
// it returns false.
func (b T) IsSet(i int) bool {
	if i < 0 || i >= len(b)*64 {
		return false
	}
	return b.IsSetUnsafe(i)
}

// IsSetUnsafe reports whether the bit at index i is set without bounds
// checking.
func (b T) IsSetUnsafe(i int) bool {
	return (b[i/64] & (1 << (i % 64))) != 0
}

// NextSet returns an iterator over all set bits starting from the
// specified index and never exceeding the specified size or the size of
// the bitset itself.
func (b T) NextSet(start, size int) iter.Seq[int] {
	return func(yield func(int) bool) {
		last := min(len(b)*64, size)
		if start < 0 || start >= last {
			return
		}
		for nb := start; nb < last; {
			if nb%64 == 0 && b[nb/64] == 0 {
				nb += 64
				continue
			}
			if b[nb/64]&(1<<(nb%64)) != 0 {
				if !yield(nb) {
					return
				}
			}
			nb++
		}
	}
}
