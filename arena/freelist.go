// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package arena

// ring is a circular FIFO of freed slot indices that grows as needed.
type ring struct {
	storage []Index
	// NOTE, if head==tail then the ring is empty or holds one element,
	// and used must be consulted to distinguish the two cases.
	used int
	head int // index of the oldest element.
	tail int // index of the newest element.
}

func (r *ring) grow(size int) {
	n := make([]Index, size)
	switch {
	case r.used == 0:
		r.tail = 0
	case r.head <= r.tail:
		r.tail = copy(n, r.storage[r.head:r.tail+1]) - 1
	default:
		c := copy(n, r.storage[r.head:])
		r.tail = c + copy(n[c:], r.storage[:r.tail+1]) - 1
	}
	r.head = 0
	r.storage = n
}

func (r *ring) push(v Index) {
	if r.used == len(r.storage) {
		r.grow(max(2*len(r.storage), 1))
	}
	if r.used == 0 {
		r.head, r.tail = 0, 0
	} else {
		r.tail = (r.tail + 1) % len(r.storage)
	}
	r.storage[r.tail] = v
	r.used++
}

func (r *ring) pop() (Index, bool) {
	if r.used == 0 {
		return 0, false
	}
	v := r.storage[r.head]
	r.head = (r.head + 1) % len(r.storage)
	r.used--
	return v, true
}

func (r *ring) len() int {
	return r.used
}
