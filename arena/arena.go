// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package arena provides generation-checked allocation of the dense
// identifiers used to index component storage and identifier-indexed
// queues. Identifiers carry a compile-time domain tag so that those
// minted by unrelated arenas cannot be intermixed.
package arena

// Index is the dense array index of an identifier. Indices are 32 bits
// wide, capping the identifier space of a single arena at 2^32 slots.
type Index uint32

// Generation counts how many times an identifier's slot has been
// reused. An identifier is live only while its generation matches the
// slot's current generation.
type Generation uint32

// Raw is the untyped form of an identifier: a slot index paired with
// the generation at which it was minted. The zero value is valid and
// denotes slot 0 at generation 0. Raw values are comparable and usable
// as map keys.
type Raw struct {
	index Index
	gen   Generation
}

// First returns the first-generation identifier for slot i.
func First(i Index) Raw {
	return Raw{index: i}
}

// Index returns the dense array index of the identifier.
func (r Raw) Index() Index {
	return r.index
}

// Generation returns the generation at which the identifier was minted.
func (r Raw) Generation() Generation {
	return r.gen
}

// ID is an identifier tagged with the domain type A of the arena that
// minted it. The tag exists only in the type system: an ID occupies the
// same storage as its Raw form.
type ID[A any] struct {
	raw Raw
}

// FromRaw reconstructs a typed identifier from its raw form. It is the
// caller's responsibility that r originated from an arena of domain A.
func FromRaw[A any](r Raw) ID[A] {
	return ID[A]{raw: r}
}

// Raw returns the untyped form of the identifier.
func (id ID[A]) Raw() Raw {
	return id.raw
}

// Index returns the dense array index of the identifier.
func (id ID[A]) Index() Index {
	return id.raw.index
}
