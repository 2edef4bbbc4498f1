// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package component_test

import (
	"testing"

	"cloudeng.io/entity/arena"
	"cloudeng.io/entity/component"
)

type domain struct{}

func TestInsertLookup(t *testing.T) {
	m := component.New[string](2)
	m.Insert(arena.First(0), "a")
	m.Insert(arena.First(5), "b")
	m.Insert(arena.First(100), "c")

	for _, tc := range []struct {
		index arena.Index
		want  string
		ok    bool
	}{
		{0, "a", true},
		{5, "b", true},
		{100, "c", true},
		{1, "", false},
		{99, "", false},
		{1000, "", false},
	} {
		got, ok := m.Lookup(arena.First(tc.index))
		if got != tc.want || ok != tc.ok {
			t.Errorf("index %v: got %v (%v), want %v (%v)", tc.index, got, ok, tc.want, tc.ok)
		}
	}
	if got, want := m.Len(), 3; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestOverwrite(t *testing.T) {
	var m component.Map[int]
	m.Insert(arena.First(3), 10)
	m.Insert(arena.First(3), 20)
	if got, want := m.Len(), 1; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, _ := m.Lookup(arena.First(3)); got != 20 {
		t.Errorf("got %v, want 20", got)
	}
}

func TestDelete(t *testing.T) {
	var m component.Map[int]
	m.Insert(arena.First(2), 7)
	v, ok := m.Delete(arena.First(2))
	if !ok || v != 7 {
		t.Errorf("got %v (%v), want 7 (true)", v, ok)
	}
	if _, ok := m.Lookup(arena.First(2)); ok {
		t.Errorf("deleted entry still present")
	}
	if _, ok := m.Delete(arena.First(2)); ok {
		t.Errorf("second delete succeeded")
	}
	if _, ok := m.Delete(arena.First(50)); ok {
		t.Errorf("delete beyond capacity succeeded")
	}
	if got, want := m.Len(), 0; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestSwap(t *testing.T) {
	var m component.Map[int]
	m.Insert(arena.First(0), 1)
	m.Insert(arena.First(1), 2)

	// present <-> present
	m.Swap(arena.First(0), arena.First(1))
	if v, _ := m.Lookup(arena.First(0)); v != 2 {
		t.Errorf("got %v, want 2", v)
	}
	if v, _ := m.Lookup(arena.First(1)); v != 1 {
		t.Errorf("got %v, want 1", v)
	}

	// present <-> absent
	m.Swap(arena.First(1), arena.First(3))
	if _, ok := m.Lookup(arena.First(1)); ok {
		t.Errorf("slot 1 still present after swap with empty slot")
	}
	if v, ok := m.Lookup(arena.First(3)); !ok || v != 1 {
		t.Errorf("got %v (%v), want 1 (true)", v, ok)
	}

	// absent <-> absent and self-swap leave everything unchanged.
	m.Swap(arena.First(4), arena.First(5))
	m.Swap(arena.First(0), arena.First(0))
	if got, want := m.Len(), 2; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestReset(t *testing.T) {
	var m component.Map[int]
	for i := arena.Index(0); i < 10; i++ {
		m.Insert(arena.First(i), int(i))
	}
	m.Reset()
	if got, want := m.Len(), 0; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	for i := arena.Index(0); i < 10; i++ {
		if _, ok := m.Lookup(arena.First(i)); ok {
			t.Errorf("slot %v present after Reset", i)
		}
	}
	m.Insert(arena.First(4), 44)
	if v, ok := m.Lookup(arena.First(4)); !ok || v != 44 {
		t.Errorf("got %v (%v), want 44 (true)", v, ok)
	}
}

func TestClone(t *testing.T) {
	var m component.Map[int]
	m.Insert(arena.First(1), 10)
	c := m.Clone()
	m.Insert(arena.First(1), 99)
	m.Insert(arena.First(2), 2)
	if v, _ := c.Lookup(arena.First(1)); v != 10 {
		t.Errorf("got %v, want 10", v)
	}
	if _, ok := c.Lookup(arena.First(2)); ok {
		t.Errorf("clone sees entry added to original")
	}
	c.Delete(arena.First(1))
	if _, ok := m.Lookup(arena.First(1)); !ok {
		t.Errorf("delete on clone affected original")
	}
}

func TestAll(t *testing.T) {
	var m component.Map[string]
	m.Insert(arena.First(4), "d")
	m.Insert(arena.First(0), "a")
	m.Insert(arena.First(70), "z")
	var idx []arena.Index
	var vals []string
	for i, v := range m.All() {
		idx = append(idx, i)
		vals = append(vals, v)
	}
	if got, want := len(idx), 3; got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i, want := range []arena.Index{0, 4, 70} {
		if idx[i] != want {
			t.Errorf("position %v: got %v, want %v", i, idx[i], want)
		}
	}
	for i, want := range []string{"a", "d", "z"} {
		if vals[i] != want {
			t.Errorf("position %v: got %v, want %v", i, vals[i], want)
		}
	}
	n := 0
	for range m.All() {
		n++
		break
	}
	if got, want := n, 1; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestGenerationsIgnored(t *testing.T) {
	al := arena.New[domain]()
	first := al.NewID()
	al.Free(first)
	second := al.NewID() // same slot, next generation

	var m component.Map[int]
	m.Insert(first.Raw(), 1)
	if v, ok := m.Lookup(second.Raw()); !ok || v != 1 {
		t.Errorf("got %v (%v), want 1 (true)", v, ok)
	}
	m.Insert(second.Raw(), 2)
	if v, _ := m.Lookup(first.Raw()); v != 2 {
		t.Errorf("got %v, want 2", v)
	}
	if got, want := m.Len(), 1; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
