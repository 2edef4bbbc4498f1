// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package queue_test

import (
	"fmt"

	"cloudeng.io/entity/arena"
	"cloudeng.io/entity/queue"
)

func ExampleMin() {
	alloc := arena.New[task]()
	a, b := alloc.NewID(), alloc.NewID()

	q := queue.NewMin[task, int]()
	q.Insert(a, 3)
	q.Insert(b, 2)
	q.Decrease(a, 1)
	for !q.Empty() {
		id, v, _ := q.Pop()
		fmt.Printf("%v: %v\n", id.Index(), v)
	}
	// Output:
	// 0: 1
	// 1: 2
}

func ExampleMax() {
	alloc := arena.New[task]()
	a, b := alloc.NewID(), alloc.NewID()

	q := queue.NewMax[task, int]()
	q.Insert(a, 3)
	q.Insert(b, 5)
	q.Increase(a, 10)
	for !q.Empty() {
		id, v, _ := q.Pop()
		fmt.Printf("%v: %v\n", id.Index(), v)
	}
	// Output:
	// 0: 10
	// 1: 5
}
