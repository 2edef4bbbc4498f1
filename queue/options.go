// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package queue

type options struct {
	sliceCap int
}

// Option represents the options that can be passed to New, NewMin and
// NewMax.
type Option func(*options)

// WithSliceCap sets the initial capacity, in identifiers, of the
// backing storage for the heap and its value and position maps.
func WithSliceCap(n int) Option {
	return func(o *options) {
		o.sliceCap = n
	}
}
