/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package cursors

import "errors"

var ErrInvalidPartitionCount = errors.New("partition count must be positive")

// Range is a half-open sequence range [Begin, End) represented by a pair of
// cursors.
type Range[T any] struct {
	Begin, End Cursor[T]
}

// Makes new range from a pair of cursors
func NewRange[T any](begin, end Cursor[T]) Range[T] {
	return Range[T]{Begin: begin, End: end}
}

// Returns a range spanning the whole slice
func Over[T any](items []T) Range[T] {
	return Range[T]{Begin: Begin(items), End: End(items)}
}

// Returns is the range empty
func (r Range[T]) Empty() bool {
	return r.Begin.EqualTo(r.End)
}

// Visits every element of the range in order
func (r Range[T]) ForEach(visit func(T)) {
	for c := r.Begin; !c.EqualTo(r.End); c = c.Next() {
		visit(c.Value())
	}
}

// Returns the element count of the range.
//
// Counted by linear traversal: the range assumes forward traversal cost
// only, not random access.
func (r Range[T]) Len() int {
	n := 0
	for c := r.Begin; !c.EqualTo(r.End); c = c.Next() {
		n++
	}
	return n
}

// Partition splits the range into at most np contiguous, non-overlapping
// sub-ranges whose concatenation is the original range.
//
// With n elements, the first n%np sub-ranges receive n/np+1 elements and the
// rest receive n/np. When n < np fewer than np sub-ranges are produced, each
// still non-empty. Partition computes a work-distribution plan only, the
// dispatching of sub-ranges to workers is up to the caller.
//
// # Panics:
//   - if np < 1
func (r Range[T]) Partition(np int) []Range[T] {
	if np < 1 {
		panic(ErrInvalidPartitionCount)
	}

	n := r.Len()

	s := n / np
	rem := n % np

	res := make([]Range[T], 0, np)
	last := r.Begin
	cur := r.Begin
	i, p := 0, 0
	for !cur.EqualTo(r.End) {
		cur = cur.Next()
		i++
		want := s
		if p < rem {
			want++
		}
		if i >= want {
			res = append(res, Range[T]{Begin: last, End: cur})
			last = cur
			p++
			i = 0
		}
	}
	if !cur.EqualTo(last) {
		res = append(res, Range[T]{Begin: last, End: cur})
	}
	return res
}
