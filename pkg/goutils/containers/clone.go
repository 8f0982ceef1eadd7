/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

// Package containers holds generic utilities for sequences of owned
// references: null-safe deep cloning, element-wise mapping and structural
// (dereferenced) equality.
//
// Ownership is a convention, not a type: an owned reference (*T or an
// interface holding one) has a single owner, its lifetime is bound to that
// owner and it is never shared between trees.
package containers

import "reflect"

// Cloneable is satisfied by owned references able to deep-copy themselves.
//
// B is the base type the clone is returned as, typically an interface over
// a closed set of node kinds.
type Cloneable[B any] interface {
	Clone() B
}

// CloneAll returns a new owning sequence of the same length where every
// non-nil entry is replaced by a deep clone obtained through the entry's own
// Clone, narrowed back to the entry type.
//
// Nil entries are preserved as nil and never dereferenced: IR sequences may
// hold absent slots which must round-trip through cloning unchanged.
func CloneAll[B any, T Cloneable[B]](xs []T) []T {
	ys := make([]T, len(xs))
	for i, x := range xs {
		if !isNil(x) {
			ys[i] = any(x.Clone()).(T)
		}
	}
	return ys
}

// Map applies a pure function to each element of a sequence and returns a
// new sequence of the results, preserving order and length. The input is
// not mutated.
func Map[A, B any](xs []A, f func(A) B) []B {
	ys := make([]B, 0, len(xs))
	for _, x := range xs {
		ys = append(ys, f(x))
	}
	return ys
}

// Returns is v a nil reference (nil pointer, nil interface, …)
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Slice, reflect.Map, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
