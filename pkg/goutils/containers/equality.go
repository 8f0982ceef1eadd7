/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package containers

// Equaler is satisfied by references comparable by dereferenced value.
//
// B is the base type equality is declared against, typically an interface
// over a closed set of node kinds.
type Equaler[B any] interface {
	Equal(B) bool
}

// CompDeref compares two references by dereferenced value.
//
// Any comparison where at least one side is nil is unequal, including the
// case where both sides are nil. Well-formed trees never hold nil children,
// so a nil here is an upstream defect and must not compare equal to
// anything, not even to another nil.
func CompDeref[B any, T Equaler[B]](a, b T) bool {
	if isNil(a) || isNil(b) {
		return false
	}
	return a.Equal(any(b).(B))
}

// EqualTargets reports whether two sequences hold pairwise equal elements
// under comp.
//
// The same sequence (same backing storage) is always equal to itself,
// sequences of different sizes are never equal.
func EqualTargets[T any](a, b []T, comp func(a, b T) bool) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) > 0 && &a[0] == &b[0] {
		return true
	}
	for i := range a {
		if !comp(a[i], b[i]) {
			return false
		}
	}
	return true
}

// EqualTargetsMap reports whether two maps of owned references have equal
// key sets and, for each key, dereferenced value equality of the mapped
// references (CompDeref, with its nil policy).
//
// B is not inferable from the arguments, instantiate it explicitly:
//
//	EqualTargetsMap[INode](a, b)
func EqualTargetsMap[B any, K comparable, V Equaler[B]](a, b map[K]V) bool {
	if len(a) != len(b) {
		return false
	}
	for k, av := range a {
		bv, ok := b[k]
		if !ok || !CompDeref[B](av, bv) {
			return false
		}
	}
	return true
}

// CastEqual reports whether left and right both narrow to the concrete type
// To and are the same object at that type.
//
// A failed narrowing is not an error, it is a normal "not equal" result.
// Use it when a pass needs "same concrete kind and same object" rather than
// structural equality.
func CastEqual[To comparable](left, right any) bool {
	l, ok := left.(To)
	if !ok {
		return false
	}
	r, ok := right.(To)
	if !ok {
		return false
	}
	return l == r
}
