/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package cursors

// Lazy transforming adaptor: Value yields fun(base.Value()) without
// materializing an intermediate collection.
//
// # Implements:
//   - Cursor
type transformCursor[A, B any] struct {
	base Cursor[A]
	fun  func(A) B
}

// Transform wraps a cursor with a pure transform function.
//
// The result reports the capability of the wrapped cursor, never a stronger
// one, and forwards all positional operations to it. Two transformed cursors
// are equal iff their wrapped cursors are equal.
func Transform[A, B any](base Cursor[A], fun func(A) B) Cursor[B] {
	return transformCursor[A, B]{base: base, fun: fun}
}

// Deref adapts a cursor over references into a cursor over the referenced
// values, hiding the ownership representation from traversal consumers.
func Deref[T any](base Cursor[*T]) Cursor[T] {
	return Transform(base, func(p *T) T { return *p })
}

// DerefSlice views a slice of owned references as a value cursor positioned
// at the first element.
func DerefSlice[T any](items []*T) Cursor[T] {
	return Deref(Begin(items))
}

func (c transformCursor[A, B]) Capability() Capability { return c.base.Capability() }

func (c transformCursor[A, B]) EqualTo(other Cursor[B]) bool {
	o, ok := other.(transformCursor[A, B])
	return ok && c.base.EqualTo(o.base)
}

func (c transformCursor[A, B]) Move(n int) Cursor[B] {
	return transformCursor[A, B]{base: c.base.Move(n), fun: c.fun}
}

func (c transformCursor[A, B]) Next() Cursor[B] {
	return transformCursor[A, B]{base: c.base.Next(), fun: c.fun}
}

func (c transformCursor[A, B]) Prev() Cursor[B] {
	return transformCursor[A, B]{base: c.base.Prev(), fun: c.fun}
}

func (c transformCursor[A, B]) Value() B { return c.fun(c.base.Value()) }
