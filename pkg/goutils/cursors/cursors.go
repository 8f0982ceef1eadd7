/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

// Package cursors provides copyable positions over finite sequences, lazy
// transforming adaptors over them and half-open ranges with partitioning.
package cursors

import (
	"errors"
	"strings"
)

//go:generate stringer -type=Capability -output=capability_string.go

const (
	Capability_null Capability = iota

	Capability_Forward
	Capability_Bidirectional
	Capability_RandomAccess

	Capability_Count
)

// Capability enumerates how a cursor may traverse its sequence. Levels are
// ordered: every cursor supporting a level supports all lesser levels.
type Capability uint8

// Renders a Capability in human-readable form, without "Capability_" prefix,
// suitable for debugging or error messages
func (c Capability) TrimString() string {
	const pref = "Capability_"
	return strings.TrimPrefix(c.String(), pref)
}

var ErrCapabilityExceeded = errors.New("cursor capability exceeded")

// Cursor is a copyable position within a finite sequence.
//
// Stepping returns a new cursor, the receiver is unchanged: a sequence is
// re-traversed simply by keeping a copy of its starting cursor.
type Cursor[T any] interface {
	// Returns how the cursor may traverse its sequence
	Capability() Capability

	// Returns the element at the cursor position
	Value() T

	// Returns a cursor advanced by one position
	Next() Cursor[T]

	// Returns a cursor stepped back by one position.
	//
	// # Panics:
	//   - if the capability is less than Capability_Bidirectional
	Prev() Cursor[T]

	// Returns a cursor offset by n positions (n may be negative).
	//
	// # Panics:
	//   - if the capability is less than Capability_RandomAccess
	Move(n int) Cursor[T]

	// Returns does other denote the same position in the same sequence
	EqualTo(other Cursor[T]) bool
}

// SliceCursor is a random-access cursor over a slice.
//
// # Implements:
//   - Cursor
type SliceCursor[T any] struct {
	items []T
	pos   int
}

// Returns a cursor at the first element of items
func Begin[T any](items []T) Cursor[T] {
	return SliceCursor[T]{items: items}
}

// Returns a cursor one past the last element of items
func End[T any](items []T) Cursor[T] {
	return SliceCursor[T]{items: items, pos: len(items)}
}

func (c SliceCursor[T]) Capability() Capability { return Capability_RandomAccess }

func (c SliceCursor[T]) EqualTo(other Cursor[T]) bool {
	o, ok := other.(SliceCursor[T])
	if !ok {
		return false
	}
	if (c.pos != o.pos) || (len(c.items) != len(o.items)) {
		return false
	}
	return (len(c.items) == 0) || (&c.items[0] == &o.items[0])
}

func (c SliceCursor[T]) Move(n int) Cursor[T] {
	return SliceCursor[T]{items: c.items, pos: c.pos + n}
}

func (c SliceCursor[T]) Next() Cursor[T] { return c.Move(1) }

func (c SliceCursor[T]) Prev() Cursor[T] { return c.Move(-1) }

func (c SliceCursor[T]) Value() T { return c.items[c.pos] }

// Weakened view of a cursor: positional operations beyond the declared
// capability panic instead of being forwarded.
//
// # Implements:
//   - Cursor
type restrictedCursor[T any] struct {
	base Cursor[T]
	cap  Capability
}

// Restrict returns a view of base with at most the given capability.
//
// The view never reports a capability stronger than the base's own.
func Restrict[T any](base Cursor[T], cap Capability) Cursor[T] {
	if base.Capability() < cap {
		cap = base.Capability()
	}
	return restrictedCursor[T]{base: base, cap: cap}
}

func (c restrictedCursor[T]) Capability() Capability { return c.cap }

func (c restrictedCursor[T]) EqualTo(other Cursor[T]) bool {
	o, ok := other.(restrictedCursor[T])
	return ok && c.base.EqualTo(o.base)
}

func (c restrictedCursor[T]) Move(n int) Cursor[T] {
	if c.cap < Capability_RandomAccess {
		panic(ErrCapabilityExceeded)
	}
	return restrictedCursor[T]{base: c.base.Move(n), cap: c.cap}
}

func (c restrictedCursor[T]) Next() Cursor[T] {
	return restrictedCursor[T]{base: c.base.Next(), cap: c.cap}
}

func (c restrictedCursor[T]) Prev() Cursor[T] {
	if c.cap < Capability_Bidirectional {
		panic(ErrCapabilityExceeded)
	}
	return restrictedCursor[T]{base: c.base.Prev(), cap: c.cap}
}

func (c restrictedCursor[T]) Value() T { return c.base.Value() }
