/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package ast

import (
	"fmt"
	"strings"
)

//go:generate stringer -type=NodeKind -output=node-kind_string.go

const (
	// null - no-value kind
	NodeKind_null NodeKind = iota

	NodeKind_Attribute
	NodeKind_FunctionalConstraint
	NodeKind_Relation

	NodeKind_Count
)

// Node kind enumeration.
//
// The set of kinds is closed: every concrete node type of the IR has its own
// kind, passes may dispatch on it exhaustively.
type NodeKind uint8

// Renders a NodeKind in human-readable form, without "NodeKind_" prefix,
// suitable for debugging or error messages
func (k NodeKind) TrimString() string {
	const pref = "NodeKind_"
	return strings.TrimPrefix(k.String(), pref)
}

// NodeMapper transforms one node into another.
//
// A mapper may return its argument unchanged, a mutated version of it, or an
// entirely different node of a kind the owning parent can hold.
type NodeMapper func(INode) INode

// INode is implemented by every node of the IR tree.
//
// A node exclusively owns its children: child lifetime is bound to the
// parent, children are never shared between trees.
type INode interface {
	fmt.Stringer

	// Returns the concrete kind of the node
	Kind() NodeKind

	// Returns is other the same concrete kind of node and structurally
	// equal to this one.
	//
	// Identity is sufficient, but never necessary: two independently built
	// nodes with equal fields and equal children are equal.
	Equal(other INode) bool

	// Returns a deep, independently owned copy of the node.
	//
	// No part of the result aliases the source subtree.
	Clone() INode

	// Returns all owned child nodes, flattened over whatever fields hold
	// them, in a fixed deterministic order
	Children() []INode

	// Replaces each owned child with the result of the mapper.
	//
	// This is the sole generic rewriting mechanism: passes transform whole
	// subtrees without per-field knowledge of the node.
	//
	// # Panics:
	//   - if the mapper returns a node of a kind the parent can not hold
	Apply(mapper NodeMapper)
}
