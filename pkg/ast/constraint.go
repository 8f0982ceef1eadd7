/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package ast

import (
	"slices"
	"strings"
)

// FunctionalConstraint declares a functional dependency among the attributes
// of a relation: the key attributes determine the remaining columns.
//
// Key order is preserved for stable diagnostics, evaluation does not depend
// on it.
//
// # Implements:
//   - INode
type FunctionalConstraint struct {
	keys []string
}

// Makes new functional constraint from key attribute names
func NewFunctionalConstraint(keys ...string) *FunctionalConstraint {
	return &FunctionalConstraint{keys: slices.Clone(keys)}
}

func (c *FunctionalConstraint) Apply(NodeMapper) {}

func (c *FunctionalConstraint) Children() []INode { return nil }

func (c *FunctionalConstraint) Clone() INode {
	return &FunctionalConstraint{keys: slices.Clone(c.keys)}
}

func (c *FunctionalConstraint) Equal(other INode) bool {
	o, ok := other.(*FunctionalConstraint)
	if !ok {
		return false
	}
	return (c == o) || slices.Equal(c.keys, o.keys)
}

// Returns key attribute names
func (c *FunctionalConstraint) Keys() []string { return slices.Clone(c.keys) }

func (c *FunctionalConstraint) Kind() NodeKind { return NodeKind_FunctionalConstraint }

func (c *FunctionalConstraint) String() string {
	return "keys " + strings.Join(c.keys, ",")
}
