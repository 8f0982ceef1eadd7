/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package ast

import "strings"

// Attribute is one typed column of a relation.
//
// # Implements:
//   - INode
type Attribute struct {
	name      string
	typeName  QualifiedName
	isLattice bool
}

// Makes new attribute with specified name and type name
func NewAttribute(name string, typeName QualifiedName) *Attribute {
	return &Attribute{name: name, typeName: typeName}
}

func (a *Attribute) Apply(NodeMapper) {}

func (a *Attribute) Children() []INode { return nil }

func (a *Attribute) Clone() INode {
	c := *a
	return &c
}

func (a *Attribute) Equal(other INode) bool {
	o, ok := other.(*Attribute)
	if !ok {
		return false
	}
	return (a == o) ||
		((a.name == o.name) && (a.typeName == o.typeName) && (a.isLattice == o.isLattice))
}

// Returns is the attribute a lattice (auxiliary) column
func (a *Attribute) IsLattice() bool { return a.isLattice }

func (a *Attribute) Kind() NodeKind { return NodeKind_Attribute }

// Returns attribute name
func (a *Attribute) Name() string { return a.name }

func (a *Attribute) SetIsLattice(isLattice bool) { a.isLattice = isLattice }

func (a *Attribute) SetTypeName(n QualifiedName) { a.typeName = n }

func (a *Attribute) String() string {
	s := strings.Builder{}
	s.WriteString(a.name)
	s.WriteRune(':')
	s.WriteString(a.typeName.String())
	if a.isLattice {
		s.WriteString("<>")
	}
	return s.String()
}

// Returns qualified name of the attribute type
func (a *Attribute) TypeName() QualifiedName { return a.typeName }
