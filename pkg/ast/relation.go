/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package ast

import (
	"slices"
	"strings"

	"github.com/voedger/datalog/pkg/goutils/containers"
	"github.com/voedger/datalog/pkg/goutils/set"
)

// Relation is the declaration node of one Datalog relation: its qualified
// name, ordered attribute list, qualifier set, storage representation hint,
// functional dependencies and an optional delta-debug linkage.
//
// The relation exclusively owns its attribute and functional-constraint
// children. Attribute order is the authoritative column order, the arity of
// the relation is the length of the attribute list.
//
// # Implements:
//   - INode
type Relation struct {
	name           QualifiedName
	attributes     []*Attribute
	qualifiers     set.Set[RelationQualifier]
	representation RelationRepresentation
	dependencies   []*FunctionalConstraint
	isDeltaDebug   *QualifiedName
}

// Makes new relation with specified qualified name
func NewRelation(name QualifiedName) *Relation {
	return &Relation{name: name}
}

// Appends an attribute. The new attribute becomes the last column.
//
// # Panics:
//   - if attr is nil
func (r *Relation) AddAttribute(attr *Attribute) {
	if attr == nil {
		panic(ErrMissed("%v: attribute", r))
	}
	r.attributes = append(r.attributes, attr)
}

// Appends a functional dependency.
//
// # Panics:
//   - if fd is nil
func (r *Relation) AddDependency(fd *FunctionalConstraint) {
	if fd == nil {
		panic(ErrMissed("%v: functional constraint", r))
	}
	r.dependencies = append(r.dependencies, fd)
}

// Adds a qualifier. Returns false if the qualifier was already present
func (r *Relation) AddQualifier(q RelationQualifier) bool {
	if r.qualifiers.Contains(q) {
		return false
	}
	r.qualifiers.Set(q)
	return true
}

func (r *Relation) Apply(mapper NodeMapper) {
	for i := range r.attributes {
		r.attributes[i] = mapper(r.attributes[i]).(*Attribute)
	}
	for i := range r.dependencies {
		r.dependencies[i] = mapper(r.dependencies[i]).(*FunctionalConstraint)
	}
}

// Returns the arity (column count) of the relation
func (r *Relation) Arity() int { return len(r.attributes) }

// Returns a non-owning view of the attributes in column order
func (r *Relation) Attributes() []*Attribute { return slices.Clone(r.attributes) }

// Returns the count of lattice-typed (auxiliary) attributes
func (r *Relation) AuxiliaryArity() int {
	arity := 0
	for _, a := range r.attributes {
		if a.IsLattice() {
			arity++
		}
	}
	return arity
}

func (r *Relation) Children() []INode {
	nn := make([]INode, 0, len(r.attributes)+len(r.dependencies))
	for _, a := range r.attributes {
		nn = append(nn, a)
	}
	for _, fd := range r.dependencies {
		nn = append(nn, fd)
	}
	return nn
}

func (r *Relation) Clone() INode {
	c := &Relation{
		name:           r.name,
		attributes:     containers.CloneAll[INode](r.attributes),
		qualifiers:     r.qualifiers.Clone(),
		representation: r.representation,
		dependencies:   containers.CloneAll[INode](r.dependencies),
	}
	if r.isDeltaDebug != nil {
		dd := *r.isDeltaDebug
		c.isDeltaDebug = &dd
	}
	return c
}

func (r *Relation) Equal(other INode) bool {
	o, ok := other.(*Relation)
	if !ok {
		return false
	}
	if r == o {
		return true
	}
	return (r.name == o.name) &&
		containers.EqualTargets(r.attributes, o.attributes, containers.CompDeref[INode, *Attribute]) &&
		(r.qualifiers == o.qualifiers) &&
		(r.representation == o.representation) &&
		containers.EqualTargets(r.dependencies, o.dependencies, containers.CompDeref[INode, *FunctionalConstraint]) &&
		equalDeltaDebug(r.isDeltaDebug, o.isDeltaDebug)
}

// Returns a non-owning view of the functional dependencies
func (r *Relation) FunctionalDependencies() []*FunctionalConstraint {
	return slices.Clone(r.dependencies)
}

// Returns has the relation specified qualifier
func (r *Relation) HasQualifier(q RelationQualifier) bool { return r.qualifiers.Contains(q) }

// Returns the name of the companion delta-debug relation, if one is set.
//
// The name is opaque here: whether the named relation exists is checked by
// the semantic analyzer.
func (r *Relation) IsDeltaDebug() (QualifiedName, bool) {
	if r.isDeltaDebug == nil {
		return NullQualifiedName, false
	}
	return *r.isDeltaDebug, true
}

func (r *Relation) Kind() NodeKind { return NodeKind_Relation }

// Returns qualified name of the relation
func (r *Relation) QualifiedName() QualifiedName { return r.name }

// Returns the qualifier set of the relation
func (r *Relation) Qualifiers() set.Set[RelationQualifier] { return r.qualifiers }

// Removes a qualifier. Returns false if the qualifier was not present
func (r *Relation) RemoveQualifier(q RelationQualifier) bool {
	if !r.qualifiers.Contains(q) {
		return false
	}
	r.qualifiers.Clear(q)
	return true
}

// Returns the storage representation hint
func (r *Relation) Representation() RelationRepresentation { return r.representation }

// Replaces all attributes. The relation takes ownership of attrs
func (r *Relation) SetAttributes(attrs []*Attribute) { r.attributes = attrs }

// Sets the companion delta-debug relation name
func (r *Relation) SetIsDeltaDebug(rel QualifiedName) {
	r.isDeltaDebug = &rel
}

// Renames the relation
func (r *Relation) SetQualifiedName(n QualifiedName) { r.name = n }

// Sets the storage representation hint
func (r *Relation) SetRepresentation(rep RelationRepresentation) { r.representation = rep }

func (r *Relation) String() string {
	s := strings.Builder{}
	s.WriteString(".decl ")
	s.WriteString(r.name.String())
	s.WriteRune('(')
	for i, a := range r.attributes {
		if i > 0 {
			s.WriteString(", ")
		}
		s.WriteString(a.String())
	}
	s.WriteRune(')')
	for _, q := range r.qualifiers.AsArray() {
		s.WriteRune(' ')
		s.WriteString(q.TrimString())
	}
	if r.representation != RelationRepresentation_null {
		s.WriteRune(' ')
		s.WriteString(r.representation.TrimString())
	}
	for _, fd := range r.dependencies {
		s.WriteRune(' ')
		s.WriteString(fd.String())
	}
	if r.isDeltaDebug != nil {
		s.WriteString(" delta_debug ")
		s.WriteString(r.isDeltaDebug.String())
	}
	return s.String()
}

// Optional value equality: absent equals absent, present equals present with
// the same name. Distinct from containers.CompDeref, which never equates two
// nils.
func equalDeltaDebug(a, b *QualifiedName) bool {
	if (a == nil) || (b == nil) {
		return a == b
	}
	return *a == *b
}
