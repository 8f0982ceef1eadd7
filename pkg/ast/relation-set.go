/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package ast

import "slices"

// Compare two relations by lexical name order.
//
// A nil relation sorts before any non-nil relation and equals only nil.
func CompareRelationsLexical(a, b *Relation) int {
	switch {
	case a == b:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	return CompareLexical(a.QualifiedName(), b.QualifiedName())
}

// Compare two relations by intern index of the name. Faster than
// CompareRelationsLexical, but the order is arbitrary across runs.
//
// A nil relation sorts before any non-nil relation and equals only nil.
func CompareRelationsIndex(a, b *Relation) int {
	switch {
	case a == b:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	return CompareIndex(a.QualifiedName(), b.QualifiedName())
}

// Sorted unique collection of relations.
//
// The slice is kept sorted by the comparator, relations whose names compare
// equal are treated as the same member.
type relations struct {
	comp func(a, b *Relation) int
	rels []*Relation
}

// Adds relations. Relations already present (by comparator) are ignored
func (rr *relations) Add(rels ...*Relation) {
	for _, r := range rels {
		if i, ok := rr.Find(r); !ok {
			rr.rels = slices.Insert(rr.rels, i, r)
		}
	}
}

// Returns relations as sorted array
func (rr *relations) AsArray() []*Relation { return slices.Clone(rr.rels) }

// Returns true if the set contains a member comparing equal to r
func (rr *relations) Contains(r *Relation) bool {
	_, ok := rr.Find(r)
	return ok
}

// Returns index of r in the sorted slice and true if found
func (rr *relations) Find(r *Relation) (int, bool) {
	return slices.BinarySearchFunc(rr.rels, r, rr.comp)
}

// Returns the count of members
func (rr *relations) Len() int { return len(rr.rels) }

// Enumerates members in set order
func (rr *relations) Relations(cb func(*Relation)) {
	for _, r := range rr.rels {
		cb(r)
	}
}

// RelationSet is a set of relations in lexical name order.
//
// Use it wherever deterministic enumeration order matters, e.g. for
// generated artifacts.
type RelationSet struct {
	relations
}

// Makes new relation set in lexical name order
func NewRelationSet(rels ...*Relation) *RelationSet {
	s := &RelationSet{relations{comp: CompareRelationsLexical}}
	s.Add(rels...)
	return s
}

// UnorderedRelationSet is a set of relations in intern index order.
//
// Membership and lookup are cheap, enumeration order is arbitrary across
// runs. Use OrderedRelationSet to obtain a deterministic enumeration.
type UnorderedRelationSet struct {
	relations
}

// Makes new relation set in intern index order
func NewUnorderedRelationSet(rels ...*Relation) *UnorderedRelationSet {
	s := &UnorderedRelationSet{relations{comp: CompareRelationsIndex}}
	s.Add(rels...)
	return s
}

// Returns an ordered (lexical) relation set with the members of u
func OrderedRelationSet(u *UnorderedRelationSet) *RelationSet {
	return NewRelationSet(u.AsArray()...)
}
