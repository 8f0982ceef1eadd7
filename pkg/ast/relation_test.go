/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package ast

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBasicUsage_Relation(t *testing.T) {

	require := require.New(t)

	// Construct the declaration the way the parser does

	r := NewRelation(MustParseQualifiedName("graph.edge"))

	r.AddAttribute(NewAttribute("from", MustParseQualifiedName("sys.symbol")))
	r.AddAttribute(NewAttribute("to", MustParseQualifiedName("sys.symbol")))

	require.True(r.AddQualifier(RelationQualifier_input))
	require.True(r.AddQualifier(RelationQualifier_output))

	r.SetRepresentation(RelationRepresentation_btree)
	r.AddDependency(NewFunctionalConstraint("from"))

	// Inspect it the way the semantic analyzer does

	require.Equal(MustParseQualifiedName("graph.edge"), r.QualifiedName())
	require.Equal(2, r.Arity())
	require.Zero(r.AuxiliaryArity())
	require.True(r.HasQualifier(RelationQualifier_input))
	require.False(r.HasQualifier(RelationQualifier_magic))
	require.Equal(RelationRepresentation_btree, r.Representation())
	require.Len(r.FunctionalDependencies(), 1)
	require.Equal(NodeKind_Relation, r.Kind())

	require.Equal(
		".decl graph.edge(from:sys.symbol, to:sys.symbol) input output btree keys from",
		r.String())
}

func TestRelation_Empty(t *testing.T) {
	require := require.New(t)

	r := NewRelation(MustParseQualifiedName("pkg.empty"))

	require.Zero(r.Arity())
	require.Zero(r.AuxiliaryArity())
	require.Zero(r.Qualifiers().Len())
	require.Equal(RelationRepresentation_null, r.Representation())
	require.Empty(r.FunctionalDependencies())
	require.Empty(r.Children())

	_, ok := r.IsDeltaDebug()
	require.False(ok)

	c := r.Clone()
	require.True(c.Equal(r))
	require.True(r.Equal(c))
}

func TestRelation_AuxiliaryArity(t *testing.T) {
	require := require.New(t)

	r := NewRelation(MustParseQualifiedName("pkg.lattice"))
	r.AddAttribute(NewAttribute("a", MustParseQualifiedName("sys.number")))

	b := NewAttribute("b", MustParseQualifiedName("sys.number"))
	b.SetIsLattice(true)
	r.AddAttribute(b)

	r.AddAttribute(NewAttribute("c", MustParseQualifiedName("sys.number")))

	require.Equal(3, r.Arity())
	require.Equal(1, r.AuxiliaryArity())
}

func TestRelation_Equal(t *testing.T) {
	require := require.New(t)

	build := func() *Relation {
		r := NewRelation(MustParseQualifiedName("pkg.rel"))
		r.AddAttribute(NewAttribute("x", MustParseQualifiedName("sys.number")))
		r.AddAttribute(NewAttribute("y", MustParseQualifiedName("sys.symbol")))
		r.AddQualifier(RelationQualifier_input)
		r.AddDependency(NewFunctionalConstraint("x"))
		return r
	}

	r := build()

	require.True(r.Equal(r), "reflexive")

	o := build()
	require.True(r.Equal(o), "independently built equal relations")
	require.Equal(r.Equal(o), o.Equal(r), "symmetric")

	t.Run("attribute order is authoritative", func(t *testing.T) {
		a := NewRelation(MustParseQualifiedName("pkg.ord"))
		a.AddAttribute(NewAttribute("x", MustParseQualifiedName("sys.number")))
		a.AddAttribute(NewAttribute("y", MustParseQualifiedName("sys.number")))

		b := NewRelation(MustParseQualifiedName("pkg.ord"))
		b.AddAttribute(NewAttribute("y", MustParseQualifiedName("sys.number")))
		b.AddAttribute(NewAttribute("x", MustParseQualifiedName("sys.number")))

		require.False(a.Equal(b), "same attributes added in reverse order")
		require.False(b.Equal(a))
	})

	t.Run("should not be equal", func(t *testing.T) {
		byName := build()
		byName.SetQualifiedName(MustParseQualifiedName("pkg.other"))
		require.False(r.Equal(byName))

		byQualifier := build()
		byQualifier.AddQualifier(RelationQualifier_output)
		require.False(r.Equal(byQualifier))

		byRepresentation := build()
		byRepresentation.SetRepresentation(RelationRepresentation_brie)
		require.False(r.Equal(byRepresentation))

		byDependency := build()
		byDependency.AddDependency(NewFunctionalConstraint("y"))
		require.False(r.Equal(byDependency))

		byKind := NewAttribute("pkg.rel", NullQualifiedName)
		require.False(r.Equal(byKind), "different concrete kind")
	})

	t.Run("delta debug linkage", func(t *testing.T) {
		a, b := build(), build()
		require.True(a.Equal(b), "both absent")

		a.SetIsDeltaDebug(MustParseQualifiedName("pkg.rel_dbg"))
		require.False(a.Equal(b), "present vs absent")
		require.False(b.Equal(a))

		b.SetIsDeltaDebug(MustParseQualifiedName("pkg.rel_dbg"))
		require.True(a.Equal(b), "both present, same name")

		b.SetIsDeltaDebug(MustParseQualifiedName("pkg.other_dbg"))
		require.False(a.Equal(b), "both present, different names")
	})

	t.Run("nil attribute slots never compare equal, not even to each other", func(t *testing.T) {
		// deliberate safety net against nil children, see containers.CompDeref
		a := NewRelation(MustParseQualifiedName("pkg.holes"))
		a.SetAttributes([]*Attribute{NewAttribute("x", NullQualifiedName), nil})

		require.True(a.Equal(a), "identity still wins")
		require.False(a.Equal(a.Clone()), "structurally compared nil slots are unequal")
	})
}

func TestRelation_Clone(t *testing.T) {
	require := require.New(t)

	r := NewRelation(MustParseQualifiedName("pkg.rel"))
	r.AddAttribute(NewAttribute("x", MustParseQualifiedName("sys.number")))
	r.AddQualifier(RelationQualifier_printsize)
	r.SetRepresentation(RelationRepresentation_eqrel)
	r.AddDependency(NewFunctionalConstraint("x"))
	r.SetIsDeltaDebug(MustParseQualifiedName("pkg.rel_dbg"))

	c := r.Clone().(*Relation)

	require.True(c.Equal(r))
	require.NotSame(r, c)
	require.NotSame(r.Attributes()[0], c.Attributes()[0], "children are deep-cloned, never aliased")
	require.NotSame(r.FunctionalDependencies()[0], c.FunctionalDependencies()[0])

	t.Run("mutating the clone must not change the source", func(t *testing.T) {
		c.Attributes()[0].SetIsLattice(true)
		require.Zero(r.AuxiliaryArity())
		require.Equal(1, c.AuxiliaryArity())
		require.False(c.Equal(r))
	})

	t.Run("mutating the source must not change the clone", func(t *testing.T) {
		r.AddQualifier(RelationQualifier_magic)
		require.False(c.HasQualifier(RelationQualifier_magic))
	})

	t.Run("nil slots round-trip through cloning", func(t *testing.T) {
		h := NewRelation(MustParseQualifiedName("pkg.holes"))
		h.SetAttributes([]*Attribute{nil, NewAttribute("x", NullQualifiedName)})

		hc := h.Clone().(*Relation)
		require.Nil(hc.Attributes()[0])
		require.NotNil(hc.Attributes()[1])
	})
}

func TestRelation_Children(t *testing.T) {
	require := require.New(t)

	r := NewRelation(MustParseQualifiedName("pkg.rel"))
	x := NewAttribute("x", MustParseQualifiedName("sys.number"))
	y := NewAttribute("y", MustParseQualifiedName("sys.number"))
	fd := NewFunctionalConstraint("x")
	r.AddAttribute(x)
	r.AddAttribute(y)
	r.AddDependency(fd)

	// attributes first, then dependencies, always in that order
	require.Equal([]INode{x, y, fd}, r.Children())
}

func TestRelation_Apply(t *testing.T) {
	require := require.New(t)

	r := NewRelation(MustParseQualifiedName("pkg.rel"))
	r.AddAttribute(NewAttribute("x", MustParseQualifiedName("sys.number")))
	r.AddAttribute(NewAttribute("y", MustParseQualifiedName("sys.number")))
	r.AddDependency(NewFunctionalConstraint("x"))

	t.Run("mapper may return the child unchanged", func(t *testing.T) {
		r.Apply(func(n INode) INode { return n })
		require.Equal("x", r.Attributes()[0].Name())
	})

	t.Run("mapper may replace children", func(t *testing.T) {
		r.Apply(func(n INode) INode {
			if a, ok := n.(*Attribute); ok {
				return NewAttribute(strings.ToUpper(a.Name()), a.TypeName())
			}
			return n
		})
		require.Equal("X", r.Attributes()[0].Name())
		require.Equal("Y", r.Attributes()[1].Name())
		require.Equal([]string{"x"}, r.FunctionalDependencies()[0].Keys(), "constraints passed through unchanged")
	})

	t.Run("mapper returning a foreign kind is a defect", func(t *testing.T) {
		require.Panics(func() {
			r.Apply(func(INode) INode { return NewFunctionalConstraint("boom") })
		})
	})
}

func TestRelation_Qualifiers(t *testing.T) {
	require := require.New(t)

	r := NewRelation(MustParseQualifiedName("pkg.rel"))

	require.True(r.AddQualifier(RelationQualifier_input))
	require.False(r.AddQualifier(RelationQualifier_input), "duplicate insertion reports false")

	require.True(r.RemoveQualifier(RelationQualifier_input))
	require.False(r.RemoveQualifier(RelationQualifier_input), "removing an absent qualifier reports false")

	t.Run("returned set is a value, callers can not mutate the relation through it", func(t *testing.T) {
		r.AddQualifier(RelationQualifier_output)
		q := r.Qualifiers()
		q.Clear(RelationQualifier_output)
		require.True(r.HasQualifier(RelationQualifier_output))
	})
}

func TestRelation_Mutators(t *testing.T) {
	require := require.New(t)

	r := NewRelation(MustParseQualifiedName("pkg.rel"))

	r.SetQualifiedName(MustParseQualifiedName("pkg.renamed"))
	require.Equal(MustParseQualifiedName("pkg.renamed"), r.QualifiedName())

	attrs := []*Attribute{
		NewAttribute("a", MustParseQualifiedName("sys.number")),
		NewAttribute("b", MustParseQualifiedName("sys.symbol")),
	}
	r.SetAttributes(attrs)
	require.Equal(2, r.Arity())

	r.SetIsDeltaDebug(MustParseQualifiedName("pkg.renamed_dbg"))
	dd, ok := r.IsDeltaDebug()
	require.True(ok)
	require.Equal(MustParseQualifiedName("pkg.renamed_dbg"), dd)

	t.Run("nil children are rejected by builders", func(t *testing.T) {
		require.Panics(func() { r.AddAttribute(nil) })
		require.Panics(func() { r.AddDependency(nil) })
	})
}
