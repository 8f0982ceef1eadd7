/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package ast

import "strings"

//go:generate stringer -type=RelationRepresentation -output=relation-representation_string.go

const (
	// null - representation is unspecified, the code generator chooses
	RelationRepresentation_null RelationRepresentation = iota

	RelationRepresentation_btree
	RelationRepresentation_btree_delete
	RelationRepresentation_brie
	RelationRepresentation_eqrel
	RelationRepresentation_provenance
	RelationRepresentation_info

	RelationRepresentation_Count
)

// Storage-strategy hint of a relation, consumed by the code generator to
// choose a backend data structure.
type RelationRepresentation uint8

// Renders a RelationRepresentation in human-readable form, without
// "RelationRepresentation_" prefix, suitable for printing declarations
func (r RelationRepresentation) TrimString() string {
	const pref = "RelationRepresentation_"
	return strings.TrimPrefix(r.String(), pref)
}
