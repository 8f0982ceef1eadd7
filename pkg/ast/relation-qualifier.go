/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package ast

import "strings"

//go:generate stringer -type=RelationQualifier -output=relation-qualifier_string.go

const (
	RelationQualifier_input RelationQualifier = iota
	RelationQualifier_output
	RelationQualifier_printsize
	RelationQualifier_overridable
	RelationQualifier_inline
	RelationQualifier_no_inline
	RelationQualifier_magic
	RelationQualifier_no_magic
	RelationQualifier_suppressed

	RelationQualifier_Count
)

// Boolean-flag annotation of a relation declaration («.decl … input output»).
//
// Qualifiers are descriptive metadata: this layer stores them and compares
// them, it assigns them no operational meaning.
type RelationQualifier uint8

// Renders a RelationQualifier in human-readable form, without
// "RelationQualifier_" prefix, suitable for printing declarations
func (q RelationQualifier) TrimString() string {
	const pref = "RelationQualifier_"
	return strings.TrimPrefix(q.String(), pref)
}
