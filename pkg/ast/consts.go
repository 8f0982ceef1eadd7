/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package ast

const (
	// Empty name
	NullName = ""

	// Used as delimiter between the segments of a qualified name
	QualifiedNameQualifierChar = "."

	// Maximum identifier length
	MaxIdentLen = 255
)
