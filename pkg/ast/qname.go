/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package ast

import (
	"encoding/json"
	"strconv"
	"strings"
	"sync"
)

// Qualified name of a relation (or of any other named declaration).
//
// A qualified name is an immutable dotted path of name segments
// («pkg.sub.entity»). Once constructed it is never changed, values are
// freely copied.
//
// Every distinct path is interned: the cached intern index gives a cheap
// ordering (CompareIndex) which is stable within a process but arbitrary
// across runs. Deterministic output must use CompareLexical instead.
type QualifiedName struct {
	path  string
	index uint32
}

// Null (empty) qualified name
var NullQualifiedName = QualifiedName{}

// Builds a qualified name from segments.
//
// Segments are not validated, see ValidQualifiedName
func NewQualifiedName(segments ...string) QualifiedName {
	if len(segments) == 0 {
		return NullQualifiedName
	}
	return internQualifiedName(strings.Join(segments, QualifiedNameQualifierChar))
}

// Parse a qualified name from string.
//
// # Panics:
//   - if string is not a valid qualified name
func MustParseQualifiedName(val string) QualifiedName {
	n, err := ParseQualifiedName(val)
	if err != nil {
		panic(err)
	}
	return n
}

// Parse a qualified name from string. Empty string parses to the null name
func ParseQualifiedName(val string) (res QualifiedName, err error) {
	if val == NullName {
		return NullQualifiedName, nil
	}
	for _, s := range strings.Split(val, QualifiedNameQualifierChar) {
		if s == NullName {
			return NullQualifiedName, ErrConvert("string «%s» to qualified name", val)
		}
	}
	return internQualifiedName(val), nil
}

// Compare two qualified names segment-by-segment.
//
// This order is deterministic and independent of interning, use it wherever
// enumeration order reaches compiler output.
func CompareLexical(a, b QualifiedName) int {
	aa, bb := a.Segments(), b.Segments()
	for i := 0; (i < len(aa)) && (i < len(bb)); i++ {
		if c := strings.Compare(aa[i], bb[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(aa) < len(bb):
		return -1
	case len(aa) > len(bb):
		return 1
	}
	return 0
}

// Compare two qualified names by intern index.
//
// Faster than CompareLexical, but the order is arbitrary across runs
func CompareIndex(a, b QualifiedName) int {
	switch {
	case a.index < b.index:
		return -1
	case a.index > b.index:
		return 1
	}
	return 0
}

// Returns a new qualified name with segments appended to the path
func (qn QualifiedName) Append(segments ...string) QualifiedName {
	return NewQualifiedName(append(qn.Segments(), segments...)...)
}

// Returns a new qualified name with segments prepended to the path
func (qn QualifiedName) Prepend(segments ...string) QualifiedName {
	return NewQualifiedName(append(segments, qn.Segments()...)...)
}

// Returns the first segment of the path, NullName for the null name
func (qn QualifiedName) Head() string {
	if ss := qn.Segments(); len(ss) > 0 {
		return ss[0]
	}
	return NullName
}

// Returns the intern index of the name
func (qn QualifiedName) Index() uint32 { return qn.index }

// Returns the path segments. The null name has no segments
func (qn QualifiedName) Segments() []string {
	if qn.path == NullName {
		return nil
	}
	return strings.Split(qn.path, QualifiedNameQualifierChar)
}

// Returns qualified name as dotted string
func (qn QualifiedName) String() string { return qn.path }

// JSON marshaling support
func (qn QualifiedName) MarshalJSON() ([]byte, error) {
	return json.Marshal(qn.path)
}

// need to marshal map[QualifiedName]any
func (qn QualifiedName) MarshalText() (text []byte, err error) {
	var js []byte
	if js, err = json.Marshal(qn.path); err == nil {
		var res string
		if res, err = strconv.Unquote(string(js)); err == nil {
			text = []byte(res)
		}
	}
	return text, err
}

// JSON unmarshaling support
func (qn *QualifiedName) UnmarshalJSON(text []byte) (err error) {
	*qn = QualifiedName{}

	str, err := strconv.Unquote(string(text))
	if err != nil {
		return err
	}
	*qn, err = ParseQualifiedName(str)
	return err
}

// golang json looks on UnmarshalText presence only on unmarshal
// map[QualifiedName]any. UnmarshalJSON() will be used anyway, but without
// UnmarshalText the map unmarshaling fails.
// see https://github.com/golang/go/issues/29732
func (qn *QualifiedName) UnmarshalText([]byte) error {
	return nil
}

// Process-wide intern table. Guards construction only: constructed names are
// immutable, so reading them needs no synchronization.
var qualifiedNames = struct {
	sync.Mutex
	indexes map[string]uint32
}{indexes: map[string]uint32{NullName: 0}}

func internQualifiedName(path string) QualifiedName {
	qualifiedNames.Lock()
	defer qualifiedNames.Unlock()

	i, ok := qualifiedNames.indexes[path]
	if !ok {
		i = uint32(len(qualifiedNames.indexes))
		qualifiedNames.indexes[path] = i
	}
	return QualifiedName{path: path, index: i}
}
