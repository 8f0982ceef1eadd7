/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package set

import (
	"encoding/binary"
	"fmt"
	"math/bits"
	"strings"
)

const (
	size     = 256
	wordBits = 64
	words    = size / wordBits
)

// Set is a fixed-size bitset over small (byte-sized) enumerated types.
//
// The zero value is an empty set ready to use. Set is a value type: it is
// copied freely and comparable with ==.
type Set[V ~uint8] struct {
	bitmap [words]uint64
}

// Makes new empty set of specified value type
func Empty[V ~uint8]() Set[V] {
	return Set[V]{}
}

// Makes new set from specified values
func From[V ~uint8](values ...V) Set[V] {
	var s Set[V]
	s.Set(values...)
	return s
}

// Returns set values as sorted array. Returns nil if set is empty
func (s Set[V]) AsArray() (values []V) {
	for w := 0; w < words; w++ {
		m := s.bitmap[w]
		for m != 0 {
			b := bits.TrailingZeros64(m)
			values = append(values, V(w*wordBits+b))
			m &^= uint64(1) << b
		}
	}
	return values
}

// Returns set as big-endian bytes
func (s Set[V]) AsBytes() []byte {
	buf := make([]byte, size/8)
	for w := 0; w < words; w++ {
		binary.BigEndian.PutUint64(buf[(words-w-1)*8:], s.bitmap[w])
	}
	return buf
}

// Clears specified values from set
func (s *Set[V]) Clear(values ...V) {
	for _, v := range values {
		s.bitmap[int(v)/wordBits] &^= uint64(1) << (int(v) % wordBits)
	}
}

// Clears all values from set
func (s *Set[V]) ClearAll() {
	s.bitmap = [words]uint64{}
}

// Returns a copy of the set
func (s Set[V]) Clone() Set[V] {
	return s
}

// Returns true if set contains specified value
func (s Set[V]) Contains(v V) bool {
	return s.bitmap[int(v)/wordBits]&(uint64(1)<<(int(v)%wordBits)) != 0
}

// Returns true if set contains all specified values
func (s Set[V]) ContainsAll(values ...V) bool {
	for _, v := range values {
		if !s.Contains(v) {
			return false
		}
	}
	return true
}

// Returns true if set contains at least one of specified values.
// Returns true if values is empty
func (s Set[V]) ContainsAny(values ...V) bool {
	for _, v := range values {
		if s.Contains(v) {
			return true
		}
	}
	return len(values) == 0
}

// Returns the smallest value in set and true if set is not empty
func (s Set[V]) First() (bool, V) {
	for w := 0; w < words; w++ {
		if m := s.bitmap[w]; m != 0 {
			return true, V(w*wordBits + bits.TrailingZeros64(m))
		}
	}
	return false, V(0)
}

// Returns the count of values in set
func (s Set[V]) Len() int {
	l := 0
	for w := 0; w < words; w++ {
		l += bits.OnesCount64(s.bitmap[w])
	}
	return l
}

// Sets specified values to set
func (s *Set[V]) Set(values ...V) {
	for _, v := range values {
		s.bitmap[int(v)/wordBits] |= uint64(1) << (int(v) % wordBits)
	}
}

// Sets range of values to set. Inclusive start, exclusive end
func (s *Set[V]) SetRange(start, end V) {
	for v := start; v < end; v++ {
		s.Set(v)
	}
}

// Renders set in human-readable form, e.g. "[input output]"
func (s Set[V]) String() string {
	b := strings.Builder{}
	b.WriteRune('[')
	for i, v := range s.AsArray() {
		if i > 0 {
			b.WriteRune(' ')
		}
		b.WriteString(valueToString(v))
	}
	b.WriteRune(']')
	return b.String()
}

// Values with a TrimString render without the enum type prefix
func valueToString[V ~uint8](v V) string {
	if t, ok := any(v).(interface{ TrimString() string }); ok {
		return t.TrimString()
	}
	return fmt.Sprintf("%v", v)
}
