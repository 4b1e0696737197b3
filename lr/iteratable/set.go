package iteratable

import (
	"bytes"
	"fmt"

	"github.com/emirpasic/gods/sets/linkedhashset"
)

// Set is an insertion-ordered set. Elements have to be usable as map keys.
// The zero value is not usable, create sets with NewSet.
//
// Sets are not safe for concurrent mutation. Read-only sharing is fine, as
// long as no goroutine uses the iteration protocol (IterateOnce/Next/Item),
// which keeps a cursor within the set.
type Set struct {
	items    *linkedhashset.Set
	version  uint64        // incremented on every mutation
	snapshot []interface{} // values as of snapV, used by Item()
	snapV    uint64
	cursor   int
}

// NewSet creates a set, optionally initialized with values (in order).
func NewSet(values ...interface{}) *Set {
	return &Set{
		items:   linkedhashset.New(values...),
		version: 1,
		cursor:  -1,
	}
}

// FromStrings creates a set of strings, e.g. grammar symbols.
func FromStrings(values ...string) *Set {
	S := NewSet()
	for _, v := range values {
		S.items.Add(v)
	}
	S.version++
	return S
}

// Size returns the number of elements in S.
func (S *Set) Size() int {
	if S == nil {
		return 0
	}
	return S.items.Size()
}

// Empty is a predicate: is S empty?
func (S *Set) Empty() bool {
	return S.Size() == 0
}

// Add appends values to S. Values already present keep their position.
// Returns S.
func (S *Set) Add(values ...interface{}) *Set {
	for _, v := range values {
		if !S.items.Contains(v) {
			S.items.Add(v)
			S.version++
		}
	}
	return S
}

// Remove deletes values from S. Returns S.
func (S *Set) Remove(values ...interface{}) *Set {
	for _, v := range values {
		if S.items.Contains(v) {
			S.items.Remove(v)
			S.version++
		}
	}
	return S
}

// Contains is a predicate: is v an element of S?
func (S *Set) Contains(v interface{}) bool {
	if S == nil {
		return false
	}
	return S.items.Contains(v)
}

// Values returns the elements of S in insertion order.
func (S *Set) Values() []interface{} {
	if S == nil {
		return nil
	}
	return S.items.Values()
}

// Strings returns the elements of a set of strings, in insertion order.
// Elements of other types are formatted with %v.
func (S *Set) Strings() []string {
	if S == nil {
		return nil
	}
	vals := S.items.Values()
	r := make([]string, len(vals))
	for i, v := range vals {
		if s, ok := v.(string); ok {
			r[i] = s
		} else {
			r[i] = fmt.Sprintf("%v", v)
		}
	}
	return r
}

func (S *Set) iterationSnapshot() []interface{} {
	if S.snapV != S.version {
		S.snapshot = S.items.Values()
		S.snapV = S.version
	}
	return S.snapshot
}

// Copy returns a shallow copy of S, with the same order of elements.
func (S *Set) Copy() *Set {
	if S == nil {
		return NewSet()
	}
	return NewSet(S.items.Values()...)
}

// --- Set algebra (destructive) ---------------------------------------------

// Union adds all elements of other to S, in the order of other.
// Returns S.
func (S *Set) Union(other *Set) *Set {
	if other == nil {
		return S
	}
	return S.Add(other.items.Values()...)
}

// Intersection removes all elements from S which are not in other.
// The order of the remaining elements is unchanged. Returns S.
func (S *Set) Intersection(other *Set) *Set {
	for _, v := range S.items.Values() {
		if !other.Contains(v) {
			S.items.Remove(v)
			S.version++
		}
	}
	return S
}

// Difference removes all elements of other from S.
// The order of the remaining elements is unchanged. Returns S.
func (S *Set) Difference(other *Set) *Set {
	if other == nil {
		return S
	}
	return S.Remove(other.items.Values()...)
}

// Subset is a predicate: is every element of S contained in other?
func (S *Set) Subset(other *Set) bool {
	for _, v := range S.Values() {
		if !other.Contains(v) {
			return false
		}
	}
	return true
}

// Equals compares two sets for equal elements. The order of elements does
// not matter.
func (S *Set) Equals(other *Set) bool {
	if S.Size() != other.Size() {
		return false
	}
	return S.Subset(other)
}

// SameOrder compares two sets for equal elements in equal order.
func (S *Set) SameOrder(other *Set) bool {
	if S.Size() != other.Size() {
		return false
	}
	o := other.Values()
	for i, v := range S.Values() {
		if o[i] != v {
			return false
		}
	}
	return true
}

// FirstMatch returns the first element (in order) for which predicate
// holds, or nil.
func (S *Set) FirstMatch(predicate func(interface{}) bool) interface{} {
	for _, v := range S.Values() {
		if predicate(v) {
			return v
		}
	}
	return nil
}

// --- Iteration -------------------------------------------------------------

// IterateOnce starts an iteration over S:
//
//     S.IterateOnce()
//     for S.Next() {
//         x := S.Item()
//         …
//     }
//
// Elements added to S during the iteration will be visited as well, which makes
// this protocol convenient for work-list algorithms like closures.
// Removing elements during iteration is not supported.
func (S *Set) IterateOnce() {
	S.cursor = -1
}

// Next moves the cursor to the next element, if any.
func (S *Set) Next() bool {
	if S.cursor+1 >= S.items.Size() {
		return false
	}
	S.cursor++
	return true
}

// Item returns the element at the cursor.
func (S *Set) Item() interface{} {
	vals := S.iterationSnapshot()
	if S.cursor < 0 || S.cursor >= len(vals) {
		return nil
	}
	return vals[S.cursor]
}

func (S *Set) String() string {
	var b bytes.Buffer
	b.WriteString("{")
	for i, v := range S.Values() {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(fmt.Sprintf("%v", v))
	}
	b.WriteString("}")
	return b.String()
}
