package consolidatedmap

import (
	"iter"
	"slices"
)

// Map is an immutable multimap from a key to the ordered sequence of
// children inserted under it. Build one with a Builder or with Collect;
// after that, nothing is ever added, removed or reordered.
//
// The zero value is an empty map.
type Map[K comparable] struct {
	children map[K][]K
	keys     []K // parent keys, first-insertion order
	pairs    int
}

// Children returns a cursor over the direct children of key, in insertion
// order, duplicates included. A key never inserted as a parent yields an
// empty sequence.
//
// The cursor reads the map's storage in place; keep the map alive while
// the cursor is in use.
func (m *Map[K]) Children(key K) *Children[K] {
	return &Children[K]{m: m, stack: [][]K{m.children[key]}}
}

// Consolidated returns a cursor yielding key itself followed by every value
// reachable through repeated child expansion, depth-first, expanding each
// yielded value's children in insertion order. A key with no children
// yields just itself.
//
// There is no cycle guard: over cyclic associations the sequence is
// infinite, and a revisited key yields its children again.
func (m *Map[K]) Consolidated(key K) *Children[K] {
	return &Children[K]{m: m, stack: [][]K{{key}}, expand: true}
}

// ContainsChild reports whether child occurs among the direct children of
// parent. An absent parent yields false.
func (m *Map[K]) ContainsChild(parent, child K) bool {
	return slices.Contains(m.children[parent], child)
}

// KeyCount returns the number of distinct parent keys.
func (m *Map[K]) KeyCount() int {
	return len(m.keys)
}

// Len returns the total number of stored (parent, child) pairs.
func (m *Map[K]) Len() int {
	return m.pairs
}

// Keys yields the parent keys in the order each was first inserted.
func (m *Map[K]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for _, k := range m.keys {
			if !yield(k) {
				return
			}
		}
	}
}

// Clone returns a deep copy of the map. The copy shares no storage with
// the original, so either can outlive the other.
func (m *Map[K]) Clone() *Map[K] {
	children := make(map[K][]K, len(m.children))
	for k, seq := range m.children {
		children[k] = slices.Clone(seq)
	}
	return &Map[K]{
		children: children,
		keys:     slices.Clone(m.keys),
		pairs:    m.pairs,
	}
}

// ConsolidatedBy is implemented by containers that answer transitive
// closure queries for a key. *Map implements it.
type ConsolidatedBy[K comparable] interface {
	Consolidated(key K) *Children[K]
}
