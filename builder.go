package consolidatedmap

import "iter"

// Builder accumulates (parent, child) associations for a Map. It is
// append-only and is consumed exactly once by Build; using it afterwards
// panics. A Builder is owned by a single goroutine.
type Builder[K comparable] struct {
	children map[K][]K
	keys     []K
	pairs    int
	built    bool
}

// NewBuilder returns an empty builder.
func NewBuilder[K comparable]() *Builder[K] {
	return &Builder[K]{children: make(map[K][]K)}
}

// Insert appends child to the sequence associated with parent, creating
// the sequence if parent is new. Duplicate pairs produce duplicate
// entries, and parent == child is accepted like any other pair.
func (b *Builder[K]) Insert(parent, child K) {
	if b.built {
		panic("consolidatedmap: Insert on a consumed Builder")
	}
	seq, ok := b.children[parent]
	if !ok {
		b.keys = append(b.keys, parent)
	}
	b.children[parent] = append(seq, child)
	b.pairs++
}

// Build moves the accumulated associations into a new Map and marks the
// builder consumed. The storage is handed over, not copied, so Build does
// not revisit the inserted pairs.
func (b *Builder[K]) Build() *Map[K] {
	if b.built {
		panic("consolidatedmap: Build on a consumed Builder")
	}
	b.built = true
	m := &Map[K]{children: b.children, keys: b.keys, pairs: b.pairs}
	b.children, b.keys, b.pairs = nil, nil, 0
	return m
}

// Collect builds a Map from a sequence of (parent, child) pairs, in the
// order the sequence yields them.
func Collect[K comparable](pairs iter.Seq2[K, K]) *Map[K] {
	b := NewBuilder[K]()
	for parent, child := range pairs {
		b.Insert(parent, child)
	}
	return b.Build()
}
