package consolidatedmap

import "iter"

// Children is a lazy, single-pass cursor over child values produced by
// Map.Children or Map.Consolidated. It holds a stack of pending slices
// borrowed from the map's storage; the consolidated variant additionally
// expands each yielded value's children before returning it.
type Children[K comparable] struct {
	m      *Map[K]
	stack  [][]K
	expand bool
}

// Next returns the next value of the sequence, or ok == false once the
// sequence is exhausted. A consolidated cursor over cyclic associations
// never exhausts.
func (c *Children[K]) Next() (_ K, ok bool) {
	for n := len(c.stack); n > 0; n = len(c.stack) {
		top := c.stack[n-1]
		if len(top) == 0 {
			c.stack = c.stack[:n-1]
			continue
		}
		v := top[0]
		c.stack[n-1] = top[1:]
		if c.expand {
			if kids := c.m.children[v]; len(kids) > 0 {
				c.stack = append(c.stack, kids)
			}
		}
		return v, true
	}
	var zero K
	return zero, false
}

// Seq adapts the cursor for range-over-func iteration. It drives the same
// single pass as Next, so a cursor is ranged over at most once.
func (c *Children[K]) Seq() iter.Seq[K] {
	return func(yield func(K) bool) {
		for v, ok := c.Next(); ok; v, ok = c.Next() {
			if !yield(v) {
				return
			}
		}
	}
}
