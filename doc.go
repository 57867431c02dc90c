/*
Package consolidatedmap implements an immutable multimap of parent→child
associations with transitive closure queries.

A map is assembled once via a Builder and is read-only afterwards:

	b := consolidatedmap.NewBuilder[int]()

	// associate the child 20 with the parent 10
	b.Insert(10, 20)

	// associate the child 30 with the parent 20
	b.Insert(20, 30)

	m := b.Build()

	// m.Children(10) yields 20
	// m.Children(20) yields 30
	// m.Children(30) yields nothing

	// m.Consolidated(10) yields 10, 20, 30
	// m.Consolidated(5) yields just 5 (5 was never inserted)

Children returns the direct children of a key in insertion order, duplicates
included. Consolidated returns the key itself followed by every value
reachable through repeated child expansion, depth-first, expanding each
node's children in insertion order.

Querying a key that was never inserted as a parent is not an error: Children
yields nothing and Consolidated yields just the key.

# Cycles

The map does not detect cycles. If the associations reachable from a key
form a cycle, the sequence returned by Consolidated is infinite; callers
that drain it eagerly must ensure their input is acyclic, or take a bounded
prefix. DumpTree is the exception: it expands each key at most once and is
safe on any input.

# Concurrency

A built Map is never mutated, so any number of goroutines may query it
concurrently without locking. A Builder belongs to a single owner until
Build consumes it.
*/
package consolidatedmap
