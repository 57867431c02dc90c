package consolidatedmap

import (
	"fmt"
	"strings"

	"github.com/ddddddO/gtree"
)

// DumpTree renders the hierarchy under key as an indented text tree, for
// logging and debugging. Keys are formatted with fmt.Sprint.
//
// Unlike Consolidated, DumpTree expands each key at most once, so it
// terminates on any input; a key reached again through another path is
// shown as a leaf.
func (m *Map[K]) DumpTree(key K) string {
	root := gtree.NewRoot(fmt.Sprint(key))
	seen := map[K]bool{key: true}
	m.dumpChildren(root, key, seen)

	var buf strings.Builder
	if err := gtree.OutputProgrammably(&buf, root); err != nil {
		panic(fmt.Sprintf("consolidatedmap: tree rendering failed: %v", err))
	}
	return buf.String()
}

func (m *Map[K]) dumpChildren(node *gtree.Node, key K, seen map[K]bool) {
	for _, c := range m.children[key] {
		child := node.Add(fmt.Sprint(c))
		if seen[c] {
			continue
		}
		seen[c] = true
		m.dumpChildren(child, c, seen)
	}
}
