package trie

import (
	"fmt"

	tp "github.com/xlab/treeprint"
)

// props holds the non-generic configuration of a table, keeping options
// free of type parameters.
type props struct {
	width int
}

func (p props) init() props {
	if p.width == 0 {
		p.width = DefaultWidth
	}
	return p
}

// init makes the zero value usable; every public method calls it.
func (t *Table[K, V]) init() {
	t.props = t.props.init()
	if t.slots == nil {
		t.slots = make([]entry[K, V], t.width)
	}
}

// hashAt maps key to a slot of this node: the character at the node's
// level, reduced modulo width−1 — or the sentinel slot width−1 for a key
// exhausted at this depth.
func (t *Table[K, V]) hashAt(key K) int {
	if t.level < len(key) {
		return int(key[t.level]) % (t.width - 1)
	}
	return t.width - 1
}

// newChild spawns a node one level deeper, inheriting the width.
func (t *Table[K, V]) newChild() *Table[K, V] {
	child := &Table[K, V]{props: t.props, level: t.level + 1}
	child.init()
	return child
}

// String renders the node shape for diagnostics, one line per occupied
// slot, child nodes indented as branches.
func (t *Table[K, V]) String() string {
	t.init()
	p := tp.New()
	t.dump(p)
	return fmt.Sprintf("Table(level=%d count=%d)\n%s", t.level, t.count, p.String())
}

func (t *Table[K, V]) dump(p tp.Tree) {
	for i, e := range t.slots {
		switch e := e.(type) {
		case leaf[K, V]:
			p.AddNode(fmt.Sprintf("%d: %s", i, e))
		case *Table[K, V]:
			branch := p.AddBranch(fmt.Sprintf("%d: node(level=%d count=%d)", i, e.level, e.count))
			e.dump(branch)
		}
	}
}

// --- Helpers ---------------------------------------------------------------

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("trie: "+msg, msgargs...)
		panic(msg)
	}
}
