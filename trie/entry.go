package trie

import "fmt"

// entry is one slot of a node: either a leaf pair or a child node.
// A nil entry is an empty slot. Operations resolve the variant with a
// single type switch.
type entry[K ~string, V any] interface {
	String() string
}

// leaf is a directly stored (key, value) pair.
type leaf[K ~string, V any] struct {
	key   K
	value V
}

func (l leaf[K, V]) String() string {
	return fmt.Sprintf("⟨%v→%v⟩", l.key, l.value)
}

// set stores value for key beneath this node and reports whether the pair
// is a fresh insert (as opposed to an overwrite). Counts along the
// recursion path move only for fresh inserts, keeping every node's count
// equal to the number of pairs reachable under it.
func (t *Table[K, V]) set(key K, value V) bool {
	pos := t.hashAt(key)
	switch e := t.slots[pos].(type) {
	case nil:
		t.slots[pos] = leaf[K, V]{key: key, value: value}
		t.count++
		return true
	case leaf[K, V]:
		if e.key == key { // overwrite
			t.slots[pos] = leaf[K, V]{key: key, value: value}
			return false
		}
		// collision: both keys move into a child one level deeper
		assertThat(t.level < len(e.key) || t.level < len(key),
			"keys %q and %q cannot be disambiguated at any level", e.key, key)
		tracer().Debugf("slot %d collision of %q and %q, spawning child at level %d",
			pos, e.key, key, t.level+1)
		child := t.newChild()
		child.set(e.key, e.value)
		child.set(key, value)
		t.slots[pos] = child
		t.count++
		return true
	case *Table[K, V]:
		if e.set(key, value) {
			t.count++
			return true
		}
		return false
	}
	return false // unreachable, the switch covers all entry variants
}

// soleLeaf returns the single pair remaining beneath a node about to be
// collapsed. The collapse invariant guarantees the pair to be a direct
// leaf: a nested single-pair child would have collapsed already.
func (t *Table[K, V]) soleLeaf() leaf[K, V] {
	assertThat(t.count == 1, "collapse of a node holding %d pairs", t.count)
	for _, e := range t.slots {
		if l, ok := e.(leaf[K, V]); ok {
			return l
		}
	}
	assertThat(false, "node count says 1, but no direct leaf found")
	return leaf[K, V]{}
}
