package trie

import (
	"github.com/npillmayer/fp/maybe"
	"github.com/npillmayer/keyed"
)

// DefaultWidth is the default number of slots per node, the sentinel slot
// included. Characters index the first width−1 slots modulo width−1; the
// last slot anchors keys exhausted at the node's level.
const DefaultWidth = 27

// Table is a node of the trie; the root node represents the whole table.
// The zero value is usable as an empty table, i.e. this is legal:
//
//     var table trie.Table[string, int]
//     table.Set("cat", 1)
//
// Keys are indexed byte-wise, so keys should stay within a single-byte
// character set. Keys whose characters are congruent modulo width−1 at
// every position cannot be told apart by any level and are rejected by
// assertion; the default width keeps the lowercase alphabet collision-free.
type Table[K ~string, V any] struct {
	props
	slots []entry[K, V]
	level int
	count int
}

// New creates an empty table with options, if you need any.
// Use it like this:
//
//     table := trie.New[string, int](trie.Width(9))
//
func New[K ~string, V any](opts ...Option) *Table[K, V] {
	table := &Table[K, V]{}
	for _, option := range opts {
		table.props = option.config(table.props)
	}
	table.init()
	return table
}

// Option is a type to help initializing tables at creation time.
type Option struct {
	config func(props) props
}

// Width is an option to set the number of slots per node, e.g. for
// testing with small nodes. The minimum width is 3: one character slot,
// one to disambiguate, one sentinel.
func Width(n int) Option {
	conf := func(p props) props {
		assertThat(n >= 3, "node width %d too small", n)
		p.width = n
		return p
	}
	return Option{config: conf}
}

// --- API -------------------------------------------------------------------

// Get returns the value stored for key.
// If key is not in the table, keyed.ErrNotFound is returned.
func (t *Table[K, V]) Get(key K) (V, error) {
	t.init()
	var none V
	pos := t.hashAt(key)
	switch e := t.slots[pos].(type) {
	case nil:
		return none, keyed.ErrNotFound
	case leaf[K, V]:
		if e.key == key {
			return e.value, nil
		}
		return none, keyed.ErrNotFound
	case *Table[K, V]:
		return e.Get(key)
	}
	return none, keyed.ErrNotFound
}

// Lookup is a convenience variant of Get, returning a Maybe instead of an
// error.
func (t *Table[K, V]) Lookup(key K) maybe.Maybe[V] {
	value, err := t.Get(key)
	if err != nil {
		return maybe.Nothing[V]()
	}
	return maybe.Just(value)
}

// Contains checks if key is in the table.
func (t *Table[K, V]) Contains(key K) bool {
	_, err := t.Get(key)
	return err == nil
}

// Set stores value for key, overwriting a previously stored value. A slot
// collision of two different keys spawns a child node one level deeper,
// recursively until the keys part ways.
func (t *Table[K, V]) Set(key K, value V) {
	t.init()
	t.set(key, value)
}

// Delete removes key and its value from the table. A child node left with
// exactly one reachable pair collapses back into a direct leaf of its
// parent, so repeated deletion never strands single-entry chains.
// If key is not in the table, keyed.ErrNotFound is returned.
func (t *Table[K, V]) Delete(key K) error {
	t.init()
	pos := t.hashAt(key)
	switch e := t.slots[pos].(type) {
	case nil:
		return keyed.ErrNotFound
	case leaf[K, V]:
		if e.key != key {
			return keyed.ErrNotFound
		}
		t.slots[pos] = nil
		t.count--
		return nil
	case *Table[K, V]:
		if err := e.Delete(key); err != nil {
			return err
		}
		t.count--
		if e.count == 1 {
			tracer().Debugf("collapsing single-pair child at level %d into slot %d", e.level, pos)
			t.slots[pos] = e.soleLeaf()
		}
		return nil
	}
	return keyed.ErrNotFound
}

// Location returns the sequence of slot indices leading from this node
// down to the leaf holding key.
// If key is not in the table, keyed.ErrNotFound is returned.
func (t *Table[K, V]) Location(key K) ([]int, error) {
	t.init()
	pos := t.hashAt(key)
	switch e := t.slots[pos].(type) {
	case nil:
		return nil, keyed.ErrNotFound
	case leaf[K, V]:
		if e.key == key {
			return []int{pos}, nil
		}
		return nil, keyed.ErrNotFound
	case *Table[K, V]:
		sub, err := e.Location(key)
		if err != nil {
			return nil, err
		}
		return append([]int{pos}, sub...), nil
	}
	return nil, keyed.ErrNotFound
}

// Len returns the number of pairs reachable under this node.
func (t *Table[K, V]) Len() int {
	return t.count
}
