package composite

import (
	"github.com/npillmayer/fp/maybe"
	"github.com/npillmayer/keyed"
	"github.com/npillmayer/keyed/probing"
)

// Table is an in-memory hash table mapping a pair of keys (K1, K2) to a
// value. The zero value is usable as an empty table, i.e. this is legal:
//
//     var routes composite.Table[string, string, int]
//     routes.Set("alice", "paris", 10)
//
// Both key levels hash and probe independently: K1 selects an inner table
// at the outer level, K2 selects the slot within that inner table.
type Table[K1 ~string, K2 ~string, V any] struct {
	props
	slots []*inner[K1, K2, V]
	used  uint // occupied outer slots
	count uint // pairs across all inner tables
}

// inner is an occupied outer slot: the first key plus the table holding
// every (K2, V) pair stored under it.
type inner[K1 ~string, K2 ~string, V any] struct {
	key   K1
	table *probing.Table[K2, V]
}

// New creates an empty table with options, if you need any.
// Use it like this:
//
//     table := composite.New[string, string, int](
//         composite.Sizes(5, 13),
//         composite.InnerSizes(5),
//     )
//
func New[K1 ~string, K2 ~string, V any](opts ...Option) *Table[K1, K2, V] {
	table := &Table[K1, K2, V]{}
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

// Sizes is an option to replace the default capacity-growth sequence of
// the outer level, e.g. for testing with small tables.
func Sizes(sizes ...uint) Option {
	conf := func(p props) props {
		assertThat(len(sizes) > 0, "empty capacity-growth sequence")
		p.sizes = sizes
		return p
	}
	return Option{config: conf}
}

// InnerSizes is an option to replace the capacity-growth sequence handed
// to every inner table. Without it, inner tables use the same default
// sequence as the outer level.
func InnerSizes(sizes ...uint) Option {
	conf := func(p props) props {
		assertThat(len(sizes) > 0, "empty capacity-growth sequence")
		p.innerSizes = sizes
		return p
	}
	return Option{config: conf}
}

// --- API -------------------------------------------------------------------

// Get returns the value stored for the key pair (key1, key2).
// If the pair is not in the table, keyed.ErrNotFound is returned.
func (t *Table[K1, K2, V]) Get(key1 K1, key2 K2) (V, error) {
	t.init()
	pos, err := t.locateOuter(key1, false)
	if err != nil {
		var none V
		return none, keyed.ErrNotFound
	}
	return t.slots[pos].table.Get(key2)
}

// Lookup is a convenience variant of Get, returning a Maybe instead of an
// error.
func (t *Table[K1, K2, V]) Lookup(key1 K1, key2 K2) maybe.Maybe[V] {
	value, err := t.Get(key1, key2)
	if err != nil {
		return maybe.Nothing[V]()
	}
	return maybe.Just(value)
}

// Contains checks if the key pair (key1, key2) is in the table.
func (t *Table[K1, K2, V]) Contains(key1 K1, key2 K2) bool {
	_, _, err := t.locate(key1, key2, false)
	return err == nil
}

// Set stores value for the key pair (key1, key2), overwriting a
// previously stored value. The inner table for key1 is created lazily
// with the first pair stored under key1.
//
// Either level may grow during a Set; a level whose growth sequence is
// exhausted and whose slots are all taken makes Set return
// keyed.ErrTableFull, leaving the table unchanged.
func (t *Table[K1, K2, V]) Set(key1 K1, key2 K2, value V) error {
	t.init()
	pos, err := t.locateOuter(key1, true)
	if err != nil {
		return err
	}
	slot := t.slots[pos]
	created := false
	if slot == nil { // first pair under key1
		slot = &inner[K1, K2, V]{key: key1, table: t.newInner()}
		t.slots[pos] = slot
		t.used++
		created = true
		tracer().Debugf("allocated inner table for key1=%v at outer slot %d", key1, pos)
	}
	before := slot.table.Len()
	if err := slot.table.Set(key2, value); err != nil {
		if created { // do not leave an empty shell behind
			t.slots[pos] = nil
			t.used--
		}
		return err
	}
	if slot.table.Len() > before {
		t.count++
	}
	if t.used > t.capacity()/2 {
		t.grow()
	}
	return nil
}

// Delete removes the key pair (key1, key2) and its value from the table.
// An inner table holding its last pair is discarded along with the pair.
// If the pair is not in the table, keyed.ErrNotFound is returned.
func (t *Table[K1, K2, V]) Delete(key1 K1, key2 K2) error {
	t.init()
	pos, err := t.locateOuter(key1, false)
	if err != nil {
		return keyed.ErrNotFound
	}
	slot := t.slots[pos]
	if err := slot.table.Delete(key2); err != nil {
		return err
	}
	t.count--
	if slot.table.IsEmpty() {
		tracer().Debugf("discarding empty inner table for key1=%v", key1)
		t.slots[pos] = nil
		t.used--
		t.repairChain(pos)
	}
	return nil
}

// locate runs the two-level probe for a key pair and returns the outer
// and inner slot indices. With forInsert set, probing claims the slots an
// insert would use, lazily allocating an inner table for a previously
// unoccupied outer slot (the caller is expected to complete the insert);
// otherwise an absent pair returns keyed.ErrNotFound. A fully probed
// level without success returns keyed.ErrNotFound, or keyed.ErrTableFull
// when probing for an insert.
func (t *Table[K1, K2, V]) locate(key1 K1, key2 K2, forInsert bool) (int, int, error) {
	t.init()
	pos, err := t.locateOuter(key1, forInsert)
	if err != nil {
		return 0, 0, err
	}
	if t.slots[pos] == nil {
		t.slots[pos] = &inner[K1, K2, V]{key: key1, table: t.newInner()}
		t.used++
	}
	innerPos, err := t.slots[pos].table.Locate(key2, forInsert)
	if err != nil {
		return 0, 0, err
	}
	return pos, innerPos, nil
}

// Len returns the total number of (K1, K2) → V pairs in the table.
func (t *Table[K1, K2, V]) Len() int {
	return int(t.count)
}

// Capacity returns the current number of outer-level slots.
func (t *Table[K1, K2, V]) Capacity() int {
	t.init()
	return int(t.capacity())
}

// Keys returns every first-level key in the table, in outer-slot order.
// Only keys with at least one stored pair appear; deleting the last pair
// under a key removes it from this enumeration.
func (t *Table[K1, K2, V]) Keys() []K1 {
	t.init()
	keys := make([]K1, 0, t.used)
	for _, slot := range t.slots {
		if slot != nil {
			keys = append(keys, slot.key)
		}
	}
	return keys
}

// KeysOf returns every second-level key stored under key1, in inner-slot
// order. An absent key1 yields an empty slice.
func (t *Table[K1, K2, V]) KeysOf(key1 K1) []K2 {
	t.init()
	pos, err := t.locateOuter(key1, false)
	if err != nil {
		return []K2{}
	}
	return t.slots[pos].table.Keys()
}

// Values returns every value in the table, flattened in outer-slot order
// and inner-slot order within each inner table.
func (t *Table[K1, K2, V]) Values() []V {
	t.init()
	values := make([]V, 0, t.count)
	for _, slot := range t.slots {
		if slot != nil {
			values = append(values, slot.table.Values()...)
		}
	}
	return values
}

// ValuesOf returns every value stored under key1, in inner-slot order.
// An absent key1 yields an empty slice.
func (t *Table[K1, K2, V]) ValuesOf(key1 K1) []V {
	t.init()
	pos, err := t.locateOuter(key1, false)
	if err != nil {
		return []V{}
	}
	return t.slots[pos].table.Values()
}
