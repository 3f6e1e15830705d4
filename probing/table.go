package probing

import (
	"github.com/npillmayer/fp/maybe"
	"github.com/npillmayer/keyed"
)

// Table is an in-memory hash table with linear-probing collision
// resolution. The zero value is usable as an empty table, i.e. this is
// legal:
//
//     var table probing.Table[string, int]
//     table.Set("pi", 3)
//
// Keys are strings (or any string-derived type); hashing walks the key's
// characters. Values may be of any type.
type Table[K ~string, V any] struct {
	props
	slots []*pair[K, V]
	count uint
}

// pair is an occupied slot.
type pair[K ~string, V any] struct {
	key   K
	value V
}

// New creates an empty table with options, if you need any.
// Use it like this:
//
//     table := probing.New[string, int](probing.Sizes(5, 13, 29))
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

// Sizes is an option to replace the default capacity-growth sequence,
// e.g. for testing with small tables. Sizes must be ascending and every
// entry must be at least 3.
func Sizes(sizes ...uint) Option {
	conf := func(p props) props {
		assertThat(len(sizes) > 0, "empty capacity-growth sequence")
		for i, s := range sizes {
			assertThat(s >= 3, "capacity %d too small to probe", s)
			assertThat(i == 0 || sizes[i-1] < s, "capacity-growth sequence not ascending")
		}
		p.sizes = sizes
		return p
	}
	return Option{config: conf}
}

// --- API -------------------------------------------------------------------

// Get returns the value stored for key.
// If key is not in the table, keyed.ErrNotFound is returned.
func (t *Table[K, V]) Get(key K) (V, error) {
	t.init()
	pos, err := t.Locate(key, false)
	if err != nil {
		var none V
		return none, err
	}
	return t.slots[pos].value, nil
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

// Set stores value for key, overwriting a previously stored value.
// Setting may grow the table; if the growth sequence is exhausted and no
// free slot remains, keyed.ErrTableFull is returned and the table is left
// unchanged.
func (t *Table[K, V]) Set(key K, value V) error {
	t.init()
	pos, err := t.Locate(key, true)
	if err != nil {
		return err
	}
	if t.slots[pos] != nil { // overwrite
		t.slots[pos].value = value
		return nil
	}
	t.slots[pos] = &pair[K, V]{key: key, value: value}
	t.count++
	if t.count > t.capacity()/2 {
		t.grow()
	}
	return nil
}

// Delete removes key and its value from the table.
// If key is not in the table, keyed.ErrNotFound is returned.
func (t *Table[K, V]) Delete(key K) error {
	t.init()
	pos, err := t.Locate(key, false)
	if err != nil {
		return err
	}
	t.slots[pos] = nil
	t.count--
	t.repairChain(pos)
	return nil
}

// Locate runs the linear probe for key, starting at the key's hash
// position and scanning forward with wraparound. It returns the slot
// index holding key or, with forInsert set, the first free slot of the
// probe sequence. A full cycle without success returns keyed.ErrNotFound,
// or keyed.ErrTableFull when probing for an insert.
func (t *Table[K, V]) Locate(key K, forInsert bool) (int, error) {
	t.init()
	capacity := int(t.capacity())
	pos := Hash(string(key), t.capacity())
	for i := 0; i < capacity; i++ {
		switch {
		case t.slots[pos] == nil:
			if forInsert {
				return pos, nil
			}
			return 0, keyed.ErrNotFound
		case t.slots[pos].key == key:
			return pos, nil
		}
		pos = (pos + 1) % capacity
	}
	tracer().Debugf("probe cycled through all %d slots for key=%v", capacity, key)
	if forInsert {
		return 0, keyed.ErrTableFull
	}
	return 0, keyed.ErrNotFound
}

// Len returns the number of pairs in the table (not the table's capacity).
func (t *Table[K, V]) Len() int {
	return int(t.count)
}

// IsEmpty checks if the table holds no pairs.
func (t *Table[K, V]) IsEmpty() bool {
	return t.count == 0
}

// Capacity returns the current number of slots.
func (t *Table[K, V]) Capacity() int {
	t.init()
	return int(t.capacity())
}

// Keys returns every key in the table, in slot order.
func (t *Table[K, V]) Keys() []K {
	t.init()
	keys := make([]K, 0, t.count)
	for _, slot := range t.slots {
		if slot != nil {
			keys = append(keys, slot.key)
		}
	}
	return keys
}

// Values returns every value in the table, in slot order.
func (t *Table[K, V]) Values() []V {
	t.init()
	values := make([]V, 0, t.count)
	for _, slot := range t.slots {
		if slot != nil {
			values = append(values, slot.value)
		}
	}
	return values
}
