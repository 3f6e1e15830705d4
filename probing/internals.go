package probing

import (
	"fmt"
	"strings"
)

// No growth step should exceed a million slots.
var defaultTableSizes = []uint{5, 13, 29, 53, 97, 193, 389, 769, 1543, 3079,
	6151, 12289, 24593, 49157, 98317, 196613, 393241, 786433, 1572869}

// DefaultSizes returns (a copy of) the default capacity-growth sequence.
// Other containers of this module, notably the outer level of
// composite.Table, share this sequence.
func DefaultSizes() []uint {
	sizes := make([]uint, len(defaultTableSizes))
	copy(sizes, defaultTableSizes)
	return sizes
}

const (
	hashSeed = 31415
	hashBase = 31
)

// Hash is the polynomial rolling hash used throughout this module. It
// walks the characters of key, folding each into an accumulator reduced
// modulo capacity, while the multiplier itself is reduced modulo
// (capacity − 1) each step. The result therefore depends on the current
// capacity and has to be recomputed whenever a table grows.
func Hash(key string, capacity uint) int {
	assertThat(capacity >= 3, "capacity %d too small to hash", capacity)
	var value uint64
	var a uint64 = hashSeed
	m := uint64(capacity)
	for _, ch := range key {
		value = (uint64(ch) + a*value) % m
		a = a * hashBase % (m - 1)
	}
	return int(value)
}

// props holds the non-generic configuration of a table, keeping options
// free of type parameters.
type props struct {
	sizes     []uint
	sizeIndex int
}

func (p props) init() props {
	if p.sizes == nil {
		p.sizes = defaultTableSizes
	}
	return p
}

// init makes the zero value usable; every public method calls it.
func (t *Table[K, V]) init() {
	t.props = t.props.init()
	if t.slots == nil {
		t.slots = make([]*pair[K, V], t.sizes[t.sizeIndex])
	}
}

func (t *Table[K, V]) capacity() uint {
	return uint(len(t.slots))
}

// grow moves the table to the next capacity of the growth sequence and
// re-inserts every pair. Re-insertion is mandatory, not an optimization:
// Hash depends on the capacity, so every stored key changes position.
// With the growth sequence exhausted, grow is a no-op and the table will
// eventually report keyed.ErrTableFull on insert.
func (t *Table[K, V]) grow() {
	if t.sizeIndex+1 >= len(t.sizes) {
		tracer().Debugf("growth sequence exhausted at capacity %d", t.capacity())
		return
	}
	t.sizeIndex++
	old := t.slots
	t.slots = make([]*pair[K, V], t.sizes[t.sizeIndex])
	tracer().Debugf("growing table from %d to %d slots", len(old), len(t.slots))
	for _, slot := range old {
		if slot != nil {
			t.place(slot)
		}
	}
}

// place re-inserts a pair known to be absent, without touching the count.
func (t *Table[K, V]) place(p *pair[K, V]) {
	capacity := int(t.capacity())
	pos := Hash(string(p.key), t.capacity())
	for i := 0; i < capacity; i++ {
		if t.slots[pos] == nil {
			t.slots[pos] = p
			return
		}
		assertThat(t.slots[pos].key != p.key, "re-inserted key %v already present", p.key)
		pos = (pos + 1) % capacity
	}
	assertThat(false, "no free slot while re-inserting key %v", p.key)
}

// repairChain re-places the contiguous run of pairs following a freshly
// cleared slot. Without this step, a pair that probed past the cleared
// slot would become unreachable.
func (t *Table[K, V]) repairChain(hole int) {
	capacity := int(t.capacity())
	pos := (hole + 1) % capacity
	for t.slots[pos] != nil {
		p := t.slots[pos]
		t.slots[pos] = nil
		t.place(p)
		pos = (pos + 1) % capacity
	}
}

func (t *Table[K, V]) String() string {
	var sb strings.Builder
	sb.WriteRune('[')
	first := true
	for _, slot := range t.slots {
		if slot == nil {
			continue
		}
		if !first {
			sb.WriteString(", ")
		}
		sb.WriteString(fmt.Sprintf("⟨%v→%v⟩", slot.key, slot.value))
		first = false
	}
	sb.WriteRune(']')
	return sb.String()
}

// --- Helpers ---------------------------------------------------------------

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("probing: "+msg, msgargs...)
		panic(msg)
	}
}
