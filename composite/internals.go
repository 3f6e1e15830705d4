package composite

import (
	"fmt"

	"github.com/npillmayer/keyed"
	"github.com/npillmayer/keyed/probing"
)

// props holds the non-generic configuration of a table, keeping options
// free of type parameters.
type props struct {
	sizes      []uint
	innerSizes []uint
	sizeIndex  int
}

func (p props) init() props {
	if p.sizes == nil {
		p.sizes = probing.DefaultSizes()
	}
	return p
}

// init makes the zero value usable; every public method calls it.
func (t *Table[K1, K2, V]) init() {
	t.props = t.props.init()
	if t.slots == nil {
		t.slots = make([]*inner[K1, K2, V], t.sizes[t.sizeIndex])
	}
}

func (t *Table[K1, K2, V]) capacity() uint {
	return uint(len(t.slots))
}

func (t *Table[K1, K2, V]) newInner() *probing.Table[K2, V] {
	if t.innerSizes == nil {
		return probing.New[K2, V]()
	}
	return probing.New[K2, V](probing.Sizes(t.innerSizes...))
}

// locateOuter probes the outer level for key1. It returns the slot
// holding key1 or, with forInsert set, the first free slot of the probe
// sequence (left for the caller to claim).
func (t *Table[K1, K2, V]) locateOuter(key1 K1, forInsert bool) (int, error) {
	capacity := int(t.capacity())
	pos := probing.Hash(string(key1), t.capacity())
	for i := 0; i < capacity; i++ {
		switch {
		case t.slots[pos] == nil:
			if forInsert {
				return pos, nil
			}
			return 0, keyed.ErrNotFound
		case t.slots[pos].key == key1:
			return pos, nil
		}
		pos = (pos + 1) % capacity
	}
	tracer().Debugf("outer probe cycled through all %d slots for key1=%v", capacity, key1)
	if forInsert {
		return 0, keyed.ErrTableFull
	}
	return 0, keyed.ErrNotFound
}

// grow moves the outer level to the next capacity of the growth sequence
// and re-places every inner table under the recomputed hash of its key.
// Inner tables move wholesale: only the first-level hash depends on the
// outer capacity. With the growth sequence exhausted, grow is a no-op.
func (t *Table[K1, K2, V]) grow() {
	if t.sizeIndex+1 >= len(t.sizes) {
		tracer().Debugf("outer growth sequence exhausted at capacity %d", t.capacity())
		return
	}
	t.sizeIndex++
	old := t.slots
	t.slots = make([]*inner[K1, K2, V], t.sizes[t.sizeIndex])
	tracer().Debugf("growing outer level from %d to %d slots", len(old), len(t.slots))
	for _, slot := range old {
		if slot != nil {
			t.place(slot)
		}
	}
}

// place re-inserts an occupied outer slot known to be absent.
func (t *Table[K1, K2, V]) place(s *inner[K1, K2, V]) {
	capacity := int(t.capacity())
	pos := probing.Hash(string(s.key), t.capacity())
	for i := 0; i < capacity; i++ {
		if t.slots[pos] == nil {
			t.slots[pos] = s
			return
		}
		assertThat(t.slots[pos].key != s.key, "re-inserted key1 %v already present", s.key)
		pos = (pos + 1) % capacity
	}
	assertThat(false, "no free outer slot while re-inserting key1 %v", s.key)
}

// repairChain re-places the contiguous run of occupied slots following a
// freshly cleared outer slot, keeping every key1 reachable by probing.
func (t *Table[K1, K2, V]) repairChain(hole int) {
	capacity := int(t.capacity())
	pos := (hole + 1) % capacity
	for t.slots[pos] != nil {
		s := t.slots[pos]
		t.slots[pos] = nil
		t.place(s)
		pos = (pos + 1) % capacity
	}
}

// --- Helpers ---------------------------------------------------------------

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("composite: "+msg, msgargs...)
		panic(msg)
	}
}
