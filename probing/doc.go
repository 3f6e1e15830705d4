/*
Package probing implements a single-level hash table with linear-probing
collision resolution.

Slots are open-addressed: a colliding key scans forward through
consecutive slots (with wraparound) until it finds an empty slot or a slot
holding its key. Capacity grows along a fixed ascending sequence of
prime-like sizes; the hash function depends on the current capacity, so
growing re-inserts every stored pair.

Tables of this package are the building block for the two-level tables of
package composite.
*/
package probing

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'keyed.probing'.
func tracer() tracing.Trace {
	return tracing.Select("keyed.probing")
}
