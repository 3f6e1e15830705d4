/*
Package composite implements a hash table keyed by a pair of keys.

A composite table nests two levels of linear-probing hash tables: an
outer level keyed by the first key, whose occupied slots each own an
inner probing.Table keyed by the second key. Inner tables come into
existence with the first pair stored under their outer key and are
discarded as soon as their last pair is deleted, so enumerating the
outer level never surfaces empty shells.

Outer and inner levels grow independently, each along its own
capacity-growth sequence.
*/
package composite

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'keyed.composite'.
func tracer() tracing.Trace {
	return tracing.Select("keyed.composite")
}
