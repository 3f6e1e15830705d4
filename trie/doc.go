/*
Package trie implements an unbounded-depth hash table built as a trie of
fixed-width nodes.

Every node is a small hash table indexing on a single character of the
key: a node at level L disambiguates keys by their L-th character. Two
different keys colliding in a slot are never probed sideways; instead the
slot grows a child node one level deeper, which distributes the colliding
keys by their next character. Keys that run out of characters at a node
anchor in the node's last slot, the sentinel, so a key may be a strict
prefix of another key.

Deleting keeps the trie minimal: a child subtree left with a single
reachable pair collapses back into a direct leaf of its parent.
*/
package trie

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'keyed.trie'.
func tracer() tracing.Trace {
	return tracing.Select("keyed.trie")
}
