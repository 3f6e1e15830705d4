/*
Package keyed provides a family of keyed-storage containers built on
open addressing:

▪︎ probing.Table, a single-level hash table with linear-probing collision
resolution and a stepped capacity-growth sequence;

▪︎ composite.Table, which maps a pair of keys (K1, K2) to a value through
two nested levels of probing tables;

▪︎ trie.Table, an unbounded-depth trie of fixed-width hash tables, where a
collision at one level spawns a child table disambiguating on the next
key character.

All containers are in-memory, single-threaded and synchronous. Clients
sharing a table across goroutines have to serialize access themselves.
*/
package keyed

import "errors"

// ErrNotFound flags a lookup or delete for a key that is not in a table.
var ErrNotFound = errors.New("keyed: key not found")

// ErrTableFull flags an insert that ran a full probe cycle without finding
// a free slot, with the capacity-growth sequence exhausted.
var ErrTableFull = errors.New("keyed: table is full")
