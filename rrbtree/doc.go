/*
Package rrbtree provides the relaxed-radix-balanced (RRB) trie engine behind
rrb vectors.

The package is intentionally not a generic map/set container. It is
specialized for positional sequence storage with persistent (copy-on-write)
updates, logarithmic splits and concatenation, and a transient builder mode
for bulk construction.

Trees come in two flavors of branch nodes: dense branches, where every
non-last child is exactly full for its level and child navigation is pure bit
arithmetic, and relaxed branches, which carry a cumulative size table because
some child is under-full (typically after a slice, split or concatenation).
The two flavors mix freely within one tree, with the restriction that a dense
branch never has a relaxed child.

A tail buffer of up to Degree values is held outside the trie so appends
amortize to constant time. Transients widen the tail to a configurable
multiple of Degree and tag every node they create with an owner token, which
permits in-place mutation until the transient freezes.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package rrbtree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'rrb'
func tracer() tracing.Trace {
	return tracing.Select("rrb")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
