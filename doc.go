/*
Package rrb offers persistent vectors: immutable indexed sequences with
logarithmic editing operations.

# Vectors

Vectors organize their values internally in a relaxed-radix-balanced (RRB)
trie with a 32-way branching factor and a tail buffer for appends. This keeps
frequent sequence operations fast even for very large sequences, and every
operation leaves its operands untouched: versions share structure and may be
read concurrently once built.

	Operation     |   Vector        |  Slice
	--------------+-----------------+--------
	At            |   O(log n)      |   O(1)
	Push          |   O(1) amort.   |   O(1) amort.
	Pop           |   O(1) amort.   |   O(1)
	Update        |   O(log n)      |   O(1)
	Iterate       |   O(n)          |   O(n)

	Concatenate   |   O(log n)      |   O(n)
	Insert        |   O(log n)      |   O(n)
	Remove        |   O(log n)      |   O(n)
	Split         |   O(log n)      |   O(n)
	Sub-sequence  |   O(log n)      |   O(n)

For use cases with many editing operations on large sequences, vectors have
stable performance and space characteristics. When dealing with short
sequences that are mostly appended to, plain slices will usually win.

Bulk construction goes through a Builder, which works on a transient version
of the trie and mutates in place until it freezes.

_________________________________________________________________________

# BSD 3-Clause License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/
package rrb

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// tracer writes to trace with key 'rrb'
func tracer() tracing.Trace {
	return tracing.Select("rrb")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}

// VectorError is an error type for the rrb module
type VectorError string

func (e VectorError) Error() string {
	return string(e)
}

// ErrIndexOutOfBounds is flagged whenever a vector position is outside the
// valid range of the receiver.
const ErrIndexOutOfBounds = VectorError("index out of bounds")

// ErrEmptyVector is flagged when a pop operation meets an empty vector.
const ErrEmptyVector = VectorError("vector is empty")

// ErrInvalidCapacity is flagged for builder capacities that are not positive
// multiples of LeafCapacity.
const ErrInvalidCapacity = VectorError("illegal builder capacity")
