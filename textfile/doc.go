/*
Package textfile loads text files as persistent vectors of lines.

Line scanning of large files is parallelized over fragments, and
loading may be done asynchronously: clients receive a handle immediately,
may subscribe to fragment progress broadcasts, and collect the finished
vector with Wait. Opening of the file is always done synchronously.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package textfile

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'rrb'
func tracer() tracing.Trace {
	return tracing.Select("rrb")
}
